package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	analyticsUsecase "github.com/LavaJover/shvark-campaign-service/internal/usecase/analytics"
	attributionUsecase "github.com/LavaJover/shvark-campaign-service/internal/usecase/attribution"
	campaignUsecase "github.com/LavaJover/shvark-campaign-service/internal/usecase/campaign"
	contentUsecase "github.com/LavaJover/shvark-campaign-service/internal/usecase/content"
	paymentUsecase "github.com/LavaJover/shvark-campaign-service/internal/usecase/payment"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase/usecasetest"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

const testSecret = "test-secret"

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	} `json:"error"`
}

type server struct {
	store  *usecasetest.Store
	router http.Handler
}

func newServer(t *testing.T, opts Options) *server {
	t.Helper()
	store := usecasetest.NewStore()
	h := NewHandler(
		campaignUsecase.NewDefaultCampaignUsecase(store, store, store, store, nil, nil, store, nil),
		analyticsUsecase.NewDefaultAnalyticsUsecase(store, store, store, store, store, store, nil, time.Minute, nil),
		contentUsecase.NewDefaultContentUsecase(store, store, store, nil, store, nil),
		attributionUsecase.NewDefaultAttributionUsecase(store, store, store, store, store, nil, nil, store, nil),
		paymentUsecase.NewDefaultPaymentUsecase(store, store, store, store, nil),
		opts,
	)
	return &server{store: store, router: NewRouter(h, opts)}
}

func token(t *testing.T, secret, subject, role string, method jwt.SigningMethod) string {
	t.Helper()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func (s *server) do(t *testing.T, method, path, bearer string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestAuthentication(t *testing.T) {
	s := newServer(t, Options{JWTSecret: testSecret})

	rec, env := s.do(t, http.MethodGet, "/v1/brand/top-influencers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "unauthorized", env.Error.Code)
	assert.NotEmpty(t, env.Error.RequestID)

	bad := token(t, "other-secret", "brand-1", "brand", jwt.SigningMethodHS256)
	rec, _ = s.do(t, http.MethodGet, "/v1/brand/top-influencers", bad, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	wrongAlg := token(t, testSecret, "brand-1", "brand", jwt.SigningMethodHS512)
	rec, _ = s.do(t, http.MethodGet, "/v1/brand/top-influencers", wrongAlg, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	unknownRole := token(t, testSecret, "brand-1", "superuser", jwt.SigningMethodHS256)
	rec, _ = s.do(t, http.MethodGet, "/v1/brand/top-influencers", unknownRole, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	ok := token(t, testSecret, "brand-1", "brand", jwt.SigningMethodHS256)
	rec, env = s.do(t, http.MethodGet, "/v1/brand/top-influencers", ok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", env.Status)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newServer(t, Options{JWTSecret: testSecret})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestCampaignFlow(t *testing.T) {
	s := newServer(t, Options{JWTSecret: testSecret})
	brand := token(t, testSecret, "brand-1", "brand", jwt.SigningMethodHS256)
	otherBrand := token(t, testSecret, "brand-2", "brand", jwt.SigningMethodHS256)

	rec, env := s.do(t, http.MethodPost, "/v1/campaigns", brand, map[string]interface{}{
		"title":             "Autumn",
		"start_date":        "2026-09-01T00:00:00Z",
		"end_date":          "2026-10-01T00:00:00Z",
		"budget":            1500,
		"required_channels": []string{"instagram"},
		"min_followers":     100,
		"commission_rate":   8,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID               string   `json:"id"`
		Status           string   `json:"status"`
		RequiredChannels []string `json:"required_channels"`
		Budget           float64  `json:"budget"`
		MinFollowers     int64    `json:"min_followers"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "draft", created.Status)
	assert.Equal(t, []string{"instagram"}, created.RequiredChannels)
	assert.Equal(t, 1500.0, created.Budget)
	assert.Equal(t, int64(100), created.MinFollowers)

	path := fmt.Sprintf("/v1/campaigns/%s", created.ID)

	rec, env = s.do(t, http.MethodPost, path+"/activate", otherBrand, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", env.Error.Code)

	rec, _ = s.do(t, http.MethodPost, path+"/activate", brand, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = s.do(t, http.MethodPost, path+"/status", brand, map[string]string{"status": "draft"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "invalid_transition", env.Error.Code)

	rec, env = s.do(t, http.MethodPost, path+"/complete", brand, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, string(env.Data), `"completed"`)

	rec, env = s.do(t, http.MethodGet, "/v1/campaigns?status=bogus", brand, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", env.Error.Code)
}

func TestInvalidJSON(t *testing.T) {
	s := newServer(t, Options{JWTSecret: testSecret})
	brand := token(t, testSecret, "brand-1", "brand", jwt.SigningMethodHS256)

	req := httptest.NewRequest(http.MethodPost, "/v1/campaigns", bytes.NewBufferString("{"))
	req.Header.Set("Authorization", "Bearer "+brand)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_json")
}

func TestTrackIsPublicAndLimited(t *testing.T) {
	limiter := NewRateLimiter(rate.Every(time.Minute), 2)
	t.Cleanup(limiter.Stop)
	s := newServer(t, Options{JWTSecret: testSecret, Limiter: limiter})
	s.store.SeedContent(&domain.CampaignContent{ID: "content-1", Status: domain.ContentPublished})

	body := map[string]string{"content_id": "content-1", "type": "view"}
	rec, env := s.do(t, http.MethodPost, "/v1/track", "", body)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	assert.Equal(t, "tracked", env.Message)

	rec, env = s.do(t, http.MethodPost, "/v1/track", "", map[string]string{"content_id": "content-1", "type": "hover"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", env.Error.Code)

	rec, env = s.do(t, http.MethodPost, "/v1/track", "", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "rate_limited", env.Error.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestReadinessAndMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	ready := errors.New("postgres down")
	s := newServer(t, Options{
		JWTSecret: testSecret,
		Gatherer:  reg,
		Ready:     func(context.Context) error { return ready },
	})

	rec, env := s.do(t, http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "not_ready", env.Error.Code)

	ready = nil
	rec, _ = s.do(t, http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	mrec := httptest.NewRecorder()
	s.router.ServeHTTP(mrec, req)
	assert.Equal(t, http.StatusOK, mrec.Code)
}

func TestMapDomainError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("campaign x: %w", domain.ErrNotFound), http.StatusNotFound, "not_found"},
		{domain.ErrValidation, http.StatusBadRequest, "validation_error"},
		{domain.ErrInvalidTransition, http.StatusConflict, "invalid_transition"},
		{domain.ErrVersionConflict, http.StatusConflict, "version_conflict"},
		{domain.ErrAlreadyExists, http.StatusConflict, "already_exists"},
		{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{errors.New("disk on fire"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		status, code := mapDomainError(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.code, code)
	}
}

func TestInternalErrorsAreHidden(t *testing.T) {
	brand := token(t, testSecret, "brand-1", "brand", jwt.SigningMethodHS256)

	s := newServer(t, Options{JWTSecret: testSecret})
	s.store.Errors["CountCampaignsByStatus"] = errors.New("pq: relation does not exist")
	rec, env := s.do(t, http.MethodGet, "/v1/brand/dashboard", brand, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", env.Error.Message)

	debug := newServer(t, Options{JWTSecret: testSecret, DebugErrors: true})
	debug.store.Errors["CountCampaignsByStatus"] = errors.New("pq: relation does not exist")
	_, env = debug.do(t, http.MethodGet, "/v1/brand/dashboard", brand, nil)
	assert.Contains(t, env.Error.Message, "relation does not exist")
}
