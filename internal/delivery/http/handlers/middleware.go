package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	actorKey     contextKey = "actor"
)

// Claims carried by access tokens. The subject is the caller id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get("X-Request-ID"))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey).(string)
	return requestID
}

func (h *Handler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := requestIDFromContext(r.Context())
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token", requestID)
			return
		}
		actor, err := h.parseActor(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized", "invalid token", requestID)
			return
		}
		actor.RequestID = requestID
		ctx := context.WithValue(r.Context(), actorKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) parseActor(raw string) (domain.Actor, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return h.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domain.Actor{}, err
	}
	role := domain.Role(claims.Role)
	switch role {
	case domain.RoleBrand, domain.RoleInfluencer, domain.RoleCustomer, domain.RoleAdmin:
	default:
		return domain.Actor{}, errors.New("unknown role")
	}
	if claims.Subject == "" {
		return domain.Actor{}, errors.New("missing subject")
	}
	return domain.Actor{ID: claims.Subject, Role: role}, nil
}

func actorFromContext(ctx context.Context) domain.Actor {
	actor, _ := ctx.Value(actorKey).(domain.Actor)
	return actor
}
