package handlers

import (
	"context"
	"log/slog"
	"net/http"

	analyticsUsecase "github.com/LavaJover/shvark-campaign-service/internal/usecase/analytics"
	attributionUsecase "github.com/LavaJover/shvark-campaign-service/internal/usecase/attribution"
	campaignUsecase "github.com/LavaJover/shvark-campaign-service/internal/usecase/campaign"
	contentUsecase "github.com/LavaJover/shvark-campaign-service/internal/usecase/content"
	paymentUsecase "github.com/LavaJover/shvark-campaign-service/internal/usecase/payment"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	campaigns   campaignUsecase.CampaignUsecase
	analytics   analyticsUsecase.AnalyticsUsecase
	content     contentUsecase.ContentUsecase
	attribution attributionUsecase.AttributionUsecase
	payments    paymentUsecase.PaymentUsecase
	logger      *slog.Logger
	jwtSecret   []byte
	debugErrors bool
}

type Options struct {
	JWTSecret string
	// DebugErrors exposes internal error text in 500 responses.
	DebugErrors bool
	Logger      *slog.Logger
	// Ready reports whether the backing stores are reachable.
	Ready    func(ctx context.Context) error
	Gatherer prometheus.Gatherer
	Limiter  *RateLimiter
}

func NewHandler(
	campaigns campaignUsecase.CampaignUsecase,
	analytics analyticsUsecase.AnalyticsUsecase,
	content contentUsecase.ContentUsecase,
	attribution attributionUsecase.AttributionUsecase,
	payments paymentUsecase.PaymentUsecase,
	opts Options,
) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		campaigns:   campaigns,
		analytics:   analytics,
		content:     content,
		attribution: attribution,
		payments:    payments,
		logger:      logger,
		jwtSecret:   []byte(opts.JWTSecret),
		debugErrors: opts.DebugErrors,
	}
}

func NewRouter(h *Handler, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestIDMiddleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, http.StatusOK, "ok", nil)
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if opts.Ready != nil {
			if err := opts.Ready(r.Context()); err != nil {
				writeError(w, http.StatusServiceUnavailable, "not_ready", err.Error(), requestIDFromContext(r.Context()))
				return
			}
		}
		writeSuccess(w, http.StatusOK, "ready", nil)
	})
	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if opts.Limiter != nil {
				r.Use(opts.Limiter.Middleware)
			}
			r.Post("/track", h.TrackInteraction)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.authMiddleware)

			r.Route("/campaigns", func(r chi.Router) {
				r.Post("/", h.CreateCampaign)
				r.Get("/", h.ListCampaigns)
				r.Route("/{campaign_id}", func(r chi.Router) {
					r.Get("/", h.GetCampaign)
					r.Post("/activate", h.ActivateCampaign)
					r.Post("/status", h.ChangeCampaignStatus)
					r.Post("/complete", h.CompleteCampaign)
					r.Post("/cancel", h.CancelCampaign)
					r.Get("/metrics", h.GetCampaignMetrics)
					r.Get("/payments", h.GetPayments)

					r.Get("/participants", h.GetParticipants)
					r.Post("/apply", h.Apply)
					r.Post("/invites", h.Invite)
					r.Post("/accept", h.AcceptInvite)
					r.Post("/deliverables/{index}/complete", h.CompleteDeliverable)
					r.Route("/participants/{influencer_id}", func(r chi.Router) {
						r.Post("/approve", h.ApproveParticipation)
						r.Post("/deliverables", h.AddDeliverable)
						r.Put("/progress", h.UpdateProgress)
						r.Put("/metrics", h.UpdateParticipationMetrics)
					})
					r.Get("/influencers/{influencer_id}/contribution", h.GetContribution)
				})
			})

			r.Route("/brand", func(r chi.Router) {
				r.Get("/top-influencers", h.TopInfluencers)
				r.Get("/dashboard", h.BrandDashboard)
				r.Get("/alerts", h.ProgressAlerts)
			})

			r.Route("/content", func(r chi.Router) {
				r.Post("/", h.CreateContent)
				r.Route("/{content_id}", func(r chi.Router) {
					r.Get("/", h.GetContent)
					r.Post("/submit", h.SubmitContent)
					r.Post("/review", h.ReviewContent)
					r.Post("/publish", h.PublishContent)
				})
			})

			r.Post("/influencers/me", h.RegisterInfluencer)
			r.Get("/influencers/me/commissions", h.InfluencerCommissions)
			r.Post("/products", h.CreateProduct)

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.PlaceOrder)
				r.Route("/{order_id}", func(r chi.Router) {
					r.Get("/", h.GetOrder)
					r.Post("/cancel", h.CancelOrder)
					r.Post("/commission/paid", h.MarkCommissionPaid)
					r.Post("/commission/cancel", h.CancelAttribution)
				})
			})

			r.Post("/payments", h.RecordPayment)
			r.Patch("/payments/{payment_id}", h.UpdatePaymentStatus)
		})
	})

	return r
}
