package handlers

import (
	"net/http"

	httpdto "github.com/LavaJover/shvark-campaign-service/internal/delivery/http/dto"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) TopInfluencers(w http.ResponseWriter, r *http.Request) {
	rankings, err := h.analytics.TopInfluencers(r.Context(), actorFromContext(r.Context()))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", rankings)
}

func (h *Handler) GetContribution(w http.ResponseWriter, r *http.Request) {
	view, err := h.analytics.Contribution(r.Context(), actorFromContext(r.Context()),
		chi.URLParam(r, "campaign_id"), chi.URLParam(r, "influencer_id"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", view)
}

func (h *Handler) GetCampaignMetrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.analytics.GetCampaignMetrics(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "campaign_id"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", httpdto.NewMetricsResponse(m))
}

func (h *Handler) BrandDashboard(w http.ResponseWriter, r *http.Request) {
	out, err := h.analytics.BrandDashboard(r.Context(), actorFromContext(r.Context()))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", out)
}

func (h *Handler) ProgressAlerts(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaigns.CompletedProgressAlerts(r.Context(), actorFromContext(r.Context()))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	out := make([]httpdto.CampaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, httpdto.NewCampaignResponse(c))
	}
	writeSuccess(w, http.StatusOK, "", out)
}
