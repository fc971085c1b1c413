package handlers

import (
	"net/http"
	"strconv"

	httpdto "github.com/LavaJover/shvark-campaign-service/internal/delivery/http/dto"
	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	campaigndto "github.com/LavaJover/shvark-campaign-service/internal/usecase/dto/campaign"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req httpdto.CreateCampaignRequest
	if !h.decode(w, r, &req) {
		return
	}
	campaign, err := h.campaigns.CreateCampaign(r.Context(), actorFromContext(r.Context()), &campaigndto.CreateCampaignInput{
		Title:            req.Title,
		Description:      req.Description,
		Status:           req.Status,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Budget:           req.Budget,
		RequiredChannels: req.RequiredChannels,
		MinFollowers:     req.MinFollowers,
		CommissionRate:   req.CommissionRate,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "campaign created", httpdto.NewCampaignResponse(campaign))
}

func (h *Handler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))
	out, err := h.campaigns.ListBrandCampaigns(r.Context(), actorFromContext(r.Context()), &campaigndto.ListCampaignsInput{
		Status: query.Get("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	campaigns := make([]httpdto.CampaignResponse, 0, len(out.Campaigns))
	for _, c := range out.Campaigns {
		campaigns = append(campaigns, httpdto.NewCampaignResponse(c))
	}
	writeSuccess(w, http.StatusOK, "", httpdto.CampaignListResponse{
		Campaigns:  campaigns,
		Pagination: out.Pagination,
	})
}

func (h *Handler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.campaigns.GetCampaign(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "campaign_id"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", httpdto.NewCampaignResponse(campaign))
}

func (h *Handler) ActivateCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.campaigns.ActivateCampaign(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "campaign_id"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "campaign activated", httpdto.NewCampaignResponse(campaign))
}

func (h *Handler) ChangeCampaignStatus(w http.ResponseWriter, r *http.Request) {
	var req httpdto.ChangeStatusRequest
	if !h.decode(w, r, &req) {
		return
	}
	campaign, err := h.campaigns.ChangeCampaignStatus(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "campaign_id"), domain.CampaignStatus(req.Status))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "campaign status updated", httpdto.NewCampaignResponse(campaign))
}

func (h *Handler) CompleteCampaign(w http.ResponseWriter, r *http.Request) {
	out, err := h.campaigns.CompleteCampaign(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "campaign_id"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "campaign completed", cascadeResponse(out))
}

func (h *Handler) CancelCampaign(w http.ResponseWriter, r *http.Request) {
	out, err := h.campaigns.CancelCampaign(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "campaign_id"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "campaign cancelled", cascadeResponse(out))
}

func cascadeResponse(out *campaigndto.CascadeOutput) httpdto.CascadeResponse {
	return httpdto.CascadeResponse{
		Campaign: httpdto.NewCampaignResponse(out.Campaign),
		Metrics:  httpdto.NewMetricsResponse(out.Metrics),
	}
}

func (h *Handler) GetParticipants(w http.ResponseWriter, r *http.Request) {
	participations, err := h.campaigns.GetParticipations(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "campaign_id"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", participationList(participations))
}

func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	p, err := h.campaigns.Apply(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "campaign_id"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "application sent", httpdto.NewParticipationResponse(p))
}

func (h *Handler) Invite(w http.ResponseWriter, r *http.Request) {
	var req httpdto.InviteRequest
	if !h.decode(w, r, &req) {
		return
	}
	p, err := h.campaigns.Invite(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "campaign_id"), req.InfluencerID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "invite sent", httpdto.NewParticipationResponse(p))
}

func (h *Handler) ApproveParticipation(w http.ResponseWriter, r *http.Request) {
	p, err := h.campaigns.ApproveParticipation(r.Context(), actorFromContext(r.Context()),
		chi.URLParam(r, "campaign_id"), chi.URLParam(r, "influencer_id"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "participation approved", httpdto.NewParticipationResponse(p))
}

func (h *Handler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	p, err := h.campaigns.AcceptInvite(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "campaign_id"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "invite accepted", httpdto.NewParticipationResponse(p))
}

func (h *Handler) AddDeliverable(w http.ResponseWriter, r *http.Request) {
	var req httpdto.AddDeliverableRequest
	if !h.decode(w, r, &req) {
		return
	}
	p, err := h.campaigns.AddDeliverable(r.Context(), actorFromContext(r.Context()), &campaigndto.AddDeliverableInput{
		CampaignID:   chi.URLParam(r, "campaign_id"),
		InfluencerID: chi.URLParam(r, "influencer_id"),
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "deliverable added", httpdto.NewParticipationResponse(p))
}

func (h *Handler) CompleteDeliverable(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "deliverable index must be a number", requestIDFromContext(r.Context()))
		return
	}
	p, err := h.campaigns.CompleteDeliverable(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "campaign_id"), index)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "deliverable completed", httpdto.NewParticipationResponse(p))
}

func (h *Handler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	var req httpdto.UpdateProgressRequest
	if !h.decode(w, r, &req) {
		return
	}
	p, err := h.campaigns.UpdateProgress(r.Context(), actorFromContext(r.Context()), &campaigndto.UpdateProgressInput{
		CampaignID:   chi.URLParam(r, "campaign_id"),
		InfluencerID: chi.URLParam(r, "influencer_id"),
		Progress:     req.Progress,
		Override:     req.Override,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "progress updated", httpdto.NewParticipationResponse(p))
}

func (h *Handler) UpdateParticipationMetrics(w http.ResponseWriter, r *http.Request) {
	var req httpdto.UpdateMetricsRequest
	if !h.decode(w, r, &req) {
		return
	}
	p, err := h.campaigns.UpdateParticipationMetrics(r.Context(), actorFromContext(r.Context()), &campaigndto.UpdateMetricsInput{
		CampaignID:      chi.URLParam(r, "campaign_id"),
		InfluencerID:    chi.URLParam(r, "influencer_id"),
		EngagementRate:  req.EngagementRate,
		Reach:           req.Reach,
		Clicks:          req.Clicks,
		Conversions:     req.Conversions,
		TimelinessScore: req.TimelinessScore,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "metrics updated", httpdto.NewParticipationResponse(p))
}

func participationList(participations []*domain.Participation) []httpdto.ParticipationResponse {
	out := make([]httpdto.ParticipationResponse, 0, len(participations))
	for _, p := range participations {
		out = append(out, httpdto.NewParticipationResponse(p))
	}
	return out
}
