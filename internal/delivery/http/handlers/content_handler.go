package handlers

import (
	"net/http"

	httpdto "github.com/LavaJover/shvark-campaign-service/internal/delivery/http/dto"
	contentdto "github.com/LavaJover/shvark-campaign-service/internal/usecase/dto/content"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateContent(w http.ResponseWriter, r *http.Request) {
	var req httpdto.CreateContentRequest
	if !h.decode(w, r, &req) {
		return
	}
	content, err := h.content.CreateContent(r.Context(), actorFromContext(r.Context()), &contentdto.CreateContentInput{
		CampaignID: req.CampaignID,
		Title:      req.Title,
		Body:       req.Body,
		ProductIDs: req.ProductIDs,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "content created", httpdto.NewContentResponse(content))
}

func (h *Handler) GetContent(w http.ResponseWriter, r *http.Request) {
	content, err := h.content.GetContent(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "content_id"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", httpdto.NewContentResponse(content))
}

func (h *Handler) SubmitContent(w http.ResponseWriter, r *http.Request) {
	content, err := h.content.SubmitContent(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "content_id"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "content submitted", httpdto.NewContentResponse(content))
}

func (h *Handler) ReviewContent(w http.ResponseWriter, r *http.Request) {
	var req httpdto.ReviewContentRequest
	if !h.decode(w, r, &req) {
		return
	}
	content, err := h.content.ReviewContent(r.Context(), actorFromContext(r.Context()), &contentdto.ReviewContentInput{
		ContentID: chi.URLParam(r, "content_id"),
		Action:    contentdto.ReviewAction(req.Action),
		Feedback:  req.Feedback,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "content reviewed", httpdto.NewContentResponse(content))
}

func (h *Handler) PublishContent(w http.ResponseWriter, r *http.Request) {
	var req httpdto.PublishContentRequest
	if !h.decode(w, r, &req) {
		return
	}
	content, err := h.content.PublishContent(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "content_id"), req.PostURL)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "content published", httpdto.NewContentResponse(content))
}

// TrackInteraction is public; callers are throttled per IP.
func (h *Handler) TrackInteraction(w http.ResponseWriter, r *http.Request) {
	var req httpdto.TrackInteractionRequest
	if !h.decode(w, r, &req) {
		return
	}
	err := h.content.TrackInteraction(r.Context(), &contentdto.TrackInteractionInput{
		ContentID: req.ContentID,
		ProductID: req.ProductID,
		SessionID: req.SessionID,
		Type:      req.Type,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusAccepted, "tracked", nil)
}
