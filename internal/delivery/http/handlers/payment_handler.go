package handlers

import (
	"net/http"

	httpdto "github.com/LavaJover/shvark-campaign-service/internal/delivery/http/dto"
	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	paymentdto "github.com/LavaJover/shvark-campaign-service/internal/usecase/dto/payment"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req httpdto.RecordPaymentRequest
	if !h.decode(w, r, &req) {
		return
	}
	payment, err := h.payments.RecordPayment(r.Context(), actorFromContext(r.Context()), &paymentdto.RecordPaymentInput{
		CampaignID:   req.CampaignID,
		InfluencerID: req.InfluencerID,
		Amount:       req.Amount,
		Method:       req.Method,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "payment recorded", httpdto.NewPaymentResponse(payment))
}

func (h *Handler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	var req httpdto.UpdatePaymentStatusRequest
	if !h.decode(w, r, &req) {
		return
	}
	payment, err := h.payments.UpdatePaymentStatus(r.Context(), actorFromContext(r.Context()),
		chi.URLParam(r, "payment_id"), domain.PaymentStatus(req.Status))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "payment updated", httpdto.NewPaymentResponse(payment))
}

func (h *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.payments.GetPayments(r.Context(), actorFromContext(r.Context()),
		chi.URLParam(r, "campaign_id"), r.URL.Query().Get("influencer_id"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	out := make([]httpdto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, httpdto.NewPaymentResponse(p))
	}
	writeSuccess(w, http.StatusOK, "", out)
}
