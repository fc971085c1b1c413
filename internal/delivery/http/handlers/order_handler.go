package handlers

import (
	"net/http"

	httpdto "github.com/LavaJover/shvark-campaign-service/internal/delivery/http/dto"
	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	orderdto "github.com/LavaJover/shvark-campaign-service/internal/usecase/dto/order"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) RegisterInfluencer(w http.ResponseWriter, r *http.Request) {
	var req httpdto.RegisterInfluencerRequest
	if !h.decode(w, r, &req) {
		return
	}
	influencer, err := h.attribution.RegisterInfluencer(r.Context(), actorFromContext(r.Context()), &orderdto.RegisterInfluencerInput{
		Name:           req.Name,
		Email:          req.Email,
		Followers:      req.Followers,
		Channels:       req.Channels,
		CommissionRate: req.CommissionRate,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "profile saved", httpdto.NewInfluencerResponse(influencer))
}

func (h *Handler) InfluencerCommissions(w http.ResponseWriter, r *http.Request) {
	totals, err := h.attribution.InfluencerCommissions(r.Context(), actorFromContext(r.Context()))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", totals)
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req httpdto.CreateProductRequest
	if !h.decode(w, r, &req) {
		return
	}
	product, err := h.attribution.CreateProduct(r.Context(), actorFromContext(r.Context()), &orderdto.CreateProductInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "product created", httpdto.NewProductResponse(product))
}

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req httpdto.PlaceOrderRequest
	if !h.decode(w, r, &req) {
		return
	}
	items := make([]orderdto.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, orderdto.OrderItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	order, err := h.attribution.PlaceOrder(r.Context(), actorFromContext(r.Context()), &orderdto.PlaceOrderInput{
		Items:        items,
		ReferralCode: req.ReferralCode,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "order placed", httpdto.NewOrderResponse(order))
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.attribution.GetOrder(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "order_id"))
	h.writeOrder(w, r, order, err, "")
}

func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.attribution.CancelOrder(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "order_id"))
	h.writeOrder(w, r, order, err, "order cancelled")
}

func (h *Handler) MarkCommissionPaid(w http.ResponseWriter, r *http.Request) {
	order, err := h.attribution.MarkCommissionPaid(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "order_id"))
	h.writeOrder(w, r, order, err, "commission paid")
}

func (h *Handler) CancelAttribution(w http.ResponseWriter, r *http.Request) {
	order, err := h.attribution.CancelAttribution(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "order_id"))
	h.writeOrder(w, r, order, err, "commission cancelled")
}

func (h *Handler) writeOrder(w http.ResponseWriter, r *http.Request, order *domain.Order, err error, message string) {
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, message, httpdto.NewOrderResponse(order))
}
