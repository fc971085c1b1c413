package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	publisher "github.com/LavaJover/shvark-campaign-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase"
	orderdto "github.com/LavaJover/shvark-campaign-service/internal/usecase/dto/order"
	"github.com/google/uuid"
)

// PlaceOrder prices the items from the catalog and attributes the order to
// the influencer behind the referral code, if any.
func (uc *DefaultAttributionUsecase) PlaceOrder(ctx context.Context, actor domain.Actor, input *orderdto.PlaceOrderInput) (*domain.Order, error) {
	if err := usecase.RequireRole(actor, domain.RoleCustomer); err != nil {
		return nil, err
	}
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: order has no items", domain.ErrValidation)
	}

	items := make([]domain.OrderItem, len(input.Items))
	productIDs := make([]string, 0, len(input.Items))
	seen := make(map[string]bool, len(input.Items))
	for i, item := range input.Items {
		items[i] = domain.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity}
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			productIDs = append(productIDs, item.ProductID)
		}
	}

	catalog, err := uc.productRepo.GetProductsByIDs(productIDs)
	if err != nil {
		return nil, err
	}
	total, err := domain.PriceItems(items, catalog)
	if err != nil {
		return nil, err
	}

	code := strings.TrimSpace(input.ReferralCode)
	attribution, brandID, err := uc.resolveReferral(code)
	if err != nil {
		return nil, err
	}
	if attribution != nil {
		attribution.CommissionAmount = domain.Commission(total, attribution.CommissionRate)
	}

	now := time.Now()
	order := &domain.Order{
		ID:          uuid.New().String(),
		CustomerID:  actor.ID,
		Items:       items,
		TotalAmount: total,
		Status:      domain.OrderPending,
		Attribution: attribution,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.orderRepo.CreateOrder(order); err != nil {
		uc.Metrics.RecordError("place_order")
		return nil, err
	}

	uc.afterOrderPlaced(ctx, order, code, brandID)
	return order, nil
}

// resolveReferral tries a campaign scoped participation code first, then an
// influencer code. A code that matches nothing yields no attribution.
func (uc *DefaultAttributionUsecase) resolveReferral(code string) (*domain.Attribution, string, error) {
	if code == "" {
		return nil, "", nil
	}

	p, err := uc.participationRepo.GetParticipationByReferralCode(code)
	switch {
	case err == nil:
		if p.Status != domain.ParticipationActive {
			slog.Warn("referral code of inactive participation", "code", code, "status", p.Status)
			return nil, "", nil
		}
		campaign, err := uc.campaignRepo.GetCampaignByID(p.CampaignID)
		if err != nil {
			return nil, "", err
		}
		influencer, err := uc.influencerRepo.GetInfluencerByID(p.InfluencerID)
		if err != nil {
			return nil, "", err
		}
		rate := campaign.CommissionRate
		if rate <= 0 {
			rate = influencer.CommissionRate
		}
		return &domain.Attribution{
			ReferralCode:   code,
			InfluencerID:   p.InfluencerID,
			CampaignID:     p.CampaignID,
			CommissionRate: rate,
			Status:         domain.AttributionPending,
		}, campaign.BrandID, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, "", err
	}

	influencer, err := uc.influencerRepo.GetInfluencerByReferralCode(code)
	switch {
	case err == nil:
		return &domain.Attribution{
			ReferralCode:   code,
			InfluencerID:   influencer.ID,
			CommissionRate: influencer.CommissionRate,
			Status:         domain.AttributionPending,
		}, "", nil
	case errors.Is(err, domain.ErrNotFound):
		return nil, "", nil
	default:
		return nil, "", err
	}
}

func (uc *DefaultAttributionUsecase) afterOrderPlaced(ctx context.Context, order *domain.Order, code, brandID string) {
	a := order.Attribution
	switch {
	case a == nil && code != "":
		slog.Warn("referral code did not resolve, order left unattributed", "order_id", order.ID, "code", code)
		uc.Metrics.RecordUnresolvedReferral()
		uc.Metrics.RecordOrderPlaced("none", order.TotalAmount)
		return
	case a == nil:
		uc.Metrics.RecordOrderPlaced("none", order.TotalAmount)
		return
	case a.CampaignID != "":
		uc.Metrics.RecordOrderPlaced("campaign", order.TotalAmount)
	default:
		uc.Metrics.RecordOrderPlaced("influencer", order.TotalAmount)
	}
	uc.Metrics.RecordCommission(string(a.Status), a.CommissionAmount)

	if brandID != "" && uc.rankingCache != nil {
		if err := uc.rankingCache.Invalidate(ctx, brandID); err != nil {
			slog.Warn("failed to invalidate ranking cache", "brand_id", brandID, "error", err)
		}
	}

	event := publisher.OrderAttributedEvent{
		OrderID:          order.ID,
		InfluencerID:     a.InfluencerID,
		CampaignID:       a.CampaignID,
		TotalAmount:      order.TotalAmount,
		CommissionAmount: a.CommissionAmount,
		Status:           string(a.Status),
		OccurredAt:       order.CreatedAt,
	}
	usecase.Publish(uc.publisher, "order_attributed", func(p usecase.EventPublisher) error {
		return p.PublishOrderAttributed(event)
	})
}
