package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	publisher "github.com/LavaJover/shvark-campaign-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase"
)

func (uc *DefaultAttributionUsecase) GetOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	if err := usecase.RequireRole(actor, domain.RoleCustomer, domain.RoleAdmin); err != nil {
		return nil, err
	}
	order, err := uc.orderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin && order.CustomerID != actor.ID {
		return nil, fmt.Errorf("%w: order %s", domain.ErrNotFound, orderID)
	}
	return order, nil
}

// CancelOrder cancels a pending or paid order together with its pending
// attribution and the revenue it added to the participation.
func (uc *DefaultAttributionUsecase) CancelOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	order, err := uc.GetOrder(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderPending && order.Status != domain.OrderPaid {
		return nil, fmt.Errorf("%w: order %s is %s", domain.ErrInvalidTransition, orderID, order.Status)
	}

	if err := uc.orderRepo.CancelOrder(orderID); err != nil {
		return nil, err
	}

	oldStatus := order.Status
	order.Status = domain.OrderCancelled
	if a := order.Attribution; a != nil {
		if a.Status == domain.AttributionPending {
			a.Status = domain.AttributionCancelled
			uc.Metrics.RecordCommission(string(a.Status), a.CommissionAmount)
		}
		uc.invalidateCampaignRanking(ctx, a.CampaignID)
	}
	usecase.RecordStatusChange(ctx, uc.audit, actor, "order", order.ID, string(oldStatus), string(order.Status))
	return order, nil
}

func (uc *DefaultAttributionUsecase) MarkCommissionPaid(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	return uc.settleAttribution(ctx, actor, orderID, domain.AttributionPaid)
}

func (uc *DefaultAttributionUsecase) CancelAttribution(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	return uc.settleAttribution(ctx, actor, orderID, domain.AttributionCancelled)
}

// settleAttribution moves a pending attribution to paid or cancelled. A brand
// may only settle attributions of its own campaigns.
func (uc *DefaultAttributionUsecase) settleAttribution(ctx context.Context, actor domain.Actor, orderID string, next domain.AttributionStatus) (*domain.Order, error) {
	if err := usecase.RequireRole(actor, domain.RoleBrand, domain.RoleAdmin); err != nil {
		return nil, err
	}
	order, err := uc.orderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	a := order.Attribution
	if a == nil {
		return nil, fmt.Errorf("%w: order %s has no attribution", domain.ErrNotFound, orderID)
	}
	if actor.Role == domain.RoleBrand {
		if a.CampaignID == "" {
			return nil, fmt.Errorf("%w: order %s", domain.ErrNotFound, orderID)
		}
		if _, err := usecase.OwnedCampaign(uc.campaignRepo, actor, a.CampaignID); err != nil {
			return nil, err
		}
	}

	oldStatus := a.Status
	if err := a.TransitionTo(next); err != nil {
		return nil, err
	}
	if err := uc.orderRepo.UpdateAttributionStatus(orderID, oldStatus, next); err != nil {
		return nil, err
	}

	uc.Metrics.RecordCommission(string(next), a.CommissionAmount)
	usecase.RecordStatusChange(ctx, uc.audit, actor, "attribution", order.ID, string(oldStatus), string(next))

	event := publisher.OrderAttributedEvent{
		OrderID:          order.ID,
		InfluencerID:     a.InfluencerID,
		CampaignID:       a.CampaignID,
		TotalAmount:      order.TotalAmount,
		CommissionAmount: a.CommissionAmount,
		Status:           string(next),
		OccurredAt:       order.UpdatedAt,
	}
	usecase.Publish(uc.publisher, "attribution_"+string(next), func(p usecase.EventPublisher) error {
		return p.PublishOrderAttributed(event)
	})
	return order, nil
}

// InfluencerCommissions sums pending and paid commissions of the caller.
// Cancelled attributions and unattributed orders are never counted.
func (uc *DefaultAttributionUsecase) InfluencerCommissions(ctx context.Context, actor domain.Actor) (*domain.CommissionTotals, error) {
	if err := usecase.RequireRole(actor, domain.RoleInfluencer); err != nil {
		return nil, err
	}
	return uc.orderRepo.GetCommissionTotals(actor.ID)
}

func (uc *DefaultAttributionUsecase) invalidateCampaignRanking(ctx context.Context, campaignID string) {
	if campaignID == "" || uc.rankingCache == nil {
		return
	}
	campaign, err := uc.campaignRepo.GetCampaignByID(campaignID)
	if err != nil {
		slog.Warn("failed to load campaign for cache invalidation", "campaign_id", campaignID, "error", err)
		return
	}
	if err := uc.rankingCache.Invalidate(ctx, campaign.BrandID); err != nil {
		slog.Warn("failed to invalidate ranking cache", "brand_id", campaign.BrandID, "error", err)
	}
}
