package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	publisher "github.com/LavaJover/shvark-campaign-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase"
)

// CampaignOperation describes one lifecycle change of a campaign.
type CampaignOperation struct {
	Campaign  *domain.Campaign
	Operation string
	OldStatus domain.CampaignStatus
	NewStatus domain.CampaignStatus
	// Cascade is set for completion and cancellation.
	Cascade   *domain.CampaignCascade
	Actor     domain.Actor
	CreatedAt time.Time
}

// ProcessCampaignOperation applies the status write (and cascade, if any)
// atomically, then emits the event, audit row and metrics.
func (uc *DefaultCampaignUsecase) ProcessCampaignOperation(ctx context.Context, op *CampaignOperation) (*domain.CampaignMetrics, error) {
	var (
		rolled *domain.CampaignMetrics
		err    error
	)
	if op.Cascade != nil {
		rolled, err = uc.campaignRepo.ApplyCascade(*op.Cascade)
	} else {
		err = uc.campaignRepo.UpdateCampaignStatus(op.Campaign.ID, op.Campaign.Version, op.NewStatus)
	}
	if err != nil {
		uc.Metrics.RecordError(op.Operation)
		return nil, err
	}

	op.Campaign.Status = op.NewStatus
	op.Campaign.Version++
	op.Campaign.UpdatedAt = op.CreatedAt

	uc.afterCampaignOperation(ctx, op)
	return rolled, nil
}

func (uc *DefaultCampaignUsecase) afterCampaignOperation(ctx context.Context, op *CampaignOperation) {
	uc.Metrics.RecordCampaignTransition(string(op.OldStatus), string(op.NewStatus))
	usecase.RecordStatusChange(ctx, uc.audit, op.Actor, "campaign", op.Campaign.ID, string(op.OldStatus), string(op.NewStatus))

	event := publisher.CampaignStatusEvent{
		CampaignID: op.Campaign.ID,
		BrandID:    op.Campaign.BrandID,
		OldStatus:  string(op.OldStatus),
		NewStatus:  string(op.NewStatus),
		ActorID:    op.Actor.ID,
		OccurredAt: op.CreatedAt,
	}
	usecase.Publish(uc.publisher, op.Operation, func(p usecase.EventPublisher) error {
		return p.PublishCampaignStatus(event)
	})

	if op.Cascade != nil {
		uc.invalidateRankings(ctx, op.Campaign.BrandID)
	}

	slog.Info("campaign status changed",
		"campaign_id", op.Campaign.ID,
		"operation", op.Operation,
		"from", op.OldStatus,
		"to", op.NewStatus,
		"request_id", op.Actor.RequestID,
	)
}

func (uc *DefaultCampaignUsecase) invalidateRankings(ctx context.Context, brandID string) {
	if uc.rankingCache == nil {
		return
	}
	if err := uc.rankingCache.Invalidate(ctx, brandID); err != nil {
		slog.Warn("failed to invalidate ranking cache", "brand_id", brandID, "error", err)
	}
}
