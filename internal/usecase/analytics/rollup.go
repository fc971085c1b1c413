package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase"
)

// RecomputeMetrics derives and stores the campaign rollup from its
// participations, content, orders and payments.
func (uc *DefaultAnalyticsUsecase) RecomputeMetrics(ctx context.Context, campaignID string) (*domain.CampaignMetrics, error) {
	started := time.Now()
	input, err := uc.metricsRepo.CollectRollupInput(campaignID)
	if err != nil {
		uc.Metrics.RecordError("rollup")
		return nil, err
	}

	rolled := domain.RollupCampaignMetrics(*input, time.Now())
	if err := uc.metricsRepo.SaveCampaignMetrics(&rolled); err != nil {
		uc.Metrics.RecordError("rollup")
		return nil, err
	}
	uc.Metrics.RecordRollupDuration(time.Since(started).Seconds())
	return &rolled, nil
}

// GetCampaignMetrics returns the stored rollup, computing it on first read.
func (uc *DefaultAnalyticsUsecase) GetCampaignMetrics(ctx context.Context, actor domain.Actor, campaignID string) (*domain.CampaignMetrics, error) {
	if _, err := usecase.OwnedCampaign(uc.campaignRepo, actor, campaignID); err != nil {
		return nil, err
	}

	stored, err := uc.metricsRepo.GetCampaignMetrics(campaignID)
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return uc.RecomputeMetrics(ctx, campaignID)
}

// RefreshActiveCampaigns recomputes every active campaign. A failing campaign
// does not stop the others; the first error is returned.
func (uc *DefaultAnalyticsUsecase) RefreshActiveCampaigns(ctx context.Context) (int, error) {
	ids, err := uc.campaignRepo.GetActiveCampaignIDs()
	if err != nil {
		return 0, err
	}

	var (
		refreshed int
		firstErr  error
	)
	for _, id := range ids {
		if ctx.Err() != nil {
			return refreshed, ctx.Err()
		}
		if _, err := uc.RecomputeMetrics(ctx, id); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		refreshed++
	}
	return refreshed, firstErr
}
