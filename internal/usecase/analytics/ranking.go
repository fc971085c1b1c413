package usecase

import (
	"context"
	"log/slog"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase"
)

// TopInfluencers ranks influencers of the brand's campaigns by summed
// participation revenue. Failures are logged and served as an empty list.
func (uc *DefaultAnalyticsUsecase) TopInfluencers(ctx context.Context, actor domain.Actor) ([]domain.InfluencerRanking, error) {
	if err := usecase.RequireRole(actor, domain.RoleBrand); err != nil {
		return nil, err
	}
	return uc.rankBrand(ctx, actor.ID), nil
}

func (uc *DefaultAnalyticsUsecase) rankBrand(ctx context.Context, brandID string) []domain.InfluencerRanking {
	if uc.rankingCache != nil {
		cached, ok, err := uc.rankingCache.GetRankings(ctx, brandID)
		if err != nil {
			slog.Warn("ranking cache read failed", "brand_id", brandID, "error", err)
		}
		uc.Metrics.RecordRankingCache(ok)
		if ok {
			return cached
		}
	}

	rankings, err := uc.computeRankings(brandID)
	if err != nil {
		slog.Error("failed to rank influencers", "brand_id", brandID, "error", err)
		uc.Metrics.RecordRankingFailure()
		return []domain.InfluencerRanking{}
	}

	if uc.rankingCache != nil {
		if err := uc.rankingCache.SetRankings(ctx, brandID, rankings, uc.cacheTTL); err != nil {
			slog.Warn("ranking cache write failed", "brand_id", brandID, "error", err)
		}
	}
	return rankings
}

func (uc *DefaultAnalyticsUsecase) computeRankings(brandID string) ([]domain.InfluencerRanking, error) {
	campaignIDs, err := uc.campaignRepo.GetCampaignIDsByBrand(brandID)
	if err != nil {
		return nil, err
	}
	if len(campaignIDs) == 0 {
		return []domain.InfluencerRanking{}, nil
	}

	rankings, err := uc.rankingRepo.GetInfluencerRankings(brandID, campaignIDs, domain.TopInfluencersLimit)
	if err != nil {
		return nil, err
	}
	if rankings == nil {
		rankings = []domain.InfluencerRanking{}
	}
	// the store already orders, sorting again pins the tie-break
	return domain.SortRankings(rankings, domain.TopInfluencersLimit), nil
}
