package usecase

import (
	"context"
	"fmt"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase"
	analyticsdto "github.com/LavaJover/shvark-campaign-service/internal/usecase/dto/analytics"
	"golang.org/x/sync/errgroup"
)

// BrandDashboard gathers the brand overview. The parts are independent reads
// and run concurrently.
func (uc *DefaultAnalyticsUsecase) BrandDashboard(ctx context.Context, actor domain.Actor) (*analyticsdto.DashboardOutput, error) {
	if err := usecase.RequireRole(actor, domain.RoleBrand); err != nil {
		return nil, err
	}

	var (
		counts      []domain.StatusCount
		totalBudget float64
		top         []domain.InfluencerRanking
		full        []*domain.Campaign
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts, totalBudget, err = uc.campaignRepo.CountCampaignsByStatus(actor.ID)
		return err
	})
	g.Go(func() error {
		top = uc.rankBrand(gctx, actor.ID)
		return nil
	})
	g.Go(func() error {
		var err error
		full, err = uc.metricsRepo.GetFullProgressCampaigns(actor.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &analyticsdto.DashboardOutput{
		StatusCounts:   make([]analyticsdto.StatusCount, len(counts)),
		TotalBudget:    totalBudget,
		TopInfluencers: top,
		ProgressAlerts: make([]analyticsdto.ProgressAlert, len(full)),
	}
	for i, c := range counts {
		out.StatusCounts[i] = analyticsdto.StatusCount{Status: string(c.Status), Count: c.Count}
	}
	for i, c := range full {
		out.ProgressAlerts[i] = analyticsdto.ProgressAlert{
			CampaignID: c.ID,
			Title:      c.Title,
			Message:    fmt.Sprintf("Campaign %q reached 100%% progress and can be ended", c.Title),
		}
	}
	return out, nil
}
