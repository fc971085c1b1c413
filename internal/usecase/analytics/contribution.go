package usecase

import (
	"context"
	"fmt"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase"
)

// Contribution is the brand's drill-down into one influencer's part in a
// campaign. Earnings are the sum of every completed payment of the pair.
func (uc *DefaultAnalyticsUsecase) Contribution(ctx context.Context, actor domain.Actor, campaignID, influencerID string) (*domain.ContributionView, error) {
	campaign, err := usecase.OwnedCampaign(uc.campaignRepo, actor, campaignID)
	if err != nil {
		return nil, err
	}

	p, err := uc.participationRepo.GetParticipation(campaignID, influencerID)
	if err != nil {
		return nil, err
	}
	if !p.Status.Contributing() {
		return nil, fmt.Errorf("%w: influencer %s has no contribution in campaign %s", domain.ErrNotFound, influencerID, campaignID)
	}

	influencer, err := uc.influencerRepo.GetInfluencerByID(influencerID)
	if err != nil {
		return nil, err
	}

	earnings, err := uc.paymentRepo.SumPayments(campaignID, influencerID, domain.PaymentCompleted)
	if err != nil {
		return nil, err
	}

	deliverables := p.Deliverables
	if deliverables == nil {
		deliverables = []domain.Deliverable{}
	}
	channels := influencer.Channels
	if channels == nil {
		channels = []string{}
	}

	return &domain.ContributionView{
		Influencer: domain.InfluencerSnippet{
			ID:        influencer.ID,
			Name:      influencer.Name,
			Followers: influencer.Followers,
			Channels:  channels,
		},
		CampaignTitle: campaign.Title,
		Contribution: domain.Contribution{
			Progress:     p.Progress,
			Deliverables: deliverables,
			Metrics: domain.ContributionSnapshot{
				EngagementRate: p.Metrics.EngagementRate,
				Reach:          p.Metrics.Reach,
				Clicks:         p.Metrics.Clicks,
				Conversions:    p.Metrics.Conversions,
			},
			Earnings: earnings,
		},
	}, nil
}
