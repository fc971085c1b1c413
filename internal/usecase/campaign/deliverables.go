package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase"
	campaigndto "github.com/LavaJover/shvark-campaign-service/internal/usecase/dto/campaign"
)

func (uc *DefaultCampaignUsecase) AddDeliverable(ctx context.Context, actor domain.Actor, input *campaigndto.AddDeliverableInput) (*domain.Participation, error) {
	if _, err := usecase.OwnedCampaign(uc.campaignRepo, actor, input.CampaignID); err != nil {
		return nil, err
	}
	p, err := uc.participationRepo.GetParticipation(input.CampaignID, input.InfluencerID)
	if err != nil {
		return nil, err
	}

	if err := p.AddDeliverable(domain.Deliverable{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		DueDate:     input.DueDate,
	}); err != nil {
		return nil, err
	}
	if err := uc.participationRepo.UpdateParticipation(p); err != nil {
		return nil, err
	}
	return p, nil
}

// CompleteDeliverable is called by the influencer doing the work.
func (uc *DefaultCampaignUsecase) CompleteDeliverable(ctx context.Context, actor domain.Actor, campaignID string, index int) (*domain.Participation, error) {
	if err := usecase.RequireRole(actor, domain.RoleInfluencer); err != nil {
		return nil, err
	}
	p, err := uc.participationRepo.GetParticipation(campaignID, actor.ID)
	if err != nil {
		return nil, err
	}
	if err := p.CompleteDeliverable(index, time.Now()); err != nil {
		return nil, err
	}
	if err := uc.participationRepo.UpdateParticipation(p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProgress sets reported progress. Only an admin may lower it.
func (uc *DefaultCampaignUsecase) UpdateProgress(ctx context.Context, actor domain.Actor, input *campaigndto.UpdateProgressInput) (*domain.Participation, error) {
	p, err := uc.participationFor(actor, input.CampaignID, input.InfluencerID)
	if err != nil {
		return nil, err
	}
	if input.Override && actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: progress override needs an admin", domain.ErrForbidden)
	}
	if p.Status.Terminal() {
		return nil, fmt.Errorf("%w: participation is %s", domain.ErrInvalidTransition, p.Status)
	}
	if err := p.SetProgress(input.Progress, input.Override); err != nil {
		return nil, err
	}
	if err := uc.participationRepo.UpdateParticipation(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *DefaultCampaignUsecase) UpdateParticipationMetrics(ctx context.Context, actor domain.Actor, input *campaigndto.UpdateMetricsInput) (*domain.Participation, error) {
	if _, err := usecase.OwnedCampaign(uc.campaignRepo, actor, input.CampaignID); err != nil {
		return nil, err
	}
	if input.EngagementRate < 0 || input.Reach < 0 || input.Clicks < 0 || input.Conversions < 0 || input.TimelinessScore < 0 {
		return nil, fmt.Errorf("%w: metrics must not be negative", domain.ErrValidation)
	}
	p, err := uc.participationRepo.GetParticipation(input.CampaignID, input.InfluencerID)
	if err != nil {
		return nil, err
	}

	p.Metrics = domain.InfluencerMetrics{
		EngagementRate:  input.EngagementRate,
		Reach:           input.Reach,
		Clicks:          input.Clicks,
		Conversions:     input.Conversions,
		TimelinessScore: input.TimelinessScore,
	}
	if err := uc.participationRepo.UpdateParticipation(p); err != nil {
		return nil, err
	}
	return p, nil
}

// participationFor resolves the participation an actor may touch: its own as
// an influencer, any in an owned campaign as a brand or admin.
func (uc *DefaultCampaignUsecase) participationFor(actor domain.Actor, campaignID, influencerID string) (*domain.Participation, error) {
	if actor.ID == "" {
		return nil, domain.ErrUnauthorized
	}
	if actor.Role == domain.RoleInfluencer {
		if influencerID != "" && influencerID != actor.ID {
			return nil, fmt.Errorf("%w: participation", domain.ErrNotFound)
		}
		return uc.participationRepo.GetParticipation(campaignID, actor.ID)
	}
	if _, err := usecase.OwnedCampaign(uc.campaignRepo, actor, campaignID); err != nil {
		return nil, err
	}
	return uc.participationRepo.GetParticipation(campaignID, influencerID)
}
