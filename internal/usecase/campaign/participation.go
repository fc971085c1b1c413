package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase"
	"github.com/google/uuid"
)

// Apply creates a participation request for the calling influencer.
func (uc *DefaultCampaignUsecase) Apply(ctx context.Context, actor domain.Actor, campaignID string) (*domain.Participation, error) {
	if err := usecase.RequireRole(actor, domain.RoleInfluencer); err != nil {
		return nil, err
	}
	campaign, err := uc.campaignRepo.GetCampaignByID(campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.Status == domain.CampaignDraft {
		return nil, fmt.Errorf("%w: campaign %s", domain.ErrNotFound, campaignID)
	}
	return uc.join(ctx, actor, campaign, actor.ID, domain.ParticipationRequest)
}

// Invite creates a brand invitation for an influencer.
func (uc *DefaultCampaignUsecase) Invite(ctx context.Context, actor domain.Actor, campaignID, influencerID string) (*domain.Participation, error) {
	campaign, err := usecase.OwnedCampaign(uc.campaignRepo, actor, campaignID)
	if err != nil {
		return nil, err
	}
	return uc.join(ctx, actor, campaign, influencerID, domain.ParticipationBrandInvite)
}

func (uc *DefaultCampaignUsecase) join(
	ctx context.Context,
	actor domain.Actor,
	campaign *domain.Campaign,
	influencerID string,
	status domain.ParticipationStatus,
) (*domain.Participation, error) {
	if campaign.Status.Terminal() {
		return nil, fmt.Errorf("%w: campaign %s is %s", domain.ErrInvalidTransition, campaign.ID, campaign.Status)
	}

	influencer, err := uc.influencerRepo.GetInfluencerByID(influencerID)
	if err != nil {
		return nil, err
	}
	if influencer.Followers < campaign.MinFollowers {
		return nil, fmt.Errorf("%w: campaign requires %d followers, influencer has %d",
			domain.ErrValidation, campaign.MinFollowers, influencer.Followers)
	}

	existing, err := uc.participationRepo.GetParticipation(campaign.ID, influencerID)
	if err == nil && existing != nil {
		return nil, fmt.Errorf("%w: influencer %s already in campaign %s as %s",
			domain.ErrAlreadyExists, influencerID, campaign.ID, existing.Status)
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	p := &domain.Participation{
		ID:           uuid.New().String(),
		CampaignID:   campaign.ID,
		InfluencerID: influencerID,
		Status:       status,
		ReferralCode: uc.referralCode(),
		Deliverables: []domain.Deliverable{},
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.participationRepo.CreateParticipation(p); err != nil {
		uc.Metrics.RecordError("create_participation")
		return nil, err
	}

	uc.Metrics.RecordParticipationChange(string(status))
	usecase.RecordStatusChange(ctx, uc.audit, actor, "participation", p.ID, "", string(status))
	return p, nil
}

// ApproveParticipation is the brand accepting a request.
func (uc *DefaultCampaignUsecase) ApproveParticipation(ctx context.Context, actor domain.Actor, campaignID, influencerID string) (*domain.Participation, error) {
	campaign, err := usecase.OwnedCampaign(uc.campaignRepo, actor, campaignID)
	if err != nil {
		return nil, err
	}
	p, err := uc.participationRepo.GetParticipation(campaignID, influencerID)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.ParticipationRequest && p.Status != domain.ParticipationInfluencerInvite {
		return nil, fmt.Errorf("%w: participation is %s", domain.ErrInvalidTransition, p.Status)
	}
	return uc.activate(ctx, actor, campaign, p)
}

// AcceptInvite is the influencer accepting a brand invitation.
func (uc *DefaultCampaignUsecase) AcceptInvite(ctx context.Context, actor domain.Actor, campaignID string) (*domain.Participation, error) {
	if err := usecase.RequireRole(actor, domain.RoleInfluencer); err != nil {
		return nil, err
	}
	campaign, err := uc.campaignRepo.GetCampaignByID(campaignID)
	if err != nil {
		return nil, err
	}
	p, err := uc.participationRepo.GetParticipation(campaignID, actor.ID)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.ParticipationBrandInvite {
		return nil, fmt.Errorf("%w: participation is %s", domain.ErrInvalidTransition, p.Status)
	}
	return uc.activate(ctx, actor, campaign, p)
}

func (uc *DefaultCampaignUsecase) activate(ctx context.Context, actor domain.Actor, campaign *domain.Campaign, p *domain.Participation) (*domain.Participation, error) {
	if campaign.Status.Terminal() {
		return nil, fmt.Errorf("%w: campaign %s is %s", domain.ErrInvalidTransition, campaign.ID, campaign.Status)
	}
	oldStatus := p.Status
	if err := p.Activate(); err != nil {
		return nil, err
	}
	if err := uc.participationRepo.UpdateParticipation(p); err != nil {
		return nil, err
	}

	uc.Metrics.RecordParticipationChange(string(p.Status))
	usecase.RecordStatusChange(ctx, uc.audit, actor, "participation", p.ID, string(oldStatus), string(p.Status))
	// Active participations count towards the brand rankings.
	uc.invalidateRankings(ctx, campaign.BrandID)
	return p, nil
}
