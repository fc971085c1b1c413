package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase"
	campaigndto "github.com/LavaJover/shvark-campaign-service/internal/usecase/dto/campaign"
)

// ActivateCampaign moves an owned campaign to active. Budget and participant
// counts are not checked.
func (uc *DefaultCampaignUsecase) ActivateCampaign(ctx context.Context, actor domain.Actor, campaignID string) (*domain.Campaign, error) {
	return uc.ChangeCampaignStatus(ctx, actor, campaignID, domain.CampaignActive)
}

func (uc *DefaultCampaignUsecase) ChangeCampaignStatus(ctx context.Context, actor domain.Actor, campaignID string, status domain.CampaignStatus) (*domain.Campaign, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	switch status {
	case domain.CampaignCompleted:
		out, err := uc.CompleteCampaign(ctx, actor, campaignID)
		if err != nil {
			return nil, err
		}
		return out.Campaign, nil
	case domain.CampaignCancelled:
		out, err := uc.CancelCampaign(ctx, actor, campaignID)
		if err != nil {
			return nil, err
		}
		return out.Campaign, nil
	}

	campaign, err := usecase.OwnedCampaign(uc.campaignRepo, actor, campaignID)
	if err != nil {
		return nil, err
	}
	oldStatus := campaign.Status
	if !oldStatus.CanTransitionTo(status) {
		return nil, campaign.TransitionTo(status)
	}

	op := &CampaignOperation{
		Campaign:  campaign,
		Operation: "status_" + string(status),
		OldStatus: oldStatus,
		NewStatus: status,
		Actor:     actor,
		CreatedAt: time.Now(),
	}
	if _, err := uc.ProcessCampaignOperation(ctx, op); err != nil {
		return nil, err
	}
	return campaign, nil
}

// CompleteCampaign ends the campaign: active participations complete and the
// metrics are recomputed in the same transaction.
func (uc *DefaultCampaignUsecase) CompleteCampaign(ctx context.Context, actor domain.Actor, campaignID string) (*campaigndto.CascadeOutput, error) {
	return uc.cascade(ctx, actor, campaignID, "complete", domain.CampaignCompleted,
		[]domain.ParticipationStatus{domain.ParticipationActive},
		domain.ParticipationCompleted,
	)
}

// CancelCampaign cancels the campaign and every participation that has not
// finished.
func (uc *DefaultCampaignUsecase) CancelCampaign(ctx context.Context, actor domain.Actor, campaignID string) (*campaigndto.CascadeOutput, error) {
	return uc.cascade(ctx, actor, campaignID, "cancel", domain.CampaignCancelled,
		[]domain.ParticipationStatus{
			domain.ParticipationRequest,
			domain.ParticipationBrandInvite,
			domain.ParticipationInfluencerInvite,
			domain.ParticipationActive,
		},
		domain.ParticipationCancelled,
	)
}

func (uc *DefaultCampaignUsecase) cascade(
	ctx context.Context,
	actor domain.Actor,
	campaignID, operation string,
	status domain.CampaignStatus,
	from []domain.ParticipationStatus,
	to domain.ParticipationStatus,
) (*campaigndto.CascadeOutput, error) {
	campaign, err := usecase.OwnedCampaign(uc.campaignRepo, actor, campaignID)
	if err != nil {
		return nil, err
	}
	oldStatus := campaign.Status
	if !oldStatus.CanTransitionTo(status) {
		return nil, campaign.TransitionTo(status)
	}

	op := &CampaignOperation{
		Campaign:  campaign,
		Operation: operation,
		OldStatus: oldStatus,
		NewStatus: status,
		Cascade: &domain.CampaignCascade{
			CampaignID:          campaign.ID,
			ExpectedVersion:     campaign.Version,
			NewStatus:           status,
			FromStatuses:        from,
			ParticipationStatus: to,
			RecomputeMetrics:    true,
		},
		Actor:     actor,
		CreatedAt: time.Now(),
	}
	rolled, err := uc.ProcessCampaignOperation(ctx, op)
	if err != nil {
		return nil, err
	}
	return &campaigndto.CascadeOutput{Campaign: campaign, Metrics: rolled}, nil
}
