package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase"
	campaigndto "github.com/LavaJover/shvark-campaign-service/internal/usecase/dto/campaign"
	"github.com/google/uuid"
)

// statuses a campaign may be created in
var initialStatuses = map[domain.CampaignStatus]bool{
	domain.CampaignDraft:            true,
	domain.CampaignRequest:          true,
	domain.CampaignBrandInvite:      true,
	domain.CampaignInfluencerInvite: true,
}

func (uc *DefaultCampaignUsecase) CreateCampaign(ctx context.Context, actor domain.Actor, input *campaigndto.CreateCampaignInput) (*domain.Campaign, error) {
	if err := usecase.RequireRole(actor, domain.RoleBrand); err != nil {
		return nil, err
	}

	status := domain.CampaignDraft
	if s := strings.TrimSpace(input.Status); s != "" {
		status = domain.CampaignStatus(s)
	}
	if !initialStatuses[status] {
		return nil, fmt.Errorf("%w: campaign cannot be created as %q", domain.ErrValidation, status)
	}

	channels := make([]string, 0, len(input.RequiredChannels))
	for _, ch := range input.RequiredChannels {
		channels = append(channels, strings.TrimSpace(ch))
	}

	now := time.Now()
	campaign := &domain.Campaign{
		ID:               uuid.New().String(),
		BrandID:          actor.ID,
		Title:            strings.TrimSpace(input.Title),
		Description:      input.Description,
		Status:           status,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Budget:           input.Budget,
		RequiredChannels: channels,
		MinFollowers:     input.MinFollowers,
		CommissionRate:   input.CommissionRate,
		Version:          1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := campaign.Validate(); err != nil {
		return nil, err
	}

	if err := uc.campaignRepo.CreateCampaign(campaign); err != nil {
		uc.Metrics.RecordError("create_campaign")
		return nil, err
	}

	uc.Metrics.RecordCampaignTransition("", string(status))
	usecase.RecordStatusChange(ctx, uc.audit, actor, "campaign", campaign.ID, "", string(status))
	return campaign, nil
}
