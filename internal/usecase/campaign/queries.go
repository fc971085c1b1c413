package usecase

import (
	"context"
	"fmt"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase"
	campaigndto "github.com/LavaJover/shvark-campaign-service/internal/usecase/dto/campaign"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// GetCampaign lets a brand see its own campaigns and everyone else see
// campaigns that left draft.
func (uc *DefaultCampaignUsecase) GetCampaign(ctx context.Context, actor domain.Actor, campaignID string) (*domain.Campaign, error) {
	if actor.ID == "" {
		return nil, domain.ErrUnauthorized
	}
	if actor.Role == domain.RoleBrand || actor.Role == domain.RoleAdmin {
		return usecase.OwnedCampaign(uc.campaignRepo, actor, campaignID)
	}

	campaign, err := uc.campaignRepo.GetCampaignByID(campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.Status == domain.CampaignDraft {
		return nil, fmt.Errorf("%w: campaign %s", domain.ErrNotFound, campaignID)
	}
	return campaign, nil
}

func (uc *DefaultCampaignUsecase) ListBrandCampaigns(ctx context.Context, actor domain.Actor, input *campaigndto.ListCampaignsInput) (*campaigndto.ListCampaignsOutput, error) {
	if err := usecase.RequireRole(actor, domain.RoleBrand); err != nil {
		return nil, err
	}

	filter := domain.CampaignFilter{
		BrandID: actor.ID,
		Page:    input.Page,
		Limit:   input.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}
	if input.Status != "" {
		status := domain.CampaignStatus(input.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, input.Status)
		}
		filter.Status = &status
	}

	campaigns, total, err := uc.campaignRepo.GetCampaigns(filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &campaigndto.ListCampaignsOutput{
		Campaigns: campaigns,
		Pagination: campaigndto.Pagination{
			CurrentPage:  filter.Page,
			TotalPages:   totalPages,
			TotalItems:   total,
			ItemsPerPage: filter.Limit,
		},
	}, nil
}

// CompletedProgressAlerts lists active campaigns whose participants are all
// at 100% but which nobody has ended yet.
func (uc *DefaultCampaignUsecase) CompletedProgressAlerts(ctx context.Context, actor domain.Actor) ([]*domain.Campaign, error) {
	if err := usecase.RequireRole(actor, domain.RoleBrand); err != nil {
		return nil, err
	}
	return uc.metricsRepo.GetFullProgressCampaigns(actor.ID)
}

func (uc *DefaultCampaignUsecase) GetParticipations(ctx context.Context, actor domain.Actor, campaignID string) ([]*domain.Participation, error) {
	if _, err := usecase.OwnedCampaign(uc.campaignRepo, actor, campaignID); err != nil {
		return nil, err
	}
	return uc.participationRepo.GetParticipationsByCampaign(campaignID, nil)
}
