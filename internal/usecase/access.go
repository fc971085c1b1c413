package usecase

import (
	"fmt"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
)

// RequireRole fails with ErrUnauthorized for an anonymous actor and with
// ErrForbidden when the actor holds none of roles.
func RequireRole(actor domain.Actor, roles ...domain.Role) error {
	if actor.ID == "" {
		return domain.ErrUnauthorized
	}
	for _, role := range roles {
		if actor.Role == role {
			return nil
		}
	}
	return fmt.Errorf("%w: role %q may not do this", domain.ErrForbidden, actor.Role)
}

// OwnedCampaign loads a campaign the actor may manage. A campaign of another
// brand is reported as missing so its existence does not leak.
func OwnedCampaign(repo domain.CampaignRepository, actor domain.Actor, campaignID string) (*domain.Campaign, error) {
	if err := RequireRole(actor, domain.RoleBrand, domain.RoleAdmin); err != nil {
		return nil, err
	}
	campaign, err := repo.GetCampaignByID(campaignID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin && !campaign.OwnedBy(actor.ID) {
		return nil, fmt.Errorf("%w: campaign %s", domain.ErrNotFound, campaignID)
	}
	return campaign, nil
}
