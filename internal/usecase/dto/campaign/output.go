package campaigndto

import "github.com/LavaJover/shvark-campaign-service/internal/domain"

type Pagination struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalItems   int64 `json:"total_items"`
	ItemsPerPage int   `json:"items_per_page"`
}

type ListCampaignsOutput struct {
	Campaigns  []*domain.Campaign
	Pagination Pagination
}

// CascadeOutput is what a completion or cancellation left behind.
type CascadeOutput struct {
	Campaign *domain.Campaign
	Metrics  *domain.CampaignMetrics
}
