package analyticsdto

import "github.com/LavaJover/shvark-campaign-service/internal/domain"

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type ProgressAlert struct {
	CampaignID string `json:"campaign_id"`
	Title      string `json:"title"`
	Message    string `json:"message"`
}

type DashboardOutput struct {
	StatusCounts   []StatusCount              `json:"status_counts"`
	TotalBudget    float64                    `json:"total_budget"`
	TopInfluencers []domain.InfluencerRanking `json:"top_influencers"`
	ProgressAlerts []ProgressAlert            `json:"progress_alerts"`
}
