package domain

import (
	"context"
	"sort"
	"time"
)

const TopInfluencersLimit = 10

type InfluencerRanking struct {
	InfluencerID  string  `json:"influencer_id"`
	Name          string  `json:"name"`
	TotalRevenue  float64 `json:"total_revenue"`
	CampaignCount int64   `json:"campaign_count"`
}

// SortRankings orders by revenue descending, then by influencer id so equal
// revenue always comes back in the same order, and truncates to limit.
func SortRankings(rankings []InfluencerRanking, limit int) []InfluencerRanking {
	sort.SliceStable(rankings, func(i, j int) bool {
		if rankings[i].TotalRevenue != rankings[j].TotalRevenue {
			return rankings[i].TotalRevenue > rankings[j].TotalRevenue
		}
		return rankings[i].InfluencerID < rankings[j].InfluencerID
	})
	if limit > 0 && len(rankings) > limit {
		rankings = rankings[:limit]
	}
	return rankings
}

type ContributionSnapshot struct {
	EngagementRate float64 `json:"engagement_rate"`
	Reach          int64   `json:"reach"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
}

type Contribution struct {
	Progress     float64              `json:"progress"`
	Deliverables []Deliverable        `json:"deliverables"`
	Metrics      ContributionSnapshot `json:"metrics"`
	Earnings     float64              `json:"earnings"`
}

type InfluencerSnippet struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Followers int64    `json:"followers"`
	Channels  []string `json:"channels"`
}

type ContributionView struct {
	Influencer    InfluencerSnippet `json:"influencer"`
	CampaignTitle string            `json:"campaign_title"`
	Contribution  Contribution      `json:"contribution"`
}

type RankingRepository interface {
	// GetInfluencerRankings groups active and completed participations of the
	// brand's campaigns by influencer.
	GetInfluencerRankings(brandID string, campaignIDs []string, limit int) ([]InfluencerRanking, error)
}

type RankingCache interface {
	GetRankings(ctx context.Context, brandID string) ([]InfluencerRanking, bool, error)
	SetRankings(ctx context.Context, brandID string, rankings []InfluencerRanking, ttl time.Duration) error
	Invalidate(ctx context.Context, brandID string) error
}
