package repository

import (
	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"gorm.io/gorm"
)

type DefaultRankingRepository struct {
	DB *gorm.DB
}

func NewDefaultRankingRepository(db *gorm.DB) *DefaultRankingRepository {
	return &DefaultRankingRepository{DB: db}
}

const influencerRankingQuery = `
SELECT p.influencer_id,
       i.name,
       COALESCE(SUM(p.revenue), 0)  AS total_revenue,
       COUNT(DISTINCT p.campaign_id) AS campaign_count
FROM participation_models p
JOIN campaign_models c ON c.id = p.campaign_id
JOIN influencer_models i ON i.id = p.influencer_id
WHERE c.brand_id = ?
  AND p.campaign_id IN ?
  AND p.status IN ?
GROUP BY p.influencer_id, i.name
ORDER BY total_revenue DESC, p.influencer_id ASC
LIMIT ?`

func (r *DefaultRankingRepository) GetInfluencerRankings(brandID string, campaignIDs []string, limit int) ([]domain.InfluencerRanking, error) {
	if len(campaignIDs) == 0 {
		return []domain.InfluencerRanking{}, nil
	}

	statuses := make([]string, len(domain.ContributingStatuses))
	for i, s := range domain.ContributingStatuses {
		statuses[i] = string(s)
	}

	var rows []struct {
		InfluencerID  string
		Name          string
		TotalRevenue  float64
		CampaignCount int64
	}
	if err := r.DB.Raw(influencerRankingQuery, brandID, campaignIDs, statuses, limit).Scan(&rows).Error; err != nil {
		return nil, storeError("influencer rankings", err)
	}

	rankings := make([]domain.InfluencerRanking, len(rows))
	for i, row := range rows {
		rankings[i] = domain.InfluencerRanking{
			InfluencerID:  row.InfluencerID,
			Name:          row.Name,
			TotalRevenue:  row.TotalRevenue,
			CampaignCount: row.CampaignCount,
		}
	}
	return rankings, nil
}
