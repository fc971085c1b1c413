package domain

import (
	"math"
	"time"
)

// CampaignMetrics is the brand-facing rollup of one campaign. It is always
// derived from lower level records by RollupCampaignMetrics.
type CampaignMetrics struct {
	CampaignID       string
	Reach            int64
	Impressions      int64
	EngagementRate   float64
	ConversionRate   float64
	Clicks           int64
	Conversions      int64
	Revenue          float64
	Spend            float64
	ROI              float64
	OverallProgress  float64
	PerformanceScore float64
	ComputedAt       time.Time
}

type RollupInput struct {
	CampaignID     string
	Participations []*Participation
	// ContentViews is the sum of views over published content.
	ContentViews int64
	// AttributedRevenue is the sum of non-cancelled orders attributed to the campaign.
	AttributedRevenue float64
	// CompletedPayments is the sum of completed payments for the campaign.
	CompletedPayments float64
}

// RollupCampaignMetrics folds participation, content, order and payment
// figures into a CampaignMetrics record. Only active and completed
// participations contribute.
func RollupCampaignMetrics(in RollupInput, now time.Time) CampaignMetrics {
	m := CampaignMetrics{
		CampaignID:  in.CampaignID,
		Impressions: in.ContentViews,
		Revenue:     round2(in.AttributedRevenue),
		Spend:       round2(in.CompletedPayments),
		ComputedAt:  now,
	}

	var (
		engagementSum float64
		engaged       int
		progressSum   float64
		counted       int
	)
	for _, p := range in.Participations {
		if p == nil || !p.Status.Contributing() {
			continue
		}
		counted++
		progressSum += p.Progress
		m.Reach += p.Metrics.Reach
		m.Clicks += p.Metrics.Clicks
		m.Conversions += p.Metrics.Conversions
		if p.Metrics.EngagementRate > 0 {
			engagementSum += p.Metrics.EngagementRate
			engaged++
		}
	}
	if engaged > 0 {
		m.EngagementRate = round2(engagementSum / float64(engaged))
	}
	if counted > 0 {
		m.OverallProgress = round2(progressSum / float64(counted))
	}
	if m.Clicks > 0 {
		m.ConversionRate = round2(float64(m.Conversions) / float64(m.Clicks) * 100)
	}
	if m.Spend > 0 {
		m.ROI = round2((m.Revenue - m.Spend) / m.Spend * 100)
	}
	m.PerformanceScore = round2(0.5*m.OverallProgress + 0.5*math.Min(m.ConversionRate*10, 100))
	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type MetricsRepository interface {
	// CollectRollupInput gathers everything RollupCampaignMetrics needs for
	// one campaign.
	CollectRollupInput(campaignID string) (*RollupInput, error)
	SaveCampaignMetrics(metrics *CampaignMetrics) error
	GetCampaignMetrics(campaignID string) (*CampaignMetrics, error)
	// GetFullProgressCampaigns returns active campaigns of the brand whose
	// stored overall progress reached 100.
	GetFullProgressCampaigns(brandID string) ([]*Campaign, error)
}
