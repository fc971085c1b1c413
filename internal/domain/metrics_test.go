package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRollupCampaignMetrics(t *testing.T) {
	now := time.Now()
	in := RollupInput{
		CampaignID: "c1",
		Participations: []*Participation{
			{Status: ParticipationActive, Progress: 50, Metrics: InfluencerMetrics{EngagementRate: 4, Reach: 1000, Clicks: 100, Conversions: 5}},
			{Status: ParticipationCompleted, Progress: 100, Metrics: InfluencerMetrics{EngagementRate: 0, Reach: 500, Clicks: 100, Conversions: 5}},
			{Status: ParticipationCancelled, Progress: 10, Metrics: InfluencerMetrics{Reach: 99999, Clicks: 999}},
			nil,
		},
		ContentViews:      1200,
		AttributedRevenue: 300,
		CompletedPayments: 200,
	}

	m := RollupCampaignMetrics(in, now)
	assert.Equal(t, "c1", m.CampaignID)
	assert.Equal(t, int64(1500), m.Reach)
	assert.Equal(t, int64(1200), m.Impressions)
	assert.Equal(t, int64(200), m.Clicks)
	assert.Equal(t, int64(10), m.Conversions)
	// zero engagement rates are left out of the average
	assert.Equal(t, 4.0, m.EngagementRate)
	assert.Equal(t, 5.0, m.ConversionRate)
	assert.Equal(t, 75.0, m.OverallProgress)
	assert.Equal(t, 50.0, m.ROI)
	assert.Equal(t, 0.5*75+0.5*50, m.PerformanceScore)
	assert.Equal(t, now, m.ComputedAt)
}

func TestRollupWithoutSpend(t *testing.T) {
	m := RollupCampaignMetrics(RollupInput{CampaignID: "c1", AttributedRevenue: 250}, time.Now())
	assert.Zero(t, m.ROI)
	assert.Zero(t, m.OverallProgress)
	assert.Zero(t, m.ConversionRate)
	assert.Equal(t, 250.0, m.Revenue)
}
