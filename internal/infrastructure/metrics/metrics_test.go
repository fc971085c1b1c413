package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorders(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCampaignMetrics(reg)

	m.RecordCampaignTransition("draft", "active")
	m.RecordCampaignTransition("draft", "active")
	m.RecordOrderPlaced("campaign", 120.5)
	m.RecordRankingCache(true)
	m.RecordRankingCache(false)
	m.RecordRankingFailure()
	m.RecordError("complete")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CampaignTransitionsTotal.WithLabelValues("draft", "active")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersPlacedTotal.WithLabelValues("campaign")))
	assert.Equal(t, 120.5, testutil.ToFloat64(m.OrdersAmountTotal.WithLabelValues("campaign")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RankingCacheTotal.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RankingCacheTotal.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RankingFailuresTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ErrorsTotal.WithLabelValues("complete")))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *CampaignMetrics
	assert.NotPanics(t, func() {
		m.RecordCampaignTransition("a", "b")
		m.RecordParticipationChange("active")
		m.RecordContentReview("approved")
		m.RecordContentInteraction("view")
		m.RecordOrderPlaced("none", 1)
		m.RecordUnresolvedReferral()
		m.RecordCommission("paid", 3)
		m.RecordPayment("completed")
		m.RecordRankingFailure()
		m.RecordRankingCache(true)
		m.RecordRollupDuration(0.2)
		m.RecordError("x")
	})
}
