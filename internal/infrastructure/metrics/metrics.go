package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CampaignMetrics holds the service level prometheus collectors. Record
// methods are no-ops on a nil receiver.
type CampaignMetrics struct {
	CampaignTransitionsTotal  prometheus.CounterVec
	ParticipationChangesTotal prometheus.CounterVec
	ContentReviewsTotal       prometheus.CounterVec
	ContentInteractionsTotal  prometheus.CounterVec
	OrdersPlacedTotal         prometheus.CounterVec
	OrdersAmountTotal         prometheus.CounterVec
	CommissionAmountTotal     prometheus.CounterVec
	UnresolvedReferralsTotal  prometheus.Counter
	PaymentsTotal             prometheus.CounterVec
	RankingFailuresTotal      prometheus.Counter
	RankingCacheTotal         prometheus.CounterVec
	RollupDuration            prometheus.Histogram
	ErrorsTotal               prometheus.CounterVec
}

// NewCampaignMetrics registers the collectors on reg. Tests pass a private
// registry, main passes prometheus.DefaultRegisterer.
func NewCampaignMetrics(reg prometheus.Registerer) *CampaignMetrics {
	factory := promauto.With(reg)
	return &CampaignMetrics{
		CampaignTransitionsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaign_transitions_total",
				Help: "Campaign status changes by target status",
			},
			[]string{"from", "to"},
		),
		ParticipationChangesTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "participation_changes_total",
				Help: "Participation status changes by target status",
			},
			[]string{"status"},
		),
		ContentReviewsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "content_reviews_total",
				Help: "Content review transitions",
			},
			[]string{"status"},
		),
		ContentInteractionsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "content_interactions_total",
				Help: "Tracked content interactions by type",
			},
			[]string{"type"},
		),
		OrdersPlacedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_placed_total",
				Help: "Orders placed, split by attribution kind",
			},
			[]string{"attribution"},
		),
		OrdersAmountTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_amount_total",
				Help: "Sum of order totals, split by attribution kind",
			},
			[]string{"attribution"},
		),
		CommissionAmountTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_amount_total",
				Help: "Commission amounts by attribution status change",
			},
			[]string{"status"},
		),
		UnresolvedReferralsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "unresolved_referral_codes_total",
				Help: "Orders whose referral code matched no influencer",
			},
		),
		PaymentsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaign_payments_total",
				Help: "Campaign payments by status",
			},
			[]string{"status"},
		),
		RankingFailuresTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "influencer_ranking_failures_total",
				Help: "Ranking queries that failed and were served empty",
			},
		),
		RankingCacheTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "influencer_ranking_cache_total",
				Help: "Ranking cache lookups by result",
			},
			[]string{"result"},
		),
		RollupDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "campaign_rollup_duration_seconds",
				Help:    "Time spent recomputing campaign metrics",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
			},
		),
		ErrorsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaign_service_errors_total",
				Help: "Errors by operation",
			},
			[]string{"operation"},
		),
	}
}

func (m *CampaignMetrics) RecordCampaignTransition(from, to string) {
	if m == nil {
		return
	}
	m.CampaignTransitionsTotal.WithLabelValues(from, to).Inc()
}

func (m *CampaignMetrics) RecordParticipationChange(status string) {
	if m == nil {
		return
	}
	m.ParticipationChangesTotal.WithLabelValues(status).Inc()
}

func (m *CampaignMetrics) RecordContentReview(status string) {
	if m == nil {
		return
	}
	m.ContentReviewsTotal.WithLabelValues(status).Inc()
}

func (m *CampaignMetrics) RecordContentInteraction(kind string) {
	if m == nil {
		return
	}
	m.ContentInteractionsTotal.WithLabelValues(kind).Inc()
}

// RecordOrderPlaced labels the order as campaign, influencer or none.
func (m *CampaignMetrics) RecordOrderPlaced(attribution string, amount float64) {
	if m == nil {
		return
	}
	m.OrdersPlacedTotal.WithLabelValues(attribution).Inc()
	m.OrdersAmountTotal.WithLabelValues(attribution).Add(amount)
}

func (m *CampaignMetrics) RecordUnresolvedReferral() {
	if m == nil {
		return
	}
	m.UnresolvedReferralsTotal.Inc()
}

func (m *CampaignMetrics) RecordCommission(status string, amount float64) {
	if m == nil {
		return
	}
	m.CommissionAmountTotal.WithLabelValues(status).Add(amount)
}

func (m *CampaignMetrics) RecordPayment(status string) {
	if m == nil {
		return
	}
	m.PaymentsTotal.WithLabelValues(status).Inc()
}

func (m *CampaignMetrics) RecordRankingFailure() {
	if m == nil {
		return
	}
	m.RankingFailuresTotal.Inc()
}

func (m *CampaignMetrics) RecordRankingCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.RankingCacheTotal.WithLabelValues(result).Inc()
}

func (m *CampaignMetrics) RecordRollupDuration(seconds float64) {
	if m == nil {
		return
	}
	m.RollupDuration.Observe(seconds)
}

func (m *CampaignMetrics) RecordError(operation string) {
	if m == nil {
		return
	}
	m.ErrorsTotal.WithLabelValues(operation).Inc()
}
