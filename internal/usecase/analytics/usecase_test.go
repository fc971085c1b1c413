package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase/usecasetest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var brand = domain.Actor{ID: "brand-b", Role: domain.RoleBrand}

func newAnalytics(store *usecasetest.Store, cache domain.RankingCache) *DefaultAnalyticsUsecase {
	return NewDefaultAnalyticsUsecase(store, store, store, store, store, store, cache, time.Minute,
		metrics.NewCampaignMetrics(prometheus.NewRegistry()))
}

func seedTwoCampaigns(store *usecasetest.Store) {
	c1 := usecasetest.NewCampaign("c1", brand.ID)
	c1.Status = domain.CampaignActive
	c2 := usecasetest.NewCampaign("c2", brand.ID)
	c2.Status = domain.CampaignCompleted
	store.SeedCampaign(c1)
	store.SeedCampaign(c2)
	store.SeedInfluencer(&domain.Influencer{ID: "inf-1", Name: "Ana", Followers: 12000, Channels: []string{"instagram"}})
	store.SeedParticipation(&domain.Participation{CampaignID: "c1", InfluencerID: "inf-1", Status: domain.ParticipationActive, Revenue: 100, Progress: 40})
	store.SeedParticipation(&domain.Participation{CampaignID: "c2", InfluencerID: "inf-1", Status: domain.ParticipationCompleted, Revenue: 50, Progress: 100})
}

func TestTopInfluencersAcrossCampaigns(t *testing.T) {
	store := usecasetest.NewStore()
	seedTwoCampaigns(store)
	uc := newAnalytics(store, nil)

	got, err := uc.TopInfluencers(context.Background(), brand)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "inf-1", got[0].InfluencerID)
	assert.Equal(t, "Ana", got[0].Name)
	assert.Equal(t, 150.0, got[0].TotalRevenue)
	assert.Equal(t, int64(2), got[0].CampaignCount)
}

func TestTopInfluencersTieBreakAndLimit(t *testing.T) {
	store := usecasetest.NewStore()
	c := usecasetest.NewCampaign("c1", brand.ID)
	c.Status = domain.CampaignActive
	store.SeedCampaign(c)
	ids := []string{"inf-l", "inf-b", "inf-k", "inf-a", "inf-j", "inf-c", "inf-i", "inf-d", "inf-h", "inf-e", "inf-g", "inf-f"}
	for _, id := range ids {
		store.SeedParticipation(&domain.Participation{CampaignID: "c1", InfluencerID: id, Status: domain.ParticipationActive, Revenue: 10})
	}
	// not contributing
	store.SeedParticipation(&domain.Participation{CampaignID: "c1", InfluencerID: "inf-0", Status: domain.ParticipationRequest, Revenue: 999})

	got, err := newAnalytics(store, nil).TopInfluencers(context.Background(), brand)
	require.NoError(t, err)
	require.Len(t, got, domain.TopInfluencersLimit)
	assert.Equal(t, "inf-a", got[0].InfluencerID)
	assert.Equal(t, "inf-j", got[9].InfluencerID)
}

func TestTopInfluencersEmptyCases(t *testing.T) {
	ctx := context.Background()

	t.Run("brand without campaigns", func(t *testing.T) {
		got, err := newAnalytics(usecasetest.NewStore(), nil).TopInfluencers(ctx, brand)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("store failure yields empty list", func(t *testing.T) {
		store := usecasetest.NewStore()
		seedTwoCampaigns(store)
		store.Errors["GetInfluencerRankings"] = errors.New("connection reset")
		uc := newAnalytics(store, nil)

		got, err := uc.TopInfluencers(ctx, brand)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
		assert.Equal(t, 1.0, testutil.ToFloat64(uc.Metrics.RankingFailuresTotal))
	})

	t.Run("non brand is refused", func(t *testing.T) {
		_, err := newAnalytics(usecasetest.NewStore(), nil).TopInfluencers(ctx, domain.Actor{ID: "x", Role: domain.RoleCustomer})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestTopInfluencersCache(t *testing.T) {
	ctx := context.Background()
	store := usecasetest.NewStore()
	seedTwoCampaigns(store)
	cache := usecasetest.NewRankingCache()
	uc := newAnalytics(store, cache)

	first, err := uc.TopInfluencers(ctx, brand)
	require.NoError(t, err)

	// served from cache even though the store now fails
	store.Errors["GetCampaignIDsByBrand"] = errors.New("down")
	second, err := uc.TopInfluencers(ctx, brand)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Hits)

	require.NoError(t, cache.Invalidate(ctx, brand.ID))
	third, err := uc.TopInfluencers(ctx, brand)
	require.NoError(t, err)
	assert.Empty(t, third)
}

func TestContribution(t *testing.T) {
	ctx := context.Background()
	store := usecasetest.NewStore()
	seedTwoCampaigns(store)
	store.SeedPayment(&domain.CampaignPayment{ID: "p1", CampaignID: "c1", InfluencerID: "inf-1", Amount: 100, Status: domain.PaymentCompleted})
	store.SeedPayment(&domain.CampaignPayment{ID: "p2", CampaignID: "c1", InfluencerID: "inf-1", Amount: 50, Status: domain.PaymentCompleted})
	store.SeedPayment(&domain.CampaignPayment{ID: "p3", CampaignID: "c1", InfluencerID: "inf-1", Amount: 70, Status: domain.PaymentPending})
	store.SeedPayment(&domain.CampaignPayment{ID: "p4", CampaignID: "c2", InfluencerID: "inf-1", Amount: 30, Status: domain.PaymentCompleted})
	uc := newAnalytics(store, nil)

	view, err := uc.Contribution(ctx, brand, "c1", "inf-1")
	require.NoError(t, err)
	assert.Equal(t, 150.0, view.Contribution.Earnings)
	assert.Equal(t, 40.0, view.Contribution.Progress)
	assert.Equal(t, "Campaign c1", view.CampaignTitle)
	assert.Equal(t, "Ana", view.Influencer.Name)
	assert.NotNil(t, view.Contribution.Deliverables)

	_, err = uc.Contribution(ctx, domain.Actor{ID: "brand-x", Role: domain.RoleBrand}, "c1", "inf-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	store.SeedParticipation(&domain.Participation{CampaignID: "c1", InfluencerID: "inf-2", Status: domain.ParticipationBrandInvite})
	_, err = uc.Contribution(ctx, brand, "c1", "inf-2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCampaignMetrics(t *testing.T) {
	ctx := context.Background()
	store := usecasetest.NewStore()
	seedTwoCampaigns(store)
	uc := newAnalytics(store, nil)

	_, err := store.GetCampaignMetrics("c1")
	require.ErrorIs(t, err, domain.ErrNotFound)

	m, err := uc.GetCampaignMetrics(ctx, brand, "c1")
	require.NoError(t, err)
	assert.Equal(t, 40.0, m.OverallProgress)

	stored, err := store.GetCampaignMetrics("c1")
	require.NoError(t, err)
	assert.Equal(t, m.ComputedAt, stored.ComputedAt)

	n, err := uc.RefreshActiveCampaigns(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	store.Errors["CollectRollupInput"] = errors.New("timeout")
	n, err = uc.RefreshActiveCampaigns(ctx)
	assert.Error(t, err)
	assert.Zero(t, n)
}

func TestBrandDashboard(t *testing.T) {
	ctx := context.Background()
	store := usecasetest.NewStore()
	seedTwoCampaigns(store)
	store.SeedMetrics(&domain.CampaignMetrics{CampaignID: "c1", OverallProgress: 100})
	uc := newAnalytics(store, nil)

	out, err := uc.BrandDashboard(ctx, brand)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, out.TotalBudget)
	assert.Len(t, out.StatusCounts, 2)
	require.Len(t, out.TopInfluencers, 1)
	require.Len(t, out.ProgressAlerts, 1)
	assert.Equal(t, "c1", out.ProgressAlerts[0].CampaignID)
	assert.Contains(t, out.ProgressAlerts[0].Message, "100%")

	store.Errors["CountCampaignsByStatus"] = errors.New("boom")
	_, err = uc.BrandDashboard(ctx, brand)
	assert.ErrorIs(t, err, domain.ErrStoreFailure)
}
