package repository

import (
	"os"
	"testing"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	pg "github.com/LavaJover/shvark-campaign-service/internal/infrastructure/postgres"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB connects to the database named by CAMPAIGN_TEST_DSN. Every test
// works on fresh uuids, so runs do not interfere with each other.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("CAMPAIGN_TEST_DSN")
	if dsn == "" {
		t.Skip("CAMPAIGN_TEST_DSN is not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(pg.AllModels()...))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

type seeder struct {
	t              *testing.T
	campaigns      *DefaultCampaignRepository
	influencers    *DefaultInfluencerRepository
	participations *DefaultParticipationRepository
}

func newSeeder(t *testing.T, db *gorm.DB) *seeder {
	return &seeder{
		t:              t,
		campaigns:      NewDefaultCampaignRepository(db),
		influencers:    NewDefaultInfluencerRepository(db),
		participations: NewDefaultParticipationRepository(db),
	}
}

func (s *seeder) campaign(brandID string, status domain.CampaignStatus) *domain.Campaign {
	s.t.Helper()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := &domain.Campaign{
		ID:               uuid.New().String(),
		BrandID:          brandID,
		Title:            "Launch",
		Status:           status,
		StartDate:        start,
		EndDate:          start.AddDate(0, 1, 0),
		Budget:           1000,
		RequiredChannels: []string{"instagram"},
		CommissionRate:   10,
	}
	require.NoError(s.t, s.campaigns.CreateCampaign(c))
	return c
}

func (s *seeder) influencer(id, name string) {
	s.t.Helper()
	require.NoError(s.t, s.influencers.SaveInfluencer(&domain.Influencer{
		ID:           id,
		Name:         name,
		Followers:    5000,
		Channels:     []string{"instagram"},
		ReferralCode: "INF" + uuid.NewString()[:8],
	}))
}

func (s *seeder) participation(campaignID, influencerID string, status domain.ParticipationStatus, revenue float64) *domain.Participation {
	s.t.Helper()
	p := &domain.Participation{
		ID:           uuid.New().String(),
		CampaignID:   campaignID,
		InfluencerID: influencerID,
		Status:       status,
		Revenue:      revenue,
		ReferralCode: "REF" + uuid.NewString()[:8],
	}
	require.NoError(s.t, s.participations.CreateParticipation(p))
	return p
}

func TestInfluencerRankingsQuery(t *testing.T) {
	db := openTestDB(t)
	s := newSeeder(t, db)
	repo := NewDefaultRankingRepository(db)

	brandID := "brand-" + uuid.NewString()
	suffix := uuid.NewString()[:8]
	first, second, pending := "a-"+suffix, "b-"+suffix, "c-"+suffix
	s.influencer(first, "Ana")
	s.influencer(second, "Ben")
	s.influencer(pending, "Cy")

	c1 := s.campaign(brandID, domain.CampaignActive)
	c2 := s.campaign(brandID, domain.CampaignCompleted)
	other := s.campaign("brand-"+uuid.NewString(), domain.CampaignActive)

	s.participation(c1.ID, first, domain.ParticipationActive, 100)
	s.participation(c2.ID, first, domain.ParticipationCompleted, 50)
	s.participation(c1.ID, second, domain.ParticipationActive, 150)
	s.participation(c2.ID, pending, domain.ParticipationRequest, 900)
	s.participation(other.ID, second, domain.ParticipationActive, 1000)

	t.Run("revenue ties break on influencer id", func(t *testing.T) {
		rankings, err := repo.GetInfluencerRankings(brandID, []string{c1.ID, c2.ID, other.ID}, domain.TopInfluencersLimit)
		require.NoError(t, err)
		require.Len(t, rankings, 2)

		assert.Equal(t, first, rankings[0].InfluencerID)
		assert.Equal(t, "Ana", rankings[0].Name)
		assert.Equal(t, 150.0, rankings[0].TotalRevenue)
		assert.Equal(t, int64(2), rankings[0].CampaignCount)

		assert.Equal(t, second, rankings[1].InfluencerID)
		assert.Equal(t, 150.0, rankings[1].TotalRevenue)
		assert.Equal(t, int64(1), rankings[1].CampaignCount)
	})

	t.Run("limit", func(t *testing.T) {
		rankings, err := repo.GetInfluencerRankings(brandID, []string{c1.ID, c2.ID}, 1)
		require.NoError(t, err)
		require.Len(t, rankings, 1)
		assert.Equal(t, first, rankings[0].InfluencerID)
	})

	t.Run("no campaigns", func(t *testing.T) {
		rankings, err := repo.GetInfluencerRankings(brandID, nil, domain.TopInfluencersLimit)
		require.NoError(t, err)
		assert.Empty(t, rankings)
	})
}

func TestApplyCascade(t *testing.T) {
	db := openTestDB(t)
	s := newSeeder(t, db)
	metrics := NewDefaultMetricsRepository(db)

	suffix := uuid.NewString()[:8]
	s.influencer("act-"+suffix, "Ana")
	s.influencer("req-"+suffix, "Ben")

	c := s.campaign("brand-"+uuid.NewString(), domain.CampaignActive)
	s.participation(c.ID, "act-"+suffix, domain.ParticipationActive, 80)
	s.participation(c.ID, "req-"+suffix, domain.ParticipationRequest, 0)

	cascade := domain.CampaignCascade{
		CampaignID:          c.ID,
		ExpectedVersion:     c.Version,
		NewStatus:           domain.CampaignCompleted,
		FromStatuses:        []domain.ParticipationStatus{domain.ParticipationActive},
		ParticipationStatus: domain.ParticipationCompleted,
		RecomputeMetrics:    true,
	}
	rolled, err := s.campaigns.ApplyCascade(cascade)
	require.NoError(t, err)
	require.NotNil(t, rolled)
	assert.Equal(t, c.ID, rolled.CampaignID)

	stored, err := s.campaigns.GetCampaignByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignCompleted, stored.Status)
	assert.Equal(t, c.Version+1, stored.Version)

	moved, err := s.participations.GetParticipation(c.ID, "act-"+suffix)
	require.NoError(t, err)
	assert.Equal(t, domain.ParticipationCompleted, moved.Status)
	assert.Equal(t, int64(2), moved.Version)

	untouched, err := s.participations.GetParticipation(c.ID, "req-"+suffix)
	require.NoError(t, err)
	assert.Equal(t, domain.ParticipationRequest, untouched.Status)

	_, err = metrics.GetCampaignMetrics(c.ID)
	assert.NoError(t, err)

	t.Run("stale version changes nothing", func(t *testing.T) {
		_, err := s.campaigns.ApplyCascade(cascade)
		assert.ErrorIs(t, err, domain.ErrVersionConflict)

		again, err := s.participations.GetParticipation(c.ID, "act-"+suffix)
		require.NoError(t, err)
		assert.Equal(t, int64(2), again.Version)
	})

	t.Run("unknown campaign", func(t *testing.T) {
		missing := cascade
		missing.CampaignID = uuid.New().String()
		_, err := s.campaigns.ApplyCascade(missing)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCancelOrderRevertsRevenue(t *testing.T) {
	db := openTestDB(t)
	s := newSeeder(t, db)
	orders := NewDefaultOrderRepository(db)

	influencerID := "inf-" + uuid.NewString()[:8]
	s.influencer(influencerID, "Ana")
	c := s.campaign("brand-"+uuid.NewString(), domain.CampaignActive)
	p := s.participation(c.ID, influencerID, domain.ParticipationActive, 20)

	order := &domain.Order{
		ID:          uuid.New().String(),
		CustomerID:  "cus-1",
		Items:       []domain.OrderItem{{ProductID: uuid.New().String(), Quantity: 2, Price: 20, Subtotal: 40}},
		TotalAmount: 40,
		Status:      domain.OrderPending,
		Attribution: &domain.Attribution{
			ReferralCode:     p.ReferralCode,
			InfluencerID:     influencerID,
			CampaignID:       c.ID,
			CommissionRate:   10,
			CommissionAmount: 4,
			Status:           domain.AttributionPending,
		},
	}
	require.NoError(t, orders.CreateOrder(order))

	bumped, err := s.participations.GetParticipation(c.ID, influencerID)
	require.NoError(t, err)
	assert.Equal(t, 60.0, bumped.Revenue)
	assert.Equal(t, int64(1), bumped.Metrics.Conversions)

	require.NoError(t, orders.CancelOrder(order.ID))

	reverted, err := s.participations.GetParticipation(c.ID, influencerID)
	require.NoError(t, err)
	assert.Equal(t, 20.0, reverted.Revenue)
	assert.Equal(t, int64(0), reverted.Metrics.Conversions)

	cancelled, err := orders.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderCancelled, cancelled.Status)
	require.NotNil(t, cancelled.Attribution)
	assert.Equal(t, domain.AttributionCancelled, cancelled.Attribution.Status)

	assert.ErrorIs(t, orders.CancelOrder(order.ID), domain.ErrInvalidTransition)
}
