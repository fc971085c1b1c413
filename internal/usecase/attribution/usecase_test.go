package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/LavaJover/shvark-campaign-service/internal/infrastructure/metrics"
	orderdto "github.com/LavaJover/shvark-campaign-service/internal/usecase/dto/order"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase/usecasetest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	brand      = domain.Actor{ID: "brand-1", Role: domain.RoleBrand}
	influencer = domain.Actor{ID: "inf-1", Role: domain.RoleInfluencer}
	customer   = domain.Actor{ID: "cus-1", Role: domain.RoleCustomer}
	admin      = domain.Actor{ID: "adm-1", Role: domain.RoleAdmin}
)

type fixture struct {
	store *usecasetest.Store
	cache *usecasetest.RankingCache
	pub   *usecasetest.Publisher
	uc    *DefaultAttributionUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := usecasetest.NewStore()
	cache := usecasetest.NewRankingCache()
	pub := &usecasetest.Publisher{}
	uc := NewDefaultAttributionUsecase(store, store, store, store, store, cache, pub, store,
		metrics.NewCampaignMetrics(prometheus.NewRegistry()))

	c := usecasetest.NewCampaign("c1", brand.ID)
	c.Status = domain.CampaignActive
	c.CommissionRate = 10
	store.SeedCampaign(c)
	store.SeedInfluencer(&domain.Influencer{ID: influencer.ID, Name: "Ana", ReferralCode: "ANAREF0001", CommissionRate: 5})
	store.SeedParticipation(&domain.Participation{CampaignID: "c1", InfluencerID: influencer.ID, Status: domain.ParticipationActive, ReferralCode: "CAMPREF001"})
	store.SeedProduct(&domain.Product{ID: "p1", BrandID: brand.ID, Name: "Serum", Price: 25})
	store.SeedProduct(&domain.Product{ID: "p2", BrandID: brand.ID, Name: "Cream", Price: 12.5})
	return &fixture{store: store, cache: cache, pub: pub, uc: uc}
}

func orderInput(code string) *orderdto.PlaceOrderInput {
	return &orderdto.PlaceOrderInput{
		Items:        []orderdto.OrderItemInput{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 4}},
		ReferralCode: code,
	}
}

func TestPlaceOrderCampaignCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	placed, err := f.uc.PlaceOrder(ctx, customer, orderInput("CAMPREF001"))
	require.NoError(t, err)
	assert.Equal(t, 100.0, placed.TotalAmount)
	require.NotNil(t, placed.Attribution)
	assert.Equal(t, "c1", placed.Attribution.CampaignID)
	assert.Equal(t, 10.0, placed.Attribution.CommissionRate)
	assert.Equal(t, 10.0, placed.Attribution.CommissionAmount)
	assert.Equal(t, domain.AttributionPending, placed.Attribution.Status)

	p, err := f.store.GetParticipation("c1", influencer.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, p.Revenue)
	assert.Equal(t, int64(1), p.Metrics.Conversions)
	assert.Equal(t, 1, f.cache.InvalidationCount(brand.ID))

	totals, err := f.uc.InfluencerCommissions(ctx, influencer)
	require.NoError(t, err)
	assert.Equal(t, 10.0, totals.Pending)
	assert.Equal(t, int64(1), totals.Orders)

	require.Eventually(t, func() bool { return len(f.pub.OrderAttributedEvents()) == 1 }, time.Second, 10*time.Millisecond)
}

func TestPlaceOrderInfluencerCode(t *testing.T) {
	f := newFixture(t)

	placed, err := f.uc.PlaceOrder(context.Background(), customer, orderInput("ANAREF0001"))
	require.NoError(t, err)
	require.NotNil(t, placed.Attribution)
	assert.Empty(t, placed.Attribution.CampaignID)
	assert.Equal(t, 5.0, placed.Attribution.CommissionAmount)

	p, err := f.store.GetParticipation("c1", influencer.ID)
	require.NoError(t, err)
	assert.Zero(t, p.Revenue)
}

func TestPlaceOrderUnresolvedCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	placed, err := f.uc.PlaceOrder(ctx, customer, orderInput("NOBODY"))
	require.NoError(t, err)
	assert.Nil(t, placed.Attribution)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.uc.Metrics.UnresolvedReferralsTotal))

	stored, err := f.store.GetOrderByID(placed.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Attribution)

	totals, err := f.uc.InfluencerCommissions(ctx, influencer)
	require.NoError(t, err)
	assert.Zero(t, totals.Pending)
	assert.Zero(t, totals.Paid)
	assert.Zero(t, totals.Orders)
}

func TestPlaceOrderInactiveParticipationCode(t *testing.T) {
	f := newFixture(t)
	f.store.SeedParticipation(&domain.Participation{ID: "old", CampaignID: "c0", InfluencerID: influencer.ID, Status: domain.ParticipationCompleted, ReferralCode: "OLDCODE001"})

	placed, err := f.uc.PlaceOrder(context.Background(), customer, orderInput("OLDCODE001"))
	require.NoError(t, err)
	assert.Nil(t, placed.Attribution)
}

func TestPlaceOrderValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.PlaceOrder(ctx, influencer, orderInput(""))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.uc.PlaceOrder(ctx, customer, &orderdto.PlaceOrderInput{})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.uc.PlaceOrder(ctx, customer, &orderdto.PlaceOrderInput{Items: []orderdto.OrderItemInput{{ProductID: "ghost", Quantity: 1}}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancelOrderRevertsRevenue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	placed, err := f.uc.PlaceOrder(ctx, customer, orderInput("CAMPREF001"))
	require.NoError(t, err)

	_, err = f.uc.CancelOrder(ctx, domain.Actor{ID: "cus-2", Role: domain.RoleCustomer}, placed.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	cancelled, err := f.uc.CancelOrder(ctx, customer, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderCancelled, cancelled.Status)
	assert.Equal(t, domain.AttributionCancelled, cancelled.Attribution.Status)

	p, err := f.store.GetParticipation("c1", influencer.ID)
	require.NoError(t, err)
	assert.Zero(t, p.Revenue)
	assert.Zero(t, p.Metrics.Conversions)

	totals, err := f.uc.InfluencerCommissions(ctx, influencer)
	require.NoError(t, err)
	assert.Zero(t, totals.Orders)

	_, err = f.uc.CancelOrder(ctx, customer, placed.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSettleAttribution(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	placed, err := f.uc.PlaceOrder(ctx, customer, orderInput("CAMPREF001"))
	require.NoError(t, err)

	_, err = f.uc.MarkCommissionPaid(ctx, domain.Actor{ID: "brand-2", Role: domain.RoleBrand}, placed.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	paid, err := f.uc.MarkCommissionPaid(ctx, brand, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AttributionPaid, paid.Attribution.Status)

	_, err = f.uc.CancelAttribution(ctx, brand, placed.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	totals, err := f.uc.InfluencerCommissions(ctx, influencer)
	require.NoError(t, err)
	assert.Equal(t, 10.0, totals.Paid)
	assert.Zero(t, totals.Pending)

	direct, err := f.uc.PlaceOrder(ctx, customer, orderInput("ANAREF0001"))
	require.NoError(t, err)
	_, err = f.uc.CancelAttribution(ctx, brand, direct.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	cancelled, err := f.uc.CancelAttribution(ctx, admin, direct.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AttributionCancelled, cancelled.Attribution.Status)
}

func TestRegisterInfluencerKeepsReferralCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	newcomer := domain.Actor{ID: "inf-new", Role: domain.RoleInfluencer}

	first, err := f.uc.RegisterInfluencer(ctx, newcomer, &orderdto.RegisterInfluencerInput{Name: "Nia", Followers: 300, Channels: []string{" tiktok ", ""}})
	require.NoError(t, err)
	assert.Len(t, first.ReferralCode, 10)
	assert.Equal(t, []string{"tiktok"}, first.Channels)

	second, err := f.uc.RegisterInfluencer(ctx, newcomer, &orderdto.RegisterInfluencerInput{Name: "Nia B", Followers: 900})
	require.NoError(t, err)
	assert.Equal(t, first.ReferralCode, second.ReferralCode)

	_, err = f.uc.RegisterInfluencer(ctx, newcomer, &orderdto.RegisterInfluencerInput{Name: ""})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateProduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.uc.CreateProduct(ctx, brand, &orderdto.CreateProductInput{Name: " Toner ", Price: 9.9})
	require.NoError(t, err)
	assert.Equal(t, "Toner", p.Name)
	assert.Equal(t, brand.ID, p.BrandID)

	_, err = f.uc.CreateProduct(ctx, brand, &orderdto.CreateProductInput{Name: "Free", Price: 0})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.uc.CreateProduct(ctx, customer, &orderdto.CreateProductInput{Name: "x", Price: 1})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
