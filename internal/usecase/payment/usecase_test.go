package usecase

import (
	"context"
	"testing"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	paymentdto "github.com/LavaJover/shvark-campaign-service/internal/usecase/dto/payment"
	"github.com/LavaJover/shvark-campaign-service/internal/usecase/usecasetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var brand = domain.Actor{ID: "brand-1", Role: domain.RoleBrand}

func newPayments(t *testing.T) (*usecasetest.Store, *DefaultPaymentUsecase) {
	t.Helper()
	store := usecasetest.NewStore()
	c := usecasetest.NewCampaign("c1", brand.ID)
	c.Status = domain.CampaignActive
	store.SeedCampaign(c)
	store.SeedParticipation(&domain.Participation{CampaignID: "c1", InfluencerID: "inf-1", Status: domain.ParticipationActive})
	return store, NewDefaultPaymentUsecase(store, store, store, store, nil)
}

func TestRecordPayment(t *testing.T) {
	ctx := context.Background()
	store, uc := newPayments(t)

	payment, err := uc.RecordPayment(ctx, brand, &paymentdto.RecordPaymentInput{CampaignID: "c1", InfluencerID: "inf-1", Amount: 120, Method: " wire "})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, payment.Status)
	assert.Equal(t, "wire", payment.Method)
	assert.Equal(t, brand.ID, payment.BrandID)

	_, err = uc.RecordPayment(ctx, brand, &paymentdto.RecordPaymentInput{CampaignID: "c1", InfluencerID: "inf-1", Amount: 0})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = uc.RecordPayment(ctx, brand, &paymentdto.RecordPaymentInput{CampaignID: "c1", InfluencerID: "inf-9", Amount: 10})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.RecordPayment(ctx, domain.Actor{ID: "brand-2", Role: domain.RoleBrand}, &paymentdto.RecordPaymentInput{CampaignID: "c1", InfluencerID: "inf-1", Amount: 10})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	changes := store.StatusChanges()
	require.Len(t, changes, 1)
	assert.Equal(t, "payment", changes[0].EntityType)
}

func TestPaymentLifecycleAndTotals(t *testing.T) {
	ctx := context.Background()
	_, uc := newPayments(t)

	first, err := uc.RecordPayment(ctx, brand, &paymentdto.RecordPaymentInput{CampaignID: "c1", InfluencerID: "inf-1", Amount: 100})
	require.NoError(t, err)
	second, err := uc.RecordPayment(ctx, brand, &paymentdto.RecordPaymentInput{CampaignID: "c1", InfluencerID: "inf-1", Amount: 50})
	require.NoError(t, err)
	third, err := uc.RecordPayment(ctx, brand, &paymentdto.RecordPaymentInput{CampaignID: "c1", InfluencerID: "inf-1", Amount: 75})
	require.NoError(t, err)

	_, err = uc.UpdatePaymentStatus(ctx, brand, first.ID, domain.PaymentProcessing)
	require.NoError(t, err)
	done, err := uc.UpdatePaymentStatus(ctx, brand, first.ID, domain.PaymentCompleted)
	require.NoError(t, err)
	require.NotNil(t, done.PaidAt)
	_, err = uc.UpdatePaymentStatus(ctx, brand, second.ID, domain.PaymentCompleted)
	require.NoError(t, err)
	_, err = uc.UpdatePaymentStatus(ctx, brand, third.ID, domain.PaymentFailed)
	require.NoError(t, err)

	_, err = uc.UpdatePaymentStatus(ctx, brand, first.ID, domain.PaymentPending)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = uc.UpdatePaymentStatus(ctx, domain.Actor{ID: "inf-1", Role: domain.RoleInfluencer}, second.ID, domain.PaymentFailed)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	total, err := uc.TotalPaid(ctx, "c1", "inf-1")
	require.NoError(t, err)
	assert.Equal(t, 150.0, total)

	list, err := uc.GetPayments(ctx, domain.Actor{ID: "inf-1", Role: domain.RoleInfluencer}, "c1", "inf-1")
	require.NoError(t, err)
	assert.Len(t, list, 3)

	_, err = uc.GetPayments(ctx, domain.Actor{ID: "inf-2", Role: domain.RoleInfluencer}, "c1", "inf-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
