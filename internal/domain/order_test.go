package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceItems(t *testing.T) {
	catalog := map[string]*Product{
		"p1": {ID: "p1", Price: 19.99},
		"p2": {ID: "p2", Price: 0.1},
	}

	items := []OrderItem{{ProductID: "p1", Quantity: 3}, {ProductID: "p2", Quantity: 3}}
	total, err := PriceItems(items, catalog)
	require.NoError(t, err)
	assert.Equal(t, 60.27, total)
	assert.Equal(t, 19.99, items[0].Price)
	assert.Equal(t, 59.97, items[0].Subtotal)
	assert.Equal(t, 0.3, items[1].Subtotal)

	_, err = PriceItems(nil, catalog)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = PriceItems([]OrderItem{{ProductID: "p1", Quantity: 0}}, catalog)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = PriceItems([]OrderItem{{ProductID: "nope", Quantity: 1}}, catalog)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommission(t *testing.T) {
	assert.Equal(t, 15.0, Commission(150, 10))
	assert.Equal(t, 1.23, Commission(9.87, 12.5))
	assert.Zero(t, Commission(100, 0))
}

func TestAttributionTransition(t *testing.T) {
	a := &Attribution{Status: AttributionPending}
	require.NoError(t, a.TransitionTo(AttributionPaid))
	assert.ErrorIs(t, a.TransitionTo(AttributionCancelled), ErrInvalidTransition)

	b := &Attribution{Status: AttributionPending}
	assert.ErrorIs(t, b.TransitionTo(AttributionPending), ErrInvalidTransition)
}

func TestProductAndInfluencerValidate(t *testing.T) {
	assert.NoError(t, (&Product{Name: "Serum", BrandID: "b1", Price: 12}).Validate())
	assert.ErrorIs(t, (&Product{Name: "Serum", BrandID: "b1"}).Validate(), ErrValidation)

	assert.NoError(t, (&Influencer{ID: "i1", Name: "Ana", Followers: 10}).Validate())
	assert.ErrorIs(t, (&Influencer{ID: "i1", Name: "Ana", CommissionRate: 120}).Validate(), ErrValidation)
	assert.ErrorIs(t, (&Influencer{Name: "Ana"}).Validate(), ErrValidation)
}
