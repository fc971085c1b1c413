package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

type AttributionStatus string

const (
	AttributionPending   AttributionStatus = "pending"
	AttributionPaid      AttributionStatus = "paid"
	AttributionCancelled AttributionStatus = "cancelled"
)

type OrderItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Subtotal  float64 `json:"subtotal"`
}

// Attribution links an order to the influencer whose referral code was used.
// The rate is stored so the commission can always be recomputed from the
// order alone.
type Attribution struct {
	ReferralCode     string
	InfluencerID     string
	CampaignID       string
	CommissionRate   float64
	CommissionAmount float64
	Status           AttributionStatus
}

type Order struct {
	ID          string
	CustomerID  string
	Items       []OrderItem
	TotalAmount float64
	Status      OrderStatus
	Attribution *Attribution
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PriceItems fills price-at-purchase and subtotals from the catalog and
// returns the order total.
func PriceItems(items []OrderItem, catalog map[string]*Product) (float64, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("%w: order has no items", ErrValidation)
	}
	total := decimal.Zero
	for i := range items {
		if items[i].Quantity <= 0 {
			return 0, fmt.Errorf("%w: quantity must be positive", ErrValidation)
		}
		product, ok := catalog[items[i].ProductID]
		if !ok {
			return 0, fmt.Errorf("%w: product %s", ErrNotFound, items[i].ProductID)
		}
		price := decimal.NewFromFloat(product.Price)
		subtotal := price.Mul(decimal.NewFromInt(int64(items[i].Quantity))).Round(2)
		items[i].Price = product.Price
		items[i].Subtotal = subtotal.InexactFloat64()
		total = total.Add(subtotal)
	}
	return total.Round(2).InexactFloat64(), nil
}

// Commission is total * rate / 100 rounded to cents.
func Commission(total, ratePercent float64) float64 {
	return decimal.NewFromFloat(total).
		Mul(decimal.NewFromFloat(ratePercent)).
		Div(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
}

func (a *Attribution) TransitionTo(next AttributionStatus) error {
	if a.Status != AttributionPending || (next != AttributionPaid && next != AttributionCancelled) {
		return fmt.Errorf("%w: attribution cannot move from %s to %s", ErrInvalidTransition, a.Status, next)
	}
	a.Status = next
	return nil
}

type Product struct {
	ID        string
	BrandID   string
	Name      string
	Price     float64
	CreatedAt time.Time
}

func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if strings.TrimSpace(p.BrandID) == "" {
		return fmt.Errorf("%w: brand is required", ErrValidation)
	}
	if p.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	return nil
}

type CommissionTotals struct {
	InfluencerID string  `json:"influencer_id"`
	Pending      float64 `json:"pending"`
	Paid         float64 `json:"paid"`
	Orders       int64   `json:"orders"`
}
