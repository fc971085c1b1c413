package models

import "time"

type ProductModel struct {
	ID        string  `gorm:"primaryKey;type:uuid"`
	BrandID   string  `gorm:"not null;index"`
	Name      string  `gorm:"not null"`
	Price     float64 `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderModel keeps the attribution as nullable columns: an order whose
// referral code resolved to nobody has them all NULL.
type OrderModel struct {
	ID          string           `gorm:"primaryKey;type:uuid"`
	CustomerID  string           `gorm:"not null;index"`
	TotalAmount float64          `gorm:"not null"`
	Status      string           `gorm:"not null;index"`
	Items       []OrderItemModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	ReferralCode           *string
	AttributionInfluencer  *string `gorm:"index:idx_attribution_influencer"`
	AttributionCampaign    *string `gorm:"type:uuid;index"`
	CommissionRate         *float64
	CommissionAmount       *float64
	AttributionStatus      *string `gorm:"index:idx_attribution_influencer"`

	CreatedAt time.Time `gorm:"index:idx_order_created_at"`
	UpdatedAt time.Time
}

type OrderItemModel struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	OrderID   string  `gorm:"type:uuid;not null;index"`
	ProductID string  `gorm:"type:uuid;not null"`
	Quantity  int     `gorm:"not null"`
	Price     float64 `gorm:"not null"`
	Subtotal  float64 `gorm:"not null"`
}
