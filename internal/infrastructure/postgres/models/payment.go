package models

import "time"

type CampaignPaymentModel struct {
	ID           string        `gorm:"primaryKey"`
	CampaignID   string        `gorm:"type:uuid;not null;index:idx_payment_pair"`
	Campaign     CampaignModel `gorm:"foreignKey:CampaignID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	BrandID      string        `gorm:"not null"`
	InfluencerID string        `gorm:"not null;index:idx_payment_pair"`
	Amount       float64       `gorm:"not null"`
	Status       string        `gorm:"not null;index"`
	Method       string
	PaidAt       *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
