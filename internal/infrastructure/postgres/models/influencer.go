package models

import (
	"time"

	"github.com/lib/pq"
)

type InfluencerModel struct {
	ID             string `gorm:"primaryKey"`
	Name           string `gorm:"not null"`
	Email          string
	Followers      int64
	Channels       pq.StringArray `gorm:"type:text[]"`
	ReferralCode   string         `gorm:"uniqueIndex"`
	CommissionRate float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
