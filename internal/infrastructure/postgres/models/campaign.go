package models

import (
	"time"

	"github.com/lib/pq"
)

type CampaignModel struct {
	ID               string         `gorm:"primaryKey;type:uuid"`
	BrandID          string         `gorm:"not null;index:idx_campaign_brand_status"`
	Title            string         `gorm:"not null"`
	Description      string
	Status           string         `gorm:"not null;index:idx_campaign_brand_status"`
	StartDate        time.Time
	EndDate          time.Time
	Budget           float64
	RequiredChannels pq.StringArray `gorm:"type:text[]"`
	MinFollowers     int64
	CommissionRate   float64
	Version          int64          `gorm:"not null;default:1"`
	CreatedAt        time.Time      `gorm:"index:idx_campaign_created_at"`
	UpdatedAt        time.Time
}

type CampaignMetricsModel struct {
	CampaignID       string        `gorm:"primaryKey;type:uuid"`
	Campaign         CampaignModel `gorm:"foreignKey:CampaignID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Reach            int64
	Impressions      int64
	EngagementRate   float64
	ConversionRate   float64
	Clicks           int64
	Conversions      int64
	Revenue          float64
	Spend            float64
	ROI              float64 `gorm:"column:roi"`
	OverallProgress  float64 `gorm:"index"`
	PerformanceScore float64
	ComputedAt       time.Time
	UpdatedAt        time.Time
}
