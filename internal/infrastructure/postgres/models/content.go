package models

import (
	"time"

	"github.com/lib/pq"
)

type ContentModel struct {
	ID           string         `gorm:"primaryKey;type:uuid"`
	CampaignID   string         `gorm:"type:uuid;not null;index"`
	Campaign     CampaignModel  `gorm:"foreignKey:CampaignID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	BrandID      string         `gorm:"not null"`
	InfluencerID string         `gorm:"not null;index"`
	Title        string         `gorm:"not null"`
	Body         string
	ProductIDs   pq.StringArray `gorm:"type:text[]"`
	Status       string         `gorm:"not null;index"`
	Feedback     string
	PostURL      string
	PublishedAt  *time.Time
	Views        int64
	Clicks       int64
	AddToCart    int64
	Purchases    int64
	Shares       int64
	Likes        int64
	Comments     int64
	Version      int64 `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ContentTrackingModel struct {
	ID         string       `gorm:"primaryKey"`
	ContentID  string       `gorm:"type:uuid;not null;index"`
	Content    ContentModel `gorm:"foreignKey:ContentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ProductID  *string
	SessionID  string
	Type       string    `gorm:"not null"`
	OccurredAt time.Time `gorm:"not null;index"`
}
