package models

import "time"

type ParticipationModel struct {
	ID              string          `gorm:"primaryKey;type:uuid"`
	CampaignID      string          `gorm:"type:uuid;not null;uniqueIndex:idx_participation_pair"`
	InfluencerID    string          `gorm:"not null;uniqueIndex:idx_participation_pair;index"`
	Campaign        CampaignModel   `gorm:"foreignKey:CampaignID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Influencer      InfluencerModel `gorm:"foreignKey:InfluencerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Status          string          `gorm:"not null;index"`
	Progress        float64
	EngagementRate  float64
	Reach           int64
	Clicks          int64
	Conversions     int64
	TimelinessScore float64
	Revenue         float64
	ReferralCode    string `gorm:"uniqueIndex"`
	Deliverables    string `gorm:"type:jsonb"`
	Version         int64  `gorm:"not null;default:1"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
