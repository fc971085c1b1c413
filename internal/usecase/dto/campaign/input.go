package campaigndto

import "time"

type CreateCampaignInput struct {
	Title            string
	Description      string
	Status           string
	StartDate        time.Time
	EndDate          time.Time
	Budget           float64
	RequiredChannels []string
	MinFollowers     int64
	CommissionRate   float64
}

type ListCampaignsInput struct {
	Status string
	Page   int
	Limit  int
}

type AddDeliverableInput struct {
	CampaignID   string
	InfluencerID string
	Title        string
	Description  string
	DueDate      *time.Time
}

type UpdateProgressInput struct {
	CampaignID   string
	InfluencerID string
	Progress     float64
	Override     bool
}

type UpdateMetricsInput struct {
	CampaignID      string
	InfluencerID    string
	EngagementRate  float64
	Reach           int64
	Clicks          int64
	Conversions     int64
	TimelinessScore float64
}
