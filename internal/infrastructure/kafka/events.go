package publisher

import "time"

type CampaignStatusEvent struct {
	CampaignID string    `json:"campaign_id"`
	BrandID    string    `json:"brand_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ContentReviewedEvent struct {
	ContentID    string    `json:"content_id"`
	CampaignID   string    `json:"campaign_id"`
	InfluencerID string    `json:"influencer_id"`
	Status       string    `json:"status"`
	Feedback     string    `json:"feedback"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type OrderAttributedEvent struct {
	OrderID          string    `json:"order_id"`
	InfluencerID     string    `json:"influencer_id"`
	CampaignID       string    `json:"campaign_id,omitempty"`
	TotalAmount      float64   `json:"total_amount"`
	CommissionAmount float64   `json:"commission_amount"`
	Status           string    `json:"status"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// TrackingMessage is the payload read from the content tracking topic.
type TrackingMessage struct {
	ContentID string `json:"content_id"`
	ProductID string `json:"product_id"`
	SessionID string `json:"session_id"`
	Type      string `json:"type"`
}
