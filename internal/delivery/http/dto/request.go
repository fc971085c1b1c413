package httpdto

import "time"

type CreateCampaignRequest struct {
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Status           string    `json:"status"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	Budget           float64   `json:"budget"`
	RequiredChannels []string  `json:"required_channels"`
	MinFollowers     int64     `json:"min_followers"`
	CommissionRate   float64   `json:"commission_rate"`
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
}

type InviteRequest struct {
	InfluencerID string `json:"influencer_id"`
}

type AddDeliverableRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateProgressRequest struct {
	Progress float64 `json:"progress"`
	Override bool    `json:"override"`
}

type UpdateMetricsRequest struct {
	EngagementRate  float64 `json:"engagement_rate"`
	Reach           int64   `json:"reach"`
	Clicks          int64   `json:"clicks"`
	Conversions     int64   `json:"conversions"`
	TimelinessScore float64 `json:"timeliness_score"`
}

type CreateContentRequest struct {
	CampaignID string   `json:"campaign_id"`
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	ProductIDs []string `json:"product_ids"`
}

type ReviewContentRequest struct {
	Action   string `json:"action"`
	Feedback string `json:"feedback"`
}

type PublishContentRequest struct {
	PostURL string `json:"post_url"`
}

type TrackInteractionRequest struct {
	ContentID string `json:"content_id"`
	ProductID string `json:"product_id"`
	SessionID string `json:"session_id"`
	Type      string `json:"type"`
}

type RegisterInfluencerRequest struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Followers      int64    `json:"followers"`
	Channels       []string `json:"channels"`
	CommissionRate float64  `json:"commission_rate"`
}

type CreateProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type PlaceOrderRequest struct {
	Items        []OrderItemRequest `json:"items"`
	ReferralCode string             `json:"referral_code"`
}

type RecordPaymentRequest struct {
	CampaignID   string  `json:"campaign_id"`
	InfluencerID string  `json:"influencer_id"`
	Amount       float64 `json:"amount"`
	Method       string  `json:"method"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status"`
}
