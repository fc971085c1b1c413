package httpdto

import (
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
)

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorPayload struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type ErrorResponse struct {
	Status string       `json:"status"`
	Error  ErrorPayload `json:"error"`
}

type CampaignResponse struct {
	ID               string    `json:"id"`
	BrandID          string    `json:"brand_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Status           string    `json:"status"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	Budget           float64   `json:"budget"`
	RequiredChannels []string  `json:"required_channels"`
	MinFollowers     int64     `json:"min_followers"`
	CommissionRate   float64   `json:"commission_rate"`
	Version          int64     `json:"version"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewCampaignResponse(c *domain.Campaign) CampaignResponse {
	channels := c.RequiredChannels
	if channels == nil {
		channels = []string{}
	}
	return CampaignResponse{
		ID:               c.ID,
		BrandID:          c.BrandID,
		Title:            c.Title,
		Description:      c.Description,
		Status:           string(c.Status),
		StartDate:        c.StartDate,
		EndDate:          c.EndDate,
		Budget:           c.Budget,
		RequiredChannels: channels,
		MinFollowers:     c.MinFollowers,
		CommissionRate:   c.CommissionRate,
		Version:          c.Version,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

type CampaignListResponse struct {
	Campaigns  []CampaignResponse `json:"campaigns"`
	Pagination interface{}        `json:"pagination"`
}

type ParticipationResponse struct {
	ID           string                   `json:"id"`
	CampaignID   string                   `json:"campaign_id"`
	InfluencerID string                   `json:"influencer_id"`
	Status       string                   `json:"status"`
	Progress     float64                  `json:"progress"`
	Metrics      domain.InfluencerMetrics `json:"metrics"`
	Revenue      float64                  `json:"revenue"`
	ReferralCode string                   `json:"referral_code"`
	Deliverables []domain.Deliverable     `json:"deliverables"`
	Version      int64                    `json:"version"`
}

func NewParticipationResponse(p *domain.Participation) ParticipationResponse {
	deliverables := p.Deliverables
	if deliverables == nil {
		deliverables = []domain.Deliverable{}
	}
	return ParticipationResponse{
		ID:           p.ID,
		CampaignID:   p.CampaignID,
		InfluencerID: p.InfluencerID,
		Status:       string(p.Status),
		Progress:     p.Progress,
		Metrics:      p.Metrics,
		Revenue:      p.Revenue,
		ReferralCode: p.ReferralCode,
		Deliverables: deliverables,
		Version:      p.Version,
	}
}

type MetricsResponse struct {
	CampaignID       string    `json:"campaign_id"`
	Reach            int64     `json:"reach"`
	Impressions      int64     `json:"impressions"`
	EngagementRate   float64   `json:"engagement_rate"`
	ConversionRate   float64   `json:"conversion_rate"`
	Clicks           int64     `json:"clicks"`
	Conversions      int64     `json:"conversions"`
	Revenue          float64   `json:"revenue"`
	Spend            float64   `json:"spend"`
	ROI              float64   `json:"roi"`
	OverallProgress  float64   `json:"overall_progress"`
	PerformanceScore float64   `json:"performance_score"`
	ComputedAt       time.Time `json:"computed_at"`
}

func NewMetricsResponse(m *domain.CampaignMetrics) *MetricsResponse {
	if m == nil {
		return nil
	}
	return &MetricsResponse{
		CampaignID:       m.CampaignID,
		Reach:            m.Reach,
		Impressions:      m.Impressions,
		EngagementRate:   m.EngagementRate,
		ConversionRate:   m.ConversionRate,
		Clicks:           m.Clicks,
		Conversions:      m.Conversions,
		Revenue:          m.Revenue,
		Spend:            m.Spend,
		ROI:              m.ROI,
		OverallProgress:  m.OverallProgress,
		PerformanceScore: m.PerformanceScore,
		ComputedAt:       m.ComputedAt,
	}
}

type CascadeResponse struct {
	Campaign CampaignResponse `json:"campaign"`
	Metrics  *MetricsResponse `json:"metrics,omitempty"`
}

type ContentResponse struct {
	ID           string                    `json:"id"`
	CampaignID   string                    `json:"campaign_id"`
	InfluencerID string                    `json:"influencer_id"`
	Title        string                    `json:"title"`
	Body         string                    `json:"body"`
	ProductIDs   []string                  `json:"product_ids"`
	Status       string                    `json:"status"`
	Feedback     string                    `json:"feedback"`
	PostURL      string                    `json:"post_url,omitempty"`
	PublishedAt  *time.Time                `json:"published_at,omitempty"`
	Performance  domain.ContentPerformance `json:"performance"`
	Version      int64                     `json:"version"`
}

func NewContentResponse(c *domain.CampaignContent) ContentResponse {
	productIDs := c.ProductIDs
	if productIDs == nil {
		productIDs = []string{}
	}
	return ContentResponse{
		ID:           c.ID,
		CampaignID:   c.CampaignID,
		InfluencerID: c.InfluencerID,
		Title:        c.Title,
		Body:         c.Body,
		ProductIDs:   productIDs,
		Status:       string(c.Status),
		Feedback:     c.Feedback,
		PostURL:      c.PostURL,
		PublishedAt:  c.PublishedAt,
		Performance:  c.Performance,
		Version:      c.Version,
	}
}

type InfluencerResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Followers      int64    `json:"followers"`
	Channels       []string `json:"channels"`
	ReferralCode   string   `json:"referral_code"`
	CommissionRate float64  `json:"commission_rate"`
}

func NewInfluencerResponse(i *domain.Influencer) InfluencerResponse {
	return InfluencerResponse{
		ID:             i.ID,
		Name:           i.Name,
		Email:          i.Email,
		Followers:      i.Followers,
		Channels:       i.Channels,
		ReferralCode:   i.ReferralCode,
		CommissionRate: i.CommissionRate,
	}
}

type ProductResponse struct {
	ID      string  `json:"id"`
	BrandID string  `json:"brand_id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
}

func NewProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{ID: p.ID, BrandID: p.BrandID, Name: p.Name, Price: p.Price}
}

type AttributionResponse struct {
	ReferralCode     string  `json:"referral_code"`
	InfluencerID     string  `json:"influencer_id"`
	CampaignID       string  `json:"campaign_id,omitempty"`
	CommissionRate   float64 `json:"commission_rate"`
	CommissionAmount float64 `json:"commission_amount"`
	Status           string  `json:"status"`
}

type OrderResponse struct {
	ID          string               `json:"id"`
	CustomerID  string               `json:"customer_id"`
	Items       []domain.OrderItem   `json:"items"`
	TotalAmount float64              `json:"total_amount"`
	Status      string               `json:"status"`
	Attribution *AttributionResponse `json:"attribution"`
	CreatedAt   time.Time            `json:"created_at"`
}

func NewOrderResponse(o *domain.Order) OrderResponse {
	resp := OrderResponse{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		Items:       o.Items,
		TotalAmount: o.TotalAmount,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
	}
	if a := o.Attribution; a != nil {
		resp.Attribution = &AttributionResponse{
			ReferralCode:     a.ReferralCode,
			InfluencerID:     a.InfluencerID,
			CampaignID:       a.CampaignID,
			CommissionRate:   a.CommissionRate,
			CommissionAmount: a.CommissionAmount,
			Status:           string(a.Status),
		}
	}
	return resp
}

type PaymentResponse struct {
	ID           string     `json:"id"`
	CampaignID   string     `json:"campaign_id"`
	InfluencerID string     `json:"influencer_id"`
	Amount       float64    `json:"amount"`
	Status       string     `json:"status"`
	Method       string     `json:"method"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func NewPaymentResponse(p *domain.CampaignPayment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		CampaignID:   p.CampaignID,
		InfluencerID: p.InfluencerID,
		Amount:       p.Amount,
		Status:       string(p.Status),
		Method:       p.Method,
		PaidAt:       p.PaidAt,
		CreatedAt:    p.CreatedAt,
	}
}
