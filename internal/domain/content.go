package domain

import (
	"fmt"
	"strings"
	"time"
)

type ContentStatus string

const (
	ContentDraft     ContentStatus = "draft"
	ContentSubmitted ContentStatus = "submitted"
	ContentApproved  ContentStatus = "approved"
	ContentRejected  ContentStatus = "rejected"
	ContentPublished ContentStatus = "published"
)

var contentTransitions = map[ContentStatus][]ContentStatus{
	ContentDraft:     {ContentSubmitted},
	ContentSubmitted: {ContentApproved, ContentRejected},
	ContentApproved:  {ContentPublished},
}

func (s ContentStatus) CanTransitionTo(next ContentStatus) bool {
	for _, allowed := range contentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

const (
	DefaultApproveFeedback = "Content approved"
	DefaultRejectFeedback  = "Content rejected"
)

type ContentPerformance struct {
	Views     int64 `json:"views"`
	Clicks    int64 `json:"clicks"`
	AddToCart int64 `json:"add_to_cart"`
	Purchases int64 `json:"purchases"`
	Shares    int64 `json:"shares"`
	Likes     int64 `json:"likes"`
	Comments  int64 `json:"comments"`
}

type CampaignContent struct {
	ID           string
	CampaignID   string
	BrandID      string
	InfluencerID string
	Title        string
	Body         string
	ProductIDs   []string
	Status       ContentStatus
	Feedback     string
	PostURL      string
	PublishedAt  *time.Time
	Performance  ContentPerformance
	Version      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (c *CampaignContent) transition(next ContentStatus) error {
	if !c.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: content %s cannot move from %s to %s", ErrInvalidTransition, c.ID, c.Status, next)
	}
	c.Status = next
	return nil
}

func (c *CampaignContent) Submit() error {
	return c.transition(ContentSubmitted)
}

// Approve and Reject store the feedback verbatim, falling back to a default
// text when it is blank.
func (c *CampaignContent) Approve(feedback string) error {
	if err := c.transition(ContentApproved); err != nil {
		return err
	}
	c.Feedback = feedbackOrDefault(feedback, DefaultApproveFeedback)
	return nil
}

func (c *CampaignContent) Reject(feedback string) error {
	if err := c.transition(ContentRejected); err != nil {
		return err
	}
	c.Feedback = feedbackOrDefault(feedback, DefaultRejectFeedback)
	return nil
}

func (c *CampaignContent) Publish(postURL string, at time.Time) error {
	if err := c.transition(ContentPublished); err != nil {
		return err
	}
	c.PostURL = strings.TrimSpace(postURL)
	c.PublishedAt = &at
	return nil
}

func feedbackOrDefault(feedback, fallback string) string {
	if strings.TrimSpace(feedback) == "" {
		return fallback
	}
	return feedback
}

type TrackingType string

const (
	TrackView      TrackingType = "view"
	TrackClick     TrackingType = "click"
	TrackAddToCart TrackingType = "add_to_cart"
	TrackPurchase  TrackingType = "purchase"
	TrackShare     TrackingType = "share"
	TrackLike      TrackingType = "like"
	TrackComment   TrackingType = "comment"
)

// CounterColumn maps the interaction to the performance counter it bumps.
func (t TrackingType) CounterColumn() (string, bool) {
	switch t {
	case TrackView:
		return "views", true
	case TrackClick:
		return "clicks", true
	case TrackAddToCart:
		return "add_to_cart", true
	case TrackPurchase:
		return "purchases", true
	case TrackShare:
		return "shares", true
	case TrackLike:
		return "likes", true
	case TrackComment:
		return "comments", true
	}
	return "", false
}

func (p *ContentPerformance) Apply(t TrackingType) {
	switch t {
	case TrackView:
		p.Views++
	case TrackClick:
		p.Clicks++
	case TrackAddToCart:
		p.AddToCart++
	case TrackPurchase:
		p.Purchases++
	case TrackShare:
		p.Shares++
	case TrackLike:
		p.Likes++
	case TrackComment:
		p.Comments++
	}
}

// ContentTracking is an immutable interaction event.
type ContentTracking struct {
	ID         string
	ContentID  string
	ProductID  string
	SessionID  string
	Type       TrackingType
	OccurredAt time.Time
}

type ContentRepository interface {
	CreateContent(content *CampaignContent) error
	GetContentByID(contentID string) (*CampaignContent, error)
	// UpdateContentReview writes status, feedback, post url and published_at
	// when the stored version equals content.Version, then bumps it.
	UpdateContentReview(content *CampaignContent) error
	// AppendTracking stores the event and bumps the matching counter in one
	// transaction.
	AppendTracking(event *ContentTracking) error
}
