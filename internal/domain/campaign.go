package domain

import (
	"fmt"
	"strings"
	"time"
)

type CampaignStatus string

const (
	CampaignDraft            CampaignStatus = "draft"
	CampaignRequest          CampaignStatus = "request"
	CampaignBrandInvite      CampaignStatus = "brand-invite"
	CampaignInfluencerInvite CampaignStatus = "influencer-invite"
	CampaignActive           CampaignStatus = "active"
	CampaignCompleted        CampaignStatus = "completed"
	CampaignCancelled        CampaignStatus = "cancelled"
)

var campaignTransitions = map[CampaignStatus][]CampaignStatus{
	CampaignDraft:            {CampaignRequest, CampaignBrandInvite, CampaignInfluencerInvite, CampaignActive, CampaignCancelled},
	CampaignRequest:          {CampaignActive, CampaignCancelled},
	CampaignBrandInvite:      {CampaignActive, CampaignCancelled},
	CampaignInfluencerInvite: {CampaignActive, CampaignCancelled},
	CampaignActive:           {CampaignCompleted, CampaignCancelled},
}

func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignDraft, CampaignRequest, CampaignBrandInvite, CampaignInfluencerInvite,
		CampaignActive, CampaignCompleted, CampaignCancelled:
		return true
	}
	return false
}

func (s CampaignStatus) Terminal() bool {
	return s == CampaignCompleted || s == CampaignCancelled
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// There is no path back from completed or cancelled.
func (s CampaignStatus) CanTransitionTo(next CampaignStatus) bool {
	for _, allowed := range campaignTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Campaign struct {
	ID               string
	BrandID          string
	Title            string
	Description      string
	Status           CampaignStatus
	StartDate        time.Time
	EndDate          time.Time
	Budget           float64
	RequiredChannels []string
	MinFollowers     int64
	CommissionRate   float64
	Version          int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (c *Campaign) OwnedBy(brandID string) bool {
	return brandID != "" && c.BrandID == brandID
}

// TransitionTo moves the campaign along its lifecycle or returns ErrInvalidTransition.
func (c *Campaign) TransitionTo(next CampaignStatus) error {
	if !c.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: campaign %s cannot move from %s to %s", ErrInvalidTransition, c.ID, c.Status, next)
	}
	c.Status = next
	return nil
}

func (c *Campaign) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(c.BrandID) == "" {
		return fmt.Errorf("%w: brand is required", ErrValidation)
	}
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrValidation)
	}
	if c.EndDate.Before(c.StartDate) {
		return fmt.Errorf("%w: end date is before start date", ErrValidation)
	}
	if c.Budget < 0 {
		return fmt.Errorf("%w: budget must not be negative", ErrValidation)
	}
	if c.MinFollowers < 0 {
		return fmt.Errorf("%w: min followers must not be negative", ErrValidation)
	}
	if c.CommissionRate < 0 || c.CommissionRate > 100 {
		return fmt.Errorf("%w: commission rate must be within [0, 100]", ErrValidation)
	}
	if len(c.RequiredChannels) == 0 {
		return fmt.Errorf("%w: at least one channel is required", ErrValidation)
	}
	for _, ch := range c.RequiredChannels {
		if strings.TrimSpace(ch) == "" {
			return fmt.Errorf("%w: empty channel name", ErrValidation)
		}
	}
	return nil
}

type CampaignFilter struct {
	BrandID string
	Status  *CampaignStatus
	Page    int
	Limit   int
}

type StatusCount struct {
	Status CampaignStatus
	Count  int64
}

// CampaignCascade is the set of writes that make up a single lifecycle
// change. The repository applies it atomically.
type CampaignCascade struct {
	CampaignID      string
	ExpectedVersion int64
	NewStatus       CampaignStatus
	// Participations in any of FromStatuses are moved to ParticipationStatus.
	FromStatuses        []ParticipationStatus
	ParticipationStatus ParticipationStatus
	// Metrics is computed inside the transaction from the state after the
	// status writes.
	RecomputeMetrics bool
}

type CampaignRepository interface {
	CreateCampaign(campaign *Campaign) error
	GetCampaignByID(campaignID string) (*Campaign, error)
	GetCampaigns(filter CampaignFilter) ([]*Campaign, int64, error)
	GetCampaignIDsByBrand(brandID string) ([]string, error)
	GetActiveCampaignIDs() ([]string, error)
	CountCampaignsByStatus(brandID string) ([]StatusCount, float64, error)
	// UpdateCampaignStatus is a conditional write on Version; a stale version
	// returns ErrVersionConflict.
	UpdateCampaignStatus(campaignID string, expectedVersion int64, status CampaignStatus) error
	ApplyCascade(cascade CampaignCascade) (*CampaignMetrics, error)
}
