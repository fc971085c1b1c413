package domain

import (
	"fmt"
	"strings"
	"time"
)

type ParticipationStatus string

const (
	ParticipationRequest          ParticipationStatus = "request"
	ParticipationBrandInvite      ParticipationStatus = "brand-invite"
	ParticipationInfluencerInvite ParticipationStatus = "influencer-invite"
	ParticipationActive           ParticipationStatus = "active"
	ParticipationCompleted        ParticipationStatus = "completed"
	ParticipationCancelled        ParticipationStatus = "cancelled"
)

// ContributingStatuses are the participation statuses counted by rankings,
// drill-downs and rollups.
var ContributingStatuses = []ParticipationStatus{ParticipationActive, ParticipationCompleted}

func (s ParticipationStatus) Contributing() bool {
	return s == ParticipationActive || s == ParticipationCompleted
}

func (s ParticipationStatus) Terminal() bool {
	return s == ParticipationCompleted || s == ParticipationCancelled
}

func (s ParticipationStatus) Pending() bool {
	return s == ParticipationRequest || s == ParticipationBrandInvite || s == ParticipationInfluencerInvite
}

type DeliverableStatus string

const (
	DeliverablePending   DeliverableStatus = "pending"
	DeliverableCompleted DeliverableStatus = "completed"
)

type Deliverable struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      DeliverableStatus `json:"status"`
	DueDate     *time.Time        `json:"due_date,omitempty"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
}

type InfluencerMetrics struct {
	EngagementRate  float64 `json:"engagement_rate"`
	Reach           int64   `json:"reach"`
	Clicks          int64   `json:"clicks"`
	Conversions     int64   `json:"conversions"`
	TimelinessScore float64 `json:"timeliness_score"`
}

type Participation struct {
	ID           string
	CampaignID   string
	InfluencerID string
	Status       ParticipationStatus
	Progress     float64
	Metrics      InfluencerMetrics
	Revenue      float64
	ReferralCode string
	Deliverables []Deliverable
	Version      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Activate moves a pending participation to active.
func (p *Participation) Activate() error {
	if !p.Status.Pending() {
		return fmt.Errorf("%w: participation %s is %s", ErrInvalidTransition, p.ID, p.Status)
	}
	p.Status = ParticipationActive
	return nil
}

// SetProgress clamps progress to [0, 100]. Progress never goes down unless
// override is set.
func (p *Participation) SetProgress(progress float64, override bool) error {
	progress = ClampProgress(progress)
	if progress < p.Progress && !override {
		return fmt.Errorf("%w: progress cannot decrease from %.2f to %.2f", ErrInvalidTransition, p.Progress, progress)
	}
	p.Progress = progress
	return nil
}

func (p *Participation) AddDeliverable(d Deliverable) error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: deliverable title is required", ErrValidation)
	}
	if p.Status.Terminal() {
		return fmt.Errorf("%w: participation %s is %s", ErrInvalidTransition, p.ID, p.Status)
	}
	d.Status = DeliverablePending
	d.CompletedAt = nil
	p.Deliverables = append(p.Deliverables, d)
	// progress is left as is, it only moves up on completion
	return nil
}

// CompleteDeliverable marks deliverable idx done and raises progress to the
// completed share of deliverables.
func (p *Participation) CompleteDeliverable(idx int, at time.Time) error {
	if p.Status != ParticipationActive {
		return fmt.Errorf("%w: participation %s is %s", ErrInvalidTransition, p.ID, p.Status)
	}
	if idx < 0 || idx >= len(p.Deliverables) {
		return fmt.Errorf("%w: deliverable %d", ErrNotFound, idx)
	}
	if p.Deliverables[idx].Status == DeliverableCompleted {
		return fmt.Errorf("%w: deliverable %d already completed", ErrInvalidTransition, idx)
	}
	p.Deliverables[idx].Status = DeliverableCompleted
	p.Deliverables[idx].CompletedAt = &at

	done := 0
	for _, d := range p.Deliverables {
		if d.Status == DeliverableCompleted {
			done++
		}
	}
	share := float64(done) / float64(len(p.Deliverables)) * 100
	if share > p.Progress {
		p.Progress = ClampProgress(share)
	}
	return nil
}

func ClampProgress(progress float64) float64 {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

type ParticipationRepository interface {
	CreateParticipation(p *Participation) error
	GetParticipation(campaignID, influencerID string) (*Participation, error)
	GetParticipationByReferralCode(code string) (*Participation, error)
	GetParticipationsByCampaign(campaignID string, statuses []ParticipationStatus) ([]*Participation, error)
	// UpdateParticipation writes status, progress, metrics and deliverables
	// when the stored version still equals p.Version, then bumps it.
	UpdateParticipation(p *Participation) error
}
