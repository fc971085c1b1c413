package domain

import (
	"fmt"
	"time"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:    {PaymentProcessing, PaymentCompleted, PaymentFailed},
	PaymentProcessing: {PaymentCompleted, PaymentFailed},
}

func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type CampaignPayment struct {
	ID           string
	CampaignID   string
	BrandID      string
	InfluencerID string
	Amount       float64
	Status       PaymentStatus
	Method       string
	PaidAt       *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p *CampaignPayment) TransitionTo(next PaymentStatus, at time.Time) error {
	if !p.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: payment %s cannot move from %s to %s", ErrInvalidTransition, p.ID, p.Status, next)
	}
	p.Status = next
	if next == PaymentCompleted {
		p.PaidAt = &at
	}
	return nil
}

type PaymentRepository interface {
	CreatePayment(payment *CampaignPayment) error
	GetPaymentByID(paymentID string) (*CampaignPayment, error)
	UpdatePaymentStatus(paymentID string, oldStatus, newStatus PaymentStatus, paidAt *time.Time) error
	// SumPayments adds up the amounts of every payment of the pair in status.
	SumPayments(campaignID, influencerID string, status PaymentStatus) (float64, error)
	GetPayments(campaignID, influencerID string) ([]*CampaignPayment, error)
}
