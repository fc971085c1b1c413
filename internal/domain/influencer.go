package domain

import (
	"fmt"
	"strings"
	"time"
)

type Influencer struct {
	ID             string
	Name           string
	Email          string
	Followers      int64
	Channels       []string
	ReferralCode   string
	CommissionRate float64
	CreatedAt      time.Time
}

func (i *Influencer) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return fmt.Errorf("%w: influencer id is required", ErrValidation)
	}
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if i.Followers < 0 {
		return fmt.Errorf("%w: followers must not be negative", ErrValidation)
	}
	if i.CommissionRate < 0 || i.CommissionRate > 100 {
		return fmt.Errorf("%w: commission rate must be within [0, 100]", ErrValidation)
	}
	return nil
}

type InfluencerRepository interface {
	SaveInfluencer(influencer *Influencer) error
	GetInfluencerByID(influencerID string) (*Influencer, error)
	GetInfluencerByReferralCode(code string) (*Influencer, error)
}
