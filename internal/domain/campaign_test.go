package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCampaign() *Campaign {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return &Campaign{
		ID:               "c1",
		BrandID:          "b1",
		Title:            "Spring drop",
		Status:           CampaignDraft,
		StartDate:        start,
		EndDate:          start.AddDate(0, 0, 30),
		Budget:           500,
		RequiredChannels: []string{"instagram", "tiktok"},
		MinFollowers:     1000,
		CommissionRate:   12.5,
	}
}

func TestCampaignValidate(t *testing.T) {
	require.NoError(t, validCampaign().Validate())

	cases := map[string]func(c *Campaign){
		"blank title":      func(c *Campaign) { c.Title = "  " },
		"missing brand":    func(c *Campaign) { c.BrandID = "" },
		"missing dates":    func(c *Campaign) { c.StartDate = time.Time{} },
		"end before start": func(c *Campaign) { c.EndDate = c.StartDate.Add(-time.Hour) },
		"negative budget":  func(c *Campaign) { c.Budget = -1 },
		"negative minimum": func(c *Campaign) { c.MinFollowers = -5 },
		"rate above 100":   func(c *Campaign) { c.CommissionRate = 101 },
		"no channels":      func(c *Campaign) { c.RequiredChannels = nil },
		"empty channel":    func(c *Campaign) { c.RequiredChannels = []string{"instagram", ""} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := validCampaign()
			mutate(c)
			assert.ErrorIs(t, c.Validate(), ErrValidation)
		})
	}
}

func TestCampaignTransitions(t *testing.T) {
	allowed := []struct{ from, to CampaignStatus }{
		{CampaignDraft, CampaignActive},
		{CampaignDraft, CampaignRequest},
		{CampaignRequest, CampaignActive},
		{CampaignBrandInvite, CampaignCancelled},
		{CampaignActive, CampaignCompleted},
		{CampaignActive, CampaignCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}

	denied := []struct{ from, to CampaignStatus }{
		{CampaignCompleted, CampaignActive},
		{CampaignCancelled, CampaignDraft},
		{CampaignActive, CampaignDraft},
		{CampaignDraft, CampaignCompleted},
		{CampaignCompleted, CampaignCancelled},
	}
	for _, tc := range denied {
		c := validCampaign()
		c.Status = tc.from
		err := c.TransitionTo(tc.to)
		assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", tc.from, tc.to)
		assert.Equal(t, tc.from, c.Status)
	}
}

func TestCampaignOwnedBy(t *testing.T) {
	c := validCampaign()
	assert.True(t, c.OwnedBy("b1"))
	assert.False(t, c.OwnedBy("b2"))
	assert.False(t, c.OwnedBy(""))
}
