package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentReview(t *testing.T) {
	t.Run("feedback is kept verbatim", func(t *testing.T) {
		c := &CampaignContent{Status: ContentSubmitted}
		require.NoError(t, c.Approve("  Great hook, ship it  "))
		assert.Equal(t, ContentApproved, c.Status)
		assert.Equal(t, "  Great hook, ship it  ", c.Feedback)
	})

	t.Run("blank feedback falls back", func(t *testing.T) {
		a := &CampaignContent{Status: ContentSubmitted}
		require.NoError(t, a.Approve(""))
		assert.Equal(t, DefaultApproveFeedback, a.Feedback)

		r := &CampaignContent{Status: ContentSubmitted}
		require.NoError(t, r.Reject(" "))
		assert.Equal(t, DefaultRejectFeedback, r.Feedback)
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		c := &CampaignContent{Status: ContentRejected, Feedback: "no"}
		assert.ErrorIs(t, c.Submit(), ErrInvalidTransition)
		assert.ErrorIs(t, c.Approve("ok"), ErrInvalidTransition)
		assert.Equal(t, "no", c.Feedback)
	})

	t.Run("publish requires approval", func(t *testing.T) {
		at := time.Now()
		c := &CampaignContent{Status: ContentDraft}
		assert.ErrorIs(t, c.Publish("https://x", at), ErrInvalidTransition)

		c.Status = ContentApproved
		require.NoError(t, c.Publish(" https://insta.example/p/1 ", at))
		assert.Equal(t, "https://insta.example/p/1", c.PostURL)
		require.NotNil(t, c.PublishedAt)
	})
}

func TestTrackingCounters(t *testing.T) {
	var perf ContentPerformance
	for _, tt := range []TrackingType{TrackView, TrackView, TrackClick, TrackPurchase, TrackComment} {
		_, ok := tt.CounterColumn()
		require.True(t, ok)
		perf.Apply(tt)
	}
	assert.Equal(t, ContentPerformance{Views: 2, Clicks: 1, Purchases: 1, Comments: 1}, perf)

	_, ok := TrackingType("hover").CounterColumn()
	assert.False(t, ok)
}

func TestPaymentTransitions(t *testing.T) {
	at := time.Now()
	p := &CampaignPayment{ID: "pay1", Status: PaymentPending}
	require.NoError(t, p.TransitionTo(PaymentProcessing, at))
	assert.Nil(t, p.PaidAt)
	require.NoError(t, p.TransitionTo(PaymentCompleted, at))
	require.NotNil(t, p.PaidAt)
	assert.ErrorIs(t, p.TransitionTo(PaymentFailed, at), ErrInvalidTransition)
}
