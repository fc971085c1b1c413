package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetProgress(t *testing.T) {
	t.Run("clamps to range", func(t *testing.T) {
		p := &Participation{Status: ParticipationActive}
		require.NoError(t, p.SetProgress(140, false))
		assert.Equal(t, 100.0, p.Progress)

		require.NoError(t, p.SetProgress(-3, true))
		assert.Equal(t, 0.0, p.Progress)
	})

	t.Run("never decreases without override", func(t *testing.T) {
		p := &Participation{Status: ParticipationActive, Progress: 60}
		err := p.SetProgress(40, false)
		require.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, 60.0, p.Progress)

		require.NoError(t, p.SetProgress(40, true))
		assert.Equal(t, 40.0, p.Progress)
	})
}

func TestActivate(t *testing.T) {
	for _, st := range []ParticipationStatus{ParticipationRequest, ParticipationBrandInvite, ParticipationInfluencerInvite} {
		p := &Participation{Status: st}
		require.NoError(t, p.Activate())
		assert.Equal(t, ParticipationActive, p.Status)
	}
	p := &Participation{Status: ParticipationCompleted}
	assert.ErrorIs(t, p.Activate(), ErrInvalidTransition)
}

func TestDeliverables(t *testing.T) {
	now := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	p := &Participation{ID: "p1", Status: ParticipationActive}

	require.ErrorIs(t, p.AddDeliverable(Deliverable{Title: " "}), ErrValidation)
	for _, title := range []string{"Reel", "Story", "Post", "Live"} {
		require.NoError(t, p.AddDeliverable(Deliverable{Title: title, Status: DeliverableCompleted}))
	}
	for _, d := range p.Deliverables {
		assert.Equal(t, DeliverablePending, d.Status)
	}
	assert.Zero(t, p.Progress)

	require.NoError(t, p.CompleteDeliverable(1, now))
	assert.Equal(t, 25.0, p.Progress)
	require.NotNil(t, p.Deliverables[1].CompletedAt)
	assert.Equal(t, now, *p.Deliverables[1].CompletedAt)

	assert.ErrorIs(t, p.CompleteDeliverable(1, now), ErrInvalidTransition)
	assert.ErrorIs(t, p.CompleteDeliverable(9, now), ErrNotFound)

	t.Run("share does not lower manual progress", func(t *testing.T) {
		p.Progress = 80
		require.NoError(t, p.CompleteDeliverable(0, now))
		assert.Equal(t, 80.0, p.Progress)
	})

	t.Run("requires active participation", func(t *testing.T) {
		p.Status = ParticipationCompleted
		assert.ErrorIs(t, p.CompleteDeliverable(2, now), ErrInvalidTransition)
		assert.ErrorIs(t, p.AddDeliverable(Deliverable{Title: "Late"}), ErrInvalidTransition)
	})
}
