package domain

import (
	"context"
	"time"
)

// StatusChange is one recorded lifecycle change of a campaign, participation,
// content item, payment or attribution.
type StatusChange struct {
	EntityType string
	EntityID   string
	ActorID    string
	OldStatus  string
	NewStatus  string
	RequestID  string
	Timestamp  time.Time
}

type StatusChangeLogger interface {
	LogStatusChange(ctx context.Context, change StatusChange) error
}
