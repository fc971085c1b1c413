package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	publisher "github.com/LavaJover/shvark-campaign-service/internal/infrastructure/kafka"
)

// EventPublisher is the outgoing side of the domain events.
type EventPublisher interface {
	PublishCampaignStatus(event publisher.CampaignStatusEvent) error
	PublishContentReviewed(event publisher.ContentReviewedEvent) error
	PublishOrderAttributed(event publisher.OrderAttributedEvent) error
}

// Publish runs fn in the background. Event delivery never fails the
// operation that produced it.
func Publish(pub EventPublisher, stage string, fn func(EventPublisher) error) {
	if pub == nil {
		return
	}
	go func() {
		if err := fn(pub); err != nil {
			slog.Error("failed to publish kafka event", "stage", stage, "error", err.Error())
		}
	}()
}

// RecordStatusChange writes an audit row and only logs on failure.
func RecordStatusChange(ctx context.Context, audit domain.StatusChangeLogger, actor domain.Actor, entityType, entityID, oldStatus, newStatus string) {
	if audit == nil {
		return
	}
	change := domain.StatusChange{
		EntityType: entityType,
		EntityID:   entityID,
		ActorID:    actor.ID,
		OldStatus:  oldStatus,
		NewStatus:  newStatus,
		RequestID:  actor.RequestID,
		Timestamp:  time.Now(),
	}
	if err := audit.LogStatusChange(ctx, change); err != nil {
		slog.Error("failed to log status change",
			"entity", entityType,
			"entity_id", entityID,
			"new_status", newStatus,
			"error", err,
		)
	}
}

const (
	ReferralAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	ReferralCodeLength = 10
)
