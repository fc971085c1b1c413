package background

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	publisher "github.com/LavaJover/shvark-campaign-service/internal/infrastructure/kafka"
	contentdto "github.com/LavaJover/shvark-campaign-service/internal/usecase/dto/content"
)

type MetricsRefresher interface {
	RefreshActiveCampaigns(ctx context.Context) (int, error)
}

type InteractionTracker interface {
	TrackInteraction(ctx context.Context, input *contentdto.TrackInteractionInput) error
}

type BackgroundTasks struct {
	Refresher      MetricsRefresher
	Tracker        InteractionTracker
	Subscriber     domain.SubscriberPort
	RollupInterval time.Duration
	TrackingTopic  string
	GroupID        string
}

func NewBackgroundTasks(refresher MetricsRefresher, tracker InteractionTracker, sub domain.SubscriberPort) *BackgroundTasks {
	return &BackgroundTasks{
		Refresher:      refresher,
		Tracker:        tracker,
		Subscriber:     sub,
		RollupInterval: 5 * time.Minute,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startMetricsRollup(ctx)
	if bt.Subscriber != nil && bt.TrackingTopic != "" {
		go bt.startTrackingConsumer(ctx)
	}
}

func (bt *BackgroundTasks) startMetricsRollup(ctx context.Context) {
	ticker := time.NewTicker(bt.RollupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refreshed, err := bt.Refresher.RefreshActiveCampaigns(ctx)
			if err != nil {
				slog.Error("metrics rollup failed", "refreshed", refreshed, "error", err.Error())
				continue
			}
			slog.Debug("metrics rollup done", "campaigns", refreshed)
		}
	}
}

func (bt *BackgroundTasks) startTrackingConsumer(ctx context.Context) {
	messages, err := bt.Subscriber.Subscribe(bt.TrackingTopic, bt.GroupID)
	if err != nil {
		slog.Error("failed to subscribe to tracking topic", "topic", bt.TrackingTopic, "error", err.Error())
		return
	}
	for msg := range messages {
		bt.HandleTrackingMessage(ctx, msg)
	}
}

// HandleTrackingMessage applies one tracking event. Malformed or rejected
// events are logged and skipped.
func (bt *BackgroundTasks) HandleTrackingMessage(ctx context.Context, msg domain.Message) {
	var event publisher.TrackingMessage
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		slog.Warn("skipping malformed tracking message", "key", string(msg.Key), "error", err.Error())
		return
	}
	err := bt.Tracker.TrackInteraction(ctx, &contentdto.TrackInteractionInput{
		ContentID: event.ContentID,
		ProductID: event.ProductID,
		SessionID: event.SessionID,
		Type:      event.Type,
	})
	if err != nil {
		slog.Warn("tracking event rejected", "content_id", event.ContentID, "type", event.Type, "error", err.Error())
	}
}
