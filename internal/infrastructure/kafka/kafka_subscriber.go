package publisher

import (
	"context"
	"errors"
	"log/slog"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type DefaultKafkaSubscriber struct {
	brokers []string
	ctx     context.Context
}

// NewDefaultKafkaSubscriber returns a subscriber whose readers stop when ctx
// is cancelled.
func NewDefaultKafkaSubscriber(ctx context.Context, brokers []string) *DefaultKafkaSubscriber {
	return &DefaultKafkaSubscriber{brokers: brokers, ctx: ctx}
}

func (k *DefaultKafkaSubscriber) Subscribe(topic, groupID string) (<-chan domain.Message, error) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: k.brokers,
		Topic:   topic,
		GroupID: groupID,
	})
	out := make(chan domain.Message)
	go func() {
		defer close(out)
		defer reader.Close()
		for {
			m, err := reader.ReadMessage(k.ctx)
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					slog.Error("kafka reader stopped", "topic", topic, "error", err)
				}
				return
			}
			select {
			case out <- domain.Message{Key: m.Key, Value: m.Value}:
			case <-k.ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
