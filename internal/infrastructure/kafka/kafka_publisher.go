package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/LavaJover/shvark-campaign-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type Topics struct {
	Campaign string
	Content  string
	Order    string
}

type DefaultKafkaPublisher struct {
	writer *kafka.Writer
	topics Topics
}

func NewDefaultKafkaPublisher(brokers []string, topics Topics) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			WriteTimeout: 10 * time.Second,
		},
		topics: topics,
	}
}

func (k *DefaultKafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	km := make([]kafka.Message, 0, len(msgs))
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}

	return k.writer.WriteMessages(context.Background(), km...)
}

func (k *DefaultKafkaPublisher) publishJSON(topic, key string, event interface{}) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.Publish(topic, domain.Message{Key: []byte(key), Value: v})
}

// Campaign events are keyed by campaign so a consumer sees them in order.
func (k *DefaultKafkaPublisher) PublishCampaignStatus(event CampaignStatusEvent) error {
	return k.publishJSON(k.topics.Campaign, event.CampaignID, event)
}

func (k *DefaultKafkaPublisher) PublishContentReviewed(event ContentReviewedEvent) error {
	return k.publishJSON(k.topics.Content, event.ContentID, event)
}

func (k *DefaultKafkaPublisher) PublishOrderAttributed(event OrderAttributedEvent) error {
	return k.publishJSON(k.topics.Order, event.InfluencerID, event)
}

func (k *DefaultKafkaPublisher) Close() error {
	return k.writer.Close()
}
