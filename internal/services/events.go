package services

//go:generate mockgen -source=events.go -destination=mock_events.go -package=services

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/gw-agent-wallet/internal/logger"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Publisher emits domain events after the owning transaction has committed.
type Publisher interface {
	Publish(ctx context.Context, events ...models.Event)
}

// EventPublisher writes domain events to Kafka. Failures are logged and never
// reach the caller: the state change they describe is already committed.
type EventPublisher struct {
	kafkaWriter KafkaWriter
}

// NewEventPublisher creates a publisher. A nil writer disables publishing.
func NewEventPublisher(kafkaWriter KafkaWriter) *EventPublisher {
	return &EventPublisher{kafkaWriter: kafkaWriter}
}

// Publish sends events in one batch keyed by event key.
func (p *EventPublisher) Publish(ctx context.Context, events ...models.Event) {
	if len(events) == 0 {
		return
	}
	if p.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_type", events[0].Type, "count", len(events))
		return
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		data, err := json.Marshal(e)
		if err != nil {
			logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", e.ID, "event_type", e.Type, "error", err)
			continue
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.Key),
			Value: data,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(e.Type)},
			},
		})
	}
	if len(msgs) == 0 {
		return
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msgs...); err != nil {
		logger.Log.Errorw("Failed to publish events to Kafka", "event_type", events[0].Type, "count", len(msgs), "error", err)
		return
	}
	logger.Log.Infow("Events published to Kafka", "event_type", events[0].Type, "count", len(msgs))
}
