package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"eats/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// kafkaPublisher implements EventPublisher on a Kafka topic.
// Messages are keyed by order id so one order's events share a partition.
type kafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafkaPublisher creates a synchronous writer that waits for all replicas
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
		logger: logger,
	}
}

func kafkaHeaders(attributes map[string]string) []kafka.Header {
	headers := make([]kafka.Header, 0, len(attributes))
	for k, v := range attributes {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	return headers
}

// PublishOrderEvent writes the event to the topic
func (p *kafkaPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(event.OrderID),
		Value:   data,
		Headers: kafkaHeaders(eventAttributes(event)),
		Time:    event.OccurredAt,
	}); err != nil {
		return errors.Wrap(err, "kafka write")
	}

	p.logger.Debug("[Kafka] Event published",
		slog.String("event_type", event.Type),
		slog.String("order_id", event.OrderID),
	)

	return nil
}

// Close flushes pending writes and closes connections
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
