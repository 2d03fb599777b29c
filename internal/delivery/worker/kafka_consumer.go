package worker

import (
	"context"
	"io"
	"log/slog"
	"time"

	"eats/config"
	"eats/internal/delivery"
	"eats/internal/delivery/worker/handler"
	"eats/internal/domain/constants"
	"eats/internal/errors"
	"eats/internal/usecase"

	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

const (
	retryBackoffMin = 500 * time.Millisecond
	retryBackoffMax = 30 * time.Second
)

// messageReader is the part of kafka.Reader the consumer drives.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaConsumer feeds order events from a Kafka consumer group to the
// notifier. Offsets are committed only after an event is handled or found
// malformed; retryable failures are retried in place with backoff.
type kafkaConsumer struct {
	reader messageReader
	events *handler.OrderEventHandler
	logger *slog.Logger
	stop   chan struct{}
}

// KafkaConsumerParams holds dependencies for the Kafka consumer
type KafkaConsumerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Events *handler.OrderEventHandler
}

// NewKafkaConsumer creates the Kafka delivery. It idles unless the kafka
// provider is configured.
func NewKafkaConsumer(params KafkaConsumerParams) (delivery.Delivery, error) {
	cfg := params.Cfg.PubSub
	if cfg == nil || cfg.Provider != constants.PubSubProviderKafka {
		return idleDelivery{}, nil
	}

	if cfg.Kafka == nil || len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.Topic == "" || cfg.Kafka.GroupID == "" {
		return nil, errors.New("kafka brokers, topic and group ID are required for the kafka consumer")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		GroupID:  cfg.Kafka.GroupID,
		Topic:    cfg.Kafka.Topic,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	})

	consumer := newKafkaConsumer(reader, params.Events, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: consumer.close,
	})

	return consumer, nil
}

func newKafkaConsumer(reader messageReader, events *handler.OrderEventHandler, logger *slog.Logger) *kafkaConsumer {
	return &kafkaConsumer{
		reader: reader,
		events: events,
		logger: logger,
		stop:   make(chan struct{}),
	}
}

// Serve consumes until the reader is closed.
func (k *kafkaConsumer) Serve(ctx context.Context) error {
	k.logger.Info("Starting Kafka order event consumer")

	for {
		msg, err := k.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return nil
			}

			return errors.Wrap(err, "kafka fetch")
		}

		if !k.handle(ctx, msg) {
			return nil
		}

		if err := k.reader.CommitMessages(ctx, msg); err != nil {
			k.logger.Error("[Kafka] Failed to commit offset",
				slog.Int("partition", msg.Partition),
				slog.Int64("offset", msg.Offset),
				slog.Any("error", err),
			)
		}
	}
}

// handle processes msg until it succeeds or fails permanently. It reports
// false when the consumer stopped while retrying.
func (k *kafkaConsumer) handle(ctx context.Context, msg kafka.Message) bool {
	attributes := make(map[string]string, len(msg.Headers))
	for _, header := range msg.Headers {
		attributes[header.Key] = string(header.Value)
	}

	backoff := retryBackoffMin
	for {
		err := k.events.Handle(ctx, msg.Value, attributes)
		if err == nil || !usecase.IsRetryable(err) {
			return true
		}

		k.logger.Warn("[Kafka] Retrying order event",
			slog.Int64("offset", msg.Offset),
			slog.Duration("backoff", backoff),
		)

		select {
		case <-time.After(backoff):
		case <-k.stop:
			return false
		case <-ctx.Done():
			return false
		}

		backoff = min(backoff*2, retryBackoffMax)
	}
}

func (k *kafkaConsumer) close(_ context.Context) error {
	k.logger.Info("Stopping Kafka order event consumer")
	close(k.stop)

	return errors.WithStack(k.reader.Close())
}

// idleDelivery stands in for transports that are not configured.
type idleDelivery struct{}

func (idleDelivery) Serve(context.Context) error {
	return nil
}
