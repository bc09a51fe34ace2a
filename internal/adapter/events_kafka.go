package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/segmentio/kafka-go"
)

const (
	publishTimeout = 5 * time.Second

	// publishBatchTimeout bounds how long a single event waits for its
	// batch to fill before it is sent.
	publishBatchTimeout = 10 * time.Millisecond
)

// messageWriter is the part of *kafka.Writer the publisher calls.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaEventPublisher struct {
	writer messageWriter
	logger *logger.Logger
}

// NewKafkaEventPublisher returns an [EventPublisher] writing JSON encoded
// events to cfg.Topic. Messages are keyed by user id so that events of one
// account keep their order within a partition.
func NewKafkaEventPublisher(cfg config.Events, log *logger.Logger) EventPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           publishTimeout,
		BatchSize:              1,
		BatchTimeout:           publishBatchTimeout,
	}

	log.Info().Str("func", "NewKafkaEventPublisher").Strs("brokers", cfg.Brokers).Str("topic", cfg.Topic).Msg("event publisher created")

	return &kafkaEventPublisher{writer: writer, logger: log}
}

// Publish implements [EventPublisher].
func (p *kafkaEventPublisher) Publish(ctx context.Context, event models.AccountEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: json.Marshal failed: %w", ErrPublishFailed, err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}

	return nil
}

// Close flushes pending messages and closes broker connections.
func (p *kafkaEventPublisher) Close() error {
	return p.writer.Close()
}

type nopEventPublisher struct{}

// NewNopEventPublisher returns an [EventPublisher] that drops every event.
func NewNopEventPublisher() EventPublisher {
	return nopEventPublisher{}
}

func (nopEventPublisher) Publish(context.Context, models.AccountEvent) error { return nil }

func (nopEventPublisher) Close() error { return nil }
