package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"foodshare/internal/pkg/config"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewKafkaWriter builds an async writer. Delivery failures are reported
// through the completion callback and logged.
func NewKafkaWriter(cfg config.EventsConfig, logger *slog.Logger) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        true,
		BatchTimeout: 50 * time.Millisecond,
		WriteTimeout: cfg.WriteTimeout,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warn("lifecycle event delivery failed",
					slog.Int("messages", len(messages)),
					slog.Any("error", err))
			}
		},
	}
}

type KafkaPublisher struct {
	w       MessageWriter
	timeout time.Duration
}

func NewKafkaPublisher(w MessageWriter, timeout time.Duration) *KafkaPublisher {
	return &KafkaPublisher{w: w, timeout: timeout}
}

// Publish keys messages by listing ID so events for one listing stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, evt shared.Event) error {
	value, err := json.Marshal(evt)
	if err != nil {
		return errs.Wrap(err, "failed to encode lifecycle event")
	}

	// The request context may already be cancelled once the response is written.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(evt.ListingID.String()),
		Value: value,
		Time:  evt.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(evt.Type)},
		},
	}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return errs.Wrapf(err, "failed to publish %s", evt.Type)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}

var _ shared.EventPublisher = (*KafkaPublisher)(nil)
