package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"carwash-booking/internal/pkg/config"
	"carwash-booking/internal/pkg/errs"
	"carwash-booking/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher emits booking lifecycle events keyed by booking ID so all
// events of one booking land on the same partition, in order.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg config.KafkaConfig) (*KafkaPublisher, func()) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.BookingTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	publisher := &KafkaPublisher{writer: writer}
	cleanup := func() {
		if err := writer.Close(); err != nil {
			slog.Warn("failed to close kafka writer", "error", err.Error())
		}
	}
	return publisher, cleanup
}

func (p *KafkaPublisher) PublishBookingEvent(ctx context.Context, evt commands.BookingEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return errs.Wrap(err, "failed to marshal booking event")
	}

	msg := kafka.Message{
		Key:   []byte(evt.BookingID.String()),
		Value: data,
		Time:  evt.OccurredAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to write booking event")
	}
	return nil
}
