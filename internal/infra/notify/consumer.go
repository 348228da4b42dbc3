package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"carwash-booking/internal/pkg/config"
	"carwash-booking/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
)

// EventHandler processes one decoded booking event.
type EventHandler func(ctx context.Context, evt commands.BookingEvent) error

type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(cfg config.KafkaConfig) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           cfg.Brokers,
			GroupID:           cfg.ConsumerGroup,
			Topic:             cfg.BookingTopic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Run consumes until the context is cancelled. Undecodable messages are
// logged and skipped; handler errors are logged and the message is not
// retried, notifications are best effort.
func (c *Consumer) Run(ctx context.Context, handler EventHandler) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		var evt commands.BookingEvent
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			slog.Warn("skipping undecodable booking event",
				"offset", msg.Offset,
				"error", err.Error())
			continue
		}

		if err := handler(ctx, evt); err != nil {
			slog.Error("booking event handler failed",
				"type", evt.Type,
				"booking_id", evt.BookingID,
				"error", err.Error())
		}
	}
}
