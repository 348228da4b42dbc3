package mail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"text/template"
)

// Message is a rendered notification ready for delivery.
type Message struct {
	Subject string
	Body    string
}

// Sender delivers notification messages to a recipient address. The log
// sender stands in until a real provider is wired; the worker only depends on
// this interface.
type Sender interface {
	Send(ctx context.Context, recipient string, msg Message) error
}

type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(_ context.Context, recipient string, msg Message) error {
	slog.Info("sending notification",
		"recipient", recipient,
		"subject", msg.Subject)
	return nil
}

// TemplateData carries the fields the notification templates reference.
type TemplateData struct {
	CarWashName string
	ServiceName string
	Date        string
	StartTime   string
}

var templates = map[string]struct {
	subject string
	body    string
}{
	"booking.created": {
		subject: "Booking received",
		body:    "Your booking at {{.CarWashName}} for {{.Date}} at {{.StartTime}} was received and is awaiting confirmation.",
	},
	"booking.confirmed": {
		subject: "Booking confirmed",
		body:    "Your booking at {{.CarWashName}} for {{.Date}} at {{.StartTime}} is confirmed. See you there!",
	},
	"booking.cancelled": {
		subject: "Booking cancelled",
		body:    "Your booking at {{.CarWashName}} for {{.Date}} at {{.StartTime}} has been cancelled.",
	},
	"booking.completed": {
		subject: "Thanks for your visit",
		body:    "Your visit to {{.CarWashName}} on {{.Date}} is complete. We'd love to hear your feedback!",
	},
}

// Render builds the notification for an event type. Unknown event types get
// a generic subject so the worker never drops an event silently.
func Render(eventType string, data TemplateData) (Message, error) {
	tpl, ok := templates[eventType]
	if !ok {
		return Message{
			Subject: "Booking update",
			Body:    fmt.Sprintf("Your booking at %s has been updated.", data.CarWashName),
		}, nil
	}

	t, err := template.New(eventType).Parse(tpl.body)
	if err != nil {
		return Message{}, fmt.Errorf("failed to parse template %q: %w", eventType, err)
	}

	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return Message{}, fmt.Errorf("failed to render template %q: %w", eventType, err)
	}

	return Message{Subject: tpl.subject, Body: sb.String()}, nil
}
