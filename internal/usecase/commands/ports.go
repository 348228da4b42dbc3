package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Booking lifecycle event kinds published to the notification stream.
const (
	EventBookingCreated   = "booking.created"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
	EventBookingCompleted = "booking.completed"
)

// BookingEvent is the payload emitted on every lifecycle change. The worker
// consumes these to send user notifications.
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  uuid.UUID `json:"booking_id"`
	UserID     uuid.UUID `json:"user_id"`
	CarWashID  uuid.UUID `json:"car_wash_id"`
	ServiceID  uuid.UUID `json:"service_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher decouples booking commands from the messaging transport.
// Publishing happens after commit and is best effort; a failed publish never
// rolls back the booking.
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, evt BookingEvent) error
}
