package booking

import (
	"errors"
	"strings"
	"time"

	"carwash-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("booking status transition not permitted")
	ErrInvalidDuration   = errors.New("service duration must be positive")
	ErrNoteTooLong       = errors.New("note exceeds maximum length")
)

const MaxNoteLength = 500

type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	v := strings.TrimSpace(value)
	if len(v) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: v}, nil
}

func (n Note) String() string { return n.value }
func (n Note) IsEmpty() bool  { return n.value == "" }

// Booking is a user's reservation of a service at a car wash. The occupied
// interval [Start, Start+duration) is snapshotted at creation so conflict
// checks never depend on later service edits.
type Booking struct {
	id        uuid.UUID
	userID    uuid.UUID
	carWashID uuid.UUID
	serviceID uuid.UUID
	date      time.Time
	start     schedule.TimeOfDay
	end       schedule.TimeOfDay
	status    Status
	note      Note
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a booking in the pending state.
func NewBooking(userID, carWashID, serviceID uuid.UUID, date time.Time, start schedule.TimeOfDay, durationMin int, note Note, now time.Time) (*Booking, error) {
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}

	return &Booking{
		id:        uuid.New(),
		userID:    userID,
		carWashID: carWashID,
		serviceID: serviceID,
		date:      date,
		start:     start,
		end:       start.Add(durationMin),
		status:    StatusPending,
		note:      note,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructBooking(
	id, userID, carWashID, serviceID uuid.UUID,
	date time.Time,
	start, end schedule.TimeOfDay,
	status Status,
	note Note,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		userID:    userID,
		carWashID: carWashID,
		serviceID: serviceID,
		date:      date,
		start:     start,
		end:       end,
		status:    status,
		note:      note,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// TransitionTo applies a lifecycle transition, rejecting anything the state
// machine does not permit.
func (b *Booking) TransitionTo(target Status, now time.Time) error {
	if !target.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	b.status = target
	b.updatedAt = now
	return nil
}

func (b *Booking) Confirm(now time.Time) error {
	return b.TransitionTo(StatusConfirmed, now)
}

func (b *Booking) Cancel(now time.Time) error {
	return b.TransitionTo(StatusCancelled, now)
}

// Complete marks the service as rendered. The "booking time has passed"
// precondition is operator policy and is not enforced here.
func (b *Booking) Complete(now time.Time) error {
	return b.TransitionTo(StatusCompleted, now)
}

// Interval returns the occupied half-open time range.
func (b *Booking) Interval() schedule.Interval {
	return schedule.Interval{Start: b.start, End: b.end}
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) UserID() uuid.UUID         { return b.userID }
func (b *Booking) CarWashID() uuid.UUID      { return b.carWashID }
func (b *Booking) ServiceID() uuid.UUID      { return b.serviceID }
func (b *Booking) Date() time.Time           { return b.date }
func (b *Booking) Start() schedule.TimeOfDay { return b.start }
func (b *Booking) End() schedule.TimeOfDay   { return b.end }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) Note() Note                { return b.note }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
