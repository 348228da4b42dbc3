package commands

import (
	"context"
	"log/slog"
	"time"

	"carwash-booking/internal/domain/booking"
	"carwash-booking/internal/domain/schedule"
	"carwash-booking/internal/pkg/clock"
	"carwash-booking/internal/pkg/errs"
	"carwash-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotOwned     = errs.New("booking not owned by user")
	ErrBookingInPast       = errs.New("booking start is in the past")
	ErrOutsideOpeningHours = errs.New("booking does not fit opening hours")
	ErrCarWashInactive     = errs.New("car wash is not active")
	ErrServiceInactive     = errs.New("service is not active")
	ErrServiceMismatch     = errs.New("service does not belong to car wash")
	ErrStatusChangeDenied  = errs.New("actor may not change booking status")
)

type CreateBookingRequest struct {
	CarWashID uuid.UUID
	ServiceID uuid.UUID
	Date      time.Time
	StartMin  int
	Note      string
}

type CreateBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID, actorRole string) error
	UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, target booking.Status, actorRole string) error
}

type bookingUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher EventPublisher
	cache     SlotCacheInvalidator
	clock     clock.Clock
	location  *time.Location
}

// SlotCacheInvalidator drops cached availability after a booking write.
type SlotCacheInvalidator interface {
	InvalidateDay(ctx context.Context, carWashID uuid.UUID, date time.Time)
}

func NewBookingUseCase(uow shared.UnitOfWork, publisher EventPublisher, cache SlotCacheInvalidator, clk clock.Clock, loc *time.Location) BookingCommands {
	return &bookingUseCaseImpl{
		uow:       uow,
		publisher: publisher,
		cache:     cache,
		clock:     clk,
		location:  loc,
	}
}

// CreateBooking validates the request against the catalog, then performs the
// availability check and insert inside one serializable transaction. The
// database exclusion constraint backs the in-transaction check, so two
// concurrent requests for the same slot cannot both commit.
func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error) {
	start, err := schedule.NewTimeOfDay(req.StartMin)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	note, err := booking.NewNote(req.Note)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	wash, err := uc.uow.CommandReads().CarWashByID(ctx, req.CarWashID)
	if err != nil {
		return nil, err
	}
	if !wash.IsActive {
		return nil, ErrCarWashInactive
	}

	svc, err := uc.uow.CommandReads().ServiceByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc.CarWashID != req.CarWashID {
		return nil, ErrServiceMismatch
	}
	if !svc.IsActive {
		return nil, ErrServiceInactive
	}

	if req.StartMin < wash.OpenMin || req.StartMin+svc.DurationMin > wash.CloseMin {
		return nil, ErrOutsideOpeningHours
	}
	if uc.startsInPast(req.Date, start) {
		return nil, ErrBookingInPast
	}

	var createdID uuid.UUID
	err = uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		busy, txErr := tx.Bookings().ActiveIntervals(ctx, tx.DB(), req.CarWashID, req.Date)
		if txErr != nil {
			return txErr
		}
		if !schedule.IsFree(schedule.NewInterval(start, svc.DurationMin), busy) {
			return errs.ErrBookingConflict
		}

		b, txErr := booking.NewBooking(userID, req.CarWashID, req.ServiceID, req.Date, start, svc.DurationMin, note, uc.clock.Now())
		if txErr != nil {
			return errs.Mark(txErr, errs.ErrDomainValidation)
		}

		createdID, txErr = tx.Bookings().Create(ctx, tx.DB(), b)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(ctx, req.CarWashID, req.Date)
	uc.publish(ctx, EventBookingCreated, shared.BookingSnapshot{
		ID:        createdID,
		UserID:    userID,
		CarWashID: req.CarWashID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		StartMin:  req.StartMin,
	})

	return &CreateBookingResult{BookingID: createdID}, nil
}

// CancelBooking is available to the booking owner and to staff roles.
func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID, actorRole string) error {
	var snap *shared.BookingSnapshot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		snap, txErr = tx.Reads().BookingByID(ctx, bookingID)
		if txErr != nil {
			return txErr
		}
		if snap.UserID != actorID && !isStaff(actorRole) {
			return ErrBookingNotOwned
		}

		return uc.applyTransition(ctx, tx, snap, booking.StatusCancelled)
	})
	if err != nil {
		return err
	}

	uc.cache.InvalidateDay(ctx, snap.CarWashID, snap.Date)
	uc.publish(ctx, EventBookingCancelled, *snap)
	return nil
}

// UpdateBookingStatus applies an operator-driven transition (confirm,
// complete, cancel). Ownership is not required, the role is.
func (uc *bookingUseCaseImpl) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, target booking.Status, actorRole string) error {
	if !isStaff(actorRole) {
		return ErrStatusChangeDenied
	}

	var snap *shared.BookingSnapshot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		snap, txErr = tx.Reads().BookingByID(ctx, bookingID)
		if txErr != nil {
			return txErr
		}
		return uc.applyTransition(ctx, tx, snap, target)
	})
	if err != nil {
		return err
	}

	if target == booking.StatusCancelled {
		uc.cache.InvalidateDay(ctx, snap.CarWashID, snap.Date)
	}
	uc.publish(ctx, eventForStatus(target), *snap)
	return nil
}

func (uc *bookingUseCaseImpl) applyTransition(ctx context.Context, tx shared.Tx, snap *shared.BookingSnapshot, target booking.Status) error {
	current, err := booking.NewStatus(snap.Status)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	if !current.CanTransitionTo(target) {
		return errs.ErrInvalidTransition
	}
	return tx.Bookings().UpdateStatus(ctx, tx.DB(), snap.ID, target, uc.clock.Now())
}

func (uc *bookingUseCaseImpl) startsInPast(date time.Time, start schedule.TimeOfDay) bool {
	startAt := time.Date(date.Year(), date.Month(), date.Day(), start.Minutes()/60, start.Minutes()%60, 0, 0, uc.location)
	return startAt.Before(uc.clock.Now())
}

func (uc *bookingUseCaseImpl) publish(ctx context.Context, eventType string, snap shared.BookingSnapshot) {
	evt := BookingEvent{
		Type:       eventType,
		BookingID:  snap.ID,
		UserID:     snap.UserID,
		CarWashID:  snap.CarWashID,
		ServiceID:  snap.ServiceID,
		Date:       snap.Date.Format("2006-01-02"),
		StartTime:  schedule.TimeOfDay(snap.StartMin).String(),
		OccurredAt: uc.clock.Now(),
	}
	if err := uc.publisher.PublishBookingEvent(ctx, evt); err != nil {
		slog.Warn("failed to publish booking event",
			"type", eventType,
			"booking_id", snap.ID,
			"error", err.Error())
	}
}

func eventForStatus(s booking.Status) string {
	switch s {
	case booking.StatusConfirmed:
		return EventBookingConfirmed
	case booking.StatusCompleted:
		return EventBookingCompleted
	default:
		return EventBookingCancelled
	}
}

func isStaff(role string) bool {
	return role == "operator" || role == "admin"
}
