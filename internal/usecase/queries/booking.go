package queries

import (
	"context"
	"time"

	"carwash-booking/internal/infra"
	"carwash-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingAccess = errs.New("booking access denied")

type BookingFilters struct {
	Status *string
	From   *time.Time
	To     *time.Time
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, filters BookingFilters, limit int32) ([]*BookingView, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, filters BookingFilters, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
	FindByCarWashAndDate(ctx context.Context, carWashID uuid.UUID, date time.Time) ([]*BookingView, error)
	FindUpcomingByUser(ctx context.Context, userID uuid.UUID, after time.Time, limit int32) ([]*BookingView, error)
}

type BookingQueries interface {
	// GetByID enforces ownership; staff roles can read any booking.
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	// ListByCarWashAndDate is the operator's day schedule.
	ListByCarWashAndDate(ctx context.Context, carWashID uuid.UUID, date time.Time, actorRole string) ([]*BookingView, error)
	ListUpcoming(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}

	if view.UserID != actorID && !isStaffRole(actorRole) {
		return nil, ErrBookingAccess
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*BookingView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.readStore.FindByUserFirstPage(ctx, userID, filters, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, errs.Mark(derr, errs.ErrDomainValidation)
		}
		rows, err = q.readStore.FindByUserKeyset(ctx, userID, filters, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return rows, next, nil
}

func (q *bookingQueriesImpl) ListByCarWashAndDate(ctx context.Context, carWashID uuid.UUID, date time.Time, actorRole string) ([]*BookingView, error) {
	if !isStaffRole(actorRole) {
		return nil, ErrBookingAccess
	}
	return q.readStore.FindByCarWashAndDate(ctx, carWashID, date)
}

func (q *bookingQueriesImpl) ListUpcoming(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]*BookingView, error) {
	return q.readStore.FindUpcomingByUser(ctx, userID, now, int32(ValidateLimit(limit)))
}

func isStaffRole(role string) bool {
	return role == "operator" || role == "admin"
}
