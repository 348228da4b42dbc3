package readstore

import (
	"context"
	"time"

	"carwash-booking/internal/domain/schedule"
	"carwash-booking/internal/infra"
	"carwash-booking/internal/infra/db"
	"carwash-booking/internal/pkg/pgconv"
	"carwash-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingColumns = `
	b.id, b.user_id, b.car_wash_id, cw.name, b.service_id, s.name,
	b.date, b.start_min, b.end_min, b.status, b.note, b.created_at, b.updated_at`

const bookingJoins = `
	FROM bookings b
	JOIN car_washes cw ON cw.id = b.car_wash_id
	JOIN services s ON s.id = b.service_id`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) queries.BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func NewAvailabilityReadStore(dbtx db.DBTX) queries.AvailabilityReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + ` WHERE b.id = $1`

	view, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, filters queries.BookingFilters, limit int32) ([]*queries.BookingView, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + `
		WHERE b.user_id = $1
		  AND ($2::text IS NULL OR b.status = $2)
		  AND ($3::date IS NULL OR b.date >= $3)
		  AND ($4::date IS NULL OR b.date <= $4)
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $5`

	rows, err := r.db.Query(ctx, query, userID, filters.Status, filters.From, filters.To, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, filters queries.BookingFilters, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + `
		WHERE b.user_id = $1
		  AND ($2::text IS NULL OR b.status = $2)
		  AND ($3::date IS NULL OR b.date >= $3)
		  AND ($4::date IS NULL OR b.date <= $4)
		  AND (b.created_at, b.id) < ($5, $6)
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $7`

	rows, err := r.db.Query(ctx, query, userID, filters.Status, filters.From, filters.To, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingReadStore) FindByCarWashAndDate(ctx context.Context, carWashID uuid.UUID, date time.Time) ([]*queries.BookingView, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + `
		WHERE b.car_wash_id = $1 AND b.date = $2
		ORDER BY b.start_min, b.id`

	rows, err := r.db.Query(ctx, query, carWashID, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by car wash and date", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingReadStore) FindUpcomingByUser(ctx context.Context, userID uuid.UUID, after time.Time, limit int32) ([]*queries.BookingView, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + `
		WHERE b.user_id = $1
		  AND b.status IN ('pending', 'confirmed')
		  AND b.date >= $2::date
		ORDER BY b.date, b.start_min, b.id
		LIMIT $3`

	rows, err := r.db.Query(ctx, query, userID, after, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming bookings", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// ActiveIntervals serves availability reads outside any transaction.
func (r *BookingReadStore) ActiveIntervals(ctx context.Context, carWashID uuid.UUID, date time.Time) ([]schedule.Interval, error) {
	const query = `
		SELECT start_min, end_min
		FROM bookings
		WHERE car_wash_id = $1
		  AND date = $2
		  AND status IN ('pending', 'confirmed')
		ORDER BY start_min`

	rows, err := r.db.Query(ctx, query, carWashID, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load active booking intervals", err)
	}
	defer rows.Close()

	var intervals []schedule.Interval
	for rows.Next() {
		var startMin, endMin int
		if err := rows.Scan(&startMin, &endMin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking interval", err)
		}
		intervals = append(intervals, schedule.Interval{
			Start: schedule.TimeOfDay(startMin),
			End:   schedule.TimeOfDay(endMin),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking intervals", err)
	}
	return intervals, nil
}

func collectBookings(rows pgx.Rows) ([]*queries.BookingView, error) {
	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}

func scanBooking(row pgx.Row) (*queries.BookingView, error) {
	var view queries.BookingView
	var startMin, endMin int
	err := row.Scan(
		&view.ID, &view.UserID, &view.CarWashID, &view.CarWashName,
		&view.ServiceID, &view.ServiceName,
		&view.Date, &startMin, &endMin, &view.Status, &view.Note,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.StartTime = schedule.TimeOfDay(startMin).String()
	view.EndTime = schedule.TimeOfDay(endMin).String()
	return &view, nil
}
