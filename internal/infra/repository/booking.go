package repository

import (
	"context"
	"time"

	"carwash-booking/internal/domain/booking"
	"carwash-booking/internal/domain/schedule"
	"carwash-booking/internal/infra"
	"carwash-booking/internal/infra/db"
	"carwash-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() shared.BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (id, user_id, car_wash_id, service_id, date, start_min, end_min, status, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		b.ID(), b.UserID(), b.CarWashID(), b.ServiceID(),
		b.Date(), b.Start().Minutes(), b.End().Minutes(),
		b.Status().String(), b.Note().String(), b.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err, classify(err))
	}
	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status, updatedAt time.Time) error {
	const query = `UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, status.String(), updatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) ActiveIntervals(ctx context.Context, tx db.DBTX, carWashID uuid.UUID, date time.Time) ([]schedule.Interval, error) {
	const query = `
		SELECT start_min, end_min
		FROM bookings
		WHERE car_wash_id = $1
		  AND date = $2
		  AND status IN ('pending', 'confirmed')
		ORDER BY start_min`

	rows, err := tx.Query(ctx, query, carWashID, date)
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
