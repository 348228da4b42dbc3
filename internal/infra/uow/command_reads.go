package uow

import (
	"context"

	"carwash-booking/internal/infra"
	"carwash-booking/internal/infra/db"
	"carwash-booking/internal/pkg/pgconv"
	"carwash-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// commandReads serves the minimal snapshots write paths validate against.
// Bound to a transaction inside Within, to the pool outside.
type commandReads struct {
	dbtx db.DBTX
}

func (c *commandReads) CarWashByID(ctx context.Context, id uuid.UUID) (*shared.CarWashSnapshot, error) {
	const query = `
		SELECT id, name, open_min, close_min, is_active
		FROM car_washes
		WHERE id = $1`

	var snap shared.CarWashSnapshot
	err := c.dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.Name, &snap.OpenMin, &snap.CloseMin, &snap.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car wash not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read car wash snapshot", err)
	}
	return &snap, nil
}

func (c *commandReads) ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	const query = `
		SELECT id, car_wash_id, name, price_cents, duration_min, is_active
		FROM services
		WHERE id = $1`

	var snap shared.ServiceSnapshot
	err := c.dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.CarWashID, &snap.Name, &snap.PriceCents, &snap.DurationMin, &snap.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read service snapshot", err)
	}
	return &snap, nil
}

func (c *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	const query = `
		SELECT id, user_id, car_wash_id, service_id, date, start_min, end_min, status
		FROM bookings
		WHERE id = $1`

	var snap shared.BookingSnapshot
	err := c.dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.UserID, &snap.CarWashID, &snap.ServiceID,
		&snap.Date, &snap.StartMin, &snap.EndMin, &snap.Status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read booking snapshot", err)
	}
	return &snap, nil
}

func (c *commandReads) ReviewByID(ctx context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	const query = `
		SELECT id, user_id, car_wash_id, booking_id, rating, comment
		FROM reviews
		WHERE id = $1`

	var snap shared.ReviewSnapshot
	err := c.dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.UserID, &snap.CarWashID, &snap.BookingID, &snap.Rating, &snap.Comment,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read review snapshot", err)
	}
	return &snap, nil
}

// ReviewByUserAndCarWash returns nil without error when no review exists.
func (c *commandReads) ReviewByUserAndCarWash(ctx context.Context, userID, carWashID uuid.UUID) (*shared.ReviewSnapshot, error) {
	const query = `
		SELECT id, user_id, car_wash_id, booking_id, rating, comment
		FROM reviews
		WHERE user_id = $1 AND car_wash_id = $2`

	var snap shared.ReviewSnapshot
	err := c.dbtx.QueryRow(ctx, query, userID, carWashID).Scan(
		&snap.ID, &snap.UserID, &snap.CarWashID, &snap.BookingID, &snap.Rating, &snap.Comment,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to read review by user and car wash", err)
	}
	return &snap, nil
}

func (c *commandReads) HasCompletedBooking(ctx context.Context, userID, carWashID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE user_id = $1 AND car_wash_id = $2 AND status = 'completed'
		)`

	var exists bool
	if err := c.dbtx.QueryRow(ctx, query, userID, carWashID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check completed bookings", err)
	}
	return exists, nil
}
