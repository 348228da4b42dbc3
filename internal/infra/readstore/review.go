package readstore

import (
	"context"
	"time"

	"carwash-booking/internal/infra"
	"carwash-booking/internal/infra/db"
	"carwash-booking/internal/pkg/pgconv"
	"carwash-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reviewListColumns = `r.id, u.name, r.rating, r.comment, r.created_at`

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) queries.ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	const query = `
		SELECT r.id, r.user_id, u.name, r.car_wash_id, cw.name, r.booking_id, r.rating, r.comment, r.created_at, r.updated_at
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		JOIN car_washes cw ON cw.id = r.car_wash_id
		WHERE r.id = $1`

	var view queries.ReviewView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.UserID, &view.UserName, &view.CarWashID, &view.CarWashName,
		&view.BookingID, &view.Rating, &view.Comment, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review by id", err)
	}
	return &view, nil
}

func (r *ReviewReadStore) FindByCarWashFirstPage(ctx context.Context, carWashID uuid.UUID, limit int32, minRating, maxRating *int) ([]*queries.ReviewListItem, error) {
	query := `SELECT ` + reviewListColumns + `
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.car_wash_id = $1
		  AND ($2::int IS NULL OR r.rating >= $2)
		  AND ($3::int IS NULL OR r.rating <= $3)
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $4`

	rows, err := r.db.Query(ctx, query, carWashID, minRating, maxRating, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews first page by car wash", err)
	}
	defer rows.Close()

	return collectReviewItems(rows)
}

func (r *ReviewReadStore) FindByCarWashKeyset(ctx context.Context, carWashID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, minRating, maxRating *int) ([]*queries.ReviewListItem, error) {
	query := `SELECT ` + reviewListColumns + `
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.car_wash_id = $1
		  AND ($2::int IS NULL OR r.rating >= $2)
		  AND ($3::int IS NULL OR r.rating <= $3)
		  AND (r.created_at, r.id) < ($4, $5)
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $6`

	rows, err := r.db.Query(ctx, query, carWashID, minRating, maxRating, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews keyset by car wash", err)
	}
	defer rows.Close()

	return collectReviewItems(rows)
}

func (r *ReviewReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	query := `SELECT ` + reviewListColumns + `
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews first page by user", err)
	}
	defer rows.Close()

	return collectReviewItems(rows)
}

func (r *ReviewReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	query := `SELECT ` + reviewListColumns + `
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.user_id = $1
		  AND (r.created_at, r.id) < ($2, $3)
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $4`

	rows, err := r.db.Query(ctx, query, userID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews keyset by user", err)
	}
	defer rows.Close()

	return collectReviewItems(rows)
}

func (r *ReviewReadStore) GetCarWashRatingStats(ctx context.Context, carWashID uuid.UUID) (*queries.CarWashRatingStats, error) {
	const query = `
		SELECT
			COUNT(*)::int,
			COALESCE(round(AVG(rating)::numeric, 1), 0)::float8,
			COUNT(*) FILTER (WHERE rating = 1)::int,
			COUNT(*) FILTER (WHERE rating = 2)::int,
			COUNT(*) FILTER (WHERE rating = 3)::int,
			COUNT(*) FILTER (WHERE rating = 4)::int,
			COUNT(*) FILTER (WHERE rating = 5)::int
		FROM reviews
		WHERE car_wash_id = $1`

	stats := queries.CarWashRatingStats{CarWashID: carWashID}
	err := r.db.QueryRow(ctx, query, carWashID).Scan(
		&stats.TotalReviews, &stats.AverageRating,
		&stats.Rating1Count, &stats.Rating2Count, &stats.Rating3Count,
		&stats.Rating4Count, &stats.Rating5Count,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get car wash rating stats", err)
	}
	return &stats, nil
}

func (r *ReviewReadStore) HasCompletedBooking(ctx context.Context, userID, carWashID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE user_id = $1 AND car_wash_id = $2 AND status = 'completed'
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, carWashID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check completed bookings", err)
	}
	return exists, nil
}

func (r *ReviewReadStore) HasReview(ctx context.Context, userID, carWashID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM reviews
			WHERE user_id = $1 AND car_wash_id = $2
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, carWashID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check existing review", err)
	}
	return exists, nil
}

func collectReviewItems(rows pgx.Rows) ([]*queries.ReviewListItem, error) {
	var items []*queries.ReviewListItem
	for rows.Next() {
		var item queries.ReviewListItem
		if err := rows.Scan(&item.ID, &item.UserName, &item.Rating, &item.Comment, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}
	return items, nil
}
