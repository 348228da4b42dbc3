package repository

import (
	"context"

	"carwash-booking/internal/domain/review"
	"carwash-booking/internal/infra"
	"carwash-booking/internal/infra/db"
	"carwash-booking/internal/pkg/pgconv"
	"carwash-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() shared.ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	const query = `
		INSERT INTO reviews (id, user_id, car_wash_id, booking_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		rev.ID(), rev.UserID(), rev.CarWashID(), rev.BookingID(),
		rev.Rating().Value(), rev.Comment().String(), rev.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err, classify(err))
	}
	return id, nil
}

func (r *ReviewRepository) Update(ctx context.Context, tx db.DBTX, rev *review.Review) error {
	const query = `UPDATE reviews SET rating = $2, comment = $3, updated_at = $4 WHERE id = $1`

	tag, err := tx.Exec(ctx, query, rev.ID(), rev.Rating().Value(), rev.Comment().String(), rev.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error {
	const query = `DELETE FROM reviews WHERE id = $1`

	tag, err := tx.Exec(ctx, query, reviewID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

type RatingStatsRepository struct{}

func NewRatingStatsRepository() shared.RatingStatsRepository {
	return &RatingStatsRepository{}
}

// RecalcCarWashRating recomputes the denormalized rating snapshot from the
// review rows. AVG rounds to one decimal half away from zero, matching the
// domain aggregation.
func (r *RatingStatsRepository) RecalcCarWashRating(ctx context.Context, tx db.DBTX, carWashID uuid.UUID) (*review.Summary, error) {
	const query = `
		UPDATE car_washes cw
		SET rating_avg   = agg.avg_rating,
		    rating_count = agg.review_count,
		    updated_at   = now()
		FROM (
			SELECT COALESCE(round(AVG(rating)::numeric, 1), 0) AS avg_rating,
			       COUNT(*) AS review_count
			FROM reviews
			WHERE car_wash_id = $1
		) agg
		WHERE cw.id = $1
		RETURNING cw.rating_avg::float8, cw.rating_count`

	var avg float64
	var count int
	if err := tx.QueryRow(ctx, query, carWashID).Scan(&avg, &count); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car wash not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to recalc car wash rating", err)
	}

	return &review.Summary{Average: avg, Count: count}, nil
}
