package queries

import (
	"context"
	"time"

	"carwash-booking/internal/infra"
	"carwash-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidCursor = errs.New("invalid cursor")

type ReviewFilters struct {
	MinRating *int
	MaxRating *int
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindByCarWashFirstPage(ctx context.Context, carWashID uuid.UUID, limit int32, minRating, maxRating *int) ([]*ReviewListItem, error)
	FindByCarWashKeyset(ctx context.Context, carWashID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, minRating, maxRating *int) ([]*ReviewListItem, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*ReviewListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReviewListItem, error)
	GetCarWashRatingStats(ctx context.Context, carWashID uuid.UUID) (*CarWashRatingStats, error)
	// HasCompletedBooking and HasReview back the eligibility endpoint.
	HasCompletedBooking(ctx context.Context, userID, carWashID uuid.UUID) (bool, error)
	HasReview(ctx context.Context, userID, carWashID uuid.UUID) (bool, error)
}

type ReviewEligibility struct {
	CanReview         bool   `json:"can_review"`
	Reason            string `json:"reason,omitempty"`
	HasCompletedVisit bool   `json:"has_completed_visit"`
	AlreadyReviewed   bool   `json:"already_reviewed"`
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByCarWash(ctx context.Context, carWashID uuid.UUID, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
	ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
	GetCarWashRatingStats(ctx context.Context, carWashID uuid.UUID) (*CarWashRatingStats, error)
	// CheckEligibility explains whether the user may review the car wash.
	CheckEligibility(ctx context.Context, userID, carWashID uuid.UUID) (*ReviewEligibility, error)
}

type reviewQueriesImpl struct {
	readStore ReviewReadStore
}

func NewReviewQueries(readStore ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{readStore: readStore}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReviewNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reviewQueriesImpl) ListByCarWash(ctx context.Context, carWashID uuid.UUID, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*ReviewListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.readStore.FindByCarWashFirstPage(ctx, carWashID, int32(limit+1), filters.MinRating, filters.MaxRating)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.readStore.FindByCarWashKeyset(ctx, carWashID, lastCreatedAt, lastID, int32(limit+1), filters.MinRating, filters.MaxRating)
	}
	if err != nil {
		return nil, nil, err
	}

	return paginateReviews(rows, limit)
}

func (q *reviewQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*ReviewListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.readStore.FindByUserFirstPage(ctx, userID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.readStore.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	return paginateReviews(rows, limit)
}

func (q *reviewQueriesImpl) GetCarWashRatingStats(ctx context.Context, carWashID uuid.UUID) (*CarWashRatingStats, error) {
	stats, err := q.readStore.GetCarWashRatingStats(ctx, carWashID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCarWashNotFound
		}
		return nil, err
	}
	return stats, nil
}

func (q *reviewQueriesImpl) CheckEligibility(ctx context.Context, userID, carWashID uuid.UUID) (*ReviewEligibility, error) {
	completed, err := q.readStore.HasCompletedBooking(ctx, userID, carWashID)
	if err != nil {
		return nil, err
	}
	reviewed, err := q.readStore.HasReview(ctx, userID, carWashID)
	if err != nil {
		return nil, err
	}

	result := &ReviewEligibility{
		HasCompletedVisit: completed,
		AlreadyReviewed:   reviewed,
	}
	switch {
	case !completed:
		result.Reason = "no completed booking at this car wash"
	case reviewed:
		result.Reason = "review already posted"
	default:
		result.CanReview = true
	}
	return result, nil
}

func paginateReviews(rows []*ReviewListItem, limit int) ([]*ReviewListItem, *Cursor, error) {
	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return rows, next, nil
}
