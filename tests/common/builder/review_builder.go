//go:build unit || e2e

package builder

import (
	"time"

	reqdto "carwash-booking/internal/handler/dto/request"
	"carwash-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	UserID      uuid.UUID
	UserName    string
	CarWashID   uuid.UUID
	CarWashName string
	Rating      int
	Comment     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now()
	return &ReviewBuilder{
		UserID:      uuid.New(),
		UserName:    "Alex Reviewer",
		CarWashID:   uuid.New(),
		CarWashName: "Sparkle Wash",
		Rating:      5,
		Comment:     "Spotless result!",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (r *ReviewBuilder) WithUserID(userID uuid.UUID) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		CarWashID: r.CarWashID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

func (r *ReviewBuilder) BuildUpdateRequestDTO() reqdto.UpdateReviewRequest {
	rating := r.Rating
	comment := r.Comment
	return reqdto.UpdateReviewRequest{
		Rating:  &rating,
		Comment: &comment,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:          uuid.New(),
		UserID:      r.UserID,
		UserName:    r.UserName,
		CarWashID:   r.CarWashID,
		CarWashName: r.CarWashName,
		Rating:      int32(r.Rating),
		Comment:     r.Comment,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *ReviewBuilder) BuildListItem() *queries.ReviewListItem {
	return &queries.ReviewListItem{
		ID:        uuid.New(),
		UserName:  r.UserName,
		Rating:    int32(r.Rating),
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
