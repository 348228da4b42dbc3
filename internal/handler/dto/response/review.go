package response

import (
	"carwash-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	UserName    string     `json:"user_name"`
	CarWashID   uuid.UUID  `json:"car_wash_id"`
	CarWashName string     `json:"car_wash_name"`
	BookingID   *uuid.UUID `json:"booking_id,omitempty"`
	Rating      int32      `json:"rating"`
	Comment     string     `json:"comment,omitempty"`
	CreatedAt   int64      `json:"created_at"`
	UpdatedAt   int64      `json:"updated_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:          v.ID,
		UserID:      v.UserID,
		UserName:    v.UserName,
		CarWashID:   v.CarWashID,
		CarWashName: v.CarWashName,
		BookingID:   v.BookingID,
		Rating:      v.Rating,
		Comment:     v.Comment,
		CreatedAt:   v.CreatedAt.Unix(),
		UpdatedAt:   v.UpdatedAt.Unix(),
	}
}

type ReviewListItemResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt int64     `json:"created_at"`
}

type ReviewListResponse struct {
	Items      []*ReviewListItemResponse `json:"items"`
	NextCursor *string                   `json:"next_cursor,omitempty"`
}

func FromReviewList(items []*queries.ReviewListItem, next *queries.Cursor) *ReviewListResponse {
	res := make([]*ReviewListItemResponse, len(items))
	for i, it := range items {
		res[i] = &ReviewListItemResponse{
			ID:        it.ID,
			UserName:  it.UserName,
			Rating:    it.Rating,
			Comment:   it.Comment,
			CreatedAt: it.CreatedAt.Unix(),
		}
	}

	resp := &ReviewListResponse{Items: res}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}

type RatingStatsResponse struct {
	CarWashID     uuid.UUID `json:"car_wash_id"`
	TotalReviews  int32     `json:"total_reviews"`
	AverageRating float64   `json:"average_rating"`
	Rating1Count  int32     `json:"rating_1_count"`
	Rating2Count  int32     `json:"rating_2_count"`
	Rating3Count  int32     `json:"rating_3_count"`
	Rating4Count  int32     `json:"rating_4_count"`
	Rating5Count  int32     `json:"rating_5_count"`
}

func FromRatingStats(s *queries.CarWashRatingStats) *RatingStatsResponse {
	return &RatingStatsResponse{
		CarWashID:     s.CarWashID,
		TotalReviews:  s.TotalReviews,
		AverageRating: s.AverageRating,
		Rating1Count:  s.Rating1Count,
		Rating2Count:  s.Rating2Count,
		Rating3Count:  s.Rating3Count,
		Rating4Count:  s.Rating4Count,
		Rating5Count:  s.Rating5Count,
	}
}
