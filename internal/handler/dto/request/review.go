package request

import (
	"carwash-booking/internal/pkg/patch"
	"carwash-booking/internal/usecase/commands"
	"carwash-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	CarWashID uuid.UUID  `json:"car_wash_id" binding:"required"`
	BookingID *uuid.UUID `json:"booking_id" binding:"omitempty"`
	Rating    int        `json:"rating" binding:"required,min=1,max=5"`
	Comment   string     `json:"comment" binding:"omitempty,max=1000"`
}

func (r *CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		CarWashID: r.CarWashID,
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=1000"`
}

// ToCommand fills absent fields from the stored review.
func (r *UpdateReviewRequest) ToCommand(existing *queries.ReviewView) commands.UpdateReviewRequest {
	return commands.UpdateReviewRequest{
		Rating:  patch.Coalesce(r.Rating, int(existing.Rating)),
		Comment: patch.Coalesce(r.Comment, existing.Comment),
	}
}
