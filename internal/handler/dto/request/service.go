package request

import (
	"carwash-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	PriceCents  int64  `json:"price_cents" binding:"min=0"`
	DurationMin int    `json:"duration_min" binding:"required,min=1"`
}

func (r *CreateServiceRequest) ToCommand(carWashID uuid.UUID) commands.CreateServiceRequest {
	return commands.CreateServiceRequest{
		CarWashID:   carWashID,
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  r.PriceCents,
		DurationMin: r.DurationMin,
	}
}

// UpdateServiceRequest carries a partial update; absent fields stay untouched.
type UpdateServiceRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	PriceCents  *int64  `json:"price_cents" binding:"omitempty,min=0"`
	DurationMin *int    `json:"duration_min" binding:"omitempty,min=1"`
}

func (r *UpdateServiceRequest) ToCommand() commands.UpdateServiceRequest {
	return commands.UpdateServiceRequest{
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  r.PriceCents,
		DurationMin: r.DurationMin,
	}
}
