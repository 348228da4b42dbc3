package request

import (
	"carwash-booking/internal/usecase/commands"
)

type CreateCarWashRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description" binding:"omitempty,max=1000"`
	Address     string  `json:"address" binding:"required,max=255"`
	Latitude    float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" binding:"min=-180,max=180"`
	Phone       string  `json:"phone" binding:"omitempty,max=20"`
	OpenTime    string  `json:"open_time" binding:"required"`
	CloseTime   string  `json:"close_time" binding:"required"`
}

func (r *CreateCarWashRequest) ToCommand() commands.CreateCarWashRequest {
	return commands.CreateCarWashRequest{
		Name:        r.Name,
		Description: r.Description,
		Address:     r.Address,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Phone:       r.Phone,
		OpenTime:    r.OpenTime,
		CloseTime:   r.CloseTime,
	}
}

// UpdateCarWashRequest carries a partial update; absent fields stay untouched.
type UpdateCarWashRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=100"`
	Description *string  `json:"description" binding:"omitempty,max=1000"`
	Address     *string  `json:"address" binding:"omitempty,max=255"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Phone       *string  `json:"phone" binding:"omitempty,max=20"`
	OpenTime    *string  `json:"open_time"`
	CloseTime   *string  `json:"close_time"`
}

func (r *UpdateCarWashRequest) ToCommand() commands.UpdateCarWashRequest {
	return commands.UpdateCarWashRequest{
		Name:        r.Name,
		Description: r.Description,
		Address:     r.Address,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Phone:       r.Phone,
		OpenTime:    r.OpenTime,
		CloseTime:   r.CloseTime,
	}
}
