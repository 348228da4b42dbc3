package request

import (
	"strings"
	"time"

	"carwash-booking/internal/domain/schedule"
	"carwash-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CarWashID uuid.UUID `json:"car_wash_id" binding:"required"`
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	Date      string    `json:"date" binding:"required"`
	StartTime string    `json:"start_time" binding:"required"`
	Note      *string   `json:"note,omitempty"`
}

func (r *CreateBookingRequest) ToCommand() (commands.CreateBookingRequest, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}
	start, err := schedule.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}

	note := ""
	if r.Note != nil {
		note = strings.TrimSpace(*r.Note)
	}

	return commands.CreateBookingRequest{
		CarWashID: r.CarWashID,
		ServiceID: r.ServiceID,
		Date:      date,
		StartMin:  start.Minutes(),
		Note:      note,
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed cancelled completed"`
}
