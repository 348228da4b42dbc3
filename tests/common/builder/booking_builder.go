//go:build unit || e2e

package builder

import (
	"time"

	reqdto "carwash-booking/internal/handler/dto/request"
	"carwash-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID      uuid.UUID
	CarWashID   uuid.UUID
	CarWashName string
	ServiceID   uuid.UUID
	ServiceName string
	Date        time.Time
	StartTime   string
	EndTime     string
	Status      string
	Note        string
	CreatedAt   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		UserID:      uuid.New(),
		CarWashID:   uuid.New(),
		CarWashName: "Sparkle Wash",
		ServiceID:   uuid.New(),
		ServiceName: "Exterior Wash",
		Date:        now.AddDate(0, 0, 1),
		StartTime:   "10:00",
		EndTime:     "10:30",
		Status:      "pending",
		Note:        "",
		CreatedAt:   now,
	}
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CarWashID: b.CarWashID,
		ServiceID: b.ServiceID,
		Date:      b.Date.Format("2006-01-02"),
		StartTime: b.StartTime,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:          uuid.New(),
		UserID:      b.UserID,
		CarWashID:   b.CarWashID,
		CarWashName: b.CarWashName,
		ServiceID:   b.ServiceID,
		ServiceName: b.ServiceName,
		Date:        b.Date,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Status:      b.Status,
		Note:        b.Note,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}
