package response

import (
	"time"

	"carwash-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	CarWashID   uuid.UUID `json:"car_wash_id"`
	CarWashName string    `json:"car_wash_name"`
	ServiceID   uuid.UUID `json:"service_id"`
	ServiceName string    `json:"service_name"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Status      string    `json:"status"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BookingListResponse struct {
	Items      []*BookingResponse `json:"items"`
	NextCursor *string            `json:"next_cursor,omitempty"`
}

type CreateBookingResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, v)
	resp.Date = v.Date.Format("2006-01-02")
	return &resp
}

func FromBookingList(views []*queries.BookingView, next *queries.Cursor) *BookingListResponse {
	items := make([]*BookingResponse, len(views))
	for i, v := range views {
		items[i] = FromBookingView(v)
	}

	resp := &BookingListResponse{Items: items}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}
