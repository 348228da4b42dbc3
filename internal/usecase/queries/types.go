package queries

import (
	"time"

	"github.com/google/uuid"
)

// CarWashView represents read-optimized car wash data
type CarWashView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Address       string    `json:"address"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Phone         string    `json:"phone"`
	OpenTime      string    `json:"open_time"`
	CloseTime     string    `json:"close_time"`
	AverageRating float64   `json:"average_rating"`
	ReviewCount   int32     `json:"review_count"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NearbyCarWashView adds distance data relative to the caller's position
type NearbyCarWashView struct {
	CarWashView
	DistanceKm float64 `json:"distance_km"`
	Direction  string  `json:"direction"`
}

// ServiceView represents read-optimized service data
type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	CarWashID   uuid.UUID `json:"car_wash_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	DurationMin int32     `json:"duration_min"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BookingView represents read-optimized booking data with joined names
type BookingView struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	CarWashID   uuid.UUID `json:"car_wash_id"`
	CarWashName string    `json:"car_wash_name"`
	ServiceID   uuid.UUID `json:"service_id"`
	ServiceName string    `json:"service_name"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Status      string    `json:"status"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReviewView represents read-optimized review data
type ReviewView struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	UserName    string     `json:"user_name"`
	CarWashID   uuid.UUID  `json:"car_wash_id"`
	CarWashName string     `json:"car_wash_name"`
	BookingID   *uuid.UUID `json:"booking_id,omitempty"`
	Rating      int32      `json:"rating"`
	Comment     string     `json:"comment"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ReviewListItem struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// CarWashRatingStats is the per-star breakdown for a car wash
type CarWashRatingStats struct {
	CarWashID     uuid.UUID `json:"car_wash_id"`
	TotalReviews  int32     `json:"total_reviews"`
	AverageRating float64   `json:"average_rating"`
	Rating1Count  int32     `json:"rating_1_count"`
	Rating2Count  int32     `json:"rating_2_count"`
	Rating3Count  int32     `json:"rating_3_count"`
	Rating4Count  int32     `json:"rating_4_count"`
	Rating5Count  int32     `json:"rating_5_count"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone,omitempty"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// AvailableTimesView lists the offered start times for a service on a date
type AvailableTimesView struct {
	CarWashID uuid.UUID `json:"car_wash_id"`
	ServiceID uuid.UUID `json:"service_id"`
	Date      string    `json:"date"`
	Times     []string  `json:"times"`
}
