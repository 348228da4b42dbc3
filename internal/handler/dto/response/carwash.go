package response

import (
	"time"

	"carwash-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CarWashResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Address       string    `json:"address"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Phone         string    `json:"phone,omitempty"`
	OpenTime      string    `json:"open_time"`
	CloseTime     string    `json:"close_time"`
	AverageRating float64   `json:"average_rating"`
	ReviewCount   int32     `json:"review_count"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type NearbyCarWashResponse struct {
	CarWashResponse
	DistanceKm float64 `json:"distance_km"`
	Direction  string  `json:"direction"`
}

func FromCarWashView(v *queries.CarWashView) *CarWashResponse {
	var resp CarWashResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromCarWashList(views []*queries.CarWashView) []*CarWashResponse {
	res := make([]*CarWashResponse, len(views))
	for i, v := range views {
		res[i] = FromCarWashView(v)
	}
	return res
}

func FromNearbyCarWashList(views []*queries.NearbyCarWashView) []*NearbyCarWashResponse {
	res := make([]*NearbyCarWashResponse, len(views))
	for i, v := range views {
		res[i] = &NearbyCarWashResponse{
			CarWashResponse: *FromCarWashView(&v.CarWashView),
			DistanceKm:      v.DistanceKm,
			Direction:       v.Direction,
		}
	}
	return res
}
