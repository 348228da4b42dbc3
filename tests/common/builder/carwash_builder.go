//go:build unit || e2e

package builder

import (
	"time"

	reqdto "carwash-booking/internal/handler/dto/request"
	"carwash-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarWashBuilder struct {
	Name          string
	Address       string
	Latitude      float64
	Longitude     float64
	OpenTime      string
	CloseTime     string
	AverageRating float64
	ReviewCount   int32
}

func NewCarWashBuilder() *CarWashBuilder {
	return &CarWashBuilder{
		Name:          "Sparkle Wash",
		Address:       "123 Main St",
		Latitude:      -23.5505,
		Longitude:     -46.6333,
		OpenTime:      "08:00",
		CloseTime:     "18:00",
		AverageRating: 4.5,
		ReviewCount:   12,
	}
}

func (c *CarWashBuilder) WithLocation(lat, lon float64) *CarWashBuilder {
	c.Latitude = lat
	c.Longitude = lon
	return c
}

func (c *CarWashBuilder) WithName(name string) *CarWashBuilder {
	c.Name = name
	return c
}

func (c *CarWashBuilder) BuildCreateRequestDTO() reqdto.CreateCarWashRequest {
	return reqdto.CreateCarWashRequest{
		Name:      c.Name,
		Address:   c.Address,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		OpenTime:  c.OpenTime,
		CloseTime: c.CloseTime,
	}
}

func (c *CarWashBuilder) BuildView() *queries.CarWashView {
	now := time.Now()
	return &queries.CarWashView{
		ID:            uuid.New(),
		Name:          c.Name,
		Address:       c.Address,
		Latitude:      c.Latitude,
		Longitude:     c.Longitude,
		OpenTime:      c.OpenTime,
		CloseTime:     c.CloseTime,
		AverageRating: c.AverageRating,
		ReviewCount:   c.ReviewCount,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
