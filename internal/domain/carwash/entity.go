package carwash

import (
	"errors"
	"strings"
	"time"

	"carwash-booking/internal/domain/geo"
	"carwash-booking/internal/domain/review"
	"carwash-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("car wash name cannot be empty")
	ErrNameTooLong        = errors.New("car wash name is too long (max 255 characters)")
	ErrEmptyAddress       = errors.New("car wash address cannot be empty")
	ErrInvalidCoordinates = errors.New("coordinates out of range")
	ErrInvalidHours       = errors.New("opening time must be before closing time")
)

const MaxNameLength = 255

// OpeningHours is the daily bookable window [Open, Close).
type OpeningHours struct {
	Open  schedule.TimeOfDay
	Close schedule.TimeOfDay
}

func NewOpeningHours(open, close schedule.TimeOfDay) (OpeningHours, error) {
	if open >= close {
		return OpeningHours{}, ErrInvalidHours
	}
	return OpeningHours{Open: open, Close: close}, nil
}

type CarWash struct {
	id           uuid.UUID
	name         string
	description  string
	address      string
	latitude     float64
	longitude    float64
	phone        string
	hours        OpeningHours
	rating       review.Summary
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewCarWash(name, description, address string, lat, lon float64, phone string, hours OpeningHours) (*CarWash, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if strings.TrimSpace(address) == "" {
		return nil, ErrEmptyAddress
	}
	if !geo.ValidCoordinates(lat, lon) {
		return nil, ErrInvalidCoordinates
	}

	return &CarWash{
		id:          uuid.New(),
		name:        name,
		description: strings.TrimSpace(description),
		address:     strings.TrimSpace(address),
		latitude:    lat,
		longitude:   lon,
		phone:       strings.TrimSpace(phone),
		hours:       hours,
		isActive:    true,
	}, nil
}

func ReconstructCarWash(
	id uuid.UUID,
	name, description, address string,
	lat, lon float64,
	phone string,
	hours OpeningHours,
	rating review.Summary,
	isActive bool,
	createdAt, updatedAt time.Time,
) *CarWash {
	return &CarWash{
		id:          id,
		name:        name,
		description: description,
		address:     address,
		latitude:    lat,
		longitude:   lon,
		phone:       phone,
		hours:       hours,
		rating:      rating,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// DistanceFrom returns the great-circle distance in km from the given point.
func (c *CarWash) DistanceFrom(lat, lon float64) float64 {
	return geo.DistanceKm(lat, lon, c.latitude, c.longitude)
}

// IsOpenAt reports whether a service occupying [start, start+durationMin)
// fits inside the opening hours.
func (c *CarWash) IsOpenAt(start schedule.TimeOfDay, durationMin int) bool {
	return start >= c.hours.Open && start.Add(durationMin) <= c.hours.Close
}

func (c *CarWash) ID() uuid.UUID          { return c.id }
func (c *CarWash) Name() string           { return c.name }
func (c *CarWash) Description() string    { return c.description }
func (c *CarWash) Address() string        { return c.address }
func (c *CarWash) Latitude() float64      { return c.latitude }
func (c *CarWash) Longitude() float64     { return c.longitude }
func (c *CarWash) Phone() string          { return c.phone }
func (c *CarWash) Hours() OpeningHours    { return c.hours }
func (c *CarWash) Rating() review.Summary { return c.rating }
func (c *CarWash) IsActive() bool         { return c.isActive }
func (c *CarWash) CreatedAt() time.Time   { return c.createdAt }
func (c *CarWash) UpdatedAt() time.Time   { return c.updatedAt }
