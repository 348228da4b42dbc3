package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("service name cannot be empty")
	ErrNameTooLong     = errors.New("service name is too long (max 255 characters)")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
)

const MaxNameLength = 255

// Money is a price in integer cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }

// Service is a bookable offering of a car wash. Duration drives slot
// computation; bookings snapshot it at creation time.
type Service struct {
	id          uuid.UUID
	carWashID   uuid.UUID
	name        string
	description string
	price       Money
	durationMin int
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewService(carWashID uuid.UUID, name, description string, price Money, durationMin int) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}

	return &Service{
		id:          uuid.New(),
		carWashID:   carWashID,
		name:        name,
		description: strings.TrimSpace(description),
		price:       price,
		durationMin: durationMin,
		isActive:    true,
	}, nil
}

func ReconstructService(
	id, carWashID uuid.UUID,
	name, description string,
	price Money,
	durationMin int,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:          id,
		carWashID:   carWashID,
		name:        name,
		description: description,
		price:       price,
		durationMin: durationMin,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Service) BelongsTo(carWashID uuid.UUID) bool {
	return s.carWashID == carWashID
}

func (s *Service) ID() uuid.UUID        { return s.id }
func (s *Service) CarWashID() uuid.UUID { return s.carWashID }
func (s *Service) Name() string         { return s.name }
func (s *Service) Description() string  { return s.description }
func (s *Service) Price() Money         { return s.price }
func (s *Service) DurationMin() int     { return s.durationMin }
func (s *Service) IsActive() bool       { return s.isActive }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }
