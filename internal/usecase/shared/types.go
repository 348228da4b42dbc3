package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types.

type CarWashSnapshot struct {
	ID       uuid.UUID
	Name     string
	OpenMin  int
	CloseMin int
	IsActive bool
}

type ServiceSnapshot struct {
	ID          uuid.UUID
	CarWashID   uuid.UUID
	Name        string
	PriceCents  int64
	DurationMin int
	IsActive    bool
}

type BookingSnapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CarWashID uuid.UUID
	ServiceID uuid.UUID
	Date      time.Time
	StartMin  int
	EndMin    int
	Status    string
}

type ReviewSnapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CarWashID uuid.UUID
	BookingID *uuid.UUID
	Rating    int
	Comment   string
}
