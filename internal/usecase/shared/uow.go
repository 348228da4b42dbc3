package shared

import (
	"context"
	"time"

	"carwash-booking/internal/domain/booking"
	"carwash-booking/internal/domain/carwash"
	"carwash-booking/internal/domain/review"
	"carwash-booking/internal/domain/schedule"
	"carwash-booking/internal/domain/service"
	"carwash-booking/internal/domain/user"
	"carwash-booking/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: serializable transaction for check-then-insert
	// sequences that must not race (booking creation)
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	CarWashes() CarWashRepository
	Services() ServiceRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	CarWashByID(ctx context.Context, id uuid.UUID) (*CarWashSnapshot, error)
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*ReviewSnapshot, error)
	ReviewByUserAndCarWash(ctx context.Context, userID, carWashID uuid.UUID) (*ReviewSnapshot, error)
	HasCompletedBooking(ctx context.Context, userID, carWashID uuid.UUID) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status, updatedAt time.Time) error
	// ActiveIntervals returns the occupied intervals of pending and confirmed
	// bookings for a car wash on a date.
	ActiveIntervals(ctx context.Context, tx db.DBTX, carWashID uuid.UUID, date time.Time) ([]schedule.Interval, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, rev *review.Review) error
	Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error
}

type RatingStatsRepository interface {
	RecalcCarWashRating(ctx context.Context, tx db.DBTX, carWashID uuid.UUID) (*review.Summary, error)
}

// CarWashPatch carries the fields of a partial update. Nil means unchanged.
type CarWashPatch struct {
	Name        *string
	Description *string
	Address     *string
	Latitude    *float64
	Longitude   *float64
	Phone       *string
	OpenMin     *int
	CloseMin    *int
}

type ServicePatch struct {
	Name        *string
	Description *string
	PriceCents  *int64
	DurationMin *int
}

type CarWashRepository interface {
	Create(ctx context.Context, tx db.DBTX, cw *carwash.CarWash) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, patch CarWashPatch, updatedAt time.Time) error
	Deactivate(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ServiceRepository interface {
	Create(ctx context.Context, tx db.DBTX, svc *service.Service) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, patch ServicePatch, updatedAt time.Time) error
	Deactivate(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	// DeactivateByCarWash flips every service of the car wash inactive.
	DeactivateByCarWash(ctx context.Context, tx db.DBTX, carWashID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
	UpdateProfile(ctx context.Context, tx db.DBTX, userID uuid.UUID, name user.Name, phone user.Phone) error
}
