package queries

import (
	"context"
	"log/slog"
	"time"

	"carwash-booking/internal/domain/schedule"
	"carwash-booking/internal/infra"
	"carwash-booking/internal/pkg/errs"
	"carwash-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrServiceCarWashMismatch = errs.New("service does not belong to car wash")
	ErrInactiveCatalogEntry   = errs.New("car wash or service is inactive")
)

// AvailabilityCache is a short-TTL cache for computed slot lists. Results are
// advisory; the serializable booking transaction is the source of truth, so a
// stale entry can never cause a double booking.
type AvailabilityCache interface {
	GetAvailableTimes(ctx context.Context, carWashID, serviceID uuid.UUID, date time.Time) ([]string, bool)
	SetAvailableTimes(ctx context.Context, carWashID, serviceID uuid.UUID, date time.Time, times []string)
	InvalidateDay(ctx context.Context, carWashID uuid.UUID, date time.Time)
}

type AvailabilityReadStore interface {
	// ActiveIntervals returns occupied intervals of pending and confirmed
	// bookings for the car wash on the date.
	ActiveIntervals(ctx context.Context, carWashID uuid.UUID, date time.Time) ([]schedule.Interval, error)
}

type AvailabilityQueries interface {
	// CheckAvailability reports whether a service can start at the given time.
	CheckAvailability(ctx context.Context, carWashID, serviceID uuid.UUID, date time.Time, startMin int) (bool, error)
	// GetAvailableTimes lists every bookable start time for the service on
	// the date, stepping on half-hour boundaries.
	GetAvailableTimes(ctx context.Context, carWashID, serviceID uuid.UUID, date time.Time) (*AvailableTimesView, error)
}

type availabilityQueriesImpl struct {
	reads     shared.CommandReads
	readStore AvailabilityReadStore
	cache     AvailabilityCache
}

func NewAvailabilityQueries(reads shared.CommandReads, readStore AvailabilityReadStore, cache AvailabilityCache) AvailabilityQueries {
	return &availabilityQueriesImpl{
		reads:     reads,
		readStore: readStore,
		cache:     cache,
	}
}

func (q *availabilityQueriesImpl) CheckAvailability(ctx context.Context, carWashID, serviceID uuid.UUID, date time.Time, startMin int) (bool, error) {
	wash, svc, err := q.loadCatalog(ctx, carWashID, serviceID)
	if err != nil {
		return false, err
	}

	start, err := schedule.NewTimeOfDay(startMin)
	if err != nil {
		return false, errs.Mark(err, errs.ErrDomainValidation)
	}
	if startMin < wash.OpenMin || startMin+svc.DurationMin > wash.CloseMin {
		return false, nil
	}

	busy, err := q.readStore.ActiveIntervals(ctx, carWashID, date)
	if err != nil {
		return false, err
	}
	return schedule.IsFree(schedule.NewInterval(start, svc.DurationMin), busy), nil
}

func (q *availabilityQueriesImpl) GetAvailableTimes(ctx context.Context, carWashID, serviceID uuid.UUID, date time.Time) (*AvailableTimesView, error) {
	wash, svc, err := q.loadCatalog(ctx, carWashID, serviceID)
	if err != nil {
		return nil, err
	}

	view := &AvailableTimesView{
		CarWashID: carWashID,
		ServiceID: serviceID,
		Date:      date.Format("2006-01-02"),
	}

	if times, ok := q.cache.GetAvailableTimes(ctx, carWashID, serviceID, date); ok {
		view.Times = times
		return view, nil
	}

	busy, err := q.readStore.ActiveIntervals(ctx, carWashID, date)
	if err != nil {
		return nil, err
	}

	open := schedule.TimeOfDay(wash.OpenMin)
	closeAt := schedule.TimeOfDay(wash.CloseMin)
	slots := schedule.FreeSlots(open, closeAt, svc.DurationMin, schedule.DefaultStepMinutes, busy)
	view.Times = schedule.FormatSlots(slots)

	q.cache.SetAvailableTimes(ctx, carWashID, serviceID, date, view.Times)
	return view, nil
}

func (q *availabilityQueriesImpl) loadCatalog(ctx context.Context, carWashID, serviceID uuid.UUID) (*shared.CarWashSnapshot, *shared.ServiceSnapshot, error) {
	wash, err := q.reads.CarWashByID(ctx, carWashID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.ErrCarWashNotFound
		}
		return nil, nil, err
	}

	svc, err := q.reads.ServiceByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.ErrServiceNotFound
		}
		return nil, nil, err
	}

	if svc.CarWashID != carWashID {
		return nil, nil, ErrServiceCarWashMismatch
	}
	if !wash.IsActive || !svc.IsActive {
		slog.Debug("availability requested for inactive catalog entry",
			"car_wash_id", carWashID, "service_id", serviceID)
		return nil, nil, ErrInactiveCatalogEntry
	}

	return wash, svc, nil
}
