//go:build unit

package queries_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"carwash-booking/internal/domain/schedule"
	"carwash-booking/internal/infra"
	"carwash-booking/internal/pkg/errs"
	"carwash-booking/internal/usecase/queries"
	"carwash-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommandReads struct {
	washes   map[uuid.UUID]*shared.CarWashSnapshot
	services map[uuid.UUID]*shared.ServiceSnapshot
}

func (f *fakeCommandReads) CarWashByID(_ context.Context, id uuid.UUID) (*shared.CarWashSnapshot, error) {
	wash, ok := f.washes[id]
	if !ok {
		return nil, infra.WrapRepoErr("car wash not found", errors.New("no rows"), infra.KindNotFound)
	}
	return wash, nil
}

func (f *fakeCommandReads) ServiceByID(_ context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, infra.WrapRepoErr("service not found", errors.New("no rows"), infra.KindNotFound)
	}
	return svc, nil
}

func (f *fakeCommandReads) BookingByID(context.Context, uuid.UUID) (*shared.BookingSnapshot, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCommandReads) ReviewByID(context.Context, uuid.UUID) (*shared.ReviewSnapshot, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCommandReads) ReviewByUserAndCarWash(context.Context, uuid.UUID, uuid.UUID) (*shared.ReviewSnapshot, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCommandReads) HasCompletedBooking(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, errors.New("not implemented")
}

type fakeAvailabilityStore struct {
	busy  []schedule.Interval
	err   error
	calls int
}

func (f *fakeAvailabilityStore) ActiveIntervals(context.Context, uuid.UUID, time.Time) ([]schedule.Interval, error) {
	f.calls++
	return f.busy, f.err
}

type fakeAvailabilityCache struct {
	entries map[string][]string
	sets    int
}

func cacheKey(carWashID, serviceID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("%s:%s:%s", carWashID, serviceID, date.Format("2006-01-02"))
}

func (f *fakeAvailabilityCache) GetAvailableTimes(_ context.Context, carWashID, serviceID uuid.UUID, date time.Time) ([]string, bool) {
	times, ok := f.entries[cacheKey(carWashID, serviceID, date)]
	return times, ok
}

func (f *fakeAvailabilityCache) SetAvailableTimes(_ context.Context, carWashID, serviceID uuid.UUID, date time.Time, times []string) {
	f.sets++
	f.entries[cacheKey(carWashID, serviceID, date)] = times
}

func (f *fakeAvailabilityCache) InvalidateDay(context.Context, uuid.UUID, time.Time) {}

type availabilityFixture struct {
	carWashID uuid.UUID
	serviceID uuid.UUID
	store     *fakeAvailabilityStore
	cache     *fakeAvailabilityCache
	queries   queries.AvailabilityQueries
}

// newAvailabilityFixture wires a car wash open 08:00-18:00 with a 60 minute
// service.
func newAvailabilityFixture(busy []schedule.Interval) *availabilityFixture {
	carWashID := uuid.New()
	serviceID := uuid.New()

	reads := &fakeCommandReads{
		washes: map[uuid.UUID]*shared.CarWashSnapshot{
			carWashID: {ID: carWashID, Name: "Sparkle Wash", OpenMin: 480, CloseMin: 1080, IsActive: true},
		},
		services: map[uuid.UUID]*shared.ServiceSnapshot{
			serviceID: {ID: serviceID, CarWashID: carWashID, Name: "Exterior Wash", DurationMin: 60, IsActive: true},
		},
	}
	store := &fakeAvailabilityStore{busy: busy}
	cache := &fakeAvailabilityCache{entries: map[string][]string{}}

	return &availabilityFixture{
		carWashID: carWashID,
		serviceID: serviceID,
		store:     store,
		cache:     cache,
		queries:   queries.NewAvailabilityQueries(reads, store, cache),
	}
}

func mustInterval(t *testing.T, startMin, durationMin int) schedule.Interval {
	t.Helper()
	start, err := schedule.NewTimeOfDay(startMin)
	require.NoError(t, err)
	return schedule.NewInterval(start, durationMin)
}

func TestAvailabilityQueries_CheckAvailability(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success: free slot inside opening hours", func(t *testing.T) {
		f := newAvailabilityFixture(nil)
		available, err := f.queries.CheckAvailability(ctx, f.carWashID, f.serviceID, date, 600)
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("success: overlapping booking blocks the slot", func(t *testing.T) {
		f := newAvailabilityFixture([]schedule.Interval{mustInterval(t, 600, 60)})
		available, err := f.queries.CheckAvailability(ctx, f.carWashID, f.serviceID, date, 630)
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("success: slot ending after close is unavailable", func(t *testing.T) {
		f := newAvailabilityFixture(nil)
		available, err := f.queries.CheckAvailability(ctx, f.carWashID, f.serviceID, date, 1050)
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("success: slot before open is unavailable", func(t *testing.T) {
		f := newAvailabilityFixture(nil)
		available, err := f.queries.CheckAvailability(ctx, f.carWashID, f.serviceID, date, 420)
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("error: unknown car wash", func(t *testing.T) {
		f := newAvailabilityFixture(nil)
		_, err := f.queries.CheckAvailability(ctx, uuid.New(), f.serviceID, date, 600)
		assert.ErrorIs(t, err, errs.ErrCarWashNotFound)
	})

	t.Run("error: unknown service", func(t *testing.T) {
		f := newAvailabilityFixture(nil)
		_, err := f.queries.CheckAvailability(ctx, f.carWashID, uuid.New(), date, 600)
		assert.ErrorIs(t, err, errs.ErrServiceNotFound)
	})

	t.Run("error: service of another car wash", func(t *testing.T) {
		f := newAvailabilityFixture(nil)
		other := newAvailabilityFixture(nil)

		reads := &fakeCommandReads{
			washes: map[uuid.UUID]*shared.CarWashSnapshot{
				f.carWashID:     {ID: f.carWashID, OpenMin: 480, CloseMin: 1080, IsActive: true},
				other.carWashID: {ID: other.carWashID, OpenMin: 480, CloseMin: 1080, IsActive: true},
			},
			services: map[uuid.UUID]*shared.ServiceSnapshot{
				other.serviceID: {ID: other.serviceID, CarWashID: other.carWashID, DurationMin: 60, IsActive: true},
			},
		}
		q := queries.NewAvailabilityQueries(reads, f.store, f.cache)

		_, err := q.CheckAvailability(ctx, f.carWashID, other.serviceID, date, 600)
		assert.ErrorIs(t, err, queries.ErrServiceCarWashMismatch)
	})

	t.Run("error: inactive car wash", func(t *testing.T) {
		f := newAvailabilityFixture(nil)
		carWashID := uuid.New()
		serviceID := uuid.New()
		reads := &fakeCommandReads{
			washes: map[uuid.UUID]*shared.CarWashSnapshot{
				carWashID: {ID: carWashID, OpenMin: 480, CloseMin: 1080, IsActive: false},
			},
			services: map[uuid.UUID]*shared.ServiceSnapshot{
				serviceID: {ID: serviceID, CarWashID: carWashID, DurationMin: 60, IsActive: true},
			},
		}
		q := queries.NewAvailabilityQueries(reads, f.store, f.cache)

		_, err := q.CheckAvailability(ctx, carWashID, serviceID, date, 600)
		assert.ErrorIs(t, err, queries.ErrInactiveCatalogEntry)
	})
}

func TestAvailabilityQueries_GetAvailableTimes(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success: computes slots and fills the cache", func(t *testing.T) {
		f := newAvailabilityFixture([]schedule.Interval{mustInterval(t, 480, 540)})

		view, err := f.queries.GetAvailableTimes(ctx, f.carWashID, f.serviceID, date)
		require.NoError(t, err)
		assert.Equal(t, f.carWashID, view.CarWashID)
		assert.Equal(t, "2026-09-01", view.Date)
		// 08:00-17:00 is occupied; a 60 minute service before the 18:00
		// close leaves exactly 17:00.
		assert.Equal(t, []string{"17:00"}, view.Times)
		assert.Equal(t, 1, f.store.calls)
		assert.Equal(t, 1, f.cache.sets)
	})

	t.Run("success: cache hit skips the read store", func(t *testing.T) {
		f := newAvailabilityFixture(nil)
		f.cache.entries[cacheKey(f.carWashID, f.serviceID, date)] = []string{"10:00", "10:30"}

		view, err := f.queries.GetAvailableTimes(ctx, f.carWashID, f.serviceID, date)
		require.NoError(t, err)
		assert.Equal(t, []string{"10:00", "10:30"}, view.Times)
		assert.Zero(t, f.store.calls)
		assert.Zero(t, f.cache.sets)
	})

	t.Run("error: read store failure propagates", func(t *testing.T) {
		f := newAvailabilityFixture(nil)
		f.store.err = errors.New("database error")

		_, err := f.queries.GetAvailableTimes(ctx, f.carWashID, f.serviceID, date)
		assert.Error(t, err)
	})
}
