package queries

import (
	"context"
	"sort"

	"carwash-booking/internal/domain/geo"
	"carwash-booking/internal/infra"
	"carwash-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidLocation = errs.New("invalid location parameters")

const (
	DefaultNearbyRadiusKm = 10.0
	MaxNearbyRadiusKm     = 100.0
)

type CarWashFilters struct {
	Search    *string
	MinRating *float64
}

type CarWashReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CarWashView, error)
	// FindActive returns active car washes matching the filters, name-sorted.
	FindActive(ctx context.Context, filters CarWashFilters, limit int32) ([]*CarWashView, error)
	// FindInBoundingBox returns active car washes inside the coordinate box.
	// Distance filtering and sorting happen in the query layer.
	FindInBoundingBox(ctx context.Context, minLat, maxLat, minLon, maxLon float64) ([]*CarWashView, error)
}

type CarWashQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CarWashView, error)
	List(ctx context.Context, filters CarWashFilters, limit int) ([]*CarWashView, error)
	// FindNearby returns active car washes within radiusKm of the point,
	// closest first, annotated with distance and compass direction.
	FindNearby(ctx context.Context, lat, lon, radiusKm float64, limit int) ([]*NearbyCarWashView, error)
}

type carWashQueriesImpl struct {
	readStore CarWashReadStore
}

func NewCarWashQueries(readStore CarWashReadStore) CarWashQueries {
	return &carWashQueriesImpl{readStore: readStore}
}

func (q *carWashQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CarWashView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCarWashNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *carWashQueriesImpl) List(ctx context.Context, filters CarWashFilters, limit int) ([]*CarWashView, error) {
	limit = ValidateLimit(limit)
	return q.readStore.FindActive(ctx, filters, int32(limit))
}

func (q *carWashQueriesImpl) FindNearby(ctx context.Context, lat, lon, radiusKm float64, limit int) ([]*NearbyCarWashView, error) {
	if !geo.ValidCoordinates(lat, lon) {
		return nil, ErrInvalidLocation
	}
	if radiusKm <= 0 {
		radiusKm = DefaultNearbyRadiusKm
	}
	if radiusKm > MaxNearbyRadiusKm {
		radiusKm = MaxNearbyRadiusKm
	}
	limit = ValidateLimit(limit)

	// The bounding box over-selects; the exact Haversine distance filters
	// the corners out afterwards.
	minLat, maxLat, minLon, maxLon := geo.BoundingBox(lat, lon, radiusKm)
	candidates, err := q.readStore.FindInBoundingBox(ctx, minLat, maxLat, minLon, maxLon)
	if err != nil {
		return nil, err
	}

	nearby := make([]*NearbyCarWashView, 0, len(candidates))
	for _, cw := range candidates {
		dist := geo.DistanceKm(lat, lon, cw.Latitude, cw.Longitude)
		if dist > radiusKm {
			continue
		}
		bearing := geo.BearingDegrees(lat, lon, cw.Latitude, cw.Longitude)
		nearby = append(nearby, &NearbyCarWashView{
			CarWashView: *cw,
			DistanceKm:  dist,
			Direction:   geo.CardinalDirection(bearing),
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		if nearby[i].DistanceKm != nearby[j].DistanceKm {
			return nearby[i].DistanceKm < nearby[j].DistanceKm
		}
		return nearby[i].Name < nearby[j].Name
	})

	if len(nearby) > limit {
		nearby = nearby[:limit]
	}
	return nearby, nil
}
