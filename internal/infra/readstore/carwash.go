package readstore

import (
	"context"

	"carwash-booking/internal/domain/schedule"
	"carwash-booking/internal/infra"
	"carwash-booking/internal/infra/db"
	"carwash-booking/internal/pkg/pgconv"
	"carwash-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const carWashColumns = `
	id, name, description, address, latitude, longitude, phone,
	open_min, close_min, rating_avg::float8, rating_count, is_active,
	created_at, updated_at`

type CarWashReadStore struct {
	db db.DBTX
}

func NewCarWashReadStore(dbtx db.DBTX) queries.CarWashReadStore {
	return &CarWashReadStore{db: dbtx}
}

func (r *CarWashReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CarWashView, error) {
	query := `SELECT ` + carWashColumns + ` FROM car_washes WHERE id = $1`

	view, err := scanCarWash(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car wash not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car wash by id", err)
	}
	return view, nil
}

func (r *CarWashReadStore) FindActive(ctx context.Context, filters queries.CarWashFilters, limit int32) ([]*queries.CarWashView, error) {
	query := `SELECT ` + carWashColumns + `
		FROM car_washes
		WHERE is_active
		  AND ($1::text IS NULL OR lower(name) LIKE '%' || lower($1) || '%' OR lower(address) LIKE '%' || lower($1) || '%')
		  AND ($2::float8 IS NULL OR rating_avg >= $2)
		ORDER BY name, id
		LIMIT $3`

	rows, err := r.db.Query(ctx, query, filters.Search, filters.MinRating, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list car washes", err)
	}
	defer rows.Close()

	return collectCarWashes(rows)
}

func (r *CarWashReadStore) FindInBoundingBox(ctx context.Context, minLat, maxLat, minLon, maxLon float64) ([]*queries.CarWashView, error) {
	query := `SELECT ` + carWashColumns + `
		FROM car_washes
		WHERE is_active
		  AND latitude BETWEEN $1 AND $2
		  AND longitude BETWEEN $3 AND $4`

	rows, err := r.db.Query(ctx, query, minLat, maxLat, minLon, maxLon)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find car washes in bounding box", err)
	}
	defer rows.Close()

	return collectCarWashes(rows)
}

func collectCarWashes(rows pgx.Rows) ([]*queries.CarWashView, error) {
	var views []*queries.CarWashView
	for rows.Next() {
		view, err := scanCarWash(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan car wash row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate car wash rows", err)
	}
	return views, nil
}

func scanCarWash(row pgx.Row) (*queries.CarWashView, error) {
	var view queries.CarWashView
	var openMin, closeMin int
	err := row.Scan(
		&view.ID, &view.Name, &view.Description, &view.Address,
		&view.Latitude, &view.Longitude, &view.Phone,
		&openMin, &closeMin, &view.AverageRating, &view.ReviewCount, &view.IsActive,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.OpenTime = schedule.TimeOfDay(openMin).String()
	view.CloseTime = schedule.TimeOfDay(closeMin).String()
	return &view, nil
}
