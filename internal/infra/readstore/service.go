package readstore

import (
	"context"

	"carwash-booking/internal/infra"
	"carwash-booking/internal/infra/db"
	"carwash-booking/internal/pkg/pgconv"
	"carwash-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) queries.ServiceReadStore {
	return &ServiceReadStore{db: dbtx}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	const query = `
		SELECT id, car_wash_id, name, description, price_cents, duration_min, is_active, created_at, updated_at
		FROM services
		WHERE id = $1`

	var view queries.ServiceView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.CarWashID, &view.Name, &view.Description,
		&view.PriceCents, &view.DurationMin, &view.IsActive,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by id", err)
	}
	return &view, nil
}

func (r *ServiceReadStore) FindByCarWash(ctx context.Context, carWashID uuid.UUID, activeOnly bool) ([]*queries.ServiceView, error) {
	const query = `
		SELECT id, car_wash_id, name, description, price_cents, duration_min, is_active, created_at, updated_at
		FROM services
		WHERE car_wash_id = $1
		  AND (NOT $2 OR is_active)
		ORDER BY name, id`

	rows, err := r.db.Query(ctx, query, carWashID, activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	var views []*queries.ServiceView
	for rows.Next() {
		var view queries.ServiceView
		err := rows.Scan(
			&view.ID, &view.CarWashID, &view.Name, &view.Description,
			&view.PriceCents, &view.DurationMin, &view.IsActive,
			&view.CreatedAt, &view.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service rows", err)
	}
	return views, nil
}
