package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"carwash-booking/internal/domain/service"
	"carwash-booking/internal/infra"
	"carwash-booking/internal/infra/db"
	"carwash-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceRepository struct{}

func NewServiceRepository() shared.ServiceRepository {
	return &ServiceRepository{}
}

func (r *ServiceRepository) Create(ctx context.Context, tx db.DBTX, svc *service.Service) (uuid.UUID, error) {
	const query = `
		INSERT INTO services (id, car_wash_id, name, description, price_cents, duration_min, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		svc.ID(), svc.CarWashID(), svc.Name(), svc.Description(),
		svc.Price().Cents(), svc.DurationMin(), svc.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create service", err, classify(err))
	}
	return id, nil
}

func (r *ServiceRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, patch shared.ServicePatch, updatedAt time.Time) error {
	sets := []string{"updated_at = $2"}
	args := []any{id, updatedAt}

	appendSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		appendSet("name", *patch.Name)
	}
	if patch.Description != nil {
		appendSet("description", *patch.Description)
	}
	if patch.PriceCents != nil {
		appendSet("price_cents", *patch.PriceCents)
	}
	if patch.DurationMin != nil {
		appendSet("duration_min", *patch.DurationMin)
	}

	query := fmt.Sprintf("UPDATE services SET %s WHERE id = $1", strings.Join(sets, ", "))
	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ServiceRepository) Deactivate(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `UPDATE services SET is_active = false, updated_at = now() WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

// DeactivateByCarWash runs alongside the car wash deactivation so none of its
// services stay bookable. A car wash without services is fine, hence no
// rows-affected check.
func (r *ServiceRepository) DeactivateByCarWash(ctx context.Context, tx db.DBTX, carWashID uuid.UUID) error {
	const query = `UPDATE services SET is_active = false, updated_at = now() WHERE car_wash_id = $1 AND is_active`

	if _, err := tx.Exec(ctx, query, carWashID); err != nil {
		return infra.WrapRepoErr("failed to deactivate services of car wash", err)
	}
	return nil
}
