package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"carwash-booking/internal/domain/carwash"
	"carwash-booking/internal/infra"
	"carwash-booking/internal/infra/db"
	"carwash-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CarWashRepository struct{}

func NewCarWashRepository() shared.CarWashRepository {
	return &CarWashRepository{}
}

func (r *CarWashRepository) Create(ctx context.Context, tx db.DBTX, cw *carwash.CarWash) (uuid.UUID, error) {
	const query = `
		INSERT INTO car_washes (id, name, description, address, latitude, longitude, phone, open_min, close_min, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		cw.ID(), cw.Name(), cw.Description(), cw.Address(),
		cw.Latitude(), cw.Longitude(), cw.Phone(),
		cw.Hours().Open.Minutes(), cw.Hours().Close.Minutes(), cw.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create car wash", err, classify(err))
	}
	return id, nil
}

// Update applies only the patch fields that are set. The caller has already
// validated cross-field consistency (opening hours, coordinates).
func (r *CarWashRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, patch shared.CarWashPatch, updatedAt time.Time) error {
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
	if patch.Address != nil {
		appendSet("address", *patch.Address)
	}
	if patch.Latitude != nil {
		appendSet("latitude", *patch.Latitude)
	}
	if patch.Longitude != nil {
		appendSet("longitude", *patch.Longitude)
	}
	if patch.Phone != nil {
		appendSet("phone", *patch.Phone)
	}
	if patch.OpenMin != nil {
		appendSet("open_min", *patch.OpenMin)
	}
	if patch.CloseMin != nil {
		appendSet("close_min", *patch.CloseMin)
	}

	query := fmt.Sprintf("UPDATE car_washes SET %s WHERE id = $1", strings.Join(sets, ", "))
	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update car wash", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car wash not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CarWashRepository) Deactivate(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `UPDATE car_washes SET is_active = false, updated_at = now() WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate car wash", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car wash not found", nil, infra.KindNotFound)
	}
	return nil
}
