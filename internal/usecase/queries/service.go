package queries

import (
	"context"

	"carwash-booking/internal/infra"
	"carwash-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type ServiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	FindByCarWash(ctx context.Context, carWashID uuid.UUID, activeOnly bool) ([]*ServiceView, error)
}

type ServiceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	ListByCarWash(ctx context.Context, carWashID uuid.UUID, activeOnly bool) ([]*ServiceView, error)
}

type serviceQueriesImpl struct {
	readStore ServiceReadStore
}

func NewServiceQueries(readStore ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{readStore: readStore}
}

func (q *serviceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *serviceQueriesImpl) ListByCarWash(ctx context.Context, carWashID uuid.UUID, activeOnly bool) ([]*ServiceView, error) {
	return q.readStore.FindByCarWash(ctx, carWashID, activeOnly)
}
