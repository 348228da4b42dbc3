package commands

import (
	"context"

	"carwash-booking/internal/domain/service"
	"carwash-booking/internal/pkg/clock"
	"carwash-booking/internal/pkg/errs"
	"carwash-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	CarWashID   uuid.UUID
	Name        string
	Description string
	PriceCents  int64
	DurationMin int
}

// UpdateServiceRequest is a typed partial update. Nil fields stay untouched.
type UpdateServiceRequest struct {
	Name        *string
	Description *string
	PriceCents  *int64
	DurationMin *int
}

type CreateServiceResult struct {
	ServiceID uuid.UUID
}

type ServiceCommands interface {
	CreateService(ctx context.Context, req CreateServiceRequest) (*CreateServiceResult, error)
	UpdateService(ctx context.Context, id uuid.UUID, req UpdateServiceRequest) error
	DeactivateService(ctx context.Context, id uuid.UUID) error
}

type serviceUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewServiceUseCase(uow shared.UnitOfWork, clk clock.Clock) ServiceCommands {
	return &serviceUseCaseImpl{uow: uow, clock: clk}
}

func (uc *serviceUseCaseImpl) CreateService(ctx context.Context, req CreateServiceRequest) (*CreateServiceResult, error) {
	price, err := service.NewMoney(req.PriceCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	svc, err := service.NewService(req.CarWashID, req.Name, req.Description, price, req.DurationMin)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, txErr := tx.Reads().CarWashByID(ctx, req.CarWashID); txErr != nil {
			return txErr
		}
		id, txErr := tx.Services().Create(ctx, tx.DB(), svc)
		if txErr != nil {
			return txErr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateServiceResult{ServiceID: createdID}, nil
}

// UpdateService never touches the interval of existing bookings; they keep
// the duration snapshotted at creation time.
func (uc *serviceUseCaseImpl) UpdateService(ctx context.Context, id uuid.UUID, req UpdateServiceRequest) error {
	if req.PriceCents != nil && *req.PriceCents < 0 {
		return errs.Mark(service.ErrNegativePrice, errs.ErrDomainValidation)
	}
	if req.DurationMin != nil && *req.DurationMin <= 0 {
		return errs.Mark(service.ErrInvalidDuration, errs.ErrDomainValidation)
	}

	patch := shared.ServicePatch{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		DurationMin: req.DurationMin,
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, txErr := tx.Reads().ServiceByID(ctx, id); txErr != nil {
			return txErr
		}
		return tx.Services().Update(ctx, tx.DB(), id, patch, uc.clock.Now())
	})
}

func (uc *serviceUseCaseImpl) DeactivateService(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, txErr := tx.Reads().ServiceByID(ctx, id); txErr != nil {
			return txErr
		}
		return tx.Services().Deactivate(ctx, tx.DB(), id)
	})
}
