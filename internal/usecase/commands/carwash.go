package commands

import (
	"context"

	"carwash-booking/internal/domain/carwash"
	"carwash-booking/internal/domain/geo"
	"carwash-booking/internal/domain/schedule"
	"carwash-booking/internal/pkg/clock"
	"carwash-booking/internal/pkg/errs"
	"carwash-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateCarWashRequest struct {
	Name        string
	Description string
	Address     string
	Latitude    float64
	Longitude   float64
	Phone       string
	OpenTime    string
	CloseTime   string
}

// UpdateCarWashRequest is a typed partial update. Nil fields stay untouched.
type UpdateCarWashRequest struct {
	Name        *string
	Description *string
	Address     *string
	Latitude    *float64
	Longitude   *float64
	Phone       *string
	OpenTime    *string
	CloseTime   *string
}

type CreateCarWashResult struct {
	CarWashID uuid.UUID
}

type CarWashCommands interface {
	CreateCarWash(ctx context.Context, req CreateCarWashRequest) (*CreateCarWashResult, error)
	UpdateCarWash(ctx context.Context, id uuid.UUID, req UpdateCarWashRequest) error
	DeactivateCarWash(ctx context.Context, id uuid.UUID) error
}

type carWashUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCarWashUseCase(uow shared.UnitOfWork, clk clock.Clock) CarWashCommands {
	return &carWashUseCaseImpl{uow: uow, clock: clk}
}

func (uc *carWashUseCaseImpl) CreateCarWash(ctx context.Context, req CreateCarWashRequest) (*CreateCarWashResult, error) {
	open, err := schedule.ParseTimeOfDay(req.OpenTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	closeAt, err := schedule.ParseTimeOfDay(req.CloseTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	hours, err := carwash.NewOpeningHours(open, closeAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	cw, err := carwash.NewCarWash(req.Name, req.Description, req.Address, req.Latitude, req.Longitude, req.Phone, hours)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.CarWashes().Create(ctx, tx.DB(), cw)
		if txErr != nil {
			return txErr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateCarWashResult{CarWashID: createdID}, nil
}

func (uc *carWashUseCaseImpl) UpdateCarWash(ctx context.Context, id uuid.UUID, req UpdateCarWashRequest) error {
	patch, err := uc.buildPatch(req)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, txErr := tx.Reads().CarWashByID(ctx, id)
		if txErr != nil {
			return txErr
		}

		// Opening hours must stay consistent even when only one bound moves.
		open := snap.OpenMin
		closeMin := snap.CloseMin
		if patch.OpenMin != nil {
			open = *patch.OpenMin
		}
		if patch.CloseMin != nil {
			closeMin = *patch.CloseMin
		}
		if open >= closeMin {
			return errs.Mark(carwash.ErrInvalidHours, errs.ErrDomainValidation)
		}

		return tx.CarWashes().Update(ctx, tx.DB(), id, patch, uc.clock.Now())
	})
}

func (uc *carWashUseCaseImpl) DeactivateCarWash(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, txErr := tx.Reads().CarWashByID(ctx, id); txErr != nil {
			return txErr
		}
		if txErr := tx.CarWashes().Deactivate(ctx, tx.DB(), id); txErr != nil {
			return txErr
		}
		// An inactive car wash must not keep bookable offerings.
		return tx.Services().DeactivateByCarWash(ctx, tx.DB(), id)
	})
}

func (uc *carWashUseCaseImpl) buildPatch(req UpdateCarWashRequest) (shared.CarWashPatch, error) {
	patch := shared.CarWashPatch{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Phone:       req.Phone,
	}

	if req.Name != nil && *req.Name == "" {
		return shared.CarWashPatch{}, errs.Mark(carwash.ErrEmptyName, errs.ErrDomainValidation)
	}

	if req.Latitude != nil || req.Longitude != nil {
		if req.Latitude == nil || req.Longitude == nil {
			return shared.CarWashPatch{}, errs.Mark(carwash.ErrInvalidCoordinates, errs.ErrDomainValidation)
		}
		if !geo.ValidCoordinates(*req.Latitude, *req.Longitude) {
			return shared.CarWashPatch{}, errs.Mark(carwash.ErrInvalidCoordinates, errs.ErrDomainValidation)
		}
	}

	if req.OpenTime != nil {
		open, err := schedule.ParseTimeOfDay(*req.OpenTime)
		if err != nil {
			return shared.CarWashPatch{}, errs.Mark(err, errs.ErrDomainValidation)
		}
		m := open.Minutes()
		patch.OpenMin = &m
	}
	if req.CloseTime != nil {
		closeAt, err := schedule.ParseTimeOfDay(*req.CloseTime)
		if err != nil {
			return shared.CarWashPatch{}, errs.Mark(err, errs.ErrDomainValidation)
		}
		m := closeAt.Minutes()
		patch.CloseMin = &m
	}

	return patch, nil
}
