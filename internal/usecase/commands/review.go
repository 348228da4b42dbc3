package commands

import (
	"context"
	"errors"

	"carwash-booking/internal/domain/booking"
	domreview "carwash-booking/internal/domain/review"
	"carwash-booking/internal/infra"
	"carwash-booking/internal/pkg/clock"
	"carwash-booking/internal/pkg/errs"
	"carwash-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotOwned       = errs.New("review not owned by user")
	ErrReviewBookingInvalid = errs.New("referenced booking must be a completed visit of the reviewer at this car wash")
)

type CreateReviewRequest struct {
	CarWashID uuid.UUID
	BookingID *uuid.UUID
	Rating    int
	Comment   string
}

type UpdateReviewRequest struct {
	Rating  int
	Comment string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error)
	UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error
	DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole string) error
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

// CreateReview checks eligibility, inserts the review, and recomputes the car
// wash rating snapshot in the same transaction so readers never observe a
// stale average alongside a new review.
func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error) {
	rev, err := domreview.NewReview(userID, req.CarWashID, req.BookingID, req.Rating, req.Comment, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if txErr := uc.checkEligibility(ctx, tx, userID, req.CarWashID); txErr != nil {
			return txErr
		}
		if txErr := uc.checkReferencedBooking(ctx, tx, req, userID); txErr != nil {
			return txErr
		}

		id, txErr := tx.Reviews().Create(ctx, tx.DB(), rev)
		if txErr != nil {
			return txErr
		}
		createdID = id

		_, txErr = tx.RatingStats().RecalcCarWashRating(ctx, tx.DB(), req.CarWashID)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return &CreateReviewResult{ReviewID: createdID}, nil
}

func (uc *reviewUseCaseImpl) UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, txErr := tx.Reads().ReviewByID(ctx, reviewID)
		if txErr != nil {
			return txErr
		}
		if snap.UserID != actorID {
			return ErrReviewNotOwned
		}

		rating, txErr := domreview.NewRating(snap.Rating)
		if txErr != nil {
			return errs.Mark(txErr, errs.ErrDomainValidation)
		}
		comment, txErr := domreview.NewComment(snap.Comment)
		if txErr != nil {
			return errs.Mark(txErr, errs.ErrDomainValidation)
		}

		now := uc.clock.Now()
		rev := domreview.ReconstructReview(snap.ID, snap.UserID, snap.CarWashID, snap.BookingID, rating, comment, now, now)
		if txErr = rev.UpdateRating(req.Rating, now); txErr != nil {
			return errs.Mark(txErr, errs.ErrDomainValidation)
		}
		if txErr = rev.UpdateComment(req.Comment, now); txErr != nil {
			return errs.Mark(txErr, errs.ErrDomainValidation)
		}

		if txErr = tx.Reviews().Update(ctx, tx.DB(), rev); txErr != nil {
			return txErr
		}
		_, txErr = tx.RatingStats().RecalcCarWashRating(ctx, tx.DB(), snap.CarWashID)
		return txErr
	})
}

func (uc *reviewUseCaseImpl) DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, txErr := tx.Reads().ReviewByID(ctx, reviewID)
		if txErr != nil {
			return txErr
		}
		if actorRole != "admin" && snap.UserID != actorID {
			return ErrReviewNotOwned
		}

		if txErr = tx.Reviews().Delete(ctx, tx.DB(), reviewID); txErr != nil {
			return txErr
		}
		_, txErr = tx.RatingStats().RecalcCarWashRating(ctx, tx.DB(), snap.CarWashID)
		return txErr
	})
}

// Eligibility requires a completed booking at the car wash and no prior
// review by the same user.
func (uc *reviewUseCaseImpl) checkEligibility(ctx context.Context, tx shared.Tx, userID, carWashID uuid.UUID) error {
	completed, err := tx.Reads().HasCompletedBooking(ctx, userID, carWashID)
	if err != nil {
		return err
	}
	if !completed {
		return domreview.ErrNotEligible
	}

	existing, err := tx.Reads().ReviewByUserAndCarWash(ctx, userID, carWashID)
	if err != nil {
		return err
	}
	if existing != nil {
		return errs.ErrDuplicateReview
	}
	return nil
}

// checkReferencedBooking validates the optional booking the review points at.
// The booking must be the reviewer's own completed visit at the reviewed car
// wash.
func (uc *reviewUseCaseImpl) checkReferencedBooking(ctx context.Context, tx shared.Tx, req CreateReviewRequest, userID uuid.UUID) error {
	if req.BookingID == nil {
		return nil
	}

	snap, err := tx.Reads().BookingByID(ctx, *req.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) || errors.Is(err, errs.ErrBookingNotFound) {
			return ErrReviewBookingInvalid
		}
		return err
	}
	if snap.UserID != userID || snap.CarWashID != req.CarWashID || snap.Status != string(booking.StatusCompleted) {
		return ErrReviewBookingInvalid
	}
	return nil
}
