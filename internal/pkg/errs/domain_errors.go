package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Car wash errors
	ErrCarWashNotFound = errors.New("car wash not found")

	// Service errors
	ErrServiceNotFound = errors.New("service not found")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingConflict   = errors.New("booking slot conflict")
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// Review errors
	ErrReviewNotFound  = errors.New("review not found")
	ErrDuplicateReview = errors.New("duplicate review")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
