package review

import "errors"

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrCommentTooLong = errors.New("comment exceeds maximum length")

	ErrNotEligible   = errors.New("user has no completed booking at this car wash")
	ErrAlreadyExists = errors.New("review already exists for this car wash")
)
