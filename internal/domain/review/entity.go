package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user's rating of a car wash, optionally tied to the visit that
// earned it. A user may hold at most one review per car wash; edits go through
// UpdateRating and UpdateComment.
type Review struct {
	id        uuid.UUID
	userID    uuid.UUID
	carWashID uuid.UUID
	bookingID *uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
	updatedAt time.Time
}

func NewReview(userID, carWashID uuid.UUID, bookingID *uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:        uuid.New(),
		userID:    userID,
		carWashID: carWashID,
		bookingID: bookingID,
		rating:    rating,
		comment:   comment,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReview(id, userID, carWashID uuid.UUID, bookingID *uuid.UUID, rating Rating, comment Comment, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:        id,
		userID:    userID,
		carWashID: carWashID,
		bookingID: bookingID,
		rating:    rating,
		comment:   comment,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Review) UpdateRating(value int, now time.Time) error {
	rating, err := NewRating(value)
	if err != nil {
		return err
	}
	r.rating = rating
	r.updatedAt = now
	return nil
}

func (r *Review) UpdateComment(text string, now time.Time) error {
	comment, err := NewComment(text)
	if err != nil {
		return err
	}
	r.comment = comment
	r.updatedAt = now
	return nil
}

func (r *Review) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Review) ID() uuid.UUID         { return r.id }
func (r *Review) UserID() uuid.UUID     { return r.userID }
func (r *Review) CarWashID() uuid.UUID  { return r.carWashID }
func (r *Review) BookingID() *uuid.UUID { return r.bookingID }
func (r *Review) Rating() Rating        { return r.rating }
func (r *Review) Comment() Comment      { return r.comment }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
func (r *Review) UpdatedAt() time.Time  { return r.updatedAt }
