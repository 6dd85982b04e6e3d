package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MinReviewRating is the lowest accepted review score.
	MinReviewRating = 1
	// MaxReviewRating is the highest accepted review score.
	MaxReviewRating = 5
)

// ReviewID uniquely identifies a review.
type ReviewID uuid.UUID

// String returns the canonical textual form of the ID.
func (id ReviewID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical textual form.
func (id ReviewID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes an ID from its textual form.
func (id *ReviewID) UnmarshalText(data []byte) error { return (*uuid.UUID)(id).UnmarshalText(data) }

// Review is a scored opinion on a campground. A user writes at most one review
// per campground.
type Review struct {
	ID           ReviewID     `json:"id"`
	CampgroundID CampgroundID `json:"campgroundId"`
	Author       AuthorRef    `json:"author"`
	// Rating is the score in [MinReviewRating, MaxReviewRating].
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
