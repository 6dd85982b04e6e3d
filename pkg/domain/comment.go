package domain

import (
	"time"

	"github.com/google/uuid"
)

// CommentID uniquely identifies a comment.
type CommentID uuid.UUID

// String returns the canonical textual form of the ID.
func (id CommentID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical textual form.
func (id CommentID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes an ID from its textual form.
func (id *CommentID) UnmarshalText(data []byte) error { return (*uuid.UUID)(id).UnmarshalText(data) }

// Comment is a free text remark on a campground.
type Comment struct {
	ID           CommentID    `json:"id"`
	CampgroundID CampgroundID `json:"campgroundId"`
	Author       AuthorRef    `json:"author"`
	Text         string       `json:"text"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}
