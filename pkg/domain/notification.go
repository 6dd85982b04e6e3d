package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationID uniquely identifies a notification.
type NotificationID uuid.UUID

// String returns the canonical textual form of the ID.
func (id NotificationID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical textual form.
func (id NotificationID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes an ID from its textual form.
func (id *NotificationID) UnmarshalText(data []byte) error { return (*uuid.UUID)(id).UnmarshalText(data) }

// Notification tells a follower that a followed user published a campground.
type Notification struct {
	ID NotificationID `json:"id"`
	// UserID is the recipient; the notification belongs to exactly one user.
	UserID UserID `json:"userId"`
	// Username is the publishing author's name.
	Username     string       `json:"username"`
	CampgroundID CampgroundID `json:"campgroundId"`
	IsRead       bool         `json:"isRead"`
	CreatedAt    time.Time    `json:"createdAt"`
}
