package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical textual form of the ID.
func (id UserID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical textual form.
func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes an ID from its textual form.
func (id *UserID) UnmarshalText(data []byte) error { return (*uuid.UUID)(id).UnmarshalText(data) }

// User is a registered account.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID `json:"id"`
	// Username is the unique login name, also copied into author snapshots.
	Username string `json:"username"`
	// FirstName of the user as provided at registration.
	FirstName string `json:"firstName"`
	// LastName of the user as provided at registration.
	LastName string `json:"lastName"`
	// Email is the unique address used for password recovery.
	Email string `json:"email"`
	// Avatar is an optional image URL.
	Avatar string `json:"avatar"`
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`
	// IsAdmin grants override mutation rights on every owned resource.
	// It is set once at registration.
	IsAdmin bool `json:"isAdmin"`

	// ResetToken is the live password reset token, empty when none is issued.
	ResetToken string `json:"-"`
	// ResetTokenExpiresAt is the absolute expiry of ResetToken.
	ResetTokenExpiresAt time.Time `json:"-"`

	// CreatedAt is the time when the user registered.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the user was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Principal returns the acting identity of u.
func (u User) Principal() *Principal {
	return &Principal{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}
}

// AuthorRef returns the author snapshot used when u creates a record.
func (u User) AuthorRef() AuthorRef {
	return AuthorRef{ID: u.ID, Username: u.Username}
}

// Principal is the authenticated actor of a request. A nil *Principal means
// the request is anonymous.
type Principal struct {
	ID       UserID
	Username string
	IsAdmin  bool
}

// AuthorRef is the author snapshot denormalized into owned records. Username is
// the author's name at record creation time; it is not kept in sync with later
// username changes.
type AuthorRef struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
}

// AuthorRef returns the author snapshot for records created by p.
func (p *Principal) AuthorRef() AuthorRef {
	return AuthorRef{ID: p.ID, Username: p.Username}
}
