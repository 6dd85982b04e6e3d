package storage

import (
	"context"
	"time"

	"yelpcamp/pkg/domain"
)

// UserUpdates describes the optional fields of a user that can be changed.
// Only non-nil fields are written.
type UserUpdates struct {
	// PasswordHash replaces the stored credential hash.
	PasswordHash *string
	// ResetToken sets the live password reset token. An empty string clears it
	// (set to NULL) together with its expiry.
	ResetToken *string
	// ResetTokenExpiresAt sets the reset token expiry. Ignored when ResetToken
	// clears the token.
	ResetTokenExpiresAt *time.Time

	// WhileResetToken makes the update conditional on the user still holding
	// this reset token, unexpired at ResetTokenLiveAt. A user that no longer
	// matches is reported as missing.
	WhileResetToken  *string
	ResetTokenLiveAt time.Time
}

// UserStorage defines persistence operations for users and the follower graph.
type UserStorage interface {
	// StoreUser inserts a new user. It returns ErrDuplicate when the username or
	// email (compared case-insensitively) is already taken.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID fetches a user by its ID.
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
	// UserByUsername fetches a user by username, case-insensitively.
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
	// UserByEmail fetches a user by email, case-insensitively.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UserByResetToken fetches the user holding the given reset token, provided
	// the token expires strictly after now.
	UserByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error)
	// UpdateUser applies updates to the user and returns the updated row, or nil
	// when the user does not exist.
	UpdateUser(ctx context.Context, ID domain.UserID, updates UserUpdates) (*domain.User, error)

	// AddFollower records followerID as a follower of userID. Following twice
	// is a no-op.
	AddFollower(ctx context.Context, userID domain.UserID, followerID domain.UserID) error
	// RemoveFollower removes followerID from the followers of userID.
	RemoveFollower(ctx context.Context, userID domain.UserID, followerID domain.UserID) error
	// Followers returns the followers of userID ordered by follow time.
	Followers(ctx context.Context, userID domain.UserID) ([]domain.User, error)
}
