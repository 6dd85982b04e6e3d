package account

import (
	"context"

	"yelpcamp/pkg/domain"
)

// RegisterInput carries the registration form.
type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	Avatar    string
	// AdminCode grants the admin flag when it matches the configured code.
	AdminCode string
}

// Session is an authenticated user together with their session token.
type Session struct {
	User  *domain.User
	Token string
}

// Profile is the public page of a user.
type Profile struct {
	User        *domain.User
	Campgrounds []domain.Campground
	Followers   int
}

// Service manages accounts, follows and the notification inbox.
//
//go:generate mockgen -package mockaccount -source=interface.go -destination=mock/mockaccount.go *
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*Session, error)
	Login(ctx context.Context, username, password string) (*Session, error)
	Profile(ctx context.Context, userID domain.UserID) (*Profile, error)
	Follow(ctx context.Context, principal *domain.Principal, userID domain.UserID) error
	Unfollow(ctx context.Context, principal *domain.Principal, userID domain.UserID) error
	Notifications(ctx context.Context, principal *domain.Principal) ([]domain.Notification, error)
	ReadNotification(ctx context.Context,
		principal *domain.Principal,
		ID domain.NotificationID) (*domain.Notification, error)
}
