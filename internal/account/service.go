// Package account implements registration, login, profiles, follows and the
// notification inbox.
package account

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"yelpcamp/internal/config"
	"yelpcamp/pkg/domain"
	"yelpcamp/pkg/password"
	"yelpcamp/pkg/serrors"
	"yelpcamp/pkg/storage"
)

const (
	msgLoginRequired    = "You need to be logged in to do that"
	msgUsernameTaken    = "A user with the given username is already registered"
	msgEmailTaken       = "A user with the given email is already registered"
	msgBadCredentials   = "Password or username is incorrect"
	msgUserMissing      = "User not found"
	msgSelfFollow       = "You can not follow yourself"
	msgNotificationGone = "Notification not found"
)

// SessionIssuer creates session tokens.
type SessionIssuer interface {
	Issue(userID domain.UserID) (string, error)
}

// Options configure the account service.
type Options struct {
	// AdminCode grants the admin flag at registration. Empty disables it.
	AdminCode string
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{AdminCode: cfg.AdminCode}
}

type service struct {
	options  Options
	storage  storage.Storage
	sessions SessionIssuer
}

// New creates an account Service.
func New(st storage.Storage, sessions SessionIssuer, options Options) Service {
	return &service{options: options, storage: st, sessions: sessions}
}

// Register creates an account and logs it in.
func (s *service) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "No username was given")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid email address")
	}
	if err := password.Validate(input.Password); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid password")
	}

	if existing, err := s.storage.UserByUsername(ctx, username); err != nil {
		return nil, fmt.Errorf("could not check username: %w", err)
	} else if existing != nil {
		return nil, serrors.With(serrors.ErrConflict, msgUsernameTaken)
	}
	if existing, err := s.storage.UserByEmail(ctx, email); err != nil {
		return nil, fmt.Errorf("could not check email: %w", err)
	} else if existing != nil {
		return nil, serrors.With(serrors.ErrConflict, msgEmailTaken)
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.StoreUser(ctx, domain.User{
		Username:     username,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		Avatar:       strings.TrimSpace(input.Avatar),
		PasswordHash: hash,
		IsAdmin:      s.isAdminCode(input.AdminCode),
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, msgUsernameTaken)
	}
	if err != nil {
		return nil, fmt.Errorf("could not store user: %w", err)
	}

	return s.session(user)
}

// Login checks the credentials and issues a session.
func (s *service) Login(ctx context.Context, username, pw string) (*Session, error) {
	user, err := s.storage.UserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, msgBadCredentials)
	}
	if err := password.Compare(user.PasswordHash, pw); err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, msgBadCredentials)
	}

	return s.session(user)
}

// Profile returns a user with the campgrounds they published.
func (s *service) Profile(ctx context.Context, userID domain.UserID) (*Profile, error) {
	user, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}

	campgrounds, err := s.storage.CampgroundsByAuthor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get campgrounds: %w", err)
	}
	followers, err := s.storage.Followers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get followers: %w", err)
	}

	return &Profile{User: user, Campgrounds: campgrounds, Followers: len(followers)}, nil
}

// Follow makes principal a follower of userID. Following twice is a no-op.
func (s *service) Follow(ctx context.Context, principal *domain.Principal, userID domain.UserID) error {
	if err := s.checkFollow(ctx, principal, userID); err != nil {
		return err
	}
	if err := s.storage.AddFollower(ctx, userID, principal.ID); err != nil {
		return fmt.Errorf("could not follow user: %w", err)
	}

	return nil
}

// Unfollow removes principal from the followers of userID.
func (s *service) Unfollow(ctx context.Context, principal *domain.Principal, userID domain.UserID) error {
	if err := s.checkFollow(ctx, principal, userID); err != nil {
		return err
	}
	if err := s.storage.RemoveFollower(ctx, userID, principal.ID); err != nil {
		return fmt.Errorf("could not unfollow user: %w", err)
	}

	return nil
}

// Notifications returns the principal's unread notifications, newest first.
func (s *service) Notifications(ctx context.Context, principal *domain.Principal) ([]domain.Notification, error) {
	if principal == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, msgLoginRequired)
	}

	res, err := s.storage.UnreadNotifications(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get notifications: %w", err)
	}

	return res, nil
}

// ReadNotification marks one of the principal's notifications as read and
// returns it, so the caller can navigate to the campground it refers to.
func (s *service) ReadNotification(ctx context.Context,
	principal *domain.Principal,
	ID domain.NotificationID) (*domain.Notification, error) {
	if principal == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, msgLoginRequired)
	}

	n, err := s.storage.MarkNotificationRead(ctx, principal.ID, ID)
	if err != nil {
		return nil, fmt.Errorf("could not mark notification read: %w", err)
	}
	if n == nil {
		return nil, serrors.With(serrors.ErrNotFound, msgNotificationGone)
	}

	return n, nil
}

func (s *service) checkFollow(ctx context.Context, principal *domain.Principal, userID domain.UserID) error {
	if principal == nil {
		return serrors.With(serrors.ErrUnauthorized, msgLoginRequired)
	}
	if principal.ID == userID {
		return serrors.With(serrors.ErrBadRequest, msgSelfFollow)
	}
	_, err := s.user(ctx, userID)

	return err
}

func (s *service) user(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, msgUserMissing)
	}

	return user, nil
}

func (s *service) session(user *domain.User) (*Session, error) {
	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("could not issue session: %w", err)
	}

	return &Session{User: user, Token: token}, nil
}

func (s *service) isAdminCode(code string) bool {
	if s.options.AdminCode == "" || code == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(code), []byte(s.options.AdminCode)) == 1
}
