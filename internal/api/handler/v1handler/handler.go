// Package v1handler implements the v1 JSON API on top of the campground,
// account, password reset and image upload services.
package v1handler

import (
	"context"

	"yelpcamp/internal/account"
	"yelpcamp/internal/api/specs/v1specs"
	"yelpcamp/internal/campground"
	"yelpcamp/internal/passwordreset"
	"yelpcamp/pkg/domain"
	"yelpcamp/pkg/imagestore"
)

// PasswordReset is the forgot-password flow used by the password routes.
type PasswordReset interface {
	Issue(ctx context.Context, email string) error
	Validate(ctx context.Context, token string) (*domain.User, error)
	Consume(ctx context.Context, token, newPassword, confirm string) (*passwordreset.Result, error)
}

// Deps groups the services the handler delegates to.
type Deps struct {
	Campgrounds   campground.Service
	Accounts      account.Service
	PasswordReset PasswordReset
	Images        imagestore.Store
}

type Handler struct {
	Deps
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps) *Handler {
	return &Handler{Deps: deps}
}
