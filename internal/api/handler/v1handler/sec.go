package v1handler

import (
	"context"
	"fmt"

	"yelpcamp/internal/api/specs/v1specs"
	"yelpcamp/internal/config"
	"yelpcamp/internal/session"
	"yelpcamp/pkg/domain"
	"yelpcamp/pkg/logger"
	"yelpcamp/pkg/serrors"

	"go.uber.org/zap"
)

type CtxKey string

const (
	// UserIDKey holds the domain.UserID of an authenticated request.
	UserIDKey CtxKey = "UserID"

	principalKey CtxKey = "Principal"
)

type SecHandlerOptions struct {
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// UserLookup resolves the user behind a verified session.
type UserLookup interface {
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
}

type SecHandler struct {
	verifier *session.Verifier
	users    UserLookup
}

func NewSecHandler(options *SecHandlerOptions, users UserLookup) (*SecHandler, error) {
	verifier, err := session.NewVerifier(session.Options{PublicKey: options.PublicKey})
	if err != nil {
		return nil, fmt.Errorf("could not create session verifier: %w", err)
	}

	return &SecHandler{verifier: verifier, users: users}, nil
}

// Ensure SecHandler implements v1specs.SecurityHandler.
var _ v1specs.SecurityHandler = (*SecHandler)(nil)

// HandleBearerAuth verifies the session token and stores the user ID and
// principal of its holder in the returned context. Operations that allow
// anonymous access only reach it when a bearer token was sent.
func (s *SecHandler) HandleBearerAuth(
	ctx context.Context,
	_ v1specs.OperationName,
	t v1specs.BearerAuth) (context.Context, error) {
	userID, err := s.verifier.Verify(t.Token)
	if err != nil {
		return ctx, err
	}
	ctx = context.WithValue(ctx, UserIDKey, userID)

	user, err := s.users.UserByID(ctx, userID)
	if err != nil {
		return ctx, fmt.Errorf("could not load session user: %w", err)
	}
	if user == nil {
		return ctx, serrors.With(serrors.ErrUnauthorized, "invalid session")
	}

	ctx = context.WithValue(ctx, principalKey, user.Principal())
	ctx = logger.WithFields(ctx, zap.Stringer("userID", userID))

	return ctx, nil
}

// PrincipalFromContext returns the authenticated principal, or nil for
// anonymous requests.
func PrincipalFromContext(ctx context.Context) *domain.Principal {
	p, _ := ctx.Value(principalKey).(*domain.Principal)

	return p
}
