// Package passwordreset implements the forgot-password token flow.
//
// A user's reset token moves through NoToken -> Issued -> Consumed, or simply
// stops resolving once it expires. Issuing a new token overwrites the previous
// one. The token is stored before the reset mail is sent, so it stays usable
// even when delivery fails.
package passwordreset

import (
	"context"
	"fmt"
	"strings"
	"time"

	"yelpcamp/internal/config"
	"yelpcamp/pkg/domain"
	"yelpcamp/pkg/logger"
	"yelpcamp/pkg/mailer"
	"yelpcamp/pkg/password"
	"yelpcamp/pkg/serrors"
	"yelpcamp/pkg/storage"
	"yelpcamp/pkg/token"

	"github.com/riverqueue/river"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	msgNoAccount       = "No account with that email address exists."
	msgInvalidToken    = "Password reset token is invalid or has expired."
	msgPasswordsDiffer = "Passwords do not match."
)

// Store is the persistence the flow needs.
type Store interface {
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	UserByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error)
	UpdateUser(ctx context.Context, ID domain.UserID, updates storage.UserUpdates) (*domain.User, error)
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}

// SessionIssuer establishes a session for a user whose password was reset.
type SessionIssuer interface {
	Issue(userID domain.UserID) (string, error)
}

// Options configure the flow.
type Options struct {
	// TokenTTL is the lifetime of an issued token.
	TokenTTL time.Duration
	// TokenBytes is the amount of random bytes per token.
	TokenBytes int
	// BaseURL prefixes the reset link sent by mail.
	BaseURL string
	// MailMaxAttempts bounds the retries of the confirmation mail job.
	MailMaxAttempts int

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
	// Tokens generates tokens. Defaults to token.Hex.
	Tokens token.Generator
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		TokenTTL:        cfg.PasswordReset.TokenTTL,
		TokenBytes:      cfg.PasswordReset.TokenBytes,
		BaseURL:         cfg.PasswordReset.BaseURL,
		MailMaxAttempts: cfg.Worker.MailMaxAttempts,
	}
}

// Result is the outcome of a successful Consume.
type Result struct {
	User *domain.User
	// Session is a freshly issued session token for User.
	Session string
}

// Flow issues, validates and consumes reset tokens.
type Flow struct {
	options  Options
	store    Store
	mailer   mailer.Mailer
	sessions SessionIssuer
	tracer   trace.Tracer
}

// New creates a Flow.
func New(store Store, m mailer.Mailer, sessions SessionIssuer, options Options) *Flow {
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.Tokens == nil {
		options.Tokens = token.Hex
	}
	if options.TokenBytes <= 0 {
		options.TokenBytes = 20
	}
	if options.TokenTTL <= 0 {
		options.TokenTTL = time.Hour
	}

	return &Flow{
		options:  options,
		store:    store,
		mailer:   m,
		sessions: sessions,
		tracer:   otel.Tracer("yelpcamp/internal/passwordreset"),
	}
}

// Issue creates a reset token for the account registered with email and mails
// the reset link to it. A mail failure is returned as ErrExternalService while
// the stored token remains valid.
func (f *Flow) Issue(ctx context.Context, email string) error {
	ctx, span := f.tracer.Start(ctx, "passwordreset.Issue")
	defer span.End()

	user, err := f.store.UserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return serrors.Wrap(serrors.ErrExternalService, err, "could not look up account")
	}
	if user == nil {
		return serrors.With(serrors.ErrNotFound, msgNoAccount)
	}
	span.SetAttributes(attribute.String("user.id", user.ID.String()))

	tkn, err := f.options.Tokens(f.options.TokenBytes)
	if err != nil {
		return fmt.Errorf("could not generate reset token: %w", err)
	}
	expiresAt := f.options.Now().Add(f.options.TokenTTL)

	if _, err := f.store.UpdateUser(ctx, user.ID, storage.UserUpdates{
		ResetToken:          &tkn,
		ResetTokenExpiresAt: &expiresAt,
	}); err != nil {
		return serrors.Wrap(serrors.ErrExternalService, err, "could not store reset token")
	}

	if err := f.mailer.Send(ctx, f.resetMail(user.Email, tkn)); err != nil {
		span.RecordError(err)

		return serrors.Wrap(serrors.ErrExternalService, err, "could not send password reset email")
	}

	return nil
}

// Validate returns the holder of a live token. Unknown and expired tokens are
// reported identically with ErrInvalidToken.
func (f *Flow) Validate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, serrors.With(serrors.ErrInvalidToken, msgInvalidToken)
	}

	user, err := f.store.UserByResetToken(ctx, token, f.options.Now())
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrExternalService, err, "could not look up reset token")
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrInvalidToken, msgInvalidToken)
	}

	return user, nil
}

// Consume replaces the password of the token holder and clears the token, so
// it can not be used again. A password/confirmation mismatch leaves the token
// untouched. The confirmation mail is queued best effort; failing to queue it
// does not undo the password change.
func (f *Flow) Consume(ctx context.Context, token, newPassword, confirm string) (*Result, error) {
	ctx, span := f.tracer.Start(ctx, "passwordreset.Consume")
	defer span.End()

	user, err := f.Validate(ctx, token)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("user.id", user.ID.String()))

	if newPassword != confirm {
		return nil, serrors.With(serrors.ErrBadRequest, msgPasswordsDiffer)
	}
	if err := password.Validate(newPassword); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid password")
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return nil, err
	}
	cleared := ""
	updated, err := f.store.UpdateUser(ctx, user.ID, storage.UserUpdates{
		PasswordHash:     &hash,
		ResetToken:       &cleared,
		WhileResetToken:  &token,
		ResetTokenLiveAt: f.options.Now(),
	})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrExternalService, err, "could not update password")
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrInvalidToken, msgInvalidToken)
	}

	sess, err := f.sessions.Issue(updated.ID)
	if err != nil {
		return nil, fmt.Errorf("could not issue session: %w", err)
	}

	if _, err := f.store.AddJob(ctx, mailer.NewJob(confirmationMail(updated.Email), f.options.MailMaxAttempts), nil); err != nil {
		span.RecordError(err)
		logger.Error(ctx, "could not queue password change confirmation",
			zap.Stringer("userID", updated.ID),
			zap.Error(err))
	}

	return &Result{User: updated, Session: sess}, nil
}

func (f *Flow) resetMail(to, tkn string) mailer.Message {
	link := strings.TrimRight(f.options.BaseURL, "/") + "/reset/" + tkn

	return mailer.Message{
		To:      to,
		Subject: "Yelpcamp Password Reset",
		Body: "You are receiving this because you (or someone else) have requested the reset of the password for your account.\n\n" +
			"Please click on the following link, or paste this into your browser to complete the process:\n\n" +
			link + "\n\n" +
			"If you did not request this, please ignore this email and your password will remain unchanged.\n",
	}
}

func confirmationMail(to string) mailer.Message {
	return mailer.Message{
		To:      to,
		Subject: "Your password has been changed",
		Body:    "Hello,\n\nThis is a confirmation that the password for your account " + to + " has just been changed.\n",
	}
}
