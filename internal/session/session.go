// Package session issues and verifies the RS256 bearer tokens that identify a
// user between requests.
package session

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"yelpcamp/internal/config"
	"yelpcamp/pkg/domain"
	"yelpcamp/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Options configure session signing and verification.
type Options struct {
	// PrivateKey is the PEM encoded RSA key used to sign sessions. Only needed to issue.
	PrivateKey string
	// PublicKey is the PEM encoded RSA key used to verify sessions.
	PublicKey string
	// TTL is the lifetime of an issued session.
	TTL time.Duration
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PrivateKey: cfg.JWT.PrivateKey,
		PublicKey:  cfg.JWT.PublicKey,
		TTL:        cfg.JWT.TTL,
	}
}

// Issuer signs session tokens.
type Issuer struct {
	key *rsa.PrivateKey
	ttl time.Duration
	now func() time.Time
}

// NewIssuer parses the private key from options.
func NewIssuer(options Options) (*Issuer, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(options.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}

	return &Issuer{key: key, ttl: options.TTL, now: time.Now}, nil
}

// Issue returns a signed session for userID valid for the configured TTL.
func (i *Issuer) Issue(userID domain.UserID) (string, error) {
	return i.IssueWithTTL(userID, i.ttl)
}

// IssueWithTTL returns a signed session for userID valid for ttl.
func (i *Issuer) IssueWithTTL(userID domain.UserID, ttl time.Duration) (string, error) {
	now := i.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("could not sign session: %w", err)
	}

	return signed, nil
}

// Verifier checks session tokens.
type Verifier struct {
	key *rsa.PublicKey
}

// NewVerifier parses the public key from options.
func NewVerifier(options Options) (*Verifier, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(options.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &Verifier{key: key}, nil
}

// Verify validates the signature and lifetime of token and returns the user it
// was issued for. Every failure carries serrors.ErrUnauthorized.
func (v *Verifier) Verify(token string) (domain.UserID, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "session expired")
		}

		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid session")
	}
	if !parsed.Valid {
		return domain.UserID{}, serrors.With(serrors.ErrUnauthorized, "invalid session")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid session subject")
	}

	return domain.UserID(id), nil
}
