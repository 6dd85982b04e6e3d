package session_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"yelpcamp/internal/session"
	"yelpcamp/pkg/domain"
	"yelpcamp/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// genRSAKeys returns PEM encoded private and public keys.
func genRSAKeys(tb testing.TB) (string, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err)
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return string(privPEM), string(pubPEM)
}

func TestIssueAndVerify(t *testing.T) {
	privPEM, pubPEM := genRSAKeys(t)
	opts := session.Options{PrivateKey: privPEM, PublicKey: pubPEM, TTL: time.Hour}

	issuer, err := session.NewIssuer(opts)
	require.NoError(t, err)
	verifier, err := session.NewVerifier(opts)
	require.NoError(t, err)

	userID := domain.UserID(uuid.New())
	tkn, err := issuer.Issue(userID)
	require.NoError(t, err)

	got, err := verifier.Verify(tkn)
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestVerify_Expired(t *testing.T) {
	privPEM, pubPEM := genRSAKeys(t)
	opts := session.Options{PrivateKey: privPEM, PublicKey: pubPEM}

	issuer, err := session.NewIssuer(opts)
	require.NoError(t, err)
	verifier, err := session.NewVerifier(opts)
	require.NoError(t, err)

	tkn, err := issuer.IssueWithTTL(domain.UserID(uuid.New()), -time.Minute)
	require.NoError(t, err)

	_, err = verifier.Verify(tkn)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
	require.ErrorContains(t, err, "session expired")
}

func TestVerify_WrongKey(t *testing.T) {
	privA, _ := genRSAKeys(t)
	_, pubB := genRSAKeys(t)

	issuer, err := session.NewIssuer(session.Options{PrivateKey: privA, TTL: time.Hour})
	require.NoError(t, err)
	verifier, err := session.NewVerifier(session.Options{PublicKey: pubB})
	require.NoError(t, err)

	tkn, err := issuer.Issue(domain.UserID(uuid.New()))
	require.NoError(t, err)

	_, err = verifier.Verify(tkn)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	_, pubPEM := genRSAKeys(t)
	verifier, err := session.NewVerifier(session.Options{PublicKey: pubPEM})
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tkn, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = verifier.Verify(tkn)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestVerify_BadSubject(t *testing.T) {
	privPEM, pubPEM := genRSAKeys(t)
	verifier, err := session.NewVerifier(session.Options{PublicKey: pubPEM})
	require.NoError(t, err)

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privPEM))
	require.NoError(t, err)
	claims := jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tkn, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)

	_, err = verifier.Verify(tkn)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
	require.ErrorContains(t, err, "invalid session subject")
}

func TestNewIssuer_InvalidKey(t *testing.T) {
	_, err := session.NewIssuer(session.Options{PrivateKey: "garbage"})
	require.Error(t, err)

	_, err = session.NewVerifier(session.Options{PublicKey: "garbage"})
	require.Error(t, err)
}
