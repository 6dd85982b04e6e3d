package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"testing"
	"time"

	"yelpcamp/internal/api/handler/v1handler"
	"yelpcamp/internal/api/specs/v1specs"
	"yelpcamp/pkg/domain"
	"yelpcamp/pkg/serrors"
	mockstorage "yelpcamp/pkg/storage/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// helper to generate an RSA key pair and return the private key and PEM-encoded public key.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return priv, string(pubPEM)
}

func newSecHandlerForTest(t *testing.T, pubPEM string, users v1handler.UserLookup) *v1handler.SecHandler {
	t.Helper()
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM}, users)
	require.NoError(t, err, "NewSecHandler failed")

	return sh
}

func signJWTRS256(tb testing.TB, priv *rsa.PrivateKey, sub string, issuedAt time.Time, exp time.Time) string {
	tb.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(exp),
		NotBefore: jwt.NewNumericDate(issuedAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(priv)
	require.NoError(tb, err, "failed to sign token")

	return signed
}

func bearer(token string) v1specs.BearerAuth {
	return v1specs.BearerAuth{Token: token}
}

func TestNewSecHandler_InvalidKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "nope"}, nil)
	require.Error(t, err)
}

func TestHandleBearerAuth_ValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mockstorage.NewMockStorage(ctrl)
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM, users)

	uid := uuid.New()
	users.EXPECT().UserByID(gomock.Any(), domain.UserID(uid)).
		Return(&domain.User{ID: domain.UserID(uid), Username: "alice", IsAdmin: true}, nil)

	now := time.Now()
	tkn := signJWTRS256(t, priv, uid.String(), now, now.Add(1*time.Hour))

	ctx, err := sh.HandleBearerAuth(context.Background(), v1specs.ShowCampgroundOperation, bearer(tkn))
	require.NoError(t, err)

	// verify user id stored in context
	v := ctx.Value(v1handler.UserIDKey)
	require.NotNil(t, v, "expected userID in context")
	got, ok := v.(domain.UserID)
	require.True(t, ok, "userID in context has wrong type: %T", v)
	require.Equal(t, domain.UserID(uid), got)

	principal := v1handler.PrincipalFromContext(ctx)
	require.NotNil(t, principal)
	require.Equal(t, "alice", principal.Username)
	require.True(t, principal.IsAdmin)
}

func TestHandleBearerAuth_InvalidSignature(t *testing.T) {
	// handler uses pub from key A, but token signed with key B
	_, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM, nil)

	privOther, _ := genRSAKeys(t)
	now := time.Now()
	tkn := signJWTRS256(t, privOther, uuid.NewString(), now, now.Add(time.Hour))

	_, err := sh.HandleBearerAuth(context.Background(), v1specs.ShowCampgroundOperation, bearer(tkn))
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_ExpiredToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM, nil)

	now := time.Now()
	tkn := signJWTRS256(t, priv, uuid.NewString(), now.Add(-2*time.Hour), now.Add(-1*time.Hour))

	_, err := sh.HandleBearerAuth(context.Background(), v1specs.ShowCampgroundOperation, bearer(tkn))
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_InvalidSubject(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM, nil)

	now := time.Now()
	// non-UUID subject
	tkn := signJWTRS256(t, priv, "not-a-uuid", now, now.Add(time.Hour))

	_, err := sh.HandleBearerAuth(context.Background(), v1specs.ShowCampgroundOperation, bearer(tkn))
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_WrongAlgorithm(t *testing.T) {
	// create handler with RSA public key, but sign token with HS256
	_, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM, nil)

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err, "failed to sign HS256 token")

	_, err = sh.HandleBearerAuth(context.Background(), v1specs.ShowCampgroundOperation, bearer(signed))
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mockstorage.NewMockStorage(ctrl)
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM, users)

	users.EXPECT().UserByID(gomock.Any(), gomock.Any()).Return(nil, nil)

	now := time.Now()
	tkn := signJWTRS256(t, priv, uuid.NewString(), now, now.Add(time.Hour))
	_, err := sh.HandleBearerAuth(context.Background(), v1specs.ShowCampgroundOperation, bearer(tkn))
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_LookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mockstorage.NewMockStorage(ctrl)
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM, users)

	users.EXPECT().UserByID(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	now := time.Now()
	tkn := signJWTRS256(t, priv, uuid.NewString(), now, now.Add(time.Hour))
	_, err := sh.HandleBearerAuth(context.Background(), v1specs.ShowCampgroundOperation, bearer(tkn))
	require.Error(t, err)
	require.Nil(t, serrors.KindOf(err))
}
