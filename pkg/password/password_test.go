package password_test

import (
	"testing"

	"yelpcamp/pkg/password"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.Hash("s3cret!")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret!", hash)

	require.NoError(t, password.Compare(hash, "s3cret!"))
	require.ErrorIs(t, password.Compare(hash, "wrong"), password.ErrMismatch)
}

func TestHash_IsSalted(t *testing.T) {
	a, err := password.Hash("same")
	require.NoError(t, err)
	b, err := password.Hash("same")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestCompare_MalformedHash(t *testing.T) {
	err := password.Compare("not-a-bcrypt-hash", "x")
	require.Error(t, err)
	require.NotErrorIs(t, err, password.ErrMismatch)
}

func TestValidate(t *testing.T) {
	require.ErrorIs(t, password.Validate("12345"), password.ErrTooShort)
	require.NoError(t, password.Validate("123456"))
}
