package token_test

import (
	"encoding/hex"
	"testing"

	"yelpcamp/pkg/token"

	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	tkn, err := token.Hex(20)
	require.NoError(t, err)
	require.Len(t, tkn, 40)

	raw, err := hex.DecodeString(tkn)
	require.NoError(t, err)
	require.Len(t, raw, 20)
}

func TestHex_Unique(t *testing.T) {
	seen := map[string]bool{}
	for range 100 {
		tkn, err := token.Hex(20)
		require.NoError(t, err)
		require.False(t, seen[tkn])
		seen[tkn] = true
	}
}

func TestHex_InvalidLength(t *testing.T) {
	_, err := token.Hex(0)
	require.Error(t, err)
}
