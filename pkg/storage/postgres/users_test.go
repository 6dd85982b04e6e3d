package postgres_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"yelpcamp/pkg/domain"
	"yelpcamp/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreUser(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreUser(ctx, domain.User{
		Username:     "alice",
		FirstName:    "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		IsAdmin:      true,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, uuid.UUID(stored.ID))
	require.True(t, stored.IsAdmin)
	require.False(t, stored.CreatedAt.IsZero())

	t.Run("duplicate username ignores case", func(t *testing.T) {
		_, err := pgSQL.StoreUser(ctx, domain.User{
			Username:     "ALICE",
			Email:        "other@example.com",
			PasswordHash: "hash",
		})
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := pgSQL.StoreUser(ctx, domain.User{
			Username:     "alice2",
			Email:        "Alice@Example.com",
			PasswordHash: "hash",
		})
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})
}

func TestPgSQL_UserLookups(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := createUser(t, pgSQL, "bob")

	byID, err := pgSQL.UserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Username, byID.Username)

	byName, err := pgSQL.UserByUsername(ctx, strings.ToUpper(user.Username))
	require.NoError(t, err)
	require.Equal(t, user.ID, byName.ID)

	byEmail, err := pgSQL.UserByEmail(ctx, strings.ToUpper(user.Email))
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)

	missing, err := pgSQL.UserByID(ctx, domain.UserID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)

	missing, err = pgSQL.UserByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_ResetTokenLifecycle(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := createUser(t, pgSQL, "carol")
	now := time.Now()
	token := "deadbeef"
	expires := now.Add(time.Hour)

	updated, err := pgSQL.UpdateUser(ctx, user.ID, storage.UserUpdates{
		ResetToken:          &token,
		ResetTokenExpiresAt: &expires,
	})
	require.NoError(t, err)
	require.Equal(t, token, updated.ResetToken)
	require.WithinDuration(t, expires, updated.ResetTokenExpiresAt, time.Millisecond)

	t.Run("live token resolves", func(t *testing.T) {
		got, err := pgSQL.UserByResetToken(ctx, token, now)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, user.ID, got.ID)
	})

	t.Run("expired token does not resolve", func(t *testing.T) {
		got, err := pgSQL.UserByResetToken(ctx, token, expires.Add(time.Second))
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("expiry boundary is exclusive", func(t *testing.T) {
		got, err := pgSQL.UserByResetToken(ctx, token, updated.ResetTokenExpiresAt)
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("conditional update requires the live token", func(t *testing.T) {
		hash := "stolen-hash"
		wrong := "not-the-token"
		got, err := pgSQL.UpdateUser(ctx, user.ID, storage.UserUpdates{
			PasswordHash:     &hash,
			WhileResetToken:  &wrong,
			ResetTokenLiveAt: now,
		})
		require.NoError(t, err)
		require.Nil(t, got)

		got, err = pgSQL.UpdateUser(ctx, user.ID, storage.UserUpdates{
			PasswordHash:     &hash,
			WhileResetToken:  &token,
			ResetTokenLiveAt: expires.Add(time.Second),
		})
		require.NoError(t, err)
		require.Nil(t, got)

		current, err := pgSQL.UserByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotEqual(t, hash, current.PasswordHash)
	})

	t.Run("consuming the token twice matches once", func(t *testing.T) {
		other := createUser(t, pgSQL, "dave")
		otherToken := "dave-token"
		_, err := pgSQL.UpdateUser(ctx, other.ID, storage.UserUpdates{
			ResetToken:          &otherToken,
			ResetTokenExpiresAt: &expires,
		})
		require.NoError(t, err)

		empty := ""
		hash := "dave-new-hash"
		consume := storage.UserUpdates{
			PasswordHash:     &hash,
			ResetToken:       &empty,
			WhileResetToken:  &otherToken,
			ResetTokenLiveAt: now,
		}
		first, err := pgSQL.UpdateUser(ctx, other.ID, consume)
		require.NoError(t, err)
		require.NotNil(t, first)
		require.Equal(t, hash, first.PasswordHash)

		second, err := pgSQL.UpdateUser(ctx, other.ID, consume)
		require.NoError(t, err)
		require.Nil(t, second)
	})

	t.Run("clearing removes token and expiry", func(t *testing.T) {
		empty := ""
		hash := "new-hash"
		cleared, err := pgSQL.UpdateUser(ctx, user.ID, storage.UserUpdates{
			PasswordHash: &hash,
			ResetToken:   &empty,
		})
		require.NoError(t, err)
		require.Empty(t, cleared.ResetToken)
		require.True(t, cleared.ResetTokenExpiresAt.IsZero())
		require.Equal(t, "new-hash", cleared.PasswordHash)

		got, err := pgSQL.UserByResetToken(ctx, token, now)
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("unknown user", func(t *testing.T) {
		got, err := pgSQL.UpdateUser(ctx, domain.UserID(uuid.New()), storage.UserUpdates{})
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func TestPgSQL_Followers(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	dave := createUser(t, pgSQL, "dave")
	carol := createUser(t, pgSQL, "carol")
	erin := createUser(t, pgSQL, "erin")

	require.NoError(t, pgSQL.AddFollower(ctx, dave.ID, carol.ID))
	require.NoError(t, pgSQL.AddFollower(ctx, dave.ID, erin.ID))
	// following twice is a no-op
	require.NoError(t, pgSQL.AddFollower(ctx, dave.ID, carol.ID))

	followers, err := pgSQL.Followers(ctx, dave.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)
	require.Equal(t, carol.ID, followers[0].ID)
	require.Equal(t, erin.ID, followers[1].ID)

	require.NoError(t, pgSQL.RemoveFollower(ctx, dave.ID, carol.ID))

	followers, err = pgSQL.Followers(ctx, dave.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	require.Equal(t, erin.ID, followers[0].ID)

	none, err := pgSQL.Followers(ctx, carol.ID)
	require.NoError(t, err)
	require.Empty(t, none)
}
