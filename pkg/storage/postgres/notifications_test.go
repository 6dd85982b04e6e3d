package postgres_test

import (
	"context"
	"testing"

	"yelpcamp/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Notifications(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	dave := createUser(t, pgSQL, "dave")
	carol := createUser(t, pgSQL, "carol")
	older := createCampground(t, pgSQL, dave, "Older")
	newer := createCampground(t, pgSQL, dave, "Newer")

	n1, err := pgSQL.StoreNotification(ctx, domain.Notification{
		UserID:       carol.ID,
		Username:     dave.Username,
		CampgroundID: older.ID,
	})
	require.NoError(t, err)
	require.False(t, n1.IsRead)

	n2, err := pgSQL.StoreNotification(ctx, domain.Notification{
		UserID:       carol.ID,
		Username:     dave.Username,
		CampgroundID: newer.ID,
	})
	require.NoError(t, err)

	unread, err := pgSQL.UnreadNotifications(ctx, carol.ID)
	require.NoError(t, err)
	require.Len(t, unread, 2)
	require.Equal(t, n2.ID, unread[0].ID)

	t.Run("only the recipient can mark as read", func(t *testing.T) {
		got, err := pgSQL.MarkNotificationRead(ctx, dave.ID, n1.ID)
		require.NoError(t, err)
		require.Nil(t, got)
	})

	read, err := pgSQL.MarkNotificationRead(ctx, carol.ID, n1.ID)
	require.NoError(t, err)
	require.True(t, read.IsRead)
	require.Equal(t, older.ID, read.CampgroundID)

	unread, err = pgSQL.UnreadNotifications(ctx, carol.ID)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	require.Equal(t, n2.ID, unread[0].ID)
}
