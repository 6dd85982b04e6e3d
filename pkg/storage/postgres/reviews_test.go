package postgres_test

import (
	"context"
	"testing"

	"yelpcamp/pkg/domain"
	"yelpcamp/pkg/storage"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Reviews(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	owner := createUser(t, pgSQL, "owner")
	alice := createUser(t, pgSQL, "alice")
	bob := createUser(t, pgSQL, "bob")
	campground := createCampground(t, pgSQL, owner, "Reviewed")

	first, err := pgSQL.StoreReview(ctx, domain.Review{
		CampgroundID: campground.ID,
		Author:       alice.AuthorRef(),
		Rating:       3,
		Text:         "fine",
	})
	require.NoError(t, err)
	require.Equal(t, alice.Username, first.Author.Username)

	_, err = pgSQL.StoreReview(ctx, domain.Review{
		CampgroundID: campground.ID,
		Author:       bob.AuthorRef(),
		Rating:       5,
	})
	require.NoError(t, err)

	t.Run("second review by the same author is a duplicate", func(t *testing.T) {
		_, err := pgSQL.StoreReview(ctx, domain.Review{
			CampgroundID: campground.ID,
			Author:       alice.AuthorRef(),
			Rating:       1,
		})
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("lookup by author", func(t *testing.T) {
		got, err := pgSQL.ReviewByAuthor(ctx, campground.ID, alice.ID)
		require.NoError(t, err)
		require.Equal(t, first.ID, got.ID)

		none, err := pgSQL.ReviewByAuthor(ctx, campground.ID, owner.ID)
		require.NoError(t, err)
		require.Nil(t, none)
	})

	t.Run("update", func(t *testing.T) {
		rating := 4
		updated, err := pgSQL.UpdateReview(ctx, first.ID, storage.ReviewUpdates{Rating: &rating})
		require.NoError(t, err)
		require.Equal(t, 4, updated.Rating)
		require.Equal(t, "fine", updated.Text)
	})

	reviews, err := pgSQL.CampgroundReviews(ctx, campground.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	deleted, err := pgSQL.DeleteReview(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, deleted.ID)

	reviews, err = pgSQL.CampgroundReviews(ctx, campground.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.Equal(t, 5, reviews[0].Rating)
}
