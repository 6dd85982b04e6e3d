package postgres_test

import (
	"context"
	"fmt"
	"testing"

	"yelpcamp/pkg/domain"
	"yelpcamp/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_CampgroundCRUD(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	author := createUser(t, pgSQL, "bob")
	stored := createCampground(t, pgSQL, author, "Granite Creek")
	require.Equal(t, author.ID, stored.Author.ID)
	require.Equal(t, author.Username, stored.Author.Username)
	require.Zero(t, stored.Rating)

	t.Run("update touches only provided fields", func(t *testing.T) {
		name := "Granite Creek North"
		lat, lng := 37.7, -119.5
		updated, err := pgSQL.UpdateCampground(ctx, stored.ID, storage.CampgroundUpdates{
			Name: &name,
			Lat:  &lat,
			Lng:  &lng,
		})
		require.NoError(t, err)
		require.Equal(t, name, updated.Name)
		require.Equal(t, stored.Price, updated.Price)
		require.Equal(t, stored.Author, updated.Author)
		require.InDelta(t, lat, updated.Lat, 1e-9)
		require.False(t, updated.UpdatedAt.IsZero())
	})

	t.Run("update unknown campground", func(t *testing.T) {
		name := "x"
		updated, err := pgSQL.UpdateCampground(ctx, domain.CampgroundID(uuid.New()), storage.CampgroundUpdates{Name: &name})
		require.NoError(t, err)
		require.Nil(t, updated)
	})

	t.Run("delete cascades to children", func(t *testing.T) {
		other := createCampground(t, pgSQL, author, "Doomed")
		comment, err := pgSQL.StoreComment(ctx, domain.Comment{CampgroundID: other.ID, Author: author.AuthorRef(), Text: "hi"})
		require.NoError(t, err)
		review, err := pgSQL.StoreReview(ctx, domain.Review{CampgroundID: other.ID, Author: author.AuthorRef(), Rating: 3})
		require.NoError(t, err)

		deleted, err := pgSQL.DeleteCampground(ctx, other.ID)
		require.NoError(t, err)
		require.Equal(t, other.ID, deleted.ID)

		gotComment, err := pgSQL.CommentByID(ctx, comment.ID)
		require.NoError(t, err)
		require.Nil(t, gotComment)
		gotReview, err := pgSQL.ReviewByID(ctx, review.ID)
		require.NoError(t, err)
		require.Nil(t, gotReview)

		again, err := pgSQL.DeleteCampground(ctx, other.ID)
		require.NoError(t, err)
		require.Nil(t, again)
	})
}

func TestPgSQL_Campgrounds_Pagination(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	author := createUser(t, pgSQL, "pager")
	for i := range 5 {
		createCampground(t, pgSQL, author, fmt.Sprintf("camp-%d", i))
	}

	first, err := pgSQL.Campgrounds(ctx, storage.CampgroundCursor{}, 2)
	require.NoError(t, err)
	require.Len(t, first.Campgrounds, 2)
	require.NotNil(t, first.NextCursor)
	require.False(t, first.Campgrounds[0].CreatedAt.Before(first.Campgrounds[1].CreatedAt))

	seen := map[domain.CampgroundID]bool{}
	page := first
	for {
		for _, c := range page.Campgrounds {
			seen[c.ID] = true
		}
		if page.NextCursor == nil {
			break
		}
		page, err = pgSQL.Campgrounds(ctx, *page.NextCursor, 2)
		require.NoError(t, err)
	}
	require.Len(t, seen, 5)

	byAuthor, err := pgSQL.CampgroundsByAuthor(ctx, author.ID)
	require.NoError(t, err)
	require.Len(t, byAuthor, 5)

	empty, err := pgSQL.Campgrounds(ctx, storage.CampgroundCursor{}, 0)
	require.NoError(t, err)
	require.Empty(t, empty.Campgrounds)
}

func TestPgSQL_Campgrounds_PaginationWithSharedCreationTime(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	author := createUser(t, pgSQL, "burst")
	// CURRENT_TIMESTAMP is fixed for a transaction, so every row shares created_at
	require.NoError(t, pgSQL.WithTx(ctx, func(tx storage.AllStorage) error {
		for i := range 5 {
			if _, err := tx.StoreCampground(ctx, domain.Campground{
				Name:   fmt.Sprintf("burst-%d", i),
				Author: author.AuthorRef(),
			}); err != nil {
				return err
			}
		}

		return nil
	}))

	seen := map[domain.CampgroundID]bool{}
	var cursor storage.CampgroundCursor
	for pages := 0; ; pages++ {
		require.Less(t, pages, 5)

		page, err := pgSQL.Campgrounds(ctx, cursor, 2)
		require.NoError(t, err)
		for _, c := range page.Campgrounds {
			require.False(t, seen[c.ID], "campground %s listed twice", c.ID)
			seen[c.ID] = true
		}
		if page.NextCursor == nil {
			break
		}
		cursor = *page.NextCursor
	}
	require.Len(t, seen, 5)
}
