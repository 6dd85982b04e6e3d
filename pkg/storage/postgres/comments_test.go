package postgres_test

import (
	"context"
	"testing"

	"yelpcamp/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Comments(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	author := createUser(t, pgSQL, "writer")
	campground := createCampground(t, pgSQL, author, "Commented")

	c1, err := pgSQL.StoreComment(ctx, domain.Comment{CampgroundID: campground.ID, Author: author.AuthorRef(), Text: "first"})
	require.NoError(t, err)
	_, err = pgSQL.StoreComment(ctx, domain.Comment{CampgroundID: campground.ID, Author: author.AuthorRef(), Text: "second"})
	require.NoError(t, err)

	comments, err := pgSQL.CampgroundComments(ctx, campground.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Equal(t, "first", comments[0].Text)

	updated, err := pgSQL.UpdateComment(ctx, c1.ID, "edited")
	require.NoError(t, err)
	require.Equal(t, "edited", updated.Text)
	require.Equal(t, author.Username, updated.Author.Username)

	missing, err := pgSQL.UpdateComment(ctx, domain.CommentID(uuid.New()), "nope")
	require.NoError(t, err)
	require.Nil(t, missing)

	deleted, err := pgSQL.DeleteComment(ctx, c1.ID)
	require.NoError(t, err)
	require.Equal(t, c1.ID, deleted.ID)

	got, err := pgSQL.CommentByID(ctx, c1.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}
