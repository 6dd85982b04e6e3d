package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"yelpcamp/pkg/domain"
	"yelpcamp/pkg/storage"
	"yelpcamp/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollback_NotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_Commit_PersistsWrites(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	author := createUser(t, pg, "commit")

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	stored, err := txStorage.StoreCampground(ctx, domain.Campground{Name: "Lakeside", Author: author.AuthorRef()})
	require.NoError(t, err)
	require.NoError(t, txStorage.Commit())

	got, err := pg.CampgroundByID(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Lakeside", got.Name)
}

func TestPgSQL_Rollback_DiscardsWrites(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	author := createUser(t, pg, "rollback")

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	stored, err := txStorage.StoreCampground(ctx, domain.Campground{Name: "Ghost", Author: author.AuthorRef()})
	require.NoError(t, err)
	require.NoError(t, txStorage.Rollback())

	got, err := pg.CampgroundByID(ctx, stored.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	author := createUser(t, pg, "withtx")
	campground := createCampground(t, pg, author, "Pines")

	// review insert and rating recompute commit together
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		if _, err := s.StoreReview(ctx, domain.Review{
			CampgroundID: campground.ID,
			Author:       author.AuthorRef(),
			Rating:       4,
		}); err != nil {
			return err
		}
		rating := 4.0
		_, err := s.UpdateCampground(ctx, campground.ID, storage.CampgroundUpdates{Rating: &rating})

		return err
	})
	require.NoError(t, err)

	got, err := pg.CampgroundByID(ctx, campground.ID)
	require.NoError(t, err)
	require.InDelta(t, 4.0, got.Rating, 1e-9)

	// a failing callback rolls back every write made through the tx handle
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		rating := 1.0
		if _, err := s.UpdateCampground(ctx, campground.ID, storage.CampgroundUpdates{Rating: &rating}); err != nil {
			return err
		}

		return errors.New("boom")
	})
	require.Error(t, err)

	got, err = pg.CampgroundByID(ctx, campground.ID)
	require.NoError(t, err)
	require.InDelta(t, 4.0, got.Rating, 1e-9)
}
