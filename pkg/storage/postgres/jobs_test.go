package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"yelpcamp/pkg/storage/postgres"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

type testMailArgs struct {
	To string `json:"to"`
}

func (testMailArgs) Kind() string { return "test_mail" }

func migrateRiver(t *testing.T, storage *postgres.PgSQL) {
	t.Helper()
	migrator, err := rivermigrate.New(riverdatabasesql.New(storage.DB.(*sql.DB)), nil)
	require.NoError(t, err)
	migrations := migrator.AllVersions()
	_, err = migrator.Migrate(t.Context(), rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: migrations[len(migrations)-1].Version,
	})
	require.NoError(t, err)
}

func TestPgSQL_AddJob_WithinTransaction(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	inserted, err := txStorage.AddJob(ctx, testMailArgs{To: "carol@example.com"}, &river.InsertOpts{})
	require.NoError(t, err)
	require.True(t, inserted)

	job := rivertest.RequireInsertedTx[*riverdatabasesql.Driver](
		ctx,
		t,
		txStorage.(*postgres.PgSQL).DB.(*sql.Tx),
		&testMailArgs{},
		nil,
	)
	require.Equal(t, "carol@example.com", job.Args.To)
}

func TestPgSQL_AddJob_RolledBackTransactionDropsJob(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, err = txStorage.AddJob(ctx, testMailArgs{To: "dave@example.com"}, nil)
	require.NoError(t, err)
	require.NoError(t, txStorage.Rollback())

	rivertest.RequireNotInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&testMailArgs{},
		nil,
	)
}

func TestPgSQL_AddJob_OutsideTransaction(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	_, err := pg.AddJob(ctx, testMailArgs{To: "alice@example.com"}, &river.InsertOpts{})
	require.NoError(t, err)
	rivertest.RequireInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&testMailArgs{},
		nil,
	)
}
