package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"breachcheck/pkg/storage"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
)

type testJobArgs struct {
	Key string `json:"key" river:"unique"`
}

func (testJobArgs) Kind() string { return "test_job" }

func countJobs(t *testing.T, db *sql.DB) int {
	t.Helper()
	row := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM river_job WHERE kind = 'test_job'`)
	var c int
	require.NoError(t, row.Scan(&c))

	return c
}

func TestPgSQL_AddJob(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	db := pg.DB.(*sql.DB)

	inserted, err := pg.AddJob(ctx, testJobArgs{Key: "a"}, nil)
	require.NoError(t, err)
	require.True(t, inserted)
	require.Equal(t, 1, countJobs(t, db))

	uniqueOpts := &river.InsertOpts{UniqueOpts: river.UniqueOpts{ByArgs: true}}
	inserted, err = pg.AddJob(ctx, testJobArgs{Key: "b"}, uniqueOpts)
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = pg.AddJob(ctx, testJobArgs{Key: "b"}, uniqueOpts)
	require.NoError(t, err)
	require.False(t, inserted)
	require.Equal(t, 2, countJobs(t, db))
}

func TestPgSQL_AddJob_InTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	db := pg.DB.(*sql.DB)

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, err := s.AddJob(ctx, testJobArgs{Key: "rolled-back"}, nil)
		require.NoError(t, err)

		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 0, countJobs(t, db))

	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, err := s.AddJob(ctx, testJobArgs{Key: "committed"}, nil)

		return err
	})
	require.NoError(t, err)
	require.Equal(t, 1, countJobs(t, db))
}
