package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jh-206/Tree-Volume/internal/database"
	"github.com/jh-206/Tree-Volume/internal/report"
)

func testDB(t *testing.T) *database.DB {
	t.Helper()
	ctx := context.Background()
	db, err := database.NewFromEnv(ctx, &database.Config{
		Enabled:  true,
		FileName: filepath.Join(t.TempDir(), "treevol.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close(ctx))
	})
	return db
}

func TestStoreFetchRoundTrip(t *testing.T) {
	ctx := context.Background()
	runs := New(testDB(t))

	run := Run{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Rows:      31,
		A:         1.1595,
		Alpha:     0.13995,
		Resample: report.ResampleSummary{
			Alpha: report.Stats{N: 1000, Mean: 0.14, Lo: 0.1, Hi: 0.18},
		},
	}
	require.NoError(t, runs.Store(ctx, run))

	fetched, err := runs.FetchAll(ctx, nil)
	require.NoError(t, err)
	require.Len(t, fetched, 1)
	require.Equal(t, run.ID, fetched[0].ID)
	require.Equal(t, run.Rows, fetched[0].Rows)
	require.InDelta(t, run.Alpha, fetched[0].Alpha, 1e-12)
	require.InDelta(t, run.Resample.Alpha.Mean, fetched[0].Resample.Alpha.Mean, 1e-12)

	keys, err := runs.Keys()
	require.NoError(t, err)
	require.Equal(t, []string{run.ID.String()}, keys)
}

func TestFetchAllFilter(t *testing.T) {
	ctx := context.Background()
	runs := New(testDB(t))

	small := Run{ID: uuid.New(), Rows: 1}
	large := Run{ID: uuid.New(), Rows: 31}
	require.NoError(t, runs.Store(ctx, small))
	require.NoError(t, runs.Store(ctx, large))

	fetched, err := runs.FetchAll(ctx, func(r Run) bool { return r.Rows > 10 })
	require.NoError(t, err)
	require.Len(t, fetched, 1)
	require.Equal(t, large.ID, fetched[0].ID)
}

func TestFetchAllEmpty(t *testing.T) {
	ctx := context.Background()
	runs := New(testDB(t))

	fetched, err := runs.FetchAll(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, fetched)

	keys, err := runs.Keys()
	require.NoError(t, err)
	require.Empty(t, keys)
}
