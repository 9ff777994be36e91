package store_test

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/tourvar/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *store.SQLite {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Migrate())
	return s
}

func TestMigrate_Idempotent(t *testing.T) {
	s := openTemp(t)
	assert.NoError(t, s.Migrate())
}

func TestSaveRun_RoundTrip(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	started := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	run := store.Run{
		Command:   "./solver --fast",
		SeedFrom:  1,
		SeedTo:    math.MaxUint64,
		StartedAt: started,
		Elapsed:   1500 * time.Millisecond,
		Cases:     3,
		Accepted:  2,
		Total:     133,
	}
	cases := []store.Case{
		{Seed: math.MaxUint64, Score: 0, ErrKind: "coverage", ErrMsg: "3 is not used", Elapsed: time.Millisecond},
		{Seed: 2, Score: 62, Variance: 16366.25, Elapsed: 2 * time.Millisecond},
		{Seed: 1, Score: 71, Variance: 14238.27, Elapsed: 3 * time.Millisecond},
	}

	id, err := s.SaveRun(ctx, run, cases)
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err, "run ids are uuids")

	got, err := s.GetRun(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, run.Command, got.Command)
	assert.Equal(t, run.SeedFrom, got.SeedFrom)
	assert.Equal(t, run.SeedTo, got.SeedTo)
	assert.WithinDuration(t, started, got.StartedAt, time.Second)
	assert.Equal(t, run.Elapsed, got.Elapsed)
	assert.Equal(t, 3, got.Cases)
	assert.Equal(t, 2, got.Accepted)
	assert.Equal(t, int64(133), got.Total)

	stored, err := s.Cases(ctx, id)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, uint64(1), stored[0].Seed)
	assert.Equal(t, uint64(2), stored[1].Seed)
	assert.Equal(t, uint64(math.MaxUint64), stored[2].Seed, "unsigned order survives signed storage")
	assert.Equal(t, "coverage", stored[2].ErrKind)
	assert.Equal(t, int64(71), stored[0].Score)
	assert.Equal(t, 3*time.Millisecond, stored[0].Elapsed)
	for _, c := range stored {
		assert.Equal(t, id, c.RunID)
	}
}

func TestSaveRun_KeepsGivenID(t *testing.T) {
	s := openTemp(t)
	id, err := s.SaveRun(context.Background(), store.Run{ID: "fixed", StartedAt: time.Now()}, nil)
	require.NoError(t, err)
	assert.Equal(t, "fixed", id)

	_, err = s.SaveRun(context.Background(), store.Run{ID: "fixed", StartedAt: time.Now()}, nil)
	assert.Error(t, err, "duplicate run ids are rejected")
}

func TestSaveRun_DuplicateSeedRollsBack(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	_, err := s.SaveRun(ctx, store.Run{ID: "dup", StartedAt: time.Now()}, []store.Case{{Seed: 1}, {Seed: 1}})
	require.Error(t, err)

	_, err = s.GetRun(ctx, "dup")
	assert.ErrorIs(t, err, store.ErrRunNotFound)
}

func TestGetRun_NotFound(t *testing.T) {
	s := openTemp(t)
	_, err := s.GetRun(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrRunNotFound)

	cases, err := s.Cases(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, cases)
}
