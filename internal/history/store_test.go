// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moleculab/chemscout/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoad(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	entries := []types.HistoryEntry{
		{InputName: "aspirin", MatchedName: "2-acetyloxybenzoic acid", CID: "2244",
			ImageURL: "https://cactus.example/aspirin/image", SearchedAt: base},
		{InputName: "caffeine", MatchedName: "1,3,7-trimethylpurine-2,6-dione", CID: "2519",
			SearchedAt: base.Add(time.Minute)},
		{InputName: "unobtainium", SearchedAt: base.Add(2 * time.Minute)},
	}
	for _, e := range entries {
		require.NoError(t, s.Save(ctx, e))
	}

	got, err := s.Load(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Most recent first.
	assert.Equal(t, "unobtainium", got[0].InputName)
	assert.Equal(t, "caffeine", got[1].InputName)
	assert.Equal(t, "aspirin", got[2].InputName)

	assert.Equal(t, "2244", got[2].CID)
	assert.True(t, got[2].SearchedAt.Equal(base))
}

func TestSaveFillsSentinels(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	before := time.Now().UTC()
	require.NoError(t, s.Save(ctx, types.HistoryEntry{InputName: "mystery"}))

	got, err := s.Load(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, types.HistoryCIDNotFound, got[0].CID)
	assert.False(t, got[0].SearchedAt.Before(before))
}

func TestLoadLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Save(ctx, types.HistoryEntry{
			InputName:  "entry",
			SearchedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	got, err := s.Load(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = s.Load(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, got, 5, "non-positive limit falls back to the default")
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, types.HistoryEntry{InputName: "aspirin", CID: "2244"}))
	require.NoError(t, s.Clear(ctx))

	got, err := s.Load(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Save(context.Background(), types.HistoryEntry{InputName: "aspirin"}))
}
