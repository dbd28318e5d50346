package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenAssignsSessionID(t *testing.T) {
	s := openTestStore(t)
	assert.NotEmpty(t, s.SessionID())
}

func TestRecordAndStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordAnswer(ctx, "fox", true))
	require.NoError(t, s.RecordAnswer(ctx, "fox", false))
	require.NoError(t, s.RecordAnswer(ctx, "dog", true))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Hardest word first.
	assert.Equal(t, "fox", stats[0].Headword)
	assert.Equal(t, 2, stats[0].Attempts)
	assert.Equal(t, 1, stats[0].Correct)
	assert.InDelta(t, 0.5, stats[0].Accuracy(), 1e-9)

	assert.Equal(t, "dog", stats[1].Headword)
	assert.InDelta(t, 1.0, stats[1].Accuracy(), 1e-9)
}

func TestStatsEmpty(t *testing.T) {
	s := openTestStore(t)

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats)
}
