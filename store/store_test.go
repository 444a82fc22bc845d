package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestRoundTrip(t *testing.T) {
	s := newTestStore(t)

	type record struct {
		ID    string   `json:"id"`
		Done  bool     `json:"done"`
		Tags  []string `json:"tags"`
		Count int      `json:"count"`
	}

	t.Run("string value", func(t *testing.T) {
		require.NoError(t, s.Set("theme", "dark"))

		var got string
		require.True(t, s.Get("theme", &got))
		require.Equal(t, "dark", got)
	})

	t.Run("map value", func(t *testing.T) {
		enabled := map[string]bool{"clock": true, "todo": false}
		require.NoError(t, s.Set("enabledWidgets", enabled))

		var got map[string]bool
		require.True(t, s.Get("enabledWidgets", &got))
		require.Equal(t, enabled, got)
	})

	t.Run("slice of records", func(t *testing.T) {
		todos := []record{
			{ID: "1", Done: false, Tags: []string{"home"}, Count: 3},
			{ID: "2", Done: true, Tags: nil, Count: 0},
		}
		require.NoError(t, s.Set("todos", todos))

		var got []record
		require.True(t, s.Get("todos", &got))
		require.Equal(t, todos, got)
	})
}

func TestGetAbsent(t *testing.T) {
	s := newTestStore(t)

	var v string
	if s.Get("never-written", &v) {
		t.Error("Get should return false for an absent key")
	}
}

func TestGetOrSeedsDefault(t *testing.T) {
	s := newTestStore(t)

	def := map[string]bool{"clock": true, "weather": true}

	var got map[string]bool
	require.NoError(t, s.GetOr("enabledWidgets", &got, def))
	require.Equal(t, def, got)

	// The default must now be persisted for subsequent readers.
	var again map[string]bool
	require.True(t, s.Get("enabledWidgets", &again))
	require.Equal(t, def, again)
}

func TestMalformedValueFallsBack(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	// Corrupt the persisted value behind the store's back.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "todos"), []byte("{not json"), 0o644))

	var got []string
	if s.Get("todos", &got) {
		t.Error("Get should treat unparseable content as absent")
	}

	// GetOr recovers with the default and re-seeds it.
	var seeded []string
	require.NoError(t, s.GetOr("todos", &seeded, []string{"fallback"}))
	require.Equal(t, []string{"fallback"}, seeded)
}

func TestShapeMismatchIsAbsence(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Set("quickLinks", "just a string"))

	// Decoding a string into a slice fails; reader sees absence, not an error.
	var got []int
	if s.Get("quickLinks", &got) {
		t.Error("Get should treat a shape mismatch as absence")
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("stickyNotes", "remember the milk"))
	require.True(t, s.Has("stickyNotes"))

	require.NoError(t, s.Delete("stickyNotes"))
	require.False(t, s.Has("stickyNotes"))

	// Double delete is a no-op.
	require.NoError(t, s.Delete("stickyNotes"))
}

func TestWatch(t *testing.T) {
	s := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := s.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Set("moodTracker", []string{"😊"}))

	select {
	case ev := <-events:
		require.Equal(t, "moodTracker", ev.Key)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for store change event")
	}

	cancel()
	// Channel closes after cancellation.
	for range events {
	}
}
