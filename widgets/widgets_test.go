package widgets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthdash/hearth/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	return st
}

func TestTodoLifecycle(t *testing.T) {
	st := newTestStore(t)

	todos, err := LoadTodos(st)
	require.NoError(t, err)
	assert.Empty(t, todos.Items())

	first, err := todos.Add("water the plants")
	require.NoError(t, err)
	second, err := todos.Add("file taxes")
	require.NoError(t, err)

	// Newest first.
	items := todos.Items()
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)
	assert.Equal(t, 2, todos.Remaining())

	require.NoError(t, todos.Toggle(first.ID))
	assert.Equal(t, 1, todos.Remaining())

	require.NoError(t, todos.Delete(second.ID))
	assert.Len(t, todos.Items(), 1)

	// Mutations survive a reload.
	reloaded, err := LoadTodos(st)
	require.NoError(t, err)
	require.Len(t, reloaded.Items(), 1)
	assert.True(t, reloaded.Items()[0].Completed)
}

func TestTodoBlankTextIgnored(t *testing.T) {
	todos, err := LoadTodos(newTestStore(t))
	require.NoError(t, err)

	_, err = todos.Add("")
	require.NoError(t, err)
	assert.Empty(t, todos.Items())
}

func TestNotesPersist(t *testing.T) {
	st := newTestStore(t)

	notes, err := LoadNotes(st)
	require.NoError(t, err)
	assert.Equal(t, "", notes.Text())

	require.NoError(t, notes.SetText("remember the milk"))

	reloaded, err := LoadNotes(st)
	require.NoError(t, err)
	assert.Equal(t, "remember the milk", reloaded.Text())
}

func TestQuickLinksSeededDefaults(t *testing.T) {
	st := newTestStore(t)

	links, err := LoadQuickLinks(st)
	require.NoError(t, err)
	require.Len(t, links.Links(), 4)
	assert.Equal(t, "Google", links.Links()[0].Name)

	added, err := links.Add("Docs", "docs.example.com", "")
	require.NoError(t, err)
	assert.Equal(t, "https://docs.example.com", added.URL, "missing scheme defaults to https")
	assert.Equal(t, "🔗", added.Icon)

	require.NoError(t, links.Remove(added.ID))
	assert.Len(t, links.Links(), 4)
}

func TestBookmarksSeededDefaults(t *testing.T) {
	st := newTestStore(t)

	bms, err := LoadBookmarks(st)
	require.NoError(t, err)
	require.Len(t, bms.Items(), 3)

	added, err := bms.Add("Hearth", "https://hearth.example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)

	// A second load sees the persisted addition, not the defaults again.
	reloaded, err := LoadBookmarks(st)
	require.NoError(t, err)
	assert.Len(t, reloaded.Items(), 4)
}

func TestMoodOneEntryPerDay(t *testing.T) {
	st := newTestStore(t)

	day := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return day }

	moods, err := LoadMoodTracker(st, clock)
	require.NoError(t, err)

	_, err = moods.Record(2, "")
	require.NoError(t, err)
	entry, err := moods.Record(5, "turned around")
	require.NoError(t, err)
	assert.Equal(t, "😄", entry.Emoji)

	// Same-day record replaces, never duplicates.
	require.Len(t, moods.Entries(), 1)
	today, ok := moods.Today()
	require.True(t, ok)
	assert.Equal(t, 5, today.Mood)

	// A new day appends.
	day = day.Add(24 * time.Hour)
	_, err = moods.Record(4, "")
	require.NoError(t, err)
	assert.Len(t, moods.Entries(), 2)
}

func TestMoodClamping(t *testing.T) {
	moods, err := LoadMoodTracker(newTestStore(t), nil)
	require.NoError(t, err)

	entry, err := moods.Record(9, "")
	require.NoError(t, err)
	assert.Equal(t, 5, entry.Mood)
}

func TestMusicQueueNavigation(t *testing.T) {
	st := newTestStore(t)

	q, err := LoadMusicQueue(st)
	require.NoError(t, err)
	require.Len(t, q.Tracks(), 3)

	cur, ok := q.Current()
	require.True(t, ok)
	assert.Equal(t, "Chill Vibes", cur.Title)

	q.Next()
	cur, _ = q.Current()
	assert.Equal(t, "Focus Flow", cur.Title)

	// Prev from the head wraps to the tail.
	q.Prev()
	q.Prev()
	cur, _ = q.Current()
	assert.Equal(t, "Peaceful Moments", cur.Title)

	assert.False(t, q.Playing())
	q.TogglePlay()
	assert.True(t, q.Playing())
}
