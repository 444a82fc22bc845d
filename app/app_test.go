package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthdash/hearth/palette"
	"github.com/hearthdash/hearth/store"
)

func newTestState(t *testing.T) (*State, *store.Store) {
	t.Helper()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	state, err := LoadState(st, "dark")
	require.NoError(t, err)
	return state, st
}

func TestLoadStateDefaults(t *testing.T) {
	state, _ := newTestState(t)

	assert.Equal(t, "dark", state.Theme())
	for _, name := range WidgetNames {
		assert.True(t, state.IsEnabled(name), "widget %s should default to enabled", name)
	}
}

func TestThemePersists(t *testing.T) {
	state, st := newTestState(t)

	require.NoError(t, state.SetTheme("light"))

	reloaded, err := LoadState(st, "dark")
	require.NoError(t, err)
	assert.Equal(t, "light", reloaded.Theme())

	// Invalid themes are rejected.
	require.Error(t, state.SetTheme("solarized"))
	assert.Equal(t, "light", state.Theme())
}

func TestBadPersistedThemeFallsBack(t *testing.T) {
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, st.Set(ThemeKey, "chartreuse"))

	state, err := LoadState(st, "dark")
	require.NoError(t, err)
	assert.Equal(t, "dark", state.Theme())
}

func TestToggleWidgetPersists(t *testing.T) {
	state, st := newTestState(t)

	require.NoError(t, state.ToggleWidget(WidgetTodo))
	assert.False(t, state.IsEnabled(WidgetTodo))

	reloaded, err := LoadState(st, "dark")
	require.NoError(t, err)
	assert.False(t, reloaded.IsEnabled(WidgetTodo))
	assert.True(t, reloaded.IsEnabled(WidgetClock))
}

// TestPaletteTodoScenario walks the palette flow end to end: with the todo
// widget hidden, searching "todo" yields "Show Todo Widget" as the sole
// Widgets match, and executing it re-enables the widget.
func TestPaletteTodoScenario(t *testing.T) {
	state, _ := newTestState(t)
	require.NoError(t, state.ToggleWidget(WidgetTodo)) // hide it first

	reg := palette.NewRegistry()
	RegisterCommands(reg, state, Surfaces{})

	groups := reg.Search("todo")
	var widgetMatches []palette.Command
	for _, g := range groups {
		if g.Category == "Widgets" {
			widgetMatches = g.Commands
		}
	}
	require.Len(t, widgetMatches, 1)
	assert.Equal(t, "Show Todo Widget", widgetMatches[0].Label())

	reg.Execute(widgetMatches[0].ID)
	assert.True(t, state.IsEnabled(WidgetTodo))

	// The label flips on the next open.
	groups = reg.Search("todo")
	for _, g := range groups {
		if g.Category == "Widgets" {
			assert.Equal(t, "Hide Todo Widget", g.Commands[0].Label())
		}
	}
}

func TestThemeCommandsSearch(t *testing.T) {
	state, _ := newTestState(t)
	reg := palette.NewRegistry()
	RegisterCommands(reg, state, Surfaces{})

	groups := reg.Search("dark")
	var labels []string
	for _, g := range groups {
		if g.Category == "Theme" {
			for _, c := range g.Commands {
				labels = append(labels, c.Label())
			}
		}
	}
	require.Equal(t, []string{"Switch to Dark Theme"}, labels)

	// Case-insensitive: "THEME" matches both theme commands exactly once.
	groups = reg.Search("THEME")
	for _, g := range groups {
		if g.Category == "Theme" {
			require.Len(t, g.Commands, 2)
		}
	}
}

func TestSurfaceCommands(t *testing.T) {
	state, _ := newTestState(t)

	var openedURL string
	settingsOpened := false
	reg := palette.NewRegistry()
	RegisterCommands(reg, state, Surfaces{
		OpenSettings: func() { settingsOpened = true },
		OpenURL:      func(url string) { openedURL = url },
	})

	reg.Execute("open-settings")
	assert.True(t, settingsOpened)

	reg.Execute("open-github")
	assert.True(t, strings.Contains(openedURL, "github.com"))

	// Nil surface callbacks never panic.
	reg.Execute("open-ai")
	reg.Execute("focus-mode")
}
