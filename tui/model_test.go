package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/hearthdash/hearth/app"
	"github.com/hearthdash/hearth/config"
	"github.com/hearthdash/hearth/timer"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg := &config.Config{}
	cfg.Settings.Theme = "dark"
	cfg.Settings.StorePath = t.TempDir()

	m, err := NewModel(Options{Config: cfg})
	require.NoError(t, err)
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPaletteOpensAndCapturesKeys(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	require.Equal(t, modePalette, m.mode)
	require.True(t, m.paletteInput.Focused())

	// While open, printable keys go to the query, not to dashboard hotkeys.
	m.Update(keyRune('q'))
	require.Equal(t, modePalette, m.mode)
	require.Equal(t, "q", m.paletteInput.Value())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, modeDashboard, m.mode)
}

func TestPaletteSlashOpens(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyRune('/'))
	require.Equal(t, modePalette, m.mode)
	// The slash itself must not leak into the query.
	require.Equal(t, "", m.paletteInput.Value())
}

func TestPaletteExecuteTogglesWidget(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.state.ToggleWidget(app.WidgetTodo))
	require.False(t, m.state.IsEnabled(app.WidgetTodo))

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	for _, r := range "todo" {
		m.Update(keyRune(r))
	}
	cmds := flatten(m.paletteGroups)
	require.Len(t, cmds, 1)
	require.Equal(t, "Show Todo Widget", cmds[0].Label())

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, modeDashboard, m.mode)
	require.True(t, m.state.IsEnabled(app.WidgetTodo))
}

func TestPaletteThemeCommandRestyles(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, "dark", m.theme.Name)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	for _, r := range "light" {
		m.Update(keyRune(r))
	}
	cmds := flatten(m.paletteGroups)
	require.NotEmpty(t, cmds)
	require.Equal(t, "theme-light", cmds[0].ID)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "light", m.state.Theme())
	require.Equal(t, "light", m.theme.Name)
}

func TestTimerHotkeyAndTick(t *testing.T) {
	m := newTestModel(t)
	require.False(t, m.engine.Active())

	m.Update(keyRune('p'))
	require.True(t, m.engine.Active())

	before := m.engine.Remaining()
	m.Update(tickMsg(m.now))
	require.Equal(t, before-1, m.engine.Remaining())

	// Paused timers ignore ticks.
	m.Update(keyRune('p'))
	paused := m.engine.Remaining()
	m.Update(tickMsg(m.now))
	require.Equal(t, paused, m.engine.Remaining())
}

func TestTimerCompletionSetsStatus(t *testing.T) {
	m := newTestModel(t)
	m.Update(keyRune('p'))
	for i := 0; i < timer.WorkDuration; i++ {
		m.Update(tickMsg(m.now))
	}
	require.Equal(t, timer.PhaseBreak, m.engine.Phase())
	require.NotEmpty(t, m.status)
}

func TestSettingsToggleHidesWidget(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyRune('s'))
	require.Equal(t, modeSettings, m.mode)

	// First entry is the theme row; the next is the first widget.
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.state.IsEnabled(app.WidgetNames[0]))

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, modeDashboard, m.mode)
	require.NotContains(t, m.visibleWidgets(), app.WidgetNames[0])
}

func TestAssistantWithoutCredentialAsksForKey(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyRune('a'))
	require.Equal(t, modeAssistant, m.mode)
	require.True(t, m.keyInput.Focused())
	require.False(t, m.chatInput.Focused())

	for _, r := range "pk-test" {
		m.Update(keyRune(r))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.session.HasCredential())
	require.True(t, m.chatInput.Focused())
}

func TestMicUnsupportedSurfacesError(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.session.SetCredential("pk-test"))

	m.Update(keyRune('a'))
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	require.NotEmpty(t, m.status)
	require.True(t, m.statusErr)
	require.False(t, m.speech.Listening())
}

func TestExternalStoreEditRefreshesState(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, "dark", m.state.Theme())

	// Simulate another process writing the theme key.
	require.NoError(t, m.store.Set(app.ThemeKey, "light"))
	m.refresh(app.ThemeKey)
	require.Equal(t, "light", m.state.Theme())
	require.Equal(t, "light", m.theme.Name)
}

func TestViewRendersWithoutSize(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	require.Contains(t, out, "Hearth")
}
