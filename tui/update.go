package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hearthdash/hearth/app"
	"github.com/hearthdash/hearth/assistant"
	"github.com/hearthdash/hearth/palette"
	"github.com/hearthdash/hearth/tui/theme"
	"github.com/hearthdash/hearth/widgets"
)

// Update handles messages and updates the model accordingly.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.now = m.clock()
		m.engine.Tick()
		cmds := []tea.Cmd{tickCmd()}
		for _, note := range m.sink.drain() {
			cmds = append(cmds, m.setStatus(note, false))
		}
		return m, tea.Batch(cmds...)

	case backgroundMsg:
		m.background = msg.url
		return m, nil

	case assistantReplyMsg:
		if msg.err != nil {
			return m, m.setStatus(msg.err.Error(), true)
		}
		return m, nil

	case speechTextMsg:
		m.chatInput.SetValue(msg.text)
		m.chatInput.CursorEnd()
		return m, nil

	case speechErrMsg:
		return m, m.setStatus("Speech recognition failed: "+msg.err.Error(), true)

	case storeChangedMsg:
		m.refresh(msg.key)
		return m, m.waitForStoreEvent()

	case statusExpireMsg:
		if msg.gen == m.statusGen {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modePalette:
			return m.updatePalette(msg)
		case modeAssistant:
			return m.updateAssistant(msg)
		case modeSettings:
			return m.updateSettings(msg)
		default:
			return m.updateDashboard(msg)
		}
	}
	return m, nil
}

func (m *Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Palette), key.Matches(msg, m.keys.Slash):
		return m, m.openPalette()

	case key.Matches(msg, m.keys.Assistant):
		m.enterAssistant()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Settings):
		m.mode = modeSettings
		m.settingsCursor = 0

	case key.Matches(msg, m.keys.Focus):
		m.state.FocusMode = !m.state.FocusMode

	case key.Matches(msg, m.keys.Timer):
		m.engine.Toggle()

	case key.Matches(msg, m.keys.Left):
		m.cycleFocus(-1)

	case key.Matches(msg, m.keys.Right):
		m.cycleFocus(1)

	case key.Matches(msg, m.keys.Up):
		m.moveRow(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveRow(1)

	case key.Matches(msg, m.keys.Select):
		return m, m.activateFocused()
	}
	return m, nil
}

func (m *Model) updatePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.closePalette()
		return m, nil

	case key.Matches(msg, m.keys.Palette):
		m.closePalette()
		return m, nil

	case msg.Type == tea.KeyUp:
		if m.paletteCursor > 0 {
			m.paletteCursor--
		}
		return m, nil

	case msg.Type == tea.KeyDown:
		if m.paletteCursor < len(flatten(m.paletteGroups))-1 {
			m.paletteCursor++
		}
		return m, nil

	case msg.Type == tea.KeyEnter:
		cmds := flatten(m.paletteGroups)
		if m.paletteCursor < len(cmds) {
			m.reg.Execute(cmds[m.paletteCursor].ID)
			m.afterCommand()
		}
		m.closePalette()
		return m, nil

	default:
		var cmd tea.Cmd
		m.paletteInput, cmd = m.paletteInput.Update(msg)
		m.paletteGroups = m.reg.Search(m.paletteInput.Value())
		m.paletteCursor = 0
		return m, cmd
	}
}

func (m *Model) updateAssistant(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = modeDashboard
		m.chatInput.Blur()
		m.keyInput.Blur()
		if m.speech.Listening() {
			m.speech.Stop()
		}
		return m, nil

	case key.Matches(msg, m.keys.Mic):
		if m.speech.Listening() {
			m.speech.Stop()
			return m, nil
		}
		if err := m.speech.Start(); err != nil {
			return m, m.setStatus(err.Error(), true)
		}
		return m, nil
	}

	if m.keyInput.Focused() {
		if msg.Type == tea.KeyEnter {
			if err := m.session.SetCredential(m.keyInput.Value()); err != nil {
				return m, m.setStatus(err.Error(), true)
			}
			m.keyInput.SetValue("")
			m.keyInput.Blur()
			m.chatInput.Focus()
			return m, m.setStatus("API key saved", false)
		}
		var cmd tea.Cmd
		m.keyInput, cmd = m.keyInput.Update(msg)
		return m, cmd
	}

	if msg.Type == tea.KeyEnter {
		text := strings.TrimSpace(m.chatInput.Value())
		if text == "" || m.session.Loading() {
			return m, nil
		}
		m.chatInput.SetValue("")
		return m, m.sendChatCmd(text)
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m *Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.settingsEntries()
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Settings):
		m.mode = modeDashboard

	case key.Matches(msg, m.keys.Up):
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.settingsCursor < len(entries)-1 {
			m.settingsCursor++
		}

	case key.Matches(msg, m.keys.Select):
		if m.settingsCursor == 0 {
			next := "dark"
			if m.state.Theme() == "dark" {
				next = "light"
			}
			if err := m.state.SetTheme(next); err == nil {
				m.theme = theme.NewTheme(next)
			}
		} else if idx := m.settingsCursor - 1; idx < len(app.WidgetNames) {
			name := app.WidgetNames[idx]
			if err := m.state.ToggleWidget(name); err != nil {
				return m, m.setStatus(err.Error(), true)
			}
			m.clampFocus()
		}
	}
	return m, nil
}

// settingsEntries returns the settings rows: theme first, then one per widget.
func (m *Model) settingsEntries() []string {
	entries := make([]string, 0, len(app.WidgetNames)+1)
	entries = append(entries, "Theme")
	entries = append(entries, app.WidgetNames...)
	return entries
}

// afterCommand re-derives presentation state that a palette command may have
// changed behind the model's back.
func (m *Model) afterCommand() {
	if m.theme.Name != m.state.Theme() {
		m.theme = theme.NewTheme(m.state.Theme())
	}
	m.clampFocus()
}

// visibleWidgets lists the enabled widget names in presentation order.
func (m *Model) visibleWidgets() []string {
	out := make([]string, 0, len(app.WidgetNames))
	for _, name := range app.WidgetNames {
		if m.state.IsEnabled(name) {
			out = append(out, name)
		}
	}
	return out
}

func (m *Model) focusedWidget() string {
	visible := m.visibleWidgets()
	if len(visible) == 0 {
		return ""
	}
	if m.focusIdx >= len(visible) {
		return visible[len(visible)-1]
	}
	return visible[m.focusIdx]
}

func (m *Model) cycleFocus(delta int) {
	visible := m.visibleWidgets()
	if len(visible) == 0 {
		return
	}
	m.focusIdx = (m.focusIdx + delta + len(visible)) % len(visible)
}

func (m *Model) clampFocus() {
	if visible := m.visibleWidgets(); m.focusIdx >= len(visible) {
		m.focusIdx = 0
	}
}

// rowCount is the number of selectable rows inside a widget pane.
func (m *Model) rowCount(name string) int {
	switch name {
	case app.WidgetTodo:
		return len(m.todos.Items())
	case app.WidgetQuickLinks:
		return len(m.links.Links())
	case app.WidgetBookmarks:
		return len(m.bookmarks.Items())
	case app.WidgetMoodTracker:
		return 5
	default:
		return 0
	}
}

func (m *Model) moveRow(delta int) {
	name := m.focusedWidget()
	if name == app.WidgetMusicPlayer {
		if delta > 0 {
			m.music.Next()
		} else {
			m.music.Prev()
		}
		return
	}
	count := m.rowCount(name)
	if count == 0 {
		return
	}
	sel := m.rowSel[name] + delta
	if sel < 0 {
		sel = 0
	}
	if sel >= count {
		sel = count - 1
	}
	m.rowSel[name] = sel
}

// activateFocused runs the enter action of the focused widget pane.
func (m *Model) activateFocused() tea.Cmd {
	name := m.focusedWidget()
	sel := m.rowSel[name]
	switch name {
	case app.WidgetTodo:
		items := m.todos.Items()
		if sel < len(items) {
			if err := m.todos.Toggle(items[sel].ID); err != nil {
				return m.setStatus(err.Error(), true)
			}
		}
	case app.WidgetQuickLinks:
		links := m.links.Links()
		if sel < len(links) {
			openURL(links[sel].URL, m.log)
		}
	case app.WidgetBookmarks:
		items := m.bookmarks.Items()
		if sel < len(items) {
			openURL(items[sel].URL, m.log)
		}
	case app.WidgetMoodTracker:
		if _, err := m.mood.Record(sel+1, ""); err != nil {
			return m.setStatus(err.Error(), true)
		}
	case app.WidgetMusicPlayer:
		m.music.TogglePlay()
	case app.WidgetPomodoro:
		m.engine.Toggle()
	}
	return nil
}

// refresh reloads the component behind one persisted key after an external
// edit. Reloading after our own writes is redundant but harmless.
func (m *Model) refresh(key string) {
	var err error
	switch key {
	case app.ThemeKey, app.EnabledWidgetsKey:
		m.state.Reload()
		m.afterCommand()
	case widgets.TodosKey:
		m.todos, err = widgets.LoadTodos(m.store)
	case widgets.NotesKey:
		m.notes, err = widgets.LoadNotes(m.store)
	case widgets.QuickLinksKey:
		m.links, err = widgets.LoadQuickLinks(m.store)
	case widgets.BookmarksKey:
		m.bookmarks, err = widgets.LoadBookmarks(m.store)
	case widgets.MoodKey:
		m.mood, err = widgets.LoadMoodTracker(m.store, m.clock)
	case widgets.MusicKey:
		m.music, err = widgets.LoadMusicQueue(m.store)
	case assistant.CredentialKey:
		m.session.ReloadCredential()
	}
	if err != nil {
		m.log.WithError(err).WithField("key", key).Warn("refresh after external edit failed")
	}
}

func flatten(groups []palette.Group) []palette.Command {
	var out []palette.Command
	for _, g := range groups {
		out = append(out, g.Commands...)
	}
	return out
}
