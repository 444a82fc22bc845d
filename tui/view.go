package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hearthdash/hearth/app"
	"github.com/hearthdash/hearth/assistant"
	"github.com/hearthdash/hearth/timer"
)

const paneWidth = 36

// quotes rotate by day of year. A fixed local list; no network involved.
var quotes = []string{
	"The secret of getting ahead is getting started.",
	"Well begun is half done.",
	"Focus on being productive instead of busy.",
	"Simplicity is the ultimate sophistication.",
	"It always seems impossible until it is done.",
	"Action is the foundational key to all success.",
	"What gets measured gets managed.",
}

// View renders the whole dashboard.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.mode {
	case modePalette:
		b.WriteString(m.renderPalette())
	case modeAssistant:
		b.WriteString(m.renderAssistant())
	case modeSettings:
		b.WriteString(m.renderSettings())
	default:
		if m.state.FocusMode {
			b.WriteString(m.renderFocusMode())
		} else {
			b.WriteString(m.renderGrid())
		}
	}

	b.WriteString("\n")
	if m.status != "" {
		if m.statusErr {
			b.WriteString(m.theme.Error.Render(m.status))
		} else {
			b.WriteString(m.theme.Success.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderHeader() string {
	title := m.theme.Header.Render("Hearth")
	date := m.theme.Muted.Render(m.now.Format("Mon Jan 2 2006"))
	clock := m.theme.Bold.Render(m.now.Format("3:04 PM"))
	line := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", date, "  ", clock)
	if m.background != "" {
		line += "\n" + m.theme.Muted.Render("bg: "+m.background)
	}
	return line
}

func (m *Model) renderGrid() string {
	visible := m.visibleWidgets()
	if len(visible) == 0 {
		return m.theme.Muted.Render("All widgets hidden. Press s to open settings.")
	}

	focusName := m.focusedWidget()
	panes := make([]string, 0, len(visible))
	for _, name := range visible {
		panes = append(panes, m.renderPane(name, name == focusName))
	}

	var rows []string
	for i := 0; i < len(panes); i += 3 {
		end := i + 3
		if end > len(panes) {
			end = len(panes)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, panes[i:end]...))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderPane(name string, focused bool) string {
	style := m.theme.Panel
	if focused {
		style = m.theme.FocusPanel
	}

	var body string
	switch name {
	case app.WidgetClock:
		body = m.renderClock()
	case app.WidgetWeather:
		body = m.theme.Muted.Render("Weather is unavailable offline.")
	case app.WidgetTodo:
		body = m.renderTodos(focused)
	case app.WidgetNotes:
		body = m.renderNotes()
	case app.WidgetQuote:
		body = m.renderQuote()
	case app.WidgetNews:
		body = m.theme.Muted.Render("News is unavailable offline.")
	case app.WidgetQuickLinks:
		body = m.renderQuickLinks(focused)
	case app.WidgetPomodoro:
		body = m.renderTimer()
	case app.WidgetMusicPlayer:
		body = m.renderMusic()
	case app.WidgetMoodTracker:
		body = m.renderMood(focused)
	case app.WidgetBookmarks:
		body = m.renderBookmarks(focused)
	}

	header := m.theme.Accent.Render(app.WidgetLabels[name])
	return style.Width(paneWidth).Render(header + "\n" + body)
}

func (m *Model) renderClock() string {
	return m.theme.Bold.Render(m.now.Format("3:04:05 PM")) + "\n" +
		m.theme.Muted.Render(m.now.Format("Monday, January 2"))
}

func (m *Model) renderTodos(focused bool) string {
	items := m.todos.Items()
	if len(items) == 0 {
		return m.theme.Muted.Render("Nothing to do. Enjoy!")
	}

	sel := m.rowSel[app.WidgetTodo]
	var lines []string
	for i, t := range items {
		mark := "[ ]"
		text := t.Text
		if t.Completed {
			mark = "[x]"
			text = m.theme.Done.Render(text)
		}
		line := mark + " " + text
		if focused && i == sel {
			line = m.theme.Selected.Render(line)
		}
		lines = append(lines, line)
	}
	lines = append(lines, m.theme.Muted.Render(fmt.Sprintf("%d remaining", m.todos.Remaining())))
	return strings.Join(lines, "\n")
}

func (m *Model) renderNotes() string {
	text := m.notes.Text()
	if text == "" {
		return m.theme.Placeholder.Render("Jot something down...")
	}
	return m.theme.Normal.Render(text)
}

func (m *Model) renderQuote() string {
	q := quotes[m.now.YearDay()%len(quotes)]
	return m.theme.Muted.Italic(true).Render("“" + q + "”")
}

func (m *Model) renderQuickLinks(focused bool) string {
	sel := m.rowSel[app.WidgetQuickLinks]
	var lines []string
	for i, l := range m.links.Links() {
		line := l.Icon + " " + l.Name
		if focused && i == sel {
			line = m.theme.Selected.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderBookmarks(focused bool) string {
	sel := m.rowSel[app.WidgetBookmarks]
	var lines []string
	for i, bm := range m.bookmarks.Items() {
		line := bm.Title
		if focused && i == sel {
			line = m.theme.Selected.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderTimer() string {
	phase := "Focus"
	if m.engine.Phase() == timer.PhaseBreak {
		phase = "Break"
	}
	state := "paused"
	if m.engine.Active() {
		state = "running"
	}
	bar := progressBar(m.engine.Progress(), paneWidth-8)
	return m.theme.Bold.Render(m.engine.Clock()) + "  " + m.theme.Muted.Render(phase+" · "+state) + "\n" + bar
}

func (m *Model) renderMusic() string {
	track, ok := m.music.Current()
	if !ok {
		return m.theme.Muted.Render("Queue is empty.")
	}
	state := "⏸"
	if m.music.Playing() {
		state = "▶"
	}
	return state + " " + m.theme.Bold.Render(track.Title) + "\n" + m.theme.Muted.Render(track.Artist)
}

func (m *Model) renderMood(focused bool) string {
	sel := m.rowSel[app.WidgetMoodTracker]
	scale := []string{"😢", "😕", "😐", "🙂", "😄"}
	var cells []string
	for i, e := range scale {
		cell := " " + e + " "
		if focused && i == sel {
			cell = m.theme.Selected.Render(cell)
		}
		cells = append(cells, cell)
	}
	line := strings.Join(cells, "")
	if entry, ok := m.mood.Today(); ok {
		line += "\n" + m.theme.Muted.Render("Today: "+entry.Emoji)
	}
	return line
}

func (m *Model) renderFocusMode() string {
	inner := m.theme.Title.Render("Focus") + "\n\n" +
		m.theme.Bold.Render(m.engine.Clock()) + "\n" +
		progressBar(m.engine.Progress(), 40)
	return m.theme.Overlay.Render(inner)
}

func (m *Model) renderPalette() string {
	var b strings.Builder
	b.WriteString(m.paletteInput.View())
	b.WriteString("\n\n")

	idx := 0
	for _, g := range m.paletteGroups {
		b.WriteString(m.theme.Accent.Render(g.Category))
		b.WriteString("\n")
		for _, cmd := range g.Commands {
			label := "  " + cmd.Label()
			if idx == m.paletteCursor {
				label = m.theme.Selected.Render(label)
			}
			b.WriteString(label)
			b.WriteString("\n")
			idx++
		}
	}
	if idx == 0 {
		b.WriteString(m.theme.Muted.Render("No matching commands."))
	}
	return m.theme.Overlay.Render(b.String())
}

func (m *Model) renderAssistant() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("AI Assistant"))
	b.WriteString("\n")

	if !m.session.HasCredential() {
		b.WriteString(m.theme.Muted.Render("Enter your API key to start chatting."))
		b.WriteString("\n")
		b.WriteString(m.keyInput.View())
		return m.theme.Overlay.Render(b.String())
	}

	for _, msg := range m.session.Messages() {
		if msg.Role == assistant.RoleUser {
			b.WriteString(m.theme.Bold.Render("You: ") + msg.Content)
		} else {
			b.WriteString(m.theme.Info.Render("AI: ") + msg.Content)
		}
		b.WriteString("\n")
	}
	if m.session.Loading() {
		b.WriteString(m.theme.Muted.Render("Thinking..."))
		b.WriteString("\n")
	}
	if m.speech.Listening() {
		b.WriteString(m.theme.Warning.Render("● Listening..."))
		b.WriteString("\n")
	}
	b.WriteString(m.chatInput.View())
	return m.theme.Overlay.Render(b.String())
}

func (m *Model) renderSettings() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Settings"))
	b.WriteString("\n")

	for i, entry := range m.settingsEntries() {
		var line string
		if i == 0 {
			line = fmt.Sprintf("Theme: %s", m.state.Theme())
		} else {
			mark := "[ ]"
			if m.state.IsEnabled(entry) {
				mark = "[x]"
			}
			line = mark + " " + app.WidgetLabels[entry]
		}
		if i == m.settingsCursor {
			line = m.theme.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return m.theme.Overlay.Render(b.String())
}

func progressBar(fraction float64, width int) string {
	if width < 1 {
		width = 1
	}
	filled := int(math.Round(fraction * float64(width)))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
