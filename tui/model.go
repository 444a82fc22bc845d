package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/hearthdash/hearth/app"
	"github.com/hearthdash/hearth/assistant"
	"github.com/hearthdash/hearth/background"
	"github.com/hearthdash/hearth/config"
	"github.com/hearthdash/hearth/palette"
	"github.com/hearthdash/hearth/store"
	"github.com/hearthdash/hearth/timer"
	"github.com/hearthdash/hearth/tui/theme"
	"github.com/hearthdash/hearth/widgets"
)

type mode int

const (
	modeDashboard mode = iota
	modePalette
	modeAssistant
	modeSettings
)

// statusSink collects timer notifications so Update can surface them on the
// status line after driving a tick.
type statusSink struct {
	pending []string
}

func (s *statusSink) Notify(message string) {
	s.pending = append(s.pending, message)
}

func (s *statusSink) drain() []string {
	out := s.pending
	s.pending = nil
	return out
}

type deps struct {
	cfg        *config.Config
	store      *store.Store
	state      *app.State
	session    *assistant.Session
	fetcher    *background.Fetcher
	todos      *widgets.TodoList
	notes      *widgets.Notes
	links      *widgets.QuickLinks
	bookmarks  *widgets.Bookmarks
	mood       *widgets.MoodTracker
	music      *widgets.MusicQueue
	recognizer assistant.Recognizer
	now        func() time.Time
	log        *logrus.Entry
}

// Model is the state of the dashboard TUI.
type Model struct {
	cfg     *config.Config
	store   *store.Store
	state   *app.State
	reg     *palette.Registry
	engine  *timer.Engine
	sink    *statusSink
	session *assistant.Session
	speech  *assistant.SpeechInput
	fetcher *background.Fetcher

	todos     *widgets.TodoList
	notes     *widgets.Notes
	links     *widgets.QuickLinks
	bookmarks *widgets.Bookmarks
	mood      *widgets.MoodTracker
	music     *widgets.MusicQueue

	theme *theme.Theme
	keys  KeyMap
	help  help.Model

	mode   mode
	clock  func() time.Time
	now    time.Time
	width  int
	height int

	paletteInput  textinput.Model
	paletteCursor int
	paletteGroups []palette.Group

	chatInput textinput.Model
	keyInput  textinput.Model

	settingsCursor int

	// focusIdx selects among the visible widget panes; rowSel tracks the
	// cursor inside list-shaped widgets, keyed by widget name.
	focusIdx int
	rowSel   map[string]int

	status     string
	statusErr  bool
	statusGen  int
	background string

	events <-chan store.Event
	send   func(tea.Msg)
	log    *logrus.Entry
}

func newModel(d deps) *Model {
	sink := &statusSink{}

	pi := textinput.New()
	pi.Placeholder = "Type a command..."
	pi.Prompt = "> "
	pi.CharLimit = 120

	ci := textinput.New()
	ci.Placeholder = "Ask anything..."
	ci.Prompt = "> "
	ci.CharLimit = 500

	ki := textinput.New()
	ki.Placeholder = "Perplexity API key"
	ki.Prompt = "> "
	ki.EchoMode = textinput.EchoPassword

	m := &Model{
		cfg:          d.cfg,
		store:        d.store,
		state:        d.state,
		reg:          palette.NewRegistry(),
		engine:       timer.New(sink),
		sink:         sink,
		session:      d.session,
		fetcher:      d.fetcher,
		todos:        d.todos,
		notes:        d.notes,
		links:        d.links,
		bookmarks:    d.bookmarks,
		mood:         d.mood,
		music:        d.music,
		theme:        theme.NewTheme(d.state.Theme()),
		keys:         DefaultKeyMap,
		help:         help.New(),
		clock:        d.now,
		now:          d.now(),
		rowSel:       make(map[string]int),
		paletteInput: pi,
		chatInput:    ci,
		keyInput:     ki,
		log:          d.log,
	}

	m.speech = assistant.NewSpeechInput(d.recognizer,
		func(text string) { m.post(speechTextMsg{text: text}) },
		func(err error) { m.post(speechErrMsg{err: err}) },
	)

	app.RegisterCommands(m.reg, m.state, app.Surfaces{
		OpenSettings:  func() { m.mode = modeSettings },
		OpenAssistant: func() { m.enterAssistant() },
		ToggleFocus:   func() { m.state.FocusMode = !m.state.FocusMode },
		OpenURL:       func(url string) { openURL(url, m.log) },
	})
	m.registerTimerCommands()

	return m
}

// post delivers a message from a non-Update goroutine into the program.
// Before the program is attached it is dropped; nothing listens yet.
func (m *Model) post(msg tea.Msg) {
	if m.send != nil {
		m.send(msg)
	}
}

func (m *Model) registerTimerCommands() {
	m.reg.Register(palette.Command{
		ID: "timer-toggle",
		Label: func() string {
			if m.engine.Active() {
				return "Pause Focus Timer"
			}
			return "Start Focus Timer"
		},
		Category: "Timer",
		Keywords: []string{"pomodoro", "timer", "focus", "pause", "start"},
		Action:   func() { m.engine.Toggle() },
	})
	m.reg.Register(palette.Command{
		ID:       "timer-reset",
		Label:    func() string { return "Reset Focus Timer" },
		Category: "Timer",
		Keywords: []string{"pomodoro", "timer", "reset"},
		Action:   func() { m.engine.Reset() },
	})
	m.reg.Register(palette.Command{
		ID:       "assistant-clear",
		Label:    func() string { return "Clear Assistant Conversation" },
		Category: "Assistant",
		Keywords: []string{"ai", "chat", "clear", "history"},
		Action:   func() { m.session.Clear() },
	})
}

func (m *Model) enterAssistant() {
	m.mode = modeAssistant
	if m.session.HasCredential() {
		m.chatInput.Focus()
	} else {
		m.keyInput.Focus()
	}
}

func (m *Model) openPalette() tea.Cmd {
	m.mode = modePalette
	m.paletteInput.SetValue("")
	m.paletteCursor = 0
	m.paletteGroups = m.reg.Search("")
	m.paletteInput.Focus()
	return textinput.Blink
}

func (m *Model) closePalette() {
	m.mode = modeDashboard
	m.paletteInput.Blur()
}

// Init schedules the steady one-second tick, the background fetch, and the
// store event pump.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(), m.fetchBackgroundCmd()}
	if m.events != nil {
		cmds = append(cmds, m.waitForStoreEvent())
	}
	return tea.Batch(cmds...)
}
