// Package tui is the dashboard's presentation shell. It composes the widget
// panes, the command palette overlay, the assistant pane, and the settings
// pane on top of the leaf packages; all domain logic stays in those packages.
package tui

import (
	"context"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/hearthdash/hearth/app"
	"github.com/hearthdash/hearth/assistant"
	"github.com/hearthdash/hearth/background"
	"github.com/hearthdash/hearth/config"
	"github.com/hearthdash/hearth/logging"
	"github.com/hearthdash/hearth/store"
	"github.com/hearthdash/hearth/widgets"
)

// Options configures the dashboard shell. Zero values fall back to the
// loaded configuration and real implementations.
type Options struct {
	Config *config.Config
	Store  *store.Store

	// Recognizer supplies speech input. Nil means the platform has none and
	// the mic toggle reports it as unsupported.
	Recognizer assistant.Recognizer

	// Now overrides the clock for tests.
	Now func() time.Time
}

// Run assembles the dashboard and blocks until the user quits.
func Run(opts Options) error {
	m, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	m.send = p.Send

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if events, werr := m.store.Watch(ctx); werr == nil {
		m.events = events
	} else {
		m.log.WithError(werr).Warn("store watch unavailable, external edits will not refresh")
	}

	_, err = p.Run()
	return err
}

// NewModel wires every dashboard component. Exposed for tests, which drive
// Update directly instead of running a program.
func NewModel(opts Options) (*Model, error) {
	log := logging.NewLogger("tui")

	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.LoadDefault()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	st := opts.Store
	if st == nil {
		path := cfg.Settings.StorePath
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			path = filepath.Join(home, ".hearth", "store")
		}
		opened, err := store.Open(path)
		if err != nil {
			return nil, err
		}
		st = opened
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	state, err := app.LoadState(st, cfg.Settings.Theme)
	if err != nil {
		return nil, err
	}

	todos, err := widgets.LoadTodos(st)
	if err != nil {
		return nil, err
	}
	notes, err := widgets.LoadNotes(st)
	if err != nil {
		return nil, err
	}
	links, err := widgets.LoadQuickLinks(st)
	if err != nil {
		return nil, err
	}
	bookmarks, err := widgets.LoadBookmarks(st)
	if err != nil {
		return nil, err
	}
	mood, err := widgets.LoadMoodTracker(st, now)
	if err != nil {
		return nil, err
	}
	music, err := widgets.LoadMusicQueue(st)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	client := assistant.NewClient(cfg.Assistant.Endpoint, cfg.Assistant.Model, httpClient)
	session := assistant.NewSession(st, client)
	fetcher := background.New(cfg.Background.Endpoint, cfg.Background.AccessKey, httpClient, st, now)

	m := newModel(deps{
		cfg:        cfg,
		store:      st,
		state:      state,
		session:    session,
		fetcher:    fetcher,
		todos:      todos,
		notes:      notes,
		links:      links,
		bookmarks:  bookmarks,
		mood:       mood,
		music:      music,
		recognizer: opts.Recognizer,
		now:        now,
		log:        log,
	})
	return m, nil
}

// openURL hands a link to the desktop's default browser. Failures are
// logged, not surfaced; the dashboard keeps running either way.
func openURL(url string, log *logrus.Entry) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.WithError(err).WithField("url", url).Warn("could not open browser")
	}
}
