// Package app owns the dashboard's ambient state: the theme, the set of
// enabled widgets, and focus mode. The state is an explicit object persisted
// through the store and passed by reference to the surfaces that mutate it;
// there are no implicit globals.
package app

import (
	"github.com/hearthdash/hearth/errors"
	"github.com/hearthdash/hearth/store"
)

// Store namespace keys for ambient state.
const (
	ThemeKey          = "theme"
	EnabledWidgetsKey = "enabledWidgets"
)

// Widget name constants. The names double as keys in the enabledWidgets map.
const (
	WidgetClock       = "clock"
	WidgetWeather     = "weather"
	WidgetTodo        = "todo"
	WidgetNotes       = "notes"
	WidgetQuote       = "quote"
	WidgetNews        = "news"
	WidgetQuickLinks  = "quickLinks"
	WidgetPomodoro    = "pomodoro"
	WidgetMusicPlayer = "musicPlayer"
	WidgetMoodTracker = "moodTracker"
	WidgetBookmarks   = "bookmarks"
)

// WidgetNames lists every widget in presentation order.
var WidgetNames = []string{
	WidgetClock,
	WidgetWeather,
	WidgetTodo,
	WidgetNotes,
	WidgetQuote,
	WidgetNews,
	WidgetQuickLinks,
	WidgetPomodoro,
	WidgetMusicPlayer,
	WidgetMoodTracker,
	WidgetBookmarks,
}

// WidgetLabels maps widget names to their display labels.
var WidgetLabels = map[string]string{
	WidgetClock:       "Clock",
	WidgetWeather:     "Weather",
	WidgetTodo:        "Todo",
	WidgetNotes:       "Notes",
	WidgetQuote:       "Quote",
	WidgetNews:        "News",
	WidgetQuickLinks:  "Quick Links",
	WidgetPomodoro:    "Focus Timer",
	WidgetMusicPlayer: "Music Player",
	WidgetMoodTracker: "Mood Tracker",
	WidgetBookmarks:   "Bookmarks",
}

// State is the ambient application state.
type State struct {
	st      *store.Store
	theme   string
	enabled map[string]bool

	// FocusMode hides everything except the focus timer; it is deliberately
	// not persisted.
	FocusMode bool
}

// LoadState restores ambient state from the store, seeding defaults: dark
// theme (unless overridden) and every widget enabled.
func LoadState(st *store.Store, defaultTheme string) (*State, error) {
	if defaultTheme != "light" && defaultTheme != "dark" {
		defaultTheme = "dark"
	}

	s := &State{st: st}
	if err := st.GetOr(ThemeKey, &s.theme, defaultTheme); err != nil {
		return nil, err
	}
	if s.theme != "light" && s.theme != "dark" {
		s.theme = defaultTheme
	}

	defaults := make(map[string]bool, len(WidgetNames))
	for _, name := range WidgetNames {
		defaults[name] = true
	}
	if err := st.GetOr(EnabledWidgetsKey, &s.enabled, defaults); err != nil {
		return nil, err
	}
	// Widgets added after the map was first persisted default to enabled.
	for _, name := range WidgetNames {
		if _, ok := s.enabled[name]; !ok {
			s.enabled[name] = true
		}
	}
	return s, nil
}

// Reload re-reads theme and widget visibility from the store, in place.
// The watcher calls this when another process edits the persisted state.
func (s *State) Reload() {
	var th string
	if s.st.Get(ThemeKey, &th) && (th == "light" || th == "dark") {
		s.theme = th
	}
	var enabled map[string]bool
	if s.st.Get(EnabledWidgetsKey, &enabled) {
		s.enabled = enabled
		for _, name := range WidgetNames {
			if _, ok := s.enabled[name]; !ok {
				s.enabled[name] = true
			}
		}
	}
}

// Theme returns the active theme, "light" or "dark".
func (s *State) Theme() string {
	return s.theme
}

// SetTheme switches and persists the theme.
func (s *State) SetTheme(theme string) error {
	if theme != "light" && theme != "dark" {
		return errors.New(errors.ErrCodeInvalidInput, "theme must be light or dark").
			WithDetail("theme", theme)
	}
	s.theme = theme
	return s.st.Set(ThemeKey, s.theme)
}

// IsEnabled reports whether the named widget is visible.
func (s *State) IsEnabled(name string) bool {
	return s.enabled[name]
}

// ToggleWidget flips and persists a widget's visibility.
func (s *State) ToggleWidget(name string) error {
	s.enabled[name] = !s.enabled[name]
	return s.st.Set(EnabledWidgetsKey, s.enabled)
}

// EnabledWidgets returns a copy of the visibility map.
func (s *State) EnabledWidgets() map[string]bool {
	out := make(map[string]bool, len(s.enabled))
	for k, v := range s.enabled {
		out[k] = v
	}
	return out
}
