package app

import (
	"fmt"

	"github.com/hearthdash/hearth/palette"
)

// Surfaces are the callbacks commands use to open other parts of the
// dashboard. The composition root wires them to the TUI; tests wire fakes.
type Surfaces struct {
	OpenSettings  func()
	OpenAssistant func()
	ToggleFocus   func()
	OpenURL       func(url string)
}

// RegisterCommands fills the palette registry with the global command
// catalog: theme switching, widget toggles, surface actions, and quick
// links. Widget toggle labels are dynamic so the palette always shows the
// action that would happen ("Hide X" vs "Show X").
func RegisterCommands(reg *palette.Registry, state *State, surfaces Surfaces) {
	// Theme commands
	reg.Register(palette.Command{
		ID:       "theme-light",
		Label:    func() string { return "Switch to Light Theme" },
		Category: "Theme",
		Keywords: []string{"light", "bright", "white"},
		Action:   func() { _ = state.SetTheme("light") },
	})
	reg.Register(palette.Command{
		ID:       "theme-dark",
		Label:    func() string { return "Switch to Dark Theme" },
		Category: "Theme",
		Keywords: []string{"dark", "night", "black"},
		Action:   func() { _ = state.SetTheme("dark") },
	})

	// Widget toggle commands
	for _, name := range WidgetNames {
		name := name
		label := WidgetLabels[name]
		reg.Register(palette.Command{
			ID: "toggle-" + name,
			Label: func() string {
				if state.IsEnabled(name) {
					return fmt.Sprintf("Hide %s Widget", label)
				}
				return fmt.Sprintf("Show %s Widget", label)
			},
			Category: "Widgets",
			Action:   func() { _ = state.ToggleWidget(name) },
		})
	}

	// Action commands
	reg.Register(palette.Command{
		ID:       "open-settings",
		Label:    func() string { return "Open Settings" },
		Category: "Actions",
		Keywords: []string{"settings", "preferences", "config"},
		Action:   func() { call(surfaces.OpenSettings) },
	})
	reg.Register(palette.Command{
		ID:       "focus-mode",
		Label:    func() string { return "Toggle Focus Mode" },
		Category: "Actions",
		Keywords: []string{"focus", "distraction", "minimal"},
		Action:   func() { call(surfaces.ToggleFocus) },
	})
	reg.Register(palette.Command{
		ID:       "open-ai",
		Label:    func() string { return "Open AI Assistant" },
		Category: "Actions",
		Keywords: []string{"ai", "assistant", "chat", "help"},
		Action:   func() { call(surfaces.OpenAssistant) },
	})

	// Quick links
	quickLinks := []struct {
		id, label, url string
		keywords       []string
	}{
		{"open-gmail", "Open Gmail", "https://gmail.com", []string{"email", "mail", "google"}},
		{"open-github", "Open GitHub", "https://github.com", []string{"code", "repository", "git"}},
		{"open-calendar", "Open Google Calendar", "https://calendar.google.com", []string{"calendar", "schedule", "events"}},
	}
	for _, ql := range quickLinks {
		ql := ql
		reg.Register(palette.Command{
			ID:       ql.id,
			Label:    func() string { return ql.label },
			Category: "Quick Links",
			Keywords: ql.keywords,
			Action: func() {
				if surfaces.OpenURL != nil {
					surfaces.OpenURL(ql.url)
				}
			},
		})
	}
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
