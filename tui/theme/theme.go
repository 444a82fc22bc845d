package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const defaultThemeName = "dark"

// --- Dark palette ---
const (
	darkGreen              = "#98BB6C"
	darkYellow             = "#E0AF68"
	darkRed                = "#F7768E"
	darkOrange             = "#FF9E64"
	darkCyan               = "#7DCFFF"
	darkBlue               = "#7AA2F7"
	darkViolet             = "#BB9AF7"
	darkPink               = "#D27E99"
	darkLightText          = "#C0CAF5"
	darkMutedText          = "#565F89"
	darkBorder             = "#3B4261"
	darkSelectedBackground = "#283457"
	darkSubtleBackground   = "#1A1B26"
	darkPanelBackground    = "#16161E"
)

// --- Light palette ---
const (
	lightGreen              = "#587539"
	lightYellow             = "#8C6C3E"
	lightRed                = "#C64343"
	lightOrange             = "#B15C00"
	lightCyan               = "#007197"
	lightBlue               = "#2E7DE9"
	lightViolet             = "#7847BD"
	lightPink               = "#B35C74"
	lightLightText          = "#3760BF"
	lightMutedText          = "#848CB5"
	lightBorder             = "#C1C9E6"
	lightSelectedBackground = "#B7C1E3"
	lightSubtleBackground   = "#E1E2E7"
	lightPanelBackground    = "#D5D6DB"
)

// Colors encapsulates the palette used by a theme.
type Colors struct {
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Orange             lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	Blue               lipgloss.TerminalColor
	Violet             lipgloss.TerminalColor
	Pink               lipgloss.TerminalColor
	Text               lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
	SubtleBackground   lipgloss.TerminalColor
	PanelBackground    lipgloss.TerminalColor
}

// Theme holds the pre-configured styles used across the dashboard.
type Theme struct {
	Name   string
	Colors Colors

	// Headers and titles
	Header lipgloss.Style
	Title  lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text styles
	Bold     lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style

	// Container styles
	Panel      lipgloss.Style
	FocusPanel lipgloss.Style
	Overlay    lipgloss.Style

	// Interactive elements
	Input       lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style

	// Special styles
	Highlight lipgloss.Style
	Accent    lipgloss.Style
	Done      lipgloss.Style

	// Accent rotation for widget headers
	AccentColors []lipgloss.TerminalColor
}

var themeRegistry = map[string]func() Colors{
	"dark":  newDarkColors,
	"light": newLightColors,
}

// Names lists the selectable theme names in display order.
func Names() []string {
	return []string{"light", "dark"}
}

// Valid reports whether name resolves to a registered palette.
func Valid(name string) bool {
	_, ok := themeRegistry[normalizeThemeName(name)]
	return ok
}

// NewTheme constructs a theme from a palette name, falling back to the
// default palette for unknown names.
func NewTheme(name string) *Theme {
	key := normalizeThemeName(name)
	builder, ok := themeRegistry[key]
	if !ok {
		key = defaultThemeName
		builder = themeRegistry[key]
	}
	return newThemeFromColors(builder(), key)
}

// InitializeTUI configures the lipgloss color profile. Some CI and pipe
// environments report no color support even when the consumer forces it.
func InitializeTUI() {
	if os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

func newThemeFromColors(colors Colors, name string) *Theme {
	return &Theme{
		Name:   name,
		Colors: colors,

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Blue),

		Title: lipgloss.NewStyle().
			Bold(true).
			Underline(true),

		Success: lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(colors.Yellow).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(colors.Cyan).
			Bold(true),

		Bold: lipgloss.NewStyle().
			Bold(true),

		Normal: lipgloss.NewStyle().
			Foreground(colors.Text),

		Muted: lipgloss.NewStyle().
			Foreground(colors.MutedText),

		Selected: lipgloss.NewStyle().
			Background(colors.SelectedBackground).
			Foreground(colors.Text),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border).
			Padding(0, 1),

		FocusPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Blue).
			Padding(0, 1),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Violet).
			Padding(1, 2),

		Input: lipgloss.NewStyle().
			Foreground(colors.Text),

		Placeholder: lipgloss.NewStyle().
			Foreground(colors.MutedText).
			Italic(true),

		Cursor: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true),

		Highlight: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true),

		Accent: lipgloss.NewStyle().
			Foreground(colors.Violet).
			Bold(true),

		Done: lipgloss.NewStyle().
			Foreground(colors.MutedText).
			Strikethrough(true),

		AccentColors: []lipgloss.TerminalColor{
			colors.Cyan,
			colors.Blue,
			colors.Violet,
			colors.Pink,
			colors.Green,
			colors.Orange,
		},
	}
}

func normalizeThemeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func newDarkColors() Colors {
	return Colors{
		Green:              lipgloss.Color(darkGreen),
		Yellow:             lipgloss.Color(darkYellow),
		Red:                lipgloss.Color(darkRed),
		Orange:             lipgloss.Color(darkOrange),
		Cyan:               lipgloss.Color(darkCyan),
		Blue:               lipgloss.Color(darkBlue),
		Violet:             lipgloss.Color(darkViolet),
		Pink:               lipgloss.Color(darkPink),
		Text:               lipgloss.Color(darkLightText),
		MutedText:          lipgloss.Color(darkMutedText),
		Border:             lipgloss.Color(darkBorder),
		SelectedBackground: lipgloss.Color(darkSelectedBackground),
		SubtleBackground:   lipgloss.Color(darkSubtleBackground),
		PanelBackground:    lipgloss.Color(darkPanelBackground),
	}
}

func newLightColors() Colors {
	return Colors{
		Green:              lipgloss.Color(lightGreen),
		Yellow:             lipgloss.Color(lightYellow),
		Red:                lipgloss.Color(lightRed),
		Orange:             lipgloss.Color(lightOrange),
		Cyan:               lipgloss.Color(lightCyan),
		Blue:               lipgloss.Color(lightBlue),
		Violet:             lipgloss.Color(lightViolet),
		Pink:               lipgloss.Color(lightPink),
		Text:               lipgloss.Color(lightLightText),
		MutedText:          lipgloss.Color(lightMutedText),
		Border:             lipgloss.Color(lightBorder),
		SelectedBackground: lipgloss.Color(lightSelectedBackground),
		SubtleBackground:   lipgloss.Color(lightSubtleBackground),
		PanelBackground:    lipgloss.Color(lightPanelBackground),
	}
}
