package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticLabel(s string) func() string {
	return func() string { return s }
}

func themeRegistry() *Registry {
	r := NewRegistry()
	r.Register(Command{
		ID:       "theme-light",
		Label:    staticLabel("Switch to Light Theme"),
		Category: "Theme",
		Keywords: []string{"light", "bright", "white"},
		Action:   func() {},
	})
	r.Register(Command{
		ID:       "theme-dark",
		Label:    staticLabel("Switch to Dark Theme"),
		Category: "Theme",
		Keywords: []string{"dark", "night", "black"},
		Action:   func() {},
	})
	return r
}

func TestSearchSubstring(t *testing.T) {
	r := themeRegistry()

	groups := r.Search("dark")
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Commands, 1)
	assert.Equal(t, "Switch to Dark Theme", groups[0].Commands[0].Label())
}

func TestSearchCaseInsensitive(t *testing.T) {
	r := themeRegistry()

	groups := r.Search("THEME")
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Commands, 2, "both theme commands should match, each exactly once")
	assert.Equal(t, "theme-light", groups[0].Commands[0].ID)
	assert.Equal(t, "theme-dark", groups[0].Commands[1].ID)
}

func TestSearchKeywords(t *testing.T) {
	r := themeRegistry()

	groups := r.Search("night")
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Commands, 1)
	assert.Equal(t, "theme-dark", groups[0].Commands[0].ID)
}

func TestSearchGroupingPreservesOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(Command{ID: "b1", Label: staticLabel("show x"), Category: "Widgets", Action: func() {}})
	r.Register(Command{ID: "a1", Label: staticLabel("show y"), Category: "Actions", Action: func() {}})
	r.Register(Command{ID: "b2", Label: staticLabel("show z"), Category: "Widgets", Action: func() {}})

	groups := r.Search("show")
	require.Len(t, groups, 2)
	// Categories in first-registration order, not alphabetical.
	assert.Equal(t, "Widgets", groups[0].Category)
	assert.Equal(t, "Actions", groups[1].Category)
	// Registration order within a category.
	assert.Equal(t, "b1", groups[0].Commands[0].ID)
	assert.Equal(t, "b2", groups[0].Commands[1].ID)
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	r := themeRegistry()

	groups := r.Search("")
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Commands, 2)
}

func TestExecute(t *testing.T) {
	calls := 0
	r := NewRegistry()
	r.Register(Command{
		ID:       "toggle-clock",
		Label:    staticLabel("Hide Clock Widget"),
		Category: "Widgets",
		Action:   func() { calls++ },
	})

	r.Execute("toggle-clock")
	assert.Equal(t, 1, calls, "action must run exactly once")

	// Unknown id is a no-op.
	r.Execute("does-not-exist")
	assert.Equal(t, 1, calls)
}

func TestDynamicLabel(t *testing.T) {
	visible := true
	r := NewRegistry()
	r.Register(Command{
		ID: "toggle-clock",
		Label: func() string {
			if visible {
				return "Hide Clock Widget"
			}
			return "Show Clock Widget"
		},
		Category: "Widgets",
		Action:   func() { visible = !visible },
	})

	groups := r.Search("clock")
	require.Len(t, groups, 1)
	assert.Equal(t, "Hide Clock Widget", groups[0].Commands[0].Label())

	r.Execute("toggle-clock")

	// Label reflects the new state on the next search; it is never cached.
	groups = r.Search("clock")
	assert.Equal(t, "Show Clock Widget", groups[0].Commands[0].Label())
}
