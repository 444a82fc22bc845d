// Package palette holds the global command registry behind the command
// palette. The registry is the single source of truth for every invocable
// action; the open/closed state machine and keyboard capture live with the
// TUI overlay that presents it.
package palette

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hearthdash/hearth/logging"
)

// Command is one invocable action. Label is a function so dynamic labels
// ("Hide Clock Widget" vs "Show Clock Widget") are recomputed on every
// palette open rather than cached at registration.
type Command struct {
	ID       string
	Label    func() string
	Category string
	Keywords []string
	Action   func()
}

// Group is one category's commands, in registration order.
type Group struct {
	Category string
	Commands []Command
}

// Registry is the catalog of commands, grouped by category. Categories keep
// their first-registration order; commands keep registration order within a
// category.
type Registry struct {
	byID       map[string]Command
	categories []string
	grouped    map[string][]Command
	log        *logrus.Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:    make(map[string]Command),
		grouped: make(map[string][]Command),
		log:     logging.NewLogger("palette"),
	}
}

// Register adds a command to the catalog. Registering a duplicate ID replaces
// the action but keeps the original position.
func (r *Registry) Register(cmd Command) {
	if cmd.Label == nil {
		label := cmd.ID
		cmd.Label = func() string { return label }
	}

	if _, exists := r.byID[cmd.ID]; exists {
		r.byID[cmd.ID] = cmd
		cmds := r.grouped[cmd.Category]
		for i := range cmds {
			if cmds[i].ID == cmd.ID {
				cmds[i] = cmd
			}
		}
		return
	}

	r.byID[cmd.ID] = cmd
	if _, seen := r.grouped[cmd.Category]; !seen {
		r.categories = append(r.categories, cmd.Category)
	}
	r.grouped[cmd.Category] = append(r.grouped[cmd.Category], cmd)
}

// Search returns the commands whose label or any keyword contains query,
// case-insensitively, grouped by category. An empty query returns everything.
// There is no relevance ranking: match or no match, in registration order.
func (r *Registry) Search(query string) []Group {
	query = strings.ToLower(strings.TrimSpace(query))

	var groups []Group
	for _, category := range r.categories {
		var matched []Command
		for _, cmd := range r.grouped[category] {
			if matches(cmd, query) {
				matched = append(matched, cmd)
			}
		}
		if len(matched) > 0 {
			groups = append(groups, Group{Category: category, Commands: matched})
		}
	}
	return groups
}

// Execute looks up a command by ID and invokes its action exactly once.
// Executing an unknown id is a no-op.
func (r *Registry) Execute(id string) {
	cmd, ok := r.byID[id]
	if !ok {
		r.log.WithField("id", id).Debug("ignoring unknown command id")
		return
	}
	r.log.WithField("id", id).Debug("executing command")
	cmd.Action()
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.byID)
}

func matches(cmd Command, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(cmd.Label()), query) {
		return true
	}
	for _, kw := range cmd.Keywords {
		if strings.Contains(strings.ToLower(kw), query) {
			return true
		}
	}
	return false
}
