// Package widgets holds the data layers behind the dashboard's widgets. Each
// widget owns one store namespace and goes through the same load-default,
// mutate, save-on-change path; rendering lives with the TUI.
package widgets

import (
	"time"

	"github.com/google/uuid"

	"github.com/hearthdash/hearth/store"
)

// TodosKey is the todo widget's store namespace.
const TodosKey = "todos"

// Todo is one todo item.
type Todo struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// TodoList is the todo widget's persisted collection. Newest items first.
type TodoList struct {
	st    *store.Store
	items []Todo
}

// LoadTodos reads the persisted todo list, defaulting to empty.
func LoadTodos(st *store.Store) (*TodoList, error) {
	l := &TodoList{st: st}
	if err := st.GetOr(TodosKey, &l.items, []Todo{}); err != nil {
		return nil, err
	}
	return l, nil
}

// Add prepends a new todo. Blank text is ignored.
func (l *TodoList) Add(text string) (Todo, error) {
	if text == "" {
		return Todo{}, nil
	}
	todo := Todo{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now(),
	}
	l.items = append([]Todo{todo}, l.items...)
	return todo, l.save()
}

// Toggle flips completion for the todo with the given id.
func (l *TodoList) Toggle(id string) error {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].Completed = !l.items[i].Completed
			return l.save()
		}
	}
	return nil
}

// Delete removes the todo with the given id.
func (l *TodoList) Delete(id string) error {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return l.save()
		}
	}
	return nil
}

// Items returns the current list, newest first.
func (l *TodoList) Items() []Todo {
	return l.items
}

// Remaining counts the incomplete items.
func (l *TodoList) Remaining() int {
	n := 0
	for _, t := range l.items {
		if !t.Completed {
			n++
		}
	}
	return n
}

func (l *TodoList) save() error {
	return l.st.Set(TodosKey, l.items)
}
