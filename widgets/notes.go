package widgets

import "github.com/hearthdash/hearth/store"

// NotesKey is the sticky-note widget's store namespace. The value is the raw
// note text, not a structured record.
const NotesKey = "stickyNotes"

// Notes is the sticky-note widget's persisted text.
type Notes struct {
	st   *store.Store
	text string
}

// LoadNotes reads the persisted note, defaulting to empty.
func LoadNotes(st *store.Store) (*Notes, error) {
	n := &Notes{st: st}
	if err := st.GetOr(NotesKey, &n.text, ""); err != nil {
		return nil, err
	}
	return n, nil
}

// Text returns the current note text.
func (n *Notes) Text() string {
	return n.text
}

// SetText replaces and persists the note text.
func (n *Notes) SetText(text string) error {
	n.text = text
	return n.st.Set(NotesKey, n.text)
}
