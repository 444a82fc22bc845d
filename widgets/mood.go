package widgets

import (
	"time"

	"github.com/hearthdash/hearth/store"
)

// MoodKey is the mood tracker's store namespace.
const MoodKey = "moodTracker"

// MoodEntry records one day's mood on a 1-5 scale.
type MoodEntry struct {
	Date  time.Time `json:"date"`
	Mood  int       `json:"mood"`
	Emoji string    `json:"emoji"`
	Note  string    `json:"note,omitempty"`
}

// moodEmojis maps the 1-5 scale to its display emoji.
var moodEmojis = map[int]string{
	1: "😞",
	2: "😕",
	3: "😐",
	4: "😊",
	5: "😄",
}

// MoodTracker is the mood widget's persisted history, newest first. At most
// one entry exists per calendar day; recording again replaces that day.
type MoodTracker struct {
	st      *store.Store
	entries []MoodEntry
	now     func() time.Time
}

// LoadMoodTracker reads the persisted history, defaulting to empty. now may
// be overridden to control the calendar date in tests.
func LoadMoodTracker(st *store.Store, now func() time.Time) (*MoodTracker, error) {
	if now == nil {
		now = time.Now
	}
	m := &MoodTracker{st: st, now: now}
	if err := st.GetOr(MoodKey, &m.entries, []MoodEntry{}); err != nil {
		return nil, err
	}
	return m, nil
}

// Record stores today's mood, replacing any existing entry for today.
// Out-of-scale values are clamped to the nearest end.
func (m *MoodTracker) Record(mood int, note string) (MoodEntry, error) {
	if mood < 1 {
		mood = 1
	}
	if mood > 5 {
		mood = 5
	}

	today := m.now()
	entry := MoodEntry{
		Date:  today,
		Mood:  mood,
		Emoji: moodEmojis[mood],
		Note:  note,
	}

	filtered := m.entries[:0:0]
	for _, e := range m.entries {
		if !sameDay(e.Date, today) {
			filtered = append(filtered, e)
		}
	}
	m.entries = append([]MoodEntry{entry}, filtered...)
	return entry, m.st.Set(MoodKey, m.entries)
}

// Today returns today's entry, if recorded.
func (m *MoodTracker) Today() (MoodEntry, bool) {
	for _, e := range m.entries {
		if sameDay(e.Date, m.now()) {
			return e, true
		}
	}
	return MoodEntry{}, false
}

// Entries returns the full history, newest first.
func (m *MoodTracker) Entries() []MoodEntry {
	return m.entries
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
