package widgets

import (
	"github.com/hearthdash/hearth/store"
)

// MusicKey is the music player's store namespace.
const MusicKey = "musicPlayerTracks"

// Track is one queue entry.
type Track struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
	URL    string `json:"url"`
}

var defaultTracks = []Track{
	{ID: 1, Title: "Chill Vibes", Artist: "Lofi Artist", URL: "https://www.soundjay.com/misc/sounds/coffee-shop-ambience.mp3"},
	{ID: 2, Title: "Focus Flow", Artist: "Study Beats", URL: "https://www.soundjay.com/misc/sounds/rain-on-tent.mp3"},
	{ID: 3, Title: "Peaceful Moments", Artist: "Ambient Master", URL: "https://www.soundjay.com/misc/sounds/forest-birds.mp3"},
}

// MusicQueue is the music player's persisted track list plus cursor. Only the
// track list persists; playback position is ephemeral.
type MusicQueue struct {
	st      *store.Store
	tracks  []Track
	current int
	playing bool
}

// LoadMusicQueue reads the persisted queue, seeding the defaults when absent.
func LoadMusicQueue(st *store.Store) (*MusicQueue, error) {
	m := &MusicQueue{st: st}
	if err := st.GetOr(MusicKey, &m.tracks, defaultTracks); err != nil {
		return nil, err
	}
	return m, nil
}

// Current returns the track under the cursor, if any.
func (m *MusicQueue) Current() (Track, bool) {
	if len(m.tracks) == 0 {
		return Track{}, false
	}
	return m.tracks[m.current], true
}

// Next advances the cursor, wrapping at the end of the queue.
func (m *MusicQueue) Next() {
	if len(m.tracks) == 0 {
		return
	}
	m.current = (m.current + 1) % len(m.tracks)
}

// Prev moves the cursor back, wrapping at the start of the queue.
func (m *MusicQueue) Prev() {
	if len(m.tracks) == 0 {
		return
	}
	m.current = (m.current - 1 + len(m.tracks)) % len(m.tracks)
}

// TogglePlay flips playback.
func (m *MusicQueue) TogglePlay() {
	m.playing = !m.playing
}

// Playing reports whether playback is active.
func (m *MusicQueue) Playing() bool {
	return m.playing
}

// Tracks returns the queue in order.
func (m *MusicQueue) Tracks() []Track {
	return m.tracks
}

// SetTracks replaces and persists the queue, resetting the cursor.
func (m *MusicQueue) SetTracks(tracks []Track) error {
	m.tracks = tracks
	m.current = 0
	return m.st.Set(MusicKey, m.tracks)
}
