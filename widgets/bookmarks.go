package widgets

import (
	"strings"

	"github.com/google/uuid"

	"github.com/hearthdash/hearth/store"
)

// BookmarksKey is the bookmark widget's store namespace.
const BookmarksKey = "customBookmarks"

// Bookmark is one saved bookmark.
type Bookmark struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Favicon string `json:"favicon,omitempty"`
}

var defaultBookmarks = []Bookmark{
	{ID: "1", Title: "Google", URL: "https://google.com", Favicon: "https://www.google.com/favicon.ico"},
	{ID: "2", Title: "GitHub", URL: "https://github.com", Favicon: "https://github.com/favicon.ico"},
	{ID: "3", Title: "YouTube", URL: "https://youtube.com", Favicon: "https://www.youtube.com/favicon.ico"},
}

// Bookmarks is the bookmark widget's persisted collection.
type Bookmarks struct {
	st    *store.Store
	items []Bookmark
}

// LoadBookmarks reads the persisted bookmarks, seeding the defaults when absent.
func LoadBookmarks(st *store.Store) (*Bookmarks, error) {
	b := &Bookmarks{st: st}
	if err := st.GetOr(BookmarksKey, &b.items, defaultBookmarks); err != nil {
		return nil, err
	}
	return b, nil
}

// Add appends a bookmark. Title and URL are required.
func (b *Bookmarks) Add(title, url string) (Bookmark, error) {
	if title == "" || url == "" {
		return Bookmark{}, nil
	}
	if !strings.HasPrefix(url, "http") {
		url = "https://" + url
	}
	bm := Bookmark{ID: uuid.NewString(), Title: title, URL: url}
	b.items = append(b.items, bm)
	return bm, b.save()
}

// Remove deletes the bookmark with the given id.
func (b *Bookmarks) Remove(id string) error {
	for i := range b.items {
		if b.items[i].ID == id {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return b.save()
		}
	}
	return nil
}

// Items returns the current collection.
func (b *Bookmarks) Items() []Bookmark {
	return b.items
}

func (b *Bookmarks) save() error {
	return b.st.Set(BookmarksKey, b.items)
}
