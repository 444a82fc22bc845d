package widgets

import (
	"strings"

	"github.com/google/uuid"

	"github.com/hearthdash/hearth/store"
)

// QuickLinksKey is the quick-links widget's store namespace.
const QuickLinksKey = "quickLinks"

// QuickLink is one pinned link.
type QuickLink struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

// defaultQuickLinks seed the widget on first use.
var defaultQuickLinks = []QuickLink{
	{ID: "1", Name: "Google", URL: "https://google.com", Icon: "🔍"},
	{ID: "2", Name: "GitHub", URL: "https://github.com", Icon: "💻"},
	{ID: "3", Name: "YouTube", URL: "https://youtube.com", Icon: "📺"},
	{ID: "4", Name: "Twitter", URL: "https://twitter.com", Icon: "🐦"},
}

// QuickLinks is the quick-links widget's persisted collection.
type QuickLinks struct {
	st    *store.Store
	links []QuickLink
}

// LoadQuickLinks reads the persisted links, seeding the defaults when absent.
func LoadQuickLinks(st *store.Store) (*QuickLinks, error) {
	q := &QuickLinks{st: st}
	if err := st.GetOr(QuickLinksKey, &q.links, defaultQuickLinks); err != nil {
		return nil, err
	}
	return q, nil
}

// Add appends a link. Names and URLs are required; a missing scheme defaults
// to https and a missing icon to a generic one.
func (q *QuickLinks) Add(name, url, icon string) (QuickLink, error) {
	if name == "" || url == "" {
		return QuickLink{}, nil
	}
	if !strings.HasPrefix(url, "http") {
		url = "https://" + url
	}
	if icon == "" {
		icon = "🔗"
	}
	link := QuickLink{ID: uuid.NewString(), Name: name, URL: url, Icon: icon}
	q.links = append(q.links, link)
	return link, q.save()
}

// Remove deletes the link with the given id.
func (q *QuickLinks) Remove(id string) error {
	for i := range q.links {
		if q.links[i].ID == id {
			q.links = append(q.links[:i], q.links[i+1:]...)
			return q.save()
		}
	}
	return nil
}

// Links returns the current collection.
func (q *QuickLinks) Links() []QuickLink {
	return q.links
}

func (q *QuickLinks) save() error {
	return q.st.Set(QuickLinksKey, q.links)
}
