// Package background fetches the dashboard's daily background image, caching
// the result in the store so the network is contacted at most once per
// calendar day.
package background

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hearthdash/hearth/logging"
	"github.com/hearthdash/hearth/store"
)

// Store namespace keys for the cache pair.
const (
	ImageKey = "dailyBackground"
	DateKey  = "backgroundDate"
)

// HTTPDoer is the capability interface over the HTTP transport.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher retrieves the daily background URL.
type Fetcher struct {
	endpoint  string
	accessKey string
	http      HTTPDoer
	store     *store.Store
	log       *logrus.Entry
	now       func() time.Time
}

// New creates a Fetcher. Passing nil for doer uses http.DefaultClient; now
// may be overridden to control the calendar date in tests.
func New(endpoint, accessKey string, doer HTTPDoer, st *store.Store, now func() time.Time) *Fetcher {
	if doer == nil {
		doer = http.DefaultClient
	}
	if now == nil {
		now = time.Now
	}
	return &Fetcher{
		endpoint:  endpoint,
		accessKey: accessKey,
		http:      doer,
		store:     st,
		log:       logging.NewLogger("background"),
		now:       now,
	}
}

// photoResponse is the subset of the photo API response the dashboard needs.
type photoResponse struct {
	URLs struct {
		Full string `json:"full"`
	} `json:"urls"`
}

// Fetch returns today's background URL. A cached value is reused without a
// network call if and only if it was fetched on the current calendar date.
// On any failure the empty fallback is returned and nothing is persisted, so
// the next call on the same day retries. Concurrent calls are not
// deduplicated; a duplicate fetch is harmless.
func (f *Fetcher) Fetch(ctx context.Context) string {
	today := f.today()

	var cachedURL, cachedDate string
	if f.store.Get(ImageKey, &cachedURL) && f.store.Get(DateKey, &cachedDate) && cachedDate == today {
		return cachedURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		f.log.WithError(err).Warn("cannot build background request")
		return ""
	}
	req.Header.Set("Authorization", "Client-ID "+f.accessKey)

	resp, err := f.http.Do(req)
	if err != nil {
		f.log.WithError(err).Warn("background fetch failed")
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		f.log.WithField("status", resp.StatusCode).Warn("background fetch returned non-2xx")
		return ""
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		f.log.WithError(err).Warn("background response unreadable")
		return ""
	}

	var parsed photoResponse
	if err := json.Unmarshal(data, &parsed); err != nil || parsed.URLs.Full == "" {
		f.log.Warn("background response missing image URL")
		return ""
	}

	if err := f.store.Set(ImageKey, parsed.URLs.Full); err != nil {
		f.log.WithError(err).Warn("failed to cache background URL")
	} else if err := f.store.Set(DateKey, today); err != nil {
		f.log.WithError(err).Warn("failed to cache background date")
	}
	return parsed.URLs.Full
}

func (f *Fetcher) today() string {
	return f.now().Format("Mon Jan 2 2006")
}
