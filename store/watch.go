package store

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hearthdash/hearth/errors"
)

// Event is emitted by Store.Watch when underlying storage changes.
type Event struct {
	// Key is the namespace key that changed.
	Key string
}

// Watch streams change events until ctx is cancelled. Callers should drain
// the returned channel to avoid blocking the watcher; the channel is closed
// once ctx is done or the watcher encounters an unrecoverable error. Rapid
// bursts of writes are coalesced so a consumer redraws once per burst.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "cannot create store watcher")
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				s.log.WithError(err).Warn("store watcher close failed")
			}
		})
	}

	if err := watcher.Add(s.basePath); err != nil {
		closeWatcher()
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "cannot watch store directory").
			WithDetail("path", s.basePath)
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events if the consumer is not ready; the next refresh
				// picks up the change and the watcher never stalls.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log.WithError(err).Debug("store watcher error")
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				key := s.keyForPath(evt.Name)
				if key == "" {
					continue
				}
				throttle.Enqueue(Event{Key: key}, send)
			}
		}
	}()

	return events, nil
}

// keyForPath derives the namespace key from a file path inside the store,
// ignoring the temp directory used for atomic writes.
func (s *Store) keyForPath(path string) string {
	rel, err := filepath.Rel(s.basePath, path)
	if err != nil || rel == "." {
		return ""
	}
	if strings.HasPrefix(rel, ".tmp") {
		return ""
	}
	return rel
}

// eventThrottle coalesces rapid change notifications so the UI can redraw
// once per burst of filesystem activity instead of on every single write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev.Key] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	for key := range pending {
		send(Event{Key: key})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
