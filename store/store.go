// Package store provides the namespaced key/value persistence layer shared by
// every widget and control surface. Values are JSON-serialized records keyed
// by a per-feature namespace string ("todos", "theme", "assistant.apiKey").
// Malformed persisted data is never fatal to a reader: it is logged and the
// caller-supplied default takes over.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
	"github.com/sirupsen/logrus"

	"github.com/hearthdash/hearth/errors"
	"github.com/hearthdash/hearth/logging"
)

// Store is a disk-backed key/value store with JSON (de)serialization.
// Writes go through a temp file so a failed write leaves prior content intact.
type Store struct {
	d        *diskv.Diskv
	basePath string
	log      *logrus.Entry
}

// Open creates a Store rooted at basePath, creating the directory if needed.
func Open(basePath string) (*Store, error) {
	if basePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternal, "cannot determine home directory")
		}
		basePath = filepath.Join(home, ".hearth", "store")
	}

	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeStorageWrite, "cannot create store directory").
			WithDetail("path", basePath)
	}

	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			TempDir:      filepath.Join(basePath, ".tmp"),
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
		log:      logging.NewLogger("store"),
	}, nil
}

// Get reads the stored JSON for key into out. It returns false when the key
// is absent or its content does not decode into out's shape; a decode failure
// is logged and treated as absence, never surfaced as an error.
func (s *Store) Get(key string, out interface{}) bool {
	data, err := s.d.Read(key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.log.WithError(errors.StorageParse(key, err)).Warn("discarding unreadable stored value")
		return false
	}
	return true
}

// GetOr reads key into out, falling back to def when the key is absent or
// unreadable. The fallback is re-persisted so subsequent readers see it.
func (s *Store) GetOr(key string, out interface{}, def interface{}) error {
	if s.Get(key, out) {
		return nil
	}

	seed, err := json.Marshal(def)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInvalidInput, "default value is not JSON-serializable").
			WithDetail("key", key)
	}
	if err := json.Unmarshal(seed, out); err != nil {
		return errors.Wrap(err, errors.ErrCodeInvalidInput, "default value does not match target shape").
			WithDetail("key", key)
	}
	if err := s.d.Write(key, seed); err != nil {
		// Seeding is best effort; the caller still has a usable value.
		s.log.WithError(err).WithField("key", key).Warn("failed to seed default value")
	}
	return nil
}

// Set serializes v and persists it synchronously under key.
func (s *Store) Set(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInvalidInput, "value is not JSON-serializable").
			WithDetail("key", key)
	}
	if err := s.d.Write(key, data); err != nil {
		return errors.Wrap(err, errors.ErrCodeStorageWrite, "failed to persist value").
			WithDetail("key", key)
	}
	return nil
}

// Delete removes key from the store. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil {
		return errors.Wrap(err, errors.ErrCodeStorageWrite, "failed to delete value").
			WithDetail("key", key)
	}
	return nil
}

// Has reports whether key currently holds a value.
func (s *Store) Has(key string) bool {
	return s.d.Has(key)
}

// BasePath returns the directory backing the store.
func (s *Store) BasePath() string {
	return s.basePath
}
