// Package localstore persists entity collections as versioned JSON blobs
// under fixed string keys, the way the source application used browser
// local storage. Each collection is read and written wholesale; there are
// no transactions and no multi-key atomicity.
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
)

const formatVersion = 1

var ErrBadVersion = errors.New("unsupported collection version")

// envelope wraps every stored collection with its format version.
type envelope struct {
	Version   int             `json:"version"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Items     json.RawMessage `json:"items"`
}

// Store is a key-value blob store backed by a single JSON file. An empty
// path keeps everything in memory, which the tests and seed tooling use.
type Store struct {
	mu   sync.RWMutex
	path string
	data map[string]envelope
	now  func() time.Time
}

// Open loads the store file at path, creating an empty store when the
// file does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: make(map[string]envelope),
		now:  time.Now,
	}
	if path == "" {
		return s, nil
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read store file %s", path)
	}
	if len(raw) == 0 {
		return s, nil
	}
	if err := sonic.Unmarshal(raw, &s.data); err != nil {
		return nil, errors.Wrapf(err, "decode store file %s", path)
	}
	for key, env := range s.data {
		if env.Version != formatVersion {
			return nil, errors.Wrapf(ErrBadVersion, "collection %s has version %d", key, env.Version)
		}
	}

	return s, nil
}

// NewMemory returns a store that never touches disk.
func NewMemory() *Store {
	return &Store{
		data: make(map[string]envelope),
		now:  time.Now,
	}
}

// Load decodes the collection under key into out. The second return is
// false when the key has never been written.
func (s *Store) Load(key string, out any) (bool, error) {
	s.mu.RLock()
	env, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := sonic.Unmarshal(env.Items, out); err != nil {
		return false, errors.Wrapf(err, "decode collection %s", key)
	}

	return true, nil
}

// Save replaces the collection under key and flushes the whole store.
func (s *Store) Save(key string, items any) error {
	raw, err := sonic.Marshal(items)
	if err != nil {
		return errors.Wrapf(err, "encode collection %s", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = envelope{
		Version:   formatVersion,
		UpdatedAt: s.now().UTC(),
		Items:     raw,
	}
	return s.flushLocked()
}

// Drop removes the collection under key entirely.
func (s *Store) Drop(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flushLocked()
}

// Keys lists the collection keys currently present.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.data))
	for key := range s.data {
		out = append(out, key)
	}
	return out
}

func (s *Store) flushLocked() error {
	if s.path == "" {
		return nil
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(s.data); err != nil {
		return errors.Wrap(err, "encode store")
	}

	// Write-then-rename keeps the previous file intact if the write dies.
	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrapf(err, "create store dir for %s", s.path)
	}
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write store file %s", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrapf(err, "replace store file %s", s.path)
	}

	return nil
}
