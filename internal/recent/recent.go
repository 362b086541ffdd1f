// Package recent persists the list of recently opened blueprints.
package recent

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Entry is a single recently opened document.
type Entry struct {
	Path     string    `yaml:"path"`
	OpenedAt time.Time `yaml:"opened_at"`
}

type file struct {
	Entries []Entry `yaml:"entries"`
}

// Store is a YAML backed registry, most recent entry first.
type Store struct {
	path  string
	limit int
	now   func() time.Time

	mu sync.Mutex
}

type Option func(*Store)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns a Store persisting to path. limit < 1 keeps a single entry.
func New(path string, limit int, opts ...Option) *Store {
	if limit < 1 {
		limit = 1
	}
	s := &Store{path: path, limit: limit, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Path() string { return s.path }

// Add records path as the most recently opened document. An existing entry
// for the same absolute path moves to the front.
func (s *Store) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "recent: resolve %s", path)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}

	out := make([]Entry, 0, len(entries)+1)
	out = append(out, Entry{Path: abs, OpenedAt: s.now().UTC()})
	for _, e := range entries {
		if e.Path == abs {
			continue
		}
		out = append(out, e)
	}
	if len(out) > s.limit {
		out = out[:s.limit]
	}
	return s.save(out)
}

// List returns the entries, most recent first. A missing file is an empty
// registry.
func (s *Store) List() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	if len(entries) > s.limit {
		entries = entries[:s.limit]
	}
	return entries, nil
}

// Clear removes every entry.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrapf(err, "recent: remove %s", s.path)
	}
	return nil
}

func (s *Store) load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "recent: read %s", s.path)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "recent: parse %s", s.path)
	}
	return f.Entries, nil
}

// save replaces the registry file atomically.
func (s *Store) save(entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "recent: create directory")
	}

	data, err := yaml.Marshal(file{Entries: entries})
	if err != nil {
		return errors.Wrap(err, "recent: encode")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".recent-*.yaml")
	if err != nil {
		return errors.Wrap(err, "recent: create temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "recent: write temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "recent: close temp file")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Wrapf(err, "recent: replace %s", s.path)
	}
	return nil
}
