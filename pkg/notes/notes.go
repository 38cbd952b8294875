// Package notes keeps the per-day notes shown on the calendar. The whole map
// is written back to its Backend on every mutation.
package notes

import (
	"encoding/json"
	"fmt"
	"maps"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"tableflip.dev/flipcal/pkg/calendar"
)

// Backend persists the serialized note map as a single record.
type Backend interface {
	// Load returns the stored record, or nil data when nothing is stored.
	Load() ([]byte, error)
	Save(data []byte) error
	Remove() error
}

// Note is one stored entry.
type Note struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// Store maps DayKeys to trimmed, non-empty note text.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	notes   map[string]string
	log     *zap.Logger
}

// New loads the note map from backend. Unreadable or corrupt data is logged
// and replaced with an empty map.
func New(backend Backend, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{backend: backend, log: log}
	s.notes = s.load()
	return s
}

func (s *Store) load() map[string]string {
	out := make(map[string]string)
	if s.backend == nil {
		return out
	}
	data, err := s.backend.Load()
	if err != nil {
		s.log.Warn("notes: load failed, starting empty", zap.Error(err))
		return out
	}
	if len(data) == 0 {
		return out
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		s.log.Warn("notes: stored data is corrupt, starting empty", zap.Error(err))
		return out
	}
	for k, v := range raw {
		if _, err := calendar.ParseKey(k); err != nil {
			s.log.Warn("notes: skipping stored note with a bad date", zap.String("key", k))
			continue
		}
		if v = strings.TrimSpace(v); v != "" {
			out[k] = v
		}
	}
	s.log.Debug("notes: loaded", zap.Int("count", len(out)))
	return out
}

// Reload re-reads the backend, replacing the in-memory map. It reports
// whether the notes changed, so a store's own writes echoed back by a file
// watcher can be told apart from outside edits.
func (s *Store) Reload() bool {
	fresh := s.load()
	s.mu.Lock()
	defer s.mu.Unlock()
	if maps.Equal(s.notes, fresh) {
		return false
	}
	s.notes = fresh
	return true
}

// Get returns the note for key.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.notes[key]
	return v, ok
}

// Has reports whether key has a note.
func (s *Store) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Count returns the number of stored notes.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// All returns every note ordered by key, which is also date order.
func (s *Store) All() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Note, 0, len(s.notes))
	for k, v := range s.notes {
		out = append(out, Note{Key: k, Text: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Set stores text for key after trimming it. Blank text deletes the note.
func (s *Store) Set(key, text string) error {
	d, err := calendar.ParseKey(key)
	if err != nil {
		return err
	}
	key = d.Key()
	text = strings.TrimSpace(text)
	if text == "" {
		return s.Delete(key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.notes[key]
	s.notes[key] = text
	if err := s.persist(); err != nil {
		if had {
			s.notes[key] = prev
		} else {
			delete(s.notes, key)
		}
		return err
	}
	s.log.Debug("notes: set", zap.String("key", key))
	return nil
}

// Delete removes the note for key. Deleting a missing note still persists.
func (s *Store) Delete(key string) error {
	d, err := calendar.ParseKey(key)
	if err != nil {
		return err
	}
	key = d.Key()

	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.notes[key]
	delete(s.notes, key)
	if err := s.persist(); err != nil {
		if had {
			s.notes[key] = prev
		}
		return err
	}
	s.log.Debug("notes: delete", zap.String("key", key))
	return nil
}

// ClearAll drops every note and removes the stored record.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.backend != nil {
		if err := s.backend.Remove(); err != nil {
			return fmt.Errorf("notes: clear: %w", err)
		}
	}
	n := len(s.notes)
	s.notes = make(map[string]string)
	s.log.Info("notes: cleared", zap.Int("count", n))
	return nil
}

// persist must be called with mu held.
func (s *Store) persist() error {
	if s.backend == nil {
		return nil
	}
	data, err := json.Marshal(s.notes)
	if err != nil {
		return fmt.Errorf("notes: encode: %w", err)
	}
	if err := s.backend.Save(data); err != nil {
		return fmt.Errorf("notes: save: %w", err)
	}
	return nil
}

// Memory is an in-process Backend.
type Memory struct {
	mu   sync.Mutex
	Data []byte
	// Err, when set, is returned by every call.
	Err    error
	Writes int
}

// Load implements Backend.
func (m *Memory) Load() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]byte(nil), m.Data...), nil
}

// Save implements Backend.
func (m *Memory) Save(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Data = append([]byte(nil), data...)
	m.Writes++
	return nil
}

// Remove implements Backend.
func (m *Memory) Remove() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Data = nil
	m.Writes++
	return nil
}

var _ Backend = (*Memory)(nil)
