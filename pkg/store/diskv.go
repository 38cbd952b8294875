// Package store persists the note record on disk and watches it for changes
// made by other processes.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/flipcal/pkg/notes"
)

// NotesKey is the fixed record key holding the serialized note map.
const NotesKey = "flipCalendarNotes"

// Disk is a notes.Backend storing the note record with diskv.
type Disk struct {
	d        *diskv.Diskv
	basePath string
}

var _ notes.Backend = (*Disk)(nil)

// Load opens the diskv store described by cfg. A nil cfg loads the config
// from the environment.
func Load(cfg Config) (*Disk, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Disk{
		// No read cache: other processes may rewrite the record.
		d:        diskv.New(diskv.Options{BasePath: basePath}),
		basePath: basePath,
	}, nil
}

// BasePath returns the directory holding the record.
func (p *Disk) BasePath() string { return p.basePath }

// Load implements notes.Backend. A missing record yields nil data.
func (p *Disk) Load() ([]byte, error) {
	val, err := p.d.Read(NotesKey)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: read %s: %w", NotesKey, err)
	}
	return val, nil
}

// Save implements notes.Backend.
func (p *Disk) Save(data []byte) error {
	if err := p.d.Write(NotesKey, data); err != nil {
		return fmt.Errorf("store: write %s: %w", NotesKey, err)
	}
	return nil
}

// Remove implements notes.Backend. Removing a missing record is not an error.
func (p *Disk) Remove() error {
	if !p.d.Has(NotesKey) {
		return nil
	}
	if err := p.d.Erase(NotesKey); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: erase %s: %w", NotesKey, err)
	}
	return nil
}
