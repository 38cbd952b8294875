package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"tableflip.dev/flipcal/pkg/notes"
)

func TestDiskRoundTrip(t *testing.T) {
	base := t.TempDir()
	d, err := Load(StaticConfig{Path: base})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	data, err := d.Load()
	if err != nil || data != nil {
		t.Fatalf("missing record should load empty, got %q, %v", data, err)
	}

	s := notes.New(d, zaptest.NewLogger(t))
	if err := s.Set("2024-03-15", "Dentist"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, NotesKey)); err != nil {
		t.Fatalf("expected record file: %v", err)
	}

	again := notes.New(d, nil)
	if got, _ := again.Get("2024-03-15"); got != "Dentist" {
		t.Fatalf("reloaded note = %q", got)
	}

	if err := again.ClearAll(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, NotesKey)); !os.IsNotExist(err) {
		t.Fatalf("expected record removed, stat err = %v", err)
	}
	if err := d.Remove(); err != nil {
		t.Fatalf("removing a missing record should succeed: %v", err)
	}
}

func TestDiskCorruptRecordLoadsEmpty(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, NotesKey), []byte("]]"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	d, err := Load(StaticConfig{Path: base})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s := notes.New(d, nil); s.Count() != 0 {
		t.Fatalf("corrupt record should load empty")
	}
}

func TestWatchEmitsRecordChanges(t *testing.T) {
	base := t.TempDir()
	d, err := Load(StaticConfig{Path: base})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := d.Watch(ctx, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to start before writing.
	time.Sleep(50 * time.Millisecond)

	if err := d.Save([]byte(`{"2024-01-01":"x"}`)); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case evt := <-ch:
		if filepath.Base(evt.Path) != NotesKey {
			t.Fatalf("unexpected event path %q", evt.Path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestFileConfigDefaults(t *testing.T) {
	cfg := &fileConfig{}
	if cfg.FlipFrames() != defaultFlipFrames {
		t.Fatalf("frames default = %d", cfg.FlipFrames())
	}
	if cfg.FlipFrameDelay() != defaultFrameMS*time.Millisecond {
		t.Fatalf("delay default = %v", cfg.FlipFrameDelay())
	}
}
