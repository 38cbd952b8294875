package ui

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"tableflip.dev/flipcal/pkg/locale"
	"tableflip.dev/flipcal/pkg/notes"
	"tableflip.dev/flipcal/pkg/store"
	"tableflip.dev/flipcal/pkg/tui"
)

// ErrNoTerminal is returned when stdin or stdout is not a terminal.
var ErrNoTerminal = errors.New("the calendar needs an interactive terminal, try `flipcal month` instead")

type UI struct {
	Config store.Config
	Disk   *store.Disk
	Notes  *notes.Store
	Log    *zap.Logger
}

func (d *UI) Do(ctx context.Context) error {
	if !isTerminal(os.Stdin.Fd()) || !isTerminal(os.Stdout.Fd()) {
		return ErrNoTerminal
	}
	if d.Notes == nil || d.Config == nil {
		return errors.New("ui requires config and a notes store")
	}
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := tui.Options{
		Store:      d.Notes,
		Names:      locale.New(d.Config.Locale()),
		Log:        log,
		Frames:     d.Config.FlipFrames(),
		FrameDelay: d.Config.FlipFrameDelay(),
	}
	if d.Config.Watch() && d.Disk != nil {
		events, err := d.Disk.Watch(ctx, log)
		if err != nil {
			log.Warn("ui: watching the notes record failed", zap.Error(err))
		} else {
			opts.Events = events
		}
	}
	return tui.Run(ctx, opts)
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
