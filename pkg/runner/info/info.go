package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/flipcal/pkg/notes"
	"tableflip.dev/flipcal/pkg/store"
)

type Info struct {
	Config store.Config
	Notes  *notes.Store
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("FLIPCAL_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "FLIPCAL_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "FLIPCAL_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path:", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.locale:", orDetect(n.Config.Locale()))
	_, _ = fmt.Fprintf(out, "Config.flip: %d frames every %s\n", n.Config.FlipFrames(), n.Config.FlipFrameDelay())
	_, _ = fmt.Fprintln(out, "Config.watch:", n.Config.Watch())
	if f := n.Config.LogFile(); f != "" {
		_, _ = fmt.Fprintf(out, "Config.log: %s (%s)\n", f, n.Config.LogLevel())
	}

	if n.Notes == nil {
		return fmt.Errorf("failed to open the notes store")
	}
	_, _ = fmt.Fprintf(out, "Notes: %d\n", n.Notes.Count())
	return nil
}

func orDetect(s string) string {
	if s == "" {
		return "(detect)"
	}
	return s
}
