// Package notelist implements the commands that work on every note at once.
package notelist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"

	"tableflip.dev/flipcal/pkg/export"
	"tableflip.dev/flipcal/pkg/locale"
	"tableflip.dev/flipcal/pkg/notes"
	"tableflip.dev/flipcal/pkg/printers"
)

var errNoStore = errors.New("no notes store")

// List prints every note.
type List struct {
	Notes *notes.Store
	Names *locale.Names
	JSON  bool
	Out   io.Writer
}

func (n *List) Do(ctx context.Context) error {
	if n.Notes == nil {
		return errNoStore
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	all := n.Notes.All()
	if n.JSON {
		b, err := json.Marshal(all)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}
	pp := printers.PrettyPrint{Out: out, Names: n.Names}
	pp.TitleWithCount("Notes", len(all))
	pp.Notes(all...)
	return nil
}

// Confirm asks a yes/no question.
type Confirm func(label string) (bool, error)

// PromptConfirm asks on the terminal with promptui. Anything but yes is a
// no.
func PromptConfirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Clear removes every note after confirmation.
type Clear struct {
	Notes *notes.Store
	// Yes skips the confirmation.
	Yes     bool
	Confirm Confirm
	Out     io.Writer
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Notes == nil {
		return errNoStore
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	if !n.Yes {
		confirm := n.Confirm
		if confirm == nil {
			confirm = PromptConfirm
		}
		ok, err := confirm(fmt.Sprintf("Clear ALL %d saved notes? This cannot be undone", n.Notes.Count()))
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(out, "Nothing cleared.")
			return nil
		}
	}
	if err := n.Notes.ClearAll(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, "All notes cleared.")
	return nil
}

// Export writes every note as an iCalendar file.
type Export struct {
	Notes *notes.Store
	// Path is the output file; empty writes to Out.
	Path string
	Out  io.Writer
	Now  func() time.Time
}

func (n *Export) Do(ctx context.Context) error {
	if n.Notes == nil {
		return errNoStore
	}
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	if n.Path == "" {
		out := n.Out
		if out == nil {
			out = os.Stdout
		}
		return export.WriteICS(out, n.Notes.All(), now())
	}

	f, err := os.Create(n.Path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := export.WriteICS(f, n.Notes.All(), now()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
