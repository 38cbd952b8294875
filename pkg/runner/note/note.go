// Package note implements the single day note commands.
package note

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/flipcal/pkg/calendar"
	"tableflip.dev/flipcal/pkg/locale"
	"tableflip.dev/flipcal/pkg/notes"
	"tableflip.dev/flipcal/pkg/printers"
)

// Action selects what Note.Do does.
type Action string

const (
	Get    Action = "get"
	Set    Action = "set"
	Remove Action = "rm"
)

// Note reads or changes the note of one day.
type Note struct {
	Notes  *notes.Store
	Names  *locale.Names
	Action Action
	Date   string
	Text   string
	JSON   bool
	// Out defaults to color.Output.
	Out io.Writer
}

type result struct {
	Date    string `json:"date"`
	Note    string `json:"note,omitempty"`
	HasNote bool   `json:"hasNote"`
}

func (n *Note) Do(ctx context.Context) error {
	if n.Notes == nil {
		return errors.New("can not change notes, no notes store")
	}
	d, err := calendar.ParseKey(strings.TrimSpace(n.Date))
	if err != nil {
		return err
	}
	key := d.Key()

	switch n.Action {
	case Get:
	case Set:
		if strings.TrimSpace(n.Text) == "" {
			return errors.New("note text is required, use rm to delete")
		}
		if err := n.Notes.Set(key, n.Text); err != nil {
			return err
		}
	case Remove:
		if err := n.Notes.Delete(key); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown note action %q", n.Action)
	}

	text, ok := n.Notes.Get(key)
	return n.print(d, text, ok)
}

func (n *Note) print(d calendar.Day, text string, ok bool) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}
	if n.JSON {
		b, err := json.Marshal(result{Date: d.Key(), Note: text, HasNote: ok})
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}
	pp := printers.PrettyPrint{Out: out, Names: n.Names}
	pp.Note(d, text, ok)
	return nil
}
