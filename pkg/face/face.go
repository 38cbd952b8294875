// Package face renders months into the two card faces of the flip calendar
// and keeps the title, subtitle and status text shared by both faces.
package face

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/flipcal/pkg/calendar"
	"tableflip.dev/flipcal/pkg/locale"
)

// Face names one of the two render surfaces.
type Face int

const (
	Front Face = iota
	Back
)

// Other returns the opposite face.
func (f Face) Other() Face {
	if f == Front {
		return Back
	}
	return Front
}

func (f Face) String() string {
	if f == Front {
		return "front"
	}
	return "back"
}

// NoteStore is the part of notes.Store the board needs.
type NoteStore interface {
	calendar.NoteLookup
	Set(key, text string) error
	Count() int
}

// Prompter asks the user for a line of text. ok is false when cancelled.
type Prompter interface {
	RequestText(label, seed string) (text string, ok bool)
}

// PrompterFunc adapts a function to Prompter.
type PrompterFunc func(label, seed string) (string, bool)

// RequestText implements Prompter.
func (f PrompterFunc) RequestText(label, seed string) (string, bool) { return f(label, seed) }

// Content is what one face currently shows.
type Content struct {
	Month    calendar.Month
	Weekdays [7]string
	Grid     calendar.Grid
	// Label is the accessible name of the face, "<Month> <Year>".
	Label    string
	Rendered bool
}

// Board owns both faces and the text shared between them.
type Board struct {
	faces    [2]Content
	title    string
	subtitle string
	meta     string
	selected *calendar.Day

	notes NoteStore
	names *locale.Names
	now   func() time.Time
	log   *zap.Logger
}

// New returns an empty board. now defaults to time.Now.
func New(notes NoteStore, names *locale.Names, now func() time.Time, log *zap.Logger) *Board {
	if now == nil {
		now = time.Now
	}
	if names == nil {
		names = locale.New("")
	}
	if log == nil {
		log = zap.NewNop()
	}
	b := &Board{notes: notes, names: names, now: now, log: log}
	b.RefreshMeta()
	return b
}

// RenderFace replaces the content of f with month and updates the shared
// title and status text.
func (b *Board) RenderFace(f Face, month calendar.Month) {
	b.faces[f] = Content{
		Month:    month,
		Weekdays: b.names.Weekdays(),
		Grid:     calendar.BuildGrid(month, b.notes, b.selected, b.now()),
		Label:    b.names.MonthLabel(month),
		Rendered: true,
	}
	b.log.Debug("face: rendered", zap.Stringer("face", f), zap.Stringer("month", month))
	b.UpdateTitle(month)
	b.RefreshMeta()
}

// UpdateTitle sets the title to month and shows "Current month" when month
// is the real current month.
func (b *Board) UpdateTitle(month calendar.Month) {
	b.title = b.names.MonthLabel(month)
	if month == calendar.MonthOf(b.now()) {
		b.subtitle = "Current month"
	} else {
		b.subtitle = ""
	}
}

// RefreshMeta recomputes the status line from the selection and note count.
func (b *Board) RefreshMeta() {
	total := 0
	if b.notes != nil {
		total = b.notes.Count()
	}
	if b.selected == nil {
		b.meta = fmt.Sprintf("Total notes: %d. Tip: press enter twice on a day to add one.", total)
		return
	}
	status := "no note"
	if b.hasNote(b.selected.Key()) {
		status = "has a note"
	}
	b.meta = fmt.Sprintf("%s — %s. Total notes: %d.", b.names.DateLabel(*b.selected), status, total)
}

func (b *Board) hasNote(key string) bool {
	if b.notes == nil {
		return false
	}
	_, ok := b.notes.Get(key)
	return ok
}

// Face returns the content of f.
func (b *Board) Face(f Face) Content { return b.faces[f] }

// Title returns the shared title text.
func (b *Board) Title() string { return b.title }

// Subtitle returns the shared subtitle text.
func (b *Board) Subtitle() string { return b.subtitle }

// Meta returns the shared status text.
func (b *Board) Meta() string { return b.meta }

// Selected returns the selected day, if any.
func (b *Board) Selected() *calendar.Day {
	if b.selected == nil {
		return nil
	}
	d := *b.selected
	return &d
}

// Select makes cell idx of f the only selected cell. It does not persist
// anything.
func (b *Board) Select(f Face, idx int) bool {
	if idx < 0 || idx >= calendar.GridCells || !b.faces[f].Rendered {
		return false
	}
	d := b.faces[f].Grid.Cells[idx].Day
	b.SelectDay(d)
	return true
}

// SelectDay selects d wherever it is shown and refreshes the status text.
func (b *Board) SelectDay(d calendar.Day) {
	b.selected = &d
	key := d.Key()
	for fi := range b.faces {
		cells := &b.faces[fi].Grid.Cells
		for i := range cells {
			cells[i].Selected = cells[i].Key == key
		}
	}
	b.RefreshMeta()
}

// SelectToday selects today's cell on f. It reports false when today is
// not on that face.
func (b *Board) SelectToday(f Face) bool {
	today := calendar.Today(b.now())
	idx := b.faces[f].Grid.Find(today.Key())
	if idx < 0 || b.faces[f].Grid.Cells[idx].OtherMonth {
		return false
	}
	return b.Select(f, idx)
}

// EditNote prompts for the note of cell idx on f, seeded with the current
// note. A cancelled prompt changes nothing. Blank input deletes the note.
// On success only face f is re-rendered.
func (b *Board) EditNote(f Face, idx int, p Prompter) (bool, error) {
	if idx < 0 || idx >= calendar.GridCells || !b.faces[f].Rendered || p == nil || b.notes == nil {
		return false, nil
	}
	cell := b.faces[f].Grid.Cells[idx]
	existing, _ := b.notes.Get(cell.Key)
	text, ok := p.RequestText(b.PromptLabel(cell.Day), existing)
	if !ok {
		return false, nil
	}
	if err := b.notes.Set(cell.Key, text); err != nil {
		return false, err
	}
	b.RenderFace(f, b.faces[f].Month)
	return true, nil
}

// PromptLabel is the question shown when editing the note of d.
func (b *Board) PromptLabel(d calendar.Day) string {
	return fmt.Sprintf("Add/edit note for %s:", b.names.DateLabel(d))
}

// Names exposes the locale used for labels.
func (b *Board) Names() *locale.Names { return b.names }

// Now returns the board's clock reading.
func (b *Board) Now() time.Time { return b.now() }
