// Package mcp exposes the flip calendar notes over the Model Context Protocol.
package mcp

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/flipcal/pkg/calendar"
	"tableflip.dev/flipcal/pkg/export"
	"tableflip.dev/flipcal/pkg/locale"
	"tableflip.dev/flipcal/pkg/notes"
)

// Service implements the operations shared by the MCP tools and resources.
type Service struct {
	Notes *notes.Store
	Names *locale.Names
	// Now defaults to time.Now.
	Now func() time.Time
}

// NoteDTO is a transport-friendly view of one day's note.
type NoteDTO struct {
	Date    string `json:"date"`
	Label   string `json:"label"`
	Note    string `json:"note,omitempty"`
	HasNote bool   `json:"hasNote"`
}

// CellDTO is one cell of a month grid.
type CellDTO struct {
	Date       string `json:"date"`
	Day        int    `json:"day"`
	OtherMonth bool   `json:"otherMonth,omitempty"`
	Today      bool   `json:"today,omitempty"`
	Note       string `json:"note,omitempty"`
}

// MonthDTO is the 42 cell grid of a month.
type MonthDTO struct {
	Month    string    `json:"month"`
	Label    string    `json:"label"`
	Weekdays []string  `json:"weekdays"`
	Cells    []CellDTO `json:"cells"`
}

// NewService builds a service over store.
func NewService(store *notes.Store, names *locale.Names) *Service {
	return &Service{Notes: store, Names: names}
}

func (s *Service) check() error {
	if s.Notes == nil {
		return errors.New("notes store is not configured")
	}
	if s.Names == nil {
		s.Names = locale.New("")
	}
	return nil
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Service) dto(d calendar.Day) NoteDTO {
	text, ok := s.Notes.Get(d.Key())
	return NoteDTO{Date: d.Key(), Label: s.Names.DateLabel(d), Note: text, HasNote: ok}
}

// GetNote returns the note stored for date (YYYY-MM-DD).
func (s *Service) GetNote(date string) (NoteDTO, error) {
	if err := s.check(); err != nil {
		return NoteDTO{}, err
	}
	d, err := calendar.ParseKey(strings.TrimSpace(date))
	if err != nil {
		return NoteDTO{}, err
	}
	return s.dto(d), nil
}

// SetNote stores text for date. Blank text deletes the note.
func (s *Service) SetNote(date, text string) (NoteDTO, error) {
	if err := s.check(); err != nil {
		return NoteDTO{}, err
	}
	d, err := calendar.ParseKey(strings.TrimSpace(date))
	if err != nil {
		return NoteDTO{}, err
	}
	if err := s.Notes.Set(d.Key(), text); err != nil {
		return NoteDTO{}, err
	}
	return s.dto(d), nil
}

// DeleteNote removes the note for date.
func (s *Service) DeleteNote(date string) (NoteDTO, error) {
	return s.SetNote(date, "")
}

// ListNotes returns every note in date order. A non-empty month (YYYY-MM)
// limits the result to that month.
func (s *Service) ListNotes(month string) ([]NoteDTO, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	prefix := ""
	if month = strings.TrimSpace(month); month != "" {
		m, err := calendar.ParseMonth(month)
		if err != nil {
			return nil, err
		}
		prefix = m.String() + "-"
	}
	out := make([]NoteDTO, 0)
	for _, n := range s.Notes.All() {
		if !strings.HasPrefix(n.Key, prefix) {
			continue
		}
		d, err := calendar.ParseKey(n.Key)
		if err != nil {
			continue
		}
		out = append(out, NoteDTO{Date: n.Key, Label: s.Names.DateLabel(d), Note: n.Text, HasNote: true})
	}
	return out, nil
}

// MonthGrid returns the grid for month (YYYY-MM), or the current month when
// month is empty.
func (s *Service) MonthGrid(month string) (MonthDTO, error) {
	if err := s.check(); err != nil {
		return MonthDTO{}, err
	}
	now := s.now()
	m := calendar.MonthOf(now)
	if month = strings.TrimSpace(month); month != "" {
		var err error
		if m, err = calendar.ParseMonth(month); err != nil {
			return MonthDTO{}, err
		}
	}
	g := calendar.BuildGrid(m, s.Notes, nil, now)
	wd := s.Names.Weekdays()
	out := MonthDTO{
		Month:    m.String(),
		Label:    s.Names.MonthLabel(m),
		Weekdays: wd[:],
		Cells:    make([]CellDTO, 0, calendar.GridCells),
	}
	for _, c := range g.Cells {
		out.Cells = append(out.Cells, CellDTO{
			Date:       c.Key,
			Day:        c.Day.Day,
			OtherMonth: c.OtherMonth,
			Today:      c.Today,
			Note:       c.Note,
		})
	}
	return out, nil
}

// ICS renders every note as an iCalendar document.
func (s *Service) ICS() (string, error) {
	if err := s.check(); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := export.WriteICS(&buf, s.Notes.All(), s.now()); err != nil {
		return "", fmt.Errorf("mcp: %w", err)
	}
	return buf.String(), nil
}
