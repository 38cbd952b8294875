package calendar

import (
	"strings"
	"time"
)

// NoteLookup reports the note stored for a DayKey, if any.
type NoteLookup interface {
	Get(key string) (string, bool)
}

// Cell is one day slot of a month grid.
type Cell struct {
	Key        string
	Day        Day
	OtherMonth bool
	Today      bool
	Selected   bool
	HasNote    bool
	Note       string
}

// Grid is a Sunday-first six week view of one month.
type Grid struct {
	Month    Month
	Cells    [GridCells]Cell
	leading  int
	trailing int
}

// BuildGrid lays out month as 42 cells. Leading and trailing cells hold the
// spillover days of the adjacent months. Keys, today and note flags are all
// derived from each cell's real date. notes and selected may be nil.
func BuildGrid(month Month, notes NoteLookup, selected *Day, now time.Time) Grid {
	g := Grid{Month: month}

	lead := StartWeekday(month.Year, month.Month)
	days := DaysInMonth(month.Year, month.Month)
	prev := month.Add(-1)
	next := month.Add(1)
	prevDays := DaysInMonth(prev.Year, prev.Month)
	today := Today(now)

	g.leading = lead
	g.trailing = GridCells - lead - days

	for i := 0; i < GridCells; i++ {
		var d Day
		other := false
		switch {
		case i < lead:
			d = Day{Year: prev.Year, Month: prev.Month, Day: prevDays - (lead - 1 - i)}
			other = true
		case i >= lead+days:
			d = Day{Year: next.Year, Month: next.Month, Day: i - (lead + days) + 1}
			other = true
		default:
			d = Day{Year: month.Year, Month: month.Month, Day: i - lead + 1}
		}

		cell := Cell{
			Key:        d.Key(),
			Day:        d,
			OtherMonth: other,
			Today:      d == today,
			Selected:   selected != nil && *selected == d,
		}
		if notes != nil {
			if text, ok := notes.Get(cell.Key); ok && strings.TrimSpace(text) != "" {
				cell.HasNote = true
				cell.Note = text
			}
		}
		g.Cells[i] = cell
	}
	return g
}

// Leading returns the spillover cells from the previous month.
func (g Grid) Leading() []Cell {
	return g.Cells[:g.leading]
}

// Middle returns the cells of the grid's own month.
func (g Grid) Middle() []Cell {
	return g.Cells[g.leading : GridCells-g.trailing]
}

// Trailing returns the spillover cells from the next month.
func (g Grid) Trailing() []Cell {
	return g.Cells[GridCells-g.trailing:]
}

// Rows splits the grid into its six weeks.
func (g Grid) Rows() [][]Cell {
	rows := make([][]Cell, 0, GridCells/7)
	for i := 0; i < GridCells; i += 7 {
		rows = append(rows, g.Cells[i:i+7])
	}
	return rows
}

// Find returns the index of the cell for key, or -1.
func (g Grid) Find(key string) int {
	for i, c := range g.Cells {
		if c.Key == key {
			return i
		}
	}
	return -1
}
