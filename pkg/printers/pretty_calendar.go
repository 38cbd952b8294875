package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/flipcal/pkg/calendar"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints the 42 cell grid of g with a centered title. Days from the
// neighbouring months are faint, days with notes bold, today underlined.
// The notes of the month follow the grid.
func (pp *PrettyPrint) Month(g calendar.Grid) {
	w := pp.out()
	tf := color.New(color.FgWhite, color.Italic)

	m := pp.names().MonthLabel(g.Month)
	mid := max((width-len([]rune(m)))/2, 0)
	_, _ = tf.Fprintf(w, "%s%s\n", strings.Repeat(" ", mid), m)

	hdr := color.New(color.Faint)
	days := make([]string, 0, 7)
	for _, d := range pp.names().Weekdays() {
		r := []rune(d)
		if len(r) > 2 {
			r = r[:2]
		}
		days = append(days, fmt.Sprintf("%-2s", string(r)))
	}
	_, _ = hdr.Fprintln(w, strings.Join(days, " "))

	other := color.New(color.Faint, color.FgWhite)
	plain := color.New(color.FgWhite)
	noted := color.New(color.Bold, color.FgHiYellow)

	for _, row := range g.Rows() {
		for i, c := range row {
			printer := plain
			switch {
			case c.OtherMonth:
				printer = other
			case c.HasNote:
				printer = noted
			}
			if c.Today {
				printer = color.New(color.Underline).Add(printerAttrs(c)...)
			}
			sep := " "
			if i == len(row)-1 {
				sep = "\n"
			}
			_, _ = printer.Fprintf(w, "%2d", c.Day.Day)
			_, _ = fmt.Fprint(w, sep)
		}
	}
	_, _ = fmt.Fprintln(w, "")

	for _, c := range g.Middle() {
		if c.HasNote {
			_, _ = noted.Fprintf(w, "%2d", c.Day.Day)
			_, _ = fmt.Fprintf(w, "  %s\n", c.Note)
		}
	}
}

func printerAttrs(c calendar.Cell) []color.Attribute {
	if c.HasNote {
		return []color.Attribute{color.Bold, color.FgHiYellow}
	}
	return []color.Attribute{color.FgWhite}
}
