package tui

import (
	"fmt"
	"strings"

	"tableflip.dev/flipcal/pkg/calendar"
	"tableflip.dev/flipcal/pkg/locale"
	"tableflip.dev/flipcal/pkg/tui/theme"
)

// pickerYears is how far the year picker reaches either side of the
// current year.
const pickerYears = 50

// picker chooses a month and year to jump to.
type picker struct {
	month   int
	year    int
	minYear int
	maxYear int
}

func newPicker(view calendar.Month, currentYear int) picker {
	p := picker{
		month:   view.Month,
		year:    view.Year,
		minYear: currentYear - pickerYears,
		maxYear: currentYear + pickerYears,
	}
	p.year = min(max(p.year, p.minYear), p.maxYear)
	return p
}

func (p *picker) moveMonth(delta int) {
	p.month = ((p.month+delta)%12 + 12) % 12
}

func (p *picker) moveYear(delta int) {
	p.year = min(max(p.year+delta, p.minYear), p.maxYear)
}

func (p picker) target() calendar.Month {
	return calendar.Month{Year: p.year, Month: p.month}
}

func (p picker) view(th theme.ModalTheme, names *locale.Names) string {
	var months []string
	for m := 0; m < 12; m++ {
		name := names.MonthName(m)
		if m == p.month {
			name = th.Selected.Render(name)
		}
		months = append(months, name)
	}
	rows := []string{
		th.Title.Render("Go to month"),
		"",
		strings.Join(months[0:4], "  "),
		strings.Join(months[4:8], "  "),
		strings.Join(months[8:12], "  "),
		"",
		th.Body.Render(fmt.Sprintf("Year: ‹ %s ›", th.Selected.Render(fmt.Sprintf("%d", p.year)))),
		"",
		th.Body.Render("j/k month  h/l year  enter go  esc cancel"),
	}
	return th.Frame.Render(strings.Join(rows, "\n"))
}
