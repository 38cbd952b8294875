package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/flipcal/pkg/calendar"
	"tableflip.dev/flipcal/pkg/face"
	"tableflip.dev/flipcal/pkg/tui/theme"
)

// cellWidth is the printable width of a day cell on a face at rest.
const cellWidth = 9

// faceLines is the number of text lines inside the card frame: the weekday
// header plus two lines for each of the six weeks.
const faceLines = 1 + 6*2

// renderFace draws content with cells width columns wide. cursor is the
// cell index under the keyboard cursor, or -1.
func renderFace(th theme.FaceTheme, c face.Content, cursor, width int, border string) string {
	frame := th.Frame.BorderForeground(lipgloss.Color(border))
	if width <= 0 || !c.Rendered {
		return frame.Render(strings.Repeat("\n", faceLines-1))
	}

	lines := make([]string, 0, faceLines)
	header := make([]string, 0, 7)
	for _, wd := range c.Weekdays {
		header = append(header, th.Weekday.Render(fit(wd, width)))
	}
	lines = append(lines, strings.Join(header, " "))

	for r, row := range c.Grid.Rows() {
		top := make([]string, 0, 7)
		bottom := make([]string, 0, 7)
		for col, cell := range row {
			style := cellStyle(th, cell, r*7+col == cursor)
			top = append(top, style.Render(fit(dayLabel(th, cell), width)))
			note := fit("", width)
			if cell.HasNote {
				note = th.Note.Render(fit(cell.Note, width))
			}
			bottom = append(bottom, note)
		}
		lines = append(lines, strings.Join(top, " "), strings.Join(bottom, " "))
	}
	return frame.Render(strings.Join(lines, "\n"))
}

func dayLabel(th theme.FaceTheme, cell calendar.Cell) string {
	label := fmt.Sprintf("%2d", cell.Day.Day)
	if cell.Today {
		label += " " + th.TodayBadge
	}
	if cell.HasNote {
		label += " " + th.NoteDot
	}
	return label
}

func cellStyle(th theme.FaceTheme, cell calendar.Cell, cursor bool) lipgloss.Style {
	style := th.Day
	if cell.OtherMonth {
		style = th.OtherMonth
	}
	if cell.Today {
		style = style.Inherit(th.Today)
	}
	if cell.Selected {
		style = th.Selected.Inherit(style)
	}
	if cursor {
		style = th.Cursor.Inherit(style)
	}
	return style
}

// fit truncates s to width printable columns and pads it out to width.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := uint(width)
	return padding.String(truncate.StringWithTail(s, w, "…"), w)
}

// faceWidth is the printable width of a face at rest.
func faceWidth(th theme.FaceTheme) int {
	return 7*cellWidth + 6 + th.Frame.GetHorizontalFrameSize()
}

// flipScale returns the horizontal scale of the visible face at progress p
// in [0,1], and whether the face being revealed is the one to draw.
func flipScale(p float64) (scale float64, revealed bool) {
	p = math.Max(0, math.Min(1, p))
	if p < 0.5 {
		return 1 - 2*p, false
	}
	return 2*p - 1, true
}

// blendBorder mixes the two border colors at progress p.
func blendBorder(from, to string, p float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return to
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return from
	}
	return a.BlendLab(b, math.Max(0, math.Min(1, p))).Clamped().Hex()
}

func borderFor(th theme.FaceTheme, f face.Face) string {
	if f == face.Back {
		return th.BackBorder
	}
	return th.FrontBorder
}
