package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/flipcal/pkg/calendar"
	"tableflip.dev/flipcal/pkg/locale"
	"tableflip.dev/flipcal/pkg/notes"
)

// PrettyPrint writes human readable output.
type PrettyPrint struct {
	// Out defaults to color.Output.
	Out   io.Writer
	Names *locale.Names
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) names() *locale.Names {
	if pp.Names == nil {
		pp.Names = locale.New("")
	}
	return pp.Names
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " note")
	default:
		_, _ = c.Fprintln(pp.out(), " notes")
	}
}

// Notes prints one row per note, oldest day first.
func (pp *PrettyPrint) Notes(all ...notes.Note) {
	if len(all) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	y := color.New(color.FgHiYellow)
	for _, n := range all {
		label := n.Key
		if d, err := calendar.ParseKey(n.Key); err == nil {
			label = pp.names().DateLabel(d)
		}
		tbl.AddRow(y.Sprint(n.Key), label, n.Text)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Note prints a single note, or a faint marker when the day has none.
func (pp *PrettyPrint) Note(d calendar.Day, text string, ok bool) {
	b := color.New(color.Bold)
	_, _ = b.Fprintf(pp.out(), "%s  ", pp.names().DateLabel(d))
	if !ok {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.out(), "no note")
		return
	}
	_, _ = fmt.Fprintln(pp.out(), text)
}
