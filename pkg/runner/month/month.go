package month

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/flipcal/pkg/calendar"
	"tableflip.dev/flipcal/pkg/locale"
	"tableflip.dev/flipcal/pkg/notes"
	"tableflip.dev/flipcal/pkg/printers"
)

// Month prints one month grid with its notes.
type Month struct {
	Notes *notes.Store
	Names *locale.Names
	// On is the month to print; nil means the current month.
	On  *calendar.Month
	Now func() time.Time
	Out io.Writer
}

func (n *Month) Do(ctx context.Context) error {
	if n.Notes == nil {
		return errors.New("can not print month, no notes store")
	}
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	m := calendar.MonthOf(now())
	if n.On != nil {
		m = *n.On
	}

	pp := printers.PrettyPrint{Out: n.Out, Names: n.Names}
	pp.Month(calendar.BuildGrid(m, n.Notes, nil, now()))
	return nil
}
