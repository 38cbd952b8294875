// Package export writes notes in formats other calendars understand.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"tableflip.dev/flipcal/pkg/calendar"
	"tableflip.dev/flipcal/pkg/notes"
)

// ProductID identifies flipcal in exported calendars.
const ProductID = "-//tableflip.dev//flipcal//EN"

// UID returns the stable event UID for the note on key. Re-exporting the
// same day yields the same UID so importers update instead of duplicating.
func UID(key string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://tableflip.dev/flipcal/"+key)).String() + "@flipcal"
}

// Calendar builds a VCALENDAR with one all-day VEVENT per note. Notes with
// malformed keys are skipped.
func Calendar(all []notes.Note, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)

	for _, n := range all {
		d, err := calendar.ParseKey(n.Key)
		if err != nil {
			continue
		}
		start := d.Time(time.UTC)
		ev := ical.NewEvent()
		ev.Props.SetText(ical.PropUID, UID(n.Key))
		ev.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
		ev.Props.SetDate(ical.PropDateTimeStart, start)
		ev.Props.SetDate(ical.PropDateTimeEnd, start.AddDate(0, 0, 1))
		ev.Props.SetText(ical.PropSummary, n.Text)
		cal.Children = append(cal.Children, ev.Component)
	}
	return cal
}

// WriteICS encodes all as an iCalendar stream to w.
func WriteICS(w io.Writer, all []notes.Note, stamp time.Time) error {
	if err := ical.NewEncoder(w).Encode(Calendar(all, stamp)); err != nil {
		return fmt.Errorf("export: encode ics: %w", err)
	}
	return nil
}
