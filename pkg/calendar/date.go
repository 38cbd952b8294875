// Package calendar holds the month arithmetic and the fixed six-week grid
// behind every rendered face.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// GridCells is the number of cells in a month view: six Sunday-first weeks.
const GridCells = 42

// ErrInvalidKey is returned when a DayKey does not name a real calendar day.
var ErrInvalidKey = errors.New("calendar: invalid day key")

// Month identifies a calendar month. Month is zero based (0 = January).
type Month struct {
	Year  int
	Month int
}

// Day identifies a calendar day. Month is zero based, Day is one based.
type Day struct {
	Year  int
	Month int
	Day   int
}

// DaysInMonth returns the number of days in month of year using proleptic
// Gregorian leap year rules.
func DaysInMonth(year, month int) int {
	switch month {
	case 1:
		if isLeap(year) {
			return 29
		}
		return 28
	case 3, 5, 8, 10:
		return 30
	default:
		return 31
	}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// StartWeekday returns the weekday of the first of the month,
// 0 = Sunday through 6 = Saturday.
func StartWeekday(year, month int) int {
	first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	return int(first.Weekday())
}

// AddMonths moves year/month by delta months. Any delta is accepted; the
// month is wrapped into [0,11] and the year carries the floor quotient.
func AddMonths(year, month, delta int) Month {
	total := month + delta
	m := ((total % 12) + 12) % 12
	return Month{Year: year + floorDiv(total, 12), Month: m}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// MonthsBetween returns the signed number of months from one month to another.
func MonthsBetween(from, to Month) int {
	return (to.Year-from.Year)*12 + (to.Month - from.Month)
}

// MonthOf returns the month containing t in t's location.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: int(t.Month()) - 1}
}

// Today returns the calendar day of now in now's location.
func Today(now time.Time) Day {
	return Day{Year: now.Year(), Month: int(now.Month()) - 1, Day: now.Day()}
}

// Add returns m moved by delta months.
func (m Month) Add(delta int) Month {
	return AddMonths(m.Year, m.Month, delta)
}

// First returns the first day of the month.
func (m Month) First() Day {
	return Day{Year: m.Year, Month: m.Month, Day: 1}
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return DaysInMonth(m.Year, m.Month)
}

// Time returns midnight on the first of the month in loc.
func (m Month) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(m.Year, time.Month(m.Month+1), 1, 0, 0, 0, 0, loc)
}

// String formats the month as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month+1)
}

// ParseMonth reads a YYYY-MM string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("calendar: parse month %q: %w", s, err)
	}
	return MonthOf(t), nil
}

// InMonth returns the month containing d.
func (d Day) InMonth() Month {
	return Month{Year: d.Year, Month: d.Month}
}

// Key returns the canonical DayKey, YYYY-MM-DD with a one based month.
func (d Day) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month+1, d.Day)
}

// Time returns midnight of d in loc.
func (d Day) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, time.Month(d.Month+1), d.Day, 0, 0, 0, 0, loc)
}

// Valid reports whether d names a real calendar day.
func (d Day) Valid() bool {
	return d.Month >= 0 && d.Month <= 11 && d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

// ParseKey parses a DayKey.
func ParseKey(key string) (Day, error) {
	var d Day
	var month int
	if n, err := fmt.Sscanf(key, "%4d-%2d-%2d", &d.Year, &month, &d.Day); err != nil || n != 3 || len(key) != 10 {
		return Day{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	d.Month = month - 1
	if !d.Valid() || d.Key() != key {
		return Day{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return d, nil
}
