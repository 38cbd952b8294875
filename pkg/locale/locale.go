// Package locale supplies month names, weekday abbreviations and date labels
// for the host locale. Weekday order is always Sunday first.
package locale

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
	golocale "github.com/jeandeaual/go-locale"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tableflip.dev/flipcal/pkg/calendar"
)

// Fallback is used when the requested locale is unknown.
const Fallback = monday.LocaleEnUS

// Names formats calendar text for one locale.
type Names struct {
	loc monday.Locale
	tag language.Tag
}

// New returns Names for tag, which may be in BCP 47 ("de-DE") or POSIX
// ("de_DE.UTF-8") form. Empty tags detect the host locale.
func New(tag string) *Names {
	if strings.TrimSpace(tag) == "" {
		tag = Detect()
	}
	loc := resolve(tag)
	return &Names{loc: loc, tag: language.Make(strings.ReplaceAll(string(loc), "_", "-"))}
}

// Detect returns the host locale or the fallback.
func Detect() string {
	tag, err := golocale.GetLocale()
	if err != nil || tag == "" {
		return string(Fallback)
	}
	return tag
}

func resolve(tag string) monday.Locale {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	tag = strings.ReplaceAll(tag, "-", "_")
	var langOnly monday.Locale
	for _, l := range monday.ListLocales() {
		if strings.EqualFold(string(l), tag) {
			return l
		}
		if langOnly == "" && strings.HasPrefix(strings.ToLower(string(l)), strings.ToLower(tag)+"_") {
			langOnly = l
		}
	}
	if langOnly != "" {
		return langOnly
	}
	return Fallback
}

// Locale returns the resolved locale.
func (n *Names) Locale() string { return string(n.loc) }

func (n *Names) title(s string) string {
	return cases.Title(n.tag).String(s)
}

// MonthName returns the long name of month (0 = January).
func (n *Names) MonthName(month int) string {
	t := time.Date(2000, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	return n.title(monday.Format(t, "January", n.loc))
}

// Weekdays returns the short weekday names starting with Sunday.
func (n *Names) Weekdays() [7]string {
	var out [7]string
	// 2023-01-01 was a Sunday.
	base := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := range out {
		out[i] = n.title(monday.Format(base.AddDate(0, 0, i), "Mon", n.loc))
	}
	return out
}

// MonthLabel returns "<Month> <Year>".
func (n *Names) MonthLabel(m calendar.Month) string {
	return n.MonthName(m.Month) + " " + m.Time(time.UTC).Format("2006")
}

// DateLabel returns a short date such as "Fri Mar 15 2024".
func (n *Names) DateLabel(d calendar.Day) string {
	return monday.Format(d.Time(time.UTC), "Mon Jan 02 2006", n.loc)
}
