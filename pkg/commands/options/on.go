package options

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/flipcal/pkg/calendar"
)

const layoutMonth = "2006-1"

// OnOptions selects a month.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a month, example: --on="2024-03" or --on="3" for March this year.`)
}

// GetOn parses --on. It returns nil when the flag is unset.
func (o *OnOptions) GetOn(now time.Time) (*calendar.Month, error) {
	s := strings.TrimSpace(o.OnString)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(layoutMonth, s); err == nil {
		m := calendar.MonthOf(t)
		return &m, nil
	}
	// Let the year be the same.
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 12 {
		return nil, fmt.Errorf("invalid month %q, want YYYY-MM or 1-12", o.OnString)
	}
	m := calendar.Month{Year: now.Year(), Month: n - 1}
	return &m, nil
}
