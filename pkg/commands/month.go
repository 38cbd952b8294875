package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/flipcal/pkg/commands/options"
	"tableflip.dev/flipcal/pkg/locale"
	"tableflip.dev/flipcal/pkg/runner/month"
)

func addMonth(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Print a month grid with its notes.",
		Example: `
flipcal month
flipcal month --on=2024-03
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			on, err := oo.GetOn(time.Now())
			if err != nil {
				return err
			}
			e, err := load()
			if err != nil {
				return err
			}
			defer e.close()

			s := month.Month{
				Notes: e.notes,
				Names: locale.New(e.cfg.Locale()),
				On:    on,
				Out:   cmd.OutOrStdout(),
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddOnArgs(cmd, oo)
	topLevel.AddCommand(cmd)
}
