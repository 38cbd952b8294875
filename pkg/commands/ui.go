package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/flipcal/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the flip calendar",
		Example: `
flipcal ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd)
		},
	}

	topLevel.AddCommand(cmd)
}

func runUI(cmd *cobra.Command) error {
	e, err := load()
	if err != nil {
		return err
	}
	defer e.close()
	i := ui.UI{Config: e.cfg, Disk: e.disk, Notes: e.notes, Log: e.log}
	return i.Do(cmd.Context())
}
