package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/flipcal/pkg/locale"
	"tableflip.dev/flipcal/pkg/runner/notelist"
)

func addNotes(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "List, clear or export every saved note.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(notesList(), notesClear(), notesExport())
	topLevel.AddCommand(cmd)
}

func notesList() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every note in date order.",
		Example: `
flipcal notes list
flipcal notes list --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			defer e.close()

			l := notelist.List{
				Notes: e.notes,
				Names: locale.New(e.cfg.Locale()),
				JSON:  output.JSON,
				Out:   cmd.OutOrStdout(),
			}
			return output.HandleError(l.Do(cmd.Context()))
		},
	}
	base.AddOutputArg(cmd, output)
	return cmd
}

func notesClear() *cobra.Command {
	yes := false

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every saved note.",
		Example: `
flipcal notes clear
flipcal notes clear --yes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return err
			}
			defer e.close()

			c := notelist.Clear{
				Notes:   e.notes,
				Yes:     yes,
				Confirm: notelist.PromptConfirm,
				Out:     cmd.OutOrStdout(),
			}
			return c.Do(cmd.Context())
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation.")
	return cmd
}

func notesExport() *cobra.Command {
	path := ""

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every note as an iCalendar file.",
		Example: `
flipcal notes export > notes.ics
flipcal notes export --out notes.ics
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return err
			}
			defer e.close()

			x := notelist.Export{
				Notes: e.notes,
				Path:  path,
				Out:   cmd.OutOrStdout(),
			}
			return x.Do(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&path, "out", "o", "", "File to write, defaults to stdout.")
	return cmd
}
