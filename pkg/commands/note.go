package commands

import (
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/flipcal/pkg/locale"
	"tableflip.dev/flipcal/pkg/runner/note"
)

func addNote(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Get, set or remove the note of one day.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		noteCommand(note.Get, "get DATE", "Show the note of a day.", "flipcal note get 2024-03-15"),
		noteCommand(note.Set, "set DATE TEXT...", "Set the note of a day.", "flipcal note set 2024-03-15 Dentist at 9"),
		noteCommand(note.Remove, "rm DATE", "Remove the note of a day.", "flipcal note rm 2024-03-15"),
	)
	topLevel.AddCommand(cmd)
}

func noteCommand(action note.Action, use, short, example string) *cobra.Command {
	n := &note.Note{Action: action}

	cmd := &cobra.Command{
		Use:     use,
		Short:   short,
		Example: "\n" + example + "\n",
		Args: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) < 1:
				return errors.New("requires a date in YYYY-MM-DD form")
			case action == note.Set && len(args) < 2:
				return errors.New("requires the note text")
			case action != note.Set && len(args) > 1:
				return errors.New("too many arguments")
			}
			n.Date = args[0]
			n.Text = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			defer e.close()

			n.Notes = e.notes
			n.Names = locale.New(e.cfg.Locale())
			n.JSON = output.JSON
			n.Out = cmd.OutOrStdout()
			err = n.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	return cmd
}
