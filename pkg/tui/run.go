package tui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/termenv"

	"tableflip.dev/flipcal/pkg/tui/help"
)

// Run starts the full screen calendar and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.HelpStyle == "" {
		opts.HelpStyle = help.StyleFor(termenv.NewOutput(os.Stdout))
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
