package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/flipcal/pkg/commands/options"
	"tableflip.dev/flipcal/pkg/locale"
	"tableflip.dev/flipcal/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	mo := &options.MCPOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the calendar notes over the Model Context Protocol.",
		Long: `Launch an MCP server that exposes the day notes and month grids of the
calendar as tools and resources.`,
		Example: `
flipcal mcp
flipcal mcp --transport=http --addr=127.0.0.1:0
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := mo.Validate(); err != nil {
				return err
			}
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return err
			}
			defer e.close()

			r := mcp.Runner{
				Notes:     e.notes,
				Names:     locale.New(e.cfg.Locale()),
				Log:       e.log,
				Name:      "flipcal",
				Version:   "dev",
				Transport: mcp.Transport(mo.Transport),
				Addr:      mo.Addr,
				Path:      mo.Path,
				Listening: func(url string) {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "MCP server listening on", url)
				},
			}
			return r.Do(cmd.Context())
		},
	}

	options.AddMCPArgs(cmd, mo)
	topLevel.AddCommand(cmd)
}
