package options

import (
	"fmt"
	"net"
	"strings"

	"github.com/spf13/cobra"
)

// MCPOptions picks how the MCP server is reached.
type MCPOptions struct {
	Transport string
	Addr      string
	Path      string
}

func AddMCPArgs(cmd *cobra.Command, o *MCPOptions) {
	cmd.Flags().StringVar(&o.Transport, "transport", "stdio",
		"Transport to serve on, stdio or http.")
	cmd.Flags().StringVar(&o.Addr, "addr", "127.0.0.1:8080",
		"Listen address for --transport=http, use port 0 for a random port.")
	cmd.Flags().StringVar(&o.Path, "path", "/mcp",
		"Endpoint path for --transport=http.")
}

// Validate normalizes the flags and rejects unknown transports or bad
// addresses.
func (o *MCPOptions) Validate() error {
	o.Transport = strings.ToLower(strings.TrimSpace(o.Transport))
	switch o.Transport {
	case "stdio":
		return nil
	case "http":
	default:
		return fmt.Errorf("unsupported transport %q, want stdio or http", o.Transport)
	}
	if _, _, err := net.SplitHostPort(o.Addr); err != nil {
		return fmt.Errorf("invalid --addr %q: %w", o.Addr, err)
	}
	o.Path = "/" + strings.Trim(strings.TrimSpace(o.Path), "/")
	return nil
}
