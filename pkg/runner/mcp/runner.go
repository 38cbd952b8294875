package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"tableflip.dev/flipcal/pkg/locale"
	"tableflip.dev/flipcal/pkg/notes"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	// TransportStdio serves MCP over stdin and stdout.
	TransportStdio Transport = "stdio"
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
)

// Runner serves the note tools until its context is cancelled.
type Runner struct {
	Notes   *notes.Store
	Names   *locale.Names
	Log     *zap.Logger
	Name    string
	Version string

	Transport Transport
	// Addr and Path only apply to TransportHTTP.
	Addr string
	Path string
	// Listening is told the bound address once the HTTP listener is up.
	Listening func(url string)
}

// NewServer builds the MCP server with every note tool and resource
// registered.
func NewServer(name, version string, svc *Service) *server.MCPServer {
	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read and edit the day notes of the flip calendar. Dates are YYYY-MM-DD, months YYYY-MM."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

func (r Runner) Do(ctx context.Context) error {
	if r.Notes == nil {
		return errors.New("mcp runner requires a notes store")
	}
	name, version := r.Name, r.Version
	if name == "" {
		name = "flipcal"
	}
	if version == "" {
		version = "dev"
	}
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}

	srv := NewServer(name, version, NewService(r.Notes, r.Names))
	log.Info("mcp: starting", zap.String("transport", string(r.Transport)))

	switch r.Transport {
	case "", TransportStdio:
		return server.ServeStdio(srv)
	case TransportHTTP:
		ln, err := net.Listen("tcp", r.Addr)
		if err != nil {
			return fmt.Errorf("mcp: listen: %w", err)
		}
		return r.serve(ctx, ln, srv, log)
	default:
		return fmt.Errorf("unknown MCP transport %q", r.Transport)
	}
}

// serve answers streamable HTTP requests on ln at r.Path and shuts down
// when ctx is done.
func (r Runner) serve(ctx context.Context, ln net.Listener, srv *server.MCPServer, log *zap.Logger) error {
	path := r.Path
	if path == "" {
		path = "/mcp"
	}
	mux := http.NewServeMux()
	mux.Handle(path, server.NewStreamableHTTPServer(srv))
	hs := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	stop := context.AfterFunc(ctx, func() {
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hs.Shutdown(shutdown); err != nil {
			log.Warn("mcp: shutdown", zap.Error(err))
		}
	})
	defer stop()

	url := "http://" + ln.Addr().String() + path
	log.Info("mcp: listening", zap.String("url", url))
	if r.Listening != nil {
		r.Listening(url)
	}

	if err := hs.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
