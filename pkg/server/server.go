// Package server provides the MCP server that answers most-distant-point queries.
package server

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/NERVsystems/remotepoint/pkg/cache"
	"github.com/NERVsystems/remotepoint/pkg/calculator"
	"github.com/NERVsystems/remotepoint/pkg/config"
	"github.com/NERVsystems/remotepoint/pkg/geo"
	"github.com/NERVsystems/remotepoint/pkg/metrics"
	"github.com/NERVsystems/remotepoint/pkg/ratelimit"
	"github.com/NERVsystems/remotepoint/pkg/search"
	"github.com/NERVsystems/remotepoint/pkg/tools"
	"github.com/NERVsystems/remotepoint/pkg/tools/prompts"
	"github.com/NERVsystems/remotepoint/pkg/version"
	"github.com/mark3labs/mcp-go/server"
)

// Server encapsulates the MCP server with the most distant point tools.
type Server struct {
	srv        *server.MCPServer
	calculator *calculator.Calculator
	logger     *slog.Logger
}

// NewServer wires the search stack described by cfg and registers all tools
// and prompts. m may be nil.
func NewServer(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("initializing most distant point MCP server",
		"name", version.ServerName(),
		"version", version.BuildVersion,
		"radius_km", cfg.RadiusKm,
		"workers", cfg.Workers)

	searcher, err := search.New(
		search.WithRadius(cfg.RadiusKm),
		search.WithWorkers(cfg.Workers),
		search.WithLogger(logger),
		search.WithMetrics(m),
	)
	if err != nil {
		return nil, err
	}

	finder := cache.NewFinder(cache.New(cfg.CacheSize, cfg.CacheTTL, m), searcher)

	limiter := ratelimit.New()
	for _, tool := range []string{
		tools.ToolFindMostDistantPoint,
		tools.ToolAddInputPoint,
		tools.ToolRemoveInputPoint,
	} {
		limiter.Set(tool, cfg.SearchRate, cfg.SearchBurst)
	}

	calc := calculator.New(finder, logger)
	calc.Subscribe(func(inputs []geo.Location, output *geo.Location) {
		if output == nil {
			logger.Debug("input set cleared")
			return
		}
		logger.Debug("most distant point updated", "inputs", len(inputs), "point", *output)
	})

	srv := server.NewMCPServer(
		version.ServerName(),
		version.BuildVersion,
		server.WithToolCapabilities(false),
		server.WithPromptCapabilities(false),
		server.WithRecovery(),
	)

	registry := tools.NewRegistry(logger, tools.Dependencies{
		Searcher:   searcher,
		Finder:     finder,
		Limiter:    limiter,
		Calculator: calc,
	})
	registry.RegisterTools(srv)
	prompts.RegisterRemotePointPrompts(srv)

	return &Server{srv: srv, calculator: calc, logger: logger}, nil
}

// MCPServer exposes the underlying server, mainly for tests.
func (s *Server) MCPServer() *server.MCPServer {
	return s.srv
}

// Run serves MCP over stdin/stdout until ctx is cancelled or stdin closes.
func (s *Server) Run(ctx context.Context) error {
	return s.Serve(ctx, os.Stdin, os.Stdout)
}

// Serve serves MCP over the given streams.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.srv)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))
	return stdio.Listen(ctx, in, out)
}
