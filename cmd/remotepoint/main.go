package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/NERVsystems/remotepoint/pkg/config"
	"github.com/NERVsystems/remotepoint/pkg/metrics"
	"github.com/NERVsystems/remotepoint/pkg/server"
	"github.com/NERVsystems/remotepoint/pkg/version"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	showVersion    bool
	debug          bool
	generateConfig string
	configPath     string
)

func init() {
	flag.BoolVar(&showVersion, "version", false, "Display version information")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.StringVar(&generateConfig, "generate-config", "", "Generate a Claude Desktop Client config file at the specified path")
	flag.StringVar(&configPath, "config", "", "Path to a YAML, JSON or TOML config file")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println(version.String())
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.Env, debug)
	slog.SetDefault(logger)

	if generateConfig != "" {
		if err := generateClientConfig(generateConfig, configPath); err != nil {
			logger.Error("failed to generate config", "error", err)
			os.Exit(1)
		}
		logger.Info("successfully generated Claude Desktop Client config", "path", generateConfig)
		return
	}

	// Cancelled on SIGINT or SIGTERM for a graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	logger.InfoContext(ctx, "starting most distant point MCP server",
		append(version.LogAttrs(), "env", cfg.Env)...)

	srv, err := server.NewServer(cfg, logger, appMetrics)
	if err != nil {
		logger.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	if cfg.MetricsAddr != "" {
		go startMonitoringServer(ctx, logger, reg, cfg.MetricsAddr)
	}

	logger.InfoContext(ctx, "server initialized, waiting for requests")
	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
