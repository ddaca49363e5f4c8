package main

import (
	"log/slog"
	"os"

	"github.com/NERVsystems/remotepoint/pkg/config"
)

// setupLogger builds the logger for env. Logs go to stderr because stdout
// carries the MCP stream. debug lowers the level to Debug in any environment.
func setupLogger(env string, debug bool) *slog.Logger {
	var (
		log   *slog.Logger
		level slog.Level
	)

	dropTime := func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return a
	}

	switch env {
	case config.EnvLocal:
		level = slog.LevelDebug
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		}))
	case config.EnvDev:
		level = slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
	case config.EnvProd:
		level = slog.LevelWarn
		if debug {
			level = slog.LevelDebug
		}
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: dropTime,
		}))
	default:
		level = slog.LevelError
		if debug {
			level = slog.LevelDebug
		}
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: dropTime,
		}))

		log.Error("The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
