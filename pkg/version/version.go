// Package version provides build metadata and version information.
//
// The build variables are set at link time, for example:
//
//	go build -ldflags "-X github.com/NERVsystems/remotepoint/pkg/version.BuildCommit=$(git rev-parse --short HEAD)" ./cmd/remotepoint
package version

import (
	"fmt"
	"runtime"
)

// Name is the product name reported to MCP clients and in version output.
const Name = "remotepoint"

var (
	// BuildVersion is the semantic version of the build
	BuildVersion = "0.1.0"

	// BuildCommit is the git commit hash of the build
	BuildCommit = "unknown"

	// BuildDate is the date and time of the build
	BuildDate = "unknown"

	// GoVersion is the version of Go used to build
	GoVersion = runtime.Version()
)

// String returns a formatted version string
func String() string {
	return fmt.Sprintf("%s version %s (%s) built on %s with %s",
		Name, BuildVersion, BuildCommit, BuildDate, GoVersion)
}

// ServerName is the name announced in the MCP initialize handshake.
func ServerName() string {
	return Name + "-mcp-server"
}

// Info returns a map of version information, as logged at startup.
func Info() map[string]string {
	return map[string]string{
		"name":       Name,
		"version":    BuildVersion,
		"commit":     BuildCommit,
		"build_date": BuildDate,
		"go_version": GoVersion,
	}
}

// LogAttrs returns the build fields as alternating key/value pairs for slog.
func LogAttrs() []any {
	return []any{
		"version", BuildVersion,
		"commit", BuildCommit,
		"build_date", BuildDate,
	}
}
