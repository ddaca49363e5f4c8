// Package testutil provides helpers shared by the package tests.
package testutil

import (
	"io"
	"log/slog"

	"github.com/NERVsystems/remotepoint/pkg/geo"
)

// NewTestLogger creates a debug-level text logger writing to w.
// If w is nil, output is discarded.
func NewTestLogger(w io.Writer) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// DiscardLogger returns a logger that discards all output
func DiscardLogger() *slog.Logger {
	return NewTestLogger(nil)
}

// Locations builds locations from flat latitude/longitude pairs in degrees.
// It panics on an odd number of values.
func Locations(latLongs ...float64) []geo.Location {
	if len(latLongs)%2 != 0 {
		panic("testutil: odd number of coordinates")
	}
	out := make([]geo.Location, 0, len(latLongs)/2)
	for i := 0; i < len(latLongs); i += 2 {
		out = append(out, geo.Location{Latitude: latLongs[i], Longitude: latLongs[i+1]})
	}
	return out
}
