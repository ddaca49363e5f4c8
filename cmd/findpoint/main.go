// Command findpoint prints the most distant point for the locations given
// on the command line.
//
// Usage:
//
//	findpoint [-radius km] [-workers n] [-json] lat,lon [lat,lon ...]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/NERVsystems/remotepoint/pkg/geo"
	"github.com/NERVsystems/remotepoint/pkg/search"
	"github.com/spf13/cast"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "findpoint:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("findpoint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	radius := fs.Float64("radius", geo.EarthRadiusKm, "Sphere radius; distances are reported in the same unit")
	workers := fs.Int("workers", 0, "Search goroutines (0 uses GOMAXPROCS)")
	asJSON := fs.Bool("json", false, "Print the result as JSON")
	verbose := fs.Bool("v", false, "Log search progress to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("at least one lat,lon argument is required")
	}

	locs, err := parseLocations(fs.Args())
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts := []search.Option{search.WithRadius(*radius), search.WithLogger(logger)}
	if *workers > 0 {
		opts = append(opts, search.WithWorkers(*workers))
	}
	s, err := search.New(opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := s.MostDistant(ctx, geo.PointsOf(locs))
	if err != nil {
		return err
	}

	if *asJSON {
		return writeJSON(stdout, res)
	}
	writeText(stdout, res)
	return nil
}

// parseLocations parses "lat,lon" pairs in decimal degrees.
func parseLocations(args []string) ([]geo.Location, error) {
	locs := make([]geo.Location, 0, len(args))
	for _, arg := range args {
		latStr, lonStr, ok := strings.Cut(arg, ",")
		if !ok {
			return nil, fmt.Errorf("invalid location %q: want lat,lon", arg)
		}
		lat, err := cast.ToFloat64E(strings.TrimSpace(latStr))
		if err != nil {
			return nil, fmt.Errorf("invalid latitude in %q: %w", arg, err)
		}
		lon, err := cast.ToFloat64E(strings.TrimSpace(lonStr))
		if err != nil {
			return nil, fmt.Errorf("invalid longitude in %q: %w", arg, err)
		}
		loc := geo.Location{Latitude: lat, Longitude: lon}
		if !loc.Valid() {
			return nil, fmt.Errorf("location %q out of range", arg)
		}
		locs = append(locs, loc)
	}
	return locs, nil
}

type seedOutput struct {
	geo.Location
	Isolation float64 `json:"isolation"`
}

type resultOutput struct {
	Point     geo.Location `json:"point"`
	Isolation float64      `json:"isolation"`
	Seeds     []seedOutput `json:"seeds"`
}

func writeJSON(w io.Writer, res search.Result) error {
	out := resultOutput{
		Point:     geo.LocationOf(res.Point),
		Isolation: res.Isolation,
		Seeds:     make([]seedOutput, 0, len(res.Seeds)),
	}
	for _, seed := range res.Seeds {
		out.Seeds = append(out.Seeds, seedOutput{Location: geo.LocationOf(seed.Point), Isolation: seed.Weight})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeText(w io.Writer, res search.Result) {
	loc := geo.LocationOf(res.Point)
	fmt.Fprintf(w, "Most distant point: Latitude: %.6f, Longitude: %.6f\n", loc.Latitude, loc.Longitude)
	fmt.Fprintf(w, "Isolation: %.3f\n", res.Isolation)
	fmt.Fprintf(w, "Seeds refined: %d\n", len(res.Seeds))
	for i, seed := range res.Seeds {
		s := geo.LocationOf(seed.Point)
		fmt.Fprintf(w, "  Seed %d: Latitude: %.2f, Longitude: %.2f, Isolation: %.3f\n", i, s.Latitude, s.Longitude, seed.Weight)
	}
}
