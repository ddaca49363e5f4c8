package tools

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/NERVsystems/remotepoint/pkg/geo"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"
)

// extractPoints reads an array of {latitude, longitude} objects. Numbers may
// arrive as JSON numbers or numeric strings.
func extractPoints(req mcp.CallToolRequest, key string) ([]geo.Location, *ToolError) {
	raw, ok := req.Params.Arguments[key]
	if !ok || raw == nil {
		return nil, NewToolError(CodeEmptyPoints, fmt.Sprintf("missing required %s parameter", key), "")
	}

	// Clients sometimes send the array JSON-encoded as a string.
	if s, isString := raw.(string); isString {
		var decoded []any
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return nil, NewToolError(CodeInvalidParameters, fmt.Sprintf("%s must be an array: %v", key, err), "")
		}
		raw = decoded
	}

	items, err := cast.ToSliceE(raw)
	if err != nil {
		return nil, NewToolError(CodeInvalidParameters, fmt.Sprintf("%s must be an array of points", key), "")
	}
	if len(items) == 0 {
		return nil, NewToolError(CodeEmptyPoints, fmt.Sprintf("%s must contain at least one point", key), "")
	}

	locs := make([]geo.Location, 0, len(items))
	for i, item := range items {
		fields, err := cast.ToStringMapE(item)
		if err != nil {
			return nil, NewToolError(CodeInvalidParameters, fmt.Sprintf("point %d is not an object", i), "")
		}
		lat, tErr := coordinate(fields, "latitude", i)
		if tErr != nil {
			return nil, tErr
		}
		lon, tErr := coordinate(fields, "longitude", i)
		if tErr != nil {
			return nil, tErr
		}

		loc := geo.Location{Latitude: lat, Longitude: lon}
		if !loc.Valid() {
			return nil, CoordinateError(i, lat, lon)
		}
		locs = append(locs, loc)
	}
	return locs, nil
}

func coordinate(fields map[string]any, name string, index int) (float64, *ToolError) {
	v, ok := fields[name]
	if !ok {
		return 0, NewToolError(CodeInvalidParameters, fmt.Sprintf("point %d is missing %s", index, name), "")
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, NewToolError(CodeInvalidParameters, fmt.Sprintf("point %d has a non-numeric %s", index, name), "")
	}
	return f, nil
}

// extractLocation reads a single point given as two numeric arguments.
func extractLocation(req mcp.CallToolRequest, latKey, lonKey string) (geo.Location, *ToolError) {
	var loc geo.Location
	for _, p := range []struct {
		key string
		dst *float64
	}{{latKey, &loc.Latitude}, {lonKey, &loc.Longitude}} {
		v, ok := req.Params.Arguments[p.key]
		if !ok {
			return loc, NewToolError(CodeInvalidParameters, fmt.Sprintf("missing required %s parameter", p.key), "")
		}
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return loc, NewToolError(CodeInvalidParameters, fmt.Sprintf("%s must be a number", p.key), "")
		}
		*p.dst = f
	}
	if !loc.Valid() {
		return loc, CoordinateError(-1, loc.Latitude, loc.Longitude)
	}
	return loc, nil
}
