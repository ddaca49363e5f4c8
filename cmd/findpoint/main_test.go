package main

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocations(t *testing.T) {
	locs, err := parseLocations([]string{"45,90", " -33.5 , 151.25 "})
	require.NoError(t, err)
	require.Len(t, locs, 2)
	assert.Equal(t, 45.0, locs[0].Latitude)
	assert.Equal(t, 90.0, locs[0].Longitude)
	assert.Equal(t, -33.5, locs[1].Latitude)
	assert.Equal(t, 151.25, locs[1].Longitude)

	for _, bad := range []string{"45", "north,90", "45,east", "91,0", "0,181"} {
		_, err := parseLocations([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestRunText(t *testing.T) {
	var stdout bytes.Buffer
	err := run([]string{"-workers", "2", "45,90"}, &stdout, io.Discard)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "Latitude: -45.000000")
	assert.Contains(t, out, "Longitude: -90.000000")
	assert.Contains(t, out, "Seeds refined:")
}

func TestRunJSON(t *testing.T) {
	var stdout bytes.Buffer
	err := run([]string{"-json", "-radius", "1", "0,0"}, &stdout, io.Discard)
	require.NoError(t, err)

	var out resultOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.InDelta(t, 0, out.Point.Latitude, 1e-6)
	assert.InDelta(t, 180, abs(out.Point.Longitude), 1e-6)
	assert.InDelta(t, 3.14159, out.Isolation, 1e-4)
	assert.NotEmpty(t, out.Seeds)
}

func TestRunErrors(t *testing.T) {
	assert.Error(t, run(nil, io.Discard, io.Discard))
	assert.Error(t, run([]string{"nope"}, io.Discard, io.Discard))
	assert.Error(t, run([]string{"-radius", "-1", "0,0"}, io.Discard, io.Discard))
	assert.Error(t, run([]string{"-unknown"}, io.Discard, io.Discard))
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
