package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDepthGrid(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bathy.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDepthGridLookup(t *testing.T) {
	// 2x2 grid covering lon 0-2, lat 0-2; rows south to north.
	path := writeDepthGrid(t, `{
		"minLon": 0, "minLat": 0, "cellDeg": 1,
		"width": 2, "height": 2,
		"depths": [-10, -2000, -300, -55]
	}`)

	grid, err := LoadDepthGrid(path)
	require.NoError(t, err)
	require.True(t, grid.Available())

	assert.Equal(t, -10.0, grid.DepthAt(Point{Lon: 0.5, Lat: 0.5}))
	assert.Equal(t, -2000.0, grid.DepthAt(Point{Lon: 1.5, Lat: 0.5}))
	assert.Equal(t, -300.0, grid.DepthAt(Point{Lon: 0.5, Lat: 1.5}))
	assert.Equal(t, -55.0, grid.DepthAt(Point{Lon: 1.5, Lat: 1.5}))
}

func TestDepthGridOutOfCoverage(t *testing.T) {
	path := writeDepthGrid(t, `{
		"minLon": 0, "minLat": 0, "cellDeg": 1,
		"width": 2, "height": 2,
		"depths": [-10, -2000, -300, -55]
	}`)

	grid, err := LoadDepthGrid(path)
	require.NoError(t, err)

	assert.Equal(t, DeepWaterFallbackM, grid.DepthAt(Point{Lon: 50, Lat: 50}))
	assert.Equal(t, DeepWaterFallbackM, grid.DepthAt(Point{Lon: -1, Lat: 0.5}))
}

func TestEmptyDepthGrid(t *testing.T) {
	grid := EmptyDepthGrid()

	assert.False(t, grid.Available())
	assert.Equal(t, DeepWaterFallbackM, grid.DepthAt(Point{Lon: 103.8, Lat: 1.3}))
}

func TestLoadDepthGridErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDepthGrid(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})

	t.Run("corrupt json", func(t *testing.T) {
		_, err := LoadDepthGrid(writeDepthGrid(t, `{not json`))
		require.Error(t, err)
	})

	t.Run("cell count mismatch", func(t *testing.T) {
		_, err := LoadDepthGrid(writeDepthGrid(t, `{
			"minLon": 0, "minLat": 0, "cellDeg": 1,
			"width": 2, "height": 2,
			"depths": [-10]
		}`))
		require.Error(t, err)
	})

	t.Run("bad dimensions", func(t *testing.T) {
		_, err := LoadDepthGrid(writeDepthGrid(t, `{
			"minLon": 0, "minLat": 0, "cellDeg": 0,
			"width": 0, "height": 0,
			"depths": []
		}`))
		require.Error(t, err)
	})
}
