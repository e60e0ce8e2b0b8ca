package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
)

// DeepWaterFallbackM is the depth reported when no bathymetry is
// configured or a coordinate falls outside the dataset's coverage.
// Both penalty models map this sentinel to penalty factor 1.0, so the
// fallback never distorts edge weights.
const DeepWaterFallbackM = -1000.0

// DepthGrid serves bathymetric depth lookups from a regular lat/lon
// raster. Depths are signed meters, negative underwater. The grid is
// read-only after load and safe to share across concurrent requests.
type DepthGrid struct {
	minLon, minLat float64
	cellDeg        float64
	width, height  int
	depths         []float64
	loaded         bool
}

// depthGridFile is the on-disk JSON layout: a row-major raster with
// rows ordered south to north.
type depthGridFile struct {
	MinLon  float64   `json:"minLon"`
	MinLat  float64   `json:"minLat"`
	CellDeg float64   `json:"cellDeg"`
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	Depths  []float64 `json:"depths"`
}

// EmptyDepthGrid returns an unconfigured grid that always reports the
// deep-water fallback.
func EmptyDepthGrid() *DepthGrid {
	return &DepthGrid{}
}

// LoadDepthGrid deserializes a bathymetry raster from a JSON file.
func LoadDepthGrid(filename string) (*DepthGrid, error) {
	log.Printf("📂 Loading bathymetry grid from %s...\n", filename)

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var file depthGridFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal grid: %w", err)
	}

	if file.Width <= 0 || file.Height <= 0 || file.CellDeg <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d cell %.4f", file.Width, file.Height, file.CellDeg)
	}
	if len(file.Depths) != file.Width*file.Height {
		return nil, fmt.Errorf("grid has %d cells, expected %d", len(file.Depths), file.Width*file.Height)
	}

	log.Printf("   ✅ Grid loaded: %dx%d cells at %.4f°\n", file.Width, file.Height, file.CellDeg)

	return &DepthGrid{
		minLon:  file.MinLon,
		minLat:  file.MinLat,
		cellDeg: file.CellDeg,
		width:   file.Width,
		height:  file.Height,
		depths:  file.Depths,
		loaded:  true,
	}, nil
}

// Available reports whether a bathymetry dataset was actually loaded.
func (g *DepthGrid) Available() bool {
	return g.loaded
}

// DepthAt returns the signed depth in meters at the coordinate, or the
// deep-water fallback when unconfigured or out of coverage.
func (g *DepthGrid) DepthAt(p Point) float64 {
	if !g.loaded {
		return DeepWaterFallbackM
	}

	col := int(math.Floor((p.Lon - g.minLon) / g.cellDeg))
	row := int(math.Floor((p.Lat - g.minLat) / g.cellDeg))
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return DeepWaterFallbackM
	}

	return g.depths[row*g.width+col]
}
