package main

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWaterNodesOpenOcean(t *testing.T) {
	allWater := &LandMask{}
	origin := Point{Lon: 0, Lat: 0}
	destination := Point{Lon: 2, Lat: 2}

	nodes := GenerateWaterNodes(origin, destination, 1.0, 1.0, allWater)

	// Bounding box -1..3 on both axes at 1 degree spacing: 5x5 lattice.
	require.Len(t, nodes, 25)
	assert.Equal(t, Point{Lon: -1, Lat: -1}, nodes[0])
	assert.Equal(t, Point{Lon: 3, Lat: 3}, nodes[len(nodes)-1])
}

func TestGenerateWaterNodesDeterministic(t *testing.T) {
	mask := NewLandMaskFromPolygons([]orb.Polygon{squarePolygon(0, 0, 1, 1)})
	origin := Point{Lon: 0, Lat: 0}
	destination := Point{Lon: 3, Lat: 3}

	first := GenerateWaterNodes(origin, destination, 0.5, 2.0, mask)
	second := GenerateWaterNodes(origin, destination, 0.5, 2.0, mask)

	require.Equal(t, first, second)
}

func TestGenerateWaterNodesFiltersLand(t *testing.T) {
	mask := NewLandMaskFromPolygons([]orb.Polygon{squarePolygon(0.5, 0.5, 2.5, 2.5)})
	origin := Point{Lon: 0, Lat: 0}
	destination := Point{Lon: 3, Lat: 3}

	nodes := GenerateWaterNodes(origin, destination, 1.0, 1.0, mask)

	for _, n := range nodes {
		assert.False(t, mask.IsLand(n), "node %+v is on land", n)
	}
	// Lattice points (1,1), (2,1), (1,2), (2,2) fall inside the square.
	assert.Len(t, nodes, 36-4)
}

func TestGenerateWaterNodesAllLand(t *testing.T) {
	mask := NewLandMaskFromPolygons([]orb.Polygon{squarePolygon(-10, -10, 10, 10)})
	origin := Point{Lon: 0, Lat: 0}
	destination := Point{Lon: 1, Lat: 1}

	nodes := GenerateWaterNodes(origin, destination, 1.0, 1.0, mask)
	assert.Empty(t, nodes)
}
