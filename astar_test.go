package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// handGraph builds a diamond where the direct chain A-B-C is heavily
// penalized and the detour A-D-C is cheap. Weights respect the
// weight >= distance invariant the heuristic relies on.
func handGraph() *Graph {
	nodes := []Point{
		{Lon: 0, Lat: 0}, // A
		{Lon: 1, Lat: 0}, // B
		{Lon: 2, Lat: 0}, // C
		{Lon: 1, Lat: 1}, // D
	}

	g := &Graph{Nodes: nodes, Edges: make(map[int][]Edge)}
	add := func(a, b int, penalty float64) {
		dist := nodes[a].DistanceNM(nodes[b])
		e := Edge{To: b, Weight: dist * penalty, DistanceNM: dist, DepthPenalty: penalty}
		g.Edges[a] = append(g.Edges[a], e)
		e.To = a
		g.Edges[b] = append(g.Edges[b], e)
		g.EdgeCount++
	}

	add(0, 1, 10.0) // A-B shallow
	add(1, 2, 10.0) // B-C shallow
	add(0, 3, 1.0)  // A-D deep
	add(3, 2, 1.0)  // D-C deep

	return g
}

func TestAStarPicksCheaperDetour(t *testing.T) {
	g := handGraph()

	path, ok := AStarPath(g, 0, 2)
	require.True(t, ok)
	assert.Equal(t, []int{0, 3, 2}, path)
}

func TestAStarPathHasNoRepeatedNodes(t *testing.T) {
	g := handGraph()

	path, ok := AStarPath(g, 0, 2)
	require.True(t, ok)

	seen := make(map[int]bool)
	for _, idx := range path {
		assert.False(t, seen[idx], "node %d repeated", idx)
		seen[idx] = true
	}
}

func TestAStarOptimality(t *testing.T) {
	g := handGraph()

	path, ok := AStarPath(g, 0, 2)
	require.True(t, ok)

	pathWeight := func(p []int) float64 {
		total := 0.0
		for i := 0; i < len(p)-1; i++ {
			e, found := findEdge(g, p[i], p[i+1])
			require.True(t, found)
			total += e.Weight
		}
		return total
	}

	best := pathWeight(path)
	assert.LessOrEqual(t, best, pathWeight([]int{0, 1, 2}))
	assert.LessOrEqual(t, best, pathWeight([]int{0, 3, 2}))
}

func TestAStarStartEqualsGoal(t *testing.T) {
	g := handGraph()

	path, ok := AStarPath(g, 1, 1)
	require.True(t, ok)
	assert.Equal(t, []int{1}, path)
}

func TestAStarDisconnected(t *testing.T) {
	g := handGraph()
	g.Nodes = append(g.Nodes, Point{Lon: 50, Lat: 50}) // island node, no edges

	_, ok := AStarPath(g, 0, 4)
	assert.False(t, ok)
}

func TestAStarEmptyGraph(t *testing.T) {
	_, ok := AStarPath(nil, 0, 0)
	assert.False(t, ok)

	_, ok = AStarPath(&Graph{Edges: map[int][]Edge{}}, 0, 0)
	assert.False(t, ok)
}

func TestAStarDeterministic(t *testing.T) {
	g := handGraph()

	first, ok := AStarPath(g, 0, 2)
	require.True(t, ok)
	second, ok := AStarPath(g, 0, 2)
	require.True(t, ok)

	assert.Equal(t, first, second)
}
