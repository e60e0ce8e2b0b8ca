package main

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// nodeEntry wraps a water-node index for R-tree storage
type nodeEntry struct {
	idx  int
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *nodeEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// NodeIndex answers "which nodes lie within this radius" queries during
// graph construction, replacing an all-pairs scan that is quadratic in
// node count.
type NodeIndex struct {
	tree  *rtreego.Rtree
	nodes []Point
}

// NewNodeIndex indexes the node slice by position. The slice must not
// change while the index is in use.
func NewNodeIndex(nodes []Point) *NodeIndex {
	tree := rtreego.NewTree(2, 25, 50)

	for i, node := range nodes {
		bbox, err := rtreego.NewRect(rtreego.Point{node.Lon, node.Lat}, []float64{1e-9, 1e-9})
		if err != nil {
			continue
		}
		tree.Insert(&nodeEntry{idx: i, bbox: bbox})
	}

	return &NodeIndex{tree: tree, nodes: nodes}
}

// Neighbors returns the indices of nodes within radiusDeg (planar
// degrees) of the center, sorted ascending for deterministic edge
// construction. The center node itself is excluded.
func (ni *NodeIndex) Neighbors(center int, radiusDeg float64) []int {
	p := ni.nodes[center]
	bbox, err := rtreego.NewRect(
		rtreego.Point{p.Lon - radiusDeg, p.Lat - radiusDeg},
		[]float64{2 * radiusDeg, 2 * radiusDeg},
	)
	if err != nil {
		return nil
	}

	results := ni.tree.SearchIntersect(bbox)
	neighbors := make([]int, 0, len(results))
	for _, item := range results {
		entry := item.(*nodeEntry)
		if entry.idx == center {
			continue
		}
		// The box query overshoots on the diagonal
		if p.DistanceDeg(ni.nodes[entry.idx]) <= radiusDeg {
			neighbors = append(neighbors, entry.idx)
		}
	}

	sort.Ints(neighbors)
	return neighbors
}
