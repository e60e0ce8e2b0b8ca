package main

import (
	"container/heap"
)

// searchNode tracks A* bookkeeping for one graph node
type searchNode struct {
	id     int     // index of the node in the graph
	g      float64 // cost from start to this node
	h      float64 // heuristic cost from this node to goal
	f      float64 // total cost (g + h)
	parent *searchNode
	index  int // index in the heap
}

// priorityQueue implements heap.Interface ordered by f-score
type priorityQueue []*searchNode

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].f < pq[j].f
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x interface{}) {
	n := len(*pq)
	node := x.(*searchNode)
	node.index = n
	*pq = append(*pq, node)
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*pq = old[0 : n-1]
	return node
}

// AStarPath computes the minimum-weight path between two node indices.
// The heuristic is the great-circle distance to the goal, which never
// exceeds true remaining cost because every edge weight >= its
// great-circle distance, so the search is optimal.
//
// Returns the ordered node indices from start to goal, or ok=false when
// the nodes are in disconnected components. Expansion order is
// deterministic for identical inputs.
func AStarPath(graph *Graph, startIdx, goalIdx int) ([]int, bool) {
	if graph == nil || len(graph.Nodes) == 0 {
		return nil, false
	}

	goalPoint := graph.Nodes[goalIdx]

	openSet := &priorityQueue{}
	heap.Init(openSet)

	start := &searchNode{
		id: startIdx,
		g:  0,
		h:  graph.Nodes[startIdx].DistanceNM(goalPoint),
	}
	start.f = start.h
	heap.Push(openSet, start)

	closedSet := make(map[int]bool)
	openSetMap := map[int]*searchNode{startIdx: start}

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(*searchNode)
		delete(openSetMap, current.id)

		if current.id == goalIdx {
			// Reconstruct path
			var path []int
			for node := current; node != nil; node = node.parent {
				path = append(path, node.id)
			}
			for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
				path[l], path[r] = path[r], path[l]
			}
			return path, true
		}

		closedSet[current.id] = true

		for _, edge := range graph.Edges[current.id] {
			if closedSet[edge.To] {
				continue
			}

			tentativeG := current.g + edge.Weight

			neighbor, exists := openSetMap[edge.To]
			if !exists {
				neighbor = &searchNode{
					id:     edge.To,
					g:      tentativeG,
					h:      graph.Nodes[edge.To].DistanceNM(goalPoint),
					parent: current,
				}
				neighbor.f = neighbor.g + neighbor.h
				heap.Push(openSet, neighbor)
				openSetMap[edge.To] = neighbor
			} else if tentativeG < neighbor.g {
				// Found a better path to this neighbor
				neighbor.g = tentativeG
				neighbor.f = neighbor.g + neighbor.h
				neighbor.parent = current
				heap.Fix(openSet, neighbor.index)
			}
		}
	}

	// Disconnected components
	return nil, false
}
