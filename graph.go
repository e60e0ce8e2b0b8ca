package main

import (
	"log"
	"math"
	"time"
)

// Edge is a weighted connection to another node. Weight is always >=
// DistanceNM: the depth penalty multiplier is >= 1.0 and the hazard
// term is additive and non-negative.
type Edge struct {
	To           int     // Index of the destination node
	Weight       float64 // DistanceNM x DepthPenalty + hazard term
	DistanceNM   float64 // Great-circle distance in nautical miles
	DepthPenalty float64 // Dimensionless multiplier >= 1.0
}

// Graph is an undirected weighted graph over water-node indices. Built
// from scratch for every routing request; never shared or cached.
type Graph struct {
	Nodes     []Point
	Edges     map[int][]Edge
	EdgeCount int
}

// BuildNavigationGraph connects every pair of nodes within
// cfg.MaxConnectDeg of each other. Edge weight is the great-circle
// distance times a depth penalty (when enabled), plus an additive
// hazard risk term when hazard zones are supplied.
func BuildNavigationGraph(nodes []Point, depth *DepthGrid, hazards []Hazard, cfg RouterConfig, useDepthPenalty bool) *Graph {
	startTime := time.Now()

	graph := &Graph{
		Nodes: nodes,
		Edges: make(map[int][]Edge, len(nodes)),
	}

	index := NewNodeIndex(nodes)

	for i := range nodes {
		for _, j := range index.Neighbors(i, cfg.MaxConnectDeg) {
			if j <= i {
				continue // each unordered pair once
			}

			distNM := nodes[i].DistanceNM(nodes[j])
			penalty := 1.0
			if useDepthPenalty {
				avgDepth := (depth.DepthAt(nodes[i]) + depth.DepthAt(nodes[j])) / 2
				penalty = depthPenalty(avgDepth, cfg)
			}

			weight := distNM * penalty
			if len(hazards) > 0 {
				weight += cfg.HazardRiskWeight * hazardRisk(nodes[i], nodes[j], hazards)
			}

			graph.Edges[i] = append(graph.Edges[i], Edge{To: j, Weight: weight, DistanceNM: distNM, DepthPenalty: penalty})
			graph.Edges[j] = append(graph.Edges[j], Edge{To: i, Weight: weight, DistanceNM: distNM, DepthPenalty: penalty})
			graph.EdgeCount++
		}
	}

	log.Printf("   Graph built: %d nodes, %d edges (%.2fs)\n",
		len(nodes), graph.EdgeCount, time.Since(startTime).Seconds())
	return graph
}

// depthPenalty maps an averaged depth (signed meters, negative
// underwater) to an edge weight multiplier under the configured model.
// The deep-water fallback sentinel always maps to 1.0.
func depthPenalty(avgDepthM float64, cfg RouterConfig) float64 {
	switch cfg.PenaltyModel {
	case PenaltyTargetDepth:
		return targetDepthPenalty(avgDepthM, cfg)
	default:
		return stepDepthPenalty(avgDepthM)
	}
}

// stepDepthPenalty applies discrete shallow-water multipliers.
func stepDepthPenalty(avgDepthM float64) float64 {
	switch {
	case avgDepthM > -50: // Very shallow
		return 10.0
	case avgDepthM > -100: // Shallow
		return 5.0
	case avgDepthM > -200: // Moderate
		return 2.0
	default: // Deep water
		return 1.0
	}
}

// targetDepthPenalty penalizes deviation from the target cruising
// depth, clamped to cfg.MaxTargetPenalty.
func targetDepthPenalty(avgDepthM float64, cfg RouterConfig) float64 {
	if avgDepthM == DeepWaterFallbackM {
		return 1.0 // no data, no penalty
	}
	deviation := math.Abs(math.Abs(avgDepthM)-cfg.TargetDepthM) / cfg.TargetDepthM
	return min(1.0+cfg.TargetPenaltyFactor*deviation, cfg.MaxTargetPenalty)
}
