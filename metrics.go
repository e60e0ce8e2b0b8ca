package main

import "math"

// CostEstimate is the fuel and emissions projection for a distance
// sailed under a given average depth penalty. Shallow water increases
// drag and with it fuel burn.
type CostEstimate struct {
	FuelTons      float64 `json:"fuel_tons"`
	FuelCostUSD   float64 `json:"fuel_cost_usd"`
	EmissionsTons float64 `json:"emissions_tons"`
}

// EstimateFuelAndEmissions is a pure function of distance, penalty, and
// the configured vessel constants.
func EstimateFuelAndEmissions(distanceNM, depthPenalty float64, cfg RouterConfig) CostEstimate {
	fuelTons := distanceNM * cfg.FuelTonsPerNM * depthPenalty
	return CostEstimate{
		FuelTons:      fuelTons,
		FuelCostUSD:   fuelTons * cfg.FuelPricePerTon,
		EmissionsTons: fuelTons * cfg.EmissionFactor,
	}
}

// summarizePath aggregates per-edge distance and depth penalty along a
// path of node indices. The average penalty of a path with no edges is
// defined as 1.0.
func summarizePath(graph *Graph, path []int) (totalNM, avgPenalty float64) {
	if len(path) < 2 {
		return 0, 1.0
	}

	penaltySum := 0.0
	for i := 0; i < len(path)-1; i++ {
		edge, ok := findEdge(graph, path[i], path[i+1])
		if !ok {
			// Path came from this graph, so every hop must exist.
			continue
		}
		totalNM += edge.DistanceNM
		penaltySum += edge.DepthPenalty
	}

	return totalNM, penaltySum / float64(len(path)-1)
}

// findEdge looks up the edge from a to b in a's adjacency list.
func findEdge(graph *Graph, a, b int) (Edge, bool) {
	for _, edge := range graph.Edges[a] {
		if edge.To == b {
			return edge, true
		}
	}
	return Edge{}, false
}

// round2 rounds to two decimals for response payloads.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
