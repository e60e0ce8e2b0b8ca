package main

import "log"

// Fallback warnings attached to degraded results. A degraded route is
// still a success, never an error.
const (
	warnInsufficientNodes = "Insufficient water nodes, using direct route"
	warnNoEdges           = "No navigable path found, using direct route"
	warnNoPath            = "No path found, using direct route"
)

// RouteSummary is the outcome of one routing request. Immutable once
// produced. A non-empty Warning marks a direct-route fallback.
type RouteSummary struct {
	Route               []Point
	TotalDistanceNM     float64
	WaypointCount       int
	AvgDepthPenalty     float64
	DepthPenaltyEnabled bool
	Warning             string
}

// Router runs the routing pipeline: water grid -> weighted graph -> A*
// -> metrics. The land mask and depth grid are read-only collaborators
// injected at construction, so one Router serves concurrent requests;
// each request builds its own grid and graph.
type Router struct {
	land  *LandMask
	depth *DepthGrid
	cfg   RouterConfig
}

// NewRouter wires a router from its providers and configuration.
func NewRouter(land *LandMask, depth *DepthGrid, cfg RouterConfig) *Router {
	return &Router{land: land, depth: depth, cfg: cfg}
}

// Config returns the router's configuration.
func (r *Router) Config() RouterConfig {
	return r.cfg
}

// DepthAvailable reports whether depth-aware weighting can be applied.
func (r *Router) DepthAvailable() bool {
	return r.depth.Available()
}

// LandAvailable reports whether land avoidance is active.
func (r *Router) LandAvailable() bool {
	return r.land.Available()
}

// OptimizeRoute computes the land-avoiding route between two
// coordinates. Depth-aware weighting applies only when requested AND a
// bathymetry dataset is loaded; the summary records what actually
// happened. Every failure short of an internal fault degrades to the
// two-point direct route with a warning.
func (r *Router) OptimizeRoute(origin, destination Point, useDepthPenalty bool, hazards []Hazard) RouteSummary {
	log.Printf("🔍 Optimizing route (%.4f, %.4f) -> (%.4f, %.4f)\n",
		origin.Lon, origin.Lat, destination.Lon, destination.Lat)

	depthEnabled := useDepthPenalty && r.depth.Available()

	if origin == destination {
		return RouteSummary{
			Route:               []Point{origin, destination},
			TotalDistanceNM:     0,
			WaypointCount:       2,
			AvgDepthPenalty:     1.0,
			DepthPenaltyEnabled: depthEnabled,
		}
	}

	nodes := GenerateWaterNodes(origin, destination, r.cfg.ResolutionDeg, r.cfg.PaddingDeg, r.land)
	if len(nodes) < 2 {
		log.Println("⚠️  Insufficient water nodes")
		return r.directRoute(origin, destination, warnInsufficientNodes)
	}

	graph := BuildNavigationGraph(nodes, r.depth, hazards, r.cfg, depthEnabled)
	if graph.EdgeCount == 0 {
		log.Println("⚠️  Graph has no edges")
		return r.directRoute(origin, destination, warnNoEdges)
	}

	startIdx := nearestNodeIdx(origin, nodes)
	goalIdx := nearestNodeIdx(destination, nodes)

	path, ok := AStarPath(graph, startIdx, goalIdx)
	if !ok {
		log.Printf("⚠️  No path between nodes %d and %d\n", startIdx, goalIdx)
		return r.directRoute(origin, destination, warnNoPath)
	}

	route := make([]Point, len(path))
	for i, idx := range path {
		route[i] = nodes[idx]
	}

	totalNM, avgPenalty := summarizePath(graph, path)
	log.Printf("✅ Path found: %d waypoints, %.2f nm\n", len(route), totalNM)

	return RouteSummary{
		Route:               route,
		TotalDistanceNM:     totalNM,
		WaypointCount:       len(route),
		AvgDepthPenalty:     avgPenalty,
		DepthPenaltyEnabled: depthEnabled,
	}
}

// directRoute is the two-point fallback used whenever graph routing
// cannot produce a result. Depth weighting is reported as disabled
// because no weighted edges were traversed.
func (r *Router) directRoute(origin, destination Point, warning string) RouteSummary {
	return RouteSummary{
		Route:               []Point{origin, destination},
		TotalDistanceNM:     origin.DistanceNM(destination),
		WaypointCount:       2,
		AvgDepthPenalty:     1.0,
		DepthPenaltyEnabled: false,
		Warning:             warning,
	}
}

// nearestNodeIdx maps a coordinate to the closest water node by
// great-circle distance. Ties keep the first node in grid order.
func nearestNodeIdx(p Point, nodes []Point) int {
	nearest := 0
	minDist := p.DistanceNM(nodes[0])
	for i := 1; i < len(nodes); i++ {
		if d := p.DistanceNM(nodes[i]); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}
