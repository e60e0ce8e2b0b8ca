package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// RouteRequest is the JSON body of POST /api/generate-route. Origin and
// destination are port registry names. Hazards are optional.
type RouteRequest struct {
	Origin          string   `json:"origin"`
	Destination     string   `json:"destination"`
	UseDepthPenalty *bool    `json:"use_depth_penalty"` // defaults to true
	Hazards         []Hazard `json:"hazards,omitempty"`
}

// PortRef names a port together with its coordinate.
type PortRef struct {
	Name   string `json:"name"`
	Coords Point  `json:"coords"`
}

// RouteMetrics is one metric block of the response.
type RouteMetrics struct {
	DistanceNM    float64 `json:"distance_nm"`
	FuelCostUSD   float64 `json:"fuel_cost_usd"`
	EmissionsTons float64 `json:"emissions_tons"`
	DepthPenalty  float64 `json:"depth_penalty,omitempty"`
	WaypointCount int     `json:"waypoint_count,omitempty"`
}

// RouteResponse is the JSON body returned for a routing request.
type RouteResponse struct {
	Success     bool    `json:"success"`
	Origin      PortRef `json:"origin"`
	Destination PortRef `json:"destination"`
	Routes      struct {
		Optimized []Point `json:"optimized"`
		Direct    []Point `json:"direct"`
	} `json:"routes"`
	Metrics struct {
		Optimized RouteMetrics `json:"optimized"`
		Direct    RouteMetrics `json:"direct"`
	} `json:"metrics"`
	Warning             string `json:"warning,omitempty"`
	DepthPenaltyEnabled bool   `json:"depth_penalty_enabled"`
}

// Server exposes the router over HTTP/JSON.
type Server struct {
	router *Router
}

// NewServer wraps a router for HTTP serving.
func NewServer(router *Router) *Server {
	return &Server{router: router}
}

// Handler builds the route table with CORS and panic recovery applied.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/generate-route", s.handleGenerateRoute).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/ports", s.handlePorts).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet, http.MethodOptions)
	r.Use(corsMiddleware, recoverMiddleware)
	return r
}

// corsMiddleware adds CORS headers to allow frontend requests
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// recoverMiddleware converts an unexpected internal fault into a
// generic failure with no partial result.
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("❌ Internal fault serving %s: %v\n", r.URL.Path, rec)
				writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
					"success": false,
					"error":   "internal error",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleGenerateRoute(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("📍 Route request received")

	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "invalid request body",
		})
		return
	}

	if req.Origin == "" || req.Destination == "" {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "origin and destination are required",
		})
		return
	}

	useDepth := true
	if req.UseDepthPenalty != nil {
		useDepth = *req.UseDepthPenalty
	}

	log.Printf("   Origin: %s\n", req.Origin)
	log.Printf("   Destination: %s\n", req.Destination)
	log.Printf("   Depth penalty requested: %v\n", useDepth)

	originCoord, err := LookupPort(req.Origin)
	if err != nil {
		s.rejectUnknownPort(w, err)
		return
	}
	destCoord, err := LookupPort(req.Destination)
	if err != nil {
		s.rejectUnknownPort(w, err)
		return
	}

	summary := s.router.OptimizeRoute(originCoord, destCoord, useDepth, req.Hazards)

	directDistance := originCoord.DistanceNM(destCoord)
	optCosts := EstimateFuelAndEmissions(summary.TotalDistanceNM, summary.AvgDepthPenalty, s.router.Config())
	directCosts := EstimateFuelAndEmissions(directDistance, 1.0, s.router.Config())

	resp := RouteResponse{
		Success:             true,
		Origin:              PortRef{Name: req.Origin, Coords: originCoord},
		Destination:         PortRef{Name: req.Destination, Coords: destCoord},
		Warning:             summary.Warning,
		DepthPenaltyEnabled: summary.DepthPenaltyEnabled,
	}
	resp.Routes.Optimized = summary.Route
	resp.Routes.Direct = []Point{originCoord, destCoord}
	resp.Metrics.Optimized = RouteMetrics{
		DistanceNM:    round2(summary.TotalDistanceNM),
		FuelCostUSD:   round2(optCosts.FuelCostUSD),
		EmissionsTons: round2(optCosts.EmissionsTons),
		DepthPenalty:  round2(summary.AvgDepthPenalty),
		WaypointCount: summary.WaypointCount,
	}
	resp.Metrics.Direct = RouteMetrics{
		DistanceNM:    round2(directDistance),
		FuelCostUSD:   round2(directCosts.FuelCostUSD),
		EmissionsTons: round2(directCosts.EmissionsTons),
	}

	log.Printf("✅ Route computed: %d waypoints, %.2f nm\n", summary.WaypointCount, summary.TotalDistanceNM)
	log.Println("========================================")

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) rejectUnknownPort(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, ErrUnknownPort) {
		status = http.StatusBadRequest
	}
	log.Printf("❌ %v\n", err)
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   err.Error(),
	})
}

// GET /api/ports - list the fixed registry
func (s *Server) handlePorts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"ports":   AllPorts(),
	})
}

// GET /api/health - dataset availability check
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":        "healthy",
		"landPolygons":  s.router.LandAvailable(),
		"bathymetry":    s.router.DepthAvailable(),
		"portCount":     len(AllPorts()),
		"resolutionDeg": s.router.Config().ResolutionDeg,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("⚠️  Failed to encode response: %v\n", err)
	}
}
