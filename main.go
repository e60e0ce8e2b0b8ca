package main

import (
	"flag"
	"log"
	"net/http"

	"golang.org/x/sync/errgroup"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	landDir := flag.String("land-dir", "land-polygons", "directory of land-mass GeoJSON files")
	bathyPath := flag.String("bathy", "", "bathymetry grid JSON file (optional)")
	resolution := flag.Float64("resolution", 0, "override grid resolution in degrees")
	flag.Parse()

	log.Println("========================================")
	log.Println("🚢 Maritime Ship Router")
	log.Println("========================================")

	// Datasets load once, eagerly, before the first request. Either one
	// missing degrades the service instead of failing it.
	var (
		land     *LandMask
		depth    *DepthGrid
		depthErr error
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		land = NewLandMask(*landDir)
		return nil
	})
	g.Go(func() error {
		if *bathyPath == "" {
			depth = EmptyDepthGrid()
			return nil
		}
		depth, depthErr = LoadDepthGrid(*bathyPath)
		if depthErr != nil {
			depth = EmptyDepthGrid()
		}
		return nil
	})
	_ = g.Wait()

	if land.Available() {
		log.Printf("✅ Land mask ready: %d polygons\n", land.PolygonCount())
	} else {
		log.Println("⚠️  Running without land data - all points treated as water")
	}
	if depth.Available() {
		log.Println("✅ Bathymetry grid ready")
	} else if depthErr != nil {
		log.Printf("⚠️  Bathymetry unavailable (%v) - depth penalties disabled\n", depthErr)
	} else {
		log.Println("ℹ️  No bathymetry configured - depth penalties disabled")
	}

	cfg := DefaultRouterConfig()
	if *resolution > 0 {
		cfg.ResolutionDeg = *resolution
	}

	server := NewServer(NewRouter(land, depth, cfg))

	log.Printf("Server starting on %s\n", *addr)
	log.Println("")
	log.Println("Endpoints:")
	log.Println("  POST /api/generate-route - Compute optimized vs direct route")
	log.Println("  GET  /api/ports          - List the port registry")
	log.Println("  GET  /api/health         - Dataset availability")
	log.Println("")
	log.Println("CORS enabled for all origins")
	log.Println("========================================")

	if err := http.ListenAndServe(*addr, server.Handler()); err != nil {
		log.Fatal(err)
	}
}
