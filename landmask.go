package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// LandMask answers land/water classification queries against a set of
// land-mass polygons. Polygons are indexed by bounding box in an R-tree
// so a containment test only ray-casts against nearby candidates.
//
// The mask fails open: when no dataset could be loaded, every point is
// reported as water so routing continues in degraded mode.
type LandMask struct {
	tree   *rtreego.Rtree
	loaded bool
	count  int
}

// landEntry wraps a polygon for R-tree storage
type landEntry struct {
	polygon orb.Polygon
	bbox    rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *landEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// NewLandMask loads every GeoJSON file from the given directory and
// builds the spatial index. Load failures are logged, never fatal: the
// returned mask reports all points as water.
func NewLandMask(dir string) *LandMask {
	polygons, err := loadLandPolygons(dir)
	if err != nil {
		log.Printf("⚠️  Land dataset unavailable (%v) - treating all points as water\n", err)
		return &LandMask{}
	}
	return NewLandMaskFromPolygons(polygons)
}

// NewLandMaskFromPolygons builds a mask directly from polygons.
func NewLandMaskFromPolygons(polygons []orb.Polygon) *LandMask {
	polygons = dropContainedPolygons(polygons)

	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	count := 0
	for _, polygon := range polygons {
		bbox, err := polygonRect(polygon)
		if err != nil {
			continue
		}
		tree.Insert(&landEntry{polygon: polygon, bbox: bbox})
		count++
	}

	return &LandMask{tree: tree, loaded: true, count: count}
}

// Available reports whether a land dataset was actually loaded.
func (m *LandMask) Available() bool {
	return m.loaded
}

// PolygonCount returns the number of indexed land polygons.
func (m *LandMask) PolygonCount() int {
	return m.count
}

// IsLand reports whether the coordinate falls on a landmass. Undefined
// geography (out-of-range coordinates, missing dataset) is water.
func (m *LandMask) IsLand(p Point) bool {
	if !m.loaded || m.count == 0 {
		return false
	}

	probe, err := rtreego.NewRect(rtreego.Point{p.Lon, p.Lat}, []float64{1e-9, 1e-9})
	if err != nil {
		return false
	}

	pt := orb.Point{p.Lon, p.Lat}
	for _, item := range m.tree.SearchIntersect(probe) {
		entry := item.(*landEntry)
		if planar.PolygonContains(entry.polygon, pt) {
			return true
		}
	}
	return false
}

// loadLandPolygons reads all *.geojson files in dir and flattens their
// Polygon and MultiPolygon features.
func loadLandPolygons(dir string) ([]orb.Polygon, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.geojson"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no GeoJSON files in %s", dir)
	}

	log.Printf("Loading land polygons from %d GeoJSON files...\n", len(files))

	var allPolygons []orb.Polygon
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			log.Printf("⚠️  Failed to read %s: %v\n", file, err)
			continue
		}

		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			log.Printf("⚠️  Failed to parse %s: %v\n", file, err)
			continue
		}

		polygonCount := 0
		for _, feature := range fc.Features {
			switch geom := feature.Geometry.(type) {
			case orb.Polygon:
				allPolygons = append(allPolygons, geom)
				polygonCount++
			case orb.MultiPolygon:
				for _, poly := range geom {
					allPolygons = append(allPolygons, poly)
				}
				polygonCount += len(geom)
			}
		}

		log.Printf("   ✅ Loaded %d polygons from %s\n", polygonCount, filepath.Base(file))
	}

	if len(allPolygons) == 0 {
		return nil, fmt.Errorf("no polygon features found in %s", dir)
	}

	log.Printf("Total land polygons loaded: %d\n", len(allPolygons))
	return allPolygons, nil
}

// dropContainedPolygons removes polygons fully contained within other
// polygons. Islands inside lakes inside continents show up as separate
// features in land datasets; only the outermost ring matters here.
func dropContainedPolygons(polygons []orb.Polygon) []orb.Polygon {
	if len(polygons) <= 1 {
		return polygons
	}

	contained := make([]bool, len(polygons))
	for i := range polygons {
		if contained[i] {
			continue
		}
		for j := range polygons {
			if i == j || contained[j] {
				continue
			}
			if isPolygonContainedIn(polygons[i], polygons[j]) {
				contained[i] = true
				break
			}
			if isPolygonContainedIn(polygons[j], polygons[i]) {
				contained[j] = true
			}
		}
	}

	result := make([]orb.Polygon, 0, len(polygons))
	for i := range polygons {
		if !contained[i] {
			result = append(result, polygons[i])
		}
	}
	return result
}

// isPolygonContainedIn checks if polygon a is fully contained within polygon b
func isPolygonContainedIn(a, b orb.Polygon) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	// Quick bounding box check first
	ab, bb := a.Bound(), b.Bound()
	if ab.Min[0] < bb.Min[0] || ab.Max[0] > bb.Max[0] ||
		ab.Min[1] < bb.Min[1] || ab.Max[1] > bb.Max[1] {
		return false
	}

	for _, vertex := range a[0] {
		if !planar.PolygonContains(b, vertex) {
			return false
		}
	}
	return true
}

// polygonRect computes the R-tree rectangle for a polygon's bounding
// box. Degenerate extents are widened so rtreego accepts them.
func polygonRect(polygon orb.Polygon) (rtreego.Rect, error) {
	b := polygon.Bound()
	width := b.Max[0] - b.Min[0]
	height := b.Max[1] - b.Min[1]
	if width <= 0 {
		width = 1e-9
	}
	if height <= 0 {
		height = 1e-9
	}
	return rtreego.NewRect(rtreego.Point{b.Min[0], b.Min[1]}, []float64{width, height})
}
