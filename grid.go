package main

import "log"

// GenerateWaterNodes lays a regular lattice over the bounding box
// around origin and destination, expanded by paddingDeg to leave room
// for detours, and keeps only points the land mask classifies as water.
//
// Nodes come back in row-major order (south to north, west to east),
// so identical inputs always produce the identical node slice.
func GenerateWaterNodes(origin, destination Point, resolutionDeg, paddingDeg float64, land *LandMask) []Point {
	minLon := min(origin.Lon, destination.Lon) - paddingDeg
	maxLon := max(origin.Lon, destination.Lon) + paddingDeg
	minLat := min(origin.Lat, destination.Lat) - paddingDeg
	maxLat := max(origin.Lat, destination.Lat) + paddingDeg

	cols := int((maxLon-minLon)/resolutionDeg) + 1
	rows := int((maxLat-minLat)/resolutionDeg) + 1

	nodes := make([]Point, 0, cols*rows)
	checked := 0
	landCount := 0

	for r := 0; r < rows; r++ {
		lat := minLat + float64(r)*resolutionDeg
		for c := 0; c < cols; c++ {
			lon := minLon + float64(c)*resolutionDeg
			checked++
			p := Point{Lon: lon, Lat: lat}
			if land.IsLand(p) {
				landCount++
				continue
			}
			nodes = append(nodes, p)
		}
	}

	log.Printf("   Grid: checked %d points, %d water nodes, %d on land\n", checked, len(nodes), landCount)
	return nodes
}
