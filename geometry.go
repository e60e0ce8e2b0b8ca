package main

import "math"

const (
	earthRadiusKM     = 6371.0 // Earth's mean radius in kilometers
	kmPerNauticalMile = 1.852
)

// Point is a WGS84 coordinate in degrees. No altitude.
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// DistanceDeg calculates planar distance in degrees between two points.
// Used only for grid-neighborhood checks, never for route lengths.
func (p Point) DistanceDeg(other Point) float64 {
	dLon := p.Lon - other.Lon
	dLat := p.Lat - other.Lat
	return math.Sqrt(dLon*dLon + dLat*dLat)
}

// DistanceNM calculates the great-circle distance in nautical miles
// between two points using the Haversine formula.
func (p Point) DistanceNM(other Point) float64 {
	lat1 := p.Lat * math.Pi / 180.0
	lat2 := other.Lat * math.Pi / 180.0
	deltaLat := (other.Lat - p.Lat) * math.Pi / 180.0
	deltaLon := (other.Lon - p.Lon) * math.Pi / 180.0

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c / kmPerNauticalMile
}

// Midpoint returns the coordinate halfway between two points.
func (p Point) Midpoint(other Point) Point {
	return Point{
		Lon: (p.Lon + other.Lon) / 2,
		Lat: (p.Lat + other.Lat) / 2,
	}
}

// routeLengthNM sums great-circle segment lengths along a route.
func routeLengthNM(route []Point) float64 {
	total := 0.0
	for i := 0; i < len(route)-1; i++ {
		total += route[i].DistanceNM(route[i+1])
	}
	return total
}
