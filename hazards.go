package main

// Hazard is a fixed-radius zone (storm cell, exclusion area) that
// discourages routing through it. Optional per-request input with no
// lifecycle beyond the request.
type Hazard struct {
	Center   Point   `json:"center"`
	RadiusNM float64 `json:"radius_nm"`
	Category string  `json:"category,omitempty"`
}

// hazardRisk scores a graph edge against the hazard zones on a 0-1
// scale: 0.8 when the segment midpoint falls inside a zone, 0
// otherwise. The router scales this into an additive weight term, so
// risk never violates the weight >= distance invariant.
func hazardRisk(a, b Point, hazards []Hazard) float64 {
	if len(hazards) == 0 {
		return 0.0
	}

	mid := a.Midpoint(b)
	for _, h := range hazards {
		if mid.DistanceNM(h.Center) < h.RadiusNM {
			return 0.8
		}
	}
	return 0.0
}
