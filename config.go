package main

// PenaltyModel selects how bathymetric depth translates into an edge
// weight multiplier.
type PenaltyModel string

const (
	// PenaltyStep applies discrete multipliers at shallow-water
	// thresholds: <50m x10, <100m x5, <200m x2, else x1.
	PenaltyStep PenaltyModel = "step"
	// PenaltyTargetDepth penalizes deviation from a target cruising
	// depth, scaled and clamped to a maximum multiplier.
	PenaltyTargetDepth PenaltyModel = "target-depth"
)

// RouterConfig holds every tunable of the routing pipeline. All values
// are overridable; DefaultRouterConfig documents the defaults.
type RouterConfig struct {
	ResolutionDeg float64 // grid lattice spacing in degrees
	PaddingDeg    float64 // bounding-box expansion around origin/destination
	MaxConnectDeg float64 // maximum grid distance for an edge, in degrees

	PenaltyModel        PenaltyModel
	TargetDepthM        float64 // target-depth model: desired depth in meters
	TargetPenaltyFactor float64 // target-depth model: penalty strength
	MaxTargetPenalty    float64 // target-depth model: multiplier clamp

	// Fuel and emissions constants. Defaults model a container ship
	// burning IFO 380.
	FuelTonsPerNM   float64 // base consumption in tons per nautical mile
	FuelPricePerTon float64 // USD per ton of fuel
	EmissionFactor  float64 // tons of CO2 per ton of fuel burned

	HazardRiskWeight float64 // scale of the additive hazard risk term
}

// DefaultRouterConfig returns the configuration used by the service
// unless overridden.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		ResolutionDeg: 0.5,
		PaddingDeg:    5.0,
		MaxConnectDeg: 1.0,

		PenaltyModel:        PenaltyStep,
		TargetDepthM:        3000.0,
		TargetPenaltyFactor: 0.8,
		MaxTargetPenalty:    3.0,

		FuelTonsPerNM:   0.3,
		FuelPricePerTon: 600.0,
		EmissionFactor:  3.1,

		HazardRiskWeight: 1000.0,
	}
}
