package topology

// Label classifies a voxel from its topological numbers C̄ and C*.
type Label int

const (
	// Interior marks a voxel with no 6-connected background component in
	// its 18-neighborhood (C̄ = 0): it is fully surrounded by foreground.
	Interior Label = iota
	// Isolated marks a voxel with no 26-connected foreground component in
	// its 26-neighborhood (C* = 0): it has no foreground neighbors at all.
	Isolated
	// Simple marks a voxel whose removal does not change digital topology
	// (C̄ = 1, C* = 1).
	Simple
	// Curve marks a candidate curve point (C̄ = 1, C* = 2).
	Curve
	// CurveCurveJunction marks a junction of curves (C̄ = 1, C* > 2).
	CurveCurveJunction
	// Surface marks a candidate surface point (C̄ = 2, C* = 1).
	Surface
	// CurveSurfaceJunction marks a junction between curve(s) and a surface
	// (C̄ = 2, C* ≥ 2).
	CurveSurfaceJunction
	// SurfaceSurfaceJunction marks a junction of surfaces (C̄ > 2, C* = 1).
	SurfaceSurfaceJunction
	// SurfaceCurveJunction marks a junction between surface(s) and curve(s)
	// (C̄ > 2, C* ≥ 2).
	SurfaceCurveJunction
	// Other catches any (C̄, C*) pair not covered above (should not occur
	// for valid non-negative inputs, but the classification is total).
	Other
)

// String renders a Label for diagnostics and test failure messages.
func (l Label) String() string {
	switch l {
	case Interior:
		return "Interior"
	case Isolated:
		return "Isolated"
	case Simple:
		return "Simple"
	case Curve:
		return "Curve"
	case CurveCurveJunction:
		return "CurveCurveJunction"
	case Surface:
		return "Surface"
	case CurveSurfaceJunction:
		return "CurveSurfaceJunction"
	case SurfaceSurfaceJunction:
		return "SurfaceSurfaceJunction"
	case SurfaceCurveJunction:
		return "SurfaceCurveJunction"
	default:
		return "Other"
	}
}

// TopologicalLabel classifies a voxel given its precomputed topological
// numbers, per the fixed table in spec §4.1. Both cbar and cstar must be
// non-negative; the classification is total over non-negative inputs.
func TopologicalLabel(cbar, cstar int) Label {
	switch {
	case cbar == 0:
		return Interior
	case cstar == 0:
		return Isolated
	case cbar == 1 && cstar == 1:
		return Simple
	case cbar == 1 && cstar == 2:
		return Curve
	case cbar == 1 && cstar > 2:
		return CurveCurveJunction
	case cbar == 2 && cstar == 1:
		return Surface
	case cbar == 2 && cstar >= 2:
		return CurveSurfaceJunction
	case cbar > 2 && cstar == 1:
		return SurfaceSurfaceJunction
	case cbar > 2 && cstar >= 2:
		return SurfaceCurveJunction
	default:
		return Other
	}
}
