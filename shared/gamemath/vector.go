package gamemath

import (
	"math"

	"github.com/kvartborg/vector"
)

// The arena is simulated on the XZ plane. The 2D collision space uses X as X
// and Z as its Y axis; world Y is height above the floor.

// PlaneToWorld lifts a collision-space point to a 3D world position at the given height.
func PlaneToWorld(x, z, height float64) vector.Vector {
	return vector.Vector{x, height, z}
}

// WorldToPlane projects a world position onto the collision plane.
func WorldToPlane(v vector.Vector) (x, z float64) {
	if len(v) < 3 {
		if len(v) == 0 {
			return 0, 0
		}
		return v[0], 0
	}
	return v[0], v[2]
}

// Normalize2 returns the unit vector of (x, z) and false when it has no length.
func Normalize2(x, z float64) (nx, nz float64, ok bool) {
	l := math.Hypot(x, z)
	if l == 0 || math.IsNaN(l) {
		return 0, 0, false
	}
	return x / l, z / l, true
}

// DirectionFromAngle returns the unit vector on the XZ plane for angle radians.
func DirectionFromAngle(angle float64) (x, z float64) {
	return math.Cos(angle), math.Sin(angle)
}
