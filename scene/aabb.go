package scene

import "github.com/achilleasa/go-raytrace/types"

// An axis-aligned bounding box. Degenerate (zero volume) boxes are valid.
type AABB struct {
	Min types.Vec3
	Max types.Vec3
}

// Create a new AABB from its min and max corners.
func NewAABB(min, max types.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Test whether the ray hits the box anywhere inside (tMin, tMax) using the
// slab method. A zero direction component produces an infinite inverse
// direction; IEEE semantics then either keep or reject the slab depending
// on the ray origin, and any NaN fails the comparisons below so it never
// widens the interval.
func (b AABB) Hit(r types.Ray, tMin, tMax float64) bool {
	for a := 0; a < 3; a++ {
		invD := 1.0 / r.Direction[a]
		t0 := (b.Min[a] - r.Origin[a]) * invD
		t1 := (b.Max[a] - r.Origin[a]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Return the tightest box containing both b and other.
func (b AABB) Combine(other AABB) AABB {
	return AABB{
		Min: types.MinVec3(b.Min, other.Min),
		Max: types.MaxVec3(b.Max, other.Max),
	}
}

// Check whether point p lies inside the box (boundary inclusive).
func (b AABB) Contains(p types.Vec3) bool {
	for a := 0; a < 3; a++ {
		if p[a] < b.Min[a] || p[a] > b.Max[a] {
			return false
		}
	}
	return true
}

// Get the box center.
func (b AABB) Center() types.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}
