package scene

import "github.com/achilleasa/go-raytrace/types"

// The surface data produced by a successful intersection test.
type HitRecord struct {
	// Parametric distance along the ray.
	T float64

	// World-space hit point.
	P types.Vec3

	// Unit normal, always oriented against the incoming ray.
	Normal types.Vec3

	// True if the ray hit the outside of the surface.
	FrontFace bool

	// Surface parametrization at P.
	U, V float64

	// The material of the surface that was hit.
	Material Material
}

// Orient the record normal against the ray. The outward normal is expected
// to have unit length.
func (rec *HitRecord) SetFaceNormal(r types.Ray, outwardNormal types.Vec3) {
	rec.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if rec.FrontFace {
		rec.Normal = outwardNormal
	} else {
		rec.Normal = outwardNormal.Neg()
	}
}

// The Hittable interface is implemented by everything a ray can intersect.
type Hittable interface {
	// Intersect the ray with the surface inside the open interval
	// (tMin, tMax). Returns false if there is no hit.
	Hit(r types.Ray, tMin, tMax float64) (HitRecord, bool)

	// Get the surface bounds over the shutter interval [t0, t1]. Returns
	// false for surfaces without spatial extent.
	BoundingBox(t0, t1 float64) (AABB, bool)
}
