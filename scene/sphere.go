package scene

import (
	"math"

	"github.com/achilleasa/go-raytrace/types"
)

// A static sphere. A negative radius keeps the same surface but flips its
// normals, which turns a dielectric sphere into a hollow bubble.
type Sphere struct {
	Center   types.Vec3
	Radius   float64
	Material Material
}

// Create a new sphere.
func NewSphere(center types.Vec3, radius float64, mat Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

func (s *Sphere) Hit(r types.Ray, tMin, tMax float64) (HitRecord, bool) {
	return hitSphere(s.Center, s.Radius, s.Material, r, tMin, tMax)
}

func (s *Sphere) BoundingBox(_, _ float64) (AABB, bool) {
	return sphereBox(s.Center, s.Radius), true
}

// Intersect a ray with a sphere by solving the quadratic
// |o + t*d - c|^2 = r^2 with a halved linear term. The smaller root wins if
// it lies strictly inside (tMin, tMax); otherwise the larger root is tried.
// Degenerate directions produce NaN terms that fail every comparison.
func hitSphere(center types.Vec3, radius float64, mat Material, r types.Ray, tMin, tMax float64) (HitRecord, bool) {
	oc := r.Origin.Sub(center)
	a := r.Direction.LenSq()
	halfB := oc.Dot(r.Direction)
	c := oc.LenSq() - radius*radius

	discriminant := halfB*halfB - a*c
	if !(discriminant > 0) {
		return HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if !(root > tMin && root < tMax) {
		root = (-halfB + sqrtD) / a
		if !(root > tMin && root < tMax) {
			return HitRecord{}, false
		}
	}

	rec := HitRecord{
		T:        root,
		P:        r.At(root),
		Material: mat,
	}
	outwardNormal := rec.P.Sub(center).Div(radius)
	rec.SetFaceNormal(r, outwardNormal)
	// Hollow spheres flip the normal but share the parametrization
	rec.U, rec.V = sphereUV(rec.P.Sub(center).Div(math.Abs(radius)))
	return rec, true
}

// Map a point on the unit sphere to (u, v) in [0,1]^2. u grows with the
// angle around the Y axis starting at -X; v grows from the bottom pole.
func sphereUV(p types.Vec3) (u, v float64) {
	theta := math.Acos(-p[1])
	phi := math.Atan2(-p[2], p[0]) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

func sphereBox(center types.Vec3, radius float64) AABB {
	r := math.Abs(radius)
	ext := types.XYZ(r, r, r)
	return NewAABB(center.Sub(ext), center.Add(ext))
}
