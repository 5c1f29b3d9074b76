package scene

import "github.com/achilleasa/go-raytrace/types"

// A sphere whose center moves linearly from Center0 at Time0 to Center1 at
// Time1. Times outside the keyframe interval extrapolate along the same line.
type MovingSphere struct {
	Center0, Center1 types.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         Material
}

// Create a new moving sphere.
func NewMovingSphere(center0, center1 types.Vec3, time0, time1, radius float64, mat Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: mat,
	}
}

// Get the sphere center at the given time.
func (s *MovingSphere) Center(time float64) types.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	f := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Sub(s.Center0).Mul(f))
}

func (s *MovingSphere) Hit(r types.Ray, tMin, tMax float64) (HitRecord, bool) {
	return hitSphere(s.Center(r.Time), s.Radius, s.Material, r, tMin, tMax)
}

// The box spans the sphere at both ends of [t0, t1] so it stays valid for
// any ray time inside the shutter interval.
func (s *MovingSphere) BoundingBox(t0, t1 float64) (AABB, bool) {
	box0 := sphereBox(s.Center(t0), s.Radius)
	box1 := sphereBox(s.Center(t1), s.Radius)
	return box0.Combine(box1), true
}
