package scene

import (
	"math"
	"testing"

	"github.com/achilleasa/go-raytrace/types"
)

func TestSphereHit(t *testing.T) {
	type spec struct {
		radius       float64
		origin       types.Vec3
		tMin         float64
		expHit       bool
		expT         float64
		expNormal    types.Vec3
		expFrontFace bool
	}
	specs := []spec{
		{3, types.XYZ(0, 0, 5), 0.001, true, 2, types.XYZ(0, 0, 1), true},
		// Near root excluded by tMin; far root hit from inside
		{3, types.XYZ(0, 0, 5), 2, true, 8, types.XYZ(0, 0, 1), false},
		{3, types.XYZ(0, 0, 0), 0.001, true, 3, types.XYZ(0, 0, 1), false},
		{3, types.XYZ(4, 0, 5), 0.001, false, 0, types.Vec3{}, false},
		// Negative radius flips the outward normal
		{-3, types.XYZ(0, 0, 5), 0.001, true, 2, types.XYZ(0, 0, 1), false},
	}

	mat := NewLambertian(types.RGB(0.5, 0.5, 0.5))
	for specIndex, s := range specs {
		sphere := NewSphere(types.XYZ(0, 0, 0), s.radius, mat)
		rec, hit := sphere.Hit(types.NewRay(s.origin, types.XYZ(0, 0, -1), 0), s.tMin, math.Inf(1))
		if hit != s.expHit {
			t.Fatalf("[spec %d] expected hit to be %t; got %t", specIndex, s.expHit, hit)
		}
		if !hit {
			continue
		}

		if rec.T != s.expT {
			t.Fatalf("[spec %d] expected t = %f; got %f", specIndex, s.expT, rec.T)
		}
		if !types.ApproxEqual(rec.Normal, s.expNormal, 1e-12) {
			t.Fatalf("[spec %d] expected normal %v; got %v", specIndex, s.expNormal, rec.Normal)
		}
		if rec.FrontFace != s.expFrontFace {
			t.Fatalf("[spec %d] expected front face to be %t; got %t", specIndex, s.expFrontFace, rec.FrontFace)
		}
		if rec.Material != mat {
			t.Fatalf("[spec %d] expected hit record to carry the sphere material", specIndex)
		}
	}
}

func TestSphereHitRespectsTMax(t *testing.T) {
	sphere := NewSphere(types.XYZ(0, 0, 0), 1, nil)
	r := types.NewRay(types.XYZ(0, 0, 5), types.XYZ(0, 0, -1), 0)

	// Both roots (4 and 6) lie outside the interval
	if _, hit := sphere.Hit(r, 0.001, 4); hit {
		t.Fatal("expected no hit when tMax equals the nearest root")
	}
	if _, hit := sphere.Hit(r, 6, math.Inf(1)); hit {
		t.Fatal("expected no hit when tMin equals the farthest root")
	}
}

func TestSphereBoundingBox(t *testing.T) {
	for _, radius := range []float64{2, -2} {
		box, ok := NewSphere(types.XYZ(1, 2, 3), radius, nil).BoundingBox(0, 0)
		if !ok {
			t.Fatalf("expected sphere with radius %f to have a bounding box", radius)
		}
		if box.Min != types.XYZ(-1, 0, 1) || box.Max != types.XYZ(3, 4, 5) {
			t.Fatalf("expected box (-1, 0, 1) - (3, 4, 5) for radius %f; got %v - %v", radius, box.Min, box.Max)
		}
	}
}

func TestSphereUV(t *testing.T) {
	type spec struct {
		p    types.Vec3
		expU float64
		expV float64
	}
	specs := []spec{
		{types.XYZ(1, 0, 0), 0.5, 0.5},
		{types.XYZ(0, 0, 1), 0.25, 0.5},
		{types.XYZ(0, 1, 0), 0.5, 1},
		{types.XYZ(0, -1, 0), 0.5, 0},
	}

	for specIndex, s := range specs {
		u, v := sphereUV(s.p)
		if math.Abs(u-s.expU) > 1e-12 || math.Abs(v-s.expV) > 1e-12 {
			t.Fatalf("[spec %d] expected uv (%f, %f); got (%f, %f)", specIndex, s.expU, s.expV, u, v)
		}
	}
}

func TestMovingSphere(t *testing.T) {
	sphere := NewMovingSphere(types.XYZ(0, 0, 0), types.XYZ(0, 2, 0), 0, 1, 1, nil)

	if c := sphere.Center(0.5); c != types.XYZ(0, 1, 0) {
		t.Fatalf("expected center (0, 1, 0) at t=0.5; got %v", c)
	}

	box, ok := sphere.BoundingBox(0, 1)
	if !ok || box.Min != types.XYZ(-1, -1, -1) || box.Max != types.XYZ(1, 3, 1) {
		t.Fatalf("expected box (-1, -1, -1) - (1, 3, 1); got %v - %v", box.Min, box.Max)
	}

	// The sphere only reaches y=2 at the end of the shutter interval
	r := types.NewRay(types.XYZ(0, 2, 5), types.XYZ(0, 0, -1), 1)
	if rec, hit := sphere.Hit(r, 0.001, math.Inf(1)); !hit || rec.T != 4 {
		t.Fatalf("expected hit at t=4 for ray time 1; got hit=%t t=%f", hit, rec.T)
	}
	r.Time = 0
	if _, hit := sphere.Hit(r, 0.001, math.Inf(1)); hit {
		t.Fatal("expected miss for ray time 0")
	}

	static := NewMovingSphere(types.XYZ(1, 1, 1), types.XYZ(5, 5, 5), 2, 2, 1, nil)
	if c := static.Center(7); c != types.XYZ(1, 1, 1) {
		t.Fatalf("expected degenerate keyframe interval to return the first center; got %v", c)
	}
}

func TestUnitSphereAhead(t *testing.T) {
	sphere := NewSphere(types.XYZ(0, 0, -3), 1, nil)
	rec, hit := sphere.Hit(types.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1), 0), 0.001, math.Inf(1))
	if !hit || rec.T != 2 {
		t.Fatalf("expected hit at t=2; got hit=%t t=%f", hit, rec.T)
	}
	if rec.Normal != types.XYZ(0, 0, 1) || !rec.FrontFace {
		t.Fatalf("expected front face hit with normal (0, 0, 1); got %v (front face: %t)", rec.Normal, rec.FrontFace)
	}
}

func TestHollowSphereUV(t *testing.T) {
	solid := NewSphere(types.XYZ(1, 2, 3), 2, nil)
	hollow := NewSphere(types.XYZ(1, 2, 3), -2, nil)

	for _, dir := range []types.Vec3{types.XYZ(1, 0.5, 0), types.XYZ(-0.3, -1, 0.8), types.XYZ(0.2, 0.1, -1)} {
		r := types.NewRay(types.XYZ(1, 2, 3).Sub(dir.Mul(10)), dir, 0)
		expRec, expHit := solid.Hit(r, 0.001, math.Inf(1))
		rec, hit := hollow.Hit(r, 0.001, math.Inf(1))
		if !hit || !expHit {
			t.Fatalf("expected ray along %v to hit both spheres", dir)
		}
		if rec.U != expRec.U || rec.V != expRec.V {
			t.Fatalf("expected hollow sphere uv (%f, %f); got (%f, %f)", expRec.U, expRec.V, rec.U, rec.V)
		}
		// Both normals face the ray but only the solid sphere is hit from outside
		if rec.Normal != expRec.Normal || rec.FrontFace == expRec.FrontFace {
			t.Fatalf("expected matching normals with opposite front face flags; got %v (%t) and %v (%t)", expRec.Normal, expRec.FrontFace, rec.Normal, rec.FrontFace)
		}
	}
}
