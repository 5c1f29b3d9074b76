package scene

import (
	"math"
	"testing"

	"github.com/achilleasa/go-raytrace/types"
)

// A hittable without spatial extent.
type unbounded struct{}

func (unbounded) Hit(_ types.Ray, _, _ float64) (HitRecord, bool) { return HitRecord{}, false }
func (unbounded) BoundingBox(_, _ float64) (AABB, bool)           { return AABB{}, false }

func TestListHitReturnsNearest(t *testing.T) {
	far := NewLambertian(types.RGB(1, 0, 0))
	near := NewLambertian(types.RGB(0, 1, 0))
	list := NewList(
		NewSphere(types.XYZ(0, 0, -10), 1, far),
		NewSphere(types.XYZ(0, 0, -4), 1, near),
		unbounded{},
	)

	r := types.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1), 0)
	rec, hit := list.Hit(r, 0.001, math.Inf(1))
	if !hit {
		t.Fatal("expected list hit")
	}
	if rec.T != 3 || rec.Material != near {
		t.Fatalf("expected nearest hit at t=3 on the near sphere; got t=%f", rec.T)
	}

	if _, hit = list.Hit(r, 0.001, 2); hit {
		t.Fatal("expected no hit when tMax is before every object")
	}
}

func TestListBoundingBox(t *testing.T) {
	list := NewList()
	if _, ok := list.BoundingBox(0, 1); ok {
		t.Fatal("expected empty list to have no bounding box")
	}
	if _, hit := list.Hit(types.NewRay(types.Vec3{}, types.XYZ(0, 0, 1), 0), 0, math.Inf(1)); hit {
		t.Fatal("expected empty list to never report a hit")
	}

	list.Add(unbounded{})
	if _, ok := list.BoundingBox(0, 1); ok {
		t.Fatal("expected list without bounded objects to have no bounding box")
	}

	list.Add(NewSphere(types.XYZ(0, 0, 0), 1, nil))
	list.Add(NewSphere(types.XYZ(4, 0, 0), 1, nil))
	box, ok := list.BoundingBox(0, 1)
	if !ok || box.Min != types.XYZ(-1, -1, -1) || box.Max != types.XYZ(5, 1, 1) {
		t.Fatalf("expected box (-1, -1, -1) - (5, 1, 1); got %v - %v", box.Min, box.Max)
	}

	list.Clear()
	if list.Len() != 0 {
		t.Fatalf("expected cleared list to be empty; got %d objects", list.Len())
	}
}
