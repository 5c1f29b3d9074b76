package scene

import "github.com/achilleasa/go-raytrace/types"

// An unordered collection of hittables tested by brute force.
type List struct {
	Objects []Hittable
}

// Create a new list with the given objects.
func NewList(objects ...Hittable) *List {
	l := &List{}
	for _, o := range objects {
		l.Add(o)
	}
	return l
}

// Append an object to the list.
func (l *List) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

// Get the number of objects in the list.
func (l *List) Len() int {
	return len(l.Objects)
}

// Remove all objects.
func (l *List) Clear() {
	l.Objects = nil
}

// Return the nearest hit among all objects. Every hit shrinks the search
// interval so later objects only report closer hits.
func (l *List) Hit(r types.Ray, tMin, tMax float64) (HitRecord, bool) {
	var (
		closest HitRecord
		hitAny  bool
	)
	closestSoFar := tMax
	for _, o := range l.Objects {
		if rec, ok := o.Hit(r, tMin, closestSoFar); ok {
			hitAny = true
			closestSoFar = rec.T
			closest = rec
		}
	}
	return closest, hitAny
}

// Fold the boxes of all objects into one. Objects without a box are skipped;
// an empty list has no box.
func (l *List) BoundingBox(t0, t1 float64) (AABB, bool) {
	var (
		out   AABB
		found bool
	)
	for _, o := range l.Objects {
		box, ok := o.BoundingBox(t0, t1)
		if !ok {
			continue
		}
		if !found {
			out, found = box, true
			continue
		}
		out = out.Combine(box)
	}
	return out, found
}
