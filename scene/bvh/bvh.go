package bvh

import (
	"math/rand"
	"sort"
	"time"

	"github.com/achilleasa/go-raytrace/log"
	"github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/types"
)

type Axis uint8

const (
	XAxis Axis = iota
	YAxis
	ZAxis
)

// A BVH node. Both children of a single-primitive leaf alias the same
// primitive. Node bounds are computed once at construction.
type Node struct {
	Left   scene.Hittable
	Right  scene.Hittable
	Bounds scene.AABB
}

// Build statistics.
type Stats struct {
	Primitives int
	Nodes      int
	Leafs      int
	MaxDepth   int

	// Primitives that reported no bounding box.
	MissingBoxes int

	BuildTime time.Duration
}

type builder struct {
	logger log.Logger

	rng *rand.Rand

	// The shutter interval used for querying primitive bounds.
	time0, time1 float64

	stats Stats
}

// Construct a BVH over the primitives in list for the shutter interval
// [time0, time1]. The list itself is not modified. Each node splits its
// primitives at the median along an axis picked uniformly at random from rng.
//
// Build panics if the list is empty.
func Build(list *scene.List, time0, time1 float64, rng *rand.Rand) *Node {
	node, _ := BuildWithStats(list, time0, time1, rng)
	return node
}

// Construct a BVH and also return statistics about the generated tree.
func BuildWithStats(list *scene.List, time0, time1 float64, rng *rand.Rand) (*Node, Stats) {
	if list.Len() == 0 {
		panic("bvh: cannot build a tree over an empty list")
	}

	b := &builder{
		logger: log.New("bvh builder"),
		rng:    rng,
		time0:  time0,
		time1:  time1,
		stats: Stats{
			Primitives: list.Len(),
		},
	}

	workList := make([]item, list.Len())
	for idx, h := range list.Objects {
		workList[idx] = item{hittable: h, box: b.boxOf(h)}
	}

	start := time.Now()
	root := b.partition(workList, 0)
	b.stats.BuildTime = time.Since(start)
	b.logger.Debugf(
		"BVH tree build time: %d ms, maxDepth: %d, nodes: %d, leafs: %d",
		b.stats.BuildTime.Nanoseconds()/1e6,
		b.stats.MaxDepth, b.stats.Nodes, b.stats.Leafs,
	)
	if b.stats.MissingBoxes != 0 {
		b.logger.Warningf("%d primitive(s) without a bounding box; substituted empty boxes", b.stats.MissingBoxes)
	}
	return root, b.stats
}

// A primitive paired with its bounds over the build shutter interval.
type item struct {
	hittable scene.Hittable
	box      scene.AABB
}

// Partition the work list into a subtree and return its root.
func (b *builder) partition(workList []item, depth int) *Node {
	if depth > b.stats.MaxDepth {
		b.stats.MaxDepth = depth
	}
	b.stats.Nodes++

	axis := Axis(b.rng.Intn(3))
	less := func(i, j int) bool {
		return workList[i].box.Min[axis] < workList[j].box.Min[axis]
	}

	node := &Node{}
	switch len(workList) {
	case 1:
		node.Left, node.Right = workList[0].hittable, workList[0].hittable
		node.Bounds = workList[0].box
		b.stats.Leafs++
	case 2:
		if less(1, 0) {
			workList[0], workList[1] = workList[1], workList[0]
		}
		node.Left, node.Right = workList[0].hittable, workList[1].hittable
		node.Bounds = workList[0].box.Combine(workList[1].box)
		b.stats.Leafs++
	default:
		sort.SliceStable(workList, less)
		mid := len(workList) / 2
		left := b.partition(workList[:mid], depth+1)
		right := b.partition(workList[mid:], depth+1)
		node.Left, node.Right = left, right
		node.Bounds = left.Bounds.Combine(right.Bounds)
	}

	return node
}

// Get the bounds of a primitive. A missing box is logged and replaced with
// an empty box at the origin so the build can proceed.
func (b *builder) boxOf(h scene.Hittable) scene.AABB {
	box, ok := h.BoundingBox(b.time0, b.time1)
	if !ok {
		b.stats.MissingBoxes++
		b.logger.Debugf("no bounding box for primitive %T", h)
		return scene.AABB{}
	}
	return box
}

// Return the nearest hit in the subtree. The right child is searched only
// up to the left hit distance, so a right hit is always the closer one.
func (n *Node) Hit(r types.Ray, tMin, tMax float64) (scene.HitRecord, bool) {
	if !n.Bounds.Hit(r, tMin, tMax) {
		return scene.HitRecord{}, false
	}

	leftRec, hitLeft := n.Left.Hit(r, tMin, tMax)
	if hitLeft {
		tMax = leftRec.T
	}
	if rightRec, hitRight := n.Right.Hit(r, tMin, tMax); hitRight {
		return rightRec, true
	}
	return leftRec, hitLeft
}

func (n *Node) BoundingBox(_, _ float64) (scene.AABB, bool) {
	return n.Bounds, true
}

// Replace the scene root with a BVH built over its primitives for the
// camera shutter interval. Scenes without primitives keep their root.
func Compile(sc *scene.Scene, rng *rand.Rand) Stats {
	if sc.Objects.Len() == 0 {
		return Stats{}
	}

	var time0, time1 float64
	if sc.Camera != nil {
		time0, time1 = sc.Camera.Time0, sc.Camera.Time1
	}
	root, stats := BuildWithStats(sc.Objects, time0, time1, rng)
	sc.SetRoot(root)
	return stats
}
