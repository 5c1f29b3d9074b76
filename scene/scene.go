package scene

import "github.com/achilleasa/go-raytrace/types"

// The default sky gradient endpoints.
var (
	DefaultHorizon = types.RGB(1, 1, 1)
	DefaultSky     = types.RGB(0.5, 0.7, 1.0)
)

// A renderable scene: the primitives, the hittable the tracers query and
// the camera looking at them. A scene is read-only once rendering starts.
type Scene struct {
	Camera *Camera

	// The primitives in insertion order.
	Objects *List

	// The top-level hittable. Defaults to Objects; set to a compiled BVH
	// to accelerate queries.
	Root Hittable

	// Background gradient endpoints for rays that escape the scene.
	Horizon types.Vec3
	Sky     types.Vec3
}

func NewScene() *Scene {
	objects := NewList()
	return &Scene{
		Objects: objects,
		Root:    objects,
		Horizon: DefaultHorizon,
		Sky:     DefaultSky,
	}
}

// Attach a camera to the scene.
func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

// Add a primitive to the scene.
func (s *Scene) Add(object Hittable) {
	s.Objects.Add(object)
}

// Set the hittable used for ray queries.
func (s *Scene) SetRoot(root Hittable) {
	s.Root = root
}
