package integrator

import (
	"math"
	"math/rand"

	"github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/types"
)

const (
	// Default lower bound for hit distances.
	DefaultEpsilon = 0.001

	// Default max number of scattering events per path.
	DefaultMaxDepth = 50
)

// A recursive Monte-Carlo path integrator. The zero value is not usable;
// create instances with New.
type Integrator struct {
	// Hits closer than Epsilon are ignored to avoid shadow acne.
	Epsilon float64

	// Background gradient endpoints.
	Horizon types.Vec3
	Sky     types.Vec3
}

// Create an integrator with the default epsilon and sky gradient.
func New() *Integrator {
	return &Integrator{
		Epsilon: DefaultEpsilon,
		Horizon: scene.DefaultHorizon,
		Sky:     scene.DefaultSky,
	}
}

// Create an integrator using the background of the given scene.
func ForScene(sc *scene.Scene) *Integrator {
	in := New()
	in.Horizon, in.Sky = sc.Horizon, sc.Sky
	return in
}

// Estimate the radiance arriving along r. Each scattering event consumes
// one unit of depth; a path that runs out of depth contributes black.
func (in *Integrator) RayColor(r types.Ray, world scene.Hittable, depth int, rng *rand.Rand) types.Vec3 {
	if depth <= 0 {
		return types.Vec3{}
	}

	rec, hit := world.Hit(r, in.Epsilon, math.Inf(1))
	if !hit {
		return in.Background(r)
	}

	if rec.Material == nil {
		return types.Vec3{}
	}
	scattered, attenuation, ok := rec.Material.Scatter(r, &rec, rng)
	if !ok {
		return types.Vec3{}
	}
	return attenuation.MulVec(in.RayColor(scattered, world, depth-1, rng))
}

// Get the background color seen along r: a vertical blend from the horizon
// color (looking down) to the sky color (looking up).
func (in *Integrator) Background(r types.Ray) types.Vec3 {
	t := 0.5 * (r.Direction.Normalize().Y() + 1.0)
	return in.Horizon.Lerp(in.Sky, t)
}

// Average spp radiance estimates for the pixel at (px, py) in a
// frameW x frameH image. Row 0 is the top of the image.
func (in *Integrator) SamplePixel(cam *scene.Camera, world scene.Hittable, px, py, frameW, frameH uint32, spp, maxDepth uint32, rng *rand.Rand) types.Vec3 {
	var color types.Vec3
	if spp == 0 {
		return color
	}

	row := float64(frameH - 1 - py)
	for s := uint32(0); s < spp; s++ {
		u := (float64(px) + rng.Float64()) / float64(frameW)
		v := (row + rng.Float64()) / float64(frameH)
		color = color.Add(in.RayColor(cam.GetRay(u, v, rng), world, int(maxDepth), rng))
	}
	return color.Div(float64(spp))
}

// Sample a pixel and convert it to gamma corrected 8-bit RGB.
func (in *Integrator) RenderPixel(cam *scene.Camera, world scene.Hittable, px, py, frameW, frameH uint32, spp, maxDepth uint32, rng *rand.Rand) (r, g, b uint8) {
	return in.SamplePixel(cam, world, px, py, frameW, frameH, spp, maxDepth, rng).ToRGB()
}
