package preset

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/types"
)

// A built-in scene.
type Preset struct {
	Name        string
	Description string

	// Populate a new scene and attach a camera with the given aspect ratio.
	// All randomness is drawn from rng.
	Build func(aspect float64, rng *rand.Rand) *scene.Scene
}

var presets = map[string]Preset{}

func register(p Preset) {
	presets[p.Name] = p
}

// Lookup a preset by name.
func Get(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("preset: unknown scene %q", name)
	}
	return p, nil
}

// Get all presets sorted by name.
func All() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func init() {
	register(Preset{
		Name:        "ground-sphere",
		Description: "a diffuse sphere resting on a large diffuse ground sphere",
		Build:       groundSphere,
	})
	register(Preset{
		Name:        "materials",
		Description: "diffuse, fuzzy metal and hollow glass spheres side by side",
		Build:       materials,
	})
	register(Preset{
		Name:        "random",
		Description: "a field of random spheres with motion blur and a checker ground",
		Build:       random,
	})
	register(Preset{
		Name:        "two-spheres",
		Description: "two stacked checker textured spheres",
		Build:       twoSpheres,
	})
	register(Preset{
		Name:        "two-perlin-spheres",
		Description: "marble textured spheres driven by perlin turbulence",
		Build:       twoPerlinSpheres,
	})
}

func groundSphere(aspect float64, _ *rand.Rand) *scene.Scene {
	sc := scene.NewScene()
	sc.Add(scene.NewSphere(types.XYZ(0, 0, -1), 0.5, scene.NewLambertian(types.RGB(0.1, 0.2, 0.5))))
	sc.Add(scene.NewSphere(types.XYZ(0, -100.5, -1), 100, scene.NewLambertian(types.RGB(0.8, 0.8, 0))))
	sc.SetCamera(scene.NewCamera(scene.CameraOptions{
		LookFrom: types.XYZ(0, 0, 0),
		LookAt:   types.XYZ(0, 0, -1),
		Up:       types.XYZ(0, 1, 0),
		VFov:     90,
		Aspect:   aspect,
	}))
	return sc
}

func materials(aspect float64, _ *rand.Rand) *scene.Scene {
	sc := scene.NewScene()
	glass := scene.NewDielectric(1.5)
	sc.Add(scene.NewSphere(types.XYZ(0, 0, -1), 0.5, scene.NewLambertian(types.RGB(0.1, 0.2, 0.5))))
	sc.Add(scene.NewSphere(types.XYZ(0, -100.5, -1), 100, scene.NewLambertian(types.RGB(0.8, 0.8, 0))))
	sc.Add(scene.NewSphere(types.XYZ(1, 0, -1), 0.5, scene.NewMetal(types.RGB(0.8, 0.6, 0.2), 0.3)))
	sc.Add(scene.NewSphere(types.XYZ(-1, 0, -1), 0.5, glass))
	sc.Add(scene.NewSphere(types.XYZ(-1, 0, -1), -0.45, glass))

	lookFrom, lookAt := types.XYZ(3, 3, 2), types.XYZ(0, 0, -1)
	sc.SetCamera(scene.NewCamera(scene.CameraOptions{
		LookFrom: lookFrom,
		LookAt:   lookAt,
		Up:       types.XYZ(0, 1, 0),
		VFov:     20,
		Aspect:   aspect,
		Aperture: 0.5,
	}))
	return sc
}

func random(aspect float64, rng *rand.Rand) *scene.Scene {
	sc := scene.NewScene()
	checker := scene.NewChecker(types.RGB(0.2, 0.3, 0.1), types.RGB(0.9, 0.9, 0.9), 10)
	sc.Add(scene.NewSphere(types.XYZ(0, -1000, 0), 1000, scene.NewTexturedLambertian(checker)))

	glass := scene.NewDielectric(1.5)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rng.Float64()
			center := types.XYZ(float64(a)+0.9*rng.Float64(), 0.2, float64(b)+0.9*rng.Float64())
			if center.Sub(types.XYZ(4, 0.2, 0)).Len() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := types.RandomVec3(rng, 0, 1).MulVec(types.RandomVec3(rng, 0, 1))
				center1 := center.Add(types.XYZ(0, types.RandomInRange(rng, 0, 0.5), 0))
				sc.Add(scene.NewMovingSphere(center, center1, 0, 1, 0.2, scene.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := types.RandomVec3(rng, 0.5, 1)
				fuzz := types.RandomInRange(rng, 0, 0.5)
				sc.Add(scene.NewSphere(center, 0.2, scene.NewMetal(albedo, fuzz)))
			default:
				sc.Add(scene.NewSphere(center, 0.2, glass))
			}
		}
	}

	sc.Add(scene.NewSphere(types.XYZ(0, 1, 0), 1, glass))
	sc.Add(scene.NewSphere(types.XYZ(-4, 1, 0), 1, scene.NewLambertian(types.RGB(0.4, 0.2, 0.1))))
	sc.Add(scene.NewSphere(types.XYZ(4, 1, 0), 1, scene.NewMetal(types.RGB(0.7, 0.6, 0.5), 0)))

	sc.SetCamera(scene.NewCamera(scene.CameraOptions{
		LookFrom:  types.XYZ(13, 2, 3),
		LookAt:    types.XYZ(0, 0, 0),
		Up:        types.XYZ(0, 1, 0),
		VFov:      20,
		Aspect:    aspect,
		Aperture:  0.1,
		FocusDist: 10,
		Time0:     0,
		Time1:     1,
	}))
	return sc
}

func twoSpheres(aspect float64, _ *rand.Rand) *scene.Scene {
	sc := scene.NewScene()
	checker := scene.NewTexturedLambertian(scene.NewChecker(types.RGB(0.2, 0.3, 0.1), types.RGB(0.9, 0.9, 0.9), 10))
	sc.Add(scene.NewSphere(types.XYZ(0, -10, 0), 10, checker))
	sc.Add(scene.NewSphere(types.XYZ(0, 10, 0), 10, checker))
	sc.SetCamera(farCamera(aspect))
	return sc
}

func twoPerlinSpheres(aspect float64, rng *rand.Rand) *scene.Scene {
	sc := scene.NewScene()
	marble := scene.NewTexturedLambertian(scene.NewNoise(scene.NewPerlin(rng), 4))
	sc.Add(scene.NewSphere(types.XYZ(0, -1000, 0), 1000, marble))
	sc.Add(scene.NewSphere(types.XYZ(0, 2, 0), 2, marble))
	sc.SetCamera(farCamera(aspect))
	return sc
}

func farCamera(aspect float64) *scene.Camera {
	return scene.NewCamera(scene.CameraOptions{
		LookFrom:  types.XYZ(13, 2, 3),
		LookAt:    types.XYZ(0, 0, 0),
		Up:        types.XYZ(0, 1, 0),
		VFov:      20,
		Aspect:    aspect,
		FocusDist: 10,
	})
}
