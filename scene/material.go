package scene

import (
	"math"
	"math/rand"

	"github.com/achilleasa/go-raytrace/types"
)

// The Material interface is implemented by all surface scattering models.
// Materials are immutable and may be shared by any number of primitives
// and goroutines; all randomness comes from the caller-owned rng.
type Material interface {
	// Scatter an incoming ray at the given hit. Returns false if the ray
	// is absorbed.
	Scatter(rIn types.Ray, rec *HitRecord, rng *rand.Rand) (scattered types.Ray, attenuation types.Vec3, ok bool)
}

// An ideal diffuse reflector whose albedo comes from a texture.
type Lambertian struct {
	Albedo Texture
}

// Create a lambertian material with a solid color albedo.
func NewLambertian(albedo types.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// Create a lambertian material with a textured albedo.
func NewTexturedLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter towards the normal offset by a uniform unit vector, which yields a
// cosine-weighted distribution around the normal. Never absorbs.
func (m *Lambertian) Scatter(rIn types.Ray, rec *HitRecord, rng *rand.Rand) (types.Ray, types.Vec3, bool) {
	dir := rec.Normal.Add(types.RandomUnitVector(rng))

	// The sample landed opposite the normal
	if dir.NearZero() {
		dir = rec.Normal
	}

	return types.NewRay(rec.P, dir, rIn.Time), m.Albedo.Value(rec.U, rec.V, rec.P), true
}

// A specular reflector. Fuzz perturbs the mirror direction by a random
// offset inside a ball of that radius.
type Metal struct {
	Albedo types.Vec3
	Fuzz   float64
}

// Create a metal material. Fuzz is clamped to [0, 1].
func NewMetal(albedo types.Vec3, fuzz float64) *Metal {
	return &Metal{Albedo: albedo, Fuzz: math.Max(0, math.Min(fuzz, 1))}
}

// Reflect about the normal. Fuzzed directions that end up below the surface
// are absorbed.
func (m *Metal) Scatter(rIn types.Ray, rec *HitRecord, rng *rand.Rand) (types.Ray, types.Vec3, bool) {
	reflected := rIn.Direction.Normalize().Reflect(rec.Normal)
	scattered := types.NewRay(rec.P, reflected.Add(types.RandomInUnitSphere(rng).Mul(m.Fuzz)), rIn.Time)
	if scattered.Direction.Dot(rec.Normal) <= 0 {
		return types.Ray{}, types.Vec3{}, false
	}
	return scattered, m.Albedo, true
}

// A clear refractive material such as glass or water.
type Dielectric struct {
	RefractiveIndex float64
}

// Create a dielectric material.
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Reflect on total internal reflection, otherwise pick reflection with the
// Schlick probability and refraction with the rest. Never absorbs.
func (m *Dielectric) Scatter(rIn types.Ray, rec *HitRecord, rng *rand.Rand) (types.Ray, types.Vec3, bool) {
	etaRatio := m.RefractiveIndex
	if rec.FrontFace {
		etaRatio = 1.0 / m.RefractiveIndex
	}

	unitDir := rIn.Direction.Normalize()
	cosTheta := math.Min(unitDir.Neg().Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	var dir types.Vec3
	if etaRatio*sinTheta > 1.0 || rng.Float64() < Reflectance(cosTheta, etaRatio) {
		dir = unitDir.Reflect(rec.Normal)
	} else {
		dir = unitDir.Refract(rec.Normal, etaRatio)
	}

	return types.NewRay(rec.P, dir, rIn.Time), types.RGB(1, 1, 1), true
}

// Schlick's approximation of the Fresnel reflectance.
func Reflectance(cosine, etaRatio float64) float64 {
	r0 := (1 - etaRatio) / (1 + etaRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
