package types

import (
	"math"
	"math/rand"
)

// Sample a float in [min, max).
func RandomInRange(rng *rand.Rand, min, max float64) float64 {
	return min + (max-min)*rng.Float64()
}

// Sample a vector with each component in [min, max).
func RandomVec3(rng *rand.Rand, min, max float64) Vec3 {
	return Vec3{
		RandomInRange(rng, min, max),
		RandomInRange(rng, min, max),
		RandomInRange(rng, min, max),
	}
}

// Sample a point inside the unit ball by rejection.
func RandomInUnitSphere(rng *rand.Rand) Vec3 {
	for {
		p := RandomVec3(rng, -1, 1)
		if p.LenSq() < 1 {
			return p
		}
	}
}

// Sample a direction uniformly on the unit sphere surface. Offsetting it
// by a surface normal gives a cosine-weighted (Lambertian) distribution.
func RandomUnitVector(rng *rand.Rand) Vec3 {
	a := RandomInRange(rng, 0, 2*math.Pi)
	z := RandomInRange(rng, -1, 1)
	r := math.Sqrt(1 - z*z)
	sin, cos := math.Sincos(a)
	return Vec3{r * cos, r * sin, z}
}

// Sample a point inside the unit disk on the XY plane by rejection.
func RandomInUnitDisk(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{RandomInRange(rng, -1, 1), RandomInRange(rng, -1, 1), 0}
		if p.LenSq() < 1 {
			return p
		}
	}
}
