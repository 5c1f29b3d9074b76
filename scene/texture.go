package scene

import (
	"math"

	"github.com/achilleasa/go-raytrace/types"
)

// The Texture interface supplies a color for a surface parametrization and
// a world-space point.
type Texture interface {
	Value(u, v float64, p types.Vec3) types.Vec3
}

// A constant color.
type SolidColor struct {
	Color types.Vec3
}

func NewSolidColor(c types.Vec3) *SolidColor {
	return &SolidColor{Color: c}
}

func (t *SolidColor) Value(_, _ float64, _ types.Vec3) types.Vec3 {
	return t.Color
}

// A 3D checkerboard alternating between two textures.
type Checker struct {
	Odd, Even Texture

	// Spatial frequency of the pattern.
	Scale float64
}

// Create a checker texture alternating two solid colors.
func NewChecker(odd, even types.Vec3, scale float64) *Checker {
	return &Checker{Odd: NewSolidColor(odd), Even: NewSolidColor(even), Scale: scale}
}

// Pick a sub-texture from the sign of the product of the sines of the
// scaled point coordinates.
func (t *Checker) Value(u, v float64, p types.Vec3) types.Vec3 {
	sines := math.Sin(t.Scale*p[0]) * math.Sin(t.Scale*p[1]) * math.Sin(t.Scale*p[2])
	if sines < 0 {
		return t.Odd.Value(u, v, p)
	}
	return t.Even.Value(u, v, p)
}

// Default number of turbulence octaves.
const DefaultTurbulenceDepth = 7

// A marble-like texture driven by Perlin turbulence.
type Noise struct {
	Perlin *Perlin
	Scale  float64
	Depth  int
}

// Create a noise texture.
func NewNoise(perlin *Perlin, scale float64) *Noise {
	return &Noise{Perlin: perlin, Scale: scale, Depth: DefaultTurbulenceDepth}
}

// Phase-shift a sine wave along Z by the turbulence at p, giving gray
// values in [0, 1].
func (t *Noise) Value(_, _ float64, p types.Vec3) types.Vec3 {
	phase := t.Scale*p[2] + 10*t.Perlin.Turbulence(p, t.Depth)
	return types.RGB(1, 1, 1).Mul(0.5 * (1 + math.Sin(phase)))
}
