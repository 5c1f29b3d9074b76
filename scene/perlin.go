package scene

import (
	"math"
	"math/rand"

	"github.com/achilleasa/go-raytrace/types"
)

const perlinPointCount = 256

// Perlin gradient noise over an integer lattice. The tables are fixed at
// construction, so a Perlin value is safe for concurrent reads.
type Perlin struct {
	gradients [perlinPointCount]types.Vec3
	permX     [perlinPointCount]int
	permY     [perlinPointCount]int
	permZ     [perlinPointCount]int
}

// Create a Perlin generator using the given random source.
func NewPerlin(rng *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.gradients {
		p.gradients[i] = types.RandomVec3(rng, -1, 1).Normalize()
	}
	p.permX = perlinPermutation(rng)
	p.permY = perlinPermutation(rng)
	p.permZ = perlinPermutation(rng)
	return p
}

// Sample noise at p. Results lie roughly in [-1, 1].
func (pn *Perlin) Noise(p types.Vec3) float64 {
	fi, fj, fk := math.Floor(p[0]), math.Floor(p[1]), math.Floor(p[2])
	u, v, w := p[0]-fi, p[1]-fj, p[2]-fk
	i, j, k := int(fi), int(fj), int(fk)

	var c [2][2][2]types.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				// & wraps negative lattice coordinates too
				c[di][dj][dk] = pn.gradients[pn.permX[(i+di)&255]^
					pn.permY[(j+dj)&255]^
					pn.permZ[(k+dk)&255]]
			}
		}
	}

	return perlinInterp(&c, u, v, w)
}

// Sum depth octaves of noise at doubling frequency and halving weight and
// return the absolute value.
func (pn *Perlin) Turbulence(p types.Vec3, depth int) float64 {
	var accum float64
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * pn.Noise(p)
		weight *= 0.5
		p = p.Mul(2)
	}
	return math.Abs(accum)
}

func perlinPermutation(rng *rand.Rand) [perlinPointCount]int {
	var p [perlinPointCount]int
	for i := range p {
		p[i] = i
	}
	rng.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}

// Blend the corner gradient contributions with Hermite smoothing.
func perlinInterp(c *[2][2][2]types.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	var accum float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := types.XYZ(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}
