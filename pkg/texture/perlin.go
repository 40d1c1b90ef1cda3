package texture

import (
	"math"
	"math/rand"

	"github.com/few-photons/pathtracer/pkg/core"
)

// pointCount is the size of the permutation tables and gradient lookup.
const pointCount = 256

// Perlin implements gradient noise with trilinear interpolation and Hermite
// smoothing, plus a turbulence summation used by NoiseTexture.
type Perlin struct {
	ranvec []core.Vec3
	permX  []int
	permY  []int
	permZ  []int
}

// NewPerlin builds a Perlin noise generator seeded from random.
func NewPerlin(random *rand.Rand) *Perlin {
	ranvec := make([]core.Vec3, pointCount)
	for i := range ranvec {
		ranvec[i] = core.RandomVec3Range(random, -1, 1).Normalize()
	}

	return &Perlin{
		ranvec: ranvec,
		permX:  generatePerm(random),
		permY:  generatePerm(random),
		permZ:  generatePerm(random),
	}
}

func generatePerm(random *rand.Rand) []int {
	p := make([]int, pointCount)
	for i := range p {
		p[i] = i
	}
	for i := pointCount - 1; i > 0; i-- {
		target := random.Intn(i + 1)
		p[i], p[target] = p[target], p[i]
	}
	return p
}

// Noise returns gradient noise in roughly [-1,1] at the given point.
func (pn *Perlin) Noise(p core.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := pn.permX[(i+di)&255] ^ pn.permY[(j+dj)&255] ^ pn.permZ[(k+dk)&255]
				c[di][dj][dk] = pn.ranvec[idx]
			}
		}
	}

	return trilinearInterp(c, u, v, w)
}

func trilinearInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	var accum float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weight := core.NewVec3(u-float64(i), v-float64(j), w-float64(k))

				fi := float64(i)*uu + (1-float64(i))*(1-uu)
				fj := float64(j)*vv + (1-float64(j))*(1-vv)
				fk := float64(k)*ww + (1-float64(k))*(1-ww)

				accum += fi * fj * fk * c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums |Noise| over depth octaves, doubling frequency and halving
// weight at each step.
func (pn *Perlin) Turbulence(p core.Vec3, depth int) float64 {
	var accum float64
	temp := p
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * math.Abs(pn.Noise(temp))
		weight *= 0.5
		temp = temp.Multiply(2)
	}

	return math.Abs(accum)
}
