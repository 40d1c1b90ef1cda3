package texture

import "github.com/few-photons/pathtracer/pkg/core"

// SampledImage is the external contract an image decoder must satisfy: pixel
// dimensions plus an (x,y) -> 8-bit RGB sampler. Decoding itself happens
// outside this package; see pkg/loaders.
type SampledImage interface {
	Width() int
	Height() int
	Sample(x, y int) (r, g, b uint8)
}

// ImageTexture samples linear color from a decoded image.
type ImageTexture struct {
	Image SampledImage
}

// NewImageTexture wraps a decoded image as a texture.
func NewImageTexture(image SampledImage) *ImageTexture {
	return &ImageTexture{Image: image}
}

// Value clamps uv to [0,1], flips v to the image's top-down row order, and
// converts the sampled byte triple to linear color.
func (t *ImageTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	if t.Image == nil || t.Image.Width() <= 0 || t.Image.Height() <= 0 {
		return core.NewVec3(0, 1, 1)
	}

	u = clamp01(u)
	v = clamp01(v)

	x := int(u * float64(t.Image.Width()))
	if x >= t.Image.Width() {
		x = t.Image.Width() - 1
	}
	y := int((1 - v) * float64(t.Image.Height()))
	if y >= t.Image.Height() {
		y = t.Image.Height() - 1
	}

	r, g, b := t.Image.Sample(x, y)
	const scale = 1.0 / 255.0
	return core.NewVec3(float64(r)*scale, float64(g)*scale, float64(b)*scale)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
