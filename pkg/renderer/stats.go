package renderer

import (
	"github.com/few-photons/pathtracer/pkg/core"
	"github.com/few-photons/pathtracer/pkg/image"
)

// CalculateAverageLuminance returns the mean perceptual luminance of a
// rendered buffer, computed over the display-encoded 8-bit values mapped
// back to [0,1]. Useful as a one-number summary of how bright a render
// came out.
func CalculateAverageLuminance(buf *image.PixelBuffer) float64 {
	width, height := buf.Width(), buf.Height()
	if width == 0 || height == 0 {
		return 0
	}

	const scale = 1.0 / 255.0
	var total float64
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			p := buf.At(row, col)
			c := core.NewVec3(float64(p.R)*scale, float64(p.G)*scale, float64(p.B)*scale)
			total += c.Luminance()
		}
	}
	return total / float64(width*height)
}
