package loaders

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// NewUVDebugImage builds a procedural checkerboard grid at a small native
// resolution (one cell per gridCells) and upsamples it to width x height
// using golang.org/x/image/draw. It gives ImageTexture a UV-debug pattern
// to sample without decoding an external file, useful for sanity-checking a
// mesh's or rectangle's (u,v) parameterization.
func NewUVDebugImage(width, height, gridCells int) *Image {
	if gridCells < 1 {
		gridCells = 1
	}

	native := image.NewNRGBA(image.Rect(0, 0, gridCells, gridCells))
	for y := 0; y < gridCells; y++ {
		for x := 0; x < gridCells; x++ {
			c := color.NRGBA{R: 20, G: 20, B: 20, A: 255}
			if (x+y)%2 == 0 {
				c = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
			}
			native.SetNRGBA(x, y, c)
		}
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), native, native.Bounds(), draw.Over, nil)

	return &Image{img: scaled}
}
