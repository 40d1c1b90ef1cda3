// Package loaders decodes the external image files consumed by
// texture.ImageTexture. Decoding is deliberately kept outside the core
// texture package: the core only depends on the texture.SampledImage
// contract, not on any particular decoder.
package loaders

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Image is a decoded, auto-oriented RGB image sampled by (x,y) pixel
// coordinates in row-major, top-down order.
type Image struct {
	img *image.NRGBA
}

// Load decodes filename (PNG, JPEG, BMP, TIFF, GIF, ...) via imaging,
// auto-orienting it according to any embedded EXIF tag.
func Load(filename string) (*Image, error) {
	img, err := imaging.Open(filename, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrapf(err, "decode image texture %q", filename)
	}
	return &Image{img: imaging.Clone(img)}, nil
}

// Width returns the image width in pixels.
func (i *Image) Width() int {
	return i.img.Bounds().Dx()
}

// Height returns the image height in pixels.
func (i *Image) Height() int {
	return i.img.Bounds().Dy()
}

// Sample returns the RGB triple at pixel (x,y). x and y are expected to
// already be clamped to the image bounds by the caller.
func (i *Image) Sample(x, y int) (r, g, b uint8) {
	c := i.img.NRGBAAt(x+i.img.Rect.Min.X, y+i.img.Rect.Min.Y)
	return c.R, c.G, c.B
}

// Resize returns a new decoded image scaled to the given dimensions using
// Lanczos resampling, for callers that want a lower-resolution sample grid
// than the source file.
func (i *Image) Resize(width, height int) *Image {
	return &Image{img: imaging.Resize(i.img, width, height, imaging.Lanczos)}
}
