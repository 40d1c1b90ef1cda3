// Package image implements the renderer's external pixel sink: a
// row/column-indexed 8-bit RGB grid that finalises to a PPM file.
package image

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/few-photons/pathtracer/pkg/color"
)

// Format selects the PPM variant written by PixelBuffer.Write.
type Format int

const (
	// P3 is the ASCII PPM variant: human-readable decimal triples.
	P3 Format = iota
	// P6 is the binary PPM variant: raw bytes after the header.
	P6
)

// PixelBuffer is a row-major WIDTH x HEIGHT grid of 8-bit RGB pixels. It is
// allocated zero-filled; the dispatcher writes each cell exactly once, and
// the scene is written to disk only after every cell has been set.
type PixelBuffer struct {
	mu            sync.Mutex
	width, height int
	pixels        []color.RGB
	maxComponent  uint8
}

// NewPixelBuffer allocates a zero-filled width x height pixel grid.
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		width:  width,
		height: height,
		pixels: make([]color.RGB, width*height),
	}
}

// Width returns the buffer's column count.
func (b *PixelBuffer) Width() int { return b.width }

// Height returns the buffer's row count.
func (b *PixelBuffer) Height() int { return b.height }

// SetPixel writes rgb into (row, col) and tracks the running maximum byte
// component observed, which is reported as the PPM's max_color_value. Each
// cell is disjoint across dispatcher tasks; the mutex only ever serializes
// a single-slot write, not a read-modify-write.
func (b *PixelBuffer) SetPixel(row, col int, rgb color.RGB) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pixels[row*b.width+col] = rgb
	if rgb.R > b.maxComponent {
		b.maxComponent = rgb.R
	}
	if rgb.G > b.maxComponent {
		b.maxComponent = rgb.G
	}
	if rgb.B > b.maxComponent {
		b.maxComponent = rgb.B
	}
}

// MaxComponent returns the largest byte component observed across all
// writes. It is tracked for reporting only: Write always declares the
// conventional 255, since a smaller max_color_value would rescale the image
// in strict PPM readers.
func (b *PixelBuffer) MaxComponent() uint8 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.maxComponent
}

// At returns the pixel written at (row, col).
func (b *PixelBuffer) At(row, col int) color.RGB {
	return b.pixels[row*b.width+col]
}

// Write finalises the buffer to path as a PPM file in the given format.
// The conventional max_color_value of 255 is used rather than the observed
// running maximum, which the source treats as a harmless reporting quirk.
func (b *PixelBuffer) Write(path string, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create output file %q", path)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	var magic string
	if format == P6 {
		magic = "P6"
	} else {
		magic = "P3"
	}
	if _, err := fmt.Fprintf(w, "%s\n%d %d\n255\n", magic, b.width, b.height); err != nil {
		return errors.Wrap(err, "write PPM header")
	}

	if format == P6 {
		if err := b.writeBinaryBody(w); err != nil {
			return errors.Wrap(err, "write PPM body")
		}
	} else {
		if err := b.writeASCIIBody(w); err != nil {
			return errors.Wrap(err, "write PPM body")
		}
	}

	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "flush output file %q", path)
	}
	return nil
}

func (b *PixelBuffer) writeASCIIBody(w *bufio.Writer) error {
	for _, p := range b.pixels {
		if _, err := fmt.Fprintf(w, "%d %d %d\n", p.R, p.G, p.B); err != nil {
			return err
		}
	}
	return nil
}

func (b *PixelBuffer) writeBinaryBody(w *bufio.Writer) error {
	triple := make([]byte, 3)
	for _, p := range b.pixels {
		triple[0], triple[1], triple[2] = p.R, p.G, p.B
		if _, err := w.Write(triple); err != nil {
			return err
		}
	}
	return nil
}
