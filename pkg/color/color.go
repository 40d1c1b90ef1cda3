// Package color converts between the renderer's linear radiance values and
// the 8-bit RGB triples written to the output image.
package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/few-photons/pathtracer/pkg/core"
)

// Linear is a linear-space color, nominally in [0,1]^3 but may exceed 1
// after accumulation; it is only clamped on final conversion to RGB.
type Linear = core.Vec3

// RGB is an 8-bit display-encoded color triple.
type RGB struct {
	R, G, B uint8
}

// Space selects the transfer function used to go from Linear to RGB.
type Space int

const (
	// Gamma2 applies the classic c_out = c_lin^(1/2) curve.
	Gamma2 Space = iota
	// SRGB applies the piecewise sRGB companding curve via go-colorful,
	// an alternative transfer function for scenes that want standard
	// display-referred output instead of the book's gamma-2 curve.
	SRGB
)

// NewLinear constructs a Linear color from components.
func NewLinear(r, g, b float64) Linear {
	return core.NewVec3(r, g, b)
}

// ToRGB converts a linear color to 8-bit RGB using the given transfer function.
// Values are clamped to [0,1] before quantizing to a byte.
func ToRGB(c Linear, space Space) RGB {
	var encoded Linear
	switch space {
	case SRGB:
		clamped := c.Clamp(0, 1)
		r, g, b := colorful.LinearRgb(clamped.X, clamped.Y, clamped.Z).Clamped().RGB255()
		return RGB{R: r, G: g, B: b}
	default:
		encoded = gammaCorrect(c, 2.0).Clamp(0, 1)
	}

	return RGB{
		R: uint8(255.999 * encoded.X),
		G: uint8(255.999 * encoded.Y),
		B: uint8(255.999 * encoded.Z),
	}
}

// gammaCorrect applies c_out = c_lin^(1/gamma) component-wise. Negative
// linear values (which can occur transiently before clamping) are treated as 0.
func gammaCorrect(c Linear, gamma float64) Linear {
	invGamma := 1.0 / gamma
	pow := func(v float64) float64 {
		if v <= 0 {
			return 0
		}
		return math.Pow(v, invGamma)
	}
	return core.NewVec3(pow(c.X), pow(c.Y), pow(c.Z))
}
