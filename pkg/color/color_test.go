package color

import "testing"

func TestToRGBGamma2AppliesSquareRoot(t *testing.T) {
	// sqrt(0.25) = 0.5, which quantizes to 127.
	got := ToRGB(NewLinear(0.25, 0.25, 0.25), Gamma2)
	want := RGB{R: 127, G: 127, B: 127}
	if got != want {
		t.Errorf("ToRGB(0.25, Gamma2) = %v, want %v", got, want)
	}
}

func TestToRGBClampsAccumulatedOverflow(t *testing.T) {
	got := ToRGB(NewLinear(4, 1, 0), Gamma2)
	if got.R != 255 || got.G != 255 || got.B != 0 {
		t.Errorf("ToRGB(overflow, Gamma2) = %v, want {255 255 0}", got)
	}
}

func TestToRGBGamma2NegativeTreatedAsBlack(t *testing.T) {
	got := ToRGB(NewLinear(-0.5, -0.5, -0.5), Gamma2)
	if got != (RGB{}) {
		t.Errorf("ToRGB(negative, Gamma2) = %v, want zero value", got)
	}
}

func TestToRGBSRGBEndpoints(t *testing.T) {
	if got := ToRGB(NewLinear(0, 0, 0), SRGB); got != (RGB{}) {
		t.Errorf("ToRGB(black, SRGB) = %v, want zero value", got)
	}
	if got := ToRGB(NewLinear(1, 1, 1), SRGB); got != (RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("ToRGB(white, SRGB) = %v, want {255 255 255}", got)
	}
}

func TestToRGBSRGBBrightensMidtones(t *testing.T) {
	// sRGB companding maps linear 0.5 to roughly 0.735, well above the
	// linear midpoint of 128.
	got := ToRGB(NewLinear(0.5, 0.5, 0.5), SRGB)
	if got.R < 180 || got.R > 195 {
		t.Errorf("ToRGB(0.5, SRGB).R = %d, want the companded midtone near 188", got.R)
	}
	if got.G != got.R || got.B != got.R {
		t.Errorf("ToRGB(gray, SRGB) = %v, want equal channels", got)
	}
}
