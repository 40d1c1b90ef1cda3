package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type rgb struct{ R, G, B uint8 }

func sampleRGB(img *Image, x, y int) rgb {
	r, g, b := img.Sample(x, y)
	return rgb{r, g, b}
}

func writeTestPNG(t *testing.T, path string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}) // top-left: white
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})     // top-right: red
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})     // bottom-left: green
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})     // bottom-right: blue

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create test file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode PNG: %v", err)
	}
}

func TestLoadDimensionsAndPixels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	writeTestPNG(t, path)

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if img.Width() != 2 || img.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", img.Width(), img.Height())
	}

	cases := []struct {
		name    string
		x, y    int
		r, g, b uint8
	}{
		{"top-left white", 0, 0, 255, 255, 255},
		{"top-right red", 1, 0, 255, 0, 0},
		{"bottom-left green", 0, 1, 0, 255, 0},
		{"bottom-right blue", 1, 1, 0, 0, 255},
	}
	for _, c := range cases {
		r, g, b := img.Sample(c.x, c.y)
		if r != c.r || g != c.g || b != c.b {
			t.Errorf("%s: Sample(%d,%d) = (%d,%d,%d), want (%d,%d,%d)", c.name, c.x, c.y, r, g, b, c.r, c.g, c.b)
		}
	}
}

func TestLoadMissingFileWrapsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.png"))
	if err == nil {
		t.Fatal("Load() error = nil, want non-nil for missing file")
	}
}

func TestResizeChangesDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	writeTestPNG(t, path)

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	resized := img.Resize(8, 8)
	if resized.Width() != 8 || resized.Height() != 8 {
		t.Errorf("Resize() dimensions = %dx%d, want 8x8", resized.Width(), resized.Height())
	}
}

func TestUVDebugImageAlternatesCells(t *testing.T) {
	img := NewUVDebugImage(4, 4, 2)
	if img.Width() != 4 || img.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, want 4x4", img.Width(), img.Height())
	}

	light := rgb{220, 220, 220}
	dark := rgb{20, 20, 20}

	if got := sampleRGB(img, 0, 0); !cmp.Equal(got, light) {
		t.Errorf("top-left cell = %+v, want %+v (diff %s)", got, light, cmp.Diff(light, got))
	}
	if got := sampleRGB(img, 3, 0); !cmp.Equal(got, dark) {
		t.Errorf("top-right cell = %+v, want %+v (diff %s)", got, dark, cmp.Diff(dark, got))
	}
}
