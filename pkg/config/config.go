// Package config defines the renderer's runtime configuration: the
// per-scene knobs named in the external-interfaces contract (image
// dimensions, sampling, bounce depth, background policy, output path and
// format, color space) and the ways to obtain them — CLI flags or a YAML
// render profile.
package config

import (
	"flag"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/few-photons/pathtracer/pkg/color"
	"github.com/few-photons/pathtracer/pkg/image"
)

// BackgroundPolicy selects which Background func the integrator is built
// with; it is a string in CLI flags and YAML so a render profile stays
// human-editable.
type BackgroundPolicy string

const (
	// BackgroundAuto defers to the background policy the scene itself was
	// built with.
	BackgroundAuto BackgroundPolicy = "auto"
	// BackgroundSky is the vertical white-to-blue gradient used by the
	// ambient-sky example scenes.
	BackgroundSky BackgroundPolicy = "sky"
	// BackgroundBlack is the fully enclosed policy used by Cornell-style
	// scenes, where no light arrives except through the geometry.
	BackgroundBlack BackgroundPolicy = "black"
)

// RenderConfig is the full set of runtime knobs for a single render: image
// dimensions, sampling, bounce depth, camera/background selection, worker
// count, RNG seed, and output path/format/color-space.
type RenderConfig struct {
	Scene string `yaml:"scene"`
	Width int    `yaml:"width"`
	// Height is informational only: the renderer always derives the
	// actual output height from Width and the scene's own aspect ratio,
	// the same width-in/height-derived convention the canonical scenes'
	// cameras are built against. It round-trips through Save/Load so a
	// profile documents the height a given Width produces, but setting it
	// has no effect on rendering.
	Height          int              `yaml:"height"`
	SamplesPerPixel int              `yaml:"samples_per_pixel"`
	MaxDepth        int              `yaml:"max_depth"`
	Background      BackgroundPolicy `yaml:"background"`
	Workers         int              `yaml:"workers"`
	Seed            int64            `yaml:"seed"`
	OutputPath      string           `yaml:"output_path"`
	OutputFormat    string           `yaml:"output_format"`
	ColorSpace      string           `yaml:"color_space"`
}

// Default returns the canonical scene defaults named in the runtime
// configuration contract: width 400, 100 samples per pixel, depth 50.
func Default() RenderConfig {
	return RenderConfig{
		Scene:           "two-sphere",
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Background:      BackgroundAuto,
		Workers:         0,
		Seed:            0,
		OutputPath:      "render.ppm",
		OutputFormat:    "P3",
		ColorSpace:      "gamma2",
	}
}

// RegisterFlags binds cfg's fields to fs, matching the flag package's
// "register a pointer, then fs.Parse" idiom.
func (cfg *RenderConfig) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&cfg.Scene, "scene", cfg.Scene, "scene to render: two-sphere, cornell, cornell-boxes, cornell-smoke, marble, final")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "output image width in pixels; height is derived from the scene's aspect ratio")
	fs.IntVar(&cfg.SamplesPerPixel, "samples", cfg.SamplesPerPixel, "samples per pixel")
	fs.IntVar(&cfg.MaxDepth, "depth", cfg.MaxDepth, "maximum bounce depth")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of parallel workers (0 = auto-detect CPU count)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "base RNG seed (0 = time-derived)")
	fs.StringVar(&cfg.OutputPath, "out", cfg.OutputPath, "output file path")
	fs.StringVar(&cfg.OutputFormat, "format", cfg.OutputFormat, "output PPM format: P3 or P6")
	fs.StringVar(&cfg.ColorSpace, "colorspace", cfg.ColorSpace, "color space: gamma2 or srgb")
	fs.Func("background", "background policy: auto (the scene's own), sky or black (default \""+string(cfg.Background)+"\")", func(v string) error {
		switch BackgroundPolicy(v) {
		case BackgroundAuto, BackgroundSky, BackgroundBlack:
			cfg.Background = BackgroundPolicy(v)
			return nil
		default:
			return errors.Errorf("unknown background policy %q", v)
		}
	})
}

// Load reads a YAML render profile from path and returns it merged over the
// package defaults: fields absent from the file keep their default value.
func Load(path string) (RenderConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read render profile %q", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse render profile %q", path)
	}
	return cfg, nil
}

// Save writes cfg to path as a YAML render profile, alongside a scene's Go
// constructor the way a canonical scene can ship a matching .yaml profile.
func Save(cfg RenderConfig, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshal render profile")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write render profile %q", path)
	}
	return nil
}

// ImageFormat maps the config's string format field to the image package's
// Format enum, defaulting to P3 for any unrecognized value.
func (cfg RenderConfig) ImageFormat() image.Format {
	if cfg.OutputFormat == "P6" {
		return image.P6
	}
	return image.P3
}

// ColorSpaceValue maps the config's string color-space field to the color
// package's Space enum, defaulting to Gamma2 for any unrecognized value.
func (cfg RenderConfig) ColorSpaceValue() color.Space {
	if cfg.ColorSpace == "srgb" {
		return color.SRGB
	}
	return color.Gamma2
}
