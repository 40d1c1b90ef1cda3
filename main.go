// Command raytrace renders one of the built-in example scenes to a PPM
// image file, reporting progress on an alternate-screen terminal bar.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/few-photons/pathtracer/pkg/config"
	"github.com/few-photons/pathtracer/pkg/core"
	"github.com/few-photons/pathtracer/pkg/integrator"
	"github.com/few-photons/pathtracer/pkg/progress"
	"github.com/few-photons/pathtracer/pkg/renderer"
	"github.com/few-photons/pathtracer/pkg/scene"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "raytrace: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()

	profile := flag.String("profile", "", "load a YAML render profile; other flags are ignored when set")
	noProgressBar := flag.Bool("no-progress-bar", false, "log progress to stderr instead of drawing a terminal bar")
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if *profile != "" {
		loaded, err := config.Load(*profile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	sceneObj, err := scene.Build(cfg.Scene, cfg.Seed)
	if err != nil {
		return errors.Wrap(err, "build scene")
	}

	height := int(float64(cfg.Width) / sceneObj.AspectRatio)

	background := sceneObj.Background
	switch cfg.Background {
	case config.BackgroundSky:
		background = integrator.SkyGradient
	case config.BackgroundBlack:
		background = integrator.Black
	}

	pathTracer := integrator.New(sceneObj.World, background, cfg.MaxDepth)

	logger := core.NewDefaultLogger()
	dispatcher := &renderer.Dispatcher{
		Camera:          sceneObj.Camera,
		Integrator:      pathTracer,
		Width:           cfg.Width,
		Height:          height,
		SamplesPerPixel: cfg.SamplesPerPixel,
		ColorSpace:      cfg.ColorSpaceValue(),
		Seed:            cfg.Seed,
		Logger:          logger,
	}

	if *noProgressBar {
		dispatcher.OnProgress = func(fraction float64) error {
			logger.Printf("progress: %.1f%%", fraction*100)
			return nil
		}
	} else {
		bar, err := progress.New(cfg.Scene)
		if err != nil {
			return errors.Wrap(err, "start progress bar")
		}
		defer bar.Close()
		dispatcher.OnProgress = bar.Update
	}

	started := time.Now()
	pool := renderer.NewWorkerPool(cfg.Workers)
	buf := dispatcher.Render(pool)
	pool.Shutdown()

	if *noProgressBar {
		logger.Printf("rendered %s in %s (avg luminance %.3f)",
			cfg.Scene, time.Since(started).Round(time.Millisecond), renderer.CalculateAverageLuminance(buf))
	}

	if err := buf.Write(cfg.OutputPath, cfg.ImageFormat()); err != nil {
		return errors.Wrap(err, "write output image")
	}
	return nil
}
