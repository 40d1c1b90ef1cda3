// Package scene wires together a Hittable world, a Camera and a background
// policy into the handful of canonical example scenes used to exercise the
// renderer end to end. Scene construction is an external collaborator to
// the core: the core only consumes the resulting world/camera/background
// triple.
package scene

import (
	"github.com/few-photons/pathtracer/pkg/camera"
	"github.com/few-photons/pathtracer/pkg/hittable"
	"github.com/few-photons/pathtracer/pkg/integrator"
)

// Scene bundles everything a Dispatcher needs to render one image: the
// Hittable world, the camera that generates primary rays, the background
// policy for escaping rays, and the aspect ratio the CameraConfig was built
// against (used to derive an output height from a requested width).
type Scene struct {
	World       hittable.Hittable
	Camera      *camera.Camera
	Background  integrator.Background
	AspectRatio float64
}
