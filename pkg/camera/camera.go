// Package camera generates primary rays for the renderer: a thin-lens
// defocus-blur camera sampling a shutter interval for motion blur.
package camera

import (
	"math"
	"math/rand"

	"github.com/few-photons/pathtracer/pkg/core"
)

// Config holds the named construction parameters of a Camera, following
// the classic look_from/look_at/up/vfov camera builder.
type Config struct {
	LookFrom      core.Point3
	LookAt        core.Point3
	Up            core.Vec3
	VFovDegrees   float64
	AspectRatio   float64
	Aperture      float64
	FocusDistance float64
	Time0, Time1  float64
}

// Camera generates primary rays from pixel-normalised (s,t) coordinates,
// including thin-lens defocus blur and a shutter interval for motion blur.
type Camera struct {
	origin          core.Point3
	lowerLeftCorner core.Point3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	time0, time1    float64
}

// New builds a Camera from the given configuration.
func New(cfg Config) *Camera {
	core.Assert(cfg.Time1 >= cfg.Time0, "shutter interval inverted: [%v, %v]", cfg.Time0, cfg.Time1)

	theta := cfg.VFovDegrees * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h
	viewportWidth := cfg.AspectRatio * viewportHeight

	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := cfg.LookFrom
	horizontal := u.Multiply(cfg.FocusDistance * viewportWidth)
	vertical := v.Multiply(cfg.FocusDistance * viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Divide(2)).
		Subtract(vertical.Divide(2)).
		Subtract(w.Multiply(cfg.FocusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      cfg.Aperture / 2,
		time0:           cfg.Time0,
		time1:           cfg.Time1,
	}
}

// GetRay generates a primary ray through pixel-normalised coordinates
// (s,t), offsetting the origin by a uniformly sampled point on the lens
// disk and drawing a shutter time uniformly from [time0, time1].
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	time := c.time0 + random.Float64()*(c.time1-c.time0)
	return core.NewRayAtTime(c.origin.Add(offset), direction, time)
}
