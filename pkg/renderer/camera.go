package renderer

import (
	"math"
	"math/rand"

	"github.com/kdawson/go-sphere-tracer/pkg/core"
)

// CameraConfig holds the user-facing camera parameters
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // World up direction
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens diameter; 0 is a pinhole camera
	FocusDistance float64   // Distance to the plane of perfect focus
}

// Camera maps normalized image-plane coordinates to world-space rays,
// with an optional thin lens for depth of field. Immutable during render.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3
	lensRadius      float64
}

// NewCamera creates a camera from its configuration and the image aspect ratio
func NewCamera(config CameraConfig, aspectRatio float64) *Camera {
	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := aspectRatio * viewportHeight

	// Orthonormal camera basis: w points backwards, u right, v up
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	horizontal := u.Multiply(viewportWidth * config.FocusDistance)
	vertical := v.Multiply(viewportHeight * config.FocusDistance)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(config.FocusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay generates a ray for normalized image coordinates (s, t) in [0,1].
// With a nonzero aperture the ray starts at a random point on the lens disk
// and still passes through the focus-plane point for (s, t), which is what
// blurs everything off the focus plane.
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	offset := core.Vec3{}
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}
