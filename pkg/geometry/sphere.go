package geometry

import (
	"math"

	"github.com/kdawson/go-sphere-tracer/pkg/core"
)

// Sphere represents a sphere primitive. It references its material by index
// into the scene's materials table.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.MaterialID
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.MaterialID) Sphere {
	return Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere within the open interval
// (tMin, tMax). Roots on or outside the interval are rejected, which keeps
// rays from re-hitting the surface they just left.
func (s Sphere) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c

	// No intersection if discriminant is negative
	if discriminant < 0 {
		return core.HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first, then the farther one
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return core.HitRecord{}, false
		}
	}

	hit := core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Outward normal, from center to hit point. A negative radius flips the
	// normal, which models hollow spheres.
	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}
