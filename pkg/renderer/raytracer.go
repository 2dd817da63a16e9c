package renderer

import (
	"math"
	"math/rand"

	"github.com/kdawson/go-sphere-tracer/pkg/core"
	"github.com/kdawson/go-sphere-tracer/pkg/material"
)

// minHitDistance biases intersection tests away from t=0 so scattered rays
// cannot re-hit the surface they originate from (shadow acne).
const minHitDistance = 0.001

// Scene is what the tracer needs from the world. Declared here so the scene
// package can depend on renderer for camera configuration without a cycle.
type Scene interface {
	Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool)
	MaterialAt(id core.MaterialID) material.Material
	BackgroundColors() (topColor, bottomColor core.Vec3)
}

// RayColor computes the color carried by a ray using recursive path tracing.
// Each call is one step of a random walk: scatter at the nearest hit and
// multiply by the material's attenuation, or terminate on absorption, miss
// (sky gradient) or an exhausted bounce budget (black).
func RayColor(ray core.Ray, world Scene, random *rand.Rand, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, minHitDistance, math.Inf(1))
	if !isHit {
		return backgroundGradient(ray, world)
	}

	attenuation, scattered, ok := world.MaterialAt(hit.Material).Scatter(ray, hit, random)
	if !ok {
		// Material absorbed the ray
		return core.Vec3{}
	}

	return attenuation.MultiplyVec(RayColor(scattered, world, random, depth-1))
}

// backgroundGradient blends the scene's sky colors by the ray's vertical
// direction component
func backgroundGradient(r core.Ray, world Scene) core.Vec3 {
	topColor, bottomColor := world.BackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Map direction y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}
