package scene

import (
	"github.com/kdawson/go-sphere-tracer/pkg/core"
	"github.com/kdawson/go-sphere-tracer/pkg/geometry"
	"github.com/kdawson/go-sphere-tracer/pkg/material"
)

// Scene is an insertion-ordered collection of spheres plus the materials
// table they index into. It is built once before rendering and read-only
// thereafter, which makes unsynchronized concurrent reads from render
// workers safe.
type Scene struct {
	Spheres   []geometry.Sphere
	Materials []material.Material

	// Background gradient, blended on ray misses
	TopColor    core.Vec3
	BottomColor core.Vec3
}

// New creates an empty scene with the default white-to-blue sky gradient
func New() *Scene {
	return &Scene{
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// AddMaterial appends a material to the table and returns its index
func (s *Scene) AddMaterial(m material.Material) core.MaterialID {
	s.Materials = append(s.Materials, m)
	return core.MaterialID(len(s.Materials) - 1)
}

// AddSphere appends a sphere referencing a previously added material
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat core.MaterialID) {
	s.Spheres = append(s.Spheres, geometry.NewSphere(center, radius, mat))
}

// MaterialAt resolves a material index recorded in a hit
func (s *Scene) MaterialAt(id core.MaterialID) material.Material {
	return s.Materials[id]
}

// Hit finds the closest intersection along the ray within (tMin, tMax).
// The search interval's upper bound narrows to the closest hit found so
// far, so later spheres can only win by being strictly nearer.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	var closestHit core.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, sphere := range s.Spheres {
		if hit, isHit := sphere.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// BackgroundColors returns the sky gradient endpoints
func (s *Scene) BackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}
