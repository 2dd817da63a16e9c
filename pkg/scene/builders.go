package scene

import (
	"math/rand"

	"github.com/kdawson/go-sphere-tracer/pkg/core"
	"github.com/kdawson/go-sphere-tracer/pkg/material"
	"github.com/kdawson/go-sphere-tracer/pkg/renderer"
)

// Random builds the classic random sphere field: a gray ground sphere, a
// jittered grid of small diffuse/metal/glass spheres, and three large hero
// spheres. Placement comes from the supplied generator, so a fixed seed
// reproduces the same scene.
func Random(random *rand.Rand) (*Scene, renderer.CameraConfig) {
	s := New()

	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, ground)

	for a := -3; a < 3; a++ {
		for b := -3; b < 3; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			// Keep the field clear of the metal hero sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat core.MaterialID
			switch {
			case chooseMat < 0.8:
				// diffuse
				albedo := core.RandomVec3(0, 1, random).MultiplyVec(core.RandomVec3(0, 1, random))
				mat = s.AddMaterial(material.NewLambertian(albedo))
			case chooseMat < 0.95:
				// metal
				albedo := core.RandomVec3(0.5, 1, random)
				fuzz := 0.5 * random.Float64()
				mat = s.AddMaterial(material.NewMetal(albedo, fuzz))
			default:
				// glass
				mat = s.AddMaterial(material.NewDielectric(1.5))
			}
			s.AddSphere(center, 0.2, mat)
		}
	}

	glass := s.AddMaterial(material.NewDielectric(1.5))
	s.AddSphere(core.NewVec3(0, 1, 0), 1.0, glass)

	brown := s.AddMaterial(material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	s.AddSphere(core.NewVec3(-4, 1, 0), 1.0, brown)

	steel := s.AddMaterial(material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))
	s.AddSphere(core.NewVec3(4, 1, 0), 1.0, steel)

	return s, renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		Aperture:      0.1,
		FocusDistance: 10,
	}
}

// Demo builds a small fixed three-sphere arrangement for quick renders
func Demo() (*Scene, renderer.CameraConfig) {
	s := New()

	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))
	center := s.AddMaterial(material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	glass := s.AddMaterial(material.NewDielectric(1.5))
	gold := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3))

	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, ground)
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, center)
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, glass)
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, gold)

	return s, renderer.CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0.5),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          60,
		Aperture:      0,
		FocusDistance: 1.5,
	}
}

// Sky builds an empty scene; every ray renders the background gradient
func Sky() (*Scene, renderer.CameraConfig) {
	return New(), renderer.CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90,
		Aperture:      0,
		FocusDistance: 1,
	}
}
