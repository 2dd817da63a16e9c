package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/kdawson/go-sphere-tracer/pkg/core"
)

func pinholeConfig() CameraConfig {
	return CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90,
		Aperture:      0,
		FocusDistance: 1,
	}
}

func TestCamera_CenterRayPointsAtLookAt(t *testing.T) {
	camera := NewCamera(pinholeConfig(), 1.0)
	random := rand.New(rand.NewSource(42))

	ray := camera.GetRay(0.5, 0.5, random)

	expected := core.NewVec3(0, 0, -1)
	if ray.Direction.Normalize().Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected center ray direction %v, got %v", expected, ray.Direction.Normalize())
	}
}

func TestCamera_PinholeOriginFixed(t *testing.T) {
	camera := NewCamera(pinholeConfig(), 1.0)
	random := rand.New(rand.NewSource(42))

	// Aperture 0 must produce the same origin for every ray
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(random.Float64(), random.Float64(), random)
		if ray.Origin != (core.Vec3{}) {
			t.Fatalf("Pinhole camera origin moved to %v", ray.Origin)
		}
	}
}

func TestCamera_ViewportCorners(t *testing.T) {
	// 90 degree vertical FOV at focus distance 1 spans [-1,1] in both axes
	camera := NewCamera(pinholeConfig(), 1.0)
	random := rand.New(rand.NewSource(42))

	tests := []struct {
		name     string
		s, v     float64
		expected core.Vec3
	}{
		{"lower left", 0, 0, core.NewVec3(-1, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(1, 1, -1)},
		{"lower right", 1, 0, core.NewVec3(1, -1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.v, random)
			if ray.Direction.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
		})
	}
}

func TestCamera_LensRaysHitFocusPlane(t *testing.T) {
	// Rays through the same (s,t) from different lens points must converge
	// at the focus distance
	config := pinholeConfig()
	config.Aperture = 0.5
	config.FocusDistance = 3
	camera := NewCamera(config, 1.0)
	random := rand.New(rand.NewSource(42))

	// The focus-plane point for the image center
	target := core.NewVec3(0, 0, -3)

	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, random)

		// Advance the ray to the focus plane z=-3
		tPlane := (target.Z - ray.Origin.Z) / ray.Direction.Z
		at := ray.At(tPlane)

		if at.Subtract(target).Length() > 1e-9 {
			t.Fatalf("Lens ray misses focus point: %v", at)
		}
		if ray.Origin.Subtract(config.LookFrom).Length() > config.Aperture/2+1e-9 {
			t.Fatalf("Lens origin %v outside aperture", ray.Origin)
		}
	}
}

func TestCamera_AspectRatioWidensViewport(t *testing.T) {
	camera := NewCamera(pinholeConfig(), 2.0)
	random := rand.New(rand.NewSource(42))

	ray := camera.GetRay(1, 0.5, random)

	// Horizontal half-extent is aspect * tan(fov/2) = 2
	if math.Abs(ray.Direction.X-2.0) > 1e-9 {
		t.Errorf("Expected x extent 2.0, got %f", ray.Direction.X)
	}
}
