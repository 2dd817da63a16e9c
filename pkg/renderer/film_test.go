package renderer

import (
	"testing"

	"github.com/kdawson/go-sphere-tracer/pkg/core"
)

func TestFilm_SetAndAt(t *testing.T) {
	film := NewFilm(3, 2)

	film.Set(0, 0, RGB{R: 10, G: 20, B: 30})
	film.Set(2, 1, RGB{R: 40, G: 50, B: 60})

	if got := film.At(0, 0); got != (RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("At(0,0) = %v", got)
	}
	if got := film.At(2, 1); got != (RGB{R: 40, G: 50, B: 60}) {
		t.Errorf("At(2,1) = %v", got)
	}
	if got := film.At(1, 0); got != (RGB{}) {
		t.Errorf("Untouched pixel should be black, got %v", got)
	}
}

func TestFilm_ToImageFlipsRows(t *testing.T) {
	film := NewFilm(2, 2)
	film.Set(0, 0, RGB{R: 1}) // bottom-left
	film.Set(1, 1, RGB{G: 2}) // top-right

	img := film.ToImage()

	// Bottom film row becomes the last image row
	if c := img.RGBAAt(0, 1); c.R != 1 {
		t.Errorf("Expected bottom-left pixel at image (0,1), got %v", c)
	}
	if c := img.RGBAAt(1, 0); c.G != 2 {
		t.Errorf("Expected top-right pixel at image (1,0), got %v", c)
	}
}

func TestFormatColor(t *testing.T) {
	tests := []struct {
		name     string
		accum    core.Vec3
		samples  int
		expected RGB
	}{
		{
			name:     "black stays black",
			accum:    core.NewVec3(0, 0, 0),
			samples:  1,
			expected: RGB{0, 0, 0},
		},
		{
			name:     "full white saturates",
			accum:    core.NewVec3(1, 1, 1),
			samples:  1,
			expected: RGB{255, 255, 255},
		},
		{
			name:     "gamma 2 brightens quarter intensity to half",
			accum:    core.NewVec3(0.25, 0.25, 0.25),
			samples:  1,
			expected: RGB{128, 128, 128},
		},
		{
			name:     "averaging over samples",
			accum:    core.NewVec3(2, 0.5, 0), // 8 samples: (0.25, 0.0625, 0)
			samples:  8,
			expected: RGB{128, 64, 0},
		},
		{
			name:     "overbright clamps instead of wrapping",
			accum:    core.NewVec3(4, 4, 4),
			samples:  1,
			expected: RGB{255, 255, 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatColor(tt.accum, tt.samples); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
