package renderer

import (
	"image"
	"image/color"

	"github.com/kdawson/go-sphere-tracer/pkg/core"
)

// RGB is a display-ready pixel value with 8-bit channels
type RGB struct {
	R, G, B uint8
}

// Film is the render's output buffer: a flat row-major grid of final pixel
// values, addressed by row*width+column. Row 0 is the bottom image row, the
// same orientation the camera's v axis uses. Each cell is written exactly
// once by exactly one render worker.
type Film struct {
	Width  int
	Height int
	pixels []RGB
}

// NewFilm creates a film with all pixels black
func NewFilm(width, height int) *Film {
	return &Film{
		Width:  width,
		Height: height,
		pixels: make([]RGB, width*height),
	}
}

// Set writes the pixel at column x, row y (y=0 is the bottom row)
func (f *Film) Set(x, y int, c RGB) {
	f.pixels[y*f.Width+x] = c
}

// At returns the pixel at column x, row y
func (f *Film) At(x, y int) RGB {
	return f.pixels[y*f.Width+x]
}

// ToImage converts the film to an image.RGBA, flipping rows so that image
// row 0 is the top of the picture
func (f *Film) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			img.SetRGBA(x, f.Height-1-y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}

// FormatColor turns an accumulated linear color into a display pixel:
// average over the sample count, gamma-2 correct each channel, clamp and
// quantize to 8 bits.
func FormatColor(accum core.Vec3, samplesPerPixel int) RGB {
	scale := 1.0 / float64(samplesPerPixel)

	// Gamma 2 is a plain square root on each normalized channel
	c := accum.Multiply(scale).GammaCorrect(2.0).Clamp(0, 0.999)

	return RGB{
		R: uint8(256 * c.X),
		G: uint8(256 * c.Y),
		B: uint8(256 * c.Z),
	}
}
