// Package ppm encodes and decodes the plain-text P3 pixel-map format.
package ppm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/kdawson/go-sphere-tracer/pkg/renderer"
)

// Encode writes the film in P3 format: the magic line, the dimensions, the
// maximum channel value, then one "R G B" line per pixel, top image row
// first. Film row 0 is the bottom of the picture, so rows are emitted in
// reverse.
func Encode(w io.Writer, film *renderer.Film) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", film.Width, film.Height); err != nil {
		return err
	}

	for y := film.Height - 1; y >= 0; y-- {
		for x := 0; x < film.Width; x++ {
			c := film.At(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// Decode parses a P3 stream written by Encode back into a film
func Decode(r io.Reader) (*renderer.Film, error) {
	br := bufio.NewReader(r)

	var magic string
	if _, err := fmt.Fscan(br, &magic); err != nil {
		return nil, fmt.Errorf("reading magic: %w", err)
	}
	if magic != "P3" {
		return nil, fmt.Errorf("unsupported format %q, want P3", magic)
	}

	var width, height, maxVal int
	if _, err := fmt.Fscan(br, &width, &height, &maxVal); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	if maxVal != 255 {
		return nil, fmt.Errorf("unsupported max channel value %d, want 255", maxVal)
	}

	film := renderer.NewFilm(width, height)
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			var red, green, blue int
			if _, err := fmt.Fscan(br, &red, &green, &blue); err != nil {
				return nil, fmt.Errorf("reading pixel (%d,%d): %w", x, y, err)
			}
			if red < 0 || red > maxVal || green < 0 || green > maxVal || blue < 0 || blue > maxVal {
				return nil, fmt.Errorf("pixel (%d,%d) out of range: %d %d %d", x, y, red, green, blue)
			}
			film.Set(x, y, renderer.RGB{R: uint8(red), G: uint8(green), B: uint8(blue)})
		}
	}

	return film, nil
}
