package ppm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kdawson/go-sphere-tracer/pkg/renderer"
)

func TestEncode_Format(t *testing.T) {
	film := renderer.NewFilm(2, 2)
	film.Set(0, 0, renderer.RGB{R: 1, G: 2, B: 3})    // bottom-left
	film.Set(1, 0, renderer.RGB{R: 4, G: 5, B: 6})    // bottom-right
	film.Set(0, 1, renderer.RGB{R: 7, G: 8, B: 9})    // top-left
	film.Set(1, 1, renderer.RGB{R: 10, G: 11, B: 12}) // top-right

	var buf bytes.Buffer
	if err := Encode(&buf, film); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// Top image row comes first
	expected := "P3\n2 2\n255\n" +
		"7 8 9\n10 11 12\n" +
		"1 2 3\n4 5 6\n"
	if buf.String() != expected {
		t.Errorf("Expected:\n%q\nGot:\n%q", expected, buf.String())
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	film := renderer.NewFilm(3, 2)
	next := uint8(0)
	for y := 0; y < film.Height; y++ {
		for x := 0; x < film.Width; x++ {
			film.Set(x, y, renderer.RGB{R: next, G: next + 100, B: 255 - next})
			next += 7
		}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, film); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if decoded.Width != film.Width || decoded.Height != film.Height {
		t.Fatalf("Expected %dx%d, got %dx%d",
			film.Width, film.Height, decoded.Width, decoded.Height)
	}
	for y := 0; y < film.Height; y++ {
		for x := 0; x < film.Width; x++ {
			if decoded.At(x, y) != film.At(x, y) {
				t.Errorf("Pixel (%d,%d): expected %v, got %v",
					x, y, film.At(x, y), decoded.At(x, y))
			}
		}
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"wrong magic", "P6\n2 2\n255\n"},
		{"bad max value", "P3\n1 1\n65535\n0 0 0\n"},
		{"zero dimensions", "P3\n0 0\n255\n"},
		{"truncated pixels", "P3\n2 2\n255\n1 2 3\n"},
		{"channel out of range", "P3\n1 1\n255\n300 0 0\n"},
		{"non-numeric pixel", "P3\n1 1\n255\na b c\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.input)); err == nil {
				t.Error("Expected decode error, got nil")
			}
		})
	}
}
