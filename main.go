package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"math/rand"
	"os"

	"github.com/kdawson/go-sphere-tracer/pkg/ppm"
	"github.com/kdawson/go-sphere-tracer/pkg/renderer"
	"github.com/kdawson/go-sphere-tracer/pkg/scene"
)

func main() {
	width := flag.Int("width", 300, "Image width in pixels")
	aspect := flag.Float64("aspect", 1.5, "Aspect ratio (width/height)")
	samples := flag.Int("samples", 10, "Samples per pixel")
	depth := flag.Int("depth", 30, "Maximum ray bounce depth")
	workers := flag.Int("workers", 0, "Render goroutines (0 = number of CPUs)")
	seed := flag.Int64("seed", 1, "Master random seed")
	sceneType := flag.String("scene", "random", "Scene: 'random', 'demo' or 'sky'")
	output := flag.String("o", "image.ppm", "Output file path")
	format := flag.String("format", "ppm", "Output format: 'ppm' or 'png'")
	flag.Parse()

	if err := run(*width, *aspect, *samples, *depth, *workers, *seed, *sceneType, *output, *format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(width int, aspect float64, samples, depth, workers int, seed int64, sceneType, output, format string) error {
	height := int(float64(width) / aspect)
	if width < 2 || height < 2 {
		return fmt.Errorf("image dimensions %dx%d too small (width %d, aspect %g)", width, height, width, aspect)
	}

	world, cameraConfig, err := createScene(sceneType, seed)
	if err != nil {
		return err
	}
	camera := renderer.NewCamera(cameraConfig, float64(width)/float64(height))

	// Fail on a bad output path before spending time on the render
	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("opening output: %w", err)
	}
	defer file.Close()

	r := renderer.NewRenderer(world, camera, renderer.Config{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samples,
		MaxDepth:        depth,
		Workers:         workers,
		Seed:            seed,
		Progress: func(done, total int) {
			fmt.Fprintf(os.Stderr, "\rTracing row: %d/%d ", done, total)
		},
	})

	film, stats := r.Render()
	fmt.Fprintf(os.Stderr, "\nRender completed in %v (%d samples over %d pixels, %d workers)\n",
		stats.Elapsed, stats.Samples, stats.Pixels, stats.Workers)

	if err := encode(file, film, format); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Fprintf(os.Stderr, "Render saved as %s\n", output)
	return nil
}

func createScene(sceneType string, seed int64) (*scene.Scene, renderer.CameraConfig, error) {
	switch sceneType {
	case "random":
		world, config := scene.Random(rand.New(rand.NewSource(seed)))
		return world, config, nil
	case "demo":
		world, config := scene.Demo()
		return world, config, nil
	case "sky":
		world, config := scene.Sky()
		return world, config, nil
	}
	return nil, renderer.CameraConfig{}, fmt.Errorf("unknown scene %q", sceneType)
}

func encode(w io.Writer, film *renderer.Film, format string) error {
	switch format {
	case "ppm":
		return ppm.Encode(w, film)
	case "png":
		return png.Encode(w, film.ToImage())
	}
	return fmt.Errorf("unknown format %q", format)
}
