package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kdawson/go-sphere-tracer/pkg/core"
)

// Config contains rendering configuration
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Workers         int   // Number of render goroutines; 0 means NumCPU
	Seed            int64 // Master seed; worker k draws from Seed+k

	// Progress, if set, is called after each completed row with the number
	// of rows done so far and the image height. It may be called from any
	// worker goroutine.
	Progress func(done, total int)
}

// Stats summarizes a completed render
type Stats struct {
	Pixels  int
	Samples int
	Workers int
	Elapsed time.Duration
}

// Renderer drives a fixed-sample-count render of one scene through one camera
type Renderer struct {
	scene  Scene
	camera *Camera
	config Config
}

// NewRenderer creates a renderer. Scene and camera must not be mutated while
// Render is running; workers read them without synchronization.
func NewRenderer(scene Scene, camera *Camera, config Config) *Renderer {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Workers > config.Height {
		config.Workers = config.Height
	}
	if config.Workers < 1 {
		config.Workers = 1
	}
	return &Renderer{scene: scene, camera: camera, config: config}
}

// band is a half-open row range [start, end)
type band struct {
	start, end int
}

// splitRows partitions [0, height) into count contiguous bands. Every band
// gets height/count rows; the last band is extended to cover the remainder,
// so no row is dropped and no two bands overlap.
func splitRows(height, count int) []band {
	size := height / count
	bands := make([]band, count)
	for k := 0; k < count; k++ {
		bands[k] = band{start: k * size, end: (k + 1) * size}
	}
	bands[count-1].end = height
	return bands
}

// Render traces the whole image and returns the filled film. One goroutine
// renders each row band into its disjoint region of the film, so the only
// synchronization is the final join and the atomic progress counter.
func (r *Renderer) Render() (*Film, Stats) {
	start := time.Now()
	film := NewFilm(r.config.Width, r.config.Height)
	bands := splitRows(r.config.Height, r.config.Workers)

	var rowsDone atomic.Int64
	var wg sync.WaitGroup
	for k, b := range bands {
		wg.Add(1)
		go func(k int, b band) {
			defer wg.Done()
			random := rand.New(rand.NewSource(r.config.Seed + int64(k)))
			r.renderBand(b, film, random, &rowsDone)
		}(k, b)
	}
	wg.Wait()

	stats := Stats{
		Pixels:  r.config.Width * r.config.Height,
		Samples: r.config.Width * r.config.Height * r.config.SamplesPerPixel,
		Workers: r.config.Workers,
		Elapsed: time.Since(start),
	}
	return film, stats
}

// renderBand traces all rows in [b.start, b.end) with the worker's private
// random generator
func (r *Renderer) renderBand(b band, film *Film, random *rand.Rand, rowsDone *atomic.Int64) {
	width, height := r.config.Width, r.config.Height

	for j := b.start; j < b.end; j++ {
		for i := 0; i < width; i++ {
			accum := core.Vec3{}

			for s := 0; s < r.config.SamplesPerPixel; s++ {
				// Jitter the sample position inside the pixel
				u := (float64(i) + random.Float64()) / float64(width-1)
				v := (float64(j) + random.Float64()) / float64(height-1)

				ray := r.camera.GetRay(u, v, random)
				accum = accum.Add(RayColor(ray, r.scene, random, r.config.MaxDepth))
			}

			film.Set(i, j, FormatColor(accum, r.config.SamplesPerPixel))
		}

		done := rowsDone.Add(1)
		if r.config.Progress != nil {
			r.config.Progress(int(done), height)
		}
	}
}
