package renderer

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/kmander/go-pathtracer/pkg/core"
	"github.com/kmander/go-pathtracer/pkg/integrator"
	"github.com/kmander/go-pathtracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains rendering configuration
type Config struct {
	Width           int     // Output image width in pixels
	Height          int     // Output image height in pixels
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	Gamma           float64 // Gamma correction exponent
	Seed            int64   // Base seed for the per-row random generators
	NumWorkers      int     // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           800,
		Height:          800,
		SamplesPerPixel: 200,
		MaxDepth:        3,
		Gamma:           2.2,
		Seed:            42,
		NumWorkers:      0,
	}
}

// Renderer renders a scene into an 8-bit RGB image
type Renderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	config     Config
	logger     core.Logger
}

// NewRenderer creates a renderer for the given scene
func NewRenderer(s *scene.Scene, config Config, logger core.Logger) *Renderer {
	return &Renderer{
		scene:      s,
		integrator: integrator.NewPathTracer(config.MaxDepth),
		config:     config,
		logger:     logger,
	}
}

// Render traces every pixel and returns the finished image with statistics.
// Rows are distributed across workers, and each row samples from its own
// seeded random generator, so the output is deterministic for a fixed config
func (r *Renderer) Render() (*Image, RenderStats) {
	width, height := r.config.Width, r.config.Height
	numWorkers := r.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	view := r.scene.View
	aspectRatio := float64(width) / float64(height)
	camera := LookingAt(view.Eye, view.Target, view.Up, view.VFov, aspectRatio)

	img := NewImage(width, height)

	r.logger.Printf("Rendering %dx%d at %d samples/pixel (using %d workers)...\n",
		width, height, r.config.SamplesPerPixel, numWorkers)
	startTime := time.Now()

	rows := make(chan int, height)
	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				r.renderRow(y, camera, img)
			}
		}()
	}

	for y := 0; y < height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	stats := RenderStats{
		TotalPixels:  width * height,
		TotalSamples: width * height * r.config.SamplesPerPixel,
		Elapsed:      time.Since(startTime),
	}

	r.logger.Printf("Render completed in %v (%.0f samples/sec)\n",
		stats.Elapsed, stats.SamplesPerSecond())

	return img, stats
}

// renderRow renders one row of pixels. Rows never overlap, so workers write
// to disjoint ranges of the image buffer
func (r *Renderer) renderRow(y int, camera *Camera, img *Image) {
	width, height := r.config.Width, r.config.Height
	samplesPerPixel := r.config.SamplesPerPixel
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(r.config.Seed + int64(y))))

	for x := 0; x < width; x++ {
		colorAccum := core.Vec3{}

		for sample := 0; sample < samplesPerPixel; sample++ {
			// Convert pixel coordinates to normalized coordinates with jitter
			u := (float64(x) + sampler.Get1D()) / float64(width)
			v := (float64(y) + sampler.Get1D()) / float64(height)

			ray := camera.RayAt(u, v)
			colorAccum = colorAccum.Add(r.integrator.RayColor(ray, r.scene, sampler))
		}

		// Average the accumulated samples, then gamma-correct and clamp
		colorVec := colorAccum.Multiply(1.0 / float64(samplesPerPixel)).
			GammaCorrect(r.config.Gamma).
			Clamp(0.0, 1.0)

		img.SetPixel(x, y, colorVec)
	}
}
