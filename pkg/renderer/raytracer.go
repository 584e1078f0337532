package renderer

import (
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config contains rendering configuration
type Config struct {
	Width            int // Image width in pixels
	Height           int // Image height in pixels
	MaxDepth         int // Maximum reflection/refraction recursion depth
	ProgressInterval int // Log remaining rows every this many scanlines; 0 disables
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:            800,
		Height:           600,
		MaxDepth:         integrator.DefaultMaxDepth,
		ProgressInterval: 50,
	}
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      *scene.Scene
	config     Config
	integrator *integrator.WhittedIntegrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer for the scene
func NewRaytracer(scene *scene.Scene, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:      scene,
		config:     config,
		integrator: integrator.NewWhittedIntegrator(config.MaxDepth),
		logger:     logger,
	}
}

// Render casts one ray through every pixel and returns the finished image.
// Scanlines are traced top row first; the scene is only read.
func (rt *Raytracer) Render() (*Framebuffer, RenderStats) {
	width, height := rt.config.Width, rt.config.Height
	fb := NewFramebuffer(width, height)
	camera := rt.scene.Camera

	rt.integrator.ResetStats()
	start := time.Now()

	for j := height - 1; j >= 0; j-- {
		if rt.config.ProgressInterval > 0 && j%rt.config.ProgressInterval == 0 {
			rt.logger.Printf("Rows remaining: %d", j)
		}
		for i := 0; i < width; i++ {
			s := float64(i) / float64(width)
			t := float64(j) / float64(height)

			ray := camera.GetRay(s, t)
			fb.Set(i, height-1-j, rt.integrator.RayColor(ray, rt.scene))
		}
	}

	stats := RenderStats{
		TotalPixels: width * height,
		Rays:        rt.integrator.Stats(),
		Elapsed:     time.Since(start),
	}
	return fb, stats
}
