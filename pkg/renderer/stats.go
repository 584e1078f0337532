package renderer

import (
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int                 // Total number of pixels rendered
	Rays        integrator.RayStats // Ray counts by kind
	Elapsed     time.Duration       // Wall time spent tracing
}

// RaysPerPixel returns the average number of rays cast per pixel
func (rs RenderStats) RaysPerPixel() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.Rays.TotalRays()) / float64(rs.TotalPixels)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of the framebuffer
func CalculateAverageLuminance(fb *Framebuffer) float64 {
	if len(fb.Pixels) == 0 {
		return 0
	}
	var total float64
	for _, c := range fb.Pixels {
		c = c.Clamp(0, 1)
		total += 0.2126*c.X + 0.7152*c.Y + 0.0722*c.Z
	}
	return total / float64(len(fb.Pixels))
}
