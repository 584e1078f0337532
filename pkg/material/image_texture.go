package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrorColor marks a texture lookup that has no image data
var ErrorColor = core.NewVec3(1, 0, 1)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Sample looks up the texel at (u, v) with nearest-neighbor filtering.
// Coordinates tile: only the fractional part is used. Row 0 is v=0.
func (t *ImageTexture) Sample(u, v float64) core.Vec3 {
	if t == nil || len(t.Pixels) == 0 || len(t.Pixels) < t.Width*t.Height {
		return ErrorColor
	}

	u -= math.Floor(u)
	v -= math.Floor(v)

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	// Clamp to image bounds
	x = max(0, min(t.Width-1, x))
	y = max(0, min(t.Height-1, y))

	return t.Pixels[y*t.Width+x]
}
