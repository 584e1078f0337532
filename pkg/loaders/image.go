package loaders

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// LoadTexture loads a texture map, picking the decoder from the file extension.
// PNG and JPEG files are decoded as images; everything else is read as PPM.
func LoadTexture(filename string) (*material.ImageTexture, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg":
		return LoadImage(filename)
	default:
		return LoadPPM(filename)
	}
}

// LoadImage loads a PNG or JPEG image and converts it to a texture
func LoadImage(filename string) (*material.ImageTexture, error) {
	img, err := gg.LoadImage(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", filename, err)
	}
	return textureFromImage(img), nil
}

func textureFromImage(img image.Image) *material.ImageTexture {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return material.NewImageTexture(width, height, pixels)
}

// SavePNG writes an 8-bit PNG preview of the framebuffer
func SavePNG(filename string, fb *renderer.Framebuffer) error {
	if err := gg.SavePNG(filename, fb.ToRGBA()); err != nil {
		return fmt.Errorf("failed to save PNG %s: %w", filename, err)
	}
	return nil
}
