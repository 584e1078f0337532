package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// maxTexturePixels bounds width*height so a corrupt header cannot exhaust memory
const maxTexturePixels = 1 << 26

// ErrUnsupportedFormat is returned for images that are not ASCII PPM (P3)
var ErrUnsupportedFormat = errors.New("unsupported image format: only PPM P3 is supported")

// DecodePPM reads an ASCII PPM (P3) image into a texture with channels scaled to [0,1]
func DecodePPM(r io.Reader) (*material.ImageTexture, error) {
	tokens := newTokenReader(r)

	magic, err := tokens.word("magic number")
	if err != nil {
		return nil, err
	}
	if magic != "P3" {
		return nil, fmt.Errorf("%w: got %q", ErrUnsupportedFormat, magic)
	}

	width, err := tokens.int("width")
	if err != nil {
		return nil, err
	}
	height, err := tokens.int("height")
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if width > maxTexturePixels/height {
		return nil, fmt.Errorf("image size %dx%d too large", width, height)
	}
	maxValue, err := tokens.int("max value")
	if err != nil {
		return nil, err
	}
	if maxValue <= 0 || maxValue > 65535 {
		return nil, fmt.Errorf("invalid max value %d", maxValue)
	}

	pixels := make([]core.Vec3, width*height)
	for i := range pixels {
		var rgb [3]float64
		for c := range rgb {
			v, err := tokens.int("pixel value")
			if err != nil {
				return nil, fmt.Errorf("pixel %d: %w", i, err)
			}
			rgb[c] = float64(v) / float64(maxValue)
		}
		pixels[i] = core.NewVec3(rgb[0], rgb[1], rgb[2])
	}

	return material.NewImageTexture(width, height, pixels), nil
}

// LoadPPM loads an ASCII PPM texture from disk
func LoadPPM(filename string) (*material.ImageTexture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	texture, err := DecodePPM(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, err)
	}
	return texture, nil
}

// EncodePPM writes the framebuffer as ASCII PPM, top row first, one pixel per line
func EncodePPM(w io.Writer, fb *renderer.Framebuffer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height)
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y)
			fmt.Fprintf(bw, "%d %d %d\n", renderer.ToByte(c.X), renderer.ToByte(c.Y), renderer.ToByte(c.Z))
		}
	}
	return bw.Flush()
}

// WritePPM creates filename and writes the framebuffer to it
func WritePPM(filename string, fb *renderer.Framebuffer) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := EncodePPM(file, fb); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", filename, err)
	}
	return nil
}
