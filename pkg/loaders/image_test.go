package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// TestLoadImage creates a test PNG and verifies loading
func TestLoadImage(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.png")

	// Create a simple 2x2 test image
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	f.Close()

	// LoadTexture dispatches on the extension
	texture, err := LoadTexture(testFile)
	if err != nil {
		t.Fatalf("LoadTexture failed: %v", err)
	}

	if texture.Width != 2 || texture.Height != 2 {
		t.Errorf("Expected 2x2 image, got %dx%d", texture.Width, texture.Height)
	}
	if len(texture.Pixels) != 4 {
		t.Fatalf("Expected 4 pixels, got %d", len(texture.Pixels))
	}

	// Verify colors (row-major order)
	expected := []core.Vec3{
		core.NewVec3(1, 1, 1),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
	}
	for i, want := range expected {
		if !colorWithin(texture.Pixels[i], want, 0.01) {
			t.Errorf("Pixel %d: expected %v, got %v", i, want, texture.Pixels[i])
		}
	}
}

// TestLoadImageNotFound verifies error handling for missing files
func TestLoadImageNotFound(t *testing.T) {
	if _, err := LoadImage("nonexistent.png"); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestSavePNG(t *testing.T) {
	fb := renderer.NewFramebuffer(3, 2)
	fb.Set(0, 0, core.NewVec3(1, 0, 0))
	fb.Set(2, 1, core.NewVec3(0.5, 1, 2))

	path := filepath.Join(t.TempDir(), "preview.png")
	if err := SavePNG(path, fb); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	img, err := gg.LoadPNG(path)
	if err != nil {
		t.Fatalf("Failed to read back PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("Unexpected bounds %v", b)
	}

	tests := []struct {
		x, y     int
		expected color.RGBA
	}{
		{0, 0, color.RGBA{255, 0, 0, 255}},
		{2, 1, color.RGBA{127, 255, 255, 255}},
		{1, 1, color.RGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		got := color.RGBAModel.Convert(img.At(tt.x, tt.y)).(color.RGBA)
		if got != tt.expected {
			t.Errorf("Pixel (%d,%d): expected %v, got %v", tt.x, tt.y, tt.expected, got)
		}
	}
}

func TestSavePNG_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "preview.png")
	if err := SavePNG(path, renderer.NewFramebuffer(1, 1)); err == nil {
		t.Error("Expected error writing into a missing directory")
	}
}

func colorWithin(got, expected core.Vec3, tolerance float64) bool {
	return abs(got.X-expected.X) <= tolerance &&
		abs(got.Y-expected.Y) <= tolerance &&
		abs(got.Z-expected.Z) <= tolerance
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
