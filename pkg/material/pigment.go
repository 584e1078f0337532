package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// checkerEpsilon nudges coordinates so points on cube boundaries land in a stable cell
const checkerEpsilon = 1e-4

// Pigment maps a surface point to a base color
type Pigment interface {
	Evaluate(point core.Vec3) core.Vec3
}

// SolidPigment provides uniform color
type SolidPigment struct {
	Color core.Vec3
}

// NewSolidPigment creates a new solid pigment
func NewSolidPigment(color core.Vec3) *SolidPigment {
	return &SolidPigment{Color: color}
}

// Evaluate returns the solid color regardless of position
func (s *SolidPigment) Evaluate(point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerPigment alternates two colors over a 3D grid of cubes
type CheckerPigment struct {
	Color1   core.Vec3
	Color2   core.Vec3
	CubeSize float64
}

// NewCheckerPigment creates a 3D checkerboard pigment
func NewCheckerPigment(color1, color2 core.Vec3, cubeSize float64) *CheckerPigment {
	return &CheckerPigment{Color1: color1, Color2: color2, CubeSize: cubeSize}
}

// Evaluate returns Color1 when the cell index sum is even, Color2 otherwise
func (c *CheckerPigment) Evaluate(point core.Vec3) core.Vec3 {
	cx := int(math.Floor((point.X + checkerEpsilon) / c.CubeSize))
	cy := int(math.Floor((point.Y + checkerEpsilon) / c.CubeSize))
	cz := int(math.Floor((point.Z + checkerEpsilon) / c.CubeSize))

	if (cx+cy+cz)%2 == 0 {
		return c.Color1
	}
	return c.Color2
}

// TexturePigment projects an image onto space through two planar functionals
type TexturePigment struct {
	Filename string
	P0       [4]float64    // s = P0·(x,y,z,1)
	P1       [4]float64    // r = P1·(x,y,z,1)
	Texture  *ImageTexture // nil when the image failed to load
}

// NewTexturePigment creates a texture-mapped pigment. params holds P0 followed by P1.
func NewTexturePigment(filename string, params [8]float64, texture *ImageTexture) *TexturePigment {
	p := &TexturePigment{Filename: filename, Texture: texture}
	copy(p.P0[:], params[:4])
	copy(p.P1[:], params[4:])
	return p
}

// Evaluate projects the point to texture coordinates and samples the image.
// Missing image data yields ErrorColor.
func (t *TexturePigment) Evaluate(point core.Vec3) core.Vec3 {
	if t.Texture == nil {
		return ErrorColor
	}
	s := project(t.P0, point)
	r := project(t.P1, point)
	return t.Texture.Sample(s, r)
}

func project(p [4]float64, point core.Vec3) float64 {
	return p[0]*point.X + p[1]*point.Y + p[2]*point.Z + p[3]
}
