package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates a demo scene: a checkered ground slab with plastic,
// mirror and glass spheres, a turned block and a small cube, lit by two point lights
func NewDefaultScene() *Scene {
	s := NewScene(geometry.CameraConfig{
		Center:      core.NewVec3(0, 1.5, 5),
		LookAt:      core.NewVec3(0, 0.5, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        45.0,
		AspectRatio: DefaultAspectRatio,
	})
	s.AmbientLight = core.NewVec3(0.2, 0.2, 0.2)

	s.AddPointLight(core.NewVec3(-4, 6, 4), core.NewVec3(1, 1, 1), [3]float64{1, 0, 0})
	s.AddPointLight(core.NewVec3(5, 4, 2), core.NewVec3(0.5, 0.45, 0.4), [3]float64{1, 0.05, 0.01})

	checker := s.AddPigment(material.NewCheckerPigment(core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.1, 0.1, 0.1), 1.0))
	red := s.AddPigment(material.NewSolidPigment(core.NewVec3(0.8, 0.2, 0.15)))
	white := s.AddPigment(material.NewSolidPigment(core.NewVec3(1, 1, 1)))
	blue := s.AddPigment(material.NewSolidPigment(core.NewVec3(0.2, 0.3, 0.8)))

	matte := s.AddFinish(material.NewFinish(0.3, 0.7, 0.0, 1, 0, 0, 1))
	plastic := s.AddFinish(material.NewFinish(0.2, 0.6, 0.5, 40, 0, 0, 1))
	mirror := s.AddFinish(material.NewFinish(0.05, 0.1, 0.8, 200, 0.8, 0, 1))
	glass := s.AddFinish(material.NewFinish(0.0, 0.05, 0.6, 120, 0.1, 0.85, 1.5))

	// Ground: slab between y=-1 and y=0, unbounded in x and z
	ground := geometry.NewPolyhedron([]geometry.Face{
		geometry.NewFace(0, 1, 0, 0),
		geometry.NewFace(0, -1, 0, -1),
	}, checker, matte)

	block := newTurnedBlock(-1.9, -1.2, 0.5, 1.0, blue, plastic)
	cube := geometry.NewAxisAlignedCube(core.NewVec3(1.0, 0.25, 1.2), 0.5, red, matte)

	s.Shapes = append(s.Shapes,
		ground,
		geometry.NewSphere(core.NewVec3(0, 0.7, 0), 0.7, red, plastic),
		geometry.NewSphere(core.NewVec3(1.8, 0.6, -0.8), 0.6, white, mirror),
		geometry.NewSphere(core.NewVec3(-0.6, 0.4, 1.6), 0.4, white, glass),
		block,
		cube,
	)

	return s
}

// NewMirrorCorridorScene creates two parallel perfect mirrors facing each other
// with the camera between them, so every primary ray bounces until the depth bound
func NewMirrorCorridorScene() *Scene {
	s := NewScene(geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        30.0,
		AspectRatio: DefaultAspectRatio,
	})
	s.AmbientLight = core.NewVec3(1, 1, 1)
	s.AddPointLight(core.NewVec3(0, 0.5, 0), core.NewVec3(1, 1, 1), [3]float64{1, 0, 0})

	grey := s.AddPigment(material.NewSolidPigment(core.NewVec3(0.5, 0.5, 0.5)))
	mirror := s.AddFinish(material.NewFinish(0.05, 0.1, 0, 1, 1, 0, 1))

	// Slabs z in [-3,-2] and z in [2,3]
	s.Shapes = append(s.Shapes,
		geometry.NewPolyhedron([]geometry.Face{
			geometry.NewFace(0, 0, 1, 2),
			geometry.NewFace(0, 0, -1, -3),
		}, grey, mirror),
		geometry.NewPolyhedron([]geometry.Face{
			geometry.NewFace(0, 0, -1, 2),
			geometry.NewFace(0, 0, 1, -3),
		}, grey, mirror),
	)

	return s
}

// newTurnedBlock creates a square block standing on y=0, turned 45 degrees about Y.
// half is the distance from the vertical axis to each side face.
func newTurnedBlock(cx, cz, half, height float64, pigmentIndex, finishIndex int) *geometry.Polyhedron {
	along := (cx + cz) / math.Sqrt2
	across := (cx - cz) / math.Sqrt2
	faces := []geometry.Face{
		geometry.NewFace(1, 0, 1, -along-half),
		geometry.NewFace(-1, 0, -1, along-half),
		geometry.NewFace(1, 0, -1, -across-half),
		geometry.NewFace(-1, 0, 1, across-half),
		geometry.NewFace(0, 1, 0, -height),
		geometry.NewFace(0, -1, 0, 0),
	}
	return geometry.NewPolyhedron(faces, pigmentIndex, finishIndex)
}
