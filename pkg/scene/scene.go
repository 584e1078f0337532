package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// DefaultAspectRatio is the fixed viewport aspect used for file-loaded scenes
const DefaultAspectRatio = 1.333

// Scene contains all the elements needed for rendering.
// It owns every camera, light, material and shape; shapes refer to
// pigments and finishes by index, so neither slice may be reordered after load.
type Scene struct {
	Camera       *geometry.Camera
	AmbientLight core.Vec3
	Lights       []lights.Light
	Pigments     []material.Pigment
	Finishes     []material.Finish
	Shapes       []geometry.Shape
}

// NewScene creates an empty scene viewed through the given camera
func NewScene(cameraConfig geometry.CameraConfig) *Scene {
	return &Scene{
		Camera:       geometry.NewCamera(cameraConfig),
		Lights:       make([]lights.Light, 0),
		Pigments:     make([]material.Pigment, 0),
		Finishes:     make([]material.Finish, 0),
		Shapes:       make([]geometry.Shape, 0),
	}
}

// AddPigment appends a pigment and returns its index
func (s *Scene) AddPigment(p material.Pigment) int {
	s.Pigments = append(s.Pigments, p)
	return len(s.Pigments) - 1
}

// AddFinish appends a finish and returns its index
func (s *Scene) AddFinish(f material.Finish) int {
	s.Finishes = append(s.Finishes, f)
	return len(s.Finishes) - 1
}

// AddPointLight adds a point light to the scene
func (s *Scene) AddPointLight(position, color core.Vec3, attenuation [3]float64) {
	s.Lights = append(s.Lights, lights.NewPointLight(position, color, attenuation))
}

// Validate checks that the scene can be rendered: a camera is present and
// every shape's pigment and finish index points into the scene's slices.
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return errors.New("scene has no camera")
	}
	for i, shape := range s.Shapes {
		pigmentIndex, finishIndex := shape.MaterialIndices()
		if pigmentIndex < 0 || pigmentIndex >= len(s.Pigments) {
			return fmt.Errorf("primitive %d: pigment index %d out of range [0,%d)", i, pigmentIndex, len(s.Pigments))
		}
		if finishIndex < 0 || finishIndex >= len(s.Finishes) {
			return fmt.Errorf("primitive %d: finish index %d out of range [0,%d)", i, finishIndex, len(s.Finishes))
		}
	}
	for i, pigment := range s.Pigments {
		if pigment == nil {
			return fmt.Errorf("pigment %d is nil", i)
		}
	}
	return nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// CountShapes returns the number of spheres and polyhedra in the scene
func (s *Scene) CountShapes() (spheres, polyhedra int) {
	for _, shape := range s.Shapes {
		switch shape.(type) {
		case *geometry.Sphere:
			spheres++
		case *geometry.Polyhedron:
			polyhedra++
		}
	}
	return spheres, polyhedra
}
