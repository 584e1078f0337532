package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestCameraViewportOrientation(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center:      core.NewVec3(3, 2, 5),
		LookAt:      core.NewVec3(-1, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 1.333,
		VFov:        60.0,
	})

	center := camera.GetRay(0.5, 0.5).Direction
	top := camera.GetRay(0.5, 1).Direction
	right := camera.GetRay(1, 0.5).Direction

	forward := core.NewVec3(-1, 0, 0).Subtract(core.NewVec3(3, 2, 5)).Normalize()
	rightAxis := forward.Cross(core.NewVec3(0, 1, 0)).Normalize()

	// Moving up the viewport tilts toward the up hint without turning sideways
	if top.Y <= center.Y {
		t.Errorf("Top-center ray should point higher than the center ray: top=%v center=%v", top, center)
	}
	if math.Abs(top.Dot(rightAxis)) > 1e-9 {
		t.Errorf("Top-center ray should have no sideways component, got %v", top)
	}
	if right.Dot(rightAxis) <= 0 {
		t.Errorf("Right-center ray should turn right, got %v", right)
	}
}

func TestCameraGetRay(t *testing.T) {
	// 90 degree FOV: half height is 1, so the viewport spans [-1,1] vertically at z=-1
	camera := NewCamera(CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 2.0,
		VFov:        90.0,
	})

	tests := []struct {
		name     string
		s, t     float64
		expected core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"lower left", 0, 0, core.NewVec3(-2, -1, -1).Normalize()},
		{"upper right", 1, 1, core.NewVec3(2, 1, -1).Normalize()},
		{"right edge middle", 1, 0.5, core.NewVec3(2, 0, -1).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t)
			if ray.Origin != (core.Vec3{}) {
				t.Errorf("Expected ray from eye at origin, got %v", ray.Origin)
			}
			if math.Abs(ray.Direction.Length()-1) > 1e-9 {
				t.Errorf("Ray direction should be normalized, got length %f", ray.Direction.Length())
			}
			if !vecNear(ray.Direction, tt.expected, 1e-6) {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
		})
	}
}

func TestCameraLooksAtTarget(t *testing.T) {
	eye := core.NewVec3(0, 5, 10)
	target := core.NewVec3(0, 1, 0)
	camera := NewCamera(CameraConfig{
		Center:      eye,
		LookAt:      target,
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 1.333,
		VFov:        40.0,
	})

	ray := camera.GetRay(0.5, 0.5)
	expected := target.Subtract(eye).Normalize()
	if !vecNear(ray.Direction, expected, 1e-9) {
		t.Errorf("Center ray should aim at target: expected %v, got %v", expected, ray.Direction)
	}
}
