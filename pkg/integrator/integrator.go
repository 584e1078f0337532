package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the clamped color seen along a camera ray
	RayColor(ray core.Ray, scene *scene.Scene) core.Vec3
}

// RayStats counts the rays an integrator has cast
type RayStats struct {
	PrimaryRays    int // Camera rays
	ShadowRays     int // Occlusion tests toward lights
	ReflectionRays int // Mirror bounces spawned
	RefractionRays int // Transmission bounces spawned
	DeepestDepth   int // Largest recursion depth entered
}

// TotalRays returns the number of rays of every kind
func (s RayStats) TotalRays() int {
	return s.PrimaryRays + s.ShadowRays + s.ReflectionRays + s.RefractionRays
}

