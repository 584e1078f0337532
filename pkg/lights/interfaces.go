package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Light interface for sources that contribute direct illumination
type Light interface {
	// Sample returns the direction and distance FROM the shading point TO the light,
	// plus the attenuated color arriving at the point
	Sample(point core.Vec3) LightSample
}

// LightSample contains information about a light as seen from a shading point
type LightSample struct {
	Direction core.Vec3 // Unit direction from shading point to light
	Distance  float64   // Distance to the light
	Emission  core.Vec3 // Light color scaled by distance attenuation
}
