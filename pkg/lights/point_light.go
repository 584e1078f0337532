package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight is an isotropic point source with inverse-quadratic falloff
type PointLight struct {
	Position    core.Vec3
	Color       core.Vec3
	Attenuation [3]float64 // constant, linear, quadratic
}

// NewPointLight creates a point light
func NewPointLight(position, color core.Vec3, attenuation [3]float64) *PointLight {
	return &PointLight{Position: position, Color: color, Attenuation: attenuation}
}

// AttenuationAt returns 1/(c0 + c1*d + c2*d²).
// A non-positive denominator is treated as no falloff.
func (pl *PointLight) AttenuationAt(distance float64) float64 {
	denom := pl.Attenuation[0] + pl.Attenuation[1]*distance + pl.Attenuation[2]*distance*distance
	if denom <= 0 {
		return 1.0
	}
	return 1.0 / denom
}

// Sample implements Light
func (pl *PointLight) Sample(point core.Vec3) LightSample {
	toLight := pl.Position.Subtract(point)
	distance := toLight.Length()
	return LightSample{
		Direction: toLight.Normalize(),
		Distance:  distance,
		Emission:  pl.Color.Multiply(pl.AttenuationAt(distance)),
	}
}
