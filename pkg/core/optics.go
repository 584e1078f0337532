package core

import "math"

// Reflect mirrors v about the surface normal n: r = v - 2*dot(v,n)*n
func Reflect(v, n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends v through a surface with normal n using Snell's law.
// etaRatio is n1/n2 and n must face the side v arrives from.
// Returns false on total internal reflection.
func Refract(v, n Vec3, etaRatio float64) (Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1.0 - etaRatio*etaRatio*(1.0-dt*dt)
	if discriminant <= 0 {
		return Vec3{}, false
	}

	tangential := uv.Subtract(n.Multiply(dt)).Multiply(etaRatio)
	return tangential.Subtract(n.Multiply(math.Sqrt(discriminant))), true
}
