package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center       core.Vec3
	Radius       float64
	PigmentIndex int
	FinishIndex  int
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, pigmentIndex, finishIndex int) *Sphere {
	return &Sphere{
		Center:       center,
		Radius:       radius,
		PigmentIndex: pigmentIndex,
		FinishIndex:  finishIndex,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	// Tangent rays (zero discriminant) count as misses
	discriminant := b*b - 4*a*c
	if discriminant <= 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-b - sqrtD) / (2.0 * a)
	if root <= tMin || root >= tMax {
		// Try the farther intersection point
		root = (-b + sqrtD) / (2.0 * a)
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	return &HitRecord{
		T:            root,
		Point:        point,
		Normal:       point.Subtract(s.Center).Divide(s.Radius),
		PigmentIndex: s.PigmentIndex,
		FinishIndex:  s.FinishIndex,
	}, true
}

// MaterialIndices implements Shape
func (s *Sphere) MaterialIndices() (int, int) {
	return s.PigmentIndex, s.FinishIndex
}
