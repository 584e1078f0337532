package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point        core.Vec3 // Point of intersection
	Normal       core.Vec3 // Unit surface normal at intersection
	T            float64   // Parameter t along the ray
	PigmentIndex int       // Index into the scene's pigments
	FinishIndex  int       // Index into the scene's finishes
}

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit reports the intersection with t strictly inside (tMin, tMax)
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)

	// MaterialIndices returns the pigment and finish indices the shape shades with
	MaterialIndices() (pigmentIndex, finishIndex int)
}
