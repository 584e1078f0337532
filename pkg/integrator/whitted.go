package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const (
	// DefaultMaxDepth is the deepest bounce that still shades; depth MaxDepth+1 returns black
	DefaultMaxDepth = 5

	// HitEpsilon is the minimum t accepted for any ray, avoiding self-intersection acne
	HitEpsilon = 0.001
)

// WhittedIntegrator shades with local Phong lighting, hard shadows, and
// recursive mirror reflection and refraction
type WhittedIntegrator struct {
	maxDepth int
	stats    RayStats
}

// NewWhittedIntegrator creates a new Whitted integrator
func NewWhittedIntegrator(maxDepth int) *WhittedIntegrator {
	return &WhittedIntegrator{maxDepth: maxDepth}
}

// Stats returns the ray counts accumulated since creation or the last ResetStats
func (wi *WhittedIntegrator) Stats() RayStats {
	return wi.stats
}

// ResetStats clears the accumulated ray counts
func (wi *WhittedIntegrator) ResetStats() {
	wi.stats = RayStats{}
}

// RayColor implements Integrator for a camera ray
func (wi *WhittedIntegrator) RayColor(ray core.Ray, scene *scene.Scene) core.Vec3 {
	wi.stats.PrimaryRays++
	return wi.CastRay(ray, scene, 0)
}

// CastRay returns the color carried back along ray at the given recursion depth.
// The result is clamped to [0,1] per channel.
func (wi *WhittedIntegrator) CastRay(ray core.Ray, scene *scene.Scene, depth int) core.Vec3 {
	wi.stats.DeepestDepth = max(wi.stats.DeepestDepth, depth)

	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth > wi.maxDepth {
		return core.Vec3{}
	}

	hit, isHit := wi.hitWorld(ray, scene, HitEpsilon, math.Inf(1))
	if !isHit {
		return core.Vec3{} // Black background
	}

	finish := scene.Finishes[hit.FinishIndex]
	pigmentColor := scene.Pigments[hit.PigmentIndex].Evaluate(hit.Point)

	color := wi.localColor(ray, hit, finish, pigmentColor, scene)

	if finish.IsReflective() {
		color = color.Add(wi.reflectedColor(ray, hit, scene, depth).Multiply(finish.Kr))
	}
	if finish.IsTransmissive() {
		color = color.Add(wi.refractedColor(ray, hit, finish, scene, depth).Multiply(finish.Kt))
	}

	return color.Clamp(0, 1)
}

// hitWorld finds the nearest intersection in (tMin, tMax)
func (wi *WhittedIntegrator) hitWorld(ray core.Ray, scene *scene.Scene, tMin, tMax float64) (*geometry.HitRecord, bool) {
	var closestHit *geometry.HitRecord
	closestSoFar := tMax

	for _, shape := range scene.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// occluded reports whether any shape blocks ray within (tMin, tMax)
func (wi *WhittedIntegrator) occluded(ray core.Ray, scene *scene.Scene, tMin, tMax float64) bool {
	wi.stats.ShadowRays++
	for _, shape := range scene.Shapes {
		if _, isHit := shape.Hit(ray, tMin, tMax); isHit {
			return true
		}
	}
	return false
}

// localColor evaluates ambient plus unshadowed diffuse and specular terms
func (wi *WhittedIntegrator) localColor(ray core.Ray, hit *geometry.HitRecord, finish material.Finish, pigmentColor core.Vec3, scene *scene.Scene) core.Vec3 {
	normal := hit.Normal
	view := ray.Direction.Normalize().Negate()

	color := scene.AmbientLight.MultiplyVec(pigmentColor).Multiply(finish.Ka)

	for _, light := range scene.Lights {
		sample := light.Sample(hit.Point)

		shadowRay := core.NewRay(hit.Point, sample.Direction)
		if wi.occluded(shadowRay, scene, HitEpsilon, sample.Distance) {
			continue
		}

		nDotL := math.Max(0, normal.Dot(sample.Direction))
		diffuse := sample.Emission.MultiplyVec(pigmentColor).Multiply(finish.Kd * nDotL)

		reflected := core.Reflect(sample.Direction.Negate(), normal)
		rDotV := math.Max(0, reflected.Dot(view))
		specular := sample.Emission.Multiply(finish.Ks * math.Pow(rDotV, finish.Shininess))

		color = color.Add(diffuse).Add(specular)
	}

	return color
}

// reflectedColor traces the mirror bounce one level deeper
func (wi *WhittedIntegrator) reflectedColor(ray core.Ray, hit *geometry.HitRecord, scene *scene.Scene, depth int) core.Vec3 {
	wi.stats.ReflectionRays++
	direction := core.Reflect(ray.Direction.Normalize(), hit.Normal)
	return wi.CastRay(core.NewRay(hit.Point, direction), scene, depth+1)
}

// refractedColor traces the transmitted ray one level deeper.
// Total internal reflection contributes nothing.
func (wi *WhittedIntegrator) refractedColor(ray core.Ray, hit *geometry.HitRecord, finish material.Finish, scene *scene.Scene, depth int) core.Vec3 {
	outwardNormal := hit.Normal
	etaRatio := 1.0 / finish.IOR
	if ray.Direction.Dot(hit.Normal) > 0 {
		// Leaving the solid
		outwardNormal = hit.Normal.Negate()
		etaRatio = finish.IOR
	}

	direction, ok := core.Refract(ray.Direction, outwardNormal, etaRatio)
	if !ok {
		return core.Vec3{}
	}

	wi.stats.RefractionRays++
	return wi.CastRay(core.NewRay(hit.Point, direction), scene, depth+1)
}
