package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// parallelEpsilon is the |n·d| below which a ray is treated as parallel to a face plane
const parallelEpsilon = 1e-6

// Face is the plane Normal·P + d = 0 bounding a convex polyhedron.
// The solid lies on the side where Normal·P + d <= 0, so Normal points outward.
type Face struct {
	A, B, C, D float64
	Normal     core.Vec3 // unit (a,b,c)
}

// NewFace creates a face from plane coefficients.
// Only (a,b,c) is normalized; d is kept as given and used directly as the
// plane offset, so coefficients are expected to describe a unit normal.
func NewFace(a, b, c, d float64) Face {
	return Face{
		A:      a,
		B:      b,
		C:      c,
		D:      d,
		Normal: core.NewVec3(a, b, c).Normalize(),
	}
}

// Polyhedron is a convex solid expressed as the intersection of half-spaces, one per face
type Polyhedron struct {
	Faces        []Face
	PigmentIndex int
	FinishIndex  int
}

// NewPolyhedron creates a polyhedron from its faces
func NewPolyhedron(faces []Face, pigmentIndex, finishIndex int) *Polyhedron {
	return &Polyhedron{
		Faces:        faces,
		PigmentIndex: pigmentIndex,
		FinishIndex:  finishIndex,
	}
}

// NewAxisAlignedCube creates a cube of the given edge length centered at center
func NewAxisAlignedCube(center core.Vec3, size float64, pigmentIndex, finishIndex int) *Polyhedron {
	half := size / 2
	faces := []Face{
		NewFace(1, 0, 0, -(center.X + half)),
		NewFace(-1, 0, 0, center.X-half),
		NewFace(0, 1, 0, -(center.Y + half)),
		NewFace(0, -1, 0, center.Y-half),
		NewFace(0, 0, 1, -(center.Z + half)),
		NewFace(0, 0, -1, center.Z-half),
	}
	return NewPolyhedron(faces, pigmentIndex, finishIndex)
}

// AddFace appends a bounding plane
func (p *Polyhedron) AddFace(a, b, c, d float64) {
	p.Faces = append(p.Faces, NewFace(a, b, c, d))
}

// Hit clips the ray's parameter interval against every face plane.
// When the ray starts inside the solid the exit point is reported, but the
// normal is still the entering face's (face 0 if no face was entered).
func (p *Polyhedron) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	if len(p.Faces) == 0 {
		return nil, false
	}

	tEnter := math.Inf(-1)
	tExit := math.Inf(1)
	enterFace := -1

	for i := range p.Faces {
		face := &p.Faces[i]
		denom := face.Normal.Dot(ray.Direction)
		dist := -(face.Normal.Dot(ray.Origin) + face.D)

		if math.Abs(denom) < parallelEpsilon {
			// Parallel and outside this half-space misses the whole solid
			if dist < 0 {
				return nil, false
			}
			continue
		}

		t := dist / denom
		if denom < 0 {
			if t > tEnter {
				tEnter = t
				enterFace = i
			}
		} else if t < tExit {
			tExit = t
		}
	}

	if tEnter >= tExit || tExit <= tMin {
		return nil, false
	}

	t := tEnter
	if t < tMin {
		t = tExit
	}
	if t <= tMin || t >= tMax {
		return nil, false
	}

	normal := p.Faces[0].Normal
	if enterFace >= 0 {
		normal = p.Faces[enterFace].Normal
	}

	return &HitRecord{
		T:            t,
		Point:        ray.At(t),
		Normal:       normal,
		PigmentIndex: p.PigmentIndex,
		FinishIndex:  p.FinishIndex,
	}, true
}

// MaterialIndices implements Shape
func (p *Polyhedron) MaterialIndices() (int, int) {
	return p.PigmentIndex, p.FinishIndex
}
