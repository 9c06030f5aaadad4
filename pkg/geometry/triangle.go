package geometry

import (
	"github.com/kmander/go-pathtracer/pkg/core"
)

// Vertex is a triangle corner with optional UV and normal attributes
type Vertex struct {
	Pos    core.Vec3
	UV     core.Vec2
	Normal core.Vec3 // zero when the mesh supplies no normal
}

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 Vertex
	normal     core.Vec3 // Cached flat normal
	smooth     bool      // Interpolate vertex normals instead of the flat normal
}

// NewTriangle creates a new triangle from three vertices. When any vertex
// carries a normal the hit normal is interpolated; vertices without one fall
// back to the face's flat normal
func NewTriangle(v0, v1, v2 Vertex) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2}

	// Precompute flat normal for efficiency
	t.computeNormal()

	zero := core.Vec3{}
	if v0.Normal != zero || v1.Normal != zero || v2.Normal != zero {
		t.smooth = true
		if t.V0.Normal == zero {
			t.V0.Normal = t.normal
		}
		if t.V1.Normal == zero {
			t.V1.Normal = t.normal
		}
		if t.V2.Normal == zero {
			t.V2.Normal = t.normal
		}
	}

	return t
}

// NewFlatTriangle creates a new triangle from three positions with no vertex attributes
func NewFlatTriangle(p0, p1, p2 core.Vec3) *Triangle {
	return NewTriangle(Vertex{Pos: p0}, Vertex{Pos: p1}, Vertex{Pos: p2})
}

// computeNormal calculates and caches the triangle's flat normal vector
func (t *Triangle) computeNormal() {
	// Calculate two edge vectors
	edge1 := t.V1.Pos.Subtract(t.V0.Pos)
	edge2 := t.V2.Pos.Subtract(t.V0.Pos)

	// Normal is the cross product of the two edges
	t.normal = edge1.Cross(edge2).Normalize()
}

// Normal returns the triangle's flat normal vector
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Intersect tests if a ray intersects the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Intersect(ray core.Ray, tMin, tMax float64) (core.Hit, bool) {
	const epsilon = 1e-8

	// Calculate two edge vectors
	edge1 := t.V1.Pos.Subtract(t.V0.Pos)
	edge2 := t.V2.Pos.Subtract(t.V0.Pos)

	// Calculate determinant
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if a > -epsilon && a < epsilon {
		return core.Hit{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0.Pos)
	u := f * s.Dot(h)

	// Check if intersection is outside triangle
	if u < 0.0 || u > 1.0 {
		return core.Hit{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)

	// Check if intersection is outside triangle
	if v < 0.0 || u+v > 1.0 {
		return core.Hit{}, false
	}

	// Calculate t parameter
	root := f * edge2.Dot(q)

	// Check if intersection is within valid range
	if root < tMin || root > tMax {
		return core.Hit{}, false
	}

	hit := core.Hit{
		T:     root,
		Point: ray.At(root),
		UV:    t.uvAt(u, v),
	}
	hit.SetFaceNormal(ray, t.normalAt(u, v))

	return hit, true
}

// uvAt interpolates vertex UVs with barycentric weights
func (t *Triangle) uvAt(u, v float64) core.Vec2 {
	w := 1.0 - u - v
	return t.V0.UV.Multiply(w).Add(t.V1.UV.Multiply(u)).Add(t.V2.UV.Multiply(v))
}

// normalAt interpolates vertex normals with barycentric weights,
// or returns the flat normal for triangles without vertex normals
func (t *Triangle) normalAt(u, v float64) core.Vec3 {
	if !t.smooth {
		return t.normal
	}
	w := 1.0 - u - v
	return t.V0.Normal.Multiply(w).
		Add(t.V1.Normal.Multiply(u)).
		Add(t.V2.Normal.Multiply(v)).
		Normalize()
}
