package scene

import (
	"github.com/kmander/go-pathtracer/pkg/core"
	"github.com/kmander/go-pathtracer/pkg/geometry"
	"github.com/kmander/go-pathtracer/pkg/material"
)

// Object pairs a shape with the material covering it
type Object struct {
	Shape    geometry.Shape
	Material *material.Material
}

// HitResult couples a geometric hit with the material of the object hit.
// The material pointer is shared with the scene, not copied
type HitResult struct {
	Hit      core.Hit
	Material *material.Material
}

// View describes the camera placement a scene was composed for
type View struct {
	Eye    core.Vec3
	Target core.Vec3
	Up     core.Vec3
	VFov   float64 // Vertical field of view in degrees
}

// Scene contains all the elements needed for rendering
type Scene struct {
	Objects     []Object
	TopColor    core.Vec3 // Sky gradient color straight up
	BottomColor core.Vec3 // Sky gradient color straight down
	View        View
}

// NewScene creates an empty scene with the given sky gradient and view
func NewScene(topColor, bottomColor core.Vec3, view View) *Scene {
	return &Scene{
		TopColor:    topColor,
		BottomColor: bottomColor,
		View:        view,
	}
}

// Add appends a shape with its material to the scene.
// Scenes are assembled up front; Add must not be called while rendering
func (s *Scene) Add(shape geometry.Shape, mat *material.Material) {
	s.Objects = append(s.Objects, Object{Shape: shape, Material: mat})
}

// Trace finds the closest intersection along the ray within [tMin, tMax]
func (s *Scene) Trace(ray core.Ray, tMin, tMax float64) (HitResult, bool) {
	var closest HitResult
	found := false
	closestSoFar := tMax

	// Linear scan, shrinking the interval to the closest hit so far
	for _, obj := range s.Objects {
		if hit, isHit := obj.Shape.Intersect(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closest = HitResult{Hit: hit, Material: obj.Material}
			found = true
		}
	}

	return closest, found
}
