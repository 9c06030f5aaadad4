package integrator

import (
	"github.com/kmander/go-pathtracer/pkg/core"
	"github.com/kmander/go-pathtracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance arriving along a camera ray
	RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3
}
