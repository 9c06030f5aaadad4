package integrator

import (
	"math"

	"github.com/kmander/go-pathtracer/pkg/core"
	"github.com/kmander/go-pathtracer/pkg/scene"
)

// PathTracer implements unidirectional path tracing with BRDF importance
// sampling and a hard depth cutoff
type PathTracer struct {
	MaxDepth int
}

// NewPathTracer creates a path tracer that follows rays for at most maxDepth bounces
func NewPathTracer(maxDepth int) *PathTracer {
	return &PathTracer{MaxDepth: maxDepth}
}

// RayColor computes the radiance arriving along a camera ray
func (pt *PathTracer) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, s, sampler, pt.MaxDepth)
}

func (pt *PathTracer) rayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	// Depth exhausted, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	result, isHit := s.Trace(ray, 0.001, math.MaxFloat64)
	if !isHit {
		return pt.backgroundGradient(ray, s)
	}

	mat := result.Material
	hit := result.Hit

	// Sample the next bounce, then gather the light it carries
	scattered, pdf := mat.Bounce(ray, hit, sampler)

	lambert := mat.Color.Multiply(1.0 / math.Pi)
	cosTheta := math.Max(hit.Normal.Dot(scattered.Direction), 0)

	incident := pt.rayColor(scattered, s, sampler, depth-1)

	specular, ks := mat.BRDF(ray.Direction.Negate(), scattered.Direction, hit.Normal)

	// Diffuse weight is whatever the specular lobe did not claim;
	// metals keep none of it
	one := core.NewVec3(1, 1, 1)
	kd := one.Subtract(ks.Multiply(1.0 - mat.Metalness))

	reflected := kd.MultiplyVec(lambert).Add(specular).
		MultiplyVec(incident).
		Multiply(cosTheta / pdf)

	// Emission is added at every hit, whether or not light bounced here
	return reflected.Add(mat.Emission)
}

// backgroundGradient returns the sky color for a ray that escapes the scene
func (pt *PathTracer) backgroundGradient(r core.Ray, s *scene.Scene) core.Vec3 {
	// Normalize the ray direction to get consistent results
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return s.BottomColor.Multiply(1.0 - t).Add(s.TopColor.Multiply(t))
}
