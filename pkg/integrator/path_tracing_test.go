package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/kmander/go-pathtracer/pkg/core"
	"github.com/kmander/go-pathtracer/pkg/geometry"
	"github.com/kmander/go-pathtracer/pkg/material"
	"github.com/kmander/go-pathtracer/pkg/scene"
)

func emptyScene() *scene.Scene {
	view := scene.View{
		Eye:    core.NewVec3(0, 0, 5),
		Target: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   80,
	}
	return scene.NewScene(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1), view)
}

func testSampler() core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(42)))
}

func TestPathTracer_DepthZero(t *testing.T) {
	s := emptyScene()
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0),
		material.NewEmissive(core.NewVec3(1, 1, 1), 0, 1, core.NewVec3(10, 10, 10)))

	pt := NewPathTracer(0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	color := pt.RayColor(ray, s, testSampler())
	if color != (core.Vec3{}) {
		t.Errorf("Expected black at depth 0, got %v", color)
	}
}

func TestPathTracer_EmissiveAtDepthOne(t *testing.T) {
	// At depth 1 the recursive bounce contributes nothing, so a hit on an
	// emitter returns exactly its emission
	emission := core.NewVec3(3, 4, 5)
	s := emptyScene()
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0),
		material.NewEmissive(core.NewVec3(1, 1, 1), 0, 1, emission))

	pt := NewPathTracer(1)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	color := pt.RayColor(ray, s, testSampler())

	const tolerance = 1e-12
	if color.Subtract(emission).Length() > tolerance {
		t.Errorf("Expected exactly the emission %v, got %v", emission, color)
	}
}

func TestPathTracer_BackgroundGradient(t *testing.T) {
	s := emptyScene()
	pt := NewPathTracer(3)

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{
			name:      "straight up is the top color",
			direction: core.NewVec3(0, 1, 0),
			expected:  s.TopColor,
		},
		{
			name:      "straight down is the bottom color",
			direction: core.NewVec3(0, -1, 0),
			expected:  s.BottomColor,
		},
		{
			name:      "horizontal is the midpoint",
			direction: core.NewVec3(1, 0, 0),
			expected:  s.BottomColor.Multiply(0.5).Add(s.TopColor.Multiply(0.5)),
		},
		{
			name:      "magnitude does not change the gradient",
			direction: core.NewVec3(0, 7, 0),
			expected:  s.TopColor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.direction)
			color := pt.RayColor(ray, s, testSampler())

			const tolerance = 1e-9
			if color.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
		})
	}
}

func TestPathTracer_EmissionAccumulatesOverBounces(t *testing.T) {
	// A diffuse floor inside an emissive dome: at depth 1 the floor only
	// contributes its own (zero) emission, at depth 2 it picks up light
	s := emptyScene()
	s.Add(geometry.NewSphere(core.NewVec3(0, -1001, 0), 1000),
		material.New(core.NewVec3(0.8, 0.8, 0.8), 0, 1))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2000),
		material.NewEmissive(core.NewVec3(1, 1, 1), 0, 1, core.NewVec3(5, 5, 5)))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))
	sampler := testSampler()

	single := NewPathTracer(1).RayColor(ray, s, sampler)
	if single != (core.Vec3{}) {
		t.Errorf("Expected black floor at depth 1, got %v", single)
	}

	const numSamples = 200
	sum := core.Vec3{}
	double := NewPathTracer(2)
	for i := 0; i < numSamples; i++ {
		sum = sum.Add(double.RayColor(ray, s, sampler))
	}
	mean := sum.Multiply(1.0 / numSamples)

	if mean.X <= 0 {
		t.Errorf("Expected lit floor at depth 2, got %v", mean)
	}
}

func TestPathTracer_FiniteRadiance(t *testing.T) {
	// Fire rays through the full box scene and require every estimate to be
	// finite and non-negative, whatever path the sampler picks
	s := scene.NewSphereBox()
	pt := NewPathTracer(3)
	sampler := testSampler()
	random := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		dir := core.NewVec3(
			2*random.Float64()-1,
			2*random.Float64()-1,
			-random.Float64()-0.1,
		).Normalize()
		ray := core.NewRay(core.NewVec3(0, 0, 5), dir)

		color := pt.RayColor(ray, s, sampler)

		for _, c := range []float64{color.X, color.Y, color.Z} {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				t.Fatalf("Non-finite radiance %v for direction %v", color, dir)
			}
			if c < 0 {
				t.Fatalf("Negative radiance %v for direction %v", color, dir)
			}
		}
	}
}
