package renderer

import (
	"math"
	"testing"

	"github.com/kmander/go-pathtracer/pkg/core"
)

func vecsClose(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}

func TestCameraLookingAt_Basis(t *testing.T) {
	camera := LookingAt(
		core.NewVec3(0, 0, 5),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		80.0,
		1.0,
	)

	expectedForward := core.NewVec3(0, 0, -1)
	if !vecsClose(camera.forward, expectedForward, 1e-9) {
		t.Errorf("Expected forward %v, got %v", expectedForward, camera.forward)
	}

	expectedRight := core.NewVec3(1, 0, 0)
	if !vecsClose(camera.right, expectedRight, 1e-9) {
		t.Errorf("Expected right %v, got %v", expectedRight, camera.right)
	}

	expectedUp := core.NewVec3(0, 1, 0)
	if !vecsClose(camera.up, expectedUp, 1e-9) {
		t.Errorf("Expected up %v, got %v", expectedUp, camera.up)
	}
}

func TestCameraLookingAt_FieldOfView(t *testing.T) {
	camera := LookingAt(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
		90.0,
		2.0,
	)

	// 90 degrees vertical fov puts the plane half-height at tan(45) = 1
	if math.Abs(camera.halfH-1.0) > 1e-9 {
		t.Errorf("Expected half-height 1.0, got %v", camera.halfH)
	}
	if math.Abs(camera.halfW-2.0) > 1e-9 {
		t.Errorf("Expected half-width 2.0, got %v", camera.halfW)
	}
}

func TestCameraRayAt(t *testing.T) {
	camera := LookingAt(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
		90.0,
		1.0,
	)

	tests := []struct {
		name     string
		u, v     float64
		expected core.Vec3
	}{
		{name: "center of the image looks forward", u: 0.5, v: 0.5, expected: core.NewVec3(0, 0, -1)},
		{name: "top edge looks up", u: 0.5, v: 0.0, expected: core.NewVec3(0, 1, -1)},
		{name: "bottom edge looks down", u: 0.5, v: 1.0, expected: core.NewVec3(0, -1, -1)},
		{name: "left edge looks left", u: 0.0, v: 0.5, expected: core.NewVec3(-1, 0, -1)},
		{name: "right edge looks right", u: 1.0, v: 0.5, expected: core.NewVec3(1, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.RayAt(tt.u, tt.v)

			if ray.Origin != (core.Vec3{}) {
				t.Errorf("Expected rays from the eye, got origin %v", ray.Origin)
			}
			if !vecsClose(ray.Direction, tt.expected, 1e-9) {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
		})
	}
}

func TestCameraRayAt_OffsetEye(t *testing.T) {
	eye := core.NewVec3(3, 2, 1)
	camera := LookingAt(
		eye,
		core.NewVec3(3, 2, -9),
		core.NewVec3(0, 1, 0),
		60.0,
		1.0,
	)

	ray := camera.RayAt(0.5, 0.5)
	if ray.Origin != eye {
		t.Errorf("Expected origin %v, got %v", eye, ray.Origin)
	}
	if !vecsClose(ray.Direction.Normalize(), core.NewVec3(0, 0, -1), 1e-9) {
		t.Errorf("Expected forward direction, got %v", ray.Direction)
	}
}
