package scene

import (
	"github.com/kmander/go-pathtracer/pkg/core"
	"github.com/kmander/go-pathtracer/pkg/geometry"
	"github.com/kmander/go-pathtracer/pkg/material"
)

// NewSphereBox creates the default scene: a Cornell-style box assembled from
// giant spheres, lit by a single emissive sphere, with one glossy metal ball
// and one matching diffuse ball on the floor
func NewSphereBox() *Scene {
	s := newBoxScene()
	pink := core.NewVec3(0.8, 0.2, 0.2)

	s.Add(geometry.NewSphere(core.NewVec3(-2, -2, 0), 1.0), material.New(pink, 1.0, 0.2))
	s.Add(geometry.NewSphere(core.NewVec3(2, -2, 0), 1.0), material.New(pink, 0.0, 1.0))

	return s
}

// newBoxScene builds the enclosing walls and the ceiling light shared by the
// box scenes. Giant spheres stand in for the walls
func newBoxScene() *Scene {
	view := View{
		Eye:    core.NewVec3(0, 0, 5),
		Target: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   80,
	}
	s := NewScene(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1), view)

	white := material.New(core.NewVec3(1, 1, 1), 0.0, 1.0)
	red := material.New(core.NewVec3(1, 0, 0), 0.0, 1.0)
	blue := material.New(core.NewVec3(0, 0, 1), 0.0, 1.0)
	green := material.New(core.NewVec3(0, 0.1, 0), 0.0, 1.0)
	light := material.NewEmissive(core.NewVec3(1, 1, 1), 0.0, 1.0, core.NewVec3(10, 10, 10))

	s.Add(geometry.NewSphere(core.NewVec3(1005, 2, 0), 1000), red)
	s.Add(geometry.NewSphere(core.NewVec3(-1005, 2, 0), 1000), blue)
	s.Add(geometry.NewSphere(core.NewVec3(0, 4, 0), 1.5), light)
	s.Add(geometry.NewSphere(core.NewVec3(0, 1005, 0), 1000), white)
	s.Add(geometry.NewSphere(core.NewVec3(0, -1003, 0), 1000), white)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 1005), 1000), white)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -1006), 1000), green)

	return s
}
