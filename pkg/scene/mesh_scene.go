package scene

import (
	"fmt"

	"github.com/kmander/go-pathtracer/pkg/core"
	"github.com/kmander/go-pathtracer/pkg/loaders"
	"github.com/kmander/go-pathtracer/pkg/material"
)

// NewMeshScene builds the sphere-box walls and light around the triangles of
// a Wavefront OBJ file
func NewMeshScene(objPath string) (*Scene, error) {
	triangles, err := loaders.LoadOBJ(objPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build mesh scene: %v", err)
	}

	s := newBoxScene()
	mesh := material.New(core.NewVec3(0.9, 0.9, 0.9), 0.0, 1.0)
	for _, tri := range triangles {
		s.Add(tri, mesh)
	}

	return s, nil
}
