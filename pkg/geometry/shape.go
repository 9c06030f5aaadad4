package geometry

import "github.com/kmander/go-pathtracer/pkg/core"

// Shape interface for surfaces that can be intersected by rays
type Shape interface {
	// Intersect reports the closest intersection with t in [tMin, tMax].
	// A miss is (zero Hit, false), never an error
	Intersect(ray core.Ray, tMin, tMax float64) (core.Hit, bool)
}
