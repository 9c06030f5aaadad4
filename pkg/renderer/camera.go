package renderer

import (
	"math"

	"github.com/kmander/go-pathtracer/pkg/core"
)

// Camera is a pinhole camera that maps image-plane coordinates to rays
type Camera struct {
	origin  core.Vec3
	forward core.Vec3
	right   core.Vec3
	up      core.Vec3
	halfW   float64
	halfH   float64
}

// LookingAt creates a camera at eye aimed at target. The vertical field of
// view is in degrees, aspectRatio is width over height
func LookingAt(eye, target, up core.Vec3, vfovDegrees, aspectRatio float64) *Camera {
	forward := target.Subtract(eye).Normalize()
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward)

	theta := vfovDegrees * math.Pi / 180.0
	halfH := math.Tan(theta / 2)
	halfW := halfH * aspectRatio

	return &Camera{
		origin:  eye,
		forward: forward,
		right:   right,
		up:      trueUp,
		halfW:   halfW,
		halfH:   halfH,
	}
}

// RayAt generates the primary ray through image-plane coordinates (u, v)
// where 0 <= u,v <= 1, with u running left to right and v top to bottom
func (c *Camera) RayAt(u, v float64) core.Ray {
	direction := c.forward.
		Add(c.right.Multiply((2*u - 1) * c.halfW)).
		Add(c.up.Multiply((1 - 2*v) * c.halfH))

	return core.NewRay(c.origin, direction)
}
