package core

// Hit records a ray-surface intersection
type Hit struct {
	Point  Vec3
	Normal Vec3 // unit length, faces the side the ray came from
	UV     Vec2
	T      float64
}

// SetFaceNormal orients the normal to point against the incoming ray
func (h *Hit) SetFaceNormal(r Ray, outwardNormal Vec3) {
	if r.Direction.Dot(outwardNormal) < 0 {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
