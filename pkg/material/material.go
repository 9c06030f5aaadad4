package material

import (
	"math"

	"github.com/kmander/go-pathtracer/pkg/core"
)

// Material describes how a surface scatters and emits light. Color is the
// base albedo, Metalness selects between dielectric and metallic Fresnel
// response, Roughness spreads the specular lobe, and Emission is radiance
// added whenever the surface is hit
type Material struct {
	Color     core.Vec3
	Metalness float64
	Roughness float64
	Emission  core.Vec3
}

// New creates a material with no emission
func New(color core.Vec3, metalness, roughness float64) *Material {
	return NewEmissive(color, metalness, roughness, core.Vec3{})
}

// NewEmissive creates a material that also radiates the given emission
func NewEmissive(color core.Vec3, metalness, roughness float64, emission core.Vec3) *Material {
	return &Material{
		Color:     color,
		Metalness: clamp01(metalness),
		Roughness: clamp01(roughness),
		Emission:  emission,
	}
}

// Bounce samples an outgoing ray for a surface hit and returns it with the
// probability density of choosing that direction. The density is the full
// mixture density and stays strictly positive for every returned direction
func (m *Material) Bounce(rayIn core.Ray, hit core.Hit, sampler core.Sampler) (core.Ray, float64) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)
	exponent := phongExponent(m.Roughness)

	// Mix a diffuse and a glossy lobe by roughness: rough surfaces scatter
	// cosine-weighted around the normal, smooth surfaces hug the mirror
	// direction
	var direction core.Vec3
	if sampler.Get1D() < m.Roughness {
		direction = core.SampleCosineHemisphere(hit.Normal, sampler.Get2D())
	} else {
		direction = core.SamplePhongLobe(reflected, exponent, sampler.Get2D())
	}

	pdf := m.Roughness*core.CosineHemispherePDF(hit.Normal, direction) +
		(1.0-m.Roughness)*core.PhongLobePDF(reflected, direction, exponent)

	// A lobe sample can land exactly on the horizon where both densities
	// vanish; keep the divisor positive
	if pdf < minPDF {
		pdf = minPDF
	}

	return core.NewRay(hit.Point, direction), pdf
}

// BRDF evaluates the microfacet specular term for a view/scatter direction
// pair and returns it together with the Fresnel reflectance that weighted it
func (m *Material) BRDF(view, scattered, normal core.Vec3) (core.Vec3, core.Vec3) {
	v := view.Normalize()
	l := scattered.Normalize()
	h := v.Add(l).Normalize()

	nv := math.Max(normal.Dot(v), 0)
	nl := math.Max(normal.Dot(l), 0)
	nh := math.Max(normal.Dot(h), 0)
	hv := math.Max(h.Dot(v), 0)

	// Reflectance at normal incidence blends from a dielectric constant
	// toward the surface color as metalness rises
	f0 := core.NewVec3(0.04, 0.04, 0.04).Multiply(1 - m.Metalness).Add(m.Color.Multiply(m.Metalness))
	ks := schlick(hv, f0)

	// No specular contribution below the horizon
	if nv <= 0 || nl <= 0 {
		return core.Vec3{}, ks
	}

	d := distributionGGX(nh, m.Roughness)
	g := geometrySmith(nv, nl, m.Roughness)

	specular := ks.Multiply(d * g / (4*nv*nl + 1e-4))
	return specular, ks
}

const minPDF = 1e-8

// phongExponent maps roughness to a power-cosine lobe exponent.
// Roughness 0 yields a near-mirror lobe, roughness 1 a uniform hemisphere
func phongExponent(roughness float64) float64 {
	alpha := math.Max(roughness*roughness, 1e-3)
	return 2.0/(alpha*alpha) - 2.0
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// schlick approximates Fresnel reflectance for the given cosine
func schlick(cosTheta float64, f0 core.Vec3) core.Vec3 {
	one := core.NewVec3(1, 1, 1)
	return f0.Add(one.Subtract(f0).Multiply(math.Pow(1-cosTheta, 5)))
}

// distributionGGX is the Trowbridge-Reitz normal distribution function
func distributionGGX(nh, roughness float64) float64 {
	alpha := math.Max(roughness*roughness, 1e-3)
	a2 := alpha * alpha
	denom := nh*nh*(a2-1) + 1
	return a2 / (math.Pi * denom * denom)
}

// geometrySmith is Smith's shadowing-masking term with Schlick-GGX parts
func geometrySmith(nv, nl, roughness float64) float64 {
	k := (roughness + 1) * (roughness + 1) / 8
	return schlickGGX(nv, k) * schlickGGX(nl, k)
}

func schlickGGX(cosTheta, k float64) float64 {
	return cosTheta / (cosTheta*(1-k) + k)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
