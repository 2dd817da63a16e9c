package material

import (
	"math"
	"math/rand"

	"github.com/kdawson/go-sphere-tracer/pkg/core"
)

// Kind identifies a material variant
type Kind int

const (
	KindLambertian Kind = iota
	KindMetal
	KindDielectric
)

// Material is a tagged variant over the supported scattering models. It is
// plain copyable data; which parameters are meaningful depends on Kind.
type Material struct {
	Kind            Kind
	Albedo          core.Vec3 // Lambertian and Metal
	Fuzz            float64   // Metal: 0.0 = perfect mirror, 1.0 = very fuzzy
	RefractiveIndex float64   // Dielectric (e.g. 1.5 for glass)
}

// NewLambertian creates a perfectly diffuse material
func NewLambertian(albedo core.Vec3) Material {
	return Material{Kind: KindLambertian, Albedo: albedo}
}

// NewMetal creates a metallic material with specular reflection
func NewMetal(albedo core.Vec3, fuzz float64) Material {
	// Clamp fuzz to valid range
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return Material{Kind: KindMetal, Albedo: albedo, Fuzz: fuzz}
}

// NewDielectric creates a transparent material like glass
func NewDielectric(refractiveIndex float64) Material {
	return Material{Kind: KindDielectric, RefractiveIndex: refractiveIndex}
}

// Scatter decides how an incident ray continues at a surface hit. It returns
// the color attenuation and the scattered ray, or ok=false if the ray was
// absorbed. Adding a material variant means adding a case here; the scene and
// the tracer are unaffected.
func (m Material) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (attenuation core.Vec3, scattered core.Ray, ok bool) {
	switch m.Kind {
	case KindLambertian:
		return m.scatterLambertian(hit, random)
	case KindMetal:
		return m.scatterMetal(rayIn, hit, random)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, random)
	}
	return core.Vec3{}, core.Ray{}, false
}

// scatterLambertian bounces the ray into the hemisphere around the normal.
// Diffuse surfaces never absorb.
func (m Material) scatterLambertian(hit core.HitRecord, random *rand.Rand) (core.Vec3, core.Ray, bool) {
	direction := hit.Normal.Add(core.RandomInUnitSphere(random))

	// A random offset can cancel the normal almost exactly, leaving a
	// degenerate direction. Fall back to the normal itself.
	if direction.NearZero() {
		direction = hit.Normal
	}

	return m.Albedo, core.NewRay(hit.Point, direction), true
}

// scatterMetal reflects the ray about the normal, perturbed by fuzz. The ray
// is absorbed if the perturbed reflection points into the surface.
func (m Material) scatterMetal(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.Vec3, core.Ray, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)

	if m.Fuzz > 0 {
		perturbation := core.RandomInUnitSphere(random).Multiply(m.Fuzz)
		reflected = reflected.Add(perturbation)
	}

	scattered := core.NewRay(hit.Point, reflected)
	return m.Albedo, scattered, scattered.Direction.Dot(hit.Normal) > 0
}

// scatterDielectric refracts the ray with Snell's law, or reflects on total
// internal reflection or a Schlick reflectance draw. Clear glass absorbs
// nothing, so the attenuation is always full transmission.
func (m Material) scatterDielectric(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.Vec3, core.Ray, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	// Entering the material from air, or exiting back into air
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / m.RefractiveIndex
	} else {
		refractionRatio = m.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()

	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	// Snell's law has no solution past the critical angle
	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = reflect(unitDirection, hit.Normal)
	} else {
		direction = refract(unitDirection, hit.Normal, refractionRatio)
	}

	return attenuation, core.NewRay(hit.Point, direction), true
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// refract calculates the refraction of a vector using Snell's law
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
