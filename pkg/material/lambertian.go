package material

import (
	"math"

	"github.com/piemot/raytracing/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo Texture // Base color/reflectance (solid or textured)
}

// NewLambertian creates a new lambertian material with a solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with a texture
func NewTexturedLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	pdf := core.NewCosinePDF(hit.Normal)
	scattered := core.NewRayAt(hit.Point, pdf.Generate(sampler), rayIn.Time)

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: l.Albedo.Value(hit.UV, hit.Point),
		PDF:         pdf,
	}, true
}

// ScatteringPDF returns the cosine-weighted density cos(θ)/π
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	cosTheta := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosTheta < 0 {
		return 0
	}
	return cosTheta / math.Pi
}
