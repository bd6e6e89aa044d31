package material

import (
	"math"

	"github.com/piemot/raytracing/pkg/core"
)

// Isotropic scatters incoming rays uniformly in all directions. It is the
// phase function used by participating media such as smoke and fog.
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates an isotropic material from a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic material from a texture
func NewTexturedIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter implements the Material interface for uniform sphere scattering
func (iso *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	pdf := core.NewSpherePDF()
	scattered := core.NewRayAt(hit.Point, pdf.Generate(sampler), rayIn.Time)

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: iso.Albedo.Value(hit.UV, hit.Point),
		PDF:         pdf,
	}, true
}

// ScatteringPDF returns the uniform sphere density 1/(4π)
func (iso *Isotropic) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}
