package material

import (
	"github.com/piemot/raytracing/pkg/core"
)

// DiffuseLight represents a light-emitting material. It never scatters;
// emission is its texture's value scaled by a brightness factor.
type DiffuseLight struct {
	Emission   Texture
	Brightness float64
}

// NewDiffuseLight creates a light material from a solid emission color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission), Brightness: 1.0}
}

// NewTexturedDiffuseLight creates a light material from an emission texture
func NewTexturedDiffuseLight(emission Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission, Brightness: 1.0}
}

// NewScaledDiffuseLight creates a light material with a brightness multiplier
func NewScaledDiffuseLight(emission core.Vec3, brightness float64) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission), Brightness: brightness}
}

// Scatter implements the Material interface; lights absorb all incoming rays
func (dl *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// ScatteringPDF returns 0; lights never scatter
func (dl *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emit implements the Emitter interface. Only the front face emits, so the
// back of an area light stays dark.
func (dl *DiffuseLight) Emit(hit HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return dl.Emission.Value(hit.UV, hit.Point).Multiply(dl.Brightness)
}
