package geometry

import (
	"github.com/piemot/raytracing/pkg/core"
)

// HittablePDF adapts a set of sampleable objects (the scene's lights) to the
// core.PDF interface. Its density is the average of the per-object densities
// and it generates directions by picking one object uniformly.
type HittablePDF struct {
	Objects []Sampleable
	Origin  core.Vec3
	Time    float64
}

// NewHittablePDF creates a PDF over directions from origin toward objects
func NewHittablePDF(objects []Sampleable, origin core.Vec3, time float64) *HittablePDF {
	return &HittablePDF{Objects: objects, Origin: origin, Time: time}
}

// Value returns the averaged solid-angle density of the direction
func (p *HittablePDF) Value(direction core.Vec3) float64 {
	if len(p.Objects) == 0 {
		return 0
	}

	sum := 0.0
	for _, obj := range p.Objects {
		sum += obj.PDFValue(p.Origin, direction, p.Time)
	}
	return sum / float64(len(p.Objects))
}

// Generate samples a direction toward a uniformly chosen object
func (p *HittablePDF) Generate(sampler core.Sampler) core.Vec3 {
	index := int(sampler.Get1D() * float64(len(p.Objects)))
	if index >= len(p.Objects) {
		index = len(p.Objects) - 1
	}
	return p.Objects[index].RandomDirection(p.Origin, sampler)
}
