package geometry

import (
	"math"

	"github.com/piemot/raytracing/pkg/core"
	"github.com/piemot/raytracing/pkg/material"
)

// ConstantMedium is a volume of constant density bounded by another Hittable.
// A ray entering the boundary scatters inside it with probability
// proportional to the distance travelled; the scatter distance is drawn from
// an exponential distribution during the hit test.
//
// The boundary must be convex: the medium finds the entry and exit points as
// the first two boundary hits along the ray.
type ConstantMedium struct {
	Boundary      Hittable
	Phase         material.Material
	negInvDensity float64
}

// NewConstantMedium creates a medium with the given density and a uniform
// isotropic scattering color
func NewConstantMedium(boundary Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return NewTexturedConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

// NewTexturedConstantMedium creates a medium whose phase function samples the
// given texture
func NewTexturedConstantMedium(boundary Hittable, density float64, albedo material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Phase:         material.NewTexturedIsotropic(albedo),
		negInvDensity: -1.0 / density,
	}
}

// Hit finds where, if anywhere, the ray scatters inside the medium
func (cm *ConstantMedium) Hit(ray core.Ray, tRange core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	// Entry point: first boundary hit anywhere along the ray, so rays that
	// start inside the medium are handled too
	entry, isHit := cm.Boundary.Hit(ray, core.UniverseInterval(), sampler)
	if !isHit {
		return nil, false
	}

	// Exit point: next boundary hit past the entry
	exit, isHit := cm.Boundary.Hit(ray, core.NewInterval(entry.T+0.0001, math.Inf(1)), sampler)
	if !isHit {
		return nil, false
	}

	tEntry := math.Max(entry.T, tRange.Min)
	tExit := math.Min(exit.T, tRange.Max)
	if tEntry >= tExit {
		return nil, false
	}
	if tEntry < 0 {
		tEntry = 0
	}

	rayLength := ray.Direction.Length()
	distanceInside := (tExit - tEntry) * rayLength
	scatterDistance := cm.negInvDensity * math.Log(sampler.Get1D())

	if scatterDistance > distanceInside {
		return nil, false
	}

	t := tEntry + scatterDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary; the phase function ignores it
		FrontFace: true,
		Material:  cm.Phase,
	}, true
}

// BoundingBox returns the boundary's bounding box
func (cm *ConstantMedium) BoundingBox() core.AABB {
	return cm.Boundary.BoundingBox()
}
