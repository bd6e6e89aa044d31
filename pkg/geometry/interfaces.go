package geometry

import (
	"github.com/piemot/raytracing/pkg/core"
	"github.com/piemot/raytracing/pkg/material"
)

// Hittable interface for objects that can be hit by rays.
//
// The sampler is threaded through intersection because participating media
// resolve their scatter distance stochastically during the hit test; solid
// shapes ignore it, and deterministic queries may pass nil.
type Hittable interface {
	Hit(ray core.Ray, tRange core.Interval, sampler core.Sampler) (*material.HitRecord, bool)
	BoundingBox() core.AABB
}

// Sampleable is a Hittable that supports being importance-sampled as a light:
// it can report the density of a direction toward itself and generate such
// directions. Implemented by the emissive-capable primitives.
type Sampleable interface {
	Hittable

	// PDFValue returns the solid-angle density of sampling the given
	// direction from origin toward this object
	PDFValue(origin, direction core.Vec3, time float64) float64

	// RandomDirection generates a direction from origin toward a uniformly
	// sampled point on this object
	RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3
}
