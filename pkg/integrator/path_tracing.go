package integrator

import (
	"math"

	"github.com/piemot/raytracing/pkg/core"
	"github.com/piemot/raytracing/pkg/geometry"
	"github.com/piemot/raytracing/pkg/material"
)

// Scene provides the read-only scene data the integrator consumes. It is
// implemented by scene.Scene; the indirection keeps this package free of a
// dependency on scene construction.
type Scene interface {
	// GetRoot returns the intersection root, normally a BVH over all objects
	GetRoot() geometry.Hittable

	// GetLights returns the emissive primitives used for importance sampling
	GetLights() []geometry.Sampleable

	// GetBackground returns the sky gradient evaluated for escaped rays
	GetBackground() Background
}

// Background is a vertical gradient between two colors. A solid background
// uses the same color for both ends.
type Background struct {
	Bottom core.Vec3
	Top    core.Vec3
}

// NewGradientBackground creates a sky gradient from a bottom and top color
func NewGradientBackground(bottom, top core.Vec3) Background {
	return Background{Bottom: bottom, Top: top}
}

// NewSolidBackground creates a uniform background
func NewSolidBackground(color core.Vec3) Background {
	return Background{Bottom: color, Top: color}
}

// Color evaluates the background for a ray direction, blending on the
// vertical component of the normalized direction
func (b Background) Color(direction core.Vec3) core.Vec3 {
	t := 0.5 * (direction.Normalize().Y + 1.0)
	return b.Bottom.Lerp(b.Top, t)
}

// PathTracer estimates radiance along camera rays by recursive Monte Carlo
// path tracing with importance sampling toward the scene's lights
type PathTracer struct {
	scene    Scene
	maxDepth int
}

// NewPathTracer creates a path tracer with the given recursion depth cap
func NewPathTracer(scene Scene, maxDepth int) *PathTracer {
	return &PathTracer{scene: scene, maxDepth: maxDepth}
}

// RayColor evaluates the color carried by a single camera ray
func (pt *PathTracer) RayColor(ray core.Ray, sampler core.Sampler) core.Vec3 {
	return pt.rayColorRecursive(ray, sampler, pt.maxDepth)
}

func (pt *PathTracer) rayColorRecursive(ray core.Ray, sampler core.Sampler, depth int) core.Vec3 {
	// Bounce limit reached: no more light is gathered
	if depth <= 0 {
		return core.NewVec3(0, 0, 0)
	}

	// The lower bound avoids shadow acne from re-hitting the surface a
	// scattered ray just left
	hit, isHit := pt.scene.GetRoot().Hit(ray, core.NewInterval(0.001, math.Inf(1)), sampler)
	if !isHit {
		return pt.scene.GetBackground().Color(ray.Direction)
	}

	emitted := core.NewVec3(0, 0, 0)
	if emitter, isEmitter := hit.Material.(material.Emitter); isEmitter {
		emitted = emitter.Emit(*hit)
	}

	result, scattered := hit.Material.Scatter(ray, *hit, sampler)
	if !scattered {
		return emitted
	}

	// Specular materials have a delta distribution; follow the single
	// scattered ray without density weighting
	if result.IsSpecular() {
		bounce := pt.rayColorRecursive(result.Scattered, sampler, depth-1)
		return emitted.Add(result.Attenuation.MultiplyVec(bounce))
	}

	// Mix the material's own density with one biased toward the lights.
	// Each sampled direction is down-weighted by the mixture density, so
	// the estimator stays unbiased while rays reach emitters more often.
	var samplePDF core.PDF = result.PDF
	if lights := pt.scene.GetLights(); len(lights) > 0 {
		lightPDF := geometry.NewHittablePDF(lights, hit.Point, ray.Time)
		samplePDF = core.NewMixturePDF(lightPDF, result.PDF)
	}

	direction := samplePDF.Generate(sampler)
	scatteredRay := core.NewRayAt(hit.Point, direction, ray.Time)

	p := samplePDF.Value(direction)
	if p <= 0 {
		return emitted
	}

	pScatter := hit.Material.ScatteringPDF(ray, *hit, scatteredRay)
	bounce := pt.rayColorRecursive(scatteredRay, sampler, depth-1)

	contribution := result.Attenuation.MultiplyVec(bounce).Multiply(pScatter / p)
	return emitted.Add(contribution)
}

// RayNormalColor maps the surface normal at the first hit to a color,
// a debugging view that bypasses scattering entirely
func (pt *PathTracer) RayNormalColor(ray core.Ray, sampler core.Sampler) core.Vec3 {
	hit, isHit := pt.scene.GetRoot().Hit(ray, core.NewInterval(0.001, math.Inf(1)), sampler)
	if !isHit {
		return pt.scene.GetBackground().Color(ray.Direction)
	}
	return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}
