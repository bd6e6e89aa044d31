package core

import "math"

// PDF describes a probability density over scattering directions.
// Value evaluates the density for a direction; Generate draws a direction
// distributed according to that density.
type PDF interface {
	Value(direction Vec3) float64
	Generate(sampler Sampler) Vec3
}

// SpherePDF is the uniform density over the full sphere of directions
type SpherePDF struct{}

// NewSpherePDF creates a uniform sphere PDF
func NewSpherePDF() SpherePDF {
	return SpherePDF{}
}

// Value returns the constant density 1/(4π)
func (SpherePDF) Value(direction Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate draws a uniform direction on the unit sphere
func (SpherePDF) Generate(sampler Sampler) Vec3 {
	return SampleOnUnitSphere(sampler.Get2D())
}

// CosinePDF is the cosine-weighted density over the hemisphere around a normal
type CosinePDF struct {
	basis ONB
}

// NewCosinePDF creates a cosine-weighted PDF around the given normal
func NewCosinePDF(normal Vec3) CosinePDF {
	return CosinePDF{basis: NewONB(normal)}
}

// Value returns cos(θ)/π for directions above the surface, 0 below
func (p CosinePDF) Value(direction Vec3) float64 {
	cosTheta := direction.Normalize().Dot(p.basis.W)
	return math.Max(0, cosTheta/math.Pi)
}

// Generate draws a cosine-weighted direction about the basis normal
func (p CosinePDF) Generate(sampler Sampler) Vec3 {
	return p.basis.Transform(SampleCosineDirection(sampler.Get2D()))
}

// MixturePDF samples from a weighted mixture of component densities.
// The mixture's density is the weighted sum of the component densities, so
// importance sampling with it remains unbiased.
type MixturePDF struct {
	pdfs    []PDF
	weights []float64
}

// NewMixturePDF creates an equally weighted mixture of the given PDFs
func NewMixturePDF(pdfs ...PDF) MixturePDF {
	weights := make([]float64, len(pdfs))
	for i := range weights {
		weights[i] = 1.0 / float64(len(pdfs))
	}
	return MixturePDF{pdfs: pdfs, weights: weights}
}

// NewWeightedMixturePDF creates a mixture with explicit weights.
// Weights are normalized to sum to 1.
func NewWeightedMixturePDF(pdfs []PDF, weights []float64) MixturePDF {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	normalized := make([]float64, len(weights))
	for i, w := range weights {
		normalized[i] = w / total
	}
	return MixturePDF{pdfs: pdfs, weights: normalized}
}

// Value returns the weighted sum of the component densities
func (m MixturePDF) Value(direction Vec3) float64 {
	total := 0.0
	for i, pdf := range m.pdfs {
		total += m.weights[i] * pdf.Value(direction)
	}
	return total
}

// Generate picks a component in proportion to its weight and draws from it
func (m MixturePDF) Generate(sampler Sampler) Vec3 {
	u := sampler.Get1D()
	sum := 0.0
	for i, pdf := range m.pdfs {
		sum += m.weights[i]
		if u < sum {
			return pdf.Generate(sampler)
		}
	}
	// Guard against accumulated floating point error in the weight sum
	return m.pdfs[len(m.pdfs)-1].Generate(sampler)
}
