package geometry

import (
	"math"

	"github.com/piemot/raytracing/pkg/core"
	"github.com/piemot/raytracing/pkg/material"
)

// QuadKind selects the interior predicate of a planar quad-family shape
type QuadKind int

const (
	KindParallelogram QuadKind = iota
	KindTriangle
	KindDisc
)

// Quad represents a planar shape spanned by a corner point Q and two edge
// vectors U and V. The kind decides which (α,β) plane coordinates count as
// inside: the full parallelogram, the triangle below the diagonal, or the
// disc of the given radius centred on Q.
type Quad struct {
	Q        core.Vec3 // Corner (or disc center)
	U        core.Vec3 // First edge vector
	V        core.Vec3 // Second edge vector
	Kind     QuadKind
	Radius   float64 // Disc radius in (α,β) space; unused for other kinds
	Material material.Material

	normal core.Vec3 // Unit plane normal, U × V normalized
	d      float64   // Plane equation constant: normal · Q
	w      core.Vec3 // Cached (U×V)/|U×V|² for planar coordinates
	area   float64
	bbox   core.AABB
}

// NewParallelogram creates a parallelogram with corner q and edge vectors u, v
func NewParallelogram(q, u, v core.Vec3, mat material.Material) *Quad {
	return newQuad(q, u, v, KindParallelogram, 0, mat)
}

// NewTriangle creates a triangle with corner q and edge vectors u, v
func NewTriangle(q, u, v core.Vec3, mat material.Material) *Quad {
	return newQuad(q, u, v, KindTriangle, 0, mat)
}

// NewTriangleFromPoints creates a triangle from three vertices
func NewTriangleFromPoints(a, b, c core.Vec3, mat material.Material) *Quad {
	return NewTriangle(a, b.Subtract(a), c.Subtract(a), mat)
}

// NewDisc creates a disc centred on q with radial vectors u, v and the given
// radius in radial-vector units
func NewDisc(q, u, v core.Vec3, radius float64, mat material.Material) *Quad {
	return newQuad(q, u, v, KindDisc, radius, mat)
}

func newQuad(q, u, v core.Vec3, kind QuadKind, radius float64, mat material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	quad := &Quad{
		Q:        q,
		U:        u,
		V:        v,
		Kind:     kind,
		Radius:   radius,
		Material: mat,
		normal:   normal,
		d:        normal.Dot(q),
		w:        n.Multiply(1.0 / n.Dot(n)),
	}

	switch kind {
	case KindTriangle:
		quad.area = n.Length() / 2
	case KindDisc:
		quad.area = math.Pi * radius * radius * n.Length()
	default:
		quad.area = n.Length()
	}

	quad.bbox = quad.computeBoundingBox()
	return quad
}

func (q *Quad) computeBoundingBox() core.AABB {
	switch q.Kind {
	case KindDisc:
		ur := q.U.Multiply(q.Radius)
		vr := q.V.Multiply(q.Radius)
		return core.NewAABBFromPoints(
			q.Q.Add(ur).Add(vr),
			q.Q.Add(ur).Subtract(vr),
			q.Q.Subtract(ur).Add(vr),
			q.Q.Subtract(ur).Subtract(vr),
		)
	case KindTriangle:
		return core.NewAABBFromPoints(q.Q, q.Q.Add(q.U), q.Q.Add(q.V))
	default:
		return core.NewAABBFromPoints(q.Q, q.Q.Add(q.U), q.Q.Add(q.V), q.Q.Add(q.U).Add(q.V))
	}
}

// contains reports whether plane coordinates (α,β) lie inside the shape
func (q *Quad) contains(alpha, beta float64) bool {
	switch q.Kind {
	case KindTriangle:
		return alpha > 0 && beta > 0 && alpha+beta < 1
	case KindDisc:
		return math.Sqrt(alpha*alpha+beta*beta) < q.Radius
	default:
		unit := core.NewInterval(0, 1)
		return unit.Contains(alpha) && unit.Contains(beta)
	}
}

// uv maps plane coordinates to surface texture coordinates
func (q *Quad) uv(alpha, beta float64) core.Vec2 {
	if q.Kind == KindDisc {
		// Map the disc's [-R,R] coordinates onto [0,1]
		return core.NewVec2(alpha/(2*q.Radius)+0.5, beta/(2*q.Radius)+0.5)
	}
	return core.NewVec2(alpha, beta)
}

// Hit tests if a ray intersects with the shape
func (q *Quad) Hit(ray core.Ray, tRange core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	denom := q.normal.Dot(ray.Direction)

	// Parallel rays never hit the plane
	if math.Abs(denom) < 1e-8 {
		return nil, false
	}

	t := (q.d - q.normal.Dot(ray.Origin)) / denom
	if !tRange.Contains(t) {
		return nil, false
	}

	// Express the planar hit point in (α,β) coordinates over U and V
	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Q)
	alpha := q.w.Dot(planar.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planar))

	if !q.contains(alpha, beta) {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		UV:       q.uv(alpha, beta),
		Material: q.Material,
	}
	hit.SetFaceNormal(ray, q.normal)

	return hit, true
}

// BoundingBox returns the padded box enclosing the shape's corners
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}

// Area returns the surface area of the shape
func (q *Quad) Area() float64 {
	return q.area
}

// PDFValue implements the Sampleable interface by converting the shape's
// uniform area density to a solid-angle density at origin
func (q *Quad) PDFValue(origin, direction core.Vec3, time float64) float64 {
	ray := core.NewRayAt(origin, direction, time)
	hit, isHit := q.Hit(ray, core.NewInterval(0.001, math.Inf(1)), nil)
	if !isHit {
		return 0
	}

	distSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(q.normal)) / direction.Length()
	if cosine < 1e-8 {
		return 0
	}

	return distSquared / (cosine * q.area)
}

// RandomDirection implements the Sampleable interface by sampling a uniform
// point on the shape
func (q *Quad) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()

	var alpha, beta float64
	switch q.Kind {
	case KindTriangle:
		alpha, beta = sample.X, sample.Y
		if alpha+beta > 1 {
			// Fold samples from the far half back into the triangle
			alpha, beta = 1-alpha, 1-beta
		}
	case KindDisc:
		disk := core.SamplePointInUnitDisk(sample)
		alpha, beta = disk.X*q.Radius, disk.Y*q.Radius
	default:
		alpha, beta = sample.X, sample.Y
	}

	point := q.Q.Add(q.U.Multiply(alpha)).Add(q.V.Multiply(beta))
	return point.Subtract(origin)
}
