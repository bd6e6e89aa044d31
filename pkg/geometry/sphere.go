package geometry

import (
	"math"

	"github.com/piemot/raytracing/pkg/core"
	"github.com/piemot/raytracing/pkg/material"
)

// Sphere represents a sphere, optionally moving linearly across the shutter
// interval for motion blur
type Sphere struct {
	Center   core.Vec3 // Center at shutter-open time
	Motion   core.Vec3 // Displacement over the full shutter interval
	Radius   float64
	Material material.Material
	bbox     core.AABB
}

// NewSphere creates a stationary sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	s := &Sphere{Center: center, Radius: radius, Material: mat}
	s.bbox = sphereBox(center, radius)
	return s
}

// NewMovingSphere creates a sphere whose center moves linearly from center to
// center+motion over the shutter interval
func NewMovingSphere(center, motion core.Vec3, radius float64, mat material.Material) *Sphere {
	s := &Sphere{Center: center, Motion: motion, Radius: radius, Material: mat}
	// The box must cover the sphere across the whole shutter interval
	s.bbox = sphereBox(center, radius).Union(sphereBox(center.Add(motion), radius))
	return s
}

func sphereBox(center core.Vec3, radius float64) core.AABB {
	r := core.NewVec3(radius, radius, radius)
	return core.NewAABBFromPoints(center.Subtract(r), center.Add(r))
}

// CenterAt returns the sphere center at the given shutter time
func (s *Sphere) CenterAt(time float64) core.Vec3 {
	return s.Center.Add(s.Motion.Multiply(time))
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tRange core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	center := s.CenterAt(ray.Time)
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + 2ht + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !tRange.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !tRange.Surrounds(root) {
			return nil, false
		}
	}

	hit := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hit.Point.Subtract(center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)
	hit.UV = sphereUV(outwardNormal)

	return hit, true
}

// sphereUV maps a point on the unit sphere to (u,v) surface coordinates,
// u from the azimuthal angle and v from the polar angle
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi

	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// PDFValue implements the Sampleable interface using the solid angle of the
// cone subtended by the sphere. Only valid for origins outside the sphere.
func (s *Sphere) PDFValue(origin, direction core.Vec3, time float64) float64 {
	ray := core.NewRayAt(origin, direction, time)
	if _, isHit := s.Hit(ray, core.NewInterval(0.001, math.Inf(1)), nil); !isHit {
		return 0
	}

	distSquared := s.CenterAt(time).Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/distSquared)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)

	return 1 / solidAngle
}

// RandomDirection implements the Sampleable interface by sampling the cone
// of directions subtended by the sphere
func (s *Sphere) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	toCenter := s.Center.Subtract(origin)
	distSquared := toCenter.LengthSquared()

	sample := sampler.Get2D()
	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/distSquared)
	z := 1 + sample.Y*(cosThetaMax-1)

	phi := 2 * math.Pi * sample.X
	r := math.Sqrt(1 - z*z)
	local := core.NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)

	return core.NewONB(toCenter).Transform(local)
}
