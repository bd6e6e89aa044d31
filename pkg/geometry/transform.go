package geometry

import (
	"math"

	"github.com/piemot/raytracing/pkg/core"
	"github.com/piemot/raytracing/pkg/material"
)

// Translate is an instance of a Hittable shifted by a fixed offset. Rays are
// moved into the object's local frame for the hit test and the resulting hit
// point is moved back into world space.
type Translate struct {
	Object Hittable
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps an object with a translation by offset
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Translate(offset),
	}
}

// Hit tests if a ray intersects with the translated object
func (tr *Translate) Hit(ray core.Ray, tRange core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	localRay := core.NewRayAt(ray.Origin.Subtract(tr.Offset), ray.Direction, ray.Time)

	hit, isHit := tr.Object.Hit(localRay, tRange, sampler)
	if !isHit {
		return nil, false
	}

	hit.Point = hit.Point.Add(tr.Offset)
	return hit, true
}

// BoundingBox returns the translated bounding box
func (tr *Translate) BoundingBox() core.AABB {
	return tr.bbox
}

// Rotate is an instance of a Hittable rotated about a principal axis through
// the world origin
type Rotate struct {
	Object   Hittable
	Axis     core.Axis
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotate wraps an object with a rotation of angleDegrees about the given
// axis
func NewRotate(object Hittable, axis core.Axis, angleDegrees float64) *Rotate {
	radians := angleDegrees * math.Pi / 180
	r := &Rotate{
		Object:   object,
		Axis:     axis,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	// The rotated box bounds the rotated corners of the original box
	corners := object.BoundingBox().Corners()
	rotated := make([]core.Vec3, 0, len(corners))
	for _, corner := range corners {
		rotated = append(rotated, r.toWorld(corner))
	}
	r.bbox = core.NewAABBFromPoints(rotated...)

	return r
}

// NewRotateY wraps an object with a rotation about the vertical axis, the
// common case for instancing boxes in room scenes
func NewRotateY(object Hittable, angleDegrees float64) *Rotate {
	return NewRotate(object, core.AxisY, angleDegrees)
}

func (r *Rotate) rotate(v core.Vec3, sin float64) core.Vec3 {
	cos := r.cosTheta
	switch r.Axis {
	case core.AxisX:
		return core.NewVec3(v.X, cos*v.Y-sin*v.Z, sin*v.Y+cos*v.Z)
	case core.AxisY:
		return core.NewVec3(cos*v.X+sin*v.Z, v.Y, -sin*v.X+cos*v.Z)
	default:
		return core.NewVec3(cos*v.X-sin*v.Y, sin*v.X+cos*v.Y, v.Z)
	}
}

func (r *Rotate) toLocal(v core.Vec3) core.Vec3 {
	return r.rotate(v, -r.sinTheta)
}

func (r *Rotate) toWorld(v core.Vec3) core.Vec3 {
	return r.rotate(v, r.sinTheta)
}

// Hit tests if a ray intersects with the rotated object
func (r *Rotate) Hit(ray core.Ray, tRange core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	localRay := core.NewRayAt(r.toLocal(ray.Origin), r.toLocal(ray.Direction), ray.Time)

	hit, isHit := r.Object.Hit(localRay, tRange, sampler)
	if !isHit {
		return nil, false
	}

	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the box enclosing the rotated object
func (r *Rotate) BoundingBox() core.AABB {
	return r.bbox
}
