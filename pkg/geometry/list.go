package geometry

import (
	"github.com/piemot/raytracing/pkg/core"
	"github.com/piemot/raytracing/pkg/material"
)

// HittableList is a composite of Hittables tested exhaustively in order.
// The BVH provides the same result set with logarithmic traversal cost.
type HittableList struct {
	Objects []Hittable
	bbox    core.AABB
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{bbox: core.EmptyAABB()}
	for _, obj := range objects {
		list.Add(obj)
	}
	return list
}

// Add appends an object and grows the list's bounding box
func (l *HittableList) Add(obj Hittable) {
	l.Objects = append(l.Objects, obj)
	if len(l.Objects) == 1 {
		l.bbox = obj.BoundingBox()
	} else {
		l.bbox = l.bbox.Union(obj.BoundingBox())
	}
}

// Hit tests all children and keeps the closest valid hit, narrowing the
// t-interval as hits are found so later children cannot accept a farther hit
func (l *HittableList) Hit(ray core.Ray, tRange core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tRange.Max

	for _, obj := range l.Objects {
		if hit, isHit := obj.Hit(ray, core.NewInterval(tRange.Min, closestSoFar), sampler); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of the children's boxes
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}
