package geometry

import (
	"sort"

	"github.com/piemot/raytracing/pkg/core"
	"github.com/piemot/raytracing/pkg/material"
)

// BVHNode is an internal node of the Bounding Volume Hierarchy. It owns
// exactly two children and a box equal to the union of their boxes, computed
// once bottom-up at construction.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	bbox  core.AABB
}

// BVH is a Bounding Volume Hierarchy for fast ray-object intersection.
// It is built once at scene-load time and read-only afterwards, so it may be
// shared freely across rendering workers.
type BVH struct {
	root Hittable
	bbox core.AABB
}

// NewBVH constructs a BVH from a slice of objects
func NewBVH(objects []Hittable) *BVH {
	if len(objects) == 0 {
		return &BVH{bbox: core.EmptyAABB()}
	}

	// Copy so sorting during construction never mutates the caller's slice
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	root := buildBVH(objectsCopy)
	return &BVH{root: root, bbox: root.BoundingBox()}
}

// buildBVH recursively splits objects at the median of the longest axis of
// their combined bounding box
func buildBVH(objects []Hittable) Hittable {
	if len(objects) == 1 {
		return objects[0]
	}

	bbox := objects[0].BoundingBox()
	for _, obj := range objects[1:] {
		bbox = bbox.Union(obj.BoundingBox())
	}

	if len(objects) == 2 {
		return &BVHNode{Left: objects[0], Right: objects[1], bbox: bbox}
	}

	axis := bbox.LongestAxis()
	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].BoundingBox().AxisInterval(axis).Min <
			objects[j].BoundingBox().AxisInterval(axis).Min
	})

	mid := len(objects) / 2
	left := buildBVH(objects[:mid])
	right := buildBVH(objects[mid:])

	return &BVHNode{Left: left, Right: right, bbox: bbox}
}

// Hit tests a ray against the whole hierarchy
func (bvh *BVH) Hit(ray core.Ray, tRange core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	if bvh.root == nil {
		return nil, false
	}
	return bvh.root.Hit(ray, tRange, sampler)
}

// BoundingBox returns the box enclosing the whole hierarchy
func (bvh *BVH) BoundingBox() core.AABB {
	return bvh.bbox
}

// Hit tests the node's box first; a box miss means every descendant misses.
// Otherwise both children are tested, the second against an interval narrowed
// by the first child's hit, and the closer hit wins.
func (n *BVHNode) Hit(ray core.Ray, tRange core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.bbox.Hit(ray, tRange) {
		return nil, false
	}

	hitLeft, isLeftHit := n.Left.Hit(ray, tRange, sampler)
	if isLeftHit {
		tRange = core.NewInterval(tRange.Min, hitLeft.T)
	}

	hitRight, isRightHit := n.Right.Hit(ray, tRange, sampler)
	if isRightHit {
		return hitRight, true
	}
	return hitLeft, isLeftHit
}

// BoundingBox returns the union of the children's boxes
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}
