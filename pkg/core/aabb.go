package core

import "math"

// Minimum slab thickness; planar shapes would otherwise produce
// zero-width intervals that the slab test cannot intersect reliably.
const aabbMinThickness = 0.0001

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// NewAABB creates a new AABB from per-axis intervals, widening any interval
// narrower than a minimum thickness
func NewAABB(x, y, z Interval) AABB {
	return AABB{
		X: padInterval(x),
		Y: padInterval(y),
		Z: padInterval(z),
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return EmptyAABB()
	}

	minPt := points[0]
	maxPt := points[0]
	for _, point := range points[1:] {
		minPt.X = math.Min(minPt.X, point.X)
		minPt.Y = math.Min(minPt.Y, point.Y)
		minPt.Z = math.Min(minPt.Z, point.Z)

		maxPt.X = math.Max(maxPt.X, point.X)
		maxPt.Y = math.Max(maxPt.Y, point.Y)
		maxPt.Z = math.Max(maxPt.Z, point.Z)
	}

	return NewAABB(
		NewInterval(minPt.X, maxPt.X),
		NewInterval(minPt.Y, maxPt.Y),
		NewInterval(minPt.Z, maxPt.Z),
	)
}

// EmptyAABB returns a box containing nothing
func EmptyAABB() AABB {
	return AABB{X: EmptyInterval(), Y: EmptyInterval(), Z: EmptyInterval()}
}

func padInterval(i Interval) Interval {
	if i.Size() < aabbMinThickness {
		return i.Expand(aabbMinThickness)
	}
	return i
}

// AxisInterval returns the extent of the box along the given axis
func (aabb AABB) AxisInterval(axis Axis) Interval {
	switch axis {
	case AxisX:
		return aabb.X
	case AxisY:
		return aabb.Y
	default:
		return aabb.Z
	}
}

// Hit tests if a ray intersects the box within tRange using the slab method.
// For each axis the candidate t-interval is intersected with the running
// interval; any empty result means a miss. A direction component of zero
// means the ray runs parallel to that slab: hit only if the origin lies
// within it.
func (aabb AABB) Hit(ray Ray, tRange Interval) bool {
	for _, axis := range Axes {
		ax := aabb.AxisInterval(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		if math.Abs(direction) < 1e-12 {
			if origin < ax.Min || origin > ax.Max {
				return false
			}
			continue
		}

		invDir := 1.0 / direction
		t0 := (ax.Min - origin) * invDir
		t1 := (ax.Max - origin) * invDir
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > tRange.Min {
			tRange.Min = t0
		}
		if t1 < tRange.Max {
			tRange.Max = t1
		}
		if tRange.Max <= tRange.Min {
			return false
		}
	}
	return true
}

// Union returns the minimal AABB enclosing both boxes
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: aabb.X.Union(other.X),
		Y: aabb.Y.Union(other.Y),
		Z: aabb.Z.Union(other.Z),
	}
}

// Center returns the center point of the box
func (aabb AABB) Center() Vec3 {
	return Vec3{
		X: (aabb.X.Min + aabb.X.Max) * 0.5,
		Y: (aabb.Y.Min + aabb.Y.Max) * 0.5,
		Z: (aabb.Z.Min + aabb.Z.Max) * 0.5,
	}
}

// Min returns the minimum corner of the box
func (aabb AABB) Min() Vec3 {
	return Vec3{X: aabb.X.Min, Y: aabb.Y.Min, Z: aabb.Z.Min}
}

// Max returns the maximum corner of the box
func (aabb AABB) Max() Vec3 {
	return Vec3{X: aabb.X.Max, Y: aabb.Y.Max, Z: aabb.Z.Max}
}

// Translate returns the box shifted by offset
func (aabb AABB) Translate(offset Vec3) AABB {
	return AABB{
		X: Interval{Min: aabb.X.Min + offset.X, Max: aabb.X.Max + offset.X},
		Y: Interval{Min: aabb.Y.Min + offset.Y, Max: aabb.Y.Max + offset.Y},
		Z: Interval{Min: aabb.Z.Min + offset.Z, Max: aabb.Z.Max + offset.Z},
	}
}

// LongestAxis returns the axis with the greatest extent
func (aabb AABB) LongestAxis() Axis {
	sx, sy, sz := aabb.X.Size(), aabb.Y.Size(), aabb.Z.Size()
	if sx > sy && sx > sz {
		return AxisX
	}
	if sy > sz {
		return AxisY
	}
	return AxisZ
}

// Corners returns the eight corner points of the box
func (aabb AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	i := 0
	for _, x := range [2]float64{aabb.X.Min, aabb.X.Max} {
		for _, y := range [2]float64{aabb.Y.Min, aabb.Y.Max} {
			for _, z := range [2]float64{aabb.Z.Min, aabb.Z.Max} {
				corners[i] = Vec3{X: x, Y: y, Z: z}
				i++
			}
		}
	}
	return corners
}
