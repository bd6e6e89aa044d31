package core

import "math"

// Interval represents an ordered range [Min, Max] of scalars, used both for
// ray-parameter domains and AABB axis extents. An empty interval has Min > Max.
type Interval struct {
	Min, Max float64
}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// NewIntervalOrdered creates an interval from two endpoints in either order
func NewIntervalOrdered(a, b float64) Interval {
	if a <= b {
		return Interval{Min: a, Max: b}
	}
	return Interval{Min: b, Max: a}
}

// EmptyInterval returns an interval containing nothing
func EmptyInterval() Interval {
	return Interval{Min: math.Inf(1), Max: math.Inf(-1)}
}

// UniverseInterval returns an interval containing everything
func UniverseInterval() Interval {
	return Interval{Min: math.Inf(-1), Max: math.Inf(1)}
}

// Size returns the width of the interval (negative if empty)
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// IsEmpty returns true if the interval contains nothing
func (i Interval) IsEmpty() bool {
	return i.Min > i.Max
}

// Contains returns true if t is within [Min, Max]
func (i Interval) Contains(t float64) bool {
	return i.Min <= t && t <= i.Max
}

// Surrounds returns true if t is strictly within (Min, Max)
func (i Interval) Surrounds(t float64) bool {
	return i.Min < t && t < i.Max
}

// Clamp returns t limited to [Min, Max]
func (i Interval) Clamp(t float64) float64 {
	if t < i.Min {
		return i.Min
	}
	if t > i.Max {
		return i.Max
	}
	return t
}

// Expand returns an interval widened by delta/2 on each side
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}

// Union returns the minimal interval enclosing both intervals
func (i Interval) Union(other Interval) Interval {
	return Interval{
		Min: math.Min(i.Min, other.Min),
		Max: math.Max(i.Max, other.Max),
	}
}

// Overlap returns the intersection of two intervals; the result is empty
// if they do not overlap
func (i Interval) Overlap(other Interval) Interval {
	return Interval{
		Min: math.Max(i.Min, other.Min),
		Max: math.Min(i.Max, other.Max),
	}
}
