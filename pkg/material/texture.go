package material

import (
	"math"

	"github.com/piemot/raytracing/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns the color at given UV coordinates and 3D point.
	// UV is used for surface-mapped textures, the point for spatial ones.
	Value(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides a uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker is a 3D checkerboard pattern alternating between two sub-textures.
// The parity is computed from all three spatial axes, so the pattern is tied
// to world space rather than the surface; wrapped onto curved surfaces this
// produces visible banding, which is the documented behavior.
type Checker struct {
	Scale float64
	Even  Texture
	Odd   Texture
}

// NewChecker creates a checkerboard texture from two sub-textures
func NewChecker(scale float64, even, odd Texture) *Checker {
	return &Checker{Scale: scale, Even: even, Odd: odd}
}

// NewSolidChecker creates a checkerboard texture from two solid colors
func NewSolidChecker(scale float64, even, odd core.Vec3) *Checker {
	return &Checker{Scale: scale, Even: NewSolidColor(even), Odd: NewSolidColor(odd)}
}

// Value selects a sub-texture by the parity of the floored, scaled
// spatial coordinates
func (c *Checker) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	invScale := 1.0 / c.Scale
	x := int(math.Floor(invScale * point.X))
	y := int(math.Floor(invScale * point.Y))
	z := int(math.Floor(invScale * point.Z))

	if (x+y+z)%2 == 0 {
		return c.Even.Value(uv, point)
	}
	return c.Odd.Value(uv, point)
}
