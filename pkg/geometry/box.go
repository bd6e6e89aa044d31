package geometry

import (
	"github.com/piemot/raytracing/pkg/core"
	"github.com/piemot/raytracing/pkg/material"
)

// NewBox creates an axis-aligned box spanning the two opposite corners a and
// b, built from six parallelogram faces with outward-facing normals
func NewBox(a, b core.Vec3, mat material.Material) *HittableList {
	box := core.NewAABBFromPoints(a, b)
	minPt, maxPt := box.Min(), box.Max()

	dx := core.NewVec3(maxPt.X-minPt.X, 0, 0)
	dy := core.NewVec3(0, maxPt.Y-minPt.Y, 0)
	dz := core.NewVec3(0, 0, maxPt.Z-minPt.Z)

	return NewHittableList(
		NewParallelogram(core.NewVec3(minPt.X, minPt.Y, maxPt.Z), dx, dy, mat),              // front
		NewParallelogram(core.NewVec3(maxPt.X, minPt.Y, maxPt.Z), dz.Negate(), dy, mat),     // right
		NewParallelogram(core.NewVec3(maxPt.X, minPt.Y, minPt.Z), dx.Negate(), dy, mat),     // back
		NewParallelogram(core.NewVec3(minPt.X, minPt.Y, minPt.Z), dz, dy, mat),              // left
		NewParallelogram(core.NewVec3(minPt.X, maxPt.Y, maxPt.Z), dx, dz.Negate(), mat),     // top
		NewParallelogram(core.NewVec3(minPt.X, minPt.Y, minPt.Z), dx, dz, mat),              // bottom
	)
}
