package scene

import (
	"github.com/piemot/raytracing/pkg/core"
	"github.com/piemot/raytracing/pkg/renderer"
)

// Showcase is an open-sky scene exercising every primitive and material
// kind: checkered ground, glass, metal, a motion-blurred sphere, the quad
// family, and an area light
func Showcase() *SceneDescription {
	d := NewSceneDescription()

	d.Camera = renderer.CameraConfig{
		Width:         800,
		Height:        450,
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0.8, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          25,
		Aperture:      0.1,
		FocusDistance: 12,
		Antialias:     renderer.AntialiasDisc,
	}

	d.Textures["ground-even"] = SolidHexTexture(0x2d4739)
	d.Textures["ground-odd"] = SolidHexTexture(0xc9c2b5)
	d.Textures["ground"] = CheckerTexture(0.6, "ground-even", "ground-odd")

	d.Materials["ground"] = MaterialSpec{Kind: MaterialLambertian, Texture: "ground"}
	d.Materials["matte"] = MaterialSpec{Kind: MaterialSolidColor, Color: core.NewVec3FromHex(0x9b2d30)}
	d.Materials["glass"] = MaterialSpec{Kind: MaterialDielectric, RefractiveIndex: 1.5}
	d.Materials["steel"] = MaterialSpec{Kind: MaterialMetal, Color: core.NewVec3(0.7, 0.6, 0.5), Fuzz: 0.05}
	d.Materials["brass"] = MaterialSpec{Kind: MaterialMetal, Color: core.NewVec3FromHex(0xb5a642), Fuzz: 0.4}
	d.Materials["lamp"] = MaterialSpec{Kind: MaterialColoredLight, Color: core.NewVec3(1, 0.95, 0.85), Brightness: 6}

	d.Objects = []ObjectSpec{
		// Ground plane as a large parallelogram
		{Kind: ObjectParallelogram, Material: "ground", Corner: core.NewVec3(-50, 0, -50), U: core.NewVec3(100, 0, 0), V: core.NewVec3(0, 0, 100)},

		// Hero spheres
		{Kind: ObjectSphere, Material: "glass", Center: core.NewVec3(0, 1, 0), Radius: 1},
		{Kind: ObjectSphere, Material: "steel", Center: core.NewVec3(-2.5, 1, -1), Radius: 1},
		{Kind: ObjectSphere, Material: "matte", Center: core.NewVec3(2.5, 1, -1.5), Radius: 1},

		// Motion-blurred bouncing sphere
		{Kind: ObjectSphere, Material: "matte", Center: core.NewVec3(1.2, 0.3, 1.8), Radius: 0.3, Motion: core.NewVec3(0, 0.4, 0)},

		// Quad-family primitives
		{Kind: ObjectTriangle, Material: "brass", Corner: core.NewVec3(-4.5, 0, 1), U: core.NewVec3(1.4, 0, 0), V: core.NewVec3(0.7, 1.8, 0)},
		{Kind: ObjectDisc, Material: "brass", Corner: core.NewVec3(-1, 0.7, 2.2), U: core.NewVec3(0.7, 0, 0), V: core.NewVec3(0, 0.7, 0), Radius: 1},

		// A small rotated crate
		{Kind: ObjectBox, Material: "matte", Min: core.NewVec3(0, 0, 0), Max: core.NewVec3(0.8, 0.8, 0.8), RotateY: 30, Translate: core.NewVec3(3.4, 0, 1)},

		// Overhead area light
		{Kind: ObjectParallelogram, Material: "lamp", Corner: core.NewVec3(-1.5, 5, -1.5), U: core.NewVec3(3, 0, 0), V: core.NewVec3(0, 0, 3)},

		// A wisp of fog around the crate
		{
			Kind: ObjectConstantMedium, Material: "haze", Density: 0.2,
			Boundary: &ObjectSpec{Kind: ObjectSphere, Material: "matte", Center: core.NewVec3(3.4, 0.6, 1.4), Radius: 1.2},
		},
	}

	d.Materials["haze"] = MaterialSpec{Kind: MaterialSolidColor, Color: core.NewVec3(0.9, 0.9, 0.9)}

	return d
}
