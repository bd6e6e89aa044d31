package scene

import (
	"github.com/piemot/raytracing/pkg/core"
	"github.com/piemot/raytracing/pkg/integrator"
	"github.com/piemot/raytracing/pkg/renderer"
)

func cornellBase() *SceneDescription {
	d := NewSceneDescription()

	d.Camera = renderer.CameraConfig{
		Width:         600,
		Height:        600,
		Center:        core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		Aperture:      0,
		FocusDistance: 800,
		Antialias:     renderer.AntialiasSquare,
	}
	d.Background = integrator.NewSolidBackground(core.NewVec3(0, 0, 0))

	d.Materials["white"] = MaterialSpec{Kind: MaterialSolidColor, Color: core.NewVec3(0.73, 0.73, 0.73)}
	d.Materials["red"] = MaterialSpec{Kind: MaterialSolidColor, Color: core.NewVec3(0.65, 0.05, 0.05)}
	d.Materials["green"] = MaterialSpec{Kind: MaterialSolidColor, Color: core.NewVec3(0.12, 0.45, 0.15)}
	d.Materials["light"] = MaterialSpec{Kind: MaterialColoredLight, Color: core.NewVec3(1, 1, 1), Brightness: 15}

	d.Objects = []ObjectSpec{
		// Walls
		{Kind: ObjectParallelogram, Material: "green", Corner: core.NewVec3(555, 0, 0), U: core.NewVec3(0, 555, 0), V: core.NewVec3(0, 0, 555)},
		{Kind: ObjectParallelogram, Material: "red", Corner: core.NewVec3(0, 0, 0), U: core.NewVec3(0, 555, 0), V: core.NewVec3(0, 0, 555)},
		{Kind: ObjectParallelogram, Material: "white", Corner: core.NewVec3(0, 0, 0), U: core.NewVec3(555, 0, 0), V: core.NewVec3(0, 0, 555)},
		{Kind: ObjectParallelogram, Material: "white", Corner: core.NewVec3(555, 555, 555), U: core.NewVec3(-555, 0, 0), V: core.NewVec3(0, 0, -555)},
		{Kind: ObjectParallelogram, Material: "white", Corner: core.NewVec3(0, 0, 555), U: core.NewVec3(555, 0, 0), V: core.NewVec3(0, 555, 0)},

		// Ceiling light, emitting downward
		{Kind: ObjectParallelogram, Material: "light", Corner: core.NewVec3(343, 554, 332), U: core.NewVec3(-130, 0, 0), V: core.NewVec3(0, 0, -105)},
	}

	return d
}

// CornellBox is the classic enclosed room: two boxes under a ceiling light
func CornellBox() *SceneDescription {
	d := cornellBase()

	d.Objects = append(d.Objects,
		ObjectSpec{
			Kind: ObjectBox, Material: "white",
			Min: core.NewVec3(0, 0, 0), Max: core.NewVec3(165, 330, 165),
			RotateY: 15, Translate: core.NewVec3(265, 0, 295),
		},
		ObjectSpec{
			Kind: ObjectBox, Material: "white",
			Min: core.NewVec3(0, 0, 0), Max: core.NewVec3(165, 165, 165),
			RotateY: -18, Translate: core.NewVec3(130, 0, 65),
		},
	)

	return d
}

// CornellSmoke replaces the two boxes with participating media: one dark
// smoke volume and one white fog volume
func CornellSmoke() *SceneDescription {
	d := cornellBase()

	d.Materials["smoke"] = MaterialSpec{Kind: MaterialIsotropic, Texture: "smoke-albedo"}
	d.Materials["fog"] = MaterialSpec{Kind: MaterialIsotropic, Texture: "fog-albedo"}
	d.Textures["smoke-albedo"] = SolidTexture(core.NewVec3(0, 0, 0))
	d.Textures["fog-albedo"] = SolidTexture(core.NewVec3(1, 1, 1))

	d.Objects = append(d.Objects,
		ObjectSpec{
			Kind: ObjectConstantMedium, Material: "smoke", Density: 0.01,
			Boundary: &ObjectSpec{
				Kind: ObjectBox, Material: "white",
				Min: core.NewVec3(0, 0, 0), Max: core.NewVec3(165, 330, 165),
				RotateY: 15, Translate: core.NewVec3(265, 0, 295),
			},
		},
		ObjectSpec{
			Kind: ObjectConstantMedium, Material: "fog", Density: 0.01,
			Boundary: &ObjectSpec{
				Kind: ObjectBox, Material: "white",
				Min: core.NewVec3(0, 0, 0), Max: core.NewVec3(165, 165, 165),
				RotateY: -18, Translate: core.NewVec3(130, 0, 65),
			},
		},
	)

	return d
}
