package scene

import (
	"fmt"

	"github.com/piemot/raytracing/pkg/core"
	"github.com/piemot/raytracing/pkg/geometry"
	"github.com/piemot/raytracing/pkg/integrator"
	"github.com/piemot/raytracing/pkg/loaders"
	"github.com/piemot/raytracing/pkg/material"
	"github.com/piemot/raytracing/pkg/renderer"
)

// TextureKind enumerates the texture variants of the scene description
type TextureKind int

const (
	TextureSolid TextureKind = iota
	TextureChecker
	TextureImage
)

// TextureSpec describes one named texture. Checker sub-textures refer to
// other named textures.
type TextureSpec struct {
	Kind TextureKind

	Color core.Vec3 // TextureSolid

	Scale float64 // TextureChecker
	Even  string  // TextureChecker: named texture reference
	Odd   string  // TextureChecker: named texture reference

	Image *loaders.ImageData // TextureImage
}

// SolidTexture creates a solid color texture spec
func SolidTexture(color core.Vec3) TextureSpec {
	return TextureSpec{Kind: TextureSolid, Color: color}
}

// SolidHexTexture creates a solid texture spec from a packed 0xRRGGBB color
func SolidHexTexture(hex uint32) TextureSpec {
	return TextureSpec{Kind: TextureSolid, Color: core.NewVec3FromHex(hex)}
}

// CheckerTexture creates a checkerboard texture spec over two named textures
func CheckerTexture(scale float64, even, odd string) TextureSpec {
	return TextureSpec{Kind: TextureChecker, Scale: scale, Even: even, Odd: odd}
}

// ImageTexture creates an image texture spec from decoded image data
func ImageTexture(img *loaders.ImageData) TextureSpec {
	return TextureSpec{Kind: TextureImage, Image: img}
}

// MaterialKind enumerates the material variants of the scene description.
// SolidColor and ColoredLight are shortcuts that expand to a Lambertian or
// DiffuseLight with an anonymous solid texture.
type MaterialKind int

const (
	MaterialLambertian MaterialKind = iota
	MaterialMetal
	MaterialDielectric
	MaterialDiffuseLight
	MaterialIsotropic
	MaterialSolidColor
	MaterialColoredLight
)

// MaterialSpec describes one named material
type MaterialSpec struct {
	Kind MaterialKind

	Texture string // Named texture reference (Lambertian, DiffuseLight, Isotropic)

	Color           core.Vec3 // Metal albedo; SolidColor / ColoredLight shortcut color
	Fuzz            float64   // Metal
	RefractiveIndex float64   // Dielectric
	Brightness      float64   // DiffuseLight / ColoredLight; 0 means 1
}

// ObjectKind enumerates the object variants of the scene description
type ObjectKind int

const (
	ObjectSphere ObjectKind = iota
	ObjectParallelogram
	ObjectTriangle
	ObjectDisc
	ObjectBox
	ObjectConstantMedium
)

// ObjectSpec describes one object. Translate and RotateY wrap the built
// object in instancing transforms; a ConstantMedium wraps its Boundary spec.
type ObjectSpec struct {
	Kind     ObjectKind
	Material string // Named material reference

	Center core.Vec3 // Sphere
	Radius float64   // Sphere, Disc
	Motion core.Vec3 // Sphere: displacement over the shutter interval

	Corner core.Vec3 // Quad family
	U      core.Vec3 // Quad family
	V      core.Vec3 // Quad family

	Min core.Vec3 // Box
	Max core.Vec3 // Box

	Density  float64     // ConstantMedium
	Boundary *ObjectSpec // ConstantMedium

	RotateY   float64   // Degrees; applied before translation
	Translate core.Vec3 // Applied last
}

// SceneDescription is the in-memory declarative scene model: named textures
// and materials plus an object list. Build resolves every reference and
// validates every parameter before any rendering begins; a malformed scene
// is a fatal error, never a partial render.
type SceneDescription struct {
	Textures  map[string]TextureSpec
	Materials map[string]MaterialSpec
	Objects   []ObjectSpec

	Camera     renderer.CameraConfig
	Sampling   renderer.SamplingConfig
	Background integrator.Background
}

// NewSceneDescription creates an empty description with default camera,
// sampling and sky settings
func NewSceneDescription() *SceneDescription {
	return &SceneDescription{
		Textures:  make(map[string]TextureSpec),
		Materials: make(map[string]MaterialSpec),
		Camera:    renderer.DefaultCameraConfig(),
		Sampling:  renderer.DefaultSamplingConfig(),
		Background: integrator.NewGradientBackground(
			core.NewVec3(1, 1, 1),
			core.NewVec3(0.5, 0.7, 1.0),
		),
	}
}

// Build resolves the description into a renderable Scene. Objects with
// emissive materials that support importance sampling are registered as
// lights automatically.
func (d *SceneDescription) Build() (*Scene, error) {
	if err := d.Camera.Validate(); err != nil {
		return nil, fmt.Errorf("invalid camera config: %w", err)
	}
	if err := d.Sampling.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sampling config: %w", err)
	}

	builder := &sceneBuilder{
		description: d,
		textures:    make(map[string]material.Texture),
		materials:   make(map[string]material.Material),
	}

	scn := NewScene(d.Camera)
	scn.Sampling = d.Sampling
	scn.Background = d.Background

	for i, spec := range d.Objects {
		obj, emissive, err := builder.buildObject(spec)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}

		if sampleable, canSample := obj.(geometry.Sampleable); emissive && canSample {
			scn.AddLight(sampleable)
		} else {
			scn.Add(obj)
		}
	}

	scn.Preprocess()
	return scn, nil
}

// sceneBuilder caches resolved textures and materials across object builds
type sceneBuilder struct {
	description *SceneDescription
	textures    map[string]material.Texture
	materials   map[string]material.Material
	resolving   []string // Checker reference chain, for cycle detection
}

func (b *sceneBuilder) buildTexture(name string) (material.Texture, error) {
	if tex, cached := b.textures[name]; cached {
		return tex, nil
	}

	spec, known := b.description.Textures[name]
	if !known {
		return nil, fmt.Errorf("unknown texture %q", name)
	}

	for _, pending := range b.resolving {
		if pending == name {
			return nil, fmt.Errorf("texture %q references itself", name)
		}
	}
	b.resolving = append(b.resolving, name)
	defer func() { b.resolving = b.resolving[:len(b.resolving)-1] }()

	var tex material.Texture
	switch spec.Kind {
	case TextureSolid:
		tex = material.NewSolidColor(spec.Color)

	case TextureChecker:
		if spec.Scale <= 0 {
			return nil, fmt.Errorf("texture %q: checker scale must be positive, got %v", name, spec.Scale)
		}
		even, err := b.buildTexture(spec.Even)
		if err != nil {
			return nil, fmt.Errorf("texture %q: %w", name, err)
		}
		odd, err := b.buildTexture(spec.Odd)
		if err != nil {
			return nil, fmt.Errorf("texture %q: %w", name, err)
		}
		tex = material.NewChecker(spec.Scale, even, odd)

	case TextureImage:
		if spec.Image == nil {
			return nil, fmt.Errorf("texture %q: image data missing", name)
		}
		tex = spec.Image.ToTexture()

	default:
		return nil, fmt.Errorf("texture %q: unknown kind %d", name, spec.Kind)
	}

	b.textures[name] = tex
	return tex, nil
}

// buildMaterial resolves a named material; the second result reports whether
// the material emits light
func (b *sceneBuilder) buildMaterial(name string) (material.Material, bool, error) {
	if mat, cached := b.materials[name]; cached {
		_, emissive := mat.(material.Emitter)
		return mat, emissive, nil
	}

	spec, known := b.description.Materials[name]
	if !known {
		return nil, false, fmt.Errorf("unknown material %q", name)
	}

	brightness := spec.Brightness
	if brightness == 0 {
		brightness = 1
	}

	var mat material.Material
	switch spec.Kind {
	case MaterialLambertian:
		tex, err := b.buildTexture(spec.Texture)
		if err != nil {
			return nil, false, fmt.Errorf("material %q: %w", name, err)
		}
		mat = material.NewTexturedLambertian(tex)

	case MaterialMetal:
		mat = material.NewMetal(spec.Color, spec.Fuzz)

	case MaterialDielectric:
		if spec.RefractiveIndex <= 0 {
			return nil, false, fmt.Errorf("material %q: refractive index must be positive, got %v", name, spec.RefractiveIndex)
		}
		mat = material.NewDielectric(spec.RefractiveIndex)

	case MaterialDiffuseLight:
		tex, err := b.buildTexture(spec.Texture)
		if err != nil {
			return nil, false, fmt.Errorf("material %q: %w", name, err)
		}
		light := material.NewTexturedDiffuseLight(tex)
		light.Brightness = brightness
		mat = light

	case MaterialIsotropic:
		tex, err := b.buildTexture(spec.Texture)
		if err != nil {
			return nil, false, fmt.Errorf("material %q: %w", name, err)
		}
		mat = material.NewTexturedIsotropic(tex)

	case MaterialSolidColor:
		mat = material.NewLambertian(spec.Color)

	case MaterialColoredLight:
		mat = material.NewScaledDiffuseLight(spec.Color, brightness)

	default:
		return nil, false, fmt.Errorf("material %q: unknown kind %d", name, spec.Kind)
	}

	b.materials[name] = mat
	_, emissive := mat.(material.Emitter)
	return mat, emissive, nil
}

// buildObject resolves one object spec; the second result reports whether the
// object's material emits light
func (b *sceneBuilder) buildObject(spec ObjectSpec) (geometry.Hittable, bool, error) {
	var obj geometry.Hittable
	emissive := false

	if spec.Kind == ObjectConstantMedium {
		if spec.Boundary == nil {
			return nil, false, fmt.Errorf("constant medium needs a boundary object")
		}
		if spec.Density <= 0 {
			return nil, false, fmt.Errorf("constant medium density must be positive, got %v", spec.Density)
		}

		boundary, _, err := b.buildObject(*spec.Boundary)
		if err != nil {
			return nil, false, fmt.Errorf("constant medium boundary: %w", err)
		}

		obj, err = b.buildMedium(spec, boundary)
		if err != nil {
			return nil, false, err
		}
		return b.wrapInstancing(spec, obj), false, nil
	}

	mat, matEmissive, err := b.buildMaterial(spec.Material)
	if err != nil {
		return nil, false, err
	}
	emissive = matEmissive

	switch spec.Kind {
	case ObjectSphere:
		if spec.Radius <= 0 {
			return nil, false, fmt.Errorf("sphere radius must be positive, got %v", spec.Radius)
		}
		if spec.Motion.NearZero() {
			obj = geometry.NewSphere(spec.Center, spec.Radius, mat)
		} else {
			obj = geometry.NewMovingSphere(spec.Center, spec.Motion, spec.Radius, mat)
		}

	case ObjectParallelogram, ObjectTriangle, ObjectDisc:
		if spec.U.Cross(spec.V).NearZero() {
			return nil, false, fmt.Errorf("quad edge vectors are degenerate (u=%v, v=%v)", spec.U, spec.V)
		}
		switch spec.Kind {
		case ObjectParallelogram:
			obj = geometry.NewParallelogram(spec.Corner, spec.U, spec.V, mat)
		case ObjectTriangle:
			obj = geometry.NewTriangle(spec.Corner, spec.U, spec.V, mat)
		default:
			if spec.Radius <= 0 {
				return nil, false, fmt.Errorf("disc radius must be positive, got %v", spec.Radius)
			}
			obj = geometry.NewDisc(spec.Corner, spec.U, spec.V, spec.Radius, mat)
		}

	case ObjectBox:
		if spec.Min.Subtract(spec.Max).NearZero() {
			return nil, false, fmt.Errorf("box corners coincide at %v", spec.Min)
		}
		obj = geometry.NewBox(spec.Min, spec.Max, mat)

	default:
		return nil, false, fmt.Errorf("unknown object kind %d", spec.Kind)
	}

	return b.wrapInstancing(spec, obj), emissive, nil
}

// buildMedium resolves the medium's phase-function color. The referenced
// material must be Isotropic or the SolidColor shortcut.
func (b *sceneBuilder) buildMedium(spec ObjectSpec, boundary geometry.Hittable) (geometry.Hittable, error) {
	mat, known := b.description.Materials[spec.Material]
	if !known {
		return nil, fmt.Errorf("unknown material %q", spec.Material)
	}

	switch mat.Kind {
	case MaterialIsotropic:
		tex, err := b.buildTexture(mat.Texture)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", spec.Material, err)
		}
		return geometry.NewTexturedConstantMedium(boundary, spec.Density, tex), nil
	case MaterialSolidColor:
		return geometry.NewConstantMedium(boundary, spec.Density, mat.Color), nil
	default:
		return nil, fmt.Errorf("material %q: a constant medium needs an isotropic or solid-color material", spec.Material)
	}
}

// wrapInstancing applies the optional rotation then translation
func (b *sceneBuilder) wrapInstancing(spec ObjectSpec, obj geometry.Hittable) geometry.Hittable {
	if spec.RotateY != 0 {
		obj = geometry.NewRotateY(obj, spec.RotateY)
	}
	if !spec.Translate.NearZero() {
		obj = geometry.NewTranslate(obj, spec.Translate)
	}
	return obj
}
