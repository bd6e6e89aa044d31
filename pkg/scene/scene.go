package scene

import (
	"github.com/piemot/raytracing/pkg/core"
	"github.com/piemot/raytracing/pkg/geometry"
	"github.com/piemot/raytracing/pkg/integrator"
	"github.com/piemot/raytracing/pkg/renderer"
)

// Scene holds everything needed to render: the object tree, the lights used
// for importance sampling, the background, and the camera and sampling
// configuration. After Preprocess the scene is read-only and safe to share
// across rendering workers.
type Scene struct {
	Objects    *geometry.HittableList
	Lights     []geometry.Sampleable
	Background integrator.Background
	Camera     renderer.CameraConfig
	Sampling   renderer.SamplingConfig

	root geometry.Hittable
}

// NewScene creates an empty scene with the classic white-to-blue sky
func NewScene(camera renderer.CameraConfig) *Scene {
	return &Scene{
		Objects: geometry.NewHittableList(),
		Background: integrator.NewGradientBackground(
			core.NewVec3(1, 1, 1),
			core.NewVec3(0.5, 0.7, 1.0),
		),
		Camera:   camera,
		Sampling: renderer.DefaultSamplingConfig(),
	}
}

// Add appends an object to the scene
func (s *Scene) Add(obj geometry.Hittable) {
	s.Objects.Add(obj)
	s.root = nil
}

// AddLight appends an emissive object and registers it for importance
// sampling
func (s *Scene) AddLight(obj geometry.Sampleable) {
	s.Objects.Add(obj)
	s.Lights = append(s.Lights, obj)
	s.root = nil
}

// Preprocess builds the BVH over the scene's objects. Rendering works
// without it but falls back to linear intersection testing.
func (s *Scene) Preprocess() {
	s.root = geometry.NewBVH(s.Objects.Objects)
}

// GetRoot returns the intersection root: the BVH if built, otherwise the
// plain object list
func (s *Scene) GetRoot() geometry.Hittable {
	if s.root != nil {
		return s.root
	}
	return s.Objects
}

// GetLights returns the objects registered for light importance sampling
func (s *Scene) GetLights() []geometry.Sampleable {
	return s.Lights
}

// GetBackground returns the scene's sky
func (s *Scene) GetBackground() integrator.Background {
	return s.Background
}

// GetCameraConfig returns the camera configuration
func (s *Scene) GetCameraConfig() renderer.CameraConfig {
	return s.Camera
}

// GetSamplingConfig returns the sampling configuration
func (s *Scene) GetSamplingConfig() renderer.SamplingConfig {
	return s.Sampling
}
