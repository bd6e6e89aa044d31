package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/piemot/raytracing/pkg/core"
	"github.com/piemot/raytracing/pkg/integrator"
)

// SamplingConfig controls the Monte Carlo sampling effort per pixel
type SamplingConfig struct {
	SamplesPerPixel int
	MaxDepth        int   // Path recursion cap
	Seed            int64 // Base seed; each row derives its own stream
}

// DefaultSamplingConfig returns a config suitable for preview renders
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            1,
	}
}

// Validate checks the sampling parameters
func (c SamplingConfig) Validate() error {
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("samples per pixel must be at least 1, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("max depth must be at least 1, got %d", c.MaxDepth)
	}
	return nil
}

// Scene provides everything the renderer needs: the integrator's view of the
// scene plus the camera and sampling setup. Implemented by scene.Scene.
type Scene interface {
	integrator.Scene

	GetCameraConfig() CameraConfig
	GetSamplingConfig() SamplingConfig
}

// Raytracer renders a scene into an image by sampling every pixel in
// parallel across a worker pool
type Raytracer struct {
	scene    Scene
	camera   *Camera
	tracer   *integrator.PathTracer
	sampling SamplingConfig
	pool     *WorkerPool
	logger   core.Logger
}

// NewRaytracer validates the scene's camera and sampling configuration and
// prepares a renderer. A nil logger disables progress reporting.
func NewRaytracer(scene Scene, logger core.Logger) (*Raytracer, error) {
	camera, err := NewCamera(scene.GetCameraConfig())
	if err != nil {
		return nil, err
	}

	sampling := scene.GetSamplingConfig()
	if err := sampling.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sampling config: %w", err)
	}

	return &Raytracer{
		scene:    scene,
		camera:   camera,
		tracer:   integrator.NewPathTracer(scene, sampling.MaxDepth),
		sampling: sampling,
		pool:     NewWorkerPool(0),
		logger:   logger,
	}, nil
}

// Camera returns the camera built from the scene's configuration
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// Render traces the full image and returns it. The scene is read-only during
// rendering; each row owns a deterministic random stream derived from the
// base seed, so repeated renders of the same scene are identical.
func (rt *Raytracer) Render() *image.RGBA {
	config := rt.camera.Config()
	img := image.NewRGBA(image.Rect(0, 0, config.Width, config.Height))

	rt.pool.Run(config.Height, func(row int) {
		sampler := core.NewSeededSampler(rt.sampling.Seed + int64(row))
		for i := 0; i < config.Width; i++ {
			img.SetRGBA(i, row, rt.renderPixel(i, row, sampler))
		}
		if rt.logger != nil && (row+1)%50 == 0 {
			rt.logger.Printf("rendered %d/%d rows", row+1, config.Height)
		}
	})

	return img
}

// renderPixel averages the configured number of independent samples
func (rt *Raytracer) renderPixel(i, j int, sampler core.Sampler) color.RGBA {
	sum := core.NewVec3(0, 0, 0)
	for s := 0; s < rt.sampling.SamplesPerPixel; s++ {
		ray := rt.camera.GetRay(i, j, sampler)
		sum = sum.Add(rt.tracer.RayColor(ray, sampler))
	}
	average := sum.Multiply(1.0 / float64(rt.sampling.SamplesPerPixel))
	return encodeColor(average)
}

// encodeColor converts a linear color to an 8-bit sRGB-ish pixel: gamma-2
// encoding, then clamping to [0, 1]
func encodeColor(linear core.Vec3) color.RGBA {
	encoded := linear.GammaCorrect(2.0).Clamp(0, 1)
	return color.RGBA{
		R: uint8(encoded.X * 255.999),
		G: uint8(encoded.Y * 255.999),
		B: uint8(encoded.Z * 255.999),
		A: 255,
	}
}
