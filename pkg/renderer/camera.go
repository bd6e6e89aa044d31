package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/piemot/raytracing/pkg/core"
)

// AntialiasMode selects the sub-pixel jitter distribution used for
// antialiasing. The two modes are statistically equivalent in practice.
type AntialiasMode int

const (
	// AntialiasSquare jitters uniformly over the pixel square
	AntialiasSquare AntialiasMode = iota
	// AntialiasDisc jitters uniformly over a disc inscribed in the pixel
	AntialiasDisc
)

// CameraConfig holds the user-facing camera parameters. A config is validated
// as a whole before a Camera is built, so every invalid field is reported in
// one pass.
type CameraConfig struct {
	Width  int // Image width in pixels
	Height int // Image height in pixels

	Center core.Vec3 // Camera position
	LookAt core.Vec3 // Point the camera faces
	Up     core.Vec3 // World-space up reference

	VFov          float64 // Vertical field of view in degrees
	Aperture      float64 // Lens diameter; 0 disables depth of field
	FocusDistance float64 // Distance to the plane of perfect focus

	Antialias AntialiasMode
}

// DefaultCameraConfig returns a config with reasonable starting values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:         400,
		Height:        225,
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		Aperture:      0,
		FocusDistance: 1,
		Antialias:     AntialiasSquare,
	}
}

// Validate checks every field and returns all problems joined together
func (c CameraConfig) Validate() error {
	var errs []error

	if c.Width < 1 {
		errs = append(errs, fmt.Errorf("width must be at least 1, got %d", c.Width))
	}
	if c.Height < 1 {
		errs = append(errs, fmt.Errorf("height must be at least 1, got %d", c.Height))
	}
	if c.VFov <= 0 || c.VFov >= 180 {
		errs = append(errs, fmt.Errorf("vertical fov must be in (0, 180) degrees, got %v", c.VFov))
	}
	if c.Aperture < 0 {
		errs = append(errs, fmt.Errorf("aperture must not be negative, got %v", c.Aperture))
	}
	if c.FocusDistance <= 0 {
		errs = append(errs, fmt.Errorf("focus distance must be positive, got %v", c.FocusDistance))
	}
	if c.Center.Subtract(c.LookAt).NearZero() {
		errs = append(errs, errors.New("camera center and look-at point coincide"))
	}
	if c.Up.NearZero() {
		errs = append(errs, errors.New("up vector must not be zero"))
	} else if !c.Center.Subtract(c.LookAt).NearZero() {
		view := c.Center.Subtract(c.LookAt).Normalize()
		if view.Cross(c.Up.Normalize()).NearZero() {
			errs = append(errs, errors.New("up vector is parallel to the view direction"))
		}
	}

	return errors.Join(errs...)
}

// Camera generates primary rays for pixel coordinates. All viewport vectors
// are derived once at construction; ray generation is pure arithmetic plus
// the per-sample random draws.
type Camera struct {
	config CameraConfig

	pixel00     core.Vec3 // Center of the top-left pixel
	pixelDeltaU core.Vec3 // Offset between horizontally adjacent pixels
	pixelDeltaV core.Vec3 // Offset between vertically adjacent pixels

	defocusDiskU core.Vec3 // Lens disk horizontal radius vector
	defocusDiskV core.Vec3 // Lens disk vertical radius vector
}

// NewCamera validates the config and derives the viewport geometry
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid camera config: %w", err)
	}

	// Orthonormal basis: w points opposite the view direction
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Viewport spans on the focus plane; rays through a given pixel all
	// converge there, which is what makes the defocus blur work
	theta := config.VFov * math.Pi / 180
	viewportHeight := 2 * math.Tan(theta/2) * config.FocusDistance
	viewportWidth := viewportHeight * float64(config.Width) / float64(config.Height)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(config.Width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(config.Height))

	upperLeft := config.Center.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.Aperture / 2

	return &Camera{
		config:       config,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}, nil
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetRay generates a primary ray through pixel (i, j) with sub-pixel jitter,
// a lens-disk origin offset for depth of field, and a random shutter time
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := c.sampleJitter(sampler)
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	origin := c.config.Center
	if c.config.Aperture > 0 {
		lens := core.SamplePointInUnitDisk(sampler.Get2D())
		origin = origin.
			Add(c.defocusDiskU.Multiply(lens.X)).
			Add(c.defocusDiskV.Multiply(lens.Y))
	}

	return core.NewRayAt(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

// sampleJitter draws a sub-pixel offset in [-0.5, 0.5] per axis
func (c *Camera) sampleJitter(sampler core.Sampler) core.Vec2 {
	switch c.config.Antialias {
	case AntialiasDisc:
		disk := core.SamplePointInUnitDisk(sampler.Get2D())
		return core.NewVec2(disk.X/2, disk.Y/2)
	default:
		sample := sampler.Get2D()
		return core.NewVec2(sample.X-0.5, sample.Y-0.5)
	}
}
