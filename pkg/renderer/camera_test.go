package renderer

import (
	"math"
	"strings"
	"testing"

	"github.com/piemot/raytracing/pkg/core"
)

func validConfig() CameraConfig {
	config := DefaultCameraConfig()
	config.Width = 100
	config.Height = 100
	return config
}

func TestCameraConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CameraConfig)
		wantErr string
	}{
		{"valid", func(c *CameraConfig) {}, ""},
		{"zero width", func(c *CameraConfig) { c.Width = 0 }, "width"},
		{"negative height", func(c *CameraConfig) { c.Height = -1 }, "height"},
		{"zero fov", func(c *CameraConfig) { c.VFov = 0 }, "fov"},
		{"fov too wide", func(c *CameraConfig) { c.VFov = 180 }, "fov"},
		{"negative aperture", func(c *CameraConfig) { c.Aperture = -0.5 }, "aperture"},
		{"zero focus distance", func(c *CameraConfig) { c.FocusDistance = 0 }, "focus distance"},
		{"center equals look-at", func(c *CameraConfig) { c.LookAt = c.Center }, "coincide"},
		{"zero up", func(c *CameraConfig) { c.Up = core.NewVec3(0, 0, 0) }, "up vector"},
		{"up parallel to view", func(c *CameraConfig) {
			c.Center = core.NewVec3(0, 5, 0)
			c.LookAt = core.NewVec3(0, 0, 0)
			c.Up = core.NewVec3(0, 1, 0)
		}, "parallel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.mutate(&config)
			err := config.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestCameraConfig_Validate_CollectsAllErrors(t *testing.T) {
	config := validConfig()
	config.Width = 0
	config.VFov = -10
	config.FocusDistance = -1

	err := config.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, fragment := range []string{"width", "fov", "focus distance"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("error %q does not mention %q", err, fragment)
		}
	}
}

func TestNewCamera_RejectsInvalidConfig(t *testing.T) {
	config := validConfig()
	config.Width = 0
	if _, err := NewCamera(config); err == nil {
		t.Error("NewCamera should reject an invalid config")
	}
}

func TestCamera_GetRay_PointsTowardLookAt(t *testing.T) {
	config := validConfig()
	config.Center = core.NewVec3(0, 0, 5)
	config.LookAt = core.NewVec3(0, 0, 0)

	camera, err := NewCamera(config)
	if err != nil {
		t.Fatal(err)
	}
	sampler := core.NewSeededSampler(1)

	// The center pixel's ray direction is within a pixel's jitter of the
	// view axis
	ray := camera.GetRay(config.Width/2, config.Height/2, sampler)
	view := config.LookAt.Subtract(config.Center).Normalize()
	if ray.Direction.Normalize().Dot(view) < 0.99 {
		t.Errorf("center ray direction %v far from view axis %v", ray.Direction.Normalize(), view)
	}

	// With no aperture every ray starts at the camera center
	if ray.Origin != config.Center {
		t.Errorf("origin = %v, want %v", ray.Origin, config.Center)
	}
}

func TestCamera_GetRay_CornersDiverge(t *testing.T) {
	camera, err := NewCamera(validConfig())
	if err != nil {
		t.Fatal(err)
	}
	sampler := core.NewSeededSampler(1)

	topLeft := camera.GetRay(0, 0, sampler).Direction.Normalize()
	bottomRight := camera.GetRay(99, 99, sampler).Direction.Normalize()
	if topLeft.Dot(bottomRight) > 0.999 {
		t.Error("opposite corner rays should diverge")
	}
}

func TestCamera_GetRay_TimeWithinShutter(t *testing.T) {
	camera, err := NewCamera(validConfig())
	if err != nil {
		t.Fatal(err)
	}
	sampler := core.NewSeededSampler(3)

	for i := 0; i < 200; i++ {
		ray := camera.GetRay(10, 10, sampler)
		if ray.Time < 0 || ray.Time >= 1 {
			t.Fatalf("time = %v, want [0, 1)", ray.Time)
		}
	}
}

func TestCamera_GetRay_ApertureSpreadsOrigins(t *testing.T) {
	config := validConfig()
	config.Aperture = 0.5
	config.FocusDistance = 5

	camera, err := NewCamera(config)
	if err != nil {
		t.Fatal(err)
	}
	sampler := core.NewSeededSampler(5)

	spread := false
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(50, 50, sampler)
		offset := ray.Origin.Subtract(config.Center).Length()
		if offset > config.Aperture/2+1e-9 {
			t.Fatalf("origin offset %v exceeds the lens radius", offset)
		}
		if offset > 1e-6 {
			spread = true
		}
	}
	if !spread {
		t.Error("aperture should move ray origins off the camera center")
	}
}

func TestCamera_GetRay_JitterModes(t *testing.T) {
	for _, mode := range []AntialiasMode{AntialiasSquare, AntialiasDisc} {
		config := validConfig()
		config.Antialias = mode

		camera, err := NewCamera(config)
		if err != nil {
			t.Fatal(err)
		}
		sampler := core.NewSeededSampler(7)

		// Jittered rays through the same pixel differ slightly
		a := camera.GetRay(50, 50, sampler).Direction.Normalize()
		b := camera.GetRay(50, 50, sampler).Direction.Normalize()
		if a == b {
			t.Errorf("mode %d: expected jittered rays to differ", mode)
		}
		if a.Dot(b) < 0.99 {
			t.Errorf("mode %d: jitter moved the ray more than a pixel", mode)
		}
	}
}

func TestCamera_FovControlsViewport(t *testing.T) {
	narrow := validConfig()
	narrow.VFov = 20
	wide := validConfig()
	wide.VFov = 90

	narrowCam, err := NewCamera(narrow)
	if err != nil {
		t.Fatal(err)
	}
	wideCam, err := NewCamera(wide)
	if err != nil {
		t.Fatal(err)
	}
	sampler := core.NewSeededSampler(9)

	view := narrow.LookAt.Subtract(narrow.Center).Normalize()
	narrowCorner := narrowCam.GetRay(0, 0, sampler).Direction.Normalize()
	wideCorner := wideCam.GetRay(0, 0, sampler).Direction.Normalize()

	narrowAngle := math.Acos(narrowCorner.Dot(view))
	wideAngle := math.Acos(wideCorner.Dot(view))
	if wideAngle <= narrowAngle {
		t.Errorf("wide fov corner angle %v not larger than narrow %v", wideAngle, narrowAngle)
	}
}
