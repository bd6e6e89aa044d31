package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/piemot/raytracing/pkg/renderer"
	"github.com/piemot/raytracing/pkg/scene"
)

func main() {
	var (
		sceneName = flag.String("scene", "cornell", "scene to render: cornell, cornell-smoke, showcase")
		width     = flag.Int("width", 0, "override image width in pixels")
		height    = flag.Int("height", 0, "override image height in pixels")
		samples   = flag.Int("samples", 0, "override samples per pixel")
		depth     = flag.Int("depth", 0, "override maximum path depth")
		seed      = flag.Int64("seed", 0, "override the render seed")
		output    = flag.String("out", "render.png", "output PNG file")
	)
	flag.Parse()

	description, err := selectScene(*sceneName)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	if *width > 0 {
		description.Camera.Width = *width
	}
	if *height > 0 {
		description.Camera.Height = *height
	}
	if *samples > 0 {
		description.Sampling.SamplesPerPixel = *samples
	}
	if *depth > 0 {
		description.Sampling.MaxDepth = *depth
	}
	if *seed != 0 {
		description.Sampling.Seed = *seed
	}

	scn, err := description.Build()
	if err != nil {
		log.Fatalf("Error building scene: %v", err)
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	raytracer, err := renderer.NewRaytracer(scn, logger)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	logger.Printf("rendering %s at %dx%d, %d samples, depth %d",
		*sceneName, scn.Camera.Width, scn.Camera.Height,
		scn.Sampling.SamplesPerPixel, scn.Sampling.MaxDepth)

	start := time.Now()
	img := raytracer.Render()
	logger.Printf("render finished in %s", time.Since(start).Round(time.Millisecond))

	if err := writePNG(*output, img); err != nil {
		log.Fatalf("Error writing output: %v", err)
	}
	logger.Printf("wrote %s", *output)
}

func selectScene(name string) (*scene.SceneDescription, error) {
	switch name {
	case "cornell":
		return scene.CornellBox(), nil
	case "cornell-smoke":
		return scene.CornellSmoke(), nil
	case "showcase":
		return scene.Showcase(), nil
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
