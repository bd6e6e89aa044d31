package loaders

import (
	"fmt"
	"image"
	"io"
	"math"
	"os"

	// Register stdlib decoders for image.Decode
	_ "image/jpeg"
	_ "image/png"

	// Register extended format decoders
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/piemot/raytracing/pkg/core"
	"github.com/piemot/raytracing/pkg/material"
)

// ImageData holds a decoded image as linear-light RGB pixels, row-major from
// the top-left corner
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage reads and decodes an image file (PNG, JPEG, BMP or TIFF)
func LoadImage(path string) (*ImageData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer file.Close()

	data, err := DecodeImage(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return data, nil
}

// DecodeImage decodes any registered image format and converts the pixels
// from gamma-encoded to linear light, the space the renderer works in
func DecodeImage(r io.Reader) (*ImageData, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	pixels := make([]core.Vec3, 0, width*height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			red, green, blue, _ := img.At(x, y).RGBA()
			pixels = append(pixels, core.NewVec3(
				linearize(red),
				linearize(green),
				linearize(blue),
			))
		}
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}, nil
}

// linearize undoes the gamma-2 encoding the renderer applies on output
func linearize(channel uint32) float64 {
	v := float64(channel) / 65535.0
	return math.Pow(v, 2.0)
}

// ToTexture wraps the pixel data as a surface texture
func (d *ImageData) ToTexture() *material.ImageTexture {
	return material.NewImageTexture(d.Width, d.Height, d.Pixels)
}
