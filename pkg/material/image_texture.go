package material

import (
	"github.com/piemot/raytracing/pkg/core"
)

// ImageTexture maps an image onto a surface via UV coordinates
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture from a row-major pixel array
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Value samples the image at the given UV coordinates using nearest-neighbor
// filtering. V is inverted so that (0,0) maps to the bottom-left of the image.
func (t *ImageTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 {
		// Solid cyan marks a missing image
		return core.NewVec3(0, 1, 1)
	}

	u := core.NewInterval(0, 1).Clamp(uv.X)
	v := core.NewInterval(0, 1).Clamp(uv.Y)

	x := int(u * float64(t.Width-1))
	y := int((1.0 - v) * float64(t.Height-1))

	return t.Pixels[y*t.Width+x]
}

// NewUVDebugTexture creates a texture showing UV coordinates as colors.
// U maps to red, V to green.
func NewUVDebugTexture(width, height int) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(width-1)
			v := 1.0 - float64(y)/float64(height-1)
			pixels[y*width+x] = core.NewVec3(u, v, 0.0)
		}
	}

	return NewImageTexture(width, height, pixels)
}
