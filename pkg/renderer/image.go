package renderer

import (
	"image"

	"github.com/kmander/go-pathtracer/pkg/core"
)

// Image is a flat row-major RGB pixel buffer, 3 bytes per pixel
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// NewImage creates a black image of the given dimensions
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}
}

// SetPixel writes a color with components in [0, 1] to the pixel at (x, y)
func (img *Image) SetPixel(x, y int, color core.Vec3) {
	offset := (y*img.Width + x) * 3
	img.Pix[offset] = uint8(255.99 * color.X)
	img.Pix[offset+1] = uint8(255.99 * color.Y)
	img.Pix[offset+2] = uint8(255.99 * color.Z)
}

// PixelAt returns the stored 8-bit channels of the pixel at (x, y)
func (img *Image) PixelAt(x, y int) (r, g, b uint8) {
	offset := (y*img.Width + x) * 3
	return img.Pix[offset], img.Pix[offset+1], img.Pix[offset+2]
}

// RGBA converts the buffer to a standard image.RGBA for encoding
func (img *Image) RGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := img.PixelAt(x, y)
			offset := out.PixOffset(x, y)
			out.Pix[offset] = r
			out.Pix[offset+1] = g
			out.Pix[offset+2] = b
			out.Pix[offset+3] = 255
		}
	}

	return out
}
