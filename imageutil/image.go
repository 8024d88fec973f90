// Package imageutil provides the pixel model used by the brightness
// matcher: an RGB triple, an RGBA-backed image with row/column pixel access,
// loading and resizing helpers, and synthetic images for tests.
package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// RGBAImage wraps image.RGBA with convenience methods for pixel access.
// Its origin is always (0, 0).
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// RGBAImageFromImage converts any image.Image to RGBAImage, translating
// its bounds so the top-left pixel lands at (0, 0).
func RGBAImageFromImage(img image.Image) *RGBAImage {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return &RGBAImage{RGBA: rgba}
	}
	bounds := img.Bounds()
	rgba := NewRGBAImage(bounds.Dx(), bounds.Dy())
	draw.Draw(rgba.RGBA, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// GetRGB returns the RGB value at (x, y).
func (img *RGBAImage) GetRGB(x, y int) RGB {
	c := img.RGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// PixelAt returns the RGB value at the given row and column.
func (img *RGBAImage) PixelAt(row, col int) RGB {
	i := img.PixOffset(col, row)
	p := img.Pix[i : i+3 : i+3]
	return RGB{R: p[0], G: p[1], B: p[2]}
}

// SetRGB sets the RGB value at (x, y).
func (img *RGBAImage) SetRGB(x, y int, c RGB) {
	img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
}
