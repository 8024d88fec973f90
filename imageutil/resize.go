package imageutil

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

// ParseInterpolation maps "area" (also ""), "linear" and "nearest" to an
// Interpolation.
func ParseInterpolation(name string) (Interpolation, error) {
	switch strings.ToLower(name) {
	case "", "area":
		return InterpolationArea, nil
	case "linear":
		return InterpolationLinear, nil
	case "nearest":
		return InterpolationNearest, nil
	}
	return InterpolationArea, fmt.Errorf("unknown interpolation %q", name)
}

func (interp Interpolation) scaler() draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	dstRect := image.Rect(0, 0, width, height)
	interp.scaler().Scale(dst.RGBA, dstRect, img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// ResizeToWidth resizes an image to the specified width while maintaining
// aspect ratio. The height never drops below one pixel.
func ResizeToWidth(img *RGBAImage, width int, interp Interpolation) *RGBAImage {
	aspectRatio := float64(img.Width()) / float64(img.Height())
	height := int(float64(width) / aspectRatio)
	if height < 1 {
		height = 1
	}
	return Resize(img, width, height, interp)
}

// FitWidth downscales img with interp so it is at most maxWidth pixels
// wide. Images already narrow enough, and non-positive limits, return img
// unchanged.
func FitWidth(img *RGBAImage, maxWidth int, interp Interpolation) *RGBAImage {
	if maxWidth <= 0 || img.Width() <= maxWidth {
		return img
	}
	return ResizeToWidth(img, maxWidth, interp)
}
