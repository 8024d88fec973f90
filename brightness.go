package img2ascii

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/wbrown/img2ascii/imageutil"
)

// Perceptual luma weights (Rec. 709).
const (
	lumaRed   = 0.2126
	lumaGreen = 0.7152
	lumaBlue  = 0.0722
)

// RGB is an 8-bit per channel color.
type RGB = imageutil.RGB

// Image is the read-only pixel source the engine partitions. Rows and
// columns are zero based; PixelAt is only called inside the image.
type Image interface {
	Width() int
	Height() int
	PixelAt(row, col int) RGB
}

var (
	black = RGB{}
	white = RGB{R: 255, G: 255, B: 255}
)

// Luminance returns the brightness of a pixel in [0, 1]. Pure black and
// pure white take the blue channel directly so both endpoints are exact.
func Luminance(c RGB) float64 {
	if c == black || c == white {
		return float64(c.B) / 255
	}
	lum := lumaRed*float64(c.R) + lumaGreen*float64(c.G) + lumaBlue*float64(c.B)
	return lum / 255
}

// AverageBrightness returns the mean Luminance over every pixel of img.
// An image with no pixels has brightness 0.
func AverageBrightness(img Image) float64 {
	w, h := img.Width(), img.Height()
	if w <= 0 || h <= 0 {
		return 0
	}
	var sum float64
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			sum += Luminance(img.PixelAt(row, col))
		}
	}
	return sum / float64(w*h)
}

// Fingerprint hashes an image's dimensions and pixel content with xxHash64.
// Images with equal dimensions and pixels share a fingerprint regardless
// of where they come from.
func Fingerprint(img Image) uint64 {
	w, h := img.Width(), img.Height()
	d := xxhash.New()

	var header [16]byte
	binary.LittleEndian.PutUint64(header[0:], uint64(w))
	binary.LittleEndian.PutUint64(header[8:], uint64(h))
	_, _ = d.Write(header[:])

	row := make([]byte, 0, 3*max(w, 0))
	for r := 0; r < h; r++ {
		row = row[:0]
		for c := 0; c < w; c++ {
			p := img.PixelAt(r, c)
			row = append(row, p.R, p.G, p.B)
		}
		_, _ = d.Write(row)
	}
	return d.Sum64()
}
