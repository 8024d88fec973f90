package imageutil

import (
	"fmt"
	"io"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/webp" // Register WebP decoder
)

// LoadImage loads an image from the specified path, applying any EXIF
// orientation. Supports PNG, JPEG, GIF, TIFF, BMP and WebP formats.
func LoadImage(path string) (*RGBAImage, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	return RGBAImageFromImage(img), nil
}

// DecodeImage decodes an image from r, applying any EXIF orientation.
func DecodeImage(r io.Reader) (*RGBAImage, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return RGBAImageFromImage(img), nil
}
