package imageutil

// CreateGradientImage creates a horizontal grayscale gradient running from
// black in the first column to white in the last.
func CreateGradientImage(width, height int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(0)
			if width > 1 {
				v = uint8(255 * x / (width - 1))
			}
			img.SetRGB(x, y, RGB{R: v, G: v, B: v})
		}
	}
	return img
}

// CreateVerticalGradientImage creates a vertical grayscale gradient.
func CreateVerticalGradientImage(width, height int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		v := uint8(0)
		if height > 1 {
			v = uint8(255 * y / (height - 1))
		}
		for x := 0; x < width; x++ {
			img.SetRGB(x, y, RGB{R: v, G: v, B: v})
		}
	}
	return img
}

// CreateCheckerboardImage creates a black and white checkerboard whose
// top-left square is white.
func CreateCheckerboardImage(width, height, squareSize int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				img.SetRGB(x, y, RGB{R: 255, G: 255, B: 255})
			} else {
				img.SetRGB(x, y, RGB{})
			}
		}
	}
	return img
}

// CreateSolidImage creates a solid color image.
func CreateSolidImage(width, height int, c RGB) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGB(x, y, c)
		}
	}
	return img
}

// CreateBlockImage creates an image made of size x size blocks, each filled
// with the gray level levels[row][col].
func CreateBlockImage(levels [][]uint8, size int) *RGBAImage {
	rows := len(levels)
	cols := 0
	if rows > 0 {
		cols = len(levels[0])
	}
	img := NewRGBAImage(cols*size, rows*size)
	for r, row := range levels {
		for c, v := range row {
			for y := r * size; y < (r+1)*size; y++ {
				for x := c * size; x < (c+1)*size; x++ {
					img.SetRGB(x, y, RGB{R: v, G: v, B: v})
				}
			}
		}
	}
	return img
}
