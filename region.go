package img2ascii

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Region is a square view into a source image. It implements Image with
// coordinates relative to its own top-left corner.
type Region struct {
	src  Image
	top  int
	left int
	size int
}

// Width returns the region's side length.
func (r Region) Width() int { return r.size }

// Height returns the region's side length.
func (r Region) Height() int { return r.size }

// PixelAt returns the source pixel at the region-relative position.
func (r Region) PixelAt(row, col int) RGB {
	return r.src.PixelAt(r.top+row, r.left+col)
}

// Origin returns the row and column of the region's top-left pixel in the
// source image.
func (r Region) Origin() (row, col int) {
	return r.top, r.left
}

// SubRegions partitions img into size x size regions in row-major order.
// Columns and rows left over when the dimensions are not multiples of size
// are not covered by any region.
func SubRegions(img Image, size int) []Region {
	if size <= 0 {
		return nil
	}
	rows, cols := GridSize(img.Width(), img.Height(), size)
	regions := make([]Region, 0, rows*cols)
	for gr := 0; gr < rows; gr++ {
		for gc := 0; gc < cols; gc++ {
			regions = append(regions, Region{
				src:  img,
				top:  gr * size,
				left: gc * size,
				size: size,
			})
		}
	}
	return regions
}

// BlockSize returns the side length in pixels of the region mapped to one
// character when width pixels are spread over charsPerRow characters.
func BlockSize(width, charsPerRow int) (int, error) {
	if width < 1 {
		return 0, &InputBoundsError{Field: "image width", Value: width, Min: 1, Max: width}
	}
	if charsPerRow < 1 || charsPerRow > width {
		return 0, &InputBoundsError{Field: "chars per row", Value: charsPerRow, Min: 1, Max: width}
	}
	return width / charsPerRow, nil
}

// GridSize returns the number of whole blocks of side pixels that fit in a
// width x height image. The remainder is cropped.
func GridSize(width, height, pixels int) (rows, cols int) {
	if pixels <= 0 {
		return 0, 0
	}
	return height / pixels, width / pixels
}

// RegionSample is one scanned region with its average brightness.
type RegionSample struct {
	Region     Region
	Brightness float64
}

// Scanner computes region brightness values through a shared cache.
type Scanner struct {
	Cache *BrightnessCache

	// Workers bounds the number of regions evaluated concurrently.
	// Values below 2 scan sequentially.
	Workers int
}

// Scan partitions img for charsPerRow characters per row and returns the
// brightness of every region in row-major order, along with the grid
// dimensions.
func (s *Scanner) Scan(ctx context.Context, img Image, charsPerRow int) ([]RegionSample, int, int, error) {
	if img.Height() < 1 {
		return nil, 0, 0, &InputBoundsError{Field: "image height", Value: img.Height(), Min: 1, Max: img.Height()}
	}
	pixels, err := BlockSize(img.Width(), charsPerRow)
	if err != nil {
		return nil, 0, 0, err
	}
	if s.Cache == nil {
		s.Cache = NewBrightnessCache()
	}

	rows, cols := GridSize(img.Width(), img.Height(), pixels)
	regions := SubRegions(img, pixels)
	samples := make([]RegionSample, len(regions))

	if s.Workers < 2 {
		for i, region := range regions {
			if err := ctx.Err(); err != nil {
				return nil, 0, 0, err
			}
			samples[i] = RegionSample{Region: region, Brightness: s.Cache.GetOrCompute(region)}
		}
		return samples, rows, cols, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Workers)
	for i, region := range regions {
		i, region := i, region
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			samples[i] = RegionSample{Region: region, Brightness: s.Cache.GetOrCompute(region)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, 0, err
	}
	return samples, rows, cols, nil
}
