package img2ascii

import "math/bits"

// DefaultSampleSize is the side length of the grid glyphs are sampled on.
const DefaultSampleSize = 16

// GlyphBitmap is a square size x size grid of covered/uncovered cells
// representing a rendered character. Cells are packed row-major into
// 64-bit words; bit i of the grid is bit i%64 of word i/64.
type GlyphBitmap struct {
	size int
	bits []uint64
}

// NewGlyphBitmap returns an empty bitmap with the given side length.
func NewGlyphBitmap(size int) GlyphBitmap {
	if size < 0 {
		size = 0
	}
	return GlyphBitmap{
		size: size,
		bits: make([]uint64, (size*size+63)/64),
	}
}

// Size returns the side length of the grid.
func (g GlyphBitmap) Size() int {
	return g.size
}

// Covered reports whether the cell at column x, row y is covered.
func (g GlyphBitmap) Covered(x, y int) bool {
	if x < 0 || x >= g.size || y < 0 || y >= g.size {
		return false
	}
	pos := y*g.size + x
	return g.bits[pos/64]&(1<<(pos%64)) != 0
}

// setBit sets a specific cell in the bitmap
func (g GlyphBitmap) setBit(x, y int, value bool) {
	if x < 0 || x >= g.size || y < 0 || y >= g.size {
		return
	}
	pos := y*g.size + x
	if value {
		g.bits[pos/64] |= 1 << (pos % 64)
	} else {
		g.bits[pos/64] &^= 1 << (pos % 64)
	}
}

// CoveredCount returns the number of covered cells.
func (g GlyphBitmap) CoveredCount() int {
	n := 0
	for _, w := range g.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// Coverage returns the fraction of covered cells, in [0, 1].
func (g GlyphBitmap) Coverage() float64 {
	if g.size == 0 {
		return 0
	}
	return float64(g.CoveredCount()) / float64(g.size*g.size)
}

// String draws the bitmap with '#' for covered and '.' for empty cells.
func (g GlyphBitmap) String() string {
	buf := make([]byte, 0, g.size*(g.size+1))
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if g.Covered(x, y) {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
