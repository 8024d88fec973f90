package img2ascii

// DefaultCharsPerRow is the resolution a new session starts at, clamped to
// the image's bounds.
const DefaultCharsPerRow = 64

// minPixelsPerChar is the narrowest block a character may cover. It is
// also the factor each resolution step multiplies or divides by.
const minPixelsPerChar = 2

// Resolution tracks the number of characters per row within bounds derived
// from the image. min <= current <= max always holds.
type Resolution struct {
	min     int
	max     int
	current int
}

// NewResolution derives bounds from the image dimensions and starts at
// initial clamped into them. The lower bound is max(1, width/height); the
// upper bound is width/2, raised to the lower bound for images too narrow
// to hold two pixels per character.
func NewResolution(width, height, initial int) (*Resolution, error) {
	if width < 1 {
		return nil, &InputBoundsError{Field: "image width", Value: width, Min: 1, Max: width}
	}
	if height < 1 {
		return nil, &InputBoundsError{Field: "image height", Value: height, Min: 1, Max: height}
	}
	lo := max(1, width/height)
	hi := max(width/minPixelsPerChar, lo)
	return &Resolution{
		min:     lo,
		max:     hi,
		current: max(min(initial, hi), lo),
	}, nil
}

// Min returns the smallest allowed characters per row.
func (r *Resolution) Min() int { return r.min }

// Max returns the largest allowed characters per row.
func (r *Resolution) Max() int { return r.max }

// Current returns the current characters per row.
func (r *Resolution) Current() int { return r.current }

// Increase doubles the resolution if the result stays within the maximum.
// It returns the resulting value and whether it changed.
func (r *Resolution) Increase() (int, bool) {
	if r.current*minPixelsPerChar > r.max {
		return r.current, false
	}
	r.current *= minPixelsPerChar
	return r.current, true
}

// Decrease halves the resolution if the result stays within the minimum.
// It returns the resulting value and whether it changed.
func (r *Resolution) Decrease() (int, bool) {
	if r.current/minPixelsPerChar < r.min {
		return r.current, false
	}
	r.current /= minPixelsPerChar
	return r.current, true
}

// Check returns an *InputBoundsError if charsPerRow is outside the bounds.
func (r *Resolution) Check(charsPerRow int) error {
	if charsPerRow < r.min || charsPerRow > r.max {
		return &InputBoundsError{Field: "chars per row", Value: charsPerRow, Min: r.min, Max: r.max}
	}
	return nil
}
