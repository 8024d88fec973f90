package img2ascii

import (
	"errors"
	"fmt"
)

var (
	// ErrInputBounds is matched by every *InputBoundsError.
	ErrInputBounds = errors.New("input out of bounds")

	// ErrEmptyCharacterSet is returned when a render is requested with no
	// usable characters.
	ErrEmptyCharacterSet = errors.New("character set is empty")

	// ErrGlyphNotFound is returned by glyph providers when the font has no
	// glyph for the requested rune.
	ErrGlyphNotFound = errors.New("glyph not found")

	// ErrInvalidCharRange is returned when a character range expression
	// cannot be parsed.
	ErrInvalidCharRange = errors.New("invalid character range")
)

// InputBoundsError reports a dimension or resolution value outside the
// range the engine can partition.
type InputBoundsError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *InputBoundsError) Error() string {
	return fmt.Sprintf("%s %d outside [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// Is makes errors.Is(err, ErrInputBounds) true.
func (e *InputBoundsError) Is(target error) bool {
	return target == ErrInputBounds
}

// GlyphLookupError is returned when a glyph provider cannot render a rune.
type GlyphLookupError struct {
	Rune rune
	Font string
	Err  error
}

func (e *GlyphLookupError) Error() string {
	return fmt.Sprintf("glyph %q in font %s: %v", e.Rune, e.Font, e.Err)
}

func (e *GlyphLookupError) Unwrap() error {
	return e.Err
}
