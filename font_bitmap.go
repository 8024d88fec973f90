package img2ascii

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

// alphaThreshold is the minimum alpha for a sampled cell to count as
// covered (25%). Anti-aliased edges sit well below 50% and would vanish
// with a higher cut-off.
const alphaThreshold = 64

// GlyphProvider renders characters of one font to square coverage grids.
// Implementations must be deterministic for fixed inputs.
type GlyphProvider interface {
	RenderGlyph(r rune, size int) (GlyphBitmap, error)
	Name() string
}

// OpenFont resolves a font descriptor to a GlyphProvider. Recognised
// descriptors are "inconsolata" (the default, also used for ""), "basic",
// "gomono", or a path to a TrueType file.
func OpenFont(descriptor string) (GlyphProvider, error) {
	switch strings.ToLower(descriptor) {
	case "", "inconsolata":
		return NewFaceFont("inconsolata", inconsolata.Regular8x16), nil
	case "basic":
		return NewFaceFont("basic", basicfont.Face7x13), nil
	case "gomono":
		return ParseTrueTypeFont("gomono", gomono.TTF)
	}
	if strings.HasSuffix(strings.ToLower(descriptor), ".ttf") {
		return LoadTrueTypeFont(descriptor)
	}
	return nil, fmt.Errorf("unknown font %q", descriptor)
}

// TrueTypeFont renders glyphs from a TrueType font with freetype.
type TrueTypeFont struct {
	name string
	font *truetype.Font
}

// LoadTrueTypeFont loads a TrueType font from file
func LoadTrueTypeFont(path string) (*TrueTypeFont, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	return ParseTrueTypeFont(filepath.Base(path), fontBytes)
}

// ParseTrueTypeFont parses TrueType font data.
func ParseTrueTypeFont(name string, data []byte) (*TrueTypeFont, error) {
	f, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	return &TrueTypeFont{name: name, font: f}, nil
}

// Name returns the font's name.
func (t *TrueTypeFont) Name() string {
	return t.name
}

// RenderGlyph renders r at size points and 72 DPI into a size x size alpha
// image, vertically centred on the face's ascent and descent, and thresholds
// it into a GlyphBitmap.
func (t *TrueTypeFont) RenderGlyph(r rune, size int) (GlyphBitmap, error) {
	if t.font.Index(r) == 0 {
		return GlyphBitmap{}, &GlyphLookupError{Rune: r, Font: t.name, Err: ErrGlyphNotFound}
	}

	face := truetype.NewFace(t.font, &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	img := image.NewAlpha(image.Rect(0, 0, size, size))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(t.font)
	ctx.SetFontSize(float64(size))
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	metrics := face.Metrics()
	ascent := metrics.Ascent.Round()
	descent := metrics.Descent.Round()
	baselineY := (size + ascent - descent) / 2

	if _, err := ctx.DrawString(string(r), freetype.Pt(0, baselineY)); err != nil {
		return GlyphBitmap{}, &GlyphLookupError{Rune: r, Font: t.name, Err: err}
	}

	bitmap := NewGlyphBitmap(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if img.AlphaAt(x, y).A > alphaThreshold {
				bitmap.setBit(x, y, true)
			}
		}
	}
	return bitmap, nil
}

// FaceFont renders glyphs from a font.Face, typically a fixed bitmap face.
// Each glyph is drawn into its own cell (advance x line height) and the
// cell is sampled at the centres of a size x size grid.
type FaceFont struct {
	name string
	face font.Face

	// font.Face implementations are not safe for concurrent use
	mu sync.Mutex
}

// NewFaceFont wraps face under the given name.
func NewFaceFont(name string, face font.Face) *FaceFont {
	return &FaceFont{name: name, face: face}
}

// Name returns the font's name.
func (f *FaceFont) Name() string {
	return f.name
}

// RenderGlyph implements GlyphProvider.
func (f *FaceFont) RenderGlyph(r rune, size int) (GlyphBitmap, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.hasGlyph(r) {
		return GlyphBitmap{}, &GlyphLookupError{Rune: r, Font: f.name, Err: ErrGlyphNotFound}
	}

	metrics := f.face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := ascent + metrics.Descent.Ceil()
	advance, ok := f.face.GlyphAdvance(r)
	if !ok {
		return GlyphBitmap{}, &GlyphLookupError{Rune: r, Font: f.name, Err: ErrGlyphNotFound}
	}
	width := advance.Ceil()
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	cell := image.NewAlpha(image.Rect(0, 0, width, height))
	dr, mask, maskp, _, ok := f.face.Glyph(fixed.P(0, ascent), r)
	if !ok {
		return GlyphBitmap{}, &GlyphLookupError{Rune: r, Font: f.name, Err: ErrGlyphNotFound}
	}
	draw.DrawMask(cell, dr, image.Opaque, image.Point{}, mask, maskp, draw.Over)

	bitmap := NewGlyphBitmap(size)
	for y := 0; y < size; y++ {
		cy := (2*y + 1) * height / (2 * size)
		for x := 0; x < size; x++ {
			cx := (2*x + 1) * width / (2 * size)
			if cell.AlphaAt(cx, cy).A > alphaThreshold {
				bitmap.setBit(x, y, true)
			}
		}
	}
	return bitmap, nil
}

// hasGlyph reports whether the face has a real glyph for r. basicfont
// faces silently substitute U+FFFD for missing runes, so their ranges are
// checked directly.
func (f *FaceFont) hasGlyph(r rune) bool {
	if bf, ok := f.face.(*basicfont.Face); ok {
		for _, rng := range bf.Ranges {
			if rng.Low <= r && r < rng.High {
				return true
			}
		}
		return false
	}
	_, ok := f.face.GlyphAdvance(r)
	return ok
}
