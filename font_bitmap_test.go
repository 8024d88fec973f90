package img2ascii

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

// TestGlyphBitmapBitOperations tests basic bit operations on GlyphBitmap
func TestGlyphBitmapBitOperations(t *testing.T) {
	bitmap := NewGlyphBitmap(10)

	// Test setting bits
	bitmap.setBit(0, 0, true)
	if !bitmap.Covered(0, 0) {
		t.Error("Expected bit at (0,0) to be set")
	}

	// Cells past the first word
	bitmap.setBit(9, 9, true)
	if !bitmap.Covered(9, 9) {
		t.Error("Expected bit at (9,9) to be set")
	}
	if bitmap.Covered(9, 8) {
		t.Error("Expected bit at (9,8) to be clear")
	}

	// Test clearing bits
	bitmap.setBit(0, 0, false)
	if bitmap.Covered(0, 0) {
		t.Error("Expected bit at (0,0) to be clear")
	}

	// Test out of bounds
	bitmap.setBit(10, 10, true)
	if bitmap.Covered(10, 10) {
		t.Error("Out of bounds bit should return false")
	}
	if bitmap.Covered(-1, 0) {
		t.Error("Negative coordinates should return false")
	}
	if bitmap.CoveredCount() != 1 {
		t.Errorf("Expected 1 covered cell, got %d", bitmap.CoveredCount())
	}
}

func TestGlyphBitmapCoverage(t *testing.T) {
	bitmap := NewGlyphBitmap(4)
	if bitmap.Coverage() != 0 {
		t.Errorf("Empty bitmap coverage = %f, want 0", bitmap.Coverage())
	}
	for x := 0; x < 4; x++ {
		bitmap.setBit(x, 1, true)
	}
	if bitmap.Coverage() != 0.25 {
		t.Errorf("Coverage = %f, want 0.25", bitmap.Coverage())
	}

	want := "....\n####\n....\n....\n"
	if bitmap.String() != want {
		t.Errorf("String() =\n%s\nwant\n%s", bitmap.String(), want)
	}

	if NewGlyphBitmap(0).Coverage() != 0 {
		t.Error("Zero sized bitmap should have zero coverage")
	}
}

func TestFaceFontCoverageOrdering(t *testing.T) {
	for _, name := range []string{"inconsolata", "basic"} {
		t.Run(name, func(t *testing.T) {
			glyphs, err := OpenFont(name)
			if err != nil {
				t.Fatalf("OpenFont(%q): %v", name, err)
			}
			if glyphs.Name() != name {
				t.Errorf("Name() = %q, want %q", glyphs.Name(), name)
			}

			coverage := func(r rune) float64 {
				bitmap, err := glyphs.RenderGlyph(r, DefaultSampleSize)
				if err != nil {
					t.Fatalf("RenderGlyph(%q): %v", r, err)
				}
				if bitmap.Size() != DefaultSampleSize {
					t.Fatalf("bitmap size = %d, want %d", bitmap.Size(), DefaultSampleSize)
				}
				return bitmap.Coverage()
			}

			space, dot, hash := coverage(' '), coverage('.'), coverage('#')
			if space != 0 {
				t.Errorf("space coverage = %f, want 0", space)
			}
			if !(dot > space && hash > dot) {
				t.Errorf("expected ' ' < '.' < '#', got %f, %f, %f", space, dot, hash)
			}
		})
	}
}

func TestFaceFontMissingGlyph(t *testing.T) {
	glyphs, err := OpenFont("inconsolata")
	if err != nil {
		t.Fatal(err)
	}
	_, err = glyphs.RenderGlyph('一', DefaultSampleSize)
	if !errors.Is(err, ErrGlyphNotFound) {
		t.Fatalf("expected ErrGlyphNotFound, got %v", err)
	}
	var lookupErr *GlyphLookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("expected *GlyphLookupError, got %T", err)
	}
	if lookupErr.Rune != '一' || lookupErr.Font != "inconsolata" {
		t.Errorf("unexpected lookup error fields: %+v", lookupErr)
	}
}

func TestTrueTypeFontRendering(t *testing.T) {
	glyphs, err := ParseTrueTypeFont("gomono", gomono.TTF)
	if err != nil {
		t.Fatalf("ParseTrueTypeFont: %v", err)
	}

	hash, err := glyphs.RenderGlyph('#', DefaultSampleSize)
	if err != nil {
		t.Fatalf("RenderGlyph('#'): %v", err)
	}
	if hash.Coverage() <= 0 || hash.Coverage() >= 1 {
		t.Errorf("'#' coverage = %f, want within (0, 1)", hash.Coverage())
	}

	space, err := glyphs.RenderGlyph(' ', DefaultSampleSize)
	if err != nil {
		t.Fatalf("RenderGlyph(' '): %v", err)
	}
	if space.Coverage() != 0 {
		t.Errorf("space coverage = %f, want 0", space.Coverage())
	}

	// Rendering is deterministic
	again, _ := glyphs.RenderGlyph('#', DefaultSampleSize)
	if again.String() != hash.String() {
		t.Error("rendering '#' twice gave different bitmaps")
	}

	if _, err := glyphs.RenderGlyph('一', DefaultSampleSize); !errors.Is(err, ErrGlyphNotFound) {
		t.Errorf("expected ErrGlyphNotFound for missing glyph, got %v", err)
	}
}

func TestLoadTrueTypeFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.ttf")
	if err := os.WriteFile(path, gomono.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	glyphs, err := OpenFont(path)
	if err != nil {
		t.Fatalf("OpenFont(%q): %v", path, err)
	}
	if glyphs.Name() != "mono.ttf" {
		t.Errorf("Name() = %q, want mono.ttf", glyphs.Name())
	}

	if _, err := LoadTrueTypeFont(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("expected error for missing font file")
	}
}

func TestOpenFontUnknown(t *testing.T) {
	_, err := OpenFont("comic-sans")
	if err == nil || !strings.Contains(err.Error(), "comic-sans") {
		t.Errorf("expected unknown font error, got %v", err)
	}
}
