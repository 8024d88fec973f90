package img2ascii

import "sync"

// CharacterScore pairs a rune with the raw coverage ratio of its glyph.
type CharacterScore struct {
	Rune     rune
	Coverage float64
}

// GlyphSampler reduces rendered glyphs to coverage ratios. Ratios are a
// pure function of (rune, font, size) and are memoized per sampler.
type GlyphSampler struct {
	provider GlyphProvider
	size     int

	mu       sync.Mutex
	coverage map[rune]float64
}

// NewGlyphSampler creates a sampler rendering glyphs from provider on a
// size x size grid. Non-positive sizes use DefaultSampleSize.
func NewGlyphSampler(provider GlyphProvider, size int) *GlyphSampler {
	if size <= 0 {
		size = DefaultSampleSize
	}
	return &GlyphSampler{
		provider: provider,
		size:     size,
		coverage: make(map[rune]float64),
	}
}

// SampleSize returns the side length of the sampling grid.
func (s *GlyphSampler) SampleSize() int {
	return s.size
}

// FontName returns the name of the underlying glyph provider.
func (s *GlyphSampler) FontName() string {
	return s.provider.Name()
}

// Coverage returns the fraction of r's sampling grid that is covered.
// Lookup failures are returned as errors and never cached.
func (s *GlyphSampler) Coverage(r rune) (float64, error) {
	s.mu.Lock()
	if c, ok := s.coverage[r]; ok {
		s.mu.Unlock()
		return c, nil
	}
	s.mu.Unlock()

	bitmap, err := s.provider.RenderGlyph(r, s.size)
	if err != nil {
		return 0, err
	}
	c := bitmap.Coverage()

	s.mu.Lock()
	s.coverage[r] = c
	s.mu.Unlock()
	return c, nil
}

// SkippedGlyph is a rune left out of scoring and the provider error that
// caused it.
type SkippedGlyph struct {
	Rune rune
	Err  error
}

// Score computes raw coverage scores for runes, in the order given.
// Runes whose glyph cannot be rendered, for whatever reason, are left out
// and returned in skipped.
func (s *GlyphSampler) Score(runes []rune) (scores []CharacterScore, skipped []SkippedGlyph) {
	scores = make([]CharacterScore, 0, len(runes))
	for _, r := range runes {
		c, err := s.Coverage(r)
		if err != nil {
			skipped = append(skipped, SkippedGlyph{Rune: r, Err: err})
			continue
		}
		scores = append(scores, CharacterScore{Rune: r, Coverage: c})
	}
	return scores, skipped
}
