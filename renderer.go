package img2ascii

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Renderer encapsulates the state of brightness matching that outlives a
// single conversion: the glyph sampler, the active character set with its
// normalized scores, and the brightness cache. Independent renderers share
// nothing, so several can run side by side. A Renderer itself is meant to
// be driven by one goroutine at a time.
type Renderer struct {
	// Configuration options
	SampleSize int
	Workers    int

	glyphs  GlyphProvider
	sampler *GlyphSampler
	charset *CharacterSet
	cache   *BrightnessCache
	log     logrus.FieldLogger

	// Normalized scores, rebuilt when the character set version moves
	scores        []NormalizedScore
	skipped       []rune
	scoresVersion uint64
	scoresValid   bool

	// Stats
	renders    int
	renderTime time.Duration
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// RenderResult is the outcome of one conversion.
type RenderResult struct {
	Grid        Grid
	CharsPerRow int
	BlockSize   int

	// Scores are the normalized scores used, in ascending rune order.
	Scores []NormalizedScore

	// Skipped lists runes left out because their glyph could not be
	// rendered.
	Skipped []rune
}

// NewRenderer creates a new Renderer with the given options.
// Default values: SampleSize=16, Workers=1, the built-in inconsolata face,
// an empty character set and the standard logrus logger.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		SampleSize: DefaultSampleSize,
		Workers:    1,
		cache:      NewBrightnessCache(),
		log:        logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.glyphs == nil {
		r.glyphs, _ = OpenFont("")
	}
	if r.charset == nil {
		r.charset = NewCharacterSet()
	}
	r.sampler = NewGlyphSampler(r.glyphs, r.SampleSize)
	r.SampleSize = r.sampler.SampleSize()
	return r
}

// WithGlyphProvider sets the font glyphs are rendered from.
func WithGlyphProvider(p GlyphProvider) RendererOption {
	return func(r *Renderer) {
		r.glyphs = p
	}
}

// WithSampleSize sets the side length of the glyph sampling grid.
func WithSampleSize(size int) RendererOption {
	return func(r *Renderer) {
		r.SampleSize = size
	}
}

// WithWorkers sets how many regions are evaluated concurrently.
func WithWorkers(n int) RendererOption {
	return func(r *Renderer) {
		r.Workers = n
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l logrus.FieldLogger) RendererOption {
	return func(r *Renderer) {
		r.log = l
	}
}

// WithCharacterSet uses set as the active character set. The renderer
// keeps a reference, so later changes to set are picked up.
func WithCharacterSet(set *CharacterSet) RendererOption {
	return func(r *Renderer) {
		r.charset = set
	}
}

// WithCache shares a brightness cache between renderers.
func WithCache(c *BrightnessCache) RendererOption {
	return func(r *Renderer) {
		r.cache = c
	}
}

// CharacterSet returns the active character set.
func (r *Renderer) CharacterSet() *CharacterSet {
	return r.charset
}

// Cache returns the brightness cache.
func (r *Renderer) Cache() *BrightnessCache {
	return r.cache
}

// FontName returns the name of the glyph provider.
func (r *Renderer) FontName() string {
	return r.glyphs.Name()
}

// Scores returns the normalized scores of the active character set in
// ascending rune order, recomputing them if the set changed since the last
// call, and the runes that had to be skipped.
func (r *Renderer) Scores() ([]NormalizedScore, []rune) {
	if r.scoresValid && r.scoresVersion == r.charset.Version() {
		return r.scores, r.skipped
	}

	raw, failures := r.sampler.Score(r.charset.Runes())
	skipped := make([]rune, 0, len(failures))
	for _, f := range failures {
		skipped = append(skipped, f.Rune)
		r.log.WithError(f.Err).WithField("rune", string(f.Rune)).
			Warn("excluding character from matching")
	}

	scores := NormalizeScores(raw)
	SortScores(scores)

	r.scores = scores
	r.skipped = skipped
	r.scoresVersion = r.charset.Version()
	r.scoresValid = true
	return r.scores, r.skipped
}

// Render converts img with charsPerRow characters per row. charsPerRow
// must lie within the bounds NewResolution derives for img, otherwise an
// *InputBoundsError is returned before the image is partitioned.
func (r *Renderer) Render(ctx context.Context, img Image, charsPerRow int) (*RenderResult, error) {
	start := time.Now()
	bounds, err := NewResolution(img.Width(), img.Height(), charsPerRow)
	if err != nil {
		return nil, err
	}
	if err := bounds.Check(charsPerRow); err != nil {
		return nil, err
	}
	if r.charset.Len() == 0 {
		return nil, ErrEmptyCharacterSet
	}
	scores, skipped := r.Scores()
	if len(scores) == 0 {
		return nil, fmt.Errorf("%w: no glyph of %d characters could be rendered",
			ErrEmptyCharacterSet, r.charset.Len())
	}

	scanner := Scanner{Cache: r.cache, Workers: r.Workers}
	samples, rows, cols, err := scanner.Scan(ctx, img, charsPerRow)
	if err != nil {
		return nil, fmt.Errorf("scan regions: %w", err)
	}
	grid := MapRegions(samples, rows, cols, scores)

	r.renders++
	r.renderTime += time.Since(start)

	stats := r.cache.Stats()
	r.log.WithFields(logrus.Fields{
		"chars_per_row": charsPerRow,
		"rows":          rows,
		"cols":          cols,
		"candidates":    len(scores),
		"cache_entries": stats.Entries,
		"cache_hits":    stats.Hits,
		"elapsed":       time.Since(start),
	}).Debug("rendered image")

	return &RenderResult{
		Grid:        grid,
		CharsPerRow: charsPerRow,
		BlockSize:   img.Width() / charsPerRow,
		Scores:      scores,
		Skipped:     skipped,
	}, nil
}

// RenderStats returns the number of completed renders and the time spent
// in them.
func (r *Renderer) RenderStats() (renders int, elapsed time.Duration) {
	return r.renders, r.renderTime
}
