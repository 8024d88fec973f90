package img2ascii

import (
	"context"
	"math"
	"sort"
	"strings"
)

// Grid is a rendered character grid, indexed [row][col].
type Grid [][]rune

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// String joins the rows with newlines, each row newline terminated.
func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// SortScores orders scores by ascending code point, the order Nearest
// relies on for tie-breaking.
func SortScores(scores []NormalizedScore) {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Rune < scores[j].Rune
	})
}

// Nearest returns the rune whose normalized brightness is closest to
// brightness. Candidates are taken in slice order and a later candidate
// only wins when strictly closer, so with scores sorted by SortScores the
// lowest code point among equally close runes is chosen. ok is false when
// scores is empty.
func Nearest(scores []NormalizedScore, brightness float64) (r rune, ok bool) {
	best := math.Inf(1)
	for _, s := range scores {
		d := math.Abs(brightness - s.Brightness)
		if d < best {
			best = d
			r = s.Rune
			ok = true
		}
	}
	return r, ok
}

// MapRegions builds a rows x cols grid from row-major samples, choosing
// the nearest scored rune for every region.
func MapRegions(samples []RegionSample, rows, cols int, scores []NormalizedScore) Grid {
	grid := make(Grid, rows)
	for row := range grid {
		grid[row] = make([]rune, cols)
		for col := range grid[row] {
			grid[row][col], _ = Nearest(scores, samples[row*cols+col].Brightness)
		}
	}
	return grid
}

// Render converts img to a character grid with charsPerRow characters per
// row, drawing candidates from set. It uses a fresh Renderer, so nothing is
// cached between calls; use a Renderer or Session to keep state.
func Render(ctx context.Context, img Image, charsPerRow int, set *CharacterSet, opts ...RendererOption) (Grid, error) {
	opts = append([]RendererOption{WithCharacterSet(set)}, opts...)
	result, err := NewRenderer(opts...).Render(ctx, img, charsPerRow)
	if err != nil {
		return nil, err
	}
	return result.Grid, nil
}
