package img2ascii

// NormalizedScore pairs a rune with its glyph coverage stretched onto the
// common [0, 1] brightness scale of the active character set.
type NormalizedScore struct {
	Rune       rune
	Brightness float64
}

// Normalize linearly stretches values so the smallest becomes 0 and the
// largest 1. When all values are equal (including a single value) there
// is nothing to stretch and the values are returned unchanged.
func Normalize(values []float64) []float64 {
	result := make([]float64, len(values))
	if len(values) == 0 {
		return result
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	span := hi - lo
	for i, v := range values {
		if span > 0 {
			result[i] = (v - lo) / span
		} else {
			result[i] = v
		}
	}
	return result
}

// NormalizeScores applies Normalize to the coverages of scores, keeping
// their order.
func NormalizeScores(scores []CharacterScore) []NormalizedScore {
	raw := make([]float64, len(scores))
	for i, s := range scores {
		raw[i] = s.Coverage
	}
	stretched := Normalize(raw)

	result := make([]NormalizedScore, len(scores))
	for i, s := range scores {
		result[i] = NormalizedScore{Rune: s.Rune, Brightness: stretched[i]}
	}
	return result
}
