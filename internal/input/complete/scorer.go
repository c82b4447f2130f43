package complete

import "unicode"

// Scorer calculates match scores.
type Scorer interface {
	// Score calculates a match score based on various factors.
	// Higher scores indicate better matches.
	//
	// Parameters:
	//   - queryRunes: the lowercased query runes
	//   - originalRunes: original text runes (preserves case)
	//   - textRunes: lowercased text runes
	//   - matches: rune indices of matched characters in text
	Score(queryRunes, originalRunes, textRunes []rune, matches []int) int
}

// Weights are the scoring weights.
type Weights struct {
	// Base is the starting score for any match.
	Base int

	// Consecutive is added for each consecutive character match.
	Consecutive int

	// WordBoundary is added for matches at word boundaries.
	WordBoundary int

	// Prefix is added when the first match is at the start.
	Prefix int

	// ExactPrefix is added when the query matches the start exactly.
	ExactPrefix int

	// Gap is subtracted for each gap character between matches.
	Gap int

	// Leading is subtracted for each character before the first match.
	Leading int

	// LengthThreshold grants a bonus to texts shorter than it.
	LengthThreshold int
}

// DefaultWeights returns the default scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Base:            100,
		Consecutive:     20,
		WordBoundary:    15,
		Prefix:          25,
		ExactPrefix:     50,
		Gap:             2,
		Leading:         1,
		LengthThreshold: 30,
	}
}

// URIScorer scores URIs and plain words. For URIs the start is measured
// after the scheme and a leading "www.".
type URIScorer struct {
	Weights Weights
}

// Score implements the Scorer interface.
func (s URIScorer) Score(queryRunes, originalRunes, textRunes []rune, matches []int) int {
	if len(matches) == 0 {
		return 0
	}
	w := s.Weights
	start := hostStart(originalRunes)
	score := w.Base

	for i := 1; i < len(matches); i++ {
		if matches[i] == matches[i-1]+1 {
			score += w.Consecutive
		}
	}

	for _, idx := range matches {
		if isWordBoundary(originalRunes, idx) {
			score += w.WordBoundary
		}
	}

	first := matches[0]
	switch {
	case first == start:
		score += w.Prefix
	case first > start:
		score -= (first - start) * w.Leading
	default:
		// Matched inside the scheme.
		score -= start * w.Leading
	}

	if len(matches) > 1 {
		totalGap := matches[len(matches)-1] - matches[0] - len(matches) + 1
		if totalGap > 0 {
			score -= totalGap * w.Gap
		}
	}

	if n := len(textRunes) - start; n < w.LengthThreshold {
		score += w.LengthThreshold - n
	}

	if hasPrefix(textRunes[start:], queryRunes) {
		score += w.ExactPrefix
	}

	if score < 1 {
		score = 1
	}
	return score
}

func hasPrefix(text, prefix []rune) bool {
	if len(text) < len(prefix) {
		return false
	}
	for i, r := range prefix {
		if text[i] != r {
			return false
		}
	}
	return true
}

// isWordBoundary checks if the rune at idx starts a word: the first rune,
// a rune after a separator such as '/', '.' or '-', or an upper-case rune
// after a lower-case one.
func isWordBoundary(runes []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	if idx >= len(runes) {
		return false
	}

	prev, cur := runes[idx-1], runes[idx]
	if unicode.IsSpace(prev) || unicode.IsPunct(prev) || unicode.IsSymbol(prev) {
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(cur)
}
