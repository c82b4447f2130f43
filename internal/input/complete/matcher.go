package complete

import (
	"slices"
	"strings"
)

// Result is a ranked candidate.
type Result struct {
	// Text is the candidate.
	Text string

	// Score is the match score (higher is better).
	Score int

	// Matches contains the rune indices of matched characters.
	Matches []int
}

// Matcher performs fuzzy matching of candidates against a query.
type Matcher struct {
	scorer Scorer
}

// NewMatcher creates a matcher. A nil scorer uses URIScorer with the
// default weights.
func NewMatcher(scorer Scorer) *Matcher {
	if scorer == nil {
		scorer = URIScorer{Weights: DefaultWeights()}
	}
	return &Matcher{scorer: scorer}
}

// Match returns the candidates matching query, best first, at most limit
// of them when limit is positive. Matching ignores case. Duplicate
// candidates are dropped and ties keep the input order, so callers pass
// candidates most relevant first. An empty query returns the candidates
// unranked.
func (m *Matcher) Match(query string, candidates []string, limit int) []Result {
	query = strings.ToLower(strings.TrimSpace(query))
	queryRunes := []rune(query)

	seen := make(map[string]bool, len(candidates))
	results := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true

		if len(queryRunes) == 0 {
			results = append(results, Result{Text: c})
			continue
		}
		if score, matches := m.matchItem(queryRunes, c); score > 0 {
			results = append(results, Result{Text: c, Score: score, Matches: matches})
		}
	}

	slices.SortStableFunc(results, func(a, b Result) int {
		return b.Score - a.Score
	})

	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}
	return results
}

// matchItem scores a single candidate. It returns zero when some query
// character is missing.
func (m *Matcher) matchItem(queryRunes []rune, text string) (int, []int) {
	originalRunes := []rune(text)
	textRunes := []rune(strings.ToLower(text))

	// Prefer a match that starts after the scheme, so that "h" does not
	// match the h of "https".
	matches := scan(queryRunes, textRunes, hostStart(originalRunes))
	if matches == nil {
		matches = scan(queryRunes, textRunes, 0)
	}
	if matches == nil {
		return 0, nil
	}
	return m.scorer.Score(queryRunes, originalRunes, textRunes, matches), matches
}

// scan finds the query characters left to right from start, or returns
// nil when they are not all present.
func scan(queryRunes, textRunes []rune, start int) []int {
	matches := make([]int, 0, len(queryRunes))
	q := 0
	for i := start; i < len(textRunes) && q < len(queryRunes); i++ {
		if textRunes[i] == queryRunes[q] {
			matches = append(matches, i)
			q++
		}
	}
	if q != len(queryRunes) {
		return nil
	}
	return matches
}

// hostStart returns the index after a URI scheme and a leading "www.",
// or 0 when the text has no scheme.
func hostStart(runes []rune) int {
	s := string(runes)
	i := strings.Index(s, "://")
	if i < 0 {
		return 0
	}
	start := i + len("://")
	if strings.HasPrefix(strings.ToLower(s[start:]), "www.") {
		start += len("www.")
	}
	// Convert the byte offset to a rune offset.
	return len([]rune(s[:start]))
}
