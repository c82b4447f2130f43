package complete

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestMatcherBasic(t *testing.T) {
	matcher := NewMatcher(nil)

	candidates := []string{
		"https://news.ycombinator.com",
		"https://www.github.com/dshills",
		"https://go.dev/doc",
		"http://example.org",
	}

	tests := []struct {
		query       string
		wantFirst   string
		wantMatches int
	}{
		{"git", "https://www.github.com/dshills", 1},
		{"news", "https://news.ycombinator.com", 1},
		{"go", "https://go.dev/doc", 2},
		{"ex", "http://example.org", 1},
		{"xyz", "", 0},
		{"", "https://news.ycombinator.com", 4},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			results := matcher.Match(tt.query, candidates, 10)
			if len(results) != tt.wantMatches {
				t.Fatalf("query %q: got %d matches (%v), want %d", tt.query, len(results), results, tt.wantMatches)
			}
			if tt.wantMatches > 0 && results[0].Text != tt.wantFirst {
				t.Errorf("query %q: got first %q, want %q", tt.query, results[0].Text, tt.wantFirst)
			}
		})
	}
}

func TestMatcherSchemeIsNotAPrefix(t *testing.T) {
	matcher := NewMatcher(nil)
	results := matcher.Match("h", []string{"https://example.com", "https://hn.example"}, 0)
	if len(results) != 2 {
		t.Fatalf("got %d matches, want 2", len(results))
	}
	if results[0].Text != "https://hn.example" {
		t.Errorf("first = %q, want the host starting with h", results[0].Text)
	}
	// The fallback match lands inside the scheme.
	if got := results[1].Matches; len(got) != 1 || got[0] != 0 {
		t.Errorf("fallback matches = %v", got)
	}
}

func TestMatcherCaseInsensitive(t *testing.T) {
	matcher := NewMatcher(nil)
	results := matcher.Match("READ", []string{"https://example.com/ReadMe"}, 0)
	if len(results) != 1 {
		t.Fatalf("got %d matches, want 1", len(results))
	}
}

func TestMatcherDropsDuplicatesAndKeepsOrder(t *testing.T) {
	matcher := NewMatcher(nil)
	results := matcher.Match("", []string{"b", "a", "b", "", "c"}, 0)

	var got []string
	for _, r := range results {
		got = append(got, r.Text)
	}
	if strings.Join(got, ",") != "b,a,c" {
		t.Errorf("results = %v, want [b a c]", got)
	}
}

func TestMatcherLimit(t *testing.T) {
	matcher := NewMatcher(nil)
	results := matcher.Match("a", []string{"a1", "a2", "a3", "a4"}, 2)
	if len(results) != 2 {
		t.Errorf("got %d results, want 2", len(results))
	}
}

func TestMatcherTiesKeepInputOrder(t *testing.T) {
	matcher := NewMatcher(nil)
	results := matcher.Match("x", []string{"xb", "xa"}, 0)
	if results[0].Text != "xb" || results[1].Text != "xa" {
		t.Errorf("results = %v, want input order", results)
	}
}

func TestWordBoundary(t *testing.T) {
	runes := []rune("go.dev/blogPost")
	tests := []struct {
		idx  int
		want bool
	}{
		{0, true},
		{1, false},
		{3, true},  // after '.'
		{7, true},  // after '/'
		{11, true}, // camelCase
		{12, false},
		{99, false},
	}
	for _, tt := range tests {
		if got := isWordBoundary(runes, tt.idx); got != tt.want {
			t.Errorf("isWordBoundary(%d) = %v, want %v", tt.idx, got, tt.want)
		}
	}
}

func TestHostStart(t *testing.T) {
	tests := map[string]int{
		"https://example.com":     8,
		"http://www.example.com":  11,
		"HTTPS://WWW.example.com": 12,
		"about:blank":             0,
		"example.com":             0,
		"file:///tmp/x":           7,
	}
	for in, want := range tests {
		if got := hostStart([]rune(in)); got != want {
			t.Errorf("hostStart(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestMatchProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		alphabet := rapid.SampledFrom([]rune("abc:/."))
		word := rapid.StringOfN(alphabet, 0, 12, -1)
		candidates := rapid.SliceOfN(word, 0, 8).Draw(t, "candidates")
		query := rapid.StringOfN(rapid.SampledFrom([]rune("abc")), 0, 3, -1).Draw(t, "query")

		results := NewMatcher(nil).Match(query, candidates, 0)

		seen := make(map[string]bool)
		for i, r := range results {
			if seen[r.Text] {
				t.Fatalf("duplicate result %q", r.Text)
			}
			seen[r.Text] = true
			if i > 0 && results[i-1].Score < r.Score {
				t.Fatalf("results not sorted by score: %v", results)
			}
			if len(r.Matches) != len([]rune(query)) {
				t.Fatalf("result %q has %d match positions for query %q", r.Text, len(r.Matches), query)
			}
			text := []rune(r.Text)
			for j, idx := range r.Matches {
				if text[idx] != []rune(query)[j] {
					t.Fatalf("position %d of %q is not %q", idx, r.Text, []rune(query)[j])
				}
				if j > 0 && idx <= r.Matches[j-1] {
					t.Fatalf("match positions not increasing: %v", r.Matches)
				}
			}
		}
	})
}
