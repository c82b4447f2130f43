package complete

import (
	"testing"

	"github.com/dshills/ripcurl/internal/input"
)

func testSource(cmd string) []string {
	switch cmd {
	case "":
		return []string{"open", "winopen", "bookmark", "zoom"}
	case "open", "o":
		return []string{"https://go.dev", "https://github.com", "https://example.com"}
	default:
		return nil
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		line, base, cmd, word string
		ok                    bool
	}{
		{":op", ":", "", "op", true},
		{":", ":", "", "", true},
		{":open go", ":open ", "open", "go", true},
		{":open ", ":open ", "open", "", true},
		{":open a b", ":open a ", "open", "b", true},
		{"/needle", "", "", "", false},
	}
	for _, tt := range tests {
		base, cmd, word, ok := split(tt.line)
		if base != tt.base || cmd != tt.cmd || word != tt.word || ok != tt.ok {
			t.Errorf("split(%q) = %q, %q, %q, %v", tt.line, base, cmd, word, ok)
		}
	}
}

func TestCompleteCommandName(t *testing.T) {
	c := New(0)
	got, ok := c.Complete(":wi", input.DirNext, testSource)
	if !ok || got != ":winopen" {
		t.Errorf("Complete = %q, %v", got, ok)
	}
}

func TestCompleteCycles(t *testing.T) {
	c := New(0)
	line, ok := c.Complete(":o g", input.DirNext, testSource)
	if !ok || line != ":o https://go.dev" {
		t.Fatalf("first = %q, %v", line, ok)
	}

	line, _ = c.Complete(line, input.DirNext, testSource)
	if line != ":o https://github.com" {
		t.Fatalf("second = %q", line)
	}

	// Wraps around to the first result.
	line, _ = c.Complete(line, input.DirNext, testSource)
	if line != ":o https://go.dev" {
		t.Fatalf("wrapped = %q", line)
	}

	line, _ = c.Complete(line, input.DirPrevious, testSource)
	if line != ":o https://github.com" {
		t.Errorf("previous = %q", line)
	}
}

func TestCompletePreviousStartsAtEnd(t *testing.T) {
	c := New(0)
	line, ok := c.Complete(":open ", input.DirPrevious, testSource)
	if !ok || line != ":open https://example.com" {
		t.Errorf("Complete = %q, %v", line, ok)
	}
}

func TestCompleteEditedLineStartsOver(t *testing.T) {
	c := New(0)
	line, _ := c.Complete(":open go", input.DirNext, testSource)
	if line != ":open https://go.dev" {
		t.Fatalf("first = %q", line)
	}

	line, ok := c.Complete(":open exa", input.DirNext, testSource)
	if !ok || line != ":open https://example.com" {
		t.Errorf("after edit = %q, %v", line, ok)
	}
}

func TestCompleteNothing(t *testing.T) {
	tests := []string{
		"/search",
		":zoom i",
		":open zzz",
	}
	for _, line := range tests {
		c := New(0)
		if got, ok := c.Complete(line, input.DirNext, testSource); ok {
			t.Errorf("Complete(%q) = %q, want no completion", line, got)
		}
	}
}
