package browser

import (
	"strings"
	"testing"

	"github.com/dshills/ripcurl/internal/engine"
	"github.com/dshills/ripcurl/internal/input/inputbar"
)

// memEntry is an in-memory Entry.
type memEntry struct {
	text    []rune
	caret   int
	level   inputbar.Level
	visible bool
	focused bool
}

func (e *memEntry) Text() string { return string(e.text) }
func (e *memEntry) SetLevel(level inputbar.Level) { e.level = level }
func (e *memEntry) SetVisible(v bool) { e.visible = v }
func (e *memEntry) Visible() bool { return e.visible }
func (e *memEntry) Focus() { e.focused = true }
func (e *memEntry) Focused() bool { return e.focused }
func (e *memEntry) Home() { e.caret = 0 }
func (e *memEntry) End() { e.caret = len(e.text) }

func (e *memEntry) SetText(text string) {
	e.text = []rune(text)
	e.caret = len(e.text)
}

func (e *memEntry) Insert(r rune) {
	e.text = append(e.text[:e.caret], append([]rune{r}, e.text[e.caret:]...)...)
	e.caret++
}

func (e *memEntry) MoveLeft() {
	if e.caret > 0 {
		e.caret--
	}
}

func (e *memEntry) MoveRight() {
	if e.caret < len(e.text) {
		e.caret++
	}
}

func (e *memEntry) DeleteBackward() {
	if e.caret == 0 {
		return
	}
	e.text = append(e.text[:e.caret-1], e.text[e.caret:]...)
	e.caret--
}

func (e *memEntry) DeleteWordBackward() {
	start := e.caret
	for start > 1 && e.text[start-1] == ' ' {
		start--
	}
	for start > 1 && e.text[start-1] != ' ' {
		start--
	}
	e.text = append(e.text[:start], e.text[e.caret:]...)
	e.caret = start
}

func (e *memEntry) DeleteToStart() {
	if e.caret <= 1 {
		return
	}
	e.text = append(e.text[:1], e.text[e.caret:]...)
	e.caret = 1
}

type memView struct{ entry *memEntry }

func (v memView) Focus() { v.entry.focused = false }

type memSurface struct {
	entry    *memEntry
	statuses []Status
	closed   bool
}

func newMemSurface() *memSurface {
	return &memSurface{entry: &memEntry{}}
}

func (s *memSurface) Inputbar() Entry { return s.entry }
func (s *memSurface) View() inputbar.Focuser { return memView{s.entry} }
func (s *memSurface) SetStatus(st Status) { s.statuses = append(s.statuses, st) }
func (s *memSurface) Close() { s.closed = true }
func (s *memSurface) last() Status { return s.statuses[len(s.statuses)-1] }

func TestStatusText(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		text   string
		title  string
	}{
		{"empty", Status{}, "[No name]", "ripcurl"},
		{"loaded", Status{URI: "https://example.com", Progress: 100, Title: "Example"}, "https://example.com", "Example"},
		{"loading", Status{URI: "https://example.com", Progress: 42}, "Loading... https://example.com (42%)", "ripcurl"},
		{"loading without uri", Status{Progress: 5}, "Loading...  (5%)", "ripcurl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Text(); got != tt.text {
				t.Errorf("Text() = %q, want %q", got, tt.text)
			}
			if got := tt.status.WindowTitle(); got != tt.title {
				t.Errorf("WindowTitle() = %q, want %q", got, tt.title)
			}
		})
	}
}

func TestNormalizeURI(t *testing.T) {
	tests := map[string]string{
		"":                    "",
		"  example.com ":      "https://example.com",
		"http://example.com":  "http://example.com",
		"about:blank":         "about:blank",
		"file:///tmp/x.html":  "file:///tmp/x.html",
		"example.com/a?b=c d": "https://example.com/a?b=c d",
	}
	for in, want := range tests {
		if got := NormalizeURI(in); got != want {
			t.Errorf("NormalizeURI(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSecurityMarkerInStatus(t *testing.T) {
	h := newHarness(t)
	w := h.open(t, "https://example.com")

	if got := h.surface(0).last().Security; got != engine.SecuritySecure {
		t.Errorf("security = %v, want secure", got)
	}
	h.page(0).EmitSecurity(engine.SecurityBroken)
	h.flush()
	if got := h.surface(0).last().Security.Marker(); got != "[SSL!]" {
		t.Errorf("marker = %q, want [SSL!]", got)
	}
	if !strings.HasPrefix(w.Status().Text(), "https://") {
		t.Errorf("status text = %q", w.Status().Text())
	}
}
