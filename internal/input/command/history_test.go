package command

import (
	"testing"

	"pgregory.net/rapid"
)

func TestHistoryAdd(t *testing.T) {
	h := NewHistory()
	h.Add(":open a")
	h.Add(":open a")
	h.Add(":quit")

	want := []string{":open a", ":open a", ":quit"}
	got := h.Entries()
	if len(got) != len(want) {
		t.Fatalf("Entries() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRecallEmpty(t *testing.T) {
	r := NewRecall(NewHistory())
	if _, ok := r.Previous(); ok {
		t.Error("Previous() on empty history should report false")
	}
	if _, ok := r.Next(); ok {
		t.Error("Next() on empty history should report false")
	}
}

func TestRecallWraps(t *testing.T) {
	h := NewHistory()
	for _, s := range []string{"a", "b", "c"} {
		h.Add(s)
	}

	r := NewRecall(h)
	var prev []string
	for i := 0; i < 5; i++ {
		s, _ := r.Previous()
		prev = append(prev, s)
	}
	if want := []string{"c", "b", "a", "c", "b"}; !equal(prev, want) {
		t.Errorf("Previous sequence = %q, want %q", prev, want)
	}

	r.Reset()
	var next []string
	for i := 0; i < 4; i++ {
		s, _ := r.Next()
		next = append(next, s)
	}
	if want := []string{"a", "b", "c", "a"}; !equal(next, want) {
		t.Errorf("Next sequence = %q, want %q", next, want)
	}

	r.Reset()
	first, _ := r.Previous()
	back, _ := r.Next()
	if first != "c" || back != "a" {
		t.Errorf("Previous then Next = %q, %q; want c, a", first, back)
	}
}

func TestRecallPositionInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := NewHistory()
		n := rapid.IntRange(1, 8).Draw(t, "n")
		for i := 0; i < n; i++ {
			h.Add(string(rune('a' + i)))
		}

		entries := h.Entries()
		r := NewRecall(h)
		moves := rapid.SliceOf(rapid.Bool()).Draw(t, "moves")
		pos := -1
		for _, back := range moves {
			var got string
			if back {
				got, _ = r.Previous()
				if pos < 0 {
					pos = n - 1
				} else {
					pos = ((pos-1)%n + n) % n
				}
			} else {
				got, _ = r.Next()
				if pos < 0 {
					pos = 0
				} else {
					pos = (pos + 1) % n
				}
			}
			if got != entries[pos] {
				t.Fatalf("got %q, want entry %d (%q)", got, pos, entries[pos])
			}
		}
	})
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
