package command

import "sync"

// History is the ordered list of activated command lines, oldest first.
// It is shared by every window of the process and is not persisted.
type History struct {
	mu    sync.Mutex
	items []string
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Add appends a command line verbatim.
func (h *History) Add(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items = append(h.items, line)
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.items)
}

// Entries returns a copy of all entries, oldest first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.items))
	copy(out, h.items)
	return out
}

// Recall is a cursor over a History. A fresh cursor has no position: the
// first Previous yields the newest entry and the first Next yields the
// oldest. After that the cursor wraps around at both ends.
type Recall struct {
	history *History
	pos     int
	active  bool
}

// NewRecall creates a fresh cursor over h.
func NewRecall(h *History) *Recall {
	return &Recall{history: h}
}

// Reset makes the cursor fresh again.
func (r *Recall) Reset() {
	r.pos = 0
	r.active = false
}

// Previous moves to the previous (older) entry.
func (r *Recall) Previous() (string, bool) {
	return r.step(-1)
}

// Next moves to the next (newer) entry.
func (r *Recall) Next() (string, bool) {
	return r.step(1)
}

func (r *Recall) step(delta int) (string, bool) {
	r.history.mu.Lock()
	defer r.history.mu.Unlock()

	n := len(r.history.items)
	if n == 0 {
		return "", false
	}

	switch {
	case !r.active && delta < 0:
		r.pos = n - 1
	case !r.active:
		r.pos = 0
	default:
		r.pos = ((r.pos+delta)%n + n) % n
	}
	r.active = true
	return r.history.items[r.pos], true
}
