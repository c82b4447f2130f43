package store

import (
	"strings"
	"sync"
)

// History is the browsing history backed by a file. In memory the most
// recent URI comes first.
type History struct {
	mu    sync.Mutex
	path  string
	limit int
	items []string
}

// LoadHistory reads the history file at path. limit caps the number of
// entries written back; zero or less means no cap.
func LoadHistory(path string, limit int) (*History, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}

	h := &History{path: path, limit: limit}
	// The file is oldest first; adding in order puts the newest in front.
	for _, l := range lines {
		h.add(l)
	}
	return h, nil
}

// Add records a visit. A URI already in the history moves to the front.
func (h *History) Add(uri string) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.add(uri)
}

func (h *History) add(uri string) {
	for i, item := range h.items {
		if item == uri {
			h.items = append(h.items[:i], h.items[i+1:]...)
			break
		}
	}
	h.items = append([]string{uri}, h.items...)
}

// Recent returns up to n entries, most recent first. n <= 0 returns all.
func (h *History) Recent(n int) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if n <= 0 || n > len(h.items) {
		n = len(h.items)
	}
	out := make([]string, n)
	copy(out, h.items[:n])
	return out
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.items)
}

// Save writes the most recent entries, up to the limit, oldest first.
// Entries beyond the limit are the oldest ones and are dropped.
func (h *History) Save() error {
	if h.path == "" {
		return nil
	}
	recent := h.Recent(h.limit)
	lines := make([]string, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		lines = append(lines, recent[i])
	}
	return WriteLines(h.path, lines)
}
