package store

import (
	"strings"
	"sync"
)

// Bookmarks is the bookmark list backed by a file.
type Bookmarks struct {
	mu    sync.Mutex
	path  string
	items []string
}

// LoadBookmarks reads the bookmark file at path. A missing file gives an
// empty list.
func LoadBookmarks(path string) (*Bookmarks, error) {
	b := &Bookmarks{path: path}
	if err := b.Reload(); err != nil {
		return nil, err
	}
	return b, nil
}

// Path returns the backing file.
func (b *Bookmarks) Path() string {
	return b.path
}

// Reload replaces the list with the file contents.
func (b *Bookmarks) Reload() error {
	lines, err := ReadLines(b.path)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = dedupe(lines)
	return nil
}

// Add appends uri to the list and the file. It reports false when uri is
// empty or already bookmarked.
func (b *Bookmarks) Add(uri string) (bool, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return false, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, item := range b.items {
		if item == uri {
			return false, nil
		}
	}
	b.items = append(b.items, uri)
	if b.path == "" {
		return true, nil
	}
	return true, AppendLine(b.path, uri)
}

// Contains reports whether uri is bookmarked.
func (b *Bookmarks) Contains(uri string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, item := range b.items {
		if item == uri {
			return true
		}
	}
	return false
}

// List returns the bookmarks in file order.
func (b *Bookmarks) List() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.items))
	copy(out, b.items)
	return out
}

// Save writes the list to the file.
func (b *Bookmarks) Save() error {
	if b.path == "" {
		return nil
	}
	return WriteLines(b.path, b.List())
}

func dedupe(lines []string) []string {
	seen := make(map[string]bool, len(lines))
	out := lines[:0]
	for _, l := range lines {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}
