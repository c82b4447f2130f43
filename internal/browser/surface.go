package browser

import (
	"fmt"

	"github.com/dshills/ripcurl/internal/engine"
	"github.com/dshills/ripcurl/internal/input/inputbar"
	"github.com/dshills/ripcurl/internal/input/mode"
)

// Entry is the input bar widget with the editing operations the window
// drives directly.
type Entry interface {
	inputbar.Widget

	// Insert inserts r at the caret.
	Insert(r rune)

	// MoveLeft, MoveRight, Home and End move the caret.
	MoveLeft()
	MoveRight()
	Home()
	End()
}

// Surface is the toolkit side of one window.
type Surface interface {
	// Inputbar returns the window's input bar.
	Inputbar() Entry

	// View is focused when the input bar gives up focus.
	View() inputbar.Focuser

	// SetStatus redraws the status bar and window title.
	SetStatus(s Status)

	// Close releases the surface.
	Close()
}

// Status is what the status bar shows for a window.
type Status struct {
	Title    string
	URI      string
	Progress int
	Position string
	Security engine.Security
	Mode     mode.Mode
}

// Loading reports whether a load is in progress.
func (s Status) Loading() bool {
	return s.Progress > 0 && s.Progress < 100
}

// Text returns the URI part of the status bar.
func (s Status) Text() string {
	if s.Loading() {
		return fmt.Sprintf("Loading... %s (%d%%)", s.URI, s.Progress)
	}
	if s.URI == "" {
		return "[No name]"
	}
	return s.URI
}

// WindowTitle returns the page title, or "ripcurl" when there is none.
func (s Status) WindowTitle() string {
	if s.Title == "" {
		return "ripcurl"
	}
	return s.Title
}
