package ui

import (
	"github.com/dshills/ripcurl/internal/browser"
	"github.com/dshills/ripcurl/internal/input/inputbar"
)

// Surface is the terminal side of one browser window.
type Surface struct {
	screen *Screen
	entry  *Entry
	view   view
	status browser.Status
	closed bool
}

// view is the page area. Focusing it takes focus from the input bar.
type view struct {
	focus *focus
}

func (v view) Focus() { v.focus.bar = false }

func newSurface(s *Screen) *Surface {
	f := &focus{}
	return &Surface{
		screen: s,
		entry:  &Entry{focus: f},
		view:   view{focus: f},
	}
}

// Inputbar returns the window's input bar.
func (s *Surface) Inputbar() browser.Entry { return s.entry }

// Entry returns the concrete input bar.
func (s *Surface) Entry() *Entry { return s.entry }

// View returns the page area.
func (s *Surface) View() inputbar.Focuser { return s.view }

// SetStatus records the status bar contents and updates the terminal
// title.
func (s *Surface) SetStatus(st browser.Status) {
	s.status = st
	s.screen.setTitle(st.WindowTitle())
}

// Status returns the last status set.
func (s *Surface) Status() browser.Status { return s.status }

// Close marks the surface closed. Closed surfaces are not drawn.
func (s *Surface) Close() { s.closed = true }

// Closed reports whether Close was called.
func (s *Surface) Closed() bool { return s.closed }
