package ui

import (
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Screen wraps a tcell screen for the browser.
type Screen struct {
	screen tcell.Screen
	theme  Theme

	mu   sync.Mutex
	done chan struct{}
	fini sync.Once
}

// NewScreen creates a screen on the controlling terminal.
func NewScreen(theme Theme) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenWith(s, theme), nil
}

// NewScreenWith wraps an existing tcell screen, such as a simulation
// screen in tests.
func NewScreenWith(s tcell.Screen, theme Theme) *Screen {
	return &Screen{
		screen: s,
		theme:  theme,
		done:   make(chan struct{}),
	}
}

// Init initializes the terminal.
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.EnablePaste()
	s.screen.HideCursor()
	return nil
}

// Fini restores the terminal. Posts after Fini are dropped.
func (s *Screen) Fini() {
	s.fini.Do(func() {
		close(s.done)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.screen.Fini()
	})
}

// Size returns the terminal size in cells.
func (s *Screen) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.screen.Size()
}

// Sync repaints the whole terminal, used after a resize.
func (s *Screen) Sync() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Sync()
}

// PollEvent blocks for the next terminal event. It returns nil once the
// screen is finalized.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Post schedules fn to run on the event loop goroutine. It is safe to
// call from any goroutine and never blocks.
func (s *Screen) Post(fn func()) {
	ev := tcell.NewEventInterrupt(fn)
	err := s.screen.PostEvent(ev)
	if !errors.Is(err, tcell.ErrEventQFull) {
		return
	}
	go func() {
		select {
		case s.screen.(interface{ EventQ() chan tcell.Event }).EventQ() <- ev:
		case <-s.done:
		}
	}()
}

// NewSurface creates the surface for a new window.
func (s *Screen) NewSurface() *Surface {
	return newSurface(s)
}

func (s *Screen) setTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.SetTitle(title)
}
