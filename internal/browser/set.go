package browser

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/dshills/ripcurl/internal/engine"
	"github.com/dshills/ripcurl/internal/input"
	"github.com/dshills/ripcurl/internal/input/command"
	"github.com/dshills/ripcurl/internal/input/shortcut"
	"github.com/dshills/ripcurl/internal/store"
)

// ErrInvalidOptions is returned by NewSet when a required option is
// missing.
var ErrInvalidOptions = errors.New("invalid browser options")

// Options configures a Set.
type Options struct {
	// Factory creates engine pages. Required.
	Factory engine.Factory

	// Surfaces creates the toolkit side of a new window. Required.
	Surfaces func() (Surface, error)

	// Router dispatches shortcuts. Required.
	Router *shortcut.Router[*Window]

	// Registry resolves commands. Required.
	Registry *command.Registry[*Window]

	// History is the process-wide command history.
	History *command.History

	// Bookmarks and Visited are the persisted lists. Either may be nil.
	Bookmarks *store.Bookmarks
	Visited   *store.History

	// HomePage is loaded by windows opened without a URI.
	HomePage string

	// Private disables history recording.
	Private bool

	// Post runs fn on the UI goroutine. Nil runs fn immediately.
	Post func(fn func())

	// OnQuit runs once when the last window closes or Quit is called.
	OnQuit func()

	Logger *log.Logger
}

// Set owns the open windows.
type Set struct {
	factory   engine.Factory
	surfaces  func() (Surface, error)
	router    *shortcut.Router[*Window]
	registry  *command.Registry[*Window]
	history   *command.History
	bookmarks *store.Bookmarks
	visited   *store.History
	homePage  string
	private   bool
	post      func(fn func())
	onQuit    func()
	logger    *log.Logger

	windows map[uuid.UUID]*Window
	order   []uuid.UUID
	active  uuid.UUID
	quit    bool
}

// NewSet creates an empty window set.
func NewSet(opts Options) (*Set, error) {
	switch {
	case opts.Factory == nil:
		return nil, fmt.Errorf("%w: no engine factory", ErrInvalidOptions)
	case opts.Surfaces == nil:
		return nil, fmt.Errorf("%w: no surface constructor", ErrInvalidOptions)
	case opts.Router == nil:
		return nil, fmt.Errorf("%w: no shortcut router", ErrInvalidOptions)
	case opts.Registry == nil:
		return nil, fmt.Errorf("%w: no command registry", ErrInvalidOptions)
	}

	s := &Set{
		factory:   opts.Factory,
		surfaces:  opts.Surfaces,
		router:    opts.Router,
		registry:  opts.Registry,
		history:   opts.History,
		bookmarks: opts.Bookmarks,
		visited:   opts.Visited,
		homePage:  opts.HomePage,
		private:   opts.Private,
		post:      opts.Post,
		onQuit:    opts.OnQuit,
		logger:    opts.Logger,
		windows:   make(map[uuid.UUID]*Window),
	}
	if s.history == nil {
		s.history = command.NewHistory()
	}
	if s.post == nil {
		s.post = func(fn func()) { fn() }
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	return s, nil
}

// NewWindow opens a window, makes it active and loads uri, or the home
// page when uri is empty.
func (s *Set) NewWindow(uri string) (*Window, error) {
	surf, err := s.surfaces()
	if err != nil {
		return nil, fmt.Errorf("creating surface: %w", err)
	}

	w := newWindow(s, surf)
	page, err := s.factory.NewPage(w.callbacks())
	if err != nil {
		surf.Close()
		return nil, fmt.Errorf("creating page: %w", err)
	}
	w.page = page

	s.windows[w.id] = w
	s.order = append(s.order, w.id)
	s.active = w.id
	w.logger.Debug("window opened")

	w.refresh()
	if uri == "" {
		uri = s.homePage
	}
	if uri != "" {
		w.Open(uri)
	}
	return w, nil
}

// Close closes the window with the given id. Closing the last window
// quits.
func (s *Set) Close(id uuid.UUID) {
	w, ok := s.windows[id]
	if !ok {
		return
	}
	delete(s.windows, id)
	s.order = slices.DeleteFunc(s.order, func(x uuid.UUID) bool { return x == id })

	if err := w.page.Close(); err != nil {
		w.logger.Warn("closing page", "err", err)
	}
	w.surface.Close()
	w.logger.Debug("window closed")

	if s.active == id {
		s.active = uuid.Nil
		if n := len(s.order); n > 0 {
			s.active = s.order[n-1]
			s.windows[s.active].refresh()
		}
	}
	if len(s.windows) == 0 {
		s.Quit()
	}
}

// CloseAll closes every window and quits.
func (s *Set) CloseAll() {
	for _, id := range slices.Clone(s.order) {
		s.Close(id)
	}
	s.Quit()
}

// Quit runs OnQuit once.
func (s *Set) Quit() {
	if s.quit {
		return
	}
	s.quit = true
	if s.onQuit != nil {
		s.onQuit()
	}
}

// Done reports whether Quit has run.
func (s *Set) Done() bool {
	return s.quit
}

// Alive reports whether a window with the given id is open.
func (s *Set) Alive(id uuid.UUID) bool {
	_, ok := s.Get(id)
	return ok
}

// Get returns the window with the given id.
func (s *Set) Get(id uuid.UUID) (*Window, bool) {
	w, ok := s.windows[id]
	return w, ok
}

// Active returns the window receiving keys, or nil when none is open.
func (s *Set) Active() *Window {
	return s.windows[s.active]
}

// Activate makes the window with the given id active.
func (s *Set) Activate(id uuid.UUID) {
	w, ok := s.windows[id]
	if !ok {
		return
	}
	s.active = id
	w.refresh()
}

// Cycle activates the next or previous window in opening order.
func (s *Set) Cycle(dir input.Direction) {
	n := len(s.order)
	if n < 2 {
		return
	}
	i := slices.Index(s.order, s.active)
	if dir == input.DirPrevious {
		i--
	} else {
		i++
	}
	s.Activate(s.order[((i%n)+n)%n])
}

// Windows returns the open windows in opening order.
func (s *Set) Windows() []*Window {
	out := make([]*Window, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.windows[id])
	}
	return out
}

// Len returns the number of open windows.
func (s *Set) Len() int {
	return len(s.windows)
}

// Private reports whether history recording is disabled.
func (s *Set) Private() bool {
	return s.private
}

// SetPrivate enables or disables history recording.
func (s *Set) SetPrivate(private bool) {
	s.private = private
}

// Bookmarks returns the bookmark list, which may be nil.
func (s *Set) Bookmarks() *store.Bookmarks {
	return s.bookmarks
}

// History returns the command history shared by all windows.
func (s *Set) History() *command.History {
	return s.history
}
