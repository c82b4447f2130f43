package browser

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/dshills/ripcurl/internal/engine"
	"github.com/dshills/ripcurl/internal/input"
	"github.com/dshills/ripcurl/internal/input/complete"
	"github.com/dshills/ripcurl/internal/input/inputbar"
	"github.com/dshills/ripcurl/internal/input/key"
	"github.com/dshills/ripcurl/internal/input/mode"
)

// Window is one browser window: an engine page, its surface, its mode and
// its input bar.
type Window struct {
	id      uuid.UUID
	set     *Set
	page    engine.Engine
	surface Surface
	mode    *mode.Machine
	bar     *inputbar.Controller[*Window]
	status  Status
	logger  *log.Logger

	completer *complete.Completer

	// Last submitted search, repeated by n and N. searchPending is set
	// until the engine reports its result.
	search        string
	searchDir     input.Direction
	searchPending bool
}

func newWindow(s *Set, surf Surface) *Window {
	w := &Window{
		id:      uuid.New(),
		set:     s,
		surface: surf,
		mode:    mode.NewMachine(),
		status:  Status{Position: "All", Mode: mode.Normal},

		completer: complete.New(0),
	}
	w.logger = s.logger.With("window", w.id.String()[:8])
	w.bar = inputbar.New(inputbar.Config[*Window]{
		Target:   w,
		Widget:   surf.Inputbar(),
		View:     surf.View(),
		Registry: s.registry,
		History:  s.history,
		Liveness: inputbar.LivenessFunc(w.Alive),
		Private:  s.Private,
		OnAbort:  func() { w.mode.Set(mode.Normal) },
	})
	w.mode.OnChange(w.modeChanged)
	return w
}

// ID returns the window's handle.
func (w *Window) ID() uuid.UUID {
	return w.id
}

// Alive reports whether the window is still open.
func (w *Window) Alive() bool {
	return w.set.Alive(w.id)
}

// Set returns the set the window belongs to.
func (w *Window) Set() *Set {
	return w.set
}

// Status returns the current status bar contents.
func (w *Window) Status() Status {
	return w.status
}

// Mode returns the current mode.
func (w *Window) Mode() mode.Mode {
	return w.mode.Current()
}

// Surface returns the window's toolkit surface.
func (w *Window) Surface() Surface {
	return w.surface
}

// Inputbar returns the window's input bar controller.
func (w *Window) Inputbar() *inputbar.Controller[*Window] {
	return w.bar
}

// URI returns the URI of the loaded page.
func (w *Window) URI() string {
	return w.status.URI
}

// Open loads uri in the window.
func (w *Window) Open(uri string) {
	uri = NormalizeURI(uri)
	if uri == "" {
		return
	}
	w.report("load", w.page.Load(uri))
}

// WinOpen opens uri in a new window.
func (w *Window) WinOpen(uri string) {
	if _, err := w.set.NewWindow(NormalizeURI(uri)); err != nil {
		w.report("open window", err)
	}
}

// Notify shows msg in the input bar.
func (w *Window) Notify(level inputbar.Level, msg string) {
	w.bar.Notify(level, msg)
}

// Close closes the window.
func (w *Window) Close() {
	w.set.Close(w.id)
}

// Abort stops loading, leaves INSERT mode, hides the input bar and clears
// search highlights.
func (w *Window) Abort() {
	w.report("stop", w.page.Stop())
	w.bar.Abort()
	w.report("clear search", w.page.ClearSearch())
}

// HandleKey routes a key press. While the input bar has focus, input-bar
// shortcuts run first and other keys edit the bar. Otherwise shortcuts for
// the current mode run, and unmatched keys in INSERT mode go to the page.
func (w *Window) HandleKey(ev key.Event) {
	if w.bar.Active() {
		w.handleInputbarKey(ev)
		return
	}
	if w.set.router.Dispatch(w, ev, w.mode.Current()) {
		return
	}
	if w.mode.Current() == mode.Insert {
		w.report("send key", w.page.SendKey(ev))
	}
}

func (w *Window) handleInputbarKey(ev key.Event) {
	entry := w.surface.Inputbar()
	before := entry.Text()

	if !w.set.router.DispatchInputbar(w, ev) {
		r := ev.Resolve()
		switch {
		case r.Key == key.KeyEnter:
			w.bar.OnActivate(before)
			return
		case r.Key == key.KeyLeft:
			entry.MoveLeft()
		case r.Key == key.KeyRight:
			entry.MoveRight()
		case r.Key == key.KeyHome:
			entry.Home()
		case r.Key == key.KeyEnd:
			entry.End()
		case ev.IsChar():
			entry.Insert(ev.Rune)
		}
	}

	if !w.Alive() || !w.bar.Active() {
		return
	}
	if after := entry.Text(); after != before {
		w.bar.OnTextChanged(after)
	}
}

// report logs err and shows it in the input bar.
func (w *Window) report(op string, err error) {
	if err == nil {
		return
	}
	w.logger.Error(op, "err", err)
	w.Notify(inputbar.Error, err.Error())
}

func (w *Window) refresh() {
	if w.set.active != w.id {
		return
	}
	w.surface.SetStatus(w.status)
}

func (w *Window) modeChanged(from, to mode.Mode) {
	w.status.Mode = to
	w.refresh()
	if from == mode.Insert {
		w.report("blur", w.page.Blur())
	}
}

// post runs fn on the UI goroutine if the window is still open then.
func (w *Window) post(fn func()) {
	w.set.post(func() {
		if w.Alive() {
			fn()
		}
	})
}

// callbacks returns the engine callbacks for the window's page.
func (w *Window) callbacks() engine.Callbacks {
	return engine.Callbacks{
		Title: func(title string) {
			w.post(func() {
				w.status.Title = title
				w.refresh()
			})
		},
		URI: func(uri string) {
			w.post(func() {
				w.status.URI = uri
				w.refresh()
			})
		},
		Progress: func(percent int) {
			w.post(func() {
				w.status.Progress = percent
				w.refresh()
			})
		},
		LoadFinished: func(uri string) {
			w.post(func() { w.loadFinished(uri) })
		},
		Security: func(s engine.Security) {
			w.post(func() {
				w.status.Security = s
				w.refresh()
			})
		},
		Position: func(p engine.Position) {
			w.post(func() {
				w.status.Position = p.String()
				w.refresh()
			})
		},
		NewWindow: func(uri string) {
			w.post(func() { w.WinOpen(uri) })
		},
		EditableFocus: func(focused bool) {
			w.post(func() {
				if focused {
					w.mode.Set(mode.Insert)
				} else {
					w.mode.Set(mode.Normal)
				}
			})
		},
		SearchResult: func(text string, found bool) {
			w.post(func() { w.searchResult(text, found) })
		},
		Error: func(err error) {
			w.post(func() { w.report("engine", err) })
		},
	}
}

// searchResult reports a miss for submitted searches only, so typing an
// incremental search does not overwrite the bar.
func (w *Window) searchResult(text string, found bool) {
	if !w.searchPending || text != w.search {
		return
	}
	w.searchPending = false
	if !found {
		w.Notify(inputbar.Warning, "Pattern not found: "+text)
	}
}

// submitSearch searches for the remembered pattern in dir.
func (w *Window) submitSearch(dir input.Direction) {
	w.searchPending = true
	w.report("search", w.page.Search(w.search, dir, false))
}

func (w *Window) loadFinished(uri string) {
	w.status.URI = uri
	w.status.Progress = 100
	w.refresh()

	if uri == "" || w.set.private || w.set.visited == nil {
		return
	}
	w.set.visited.Add(uri)
}

// NormalizeURI trims uri and prefixes https:// when it has no scheme.
func NormalizeURI(uri string) string {
	uri = strings.TrimSpace(uri)
	if uri == "" || strings.Contains(uri, "://") {
		return uri
	}
	for _, scheme := range []string{"about:", "data:", "file:", "javascript:"} {
		if strings.HasPrefix(uri, scheme) {
			return uri
		}
	}
	return "https://" + uri
}
