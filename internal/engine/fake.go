package engine

import (
	"fmt"
	"sync"

	"github.com/dshills/ripcurl/internal/input"
	"github.com/dshills/ripcurl/internal/input/key"
)

// FakeFactory creates Fake pages.
type FakeFactory struct {
	mu     sync.Mutex
	Pages  []*Fake
	Err    error
	closed bool
}

// NewPage returns a new Fake, or Err when set.
func (f *FakeFactory) NewPage(cb Callbacks) (Engine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil, ErrClosed
	}
	if f.Err != nil {
		return nil, f.Err
	}
	p := NewFake(cb)
	f.Pages = append(f.Pages, p)
	return p, nil
}

// Close marks the factory closed.
func (f *FakeFactory) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// Last returns the most recently created page.
func (f *FakeFactory) Last() *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Pages) == 0 {
		return nil
	}
	return f.Pages[len(f.Pages)-1]
}

// Fake is an in-memory Engine that records the calls it receives. Loads
// complete synchronously; other page events are injected with the Emit
// methods.
type Fake struct {
	mu     sync.Mutex
	cb     Callbacks
	calls  []string
	closed bool

	// SearchFound is the result reported for searches.
	SearchFound bool
}

// NewFake creates a fake page reporting to cb.
func NewFake(cb Callbacks) *Fake {
	return &Fake{cb: cb, SearchFound: true}
}

// Calls returns the recorded calls, such as "load https://example.com".
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

// Closed reports whether Close was called.
func (f *Fake) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *Fake) record(format string, args ...any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
	return nil
}

// Load records the call and reports a finished load of uri.
func (f *Fake) Load(uri string) error {
	if err := f.record("load %s", uri); err != nil {
		return err
	}
	f.EmitLoad(uri, uri)
	return nil
}

func (f *Fake) Reload(bypassCache bool) error {
	return f.record("reload %t", bypassCache)
}

func (f *Fake) Stop() error {
	return f.record("stop")
}

func (f *Fake) Back() error {
	return f.record("back")
}

func (f *Fake) Forward() error {
	return f.record("forward")
}

func (f *Fake) Zoom(z input.Zoom) error {
	return f.record("zoom %s", z)
}

func (f *Fake) Search(text string, dir input.Direction, incremental bool) error {
	if err := f.record("search %s %s %t", text, dir, incremental); err != nil {
		return err
	}
	f.cb.searchResult(text, f.SearchFound)
	return nil
}

func (f *Fake) ClearSearch() error {
	return f.record("clear search")
}

func (f *Fake) Scroll(s input.Scroll) error {
	return f.record("scroll %s", s)
}

func (f *Fake) FocusEditable() error {
	if err := f.record("focus editable"); err != nil {
		return err
	}
	f.cb.editableFocus(true)
	return nil
}

func (f *Fake) Blur() error {
	if err := f.record("blur"); err != nil {
		return err
	}
	f.cb.editableFocus(false)
	return nil
}

func (f *Fake) SendKey(ev key.Event) error {
	return f.record("key %s", ev)
}

func (f *Fake) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// EmitLoad reports a complete load sequence ending at final.
func (f *Fake) EmitLoad(uri, final string) {
	f.cb.progress(10)
	f.cb.uri(uri)
	f.cb.security(SecurityOf(uri))
	f.cb.title(final)
	f.cb.progress(100)
	f.cb.loadFinished(final)
}

// EmitProgress reports load progress.
func (f *Fake) EmitProgress(percent int) {
	f.cb.progress(percent)
}

// EmitTitle reports a title change.
func (f *Fake) EmitTitle(title string) {
	f.cb.title(title)
}

// EmitSecurity reports a security state.
func (f *Fake) EmitSecurity(s Security) {
	f.cb.security(s)
}

// EmitPosition reports a scroll position.
func (f *Fake) EmitPosition(p Position) {
	f.cb.position(p)
}

// EmitNewWindow reports a request to open uri in a new window.
func (f *Fake) EmitNewWindow(uri string) {
	f.cb.newWindow(uri)
}

// EmitEditableFocus reports editable focus changes.
func (f *Fake) EmitEditableFocus(focused bool) {
	f.cb.editableFocus(focused)
}

// EmitError reports an asynchronous failure.
func (f *Fake) EmitError(err error) {
	f.cb.error(err)
}
