package engine

import (
	"fmt"
	"strings"

	"github.com/dshills/ripcurl/internal/input"
	"github.com/dshills/ripcurl/internal/input/key"
)

// Security is the connection security of the loaded page.
type Security uint8

const (
	// SecurityNone means the page was not loaded over TLS.
	SecurityNone Security = iota
	// SecuritySecure means the page was loaded over valid TLS.
	SecuritySecure
	// SecurityBroken means TLS was used but the engine rejected the
	// certificate or found mixed content.
	SecurityBroken
)

// Marker returns the status bar marker for the security state.
func (s Security) Marker() string {
	switch s {
	case SecuritySecure:
		return "[SSL]"
	case SecurityBroken:
		return "[SSL!]"
	default:
		return ""
	}
}

// SecurityOf derives the security state from a URI scheme.
func SecurityOf(uri string) Security {
	if strings.HasPrefix(strings.ToLower(uri), "https://") {
		return SecuritySecure
	}
	return SecurityNone
}

// Position is the vertical scroll state of a page in CSS pixels.
type Position struct {
	Offset   float64
	Viewport float64
	Height   float64
}

// String formats the position like a pager: "All" when the page fits,
// "Top", "Bot" or a percentage.
func (p Position) String() string {
	max := p.Height - p.Viewport
	switch {
	case max <= 0:
		return "All"
	case p.Offset <= 0:
		return "Top"
	case p.Offset >= max:
		return "Bot"
	default:
		return fmt.Sprintf("%d%%", int(p.Offset*100/max))
	}
}

// Callbacks receive page events. Nil fields are skipped. They may be
// invoked from any goroutine.
type Callbacks struct {
	Title         func(title string)
	URI           func(uri string)
	Progress      func(percent int)
	LoadFinished  func(uri string)
	Security      func(s Security)
	Position      func(p Position)
	NewWindow     func(uri string)
	EditableFocus func(focused bool)
	SearchResult  func(text string, found bool)
	Error         func(err error)
}

func (c Callbacks) title(s string) {
	if c.Title != nil {
		c.Title(s)
	}
}

func (c Callbacks) uri(s string) {
	if c.URI != nil {
		c.URI(s)
	}
}

func (c Callbacks) progress(n int) {
	if c.Progress != nil {
		c.Progress(n)
	}
}

func (c Callbacks) loadFinished(s string) {
	if c.LoadFinished != nil {
		c.LoadFinished(s)
	}
}

func (c Callbacks) security(s Security) {
	if c.Security != nil {
		c.Security(s)
	}
}

func (c Callbacks) position(p Position) {
	if c.Position != nil {
		c.Position(p)
	}
}

func (c Callbacks) newWindow(s string) {
	if c.NewWindow != nil {
		c.NewWindow(s)
	}
}

func (c Callbacks) editableFocus(b bool) {
	if c.EditableFocus != nil {
		c.EditableFocus(b)
	}
}

func (c Callbacks) searchResult(s string, found bool) {
	if c.SearchResult != nil {
		c.SearchResult(s, found)
	}
}

func (c Callbacks) error(err error) {
	if c.Error != nil {
		c.Error(err)
	}
}

// Engine is one page of the web engine. Methods return only errors that
// are known before any work starts, such as ErrClosed.
type Engine interface {
	// Load navigates to uri.
	Load(uri string) error

	// Reload reloads the page, skipping the cache when bypassCache is set.
	Reload(bypassCache bool) error

	// Stop stops loading.
	Stop() error

	// Back and Forward move through the page history.
	Back() error
	Forward() error

	// Zoom changes the zoom level.
	Zoom(z input.Zoom) error

	// Search highlights the next match of text in dir. While the user is
	// still typing, incremental is true and the search restarts at the top.
	Search(text string, dir input.Direction, incremental bool) error

	// ClearSearch removes the search highlight.
	ClearSearch() error

	// Scroll scrolls the page.
	Scroll(s input.Scroll) error

	// FocusEditable focuses the first editable element of the page.
	FocusEditable() error

	// Blur removes focus from the focused page element.
	Blur() error

	// SendKey forwards a key press to the focused page element.
	SendKey(ev key.Event) error

	// Close releases the page.
	Close() error
}

// Factory creates pages. All pages of a factory share one engine process.
type Factory interface {
	NewPage(cb Callbacks) (Engine, error)
	Close() error
}
