package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	cdpbrowser "github.com/chromedp/cdproto/browser"
	cdpinput "github.com/chromedp/cdproto/input"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/cdproto/security"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"

	"github.com/dshills/ripcurl/internal/input"
	"github.com/dshills/ripcurl/internal/input/key"
)

// focusBinding is the name of the page binding that reports editable focus.
const focusBinding = "ripcurlEditableFocus"

// focusScript reports focus changes of editable elements through
// focusBinding. It is installed on every new document.
const focusScript = `(function() {
  function editable(el) {
    if (!el) return false;
    if (el.isContentEditable) return true;
    var tag = el.tagName;
    if (tag === "TEXTAREA" || tag === "SELECT") return true;
    if (tag !== "INPUT") return false;
    var type = (el.type || "text").toLowerCase();
    return ["button", "checkbox", "radio", "submit", "reset", "image", "hidden", "file", "color", "range"].indexOf(type) < 0;
  }
  document.addEventListener("focusin", function(e) {
    if (editable(e.target)) window.` + focusBinding + `("1");
  }, true);
  document.addEventListener("focusout", function(e) {
    if (editable(e.target)) window.` + focusBinding + `("0");
  }, true);
})();`

// Zoom limits and step.
const (
	zoomStep = 0.1
	zoomMin  = 0.25
	zoomMax  = 5.0
)

// Scroll distances in CSS pixels.
const scrollStep = 40

// ChromeOptions configures the Chrome process.
type ChromeOptions struct {
	// ExecPath is the Chrome binary. Empty means auto-detect.
	ExecPath string

	// Headless runs Chrome without a window.
	Headless bool

	// UserAgent overrides the user agent when set.
	UserAgent string

	// DownloadDir is where downloads are saved. Empty disables downloads.
	DownloadDir string

	// OnDownload is called when a download starts and when it finishes.
	OnDownload func(name string, finished bool)

	// Logger receives protocol errors. Nil uses the default logger.
	Logger *log.Logger
}

// Chrome is a Factory backed by one Chrome process.
type Chrome struct {
	ctx           context.Context
	cancel        context.CancelFunc
	allocCancel   context.CancelFunc
	logger        *log.Logger
	opts          ChromeOptions
	mu            sync.Mutex
	closed        bool
	downloadNames map[string]string
}

// LaunchChrome starts Chrome and returns a factory for its pages.
func LaunchChrome(opts ChromeOptions) (*Chrome, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	allocOpts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	allocOpts = append(allocOpts,
		chromedp.NoDefaultBrowserCheck,
		chromedp.NoFirstRun,
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("headless", opts.Headless),
	)
	if opts.UserAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(opts.UserAgent))
	}
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	ctx, cancel := chromedp.NewContext(allocCtx,
		chromedp.WithErrorf(logger.Errorf),
	)

	c := &Chrome{
		ctx:           ctx,
		cancel:        cancel,
		allocCancel:   allocCancel,
		logger:        logger,
		opts:          opts,
		downloadNames: make(map[string]string),
	}

	// The first Run starts the browser.
	if err := chromedp.Run(ctx); err != nil {
		c.shutdown()
		return nil, fmt.Errorf("%w: %v", ErrNoBrowser, err)
	}

	if opts.DownloadDir != "" {
		// Depending on the Chrome version download events arrive on the
		// browser or on the target session.
		chromedp.ListenBrowser(ctx, c.handleBrowserEvent)
		chromedp.ListenTarget(ctx, c.handleBrowserEvent)
		err := chromedp.Run(ctx, cdpbrowser.SetDownloadBehavior(cdpbrowser.SetDownloadBehaviorBehaviorAllow).
			WithDownloadPath(opts.DownloadDir).
			WithEventsEnabled(true))
		if err != nil {
			logger.Warn("downloads disabled", "dir", opts.DownloadDir, "err", err)
		}
	}

	return c, nil
}

func (c *Chrome) handleBrowserEvent(ev interface{}) {
	switch e := ev.(type) {
	case *cdpbrowser.EventDownloadWillBegin:
		c.mu.Lock()
		_, seen := c.downloadNames[e.GUID]
		c.downloadNames[e.GUID] = e.SuggestedFilename
		c.mu.Unlock()
		if seen {
			return
		}
		c.logger.Info("download started", "file", e.SuggestedFilename, "url", e.URL)
		if c.opts.OnDownload != nil {
			c.opts.OnDownload(e.SuggestedFilename, false)
		}
	case *cdpbrowser.EventDownloadProgress:
		if e.State != cdpbrowser.DownloadProgressStateCompleted {
			return
		}
		c.mu.Lock()
		name, ok := c.downloadNames[e.GUID]
		delete(c.downloadNames, e.GUID)
		c.mu.Unlock()
		if !ok {
			return
		}
		c.logger.Info("download finished", "file", name)
		if c.opts.OnDownload != nil {
			c.opts.OnDownload(name, true)
		}
	}
}

// NewPage opens a new tab.
func (c *Chrome) NewPage(cb Callbacks) (Engine, error) {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return nil, ErrClosed
	}

	ctx, cancel := chromedp.NewContext(c.ctx)
	p := &chromePage{
		ctx:    ctx,
		cancel: cancel,
		cb:     cb,
		logger: c.logger,
		zoom:   1,
	}
	chromedp.ListenTarget(ctx, p.handleEvent)

	err := chromedp.Run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		if err := security.Enable().Do(ctx); err != nil {
			return err
		}
		if err := runtime.AddBinding(focusBinding).Do(ctx); err != nil {
			return err
		}
		_, err := page.AddScriptToEvaluateOnNewDocument(focusScript).Do(ctx)
		return err
	}))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("open page: %w", err)
	}
	return p, nil
}

// Close stops Chrome. Pages of this factory stop working.
func (c *Chrome) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	c.shutdown()
	return nil
}

func (c *Chrome) shutdown() {
	c.cancel()
	c.allocCancel()
}

// chromePage is one Chrome tab.
type chromePage struct {
	ctx    context.Context
	cancel context.CancelFunc
	cb     Callbacks
	logger *log.Logger

	mu        sync.Mutex
	closed    bool
	mainFrame string
	zoom      float64
}

func (p *chromePage) isMainFrame(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mainFrame == "" || p.mainFrame == id
}

// handleEvent runs on the chromedp event goroutine. It must not call
// chromedp.Run directly.
func (p *chromePage) handleEvent(ev interface{}) {
	switch e := ev.(type) {
	case *page.EventFrameStartedLoading:
		if p.isMainFrame(string(e.FrameID)) {
			p.cb.progress(10)
		}
	case *page.EventFrameNavigated:
		if e.Frame.ParentID != "" {
			return
		}
		p.mu.Lock()
		p.mainFrame = string(e.Frame.ID)
		p.mu.Unlock()
		uri := e.Frame.URL + e.Frame.URLFragment
		p.cb.uri(uri)
		p.cb.security(SecurityOf(uri))
		p.cb.progress(50)
	case *page.EventNavigatedWithinDocument:
		if p.isMainFrame(string(e.FrameID)) {
			p.cb.uri(e.URL)
		}
	case *page.EventDomContentEventFired:
		p.cb.progress(75)
	case *page.EventLoadEventFired:
		go p.finishLoad()
	case *page.EventWindowOpen:
		p.cb.newWindow(e.URL)
	case *runtime.EventBindingCalled:
		if e.Name == focusBinding {
			p.cb.editableFocus(e.Payload == "1")
		}
	case *security.EventVisibleSecurityStateChanged:
		if e.VisibleSecurityState == nil {
			return
		}
		switch e.VisibleSecurityState.SecurityState {
		case security.StateSecure:
			p.cb.security(SecuritySecure)
		case security.StateInsecureBroken:
			p.cb.security(SecurityBroken)
		}
	}
}

func (p *chromePage) finishLoad() {
	var title, location string
	err := chromedp.Run(p.ctx,
		chromedp.Title(&title),
		chromedp.Location(&location),
	)
	if err != nil {
		p.report("load", err)
		return
	}
	p.cb.title(title)
	p.cb.progress(100)
	p.cb.loadFinished(location)
	p.updatePosition()
}

// run starts actions on a goroutine and reports their error.
func (p *chromePage) run(op string, actions ...chromedp.Action) error {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return ErrClosed
	}

	go func() {
		if err := chromedp.Run(p.ctx, actions...); err != nil {
			p.report(op, err)
		}
	}()
	return nil
}

func (p *chromePage) report(op string, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	p.logger.Debug("page operation failed", "op", op, "err", err)
	p.cb.error(fmt.Errorf("%s: %w", op, err))
}

func (p *chromePage) Load(uri string) error {
	return p.run("load", chromedp.Navigate(uri))
}

func (p *chromePage) Reload(bypassCache bool) error {
	if bypassCache {
		return p.run("reload", chromedp.ActionFunc(func(ctx context.Context) error {
			return page.Reload().WithIgnoreCache(true).Do(ctx)
		}))
	}
	return p.run("reload", chromedp.Reload())
}

func (p *chromePage) Stop() error {
	return p.run("stop", chromedp.ActionFunc(func(ctx context.Context) error {
		return page.StopLoading().Do(ctx)
	}))
}

func (p *chromePage) Back() error {
	return p.run("back", chromedp.NavigateBack())
}

func (p *chromePage) Forward() error {
	return p.run("forward", chromedp.NavigateForward())
}

func (p *chromePage) Zoom(z input.Zoom) error {
	p.mu.Lock()
	switch z {
	case input.ZoomIn:
		p.zoom = min(p.zoom+zoomStep, zoomMax)
	case input.ZoomOut:
		p.zoom = max(p.zoom-zoomStep, zoomMin)
	default:
		p.zoom = 1
	}
	level := p.zoom
	p.mu.Unlock()

	var ok bool
	return p.run("zoom", chromedp.Evaluate(
		fmt.Sprintf(`(function(){ document.documentElement.style.zoom = "%.2f"; return true; })()`, level), &ok))
}

func (p *chromePage) Search(text string, dir input.Direction, incremental bool) error {
	reset := ""
	if incremental {
		reset = "window.getSelection().removeAllRanges();"
	}
	expr := fmt.Sprintf(`(function(){ %s return window.find(%q, false, %t, true, false, false, false); })()`,
		reset, text, dir == input.DirPrevious)

	var found bool
	return p.run("search",
		chromedp.Evaluate(expr, &found),
		chromedp.ActionFunc(func(context.Context) error {
			p.cb.searchResult(text, found)
			return nil
		}),
	)
}

func (p *chromePage) ClearSearch() error {
	var ok bool
	return p.run("clear search", chromedp.Evaluate(
		`(function(){ window.getSelection().removeAllRanges(); return true; })()`, &ok))
}

func (p *chromePage) Scroll(s input.Scroll) error {
	var step string
	switch s {
	case input.ScrollUp:
		step = fmt.Sprintf("window.scrollBy(0, -%d);", scrollStep)
	case input.ScrollHalfDown:
		step = "window.scrollBy(0, window.innerHeight / 2);"
	case input.ScrollHalfUp:
		step = "window.scrollBy(0, -window.innerHeight / 2);"
	case input.ScrollTop:
		step = "window.scrollTo(0, 0);"
	case input.ScrollBottom:
		step = "window.scrollTo(0, document.documentElement.scrollHeight);"
	default:
		step = fmt.Sprintf("window.scrollBy(0, %d);", scrollStep)
	}

	var ok bool
	return p.run("scroll",
		chromedp.Evaluate(`(function(){ `+step+` return true; })()`, &ok),
		chromedp.ActionFunc(func(ctx context.Context) error {
			p.readPosition(ctx)
			return nil
		}),
	)
}

func (p *chromePage) updatePosition() {
	_ = chromedp.Run(p.ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		p.readPosition(ctx)
		return nil
	}))
}

func (p *chromePage) readPosition(ctx context.Context) {
	var v []float64
	err := chromedp.Evaluate(
		`[window.scrollY, window.innerHeight, document.documentElement.scrollHeight]`, &v).Do(ctx)
	if err != nil || len(v) != 3 {
		return
	}
	p.cb.position(Position{Offset: v[0], Viewport: v[1], Height: v[2]})
}

func (p *chromePage) FocusEditable() error {
	var ok bool
	return p.run("focus", chromedp.Evaluate(`(function(){
  var el = document.querySelector('input:not([type=hidden]):not([disabled]), textarea, [contenteditable=""], [contenteditable="true"]');
  if (!el) return false;
  el.focus();
  return true;
})()`, &ok))
}

func (p *chromePage) Blur() error {
	var ok bool
	return p.run("blur", chromedp.Evaluate(
		`(function(){ if (document.activeElement) document.activeElement.blur(); return true; })()`, &ok))
}

func (p *chromePage) SendKey(ev key.Event) error {
	keys, ok := keyString(ev)
	if !ok {
		return nil
	}
	return p.run("key", chromedp.KeyEvent(keys, chromedp.KeyModifiers(keyModifiers(ev)...)))
}

func (p *chromePage) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	p.cancel()
	return nil
}

// keyString maps a key event to the text chromedp types for it.
func keyString(ev key.Event) (string, bool) {
	switch ev.Key {
	case key.KeyRune:
		return string(ev.Rune), ev.Rune != 0
	case key.KeyEnter:
		return kb.Enter, true
	case key.KeyTab:
		return kb.Tab, true
	case key.KeyBackspace:
		return kb.Backspace, true
	case key.KeyDelete:
		return kb.Delete, true
	case key.KeyEscape:
		return kb.Escape, true
	case key.KeyUp:
		return kb.ArrowUp, true
	case key.KeyDown:
		return kb.ArrowDown, true
	case key.KeyLeft:
		return kb.ArrowLeft, true
	case key.KeyRight:
		return kb.ArrowRight, true
	case key.KeyHome:
		return kb.Home, true
	case key.KeyEnd:
		return kb.End, true
	case key.KeyPageUp:
		return kb.PageUp, true
	case key.KeyPageDown:
		return kb.PageDown, true
	}
	return "", false
}

func keyModifiers(ev key.Event) []cdpinput.Modifier {
	r := ev.Resolve()
	var mods []cdpinput.Modifier
	if r.Modifiers.HasCtrl() {
		mods = append(mods, cdpinput.ModifierCtrl)
	}
	if r.Modifiers.HasAlt() {
		mods = append(mods, cdpinput.ModifierAlt)
	}
	if r.Modifiers.HasShift() {
		mods = append(mods, cdpinput.ModifierShift)
	}
	return mods
}
