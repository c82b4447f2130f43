package app

import (
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ripcurl/internal/input/mode"
	"github.com/dshills/ripcurl/internal/ui"
)

// eventLoop redraws and handles terminal events until the window set
// quits or the screen is finalized.
func (app *Application) eventLoop() error {
	for !app.set.Done() {
		app.draw()
		ev := app.screen.PollEvent()
		if ev == nil {
			return nil
		}
		app.handleEvent(ev)
	}
	return ErrQuit
}

// handleEvent processes a single terminal event.
func (app *Application) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		if fn, ok := ev.Data().(func()); ok {
			fn()
		}
	case *tcell.EventKey:
		app.handleKey(ev)
	case *tcell.EventPaste:
		app.pasting = ev.Start()
	case *tcell.EventResize:
		app.screen.Sync()
	}
}

// handleKey routes a key press to the active window. Pasted text in
// normal mode is dropped so that it does not trigger shortcuts.
func (app *Application) handleKey(ev *tcell.EventKey) {
	w := app.set.Active()
	if w == nil {
		return
	}
	if app.pasting && w.Mode() == mode.Normal && !w.Inputbar().Active() {
		return
	}
	w.HandleKey(ui.ConvertKey(ev))
}

// draw renders the active window.
func (app *Application) draw() {
	frame := ui.Frame{Count: app.set.Len()}
	if w := app.set.Active(); w != nil {
		frame.Surface, _ = w.Surface().(*ui.Surface)
		frame.Index = slices.Index(app.set.Windows(), w)
	}
	app.screen.Draw(frame)
}
