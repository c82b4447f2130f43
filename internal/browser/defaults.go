package browser

import (
	"github.com/dshills/ripcurl/internal/input"
	"github.com/dshills/ripcurl/internal/input/command"
	"github.com/dshills/ripcurl/internal/input/mode"
	"github.com/dshills/ripcurl/internal/input/shortcut"
)

// DefaultShortcuts returns the built-in shortcut table.
func DefaultShortcuts() []shortcut.Shortcut[*Window] {
	sc := shortcut.Must[*Window]
	n := mode.Normal
	return []shortcut.Shortcut[*Window]{
		sc("<Esc>", mode.All, "abort", scAbort, nil),
		sc(":", n, "inputbar", scInputbar, input.Text(":")),
		sc("o", n, "inputbar", scInputbar, input.Text(":open ")),
		sc("O", n, "open-current", scOpenCurrent, nil),
		sc("t", n, "inputbar", scInputbar, input.Text(":winopen ")),
		sc("/", n, "inputbar", scInputbar, input.Text("/")),
		sc("?", n, "inputbar", scInputbar, input.Text("?")),
		sc("n", n, "search", scSearch, input.DirNext),
		sc("N", n, "search", scSearch, input.DirPrevious),
		sc("r", n, "reload", scReload, input.Flag(false)),
		sc("R", n, "reload", scReload, input.Flag(true)),
		sc("<C-c>", n, "stop", scStop, nil),
		sc("+", n, "zoom", scZoom, input.ZoomIn),
		sc("-", n, "zoom", scZoom, input.ZoomOut),
		sc("=", n, "zoom", scZoom, input.ZoomReset),
		sc("H", n, "back", scBack, nil),
		sc("L", n, "forward", scForward, nil),
		sc("j", n, "scroll", scScroll, input.ScrollDown),
		sc("k", n, "scroll", scScroll, input.ScrollUp),
		sc("<C-d>", n, "scroll", scScroll, input.ScrollHalfDown),
		sc("<C-u>", n, "scroll", scScroll, input.ScrollHalfUp),
		sc("g", n, "scroll", scScroll, input.ScrollTop),
		sc("G", n, "scroll", scScroll, input.ScrollBottom),
		sc("<C-q>", n, "close", scClose, nil),
		sc("i", n, "focus-editable", scFocusEditable, nil),
		sc("<C-n>", n, "window", scWindow, input.DirNext),
		sc("<C-p>", n, "window", scWindow, input.DirPrevious),
	}
}

// DefaultInputbarShortcuts returns the built-in input-bar shortcut table.
func DefaultInputbarShortcuts() []shortcut.InputbarShortcut[*Window] {
	ib := shortcut.MustInputbar[*Window]
	return []shortcut.InputbarShortcut[*Window]{
		ib("<Esc>", "abort", ibAbort, nil),
		ib("<C-c>", "abort", ibAbort, nil),
		ib("<Up>", "history", ibHistory, input.DirPrevious),
		ib("<Down>", "history", ibHistory, input.DirNext),
		ib("<BS>", "delete", ibDelete, input.DeleteChar),
		ib("<C-w>", "delete", ibDelete, input.DeleteWord),
		ib("<C-u>", "delete", ibDelete, input.DeleteLine),
		ib("<Tab>", "complete", ibComplete, input.DirNext),
		ib("<S-Tab>", "complete", ibComplete, input.DirPrevious),
	}
}

// DefaultCommands returns the built-in commands.
func DefaultCommands() []command.Command[*Window] {
	return []command.Command[*Window]{
		{Name: "open", Abbrev: "o", Description: "load a URI", Run: cmdOpen},
		{Name: "winopen", Abbrev: "w", Description: "load a URI in a new window", Run: cmdWinOpen},
		{Name: "bookmark", Abbrev: "b", Description: "bookmark a URI or the current page", Run: cmdBookmark},
		{Name: "back", Description: "go back in history", Run: cmdBack},
		{Name: "forward", Description: "go forward in history", Run: cmdForward},
		{Name: "reload", Abbrev: "r", Description: "reload, bypassing the cache with \"bypass\"", Run: cmdReload},
		{Name: "stop", Description: "stop loading", Run: cmdStop},
		{Name: "zoom", Description: "zoom in, out or reset", Run: cmdZoom},
		{Name: "quit", Abbrev: "q", Description: "close the window", Run: cmdQuit},
		{Name: "quitall", Abbrev: "qa", Description: "close all windows", Run: cmdQuitAll},
		{Name: "private", Description: "toggle history recording, or set it with on or off", Run: cmdPrivate},
	}
}

// DefaultSpecials returns the built-in special commands.
func DefaultSpecials() []command.SpecialCommand[*Window] {
	return []command.SpecialCommand[*Window]{
		{ID: '/', Arg: input.DirNext, Run: specialSearch},
		{ID: '?', Arg: input.DirPrevious, Run: specialSearch},
	}
}
