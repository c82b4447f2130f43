// Package ui is the terminal front end built on tcell.
//
// The terminal shows one window at a time: the page summary fills the top
// of the screen, the status bar sits on the second to last row and the
// input bar on the last row while it is visible. Each browser window owns
// a Surface; the Screen draws whichever window is active.
//
// All widget state is touched only from the event loop goroutine. Work
// from other goroutines reaches it through Screen.Post.
package ui
