// Package engine drives the web engine behind a browser window.
//
// An Engine is one page: it loads URIs, reloads, stops, zooms, searches,
// scrolls and navigates its history. It reports what happens on the page
// through Callbacks: title, URI, load progress, security state, scroll
// position, editable focus and requests to open new windows.
//
// Engine methods never block. Work is started on a goroutine and results
// come back through Callbacks, possibly from another goroutine. Callers
// that need them on a single thread must marshal them.
//
// Chrome runs headless Chrome through the DevTools protocol. Fake is an
// in-memory engine for tests.
package engine
