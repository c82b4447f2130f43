package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrClosed indicates an operation on a closed page or browser.
	ErrClosed = errors.New("engine is closed")

	// ErrNoBrowser indicates the browser process could not be started.
	ErrNoBrowser = errors.New("browser not available")
)
