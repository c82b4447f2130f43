package lua

import "errors"

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when a script or handler runs past
	// the execution timeout.
	ErrExecutionTimeout = errors.New("lua execution timeout")

	// ErrNoHost is raised inside Lua when a ripcurl function is called
	// outside a command handler.
	ErrNoHost = errors.New("no active window")
)
