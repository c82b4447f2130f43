package inputbar

// Level is the severity of a notification shown in the input bar.
type Level uint8

const (
	// Default is an informational message.
	Default Level = iota
	// Error reports a failed operation.
	Error
	// Warning reports a recoverable problem.
	Warning
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "default"
	}
}

// ParseLevel converts a level name to a Level. Unknown names map to
// Default.
func ParseLevel(name string) Level {
	switch name {
	case "error":
		return Error
	case "warning", "warn":
		return Warning
	default:
		return Default
	}
}
