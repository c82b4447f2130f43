package input

import "strconv"

// Arg is the argument bound to a shortcut or special command and passed to
// its action. The concrete types below are the complete set.
type Arg interface {
	isArg()
	String() string
}

// NoArg is the argument for actions that take none.
type NoArg struct{}

func (NoArg) isArg() {}

// String returns the empty string.
func (NoArg) String() string { return "" }

// Direction selects the next or previous element of a sequence such as a
// search match or a history entry.
type Direction uint8

const (
	// DirNext moves forward.
	DirNext Direction = iota
	// DirPrevious moves backward.
	DirPrevious
)

func (Direction) isArg() {}

// String returns a string representation of the direction.
func (d Direction) String() string {
	if d == DirPrevious {
		return "previous"
	}
	return "next"
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == DirPrevious {
		return DirNext
	}
	return DirPrevious
}

// Zoom selects a zoom operation.
type Zoom uint8

const (
	ZoomIn Zoom = iota
	ZoomOut
	ZoomReset
)

func (Zoom) isArg() {}

// String returns a string representation of the zoom operation.
func (z Zoom) String() string {
	switch z {
	case ZoomIn:
		return "in"
	case ZoomOut:
		return "out"
	default:
		return "reset"
	}
}

// DeleteOp selects how much text an input bar deletion removes.
type DeleteOp uint8

const (
	// DeleteChar removes the character before the caret.
	DeleteChar DeleteOp = iota
	// DeleteWord removes the word before the caret.
	DeleteWord
	// DeleteLine removes everything before the caret.
	DeleteLine
)

func (DeleteOp) isArg() {}

// String returns a string representation of the delete operation.
func (d DeleteOp) String() string {
	switch d {
	case DeleteWord:
		return "word"
	case DeleteLine:
		return "line"
	default:
		return "char"
	}
}

// Scroll selects a scroll movement of the page view.
type Scroll uint8

const (
	ScrollDown Scroll = iota
	ScrollUp
	ScrollHalfDown
	ScrollHalfUp
	ScrollTop
	ScrollBottom
)

func (Scroll) isArg() {}

// String returns a string representation of the scroll movement.
func (s Scroll) String() string {
	switch s {
	case ScrollUp:
		return "up"
	case ScrollHalfDown:
		return "half-down"
	case ScrollHalfUp:
		return "half-up"
	case ScrollTop:
		return "top"
	case ScrollBottom:
		return "bottom"
	default:
		return "down"
	}
}

// Text carries literal text, such as the prefill of the input bar.
type Text string

func (Text) isArg() {}

// String returns the text.
func (t Text) String() string { return string(t) }

// Flag carries a boolean option, such as bypassing the cache on reload.
type Flag bool

func (Flag) isArg() {}

// String returns "true" or "false".
func (f Flag) String() string { return strconv.FormatBool(bool(f)) }

// ParseArg parses the textual form of an argument for the given kind.
// Kinds are "none", "direction", "zoom", "delete", "scroll", "text" and
// "flag". It reports false when the value is not valid for the kind.
func ParseArg(kind, value string) (Arg, bool) {
	switch kind {
	case "", "none":
		return NoArg{}, true
	case "direction":
		switch value {
		case "next", "forward", "":
			return DirNext, true
		case "previous", "backward", "prev":
			return DirPrevious, true
		}
	case "zoom":
		switch value {
		case "in", "":
			return ZoomIn, true
		case "out":
			return ZoomOut, true
		case "reset":
			return ZoomReset, true
		}
	case "delete":
		switch value {
		case "char", "":
			return DeleteChar, true
		case "word":
			return DeleteWord, true
		case "line":
			return DeleteLine, true
		}
	case "scroll":
		for s := ScrollDown; s <= ScrollBottom; s++ {
			if s.String() == value {
				return s, true
			}
		}
	case "text":
		return Text(value), true
	case "flag":
		b, err := strconv.ParseBool(value)
		if err == nil {
			return Flag(b), true
		}
		if value == "" {
			return Flag(false), true
		}
	}
	return nil, false
}
