package mode

import "strings"

// Mode is a bit set of window modes. Normal and Insert are disjoint single
// bits; All has every bit set and is only used as a shortcut mask.
type Mode uint32

const (
	// Normal is the default mode: keys drive the browser.
	Normal Mode = 1 << iota
	// Insert is active while an editable page element has focus.
	Insert

	// All matches any mode.
	All Mode = 0x7fffffff
)

// Includes reports whether the mask m includes the mode cur.
func (m Mode) Includes(cur Mode) bool {
	return m&cur != 0
}

// String returns a lowercase name such as "normal" or "all".
func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Insert:
		return "insert"
	case All:
		return "all"
	case 0:
		return "none"
	}
	var parts []string
	if m&Normal != 0 {
		parts = append(parts, "normal")
	}
	if m&Insert != 0 {
		parts = append(parts, "insert")
	}
	return strings.Join(parts, "|")
}

// Indicator returns the status bar text for the mode.
func (m Mode) Indicator() string {
	if m == Insert {
		return "-- INSERT --"
	}
	return ""
}

// Parse converts a configuration name to a mode mask. The empty string
// means Normal.
func Parse(name string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "normal":
		return Normal, true
	case "insert":
		return Insert, true
	case "all":
		return All, true
	}
	return 0, false
}
