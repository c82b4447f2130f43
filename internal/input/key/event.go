package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the modifier keys held during the press.
	Modifiers Modifier

	// Consumed contains the modifiers the keyboard layout already used to
	// produce Rune, such as Shift for 'G' or '+'.
	Consumed Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
	}
}

// Resolve returns the event reduced to what shortcut matching compares:
// consumed modifiers are removed and the remainder is masked to
// Significant.
func (e Event) Resolve() Event {
	return Event{
		Key:       e.Key,
		Rune:      e.Rune,
		Modifiers: (e.Modifiers &^ e.Consumed) & Significant,
	}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character that would be
// inserted as text.
func (e Event) IsChar() bool {
	if !e.IsRune() || !unicode.IsPrint(e.Rune) {
		return false
	}
	return e.Resolve().Modifiers&(ModCtrl|ModAlt) == 0
}

// String returns a canonical string representation.
// Examples: "a", "G", "C-c", "Esc", "S-Tab"
func (e Event) String() string {
	var parts []string

	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if e.Modifiers.HasMeta() {
		parts = append(parts, "M")
	}
	if e.Modifiers.HasShift() && !e.Consumed.HasShift() {
		parts = append(parts, "S")
	}

	parts = append(parts, e.keyName())
	return strings.Join(parts, "-")
}

// VimString returns a Vim-style string representation.
// Examples: "<Esc>", "<C-c>", "<S-Tab>", "<CR>", "a", "G"
func (e Event) VimString() string {
	r := e.Resolve()
	if r.IsRune() && r.Modifiers == ModNone {
		if r.Rune == ' ' {
			return "<Space>"
		}
		return string(r.Rune)
	}

	var parts []string
	if r.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if r.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if r.Modifiers.HasShift() {
		parts = append(parts, "S")
	}
	if r.Key == KeyEnter {
		parts = append(parts, "CR")
	} else {
		parts = append(parts, r.keyName())
	}
	return "<" + strings.Join(parts, "-") + ">"
}

func (e Event) keyName() string {
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			return "Space"
		}
		return string(e.Rune)
	case KeyEscape:
		return "Esc"
	case KeyBackspace:
		return "BS"
	case KeyDelete:
		return "Del"
	case KeyInsert:
		return "Ins"
	default:
		return e.Key.String()
	}
}

// Equals returns true if two events represent the same resolved key press.
func (e Event) Equals(other Event) bool {
	a, b := e.Resolve(), other.Resolve()
	return a.Key == b.Key && a.Rune == b.Rune && a.Modifiers == b.Modifiers
}

// Matches checks if this event matches a key specification string.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return e.Equals(parsed)
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s, Consumed: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String(), e.Consumed.String())
}
