package key

import "strings"

// Modifier is a set of held modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << (iota - 1)
	ModCtrl
	ModAlt
	// ModMeta is Super or Cmd. Terminals rarely report it.
	ModMeta
)

// Significant is the set of modifiers that take part in shortcut matching.
// Anything outside it (Meta, lock keys reported by some terminals) is
// ignored when an event is compared to a shortcut.
const Significant = ModCtrl | ModShift | ModAlt

// modifierOrder is the order modifiers are printed in.
var modifierOrder = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModMeta, "Meta"},
}

func (m Modifier) Has(mod Modifier) bool { return m&mod != 0 }
func (m Modifier) HasShift() bool        { return m.Has(ModShift) }
func (m Modifier) HasCtrl() bool         { return m.Has(ModCtrl) }
func (m Modifier) HasAlt() bool          { return m.Has(ModAlt) }
func (m Modifier) HasMeta() bool         { return m.Has(ModMeta) }

func (m Modifier) With(mod Modifier) Modifier    { return m | mod }
func (m Modifier) Without(mod Modifier) Modifier { return m &^ mod }

// String returns the held modifiers joined by "+", such as "Ctrl+Shift".
func (m Modifier) String() string {
	var parts []string
	for _, o := range modifierOrder {
		if m.Has(o.mod) {
			parts = append(parts, o.name)
		}
	}
	return strings.Join(parts, "+")
}

// modifierNames accepts both the long names of "Ctrl+x" specs and the
// one-letter prefixes of "<C-x>" specs.
var modifierNames = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"c":       ModCtrl,
	"alt":     ModAlt,
	"a":       ModAlt,
	"shift":   ModShift,
	"s":       ModShift,
	"meta":    ModMeta,
	"m":       ModMeta,
	"super":   ModMeta,
}

// ModifierFromName returns the modifier called name, ignoring case, or
// ModNone.
func ModifierFromName(name string) Modifier {
	return modifierNames[strings.ToLower(name)]
}
