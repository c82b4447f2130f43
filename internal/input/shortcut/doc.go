// Package shortcut matches key events against shortcut tables.
//
// A Shortcut binds a key, a modifier mask and a mode mask to an action and
// its argument. An InputbarShortcut has the same shape without the mode
// mask and applies while the input bar has focus. Tables are built once at
// startup and scanned linearly in order for every key event.
//
// The Router resolves an event before matching: modifiers that the
// keyboard layout consumed to produce the rune are dropped and the rest is
// masked to Ctrl, Shift and Alt. With the AllMatches policy every matching
// entry fires in table order. With FirstMatch the scan stops at the first.
package shortcut
