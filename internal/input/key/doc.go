// Package key provides key event types and parsing for shortcut tables.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single key press with its modifiers and the modifiers the
//     terminal already folded into the produced rune
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "G", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+C", "Alt+F4", "Ctrl+Shift+Tab"
//   - Vim-style: "<C-c>", "<A-f>", "<S-Tab>", "<CR>", "<Esc>"
//
// An uppercase letter is matched as the produced rune. "G" binds the rune
// 'G' and never needs an explicit Shift, since Shift is consumed by the
// translation that produced it.
package key
