// Package input holds the values shared by the key handling packages of
// ripcurl.
//
// # Architecture
//
// Keyboard input flows through several cooperating packages:
//
//   - key: Parses shortcut specifications and normalizes terminal key events
//   - mode: Tracks whether keys drive the browser or the focused page field
//   - command: Tokenizes input bar text and looks up commands
//   - shortcut: Matches key events against the shortcut tables
//   - inputbar: Drives the command line shown at the bottom of a window
//   - complete: Ranks Tab completion candidates for the input bar
//
// The Arg types defined here are the arguments bound to shortcuts and
// special commands. Arg is a closed set so actions can switch on it.
package input
