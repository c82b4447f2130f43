// Package inputbar implements the controller of a window's input bar.
//
// The input bar is a single-line text field at the bottom of a window. It
// is used to type commands (":open example.com"), to type special commands
// selected by their first character ("/needle"), and to show
// notifications. The Controller owns the command flow and talks to the
// toolkit only through the Widget and Focuser interfaces, so it can be
// driven by the terminal UI or by an in-memory widget in tests.
package inputbar
