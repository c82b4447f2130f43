// Package browser implements ripcurl's windows: per-window state, the
// window set, and the shortcut and command handlers that act on a window.
//
// A Window pairs an engine page with a Surface from the UI toolkit. All
// Window and Set methods must be called from the UI goroutine; engine
// callbacks are marshalled there with the Set's post function.
//
// The shortcut tables and the command registry are built once at startup
// from DefaultShortcuts, DefaultInputbarShortcuts, DefaultCommands and
// DefaultSpecials, extended by user bindings (Bind, BindInputbar) and Lua
// commands (LuaCommands), and then shared by every window.
package browser
