// Package mode implements the modal state of a browser window.
//
// A window is in Normal mode while keys drive the browser and in Insert
// mode while an editable field of the page has focus. Shortcut tables are
// gated by a mode mask: a shortcut fires only when its mask includes the
// window's current mode, and All matches either.
//
// The Machine starts in Normal. The page's focus signal moves it to
// Insert, and aborting the input bar or losing the field's focus moves it
// back.
package mode
