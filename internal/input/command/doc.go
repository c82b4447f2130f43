// Package command holds the input bar command tables and the command
// history.
//
// Text entered in the input bar is either a command line (":open url") or
// a special command selected by its first character ("/needle"). Commands
// are looked up by name or abbreviation in a Registry built once at
// startup. Special commands are looked up by their identifier rune.
//
// History records activated command lines for the whole process. A Recall
// walks it from one input bar, wrapping at both ends.
package command
