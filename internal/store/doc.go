// Package store persists bookmarks and browsing history as plain text
// files with one URI per line.
//
// Bookmarks keep their file order and never contain duplicates. History
// keeps the most recently visited URI first in memory and is written
// oldest first, so appending to the file by hand works as expected.
//
// Watcher reloads a store when its file is changed by another program.
package store
