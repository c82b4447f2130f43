package ui

import (
	"unicode"

	"github.com/dshills/ripcurl/internal/input/inputbar"
)

// Entry is the single-line input bar. The first character is the command
// prefix (":", "/" and so on) and survives word and line deletion.
type Entry struct {
	text    []rune
	caret   int
	level   inputbar.Level
	visible bool
	focus   *focus
}

// focus records which part of a surface has keyboard focus.
type focus struct {
	bar bool
}

// Text returns the current contents.
func (e *Entry) Text() string { return string(e.text) }

// SetText replaces the contents and moves the caret to the end.
func (e *Entry) SetText(text string) {
	e.text = []rune(text)
	e.caret = len(e.text)
}

// Caret returns the caret position in runes.
func (e *Entry) Caret() int { return e.caret }

// Insert inserts r at the caret.
func (e *Entry) Insert(r rune) {
	e.text = append(e.text, 0)
	copy(e.text[e.caret+1:], e.text[e.caret:])
	e.text[e.caret] = r
	e.caret++
}

func (e *Entry) MoveLeft() {
	if e.caret > 0 {
		e.caret--
	}
}

func (e *Entry) MoveRight() {
	if e.caret < len(e.text) {
		e.caret++
	}
}

func (e *Entry) Home() { e.caret = 0 }
func (e *Entry) End() { e.caret = len(e.text) }

// DeleteBackward removes the character before the caret.
func (e *Entry) DeleteBackward() {
	if e.caret == 0 {
		return
	}
	e.text = append(e.text[:e.caret-1], e.text[e.caret:]...)
	e.caret--
}

// DeleteWordBackward removes the word before the caret along with any
// spaces between it and the caret.
func (e *Entry) DeleteWordBackward() {
	start := e.caret
	for start > 1 && unicode.IsSpace(e.text[start-1]) {
		start--
	}
	for start > 1 && !unicode.IsSpace(e.text[start-1]) {
		start--
	}
	e.cut(start)
}

// DeleteToStart removes everything between the prefix and the caret.
func (e *Entry) DeleteToStart() {
	e.cut(1)
}

func (e *Entry) cut(start int) {
	if start >= e.caret {
		return
	}
	e.text = append(e.text[:start], e.text[e.caret:]...)
	e.caret = start
}

// SetLevel sets the notification level used to color the bar.
func (e *Entry) SetLevel(level inputbar.Level) { e.level = level }

// Level returns the notification level.
func (e *Entry) Level() inputbar.Level { return e.level }

func (e *Entry) SetVisible(visible bool) { e.visible = visible }
func (e *Entry) Visible() bool { return e.visible }

// Focus gives the bar keyboard focus.
func (e *Entry) Focus() { e.focus.bar = true }

// Focused reports whether the bar has keyboard focus.
func (e *Entry) Focused() bool { return e.focus.bar }
