package inputbar

// Widget is the toolkit side of an input bar.
type Widget interface {
	// Text returns the current contents.
	Text() string

	// SetText replaces the contents and moves the caret to the end.
	SetText(text string)

	// DeleteBackward removes the character before the caret.
	DeleteBackward()

	// DeleteWordBackward removes the word before the caret. The first
	// character, the command prefix, is kept.
	DeleteWordBackward()

	// DeleteToStart removes everything between the first character and the
	// caret.
	DeleteToStart()

	// SetLevel sets the notification level used to color the bar.
	SetLevel(level Level)

	// SetVisible shows or hides the bar.
	SetVisible(visible bool)

	// Visible reports whether the bar is shown.
	Visible() bool

	// Focus gives the bar keyboard focus.
	Focus()

	// Focused reports whether the bar has keyboard focus.
	Focused() bool
}

// Focuser receives keyboard focus when the bar gives it up.
type Focuser interface {
	Focus()
}

// Liveness reports whether the window that owns a controller still exists.
type Liveness interface {
	Alive() bool
}

// LivenessFunc adapts a function to the Liveness interface.
type LivenessFunc func() bool

// Alive calls f.
func (f LivenessFunc) Alive() bool {
	return f()
}
