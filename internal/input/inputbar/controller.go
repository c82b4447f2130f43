package inputbar

import (
	"unicode/utf8"

	"github.com/dshills/ripcurl/internal/input"
	"github.com/dshills/ripcurl/internal/input/command"
)

// UnknownCommand is the message prefix shown when a command line names no
// registered command.
const UnknownCommand = "Unknown command"

// delimiters separate the tokens of a command line.
const delimiters = " \t"

// Config holds the collaborators of a Controller.
type Config[T any] struct {
	// Target is passed to every command handler.
	Target T

	// Widget is the bar itself.
	Widget Widget

	// View receives focus when the bar gives it up.
	View Focuser

	// Registry resolves commands and special commands.
	Registry *command.Registry[T]

	// History records activated command lines.
	History *command.History

	// Liveness reports whether Target still exists after a handler ran.
	Liveness Liveness

	// Private reports whether history recording is disabled.
	Private func() bool

	// OnAbort runs after the bar is hidden by Abort.
	OnAbort func()
}

// Controller drives one window's input bar.
type Controller[T any] struct {
	target   T
	bar      Widget
	view     Focuser
	registry *command.Registry[T]
	history  *command.History
	recall   *command.Recall
	liveness Liveness
	private  func() bool
	onAbort  func()
}

// New creates a controller. Registry, Widget and View are required.
func New[T any](cfg Config[T]) *Controller[T] {
	c := &Controller[T]{
		target:   cfg.Target,
		bar:      cfg.Widget,
		view:     cfg.View,
		registry: cfg.Registry,
		history:  cfg.History,
		liveness: cfg.Liveness,
		private:  cfg.Private,
		onAbort:  cfg.OnAbort,
	}
	if c.history == nil {
		c.history = command.NewHistory()
	}
	if c.liveness == nil {
		c.liveness = LivenessFunc(func() bool { return true })
	}
	if c.private == nil {
		c.private = func() bool { return false }
	}
	c.recall = command.NewRecall(c.history)
	return c
}

// Show makes the bar visible with the given prefill and gives it focus.
// An empty prefill keeps the current text.
func (c *Controller[T]) Show(prefill string) {
	c.bar.SetLevel(Default)
	if prefill != "" {
		c.bar.SetText(prefill)
	}
	c.recall.Reset()
	c.bar.SetVisible(true)
	c.bar.Focus()
}

// Abort clears any notification, hides the bar and returns focus to the
// view.
func (c *Controller[T]) Abort() {
	c.bar.SetLevel(Default)
	c.bar.SetText("")
	c.bar.SetVisible(false)
	c.recall.Reset()
	c.view.Focus()
	if c.onAbort != nil {
		c.onAbort()
	}
}

// Notify shows msg in the bar at the given level without taking focus.
func (c *Controller[T]) Notify(level Level, msg string) {
	c.bar.SetLevel(level)
	c.bar.SetText(msg)
	c.bar.SetVisible(true)
}

// OnTextChanged is called after every edit of the bar text. A special
// command selected by the first character runs with activated false.
func (c *Controller[T]) OnTextChanged(text string) {
	id, size := utf8.DecodeRuneInString(text)
	if size == 0 {
		return
	}
	if sc, ok := c.registry.Special(id); ok {
		sc.Run(c.target, text[size:], sc.Arg, false)
	}
}

// OnActivate is called when the user submits the bar text.
func (c *Controller[T]) OnActivate(text string) {
	// Nothing beyond the prefix was typed.
	if utf8.RuneCountInString(text) <= 1 {
		c.Abort()
		return
	}

	id, size := utf8.DecodeRuneInString(text)
	if sc, ok := c.registry.Special(id); ok {
		if sc.Run(c.target, text[size:], sc.Arg, true) && c.liveness.Alive() {
			c.Abort()
		}
		return
	}

	if !c.private() {
		c.history.Add(text)
	}

	tokens := command.Tokenize(text[size:], delimiters)
	if len(tokens) == 0 {
		c.Abort()
		return
	}

	cmd, ok := c.registry.Lookup(tokens[0])
	if !ok {
		c.Notify(Error, UnknownCommand+": "+tokens[0])
		if c.liveness.Alive() {
			c.view.Focus()
		}
		return
	}

	closeBar := cmd.Run(c.target, tokens[1:])

	// The handler may have closed the window that owns this bar.
	if !c.liveness.Alive() {
		return
	}

	c.view.Focus()
	if closeBar {
		c.Abort()
	}
}

// NavigateHistory replaces the bar text with the previous or next history
// entry. It does nothing when the history is empty.
func (c *Controller[T]) NavigateHistory(dir input.Direction) {
	var (
		entry string
		ok    bool
	)
	if dir == input.DirPrevious {
		entry, ok = c.recall.Previous()
	} else {
		entry, ok = c.recall.Next()
	}
	if !ok {
		return
	}
	c.bar.SetText(entry)
}

// Delete removes text before the caret. Emptying the bar aborts it.
func (c *Controller[T]) Delete(op input.DeleteOp) {
	switch op {
	case input.DeleteWord:
		c.bar.DeleteWordBackward()
	case input.DeleteLine:
		c.bar.DeleteToStart()
	default:
		c.bar.DeleteBackward()
	}
	if c.bar.Text() == "" {
		c.Abort()
	}
}

// DeleteChar removes the character before the caret. Emptying the bar
// aborts it.
func (c *Controller[T]) DeleteChar() {
	c.Delete(input.DeleteChar)
}

// Text returns the current bar text.
func (c *Controller[T]) Text() string {
	return c.bar.Text()
}

// Active reports whether the bar has keyboard focus.
func (c *Controller[T]) Active() bool {
	return c.bar.Visible() && c.bar.Focused()
}
