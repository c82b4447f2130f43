package shortcut

import (
	"fmt"

	"github.com/dshills/ripcurl/internal/input"
	"github.com/dshills/ripcurl/internal/input/key"
	"github.com/dshills/ripcurl/internal/input/mode"
)

// Action is the handler bound to a shortcut.
type Action[T any] func(target T, arg input.Arg)

// Shortcut binds a key in some modes to an action.
type Shortcut[T any] struct {
	// Key is the resolved key. Its Modifiers field is the modifier mask
	// that must be held exactly.
	Key key.Event

	// Mode is the set of modes in which the shortcut is active.
	Mode mode.Mode

	// Name identifies the action in logs.
	Name string

	// Action runs when the shortcut matches.
	Action Action[T]

	// Arg is passed to Action.
	Arg input.Arg
}

// New parses spec and builds a shortcut.
func New[T any](spec string, m mode.Mode, name string, action Action[T], arg input.Arg) (Shortcut[T], error) {
	ev, err := key.Parse(spec)
	if err != nil {
		return Shortcut[T]{}, fmt.Errorf("shortcut %s: %w", name, err)
	}
	if action == nil {
		return Shortcut[T]{}, fmt.Errorf("shortcut %s: no action", name)
	}
	if arg == nil {
		arg = input.NoArg{}
	}
	return Shortcut[T]{Key: ev.Resolve(), Mode: m, Name: name, Action: action, Arg: arg}, nil
}

// Must is like New but panics on error. Use only for built-in tables.
func Must[T any](spec string, m mode.Mode, name string, action Action[T], arg input.Arg) Shortcut[T] {
	s, err := New(spec, m, name, action, arg)
	if err != nil {
		panic(err)
	}
	return s
}

// Matches reports whether the resolved event ev selects this shortcut in
// the current mode.
func (s Shortcut[T]) Matches(ev key.Event, current mode.Mode) bool {
	return s.Mode.Includes(current) && sameKey(s.Key, ev)
}

// String describes the shortcut for logs.
func (s Shortcut[T]) String() string {
	return fmt.Sprintf("%s [%s] -> %s", s.Key.VimString(), s.Mode, s.Name)
}

// InputbarShortcut binds a key to an action while the input bar has focus.
type InputbarShortcut[T any] struct {
	// Key is the resolved key including the modifier mask.
	Key key.Event

	// Name identifies the action in logs.
	Name string

	// Action runs when the shortcut matches.
	Action Action[T]

	// Arg is passed to Action.
	Arg input.Arg
}

// NewInputbar parses spec and builds an input bar shortcut.
func NewInputbar[T any](spec, name string, action Action[T], arg input.Arg) (InputbarShortcut[T], error) {
	s, err := New(spec, mode.All, name, action, arg)
	if err != nil {
		return InputbarShortcut[T]{}, err
	}
	return InputbarShortcut[T]{Key: s.Key, Name: s.Name, Action: s.Action, Arg: s.Arg}, nil
}

// MustInputbar is like NewInputbar but panics on error.
func MustInputbar[T any](spec, name string, action Action[T], arg input.Arg) InputbarShortcut[T] {
	s, err := NewInputbar(spec, name, action, arg)
	if err != nil {
		panic(err)
	}
	return s
}

// Matches reports whether the resolved event ev selects this shortcut.
func (s InputbarShortcut[T]) Matches(ev key.Event) bool {
	return sameKey(s.Key, ev)
}

func sameKey(bound, ev key.Event) bool {
	return bound.Key == ev.Key && bound.Rune == ev.Rune && bound.Modifiers == ev.Modifiers
}
