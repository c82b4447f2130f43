package command

import (
	"errors"
	"fmt"

	"github.com/dshills/ripcurl/internal/input"
)

// Registry errors.
var (
	ErrEmptyName     = errors.New("command has no name")
	ErrNilHandler    = errors.New("command has no handler")
	ErrDuplicateName = errors.New("duplicate command name")
)

// Handler runs a command with the tokens that followed its name. It
// returns true when the input bar should close.
type Handler[T any] func(target T, args []string) bool

// Command is a named input bar command.
type Command[T any] struct {
	// Name is matched case-sensitively against the first token.
	Name string

	// Abbrev is an optional short form, such as "o" for "open".
	Abbrev string

	// Description is shown in logs and help output.
	Description string

	// Run executes the command.
	Run Handler[T]
}

// Matches reports whether name selects this command.
func (c Command[T]) Matches(name string) bool {
	return name == c.Name || (c.Abbrev != "" && name == c.Abbrev)
}

// SpecialHandler runs a special command with the bar text after the
// identifier. activated is false while the user types and true when the
// line is submitted. It returns true when the input bar should close.
type SpecialHandler[T any] func(target T, text string, arg input.Arg, activated bool) bool

// SpecialCommand is selected by the first character of the bar text.
type SpecialCommand[T any] struct {
	// ID is the identifier character, such as '/'.
	ID rune

	// Arg is passed to Run unchanged.
	Arg input.Arg

	// Run executes the special command.
	Run SpecialHandler[T]
}

// Registry is an immutable set of commands and special commands.
type Registry[T any] struct {
	commands []Command[T]
	specials []SpecialCommand[T]
}

// NewRegistry validates and copies the given tables. A name or
// abbreviation may only be claimed once.
func NewRegistry[T any](commands []Command[T], specials []SpecialCommand[T]) (*Registry[T], error) {
	seen := make(map[string]string)
	claim := func(key, owner string) error {
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: %q used by %q and %q", ErrDuplicateName, key, prev, owner)
		}
		seen[key] = owner
		return nil
	}

	for _, c := range commands {
		if c.Name == "" {
			return nil, ErrEmptyName
		}
		if c.Run == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilHandler, c.Name)
		}
		if err := claim(c.Name, c.Name); err != nil {
			return nil, err
		}
		if c.Abbrev != "" {
			if err := claim(c.Abbrev, c.Name); err != nil {
				return nil, err
			}
		}
	}

	ids := make(map[rune]bool)
	for _, s := range specials {
		if s.Run == nil {
			return nil, fmt.Errorf("%w: special %q", ErrNilHandler, s.ID)
		}
		if ids[s.ID] {
			return nil, fmt.Errorf("%w: special %q", ErrDuplicateName, s.ID)
		}
		ids[s.ID] = true
	}

	r := &Registry[T]{
		commands: make([]Command[T], len(commands)),
		specials: make([]SpecialCommand[T], len(specials)),
	}
	copy(r.commands, commands)
	copy(r.specials, specials)
	for i := range r.specials {
		if r.specials[i].Arg == nil {
			r.specials[i].Arg = input.NoArg{}
		}
	}
	return r, nil
}

// Lookup returns the command whose name or abbreviation equals name.
func (r *Registry[T]) Lookup(name string) (Command[T], bool) {
	for _, c := range r.commands {
		if c.Matches(name) {
			return c, true
		}
	}
	return Command[T]{}, false
}

// Special returns the special command with the given identifier.
func (r *Registry[T]) Special(id rune) (SpecialCommand[T], bool) {
	for _, s := range r.specials {
		if s.ID == id {
			return s, true
		}
	}
	return SpecialCommand[T]{}, false
}

// Commands returns a copy of the command table in registration order.
func (r *Registry[T]) Commands() []Command[T] {
	out := make([]Command[T], len(r.commands))
	copy(out, r.commands)
	return out
}
