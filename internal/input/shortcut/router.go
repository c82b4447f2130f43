package shortcut

import (
	"strings"

	"github.com/dshills/ripcurl/internal/input/key"
	"github.com/dshills/ripcurl/internal/input/mode"
)

// Policy selects how many matching entries fire for one event.
type Policy uint8

const (
	// AllMatches fires every matching entry in table order.
	AllMatches Policy = iota
	// FirstMatch fires only the first matching entry.
	FirstMatch
)

// String returns "all" or "first".
func (p Policy) String() string {
	if p == FirstMatch {
		return "first"
	}
	return "all"
}

// ParsePolicy converts a configuration value to a Policy.
func ParsePolicy(s string) (Policy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return AllMatches, true
	case "first":
		return FirstMatch, true
	}
	return AllMatches, false
}

// Router dispatches key events to the shortcut tables.
type Router[T any] struct {
	shortcuts []Shortcut[T]
	inputbar  []InputbarShortcut[T]
	policy    Policy
}

// NewRouter copies the tables into a router.
func NewRouter[T any](shortcuts []Shortcut[T], inputbar []InputbarShortcut[T], policy Policy) *Router[T] {
	r := &Router[T]{
		shortcuts: make([]Shortcut[T], len(shortcuts)),
		inputbar:  make([]InputbarShortcut[T], len(inputbar)),
		policy:    policy,
	}
	copy(r.shortcuts, shortcuts)
	copy(r.inputbar, inputbar)
	return r
}

// Policy returns the dispatch policy.
func (r *Router[T]) Policy() Policy {
	return r.policy
}

// Dispatch runs the shortcuts that match ev in the current mode. It
// returns true if at least one action ran.
func (r *Router[T]) Dispatch(target T, ev key.Event, current mode.Mode) bool {
	ev = ev.Resolve()
	consumed := false
	for _, s := range r.shortcuts {
		if !s.Matches(ev, current) {
			continue
		}
		s.Action(target, s.Arg)
		consumed = true
		if r.policy == FirstMatch {
			break
		}
	}
	return consumed
}

// DispatchInputbar runs the input bar shortcuts that match ev. It returns
// true if at least one action ran.
func (r *Router[T]) DispatchInputbar(target T, ev key.Event) bool {
	ev = ev.Resolve()
	consumed := false
	for _, s := range r.inputbar {
		if !s.Matches(ev) {
			continue
		}
		s.Action(target, s.Arg)
		consumed = true
		if r.policy == FirstMatch {
			break
		}
	}
	return consumed
}

// Lookup returns the shortcuts that would fire for ev in the current mode
// without running them.
func (r *Router[T]) Lookup(ev key.Event, current mode.Mode) []Shortcut[T] {
	ev = ev.Resolve()
	var out []Shortcut[T]
	for _, s := range r.shortcuts {
		if s.Matches(ev, current) {
			out = append(out, s)
			if r.policy == FirstMatch {
				break
			}
		}
	}
	return out
}
