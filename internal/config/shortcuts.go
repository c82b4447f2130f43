package config

import (
	"fmt"
	"strings"

	"github.com/dshills/ripcurl/internal/input/key"
	"github.com/dshills/ripcurl/internal/input/mode"
)

// Validate checks the key specification and mode of a binding. The action
// name is checked by the table that binds it.
func (b ShortcutBinding) Validate() error {
	if strings.TrimSpace(b.Action) == "" {
		return fmt.Errorf("%w: %q has no action", ErrInvalidBinding, b.Keys)
	}
	if _, err := key.Parse(b.Keys); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBinding, err)
	}
	if _, ok := mode.Parse(b.Mode); !ok {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidBinding, b.Mode)
	}
	return nil
}

// ModeMask returns the binding's mode mask. Invalid modes give Normal.
func (b ShortcutBinding) ModeMask() mode.Mode {
	m, ok := mode.Parse(b.Mode)
	if !ok {
		return mode.Normal
	}
	return m
}
