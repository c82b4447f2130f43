package app

import (
	"errors"
	"io/fs"
	"testing"
)

func TestOperationError(t *testing.T) {
	err := NewOperationError("load", "/tmp/history", fs.ErrPermission)

	if got, want := err.Error(), "load /tmp/history: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is should match the wrapped error")
	}
	if !errors.Is(err, err) {
		t.Error("errors.Is should match the same instance")
	}
	if errors.Is(err, NewOperationError("load", "/tmp/history", fs.ErrPermission)) {
		t.Error("errors.Is should not match a different wrapper")
	}

	var op *OperationError
	if !errors.As(error(err), &op) || op.Op != "load" {
		t.Errorf("errors.As = %v", op)
	}
}

func TestOperationErrorWithoutTarget(t *testing.T) {
	err := NewOperationError("launch", "", errors.New("no chrome"))
	if got, want := err.Error(), "launch: no chrome"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	var nilErr *OperationError
	if nilErr.Error() != "" || nilErr.Unwrap() != nil || nilErr.Is(ErrQuit) {
		t.Error("nil OperationError should be inert")
	}
}
