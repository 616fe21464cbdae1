package fileio

import (
	"errors"
	"io/fs"
)

// Sentinel errors.
var (
	// ErrNoPath indicates an operation needs a path and none is bound.
	ErrNoPath = errors.New("no file path")

	// ErrNotExist indicates the file does not exist.
	ErrNotExist = fs.ErrNotExist
)

// OperationError describes a failed load or save.
type OperationError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the wrapper itself and the wrapped error.
func (e *OperationError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*OperationError); ok {
		return e == t
	}
	return errors.Is(e.Err, target)
}

func wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &OperationError{Op: op, Path: path, Err: err}
}
