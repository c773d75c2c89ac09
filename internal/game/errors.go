package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoExit       = errors.New("no exit in that direction")
	ErrRoomLocked   = errors.New("room is locked")
	ErrItemNotFound = errors.New("item not found")

	// ErrRoomNotFound means the session points at a room the world does not
	// have. The session is corrupt and cannot continue.
	ErrRoomNotFound = errors.New("room not found")
)

// ReferenceError reports an id in the world document that names nothing.
type ReferenceError struct {
	Field string // where the reference appears, e.g. `room "cell" exit north`
	Err   error
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ReferenceError) Unwrap() error {
	return e.Err
}

// ReferenceErrors is every unresolved reference found in one world document.
type ReferenceErrors []*ReferenceError

func (e ReferenceErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d unresolved references: %s", len(e), strings.Join(msgs, "; "))
}

func (e ReferenceErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}
