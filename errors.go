package rentals

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no property matches an ID.
var ErrNotFound = errors.New("property not found")

// PersistenceError reports a failure to read or write the collection slot.
//
// It is a warning: the in-memory collection stays the source of truth for the
// session.
type PersistenceError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("cannot %s collection: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
