package agent

import (
	"context"
	"errors"
	"sync"
)

// State is the state of a delegated request.
type State int

const (
	Idle State = iota
	Requesting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Requesting:
		return "requesting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

var (
	// ErrBusy is returned by Call.Do while a request is outstanding.
	ErrBusy = errors.New("a request is already in progress")
	// ErrDiscarded is returned by Call.Do when the request was superseded by
	// Discard before it completed.
	ErrDiscarded = errors.New("request discarded")
)

// Call guards one kind of delegated request: only one can be outstanding at a
// time, and a superseded request's result is dropped.
//
// The zero value is ready to use.
type Call[T any] struct {
	mu    sync.Mutex
	state State
	gen   uint64 // incremented on every Do and Discard
	last  T
	err   error
}

// Do runs fn unless a request is already outstanding. Failures are never
// retried.
func (c *Call[T]) Do(ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	c.mu.Lock()
	if c.state == Requesting {
		c.mu.Unlock()
		return zero, ErrBusy
	}
	c.state = Requesting
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	v, err := fn(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// superseded: Discard already moved the state on.
		return zero, ErrDiscarded
	}
	if err != nil {
		c.state, c.last, c.err = Failed, zero, err
		return zero, err
	}
	c.state, c.last, c.err = Succeeded, v, nil
	return v, nil
}

// Discard drops the outstanding request, if any, and returns to Idle.
func (c *Call[T]) Discard() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	c.gen++
	c.state, c.last, c.err = Idle, zero, nil
}

// State returns the current state.
func (c *Call[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Result returns the outcome of the last completed request.
func (c *Call[T]) Result() (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, c.err
}
