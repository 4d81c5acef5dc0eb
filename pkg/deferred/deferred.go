// Package deferred provides a value that settles once, in the background, and can be awaited
// or observed independently of any sibling values.
package deferred

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// State is the settlement state of a Value.
type State int

const (
	Pending State = iota
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrPending is returned by Result while the value has not settled.
var ErrPending = errors.New("deferred: value is still pending")

// Listener is notified once when a Value settles.
type Listener[T any] func(state State, val T, err error)

// Value is Pending until it is resolved with a value or rejected with an error.
// Only the first settlement counts.
type Value[T any] struct {
	mu        sync.Mutex
	state     State
	val       T
	err       error
	done      chan struct{}
	listeners []Listener[T]
}

// New returns a pending Value.
func New[T any]() *Value[T] {
	return &Value[T]{done: make(chan struct{})}
}

// Go runs fn in its own goroutine and settles the returned Value with its outcome.
func Go[T any](fn func() (T, error)) *Value[T] {
	v := New[T]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				v.Reject(fmt.Errorf("deferred: producer panicked: %v", r))
			}
		}()
		val, err := fn()
		if err != nil {
			v.Reject(err)
			return
		}
		v.Resolve(val)
	}()
	return v
}

// Resolved returns a Value that is already Ready.
func Resolved[T any](val T) *Value[T] {
	v := New[T]()
	v.Resolve(val)
	return v
}

// Rejected returns a Value that has already Failed.
func Rejected[T any](err error) *Value[T] {
	v := New[T]()
	v.Reject(err)
	return v
}

// Resolve settles v as Ready. It reports whether this call settled v.
func (v *Value[T]) Resolve(val T) bool {
	return v.settle(Ready, val, nil)
}

// Reject settles v as Failed. A nil err is replaced so that Failed always carries an error.
func (v *Value[T]) Reject(err error) bool {
	if err == nil {
		err = errors.New("deferred: rejected without error")
	}
	var zero T
	return v.settle(Failed, zero, err)
}

func (v *Value[T]) settle(state State, val T, err error) bool {
	v.mu.Lock()
	if v.state != Pending {
		v.mu.Unlock()
		return false
	}
	v.state = state
	v.val = val
	v.err = err
	listeners := v.listeners
	v.listeners = nil
	close(v.done)
	v.mu.Unlock()

	for _, fn := range listeners {
		fn(state, val, err)
	}
	return true
}

// State returns the current state.
func (v *Value[T]) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Done is closed once v settles.
func (v *Value[T]) Done() <-chan struct{} {
	return v.done
}

// Result returns the settled outcome without blocking, or ErrPending.
func (v *Value[T]) Result() (T, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == Pending {
		var zero T
		return zero, ErrPending
	}
	return v.val, v.err
}

// Await blocks until v settles or ctx is done.
func (v *Value[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-v.done:
		return v.Result()
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Subscribe registers fn for the settlement of v. If v has already settled, fn runs immediately
// on the caller's goroutine; otherwise it runs on the goroutine that settles v.
func (v *Value[T]) Subscribe(fn Listener[T]) {
	v.mu.Lock()
	if v.state == Pending {
		v.listeners = append(v.listeners, fn)
		v.mu.Unlock()
		return
	}
	state, val, err := v.state, v.val, v.err
	v.mu.Unlock()
	fn(state, val, err)
}
