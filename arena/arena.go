// Package arena implements a bump-style allocator that hands out stable
// integer handles instead of raw pointers. Growing the backing slice never
// invalidates a previously issued Ref, which is what lets the automaton
// package build a trie entirely out of slice-indexed state without a
// pointer-relocation step: the arena contract this package replaces required
// every interior pointer be registered so it could be fixed up if the
// backing buffer moved. An index never moves.
package arena

import "errors"

// ErrCapacityExceeded is returned by Allocate when an arena constructed
// with NewBounded has reached its configured limit.
var ErrCapacityExceeded = errors.New("arena: capacity exceeded")

// Ref is an arena-relative index into an Arena[T]. The zero value is a
// valid reference to the first allocated item; use NoRef to represent
// "no item".
type Ref int32

// NoRef is the sentinel Ref meaning "absent".
const NoRef Ref = -1

// Arena is a growable store of T, addressed by Ref rather than pointer.
type Arena[T any] struct {
	items []T
	max   int // 0 means unbounded
}

// New creates an unbounded arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// NewBounded creates an arena that refuses to grow past max items.
// A max of 0 means unbounded.
func NewBounded[T any](max int) *Arena[T] {
	return &Arena[T]{max: max}
}

// NewSize creates an unbounded arena with a pre-reserved capacity hint.
func NewSize[T any](capacity int) *Arena[T] {
	return &Arena[T]{items: make([]T, 0, capacity)}
}

// Allocate reserves space for one T, zero-valued, and returns its stable
// Ref together with a pointer to it. The returned pointer is only valid
// until the next call to Allocate on this arena; store the Ref and call
// Get when you need the value again later.
func (a *Arena[T]) Allocate() (Ref, *T, error) {
	if a.max > 0 && len(a.items) >= a.max {
		return NoRef, nil, ErrCapacityExceeded
	}
	var zero T
	a.items = append(a.items, zero)
	ref := Ref(len(a.items) - 1)
	return ref, &a.items[ref], nil
}

// MakeRelocatable exists for interface parity with the pointer-relocation
// arena this package replaces. Because Refs are indices, not raw pointers,
// growing the arena never invalidates them, so there is nothing to
// register. It is a documented no-op.
func (a *Arena[T]) MakeRelocatable(Ref) {}

// Get returns a pointer to the item referenced by ref. The pointer is
// valid until the next Allocate call.
func (a *Arena[T]) Get(ref Ref) *T {
	return &a.items[ref]
}

// Len reports how many items have been allocated.
func (a *Arena[T]) Len() int {
	return len(a.items)
}
