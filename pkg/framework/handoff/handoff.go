// Package handoff provides the lock-free primitives used to pass freshly
// loaded assets from a background loader to the audio context.
//
// Both types are single-producer/single-consumer: one context publishes, one
// context consumes. They carry acquire/release semantics via sync/atomic, so
// everything written before Publish is visible to the goroutine that Takes.
package handoff

import "sync/atomic"

// Slot is a single-item mailbox holding an optional owned pointer.
//
// Publish parks a value in the slot; Take removes it and transfers ownership
// to the caller. At most one value is in flight at a time; the producer must
// not Publish again until the consumer has Taken (in this codebase that is
// enforced by Flag, the one-load-in-flight guard).
type Slot[T any] struct {
	p atomic.Pointer[T]
}

// Publish parks v in the slot. Any previously published, un-taken value is
// overwritten; the SPSC contract makes that unreachable in practice.
func (s *Slot[T]) Publish(v *T) {
	s.p.Store(v)
}

// Take removes and returns the parked value, or nil if the slot is empty.
// The caller owns the returned value.
func (s *Slot[T]) Take() *T {
	return s.p.Swap(nil)
}

// Peek returns the parked value without taking ownership. Intended for
// teardown and tests, not for the audio path.
func (s *Slot[T]) Peek() *T {
	return s.p.Load()
}

// Flag is an atomic boolean guard with a test-and-set acquire operation.
type Flag struct {
	b atomic.Bool
}

// TrySet atomically sets the flag and reports whether this call set it.
// A false return means the flag was already set.
func (f *Flag) TrySet() bool {
	return f.b.CompareAndSwap(false, true)
}

// Clear resets the flag.
func (f *Flag) Clear() {
	f.b.Store(false)
}

// IsSet reports the flag state.
func (f *Flag) IsSet() bool {
	return f.b.Load()
}
