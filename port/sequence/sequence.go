// Package sequence defines the roles of lazy sequence production.
//
// # Summary
//
// A sequence source's goal is to decouple the origin of the data from the consumer who uses that data.
// Most commonly it hides whether the data comes from an in-memory collection, standard input, or elsewhere.
// This approach helps to design data consumers that are not dependent on the concrete implementation of the data source,
// while still allowing for the composition and various actions on the received data stream.
// A sequence represents an iterable list of elements,
// which length is not known until it is fully traversed, thus can range from zero to infinity.
//
// The central distinction the package makes is between sources that can be
// traversed any number of times (Container) and sources that can be traversed
// only once (a bare Cursor, or a Producer whose Multipass capability is absent).
// Consumers that need more than one pass over their input are expected to make
// this requirement explicit through the guard package, instead of silently
// assuming re-iterability.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package sequence

import "io"

// Cursor is the stateful object tracking the position within one pass over a sequence.
// Clients use a cursor to access and traverse an aggregate without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
type Cursor[V any] interface {
	// Closer is required to make it able to release cursors where resources are being used behind the scene,
	// for all other cases where the underlying io is handled on a higher level, it should simply return nil.
	// Close must be safe to call more than once,
	// and a consumer that abandons a cursor early is expected to call it.
	io.Closer
	// Err return the error cause.
	// Reaching the end of the sequence is not an error, and must not be reported here.
	Err() error
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	// Once Next returned false, every subsequent call must return false as well.
	Next() bool
	// Value returns the current value in the cursor.
	// The action should be repeatable without side effects.
	Value() V
}

// Producer represents the capability of beginning a pass over a sequence of values.
//
// A Producer makes no promise about how many times Produce may be called.
// A producer wrapping a stream for example will hand back the same cursor on
// every call, and once that cursor is exhausted, no further values are ever produced.
type Producer[V any] interface {
	// Produce begins a pass over the sequence and returns the cursor of that pass.
	Produce() Cursor[V]
}

// Container is a Producer whose Produce can be called any number of times,
// each call yielding a new independent cursor that starts at the first element.
// Cursors taken from the same Container must not affect each other's position.
type Container[V any] interface {
	Producer[V]
	// Multipass reports whether Produce returns a fresh independent cursor on every call.
	// The value is decided at construction time and never changes during the Container's lifetime.
	Multipass() bool
}
