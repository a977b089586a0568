// Package seqkit provide lazy sequence implementations.
//
// # Summary
//
// A producer's goal is to decouple the origin of the data from the consumer who uses that data.
// Most commonly, producers hide whether the data comes from an in-memory collection, standard input, or elsewhere.
// This approach helps to design data consumers that are not dependent on the concrete implementation of the data source,
// while still allowing for the composition and various actions on the received data stream.
// A sequence can range from zero to infinity elements,
// and a cursor only advances when its consumer asks for the next value,
// so no part of the sequence is materialized ahead of consumption.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Lazy_evaluation
package seqkit

import (
	"go.llib.dev/seqkit/pkg/errorkit"
	"go.llib.dev/seqkit/port/sequence"
)

// Slice returns a Container that holds the given slice in memory.
// Each Produce call begins a fresh pass starting at the first element.
func Slice[V any](slice []V) sequence.Container[V] {
	return sliceContainer[V]{slice: slice}
}

type sliceContainer[V any] struct {
	slice []V
}

func (c sliceContainer[V]) Multipass() bool { return true }

func (c sliceContainer[V]) Produce() sequence.Cursor[V] {
	return &sliceCursor[V]{Slice: c.slice}
}

type sliceCursor[V any] struct {
	Slice []V

	closed bool
	index  int
	value  V
}

func (i *sliceCursor[V]) Close() error {
	i.closed = true
	return nil
}

func (i *sliceCursor[V]) Err() error {
	return nil
}

func (i *sliceCursor[V]) Next() bool {
	if i.closed {
		return false
	}
	if len(i.Slice) <= i.index {
		return false
	}
	i.value = i.Slice[i.index]
	i.index++
	return true
}

func (i *sliceCursor[V]) Value() V {
	return i.value
}

// FromCursor wraps an already begun pass as a single-pass producer.
// Produce hands back the very same cursor on every call,
// so once the cursor is exhausted, no further values are ever produced.
func FromCursor[V any](c sequence.Cursor[V]) sequence.Producer[V] {
	return cursorProducer[V]{cursor: c}
}

type cursorProducer[V any] struct {
	cursor sequence.Cursor[V]
}

func (p cursorProducer[V]) Multipass() bool { return false }

func (p cursorProducer[V]) Produce() sequence.Cursor[V] { return p.cursor }

// FromFunc returns a Container backed by a factory function.
// Each Produce call invokes the factory to begin a fresh pass,
// which makes it suitable for sources that must be reopened per pass,
// like a file, where the factory owns the reopening logic.
func FromFunc[V any](factory func() sequence.Cursor[V]) sequence.Container[V] {
	return funcContainer[V]{factory: factory}
}

type funcContainer[V any] struct {
	factory func() sequence.Cursor[V]
}

func (c funcContainer[V]) Multipass() bool { return true }

func (c funcContainer[V]) Produce() sequence.Cursor[V] { return c.factory() }

// Func enables you to create a cursor with a lambda expression.
func Func[V any](next func() (v V, ok bool, err error)) sequence.Cursor[V] {
	return &funcCursor[V]{NextFn: next}
}

type funcCursor[V any] struct {
	NextFn func() (v V, ok bool, err error)

	done  bool
	value V
	err   error
}

func (i *funcCursor[V]) Close() error {
	i.done = true
	return nil
}

func (i *funcCursor[V]) Err() error {
	return i.err
}

func (i *funcCursor[V]) Next() bool {
	if i.done || i.err != nil {
		return false
	}
	value, ok, err := i.NextFn()
	if err != nil {
		i.err = err
		return false
	}
	if !ok {
		i.done = true
		return false
	}
	i.value = value
	return true
}

func (i *funcCursor[V]) Value() V {
	return i.value
}

// Empty returns a Container without any element.
// Used to represent a nil result with the Null object pattern.
func Empty[V any]() sequence.Container[V] {
	return emptyContainer[V]{}
}

type emptyContainer[V any] struct{}

func (emptyContainer[V]) Multipass() bool { return true }

func (emptyContainer[V]) Produce() sequence.Cursor[V] { return emptyCursor[V]{} }

type emptyCursor[V any] struct{}

func (emptyCursor[V]) Close() error { return nil }
func (emptyCursor[V]) Err() error   { return nil }
func (emptyCursor[V]) Next() bool   { return false }
func (emptyCursor[V]) Value() V     { var v V; return v }

// SingleValue returns a Container that holds exactly one element.
func SingleValue[V any](v V) sequence.Container[V] {
	return singleValueContainer[V]{v: v}
}

type singleValueContainer[V any] struct {
	v V
}

func (c singleValueContainer[V]) Multipass() bool { return true }

func (c singleValueContainer[V]) Produce() sequence.Cursor[V] {
	return &singleValueCursor[V]{V: c.v}
}

type singleValueCursor[V any] struct {
	V V

	index  int
	closed bool
}

func (i *singleValueCursor[V]) Close() error {
	i.closed = true
	return nil
}

func (i *singleValueCursor[V]) Err() error {
	return nil
}

func (i *singleValueCursor[V]) Next() bool {
	if i.closed {
		return false
	}
	if i.index == 0 {
		i.index++
		return true
	}
	return false
}

func (i *singleValueCursor[V]) Value() V {
	return i.V
}

// IntRange returns a Container that will range between the specified `begin` and the `end` int, both inclusive.
func IntRange(begin, end int) sequence.Container[int] {
	return intRangeContainer{begin: begin, end: end}
}

type intRangeContainer struct {
	begin, end int
}

func (c intRangeContainer) Multipass() bool { return true }

func (c intRangeContainer) Produce() sequence.Cursor[int] {
	return &intRangeCursor{current: c.begin, end: c.end}
}

type intRangeCursor struct {
	current, end int
	value        int
	closed       bool
}

func (i *intRangeCursor) Close() error {
	i.closed = true
	return nil
}

func (i *intRangeCursor) Err() error {
	return nil
}

func (i *intRangeCursor) Next() bool {
	if i.closed || i.end < i.current {
		return false
	}
	i.value = i.current
	i.current++
	return true
}

func (i *intRangeCursor) Value() int {
	return i.value
}

// Error returns a Container that only can do is returning an Err and never have next element.
// This can be used when an external resource encounters an unexpected non recoverable error during query execution.
func Error[V any](err error) sequence.Container[V] {
	return errContainer[V]{err: err}
}

type errContainer[V any] struct {
	err error
}

func (c errContainer[V]) Multipass() bool { return true }

func (c errContainer[V]) Produce() sequence.Cursor[V] { return errCursor[V]{err: c.err} }

type errCursor[V any] struct {
	err error
}

func (i errCursor[V]) Close() error { return nil }
func (i errCursor[V]) Err() error   { return i.err }
func (i errCursor[V]) Next() bool   { return false }
func (i errCursor[V]) Value() V     { var v V; return v }

// Chain composes producers into a single producer that concatenates their outputs in the given order.
// The chain's cursor reads exhaustively from the first child's cursor,
// and only once that child signalled end-of-sequence does it begin the next child's pass.
// Only the currently active child is held, so the per-element cost stays a single indirection,
// no matter how many chained children were already exhausted.
//
// The result is multipass only when every child is a multipass Container.
func Chain[V any](ps ...sequence.Producer[V]) sequence.Producer[V] {
	return chainProducer[V]{ps: ps}
}

type chainProducer[V any] struct {
	ps []sequence.Producer[V]
}

func (c chainProducer[V]) Multipass() bool {
	for _, p := range c.ps {
		if !multipass(p) {
			return false
		}
	}
	return true
}

func (c chainProducer[V]) Produce() sequence.Cursor[V] {
	return &chainCursor[V]{ps: c.ps}
}

type chainCursor[V any] struct {
	ps []sequence.Producer[V]

	index  int
	active sequence.Cursor[V]
	value  V
	err    error
	closed bool
}

func (i *chainCursor[V]) Next() bool {
	if i.closed || i.err != nil {
		return false
	}
	for {
		if i.active == nil {
			if len(i.ps) <= i.index {
				return false
			}
			i.active = i.ps[i.index].Produce()
		}
		if i.active.Next() {
			i.value = i.active.Value()
			return true
		}
		i.err = errorkit.Merge(i.active.Err(), i.active.Close())
		i.active = nil
		i.index++
		if i.err != nil {
			return false
		}
	}
}

func (i *chainCursor[V]) Value() V {
	return i.value
}

func (i *chainCursor[V]) Err() error {
	return i.err
}

func (i *chainCursor[V]) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	if i.active != nil {
		active := i.active
		i.active = nil
		return active.Close()
	}
	return nil
}

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
// Like when you read lines from an input stream,
// and then you map the line content to a certain data structure,
// in order to not expose what steps needed in order to deserialize the input stream,
// thus protect the business rules from this information.
//
// The transformation is applied lazily, one element per Next call.
func Map[To any, From any](p sequence.Producer[From], transform func(From) To) sequence.Producer[To] {
	return mapProducer[To, From]{src: p, transform: transform}
}

type mapProducer[To any, From any] struct {
	src       sequence.Producer[From]
	transform func(From) To
}

func (p mapProducer[To, From]) Multipass() bool { return multipass(p.src) }

func (p mapProducer[To, From]) Produce() sequence.Cursor[To] {
	return &mapCursor[To, From]{src: p.src.Produce(), transform: p.transform}
}

type mapCursor[To any, From any] struct {
	src       sequence.Cursor[From]
	transform func(From) To

	value To
}

func (i *mapCursor[To, From]) Close() error {
	return i.src.Close()
}

func (i *mapCursor[To, From]) Err() error {
	return i.src.Err()
}

func (i *mapCursor[To, From]) Next() bool {
	if !i.src.Next() {
		return false
	}
	i.value = i.transform(i.src.Value())
	return true
}

func (i *mapCursor[To, From]) Value() To {
	return i.value
}

// MapErr behaves like Map, but the transformation itself may fail,
// in which case the cursor stops and reports the failure through Err.
func MapErr[To any, From any](p sequence.Producer[From], transform func(From) (To, error)) sequence.Producer[To] {
	return mapErrProducer[To, From]{src: p, transform: transform}
}

type mapErrProducer[To any, From any] struct {
	src       sequence.Producer[From]
	transform func(From) (To, error)
}

func (p mapErrProducer[To, From]) Multipass() bool { return multipass(p.src) }

func (p mapErrProducer[To, From]) Produce() sequence.Cursor[To] {
	return &mapErrCursor[To, From]{src: p.src.Produce(), transform: p.transform}
}

type mapErrCursor[To any, From any] struct {
	src       sequence.Cursor[From]
	transform func(From) (To, error)

	err   error
	value To
}

func (i *mapErrCursor[To, From]) Close() error {
	return i.src.Close()
}

func (i *mapErrCursor[To, From]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.src.Err()
}

func (i *mapErrCursor[To, From]) Next() bool {
	if i.err != nil {
		return false
	}
	if !i.src.Next() {
		return false
	}
	v, err := i.transform(i.src.Value())
	if err != nil {
		i.err = err
		return false
	}
	i.value = v
	return true
}

func (i *mapErrCursor[To, From]) Value() To {
	return i.value
}

// Filter will skip every element where the filter function returns false.
// The source is only pulled as far as needed to find the next matching element.
func Filter[V any](p sequence.Producer[V], filter func(V) bool) sequence.Producer[V] {
	return filterProducer[V]{src: p, filter: filter}
}

type filterProducer[V any] struct {
	src    sequence.Producer[V]
	filter func(V) bool
}

func (p filterProducer[V]) Multipass() bool { return multipass(p.src) }

func (p filterProducer[V]) Produce() sequence.Cursor[V] {
	return &filterCursor[V]{src: p.src.Produce(), filter: p.filter}
}

type filterCursor[V any] struct {
	src    sequence.Cursor[V]
	filter func(V) bool

	value V
}

func (i *filterCursor[V]) Close() error {
	return i.src.Close()
}

func (i *filterCursor[V]) Err() error {
	return i.src.Err()
}

func (i *filterCursor[V]) Next() bool {
	for i.src.Next() {
		if v := i.src.Value(); i.filter(v) {
			i.value = v
			return true
		}
	}
	return false
}

func (i *filterCursor[V]) Value() V {
	return i.value
}

// Limit will constrain the sequence to yield at most n elements.
func Limit[V any](p sequence.Producer[V], n int) sequence.Producer[V] {
	return limitProducer[V]{src: p, n: n}
}

type limitProducer[V any] struct {
	src sequence.Producer[V]
	n   int
}

func (p limitProducer[V]) Multipass() bool { return multipass(p.src) }

func (p limitProducer[V]) Produce() sequence.Cursor[V] {
	return &limitCursor[V]{src: p.src.Produce(), remaining: p.n}
}

type limitCursor[V any] struct {
	src       sequence.Cursor[V]
	remaining int
}

func (i *limitCursor[V]) Close() error {
	return i.src.Close()
}

func (i *limitCursor[V]) Err() error {
	return i.src.Err()
}

func (i *limitCursor[V]) Next() bool {
	if i.remaining <= 0 {
		return false
	}
	if !i.src.Next() {
		i.remaining = 0
		return false
	}
	i.remaining--
	return true
}

func (i *limitCursor[V]) Value() V {
	return i.src.Value()
}

// Offset will skip the first n elements of the sequence.
func Offset[V any](p sequence.Producer[V], n int) sequence.Producer[V] {
	return offsetProducer[V]{src: p, n: n}
}

type offsetProducer[V any] struct {
	src sequence.Producer[V]
	n   int
}

func (p offsetProducer[V]) Multipass() bool { return multipass(p.src) }

func (p offsetProducer[V]) Produce() sequence.Cursor[V] {
	return &offsetCursor[V]{src: p.src.Produce(), offset: p.n}
}

type offsetCursor[V any] struct {
	src    sequence.Cursor[V]
	offset int

	skipped bool
}

func (i *offsetCursor[V]) Close() error {
	return i.src.Close()
}

func (i *offsetCursor[V]) Err() error {
	return i.src.Err()
}

func (i *offsetCursor[V]) Next() bool {
	if !i.skipped {
		i.skipped = true
		for n := 0; n < i.offset; n++ {
			if !i.src.Next() {
				return false
			}
		}
	}
	return i.src.Next()
}

func (i *offsetCursor[V]) Value() V {
	return i.src.Value()
}

func multipass[V any](p sequence.Producer[V]) bool {
	if c, ok := p.(sequence.Container[V]); ok {
		return c.Multipass()
	}
	return false
}
