// Package seq defines a pull-based sequence contract and lazy combinators
// built on it.
//
// A Producer hands out Cursors. A Cursor is single-pass: Next returns the next
// value with ok == true, or ok == false once the sequence is exhausted, and it
// keeps returning ok == false afterwards. Every Cursor is itself a Producer
// whose Cursor method returns the receiver, so a half-consumed cursor can be
// passed anywhere a Producer is accepted.
//
// Example:
//
//	squares := seq.Map(numrange.New(1, 10), func(v int64) int64 { return v * v })
//	fmt.Println(seq.Collect(squares)) // [1 4 9 16 25 36 49 64 81 100]
package seq

import (
	"context"
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

// Cursor is a stateful position over a sequence.
type Cursor[T any] interface {
	// Next yields the next value. When ok is false the sequence is exhausted
	// and every later call reports ok == false as well.
	Next() (T, bool)
	// Cursor returns the receiver.
	Cursor() Cursor[T]
}

// Producer yields fresh cursors. Cursors obtained from the same producer do not
// share position.
type Producer[T any] interface {
	Cursor() Cursor[T]
}

// Step is the tagged outcome of a single pull. The zero value is done.
type Step[T any] struct {
	value T
	ok    bool
}

// Yield constructs a Step carrying value.
func Yield[T any](value T) Step[T] {
	return Step[T]{value: value, ok: true}
}

// Done constructs the terminal Step.
func Done[T any]() Step[T] {
	return Step[T]{}
}

// IsDone reports whether the Step is the terminal signal.
func (s Step[T]) IsDone() bool {
	return !s.ok
}

// Get returns the carried value and whether one was present.
func (s Step[T]) Get() (T, bool) {
	return s.value, s.ok
}

// String implements fmt.Stringer for debugging.
func (s Step[T]) String() string {
	if s.ok {
		return fmt.Sprintf("Yield(%v)", s.value)
	}
	return "Done"
}

// Pull advances c once and reports the outcome as a Step.
func Pull[T any](c Cursor[T]) Step[T] {
	v, ok := c.Next()
	if !ok {
		return Done[T]()
	}
	return Yield(v)
}

// Collect exhausts a cursor of p and returns its values in order. The result
// is never nil.
func Collect[T any](p Producer[T]) []T {
	c := cursorOf(p)
	result := []T{}
	for {
		v, ok := c.Next()
		if !ok {
			return result
		}
		result = append(result, v)
	}
}

// CollectContext behaves like Collect but checks ctx between pulls, returning
// the values gathered so far together with ctx.Err() once ctx is done.
func CollectContext[T any](ctx context.Context, p Producer[T]) ([]T, error) {
	c := cursorOf(p)
	result := []T{}
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		step := Pull(c)
		if step.IsDone() {
			return result, nil
		}
		v, _ := step.Get()
		result = append(result, v)
	}
}

// All adapts p to a range-over-func sequence. Each iteration of the returned
// sequence requests its own cursor from p.
func All[T any](p Producer[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		c := cursorOf(p)
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// cursorOf requests a cursor from p, panicking with ErrNonConformingProducer
// when p is nil.
func cursorOf[T any](p Producer[T]) Cursor[T] {
	if p == nil {
		panic(errors.Wrap(ErrNonConformingProducer, "nil producer"))
	}
	return p.Cursor()
}
