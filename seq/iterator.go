package seq

import (
	"iter"

	"github.com/pkg/errors"
)

// Iterator is a closure-backed Cursor. The zero value, and a nil *Iterator,
// are exhausted. Once the underlying function reports done it is released and
// never called again.
type Iterator[T any] struct {
	next func() (T, bool)
}

// FromFunc wraps next into a Cursor.
func FromFunc[T any](next func() (T, bool)) *Iterator[T] {
	return &Iterator[T]{next: next}
}

// Next yields the next value. When ok is false, iteration is complete.
func (it *Iterator[T]) Next() (T, bool) {
	if it == nil || it.next == nil {
		var zero T
		return zero, false
	}
	v, ok := it.next()
	if !ok {
		it.next = nil
		var zero T
		return zero, false
	}
	return v, true
}

// Cursor returns the receiver.
func (it *Iterator[T]) Cursor() Cursor[T] {
	return it
}

// FromSlice creates a cursor over the provided slice without copying.
func FromSlice[T any](values []T) *Iterator[T] {
	idx := 0
	return FromFunc(func() (T, bool) {
		if idx >= len(values) {
			var zero T
			return zero, false
		}
		v := values[idx]
		idx++
		return v, true
	})
}

// Slice is a reusable Producer over a fixed list of values.
type Slice[T any] []T

// Of returns a Producer over values.
func Of[T any](values ...T) Slice[T] {
	return Slice[T](values)
}

// Cursor returns a fresh cursor positioned at the first element.
func (s Slice[T]) Cursor() Cursor[T] {
	return FromSlice([]T(s))
}

// Func is a reusable Producer built from a cursor factory.
type Func[T any] func() Cursor[T]

// Cursor calls the factory.
func (f Func[T]) Cursor() Cursor[T] {
	return f()
}

// FromSeq adapts a range-over-func sequence. Each cursor pulls from its own
// run of s; the run is stopped as soon as the cursor reports exhaustion.
func FromSeq[T any](s iter.Seq[T]) Func[T] {
	return func() Cursor[T] {
		next, stop := iter.Pull(s)
		return FromFunc(func() (T, bool) {
			v, ok := next()
			if !ok {
				stop()
			}
			return v, ok
		})
	}
}

// Adapt converts a dynamically typed value into a Producer. Accepted values
// are a Producer[T], a []T, an iter.Seq[T] (or an unnamed function of the same
// shape) and a func() (T, bool) used as a single-pass cursor. Anything else
// fails with ErrNonConformingProducer.
func Adapt[T any](v any) (Producer[T], error) {
	switch src := v.(type) {
	case nil:
		return nil, errors.Wrap(ErrNonConformingProducer, "nil value")
	case Producer[T]:
		return src, nil
	case []T:
		return Of(src...), nil
	case iter.Seq[T]:
		return FromSeq(src), nil
	case func(yield func(T) bool):
		return FromSeq(iter.Seq[T](src)), nil
	case func() (T, bool):
		return FromFunc(src), nil
	}
	return nil, errors.Wrapf(ErrNonConformingProducer, "%T", v)
}

// Filter keeps values satisfying predicate.
func Filter[T any](p Producer[T], predicate func(T) bool) *Iterator[T] {
	c := cursorOf(p)
	return FromFunc(func() (T, bool) {
		for {
			v, ok := c.Next()
			if !ok {
				var zero T
				return zero, false
			}
			if predicate(v) {
				return v, true
			}
		}
	})
}

// Take returns a cursor that yields at most n elements of p.
func Take[T any](p Producer[T], n int) *Iterator[T] {
	if n <= 0 {
		return &Iterator[T]{}
	}
	c := cursorOf(p)
	count := 0
	return FromFunc(func() (T, bool) {
		if count >= n {
			var zero T
			return zero, false
		}
		v, ok := c.Next()
		if !ok {
			var zero T
			return zero, false
		}
		count++
		return v, true
	})
}

// Drop skips the first n elements of p. Skipping happens on the first pull.
func Drop[T any](p Producer[T], n int) *Iterator[T] {
	c := cursorOf(p)
	skipped := n <= 0
	return FromFunc(func() (T, bool) {
		if !skipped {
			skipped = true
			for range n {
				if _, ok := c.Next(); !ok {
					var zero T
					return zero, false
				}
			}
		}
		return c.Next()
	})
}

// IndexesOf lazily yields every position of p at which x occurs, in
// ascending order.
func IndexesOf[T comparable](p Producer[T], x T) *Iterator[int] {
	c := cursorOf(p)
	pos := -1
	return FromFunc(func() (int, bool) {
		for {
			v, ok := c.Next()
			if !ok {
				return 0, false
			}
			pos++
			if v == x {
				return pos, true
			}
		}
	})
}

// Counter hands out 0, 1, 2, ... and never runs dry.
type Counter struct {
	count int
}

// NewCounter returns a Counter starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Next returns the current count and increments it.
func (c *Counter) Next() (int, bool) {
	v := c.count
	c.count++
	return v, true
}

// Cursor returns the receiver.
func (c *Counter) Cursor() Cursor[int] {
	return c
}

// Count reports how many values have been handed out.
func (c *Counter) Count() int {
	return c.count
}
