package seq

import "github.com/pkg/errors"

// Mapped lazily applies a transform to the values of a source Producer. It is
// single-pass: the source cursor is requested once, on the first call to
// Cursor or Next, and every later Cursor call returns the same Mapped.
type Mapped[A any, B any] struct {
	src  Producer[A]
	fn   func(A) B
	from Cursor[A]
	done bool
}

// Map returns a Producer whose values are fn applied to each value of src, in
// order. Nothing is pulled from src until the result is consumed. A panic in
// fn propagates out of Next unchanged.
func Map[A any, B any](src Producer[A], fn func(A) B) *Mapped[A, B] {
	return &Mapped[A, B]{src: src, fn: fn}
}

// MapAny is Map for a dynamically typed source. src is converted with Adapt
// and the source cursor is requested immediately, so a non-conforming src
// fails here rather than on the first pull.
func MapAny[A any, B any](src any, fn func(A) B) (*Mapped[A, B], error) {
	p, err := Adapt[A](src)
	if err != nil {
		return nil, errors.Wrap(err, "seq: cannot map")
	}
	m := Map(p, fn)
	m.acquire()
	return m, nil
}

// Cursor requests the source cursor if that has not happened yet and returns
// the receiver. It panics with ErrNonConformingProducer when the source is nil.
func (m *Mapped[A, B]) Cursor() Cursor[B] {
	m.acquire()
	return m
}

// Next pulls one value from the source and returns it transformed.
func (m *Mapped[A, B]) Next() (B, bool) {
	var zero B
	if m.done {
		return zero, false
	}
	v, ok := m.acquire().Next()
	if !ok {
		m.done = true
		return zero, false
	}
	return m.fn(v), true
}

func (m *Mapped[A, B]) acquire() Cursor[A] {
	if m.from == nil {
		m.from = cursorOf(m.src)
	}
	return m.from
}

// TryMapped is the fallible counterpart of Mapped. The first transform error
// ends the sequence and is reported by Err.
type TryMapped[A any, B any] struct {
	src  Producer[A]
	fn   func(A) (B, error)
	from Cursor[A]
	pos  int
	err  error
	done bool
}

// TryMap returns a Producer applying fn to each value of src until fn fails.
func TryMap[A any, B any](src Producer[A], fn func(A) (B, error)) *TryMapped[A, B] {
	return &TryMapped[A, B]{src: src, fn: fn}
}

// Cursor returns the receiver, requesting the source cursor on first use.
func (m *TryMapped[A, B]) Cursor() Cursor[B] {
	m.acquire()
	return m
}

// Next pulls and transforms one value. It reports ok == false when the source
// is exhausted or the transform failed; use Err to tell the two apart.
func (m *TryMapped[A, B]) Next() (B, bool) {
	var zero B
	if m.done {
		return zero, false
	}
	v, ok := m.acquire().Next()
	if !ok {
		m.done = true
		return zero, false
	}
	out, err := m.fn(v)
	if err != nil {
		m.err = errors.Wrapf(err, "seq: transform failed at position %d", m.pos)
		m.done = true
		return zero, false
	}
	m.pos++
	return out, true
}

// Err returns the transform error that ended the sequence, if any.
func (m *TryMapped[A, B]) Err() error {
	return m.err
}

func (m *TryMapped[A, B]) acquire() Cursor[A] {
	if m.from == nil {
		m.from = cursorOf(m.src)
	}
	return m.from
}
