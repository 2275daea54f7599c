// Package numrange implements a closed interval of real numbers that behaves
// like a set for membership tests and like a sequence of the integers it
// contains.
//
// Example:
//
//	r := numrange.New(-2, 2)
//	fmt.Println(r)                  // { x | -2 ≤ x ≤ 2 }
//	fmt.Println(r.Has(1.5))         // true
//	fmt.Println(seq.Collect(r))     // [-2 -1 0 1 2]
package numrange

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"

	"github.com/charmingruby/lazyrange/seq"
)

// Number is the set of Go types accepted by HasNumber.
type Number interface {
	constraints.Integer | constraints.Float
}

// Range is an immutable interval [lower, upper]. The bounds are not ordered at
// construction time; a Range whose lower bound exceeds its upper bound is
// empty.
type Range struct {
	lower float64
	upper float64
}

var _ seq.Producer[int64] = Range{}

// New constructs the Range [lower, upper].
//
// Example:
//
//	empty := numrange.New(5, 3)
//	fmt.Println(empty.IsEmpty()) // true
func New(lower, upper float64) Range {
	return Range{lower: lower, upper: upper}
}

// Lower returns the lower bound.
func (r Range) Lower() float64 {
	return r.lower
}

// Upper returns the upper bound.
func (r Range) Upper() float64 {
	return r.upper
}

// Bounds returns both bounds.
func (r Range) Bounds() (float64, float64) {
	return r.lower, r.upper
}

// Has reports whether lower ≤ x ≤ upper. NaN is never a member.
//
// Example:
//
//	r := numrange.New(1, 10)
//	r.Has(10)   // true
//	r.Has(10.5) // false
func (r Range) Has(x float64) bool {
	return r.lower <= x && x <= r.upper
}

// HasNumber is Has for any integer or floating point type.
func HasNumber[N Number](r Range, x N) bool {
	return r.Has(float64(x))
}

// Contains is the membership test for untyped input. Values of any integer,
// unsigned or floating point kind, including named types built on them, are
// tested with Has; anything else is reported as not a member.
//
// Example:
//
//	r := numrange.New(1, 10)
//	r.Contains(uint8(5)) // true
//	r.Contains("5")      // false
func (r Range) Contains(x any) bool {
	v := reflect.ValueOf(x)
	switch {
	case v.CanInt():
		return r.Has(float64(v.Int()))
	case v.CanUint():
		return r.Has(float64(v.Uint()))
	case v.CanFloat():
		return r.Has(v.Float())
	default:
		return false
	}
}

// String renders the range in set-builder notation.
func (r Range) String() string {
	return "{ x | " + formatBound(r.lower) + " ≤ x ≤ " + formatBound(r.upper) + " }"
}

// Cursor returns a new, independent cursor over the integers of the range in
// ascending order, starting at ceil(lower).
func (r Range) Cursor() seq.Cursor[int64] {
	return newCursor(r.lower, r.upper)
}

// IsEmpty reports whether the range contains no integer.
func (r Range) IsEmpty() bool {
	return newCursor(r.lower, r.upper).done
}

// Len returns the number of integers a cursor yields. It is -1 for a
// non-empty range with an infinite bound, or when the count does not fit in
// an int64.
func (r Range) Len() int64 {
	c := newCursor(r.lower, r.upper)
	if !c.done && (math.IsInf(r.lower, -1) || math.IsInf(r.upper, 1)) {
		return -1
	}
	return c.remaining()
}
