package numrange

import (
	"math"

	"github.com/charmingruby/lazyrange/seq"
)

// 2^63, the first float64 above every int64.
const int64Limit = float64(1 << 63)

// Cursor walks the integers of a Range in unit steps. Each Cursor owns its
// position; advancing one never moves another.
type Cursor struct {
	next int64
	last int64
	done bool
}

var _ seq.Cursor[int64] = (*Cursor)(nil)

// newCursor positions a cursor on ceil(lower) and stops it after floor(upper),
// both clamped to the int64 range. Bounds are converted once so that the walk
// compares integers, which stay exact where float64 spacing exceeds one.
func newCursor(lower, upper float64) *Cursor {
	start, end := math.Ceil(lower), math.Floor(upper)
	if math.IsNaN(start) || math.IsNaN(end) || start > end || start >= int64Limit || end < math.MinInt64 {
		return &Cursor{done: true}
	}
	return &Cursor{next: clampInt64(start), last: clampInt64(end)}
}

// clampInt64 converts an integral float64 to int64, saturating at the ends.
func clampInt64(f float64) int64 {
	switch {
	case f >= int64Limit:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

// Next returns the current position and advances it by one, or reports
// ok == false once the position passes the upper bound.
func (c *Cursor) Next() (int64, bool) {
	if c.done || c.next > c.last {
		c.done = true
		return 0, false
	}
	v := c.next
	// last may be MaxInt64, so stop on it rather than step past it.
	if v == c.last {
		c.done = true
	} else {
		c.next++
	}
	return v, true
}

// remaining returns how many values the cursor has left, or -1 when that
// count does not fit in an int64.
func (c *Cursor) remaining() int64 {
	if c.done || c.next > c.last {
		return 0
	}
	diff := uint64(c.last) - uint64(c.next)
	if diff >= math.MaxInt64 {
		return -1
	}
	return int64(diff) + 1
}

// Cursor returns the receiver.
func (c *Cursor) Cursor() seq.Cursor[int64] {
	return c
}
