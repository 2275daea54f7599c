package numrange_test

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/charmingruby/lazyrange/numrange"
	"github.com/charmingruby/lazyrange/seq"
)

// bounded keeps generated bounds small enough to collect.
func bounded(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Mod(v, 50)
}

func TestRangeYieldsCeilToFloor(t *testing.T) {
	check := func(a, b float64) bool {
		lower, upper := bounded(a), bounded(b)
		got := seq.Collect(numrange.New(lower, upper))

		var want []int64
		for v := math.Ceil(lower); v <= upper; v++ {
			want = append(want, int64(v))
		}
		if len(got) != len(want) {
			return false
		}
		for i := range want {
			if got[i] != want[i] {
				return false
			}
		}
		return true
	}

	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("range contents mismatch: %v", err)
	}
}

func TestInvertedRangeIsEmpty(t *testing.T) {
	check := func(a, b float64) bool {
		lower, upper := bounded(a), bounded(b)
		if lower <= upper {
			lower, upper = upper+1, lower
		}
		return len(seq.Collect(numrange.New(lower, upper))) == 0 && numrange.New(lower, upper).IsEmpty()
	}

	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("inverted range not empty: %v", err)
	}
}

func TestHasMatchesBounds(t *testing.T) {
	check := func(a, b, x float64) bool {
		r := numrange.New(a, b)
		return r.Has(x) == (a <= x && x <= b) && r.Contains(x) == r.Has(x)
	}

	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("membership mismatch: %v", err)
	}
}

func TestLazyMapMatchesElementWise(t *testing.T) {
	f := func(v int64) int64 { return 3*v - 1 }
	check := func(a, b float64) bool {
		r := numrange.New(bounded(a), bounded(b))
		plain := seq.Collect(r)
		mapped := seq.Collect(seq.Map(r, f))
		if len(plain) != len(mapped) {
			return false
		}
		for i := range plain {
			if mapped[i] != f(plain[i]) {
				return false
			}
		}
		return true
	}

	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("composition law failed: %v", err)
	}
}

// wide returns integral bounds in [2^53, 2^54], where float64 spacing is two.
func wide(base uint32, span uint8) (float64, float64) {
	lower := math.Ldexp(float64(base|1<<31), 22)
	return lower, lower + float64(span)
}

func TestLargeRangeStaysWithinBounds(t *testing.T) {
	check := func(base uint32, span uint8) bool {
		lower, upper := wide(base, span)
		r := numrange.New(lower, upper)
		values := seq.Collect(r)
		if r.Len() != int64(len(values)) || r.Len() != int64(upper)-int64(lower)+1 {
			return false
		}
		for _, v := range values {
			if v < int64(lower) || v > int64(math.Floor(upper)) || !r.Has(float64(v)) {
				return false
			}
		}
		return true
	}

	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("large range escaped its bounds: %v", err)
	}
}

func TestLenMatchesCollect(t *testing.T) {
	check := func(a, b float64) bool {
		r := numrange.New(bounded(a), bounded(b))
		return r.Len() == int64(len(seq.Collect(r)))
	}

	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("len mismatch: %v", err)
	}
}
