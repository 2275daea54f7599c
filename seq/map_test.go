package seq_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/lazyrange/seq"
)

func TestMapPreservesOrder(t *testing.T) {
	doubled := seq.Map(seq.Of(0, 1, 2, 3), func(v int) int { return v + v })
	assert.Equal(t, []int{0, 2, 4, 6}, seq.Collect(doubled))
}

func TestMapChangesType(t *testing.T) {
	labels := seq.Map(seq.Of(1, 2), func(v int) string { return "#" + strconv.Itoa(v) })
	assert.Equal(t, []string{"#1", "#2"}, seq.Collect(labels))
}

func TestMapComposes(t *testing.T) {
	inner := seq.Map(seq.Of(1, 2, 3), func(v int) int { return v * v })
	outer := seq.Map(inner, func(v int) int { return -v })
	assert.Equal(t, []int{-1, -4, -9}, seq.Collect(outer))
}

func TestMapIsLazy(t *testing.T) {
	p := &countingProducer{values: []int{1, 2, 3}}
	calls := 0
	m := seq.Map(p, func(v int) int {
		calls++
		return v
	})
	assert.Equal(t, 0, p.requests, "no cursor before consumption")

	v, ok := m.Next()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, calls, "only the pulled value is transformed")
}

func TestMapMemoizesSourceCursor(t *testing.T) {
	p := &countingProducer{values: []int{1, 2, 3}}
	m := seq.Map(p, func(v int) int { return v })

	first := m.Cursor()
	second := m.Cursor()
	assert.Same(t, m, first)
	assert.Same(t, m, second)
	assert.Equal(t, 1, p.requests)

	v, _ := first.Next()
	assert.Equal(t, 1, v)
	v, _ = second.Next()
	assert.Equal(t, 2, v, "cursors of one Mapped share the source position")
}

func TestMapPropagatesDoneOnce(t *testing.T) {
	m := seq.Map[int, int](&flakyCursor{}, func(v int) int { return v })

	v, ok := m.Next()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	for range 3 {
		_, ok = m.Next()
		assert.False(t, ok, "done is sticky even when the source resurrects")
	}
}

func TestMapTransformPanicPropagates(t *testing.T) {
	boom := errors.New("boom")
	m := seq.Map(seq.Of(1, 2), func(v int) int {
		if v == 2 {
			panic(boom)
		}
		return v
	})

	v, ok := m.Next()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.PanicsWithValue(t, boom, func() { m.Next() })
}

func TestMapNilSourceFailsOnCursorRequest(t *testing.T) {
	m := seq.Map[int, int](nil, func(v int) int { return v })

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, seq.ErrNonConformingProducer)
	}()
	m.Cursor()
}

func TestMapAny(t *testing.T) {
	m, err := seq.MapAny([]int{1, 2, 3}, func(v int) int { return v * 3 })
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6, 9}, seq.Collect(m))

	_, err = seq.MapAny(42, func(v int) int { return v })
	require.ErrorIs(t, err, seq.ErrNonConformingProducer)
	assert.Contains(t, err.Error(), "int")
}

func TestMapAnyAcquiresSourceEagerly(t *testing.T) {
	p := &countingProducer{values: []int{1}}
	_, err := seq.MapAny(seq.Producer[int](p), func(v int) int { return v })
	require.NoError(t, err)
	assert.Equal(t, 1, p.requests)
}

func TestTryMap(t *testing.T) {
	errOdd := errors.New("odd value")
	m := seq.TryMap(seq.Of(2, 4, 5, 6), func(v int) (int, error) {
		if v%2 != 0 {
			return 0, errOdd
		}
		return v / 2, nil
	})

	assert.Equal(t, []int{1, 2}, seq.Collect(m))
	require.ErrorIs(t, m.Err(), errOdd)
	assert.Contains(t, m.Err().Error(), "position 2")

	_, ok := m.Next()
	assert.False(t, ok, "a failed TryMapped stays done")
}

func TestTryMapWithoutErrors(t *testing.T) {
	m := seq.TryMap(seq.Of("1", "2"), strconv.Atoi)
	assert.Equal(t, []int{1, 2}, seq.Collect(m))
	assert.NoError(t, m.Err())
	assert.Same(t, m, m.Cursor())
}
