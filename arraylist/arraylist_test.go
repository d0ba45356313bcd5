package arraylist_test

import (
	"testing"

	"github.com/Invicton-Labs/go-lists/arraylist"
	"github.com/Invicton-Labs/go-lists/bounds"
	"github.com/Invicton-Labs/go-lists/log"
	"github.com/Invicton-Labs/go-lists/numbers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l := arraylist.New()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 1, l.Cap())
	assert.Equal(t, "[]", l.String())
	assert.Equal(t, []int{}, l.Values())
}

func TestFromSlice(t *testing.T) {
	in := []int{2, 3, 5, 8, 11}
	l := arraylist.FromSlice(in)
	assert.Equal(t, 5, l.Len())
	assert.Equal(t, 5, l.Cap())
	assert.Equal(t, "[2, 3, 5, 8, 11]", l.String())

	// The list owns its storage.
	in[0] = 100
	v, err := l.Get(0)
	require.Nil(t, err)
	assert.Equal(t, 2, v)

	empty := arraylist.FromSlice(nil)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 1, empty.Cap())
	empty.Append(4)
	assert.Equal(t, "[4]", empty.String())
}

func TestAppendGrowth(t *testing.T) {
	l := arraylist.New()
	assert.Equal(t, 0, l.Len())
	l.Append(1)
	assert.Equal(t, 1, l.Len())
	l.Append(2)
	assert.Equal(t, 2, l.Len())
	assert.GreaterOrEqual(t, l.Cap(), 2)
	assert.Equal(t, "[1, 2]", l.String())

	for n := 3; n <= 100; n++ {
		l.Append(n)
		assert.Equal(t, n, l.Len())
		assert.GreaterOrEqual(t, l.Cap(), n)
		assert.True(t, numbers.IsPowerOfTwo(l.Cap()), "capacity %d after %d appends", l.Cap(), n)
	}
	assert.Equal(t, 128, l.Cap())
}

func TestAppendPrimes(t *testing.T) {
	primes := arraylist.New()
	for i := 2; primes.Len() < 10; i++ {
		if numbers.IsPrime(i) {
			primes.Append(i)
		}
	}
	assert.Equal(t, "[2, 3, 5, 7, 11, 13, 17, 19, 23, 29]", primes.String())
	assert.Equal(t, 16, primes.Cap())
}

func TestGetSetRef(t *testing.T) {
	l := arraylist.FromSlice([]int{1, 2, 3, 4, 5})

	v, err := l.Get(1)
	require.Nil(t, err)
	assert.Equal(t, 2, v)

	require.Nil(t, l.Set(2, 4))
	v, err = l.Get(2)
	require.Nil(t, err)
	assert.Equal(t, 4, v)

	ref, err := l.Ref(4)
	require.Nil(t, err)
	*ref += 10
	assert.Equal(t, "[1, 2, 4, 4, 15]", l.String())
}

func TestOutOfRange(t *testing.T) {
	l := arraylist.FromSlice([]int{1, 2, 3})
	for _, index := range []int{-1, 3, 100} {
		_, err := l.Get(index)
		assert.True(t, bounds.IsOutOfRange(err), "get %d", index)

		assert.True(t, bounds.IsOutOfRange(l.Set(index, 0)), "set %d", index)

		ref, err := l.Ref(index)
		assert.Nil(t, ref)
		assert.True(t, bounds.IsOutOfRange(err), "ref %d", index)

		assert.True(t, bounds.IsOutOfRange(l.Remove(index)), "remove %d", index)

		_, err = l.Pop(index)
		assert.True(t, bounds.IsOutOfRange(err), "pop %d", index)
	}
	assert.True(t, bounds.IsOutOfRange(l.Insert(9, -1)))
	assert.True(t, bounds.IsOutOfRange(l.Insert(9, 4)))

	// Failed calls leave the list untouched.
	assert.Equal(t, "[1, 2, 3]", l.String())
	assert.Equal(t, 3, l.Cap())
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name     string
		in       []int
		value    int
		index    int
		want     string
		wantSize int
	}{
		{name: "middle", in: []int{1, 2, 3, 4, 5}, value: 10, index: 2, want: "[1, 2, 10, 3, 4, 5]", wantSize: 6},
		{name: "front", in: []int{1, 2, 3}, value: 0, index: 0, want: "[0, 1, 2, 3]", wantSize: 4},
		{name: "end", in: []int{1, 2, 3}, value: 4, index: 3, want: "[1, 2, 3, 4]", wantSize: 4},
		{name: "empty", in: nil, value: 7, index: 0, want: "[7]", wantSize: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := arraylist.FromSlice(tt.in)
			require.Nil(t, l.Insert(tt.value, tt.index))
			assert.Equal(t, tt.want, l.String())
			assert.Equal(t, tt.wantSize, l.Len())
		})
	}

	t.Run("sequence", func(t *testing.T) {
		l := arraylist.FromSlice([]int{1, 2, 3, 4, 5})
		require.Nil(t, l.Insert(10, 2))
		require.Nil(t, l.Insert(12, 6))
		assert.Equal(t, "[1, 2, 10, 3, 4, 5, 12]", l.String())
		assert.Equal(t, 10, l.Cap())
	})
}

func TestRemove(t *testing.T) {
	l := arraylist.FromSlice([]int{1, 2, 3, 4, 5, 8, 10, 20})
	require.Nil(t, l.Remove(6))
	assert.Equal(t, "[1, 2, 3, 4, 5, 8, 20]", l.String())
	require.Nil(t, l.Remove(0))
	assert.Equal(t, "[2, 3, 4, 5, 8, 20]", l.String())
	assert.Equal(t, 8, l.Cap())
}

func TestPop(t *testing.T) {
	l := arraylist.FromSlice([]int{1, 2, 3, 4, 5, 8, 10, 20})

	v, err := l.Pop(4)
	require.Nil(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, "[1, 2, 3, 4, 8, 10, 20]", l.String())

	v, err = l.PopLast()
	require.Nil(t, err)
	assert.Equal(t, 20, v)
	assert.Equal(t, "[1, 2, 3, 4, 8, 10]", l.String())
}

func TestPopLastEmpty(t *testing.T) {
	l := arraylist.New()
	_, err := l.PopLast()
	require.NotNil(t, err)
	assert.ErrorIs(t, err, bounds.ErrIndexOutOfRange)

	l.Append(1)
	v, err := l.PopLast()
	require.Nil(t, err)
	assert.Equal(t, 1, v)
	_, err = l.PopLast()
	assert.True(t, bounds.IsOutOfRange(err))
}

func TestShrinkingArray(t *testing.T) {
	l := arraylist.FromSlice([]int{11, 24, 26, 19})
	assert.Equal(t, 4, l.Cap())

	l.Append(2)
	assert.Equal(t, 8, l.Cap())

	require.Nil(t, l.Remove(2))
	require.Nil(t, l.Remove(3))
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 8, l.Cap())
	assert.Equal(t, "[11, 24, 19]", l.String())

	l.ShrinkToFit()
	assert.Equal(t, 4, l.Cap())
	assert.Equal(t, "[11, 24, 19]", l.String())

	l.ShrinkToFit()
	assert.Equal(t, 4, l.Cap())
}

func TestAutomaticShrink(t *testing.T) {
	l := arraylist.FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8})
	assert.Equal(t, 8, l.Cap())

	wantCaps := map[int]int{7: 8, 6: 8, 5: 8, 4: 8, 3: 8, 2: 2}
	for i := 7; i >= 2; i-- {
		require.Nil(t, l.Remove(i))
		assert.Equal(t, wantCaps[i], l.Cap(), "capacity after removing index %d", i)
	}
	assert.Equal(t, 2, l.Cap())
	assert.Equal(t, "[1, 2]", l.String())
}

func TestShrinkDoesNotOvershoot(t *testing.T) {
	l := arraylist.New()
	for i := 0; i < 64; i++ {
		l.Append(i)
	}
	for l.Len() > 0 {
		before := l.Cap()
		_, err := l.Pop(0)
		require.Nil(t, err)
		if 4*l.Len() <= before {
			assert.True(t, l.Cap() == 1 || 2*l.Len() > l.Cap(),
				"size %d capacity %d", l.Len(), l.Cap())
			assert.GreaterOrEqual(t, l.Cap(), l.Len())
		}
	}
	assert.Equal(t, 1, l.Cap())
}

func TestShrinkEmptyFloorsAtOne(t *testing.T) {
	l := arraylist.FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	for l.Len() > 0 {
		_, err := l.PopLast()
		require.Nil(t, err)
	}
	assert.Equal(t, 1, l.Cap())
	l.ShrinkToFit()
	assert.Equal(t, 1, l.Cap())

	// Still usable after being emptied.
	l.Append(5)
	l.Append(6)
	assert.Equal(t, "[5, 6]", l.String())
	assert.Equal(t, 2, l.Cap())
}

func TestShrinkNonPowerOfTwo(t *testing.T) {
	l := arraylist.FromSlice([]int{1, 2, 3, 4, 5})
	require.Nil(t, l.Remove(4))
	require.Nil(t, l.Remove(3))
	require.Nil(t, l.Remove(2))
	assert.Equal(t, 5, l.Cap())

	l.ShrinkToFit()
	assert.Equal(t, 2, l.Cap())
	assert.Equal(t, "[1, 2]", l.String())
}

func TestValuesIsCopy(t *testing.T) {
	l := arraylist.FromSlice([]int{1, 2, 3})
	values := l.Values()
	values[0] = 100
	assert.Equal(t, "[1, 2, 3]", l.String())
}

func TestResizeIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := arraylist.New(arraylist.WithLogger(log.NewFromCore(core, log.NewInput{})))

	l.Append(1)
	l.Append(2)
	l.Append(3)
	require.Nil(t, l.Remove(0))
	require.Nil(t, l.Remove(0))

	entries := logs.FilterMessage("Resized array list").All()
	require.Len(t, entries, 3)
	assert.EqualValues(t, 1, entries[0].ContextMap()["old_capacity"])
	assert.EqualValues(t, 2, entries[0].ContextMap()["new_capacity"])
	assert.EqualValues(t, 2, entries[1].ContextMap()["old_capacity"])
	assert.EqualValues(t, 4, entries[1].ContextMap()["new_capacity"])
	assert.EqualValues(t, 4, entries[2].ContextMap()["old_capacity"])
	assert.EqualValues(t, 1, entries[2].ContextMap()["new_capacity"])
}
