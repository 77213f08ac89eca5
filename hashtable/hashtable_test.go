package hashtable_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campuswalk/hashtable"
)

// handle is a pointer-backed key type that reports nil through Nilable.
type handle struct{ id int }

func (h *handle) IsNil() bool { return h == nil }

func newIntMap(opts ...hashtable.Option) *hashtable.Map[int, string] {
	return hashtable.New[int, string](hashtable.Integer[int](), opts...)
}

// ------------------------------------------------------------------------
// 1. Put / Get / ContainsKey
// ------------------------------------------------------------------------

func TestMap_PutCases(t *testing.T) {
	m := newIntMap()
	require.NoError(t, m.Put(1, "one"))
	require.NoError(t, m.Put(2, "two"))
	require.NoError(t, m.Put(3, "three"))

	assert.True(t, m.ContainsKey(1))
	assert.True(t, m.ContainsKey(2))
	assert.True(t, m.ContainsKey(3))

	err := m.Put(3, "drei")
	assert.ErrorIs(t, err, hashtable.ErrDuplicateKey)

	v, err := m.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "three", v, "duplicate Put must not overwrite")
	assert.Equal(t, 3, m.Len())
}

func TestMap_GetOnMediumMap(t *testing.T) {
	m := newIntMap()
	pairs := map[int]string{
		1: "one", 2: "two", 3: "three", 4: "four", 5: "five", 6: "six",
		20: "twenty", 432: "four hundred thirty two",
	}
	for k, v := range pairs {
		require.NoError(t, m.Put(k, v))
	}

	for _, k := range []int{5, 20, 432} {
		got, err := m.Get(k)
		require.NoError(t, err)
		assert.Equal(t, pairs[k], got)
	}

	_, err := m.Get(7)
	assert.ErrorIs(t, err, hashtable.ErrKeyNotFound)
	assert.False(t, m.ContainsKey(7))
}

func TestMap_NegativeAndZeroIntegerKeys(t *testing.T) {
	m := newIntMap(hashtable.WithCapacity(3))
	for _, k := range []int{0, -1, -64, 64} {
		require.NoError(t, m.Put(k, strconv.Itoa(k)))
	}
	for _, k := range []int{0, -1, -64, 64} {
		v, err := m.Get(k)
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(k), v)
	}
}

// ------------------------------------------------------------------------
// 2. Key validation
// ------------------------------------------------------------------------

func TestMap_NilInterfaceKey(t *testing.T) {
	m := hashtable.New[any, string](hashtable.HashFunc[any](func(k any) uint64 { return 7 }))

	err := m.Put(nil, "three")
	assert.ErrorIs(t, err, hashtable.ErrNilKey)
	assert.False(t, m.ContainsKey(nil))
	_, err = m.Get(nil)
	assert.ErrorIs(t, err, hashtable.ErrNilKey)
	assert.Equal(t, 0, m.Len())
}

func TestMap_NilableKey(t *testing.T) {
	m := hashtable.New[*handle, int](hashtable.HashFunc[*handle](func(h *handle) uint64 {
		return uint64(h.id)
	}))

	var nilHandle *handle
	assert.ErrorIs(t, m.Put(nilHandle, 1), hashtable.ErrNilKey)

	h := &handle{id: 9}
	require.NoError(t, m.Put(h, 1))
	assert.True(t, m.ContainsKey(h))
	assert.False(t, m.ContainsKey(&handle{id: 9}), "pointer keys compare by identity")
}

func TestMap_StringHasherRejectsEmpty(t *testing.T) {
	m := hashtable.New[string, int](hashtable.String())

	assert.ErrorIs(t, m.Put("", 1), hashtable.ErrInvalidKey)
	_, err := m.Remove("")
	assert.ErrorIs(t, err, hashtable.ErrInvalidKey)
	assert.False(t, m.ContainsKey(""))
}

// evenOnly validates that integer keys are even; its errors do not wrap ErrInvalidKey.
type evenOnly struct{}

func (evenOnly) Hash(k int) uint64 { return uint64(k) }

func (evenOnly) Validate(k int) error {
	if k%2 != 0 {
		return assert.AnError
	}

	return nil
}

func TestMap_CustomValidatorWrapsInvalidKey(t *testing.T) {
	m := hashtable.New[int, int](evenOnly{})

	err := m.Put(3, 3)
	assert.ErrorIs(t, err, hashtable.ErrInvalidKey)
	require.NoError(t, m.Put(4, 4))
}

// ------------------------------------------------------------------------
// 3. Remove / Clear
// ------------------------------------------------------------------------

func TestMap_Remove(t *testing.T) {
	m := newIntMap()
	require.NoError(t, m.Put(1, "one"))
	require.NoError(t, m.Put(2, "two"))
	require.NoError(t, m.Put(3, "three"))

	v, err := m.Remove(2)
	require.NoError(t, err)
	assert.Equal(t, "two", v)

	_, err = m.Remove(4)
	assert.ErrorIs(t, err, hashtable.ErrKeyNotFound)

	assert.False(t, m.ContainsKey(2))
	assert.Equal(t, 2, m.Len())
}

func TestMap_RemovePreservesChainNeighbours(t *testing.T) {
	// A constant hash forces every key into one chain.
	m := hashtable.New[int, int](hashtable.HashFunc[int](func(int) uint64 { return 0 }), hashtable.WithCapacity(100))
	for i := 0; i < 5; i++ {
		require.NoError(t, m.Put(i, i*10))
	}

	_, err := m.Remove(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 4}, m.Keys())
	for _, k := range []int{0, 1, 3, 4} {
		v, err := m.Get(k)
		require.NoError(t, err)
		assert.Equal(t, k*10, v)
	}
}

func TestMap_Clear(t *testing.T) {
	m := newIntMap(hashtable.WithCapacity(4))
	for i := 1; i <= 4; i++ {
		require.NoError(t, m.Put(i, strconv.Itoa(i)))
	}
	assert.Equal(t, 4, m.Len())
	capBefore := m.Cap()

	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, capBefore, m.Cap(), "Clear keeps capacity")

	require.NoError(t, m.Put(1, "one"))
	assert.True(t, m.ContainsKey(1))
}

// ------------------------------------------------------------------------
// 4. Growth
// ------------------------------------------------------------------------

func TestMap_DefaultCapacity(t *testing.T) {
	assert.Equal(t, hashtable.DefaultCapacity, newIntMap().Cap())
}

func TestMap_TableResizeTwice(t *testing.T) {
	m := newIntMap(hashtable.WithCapacity(4))

	require.NoError(t, m.Put(1, "one"))
	require.NoError(t, m.Put(2, "two"))
	require.NoError(t, m.Put(3, "three"))
	assert.Equal(t, 4, m.Cap(), "3/4 is below the load factor")

	require.NoError(t, m.Put(4, "four"))
	assert.Equal(t, 8, m.Cap())

	require.NoError(t, m.Put(5, "five"))
	require.NoError(t, m.Put(6, "six"))
	assert.Equal(t, 8, m.Cap(), "6/8 is below the load factor")

	require.NoError(t, m.Put(7, "seven"))
	assert.Equal(t, 16, m.Cap())

	for i := 1; i <= 7; i++ {
		assert.True(t, m.ContainsKey(i), "key %d lost during growth", i)
	}
}

func TestMap_FailedPutDoesNotGrow(t *testing.T) {
	m := newIntMap(hashtable.WithCapacity(4))
	for i := 1; i <= 3; i++ {
		require.NoError(t, m.Put(i, ""))
	}
	assert.ErrorIs(t, m.Put(3, ""), hashtable.ErrDuplicateKey)
	assert.Equal(t, 4, m.Cap())
	assert.Equal(t, 3, m.Len())
}

func TestWithCapacity_PanicsOnNonPositive(t *testing.T) {
	assert.PanicsWithValue(t, hashtable.ErrBadCapacity.Error(), func() { hashtable.WithCapacity(0) })
}

// ------------------------------------------------------------------------
// 5. Enumeration
// ------------------------------------------------------------------------

func TestMap_RangeVisitsAll(t *testing.T) {
	m := newIntMap()
	for i := 0; i < 10; i++ {
		require.NoError(t, m.Put(i, strconv.Itoa(i)))
	}

	seen := make(map[int]string)
	m.Range(func(k int, v string) bool {
		seen[k] = v
		return true
	})
	assert.Len(t, seen, 10)
	assert.ElementsMatch(t, m.Keys(), []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
}

func TestMap_RangeStopsEarly(t *testing.T) {
	m := newIntMap()
	for i := 0; i < 10; i++ {
		require.NoError(t, m.Put(i, ""))
	}

	calls := 0
	m.Range(func(int, string) bool {
		calls++
		return calls < 3
	})
	assert.Equal(t, 3, calls)
}

func TestMap_MutationDuringRangePanics(t *testing.T) {
	m := newIntMap()
	require.NoError(t, m.Put(1, "one"))

	assert.Panics(t, func() {
		m.Range(func(k int, _ string) bool {
			_ = m.Put(k+100, "x")
			return true
		})
	})

	// The guard is released once Range returns.
	assert.NotPanics(t, func() { require.NoError(t, m.Put(2, "two")) })
}
