package hashtable

import (
	"errors"
	"fmt"
)

// entry is one key/value pair inside a bucket chain.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// Map is a separate-chaining hash table keyed by comparable K.
//
// buckets is the arena of chains; len(buckets) is the capacity. size is kept
// as a counter so Len is O(1). ranging counts active Range calls; any
// mutation while it is non-zero panics.
type Map[K comparable, V any] struct {
	buckets   [][]entry[K, V]
	size      int
	hasher    Hasher[K]
	validator Validator[K]
	ranging   int
}

// New creates an empty Map that hashes keys with h.
// Capacity defaults to DefaultCapacity; see WithCapacity.
// Complexity: O(capacity).
func New[K comparable, V any](h Hasher[K], opts ...Option) *Map[K, V] {
	s := settings{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&s)
	}

	m := &Map[K, V]{
		buckets: make([][]entry[K, V], s.capacity),
		hasher:  h,
	}
	if v, ok := h.(Validator[K]); ok {
		m.validator = v
	}

	return m
}

// Put maps key to value.
//
// Implementation:
//   - Stage 1: Reject nil and invalid keys.
//   - Stage 2: Scan the key's chain; an existing key fails with ErrDuplicateKey
//     and leaves the stored value untouched.
//   - Stage 3: Append the pair to the chain and bump size.
//   - Stage 4: If Len()/Cap() >= MaxLoadFactor, grow to double capacity.
//
// Errors:
//   - ErrNilKey, ErrInvalidKey, ErrDuplicateKey.
//
// Complexity:
//   - O(1) expected; O(n) when the insertion triggers growth.
func (m *Map[K, V]) Put(key K, value V) error {
	m.mustNotRange()
	if err := m.check(key); err != nil {
		return err
	}

	idx := m.index(key, len(m.buckets))
	for _, e := range m.buckets[idx] {
		if e.key == key {
			return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
		}
	}
	m.buckets[idx] = append(m.buckets[idx], entry[K, V]{key: key, value: value})
	m.size++

	if float64(m.size)/float64(len(m.buckets)) >= MaxLoadFactor {
		m.grow(len(m.buckets) * growthFactor)
	}

	return nil
}

// Get returns the value mapped to key without mutating the map.
// Errors: ErrNilKey, ErrInvalidKey, ErrKeyNotFound.
func (m *Map[K, V]) Get(key K) (V, error) {
	var zero V
	if err := m.check(key); err != nil {
		return zero, err
	}

	for _, e := range m.buckets[m.index(key, len(m.buckets))] {
		if e.key == key {
			return e.value, nil
		}
	}

	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// ContainsKey reports whether key is mapped. Nil and invalid keys are never
// contained.
func (m *Map[K, V]) ContainsKey(key K) bool {
	if m.check(key) != nil {
		return false
	}
	for _, e := range m.buckets[m.index(key, len(m.buckets))] {
		if e.key == key {
			return true
		}
	}

	return false
}

// Remove deletes the pair for key and returns its value.
// Chain order of the remaining pairs is preserved.
// Errors: ErrNilKey, ErrInvalidKey, ErrKeyNotFound.
func (m *Map[K, V]) Remove(key K) (V, error) {
	var zero V
	m.mustNotRange()
	if err := m.check(key); err != nil {
		return zero, err
	}

	idx := m.index(key, len(m.buckets))
	chain := m.buckets[idx]
	for i, e := range chain {
		if e.key != key {
			continue
		}
		copy(chain[i:], chain[i+1:])
		chain[len(chain)-1] = entry[K, V]{} // release references held by the tail slot
		m.buckets[idx] = chain[:len(chain)-1]
		m.size--

		return e.value, nil
	}

	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Clear removes every pair and keeps the current capacity.
// Complexity: O(Cap()).
func (m *Map[K, V]) Clear() {
	m.mustNotRange()
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.size = 0
}

// Len returns the number of stored pairs.
func (m *Map[K, V]) Len() int { return m.size }

// Cap returns the current bucket count.
func (m *Map[K, V]) Cap() int { return len(m.buckets) }

// Keys returns a snapshot of all keys in bucket order.
// The order is deterministic for a fixed sequence of operations but is
// otherwise unspecified.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for _, chain := range m.buckets {
		for _, e := range chain {
			keys = append(keys, e.key)
		}
	}

	return keys
}

// Range calls fn for every pair in bucket order until fn returns false.
// fn must not mutate the map: Put, Remove and Clear panic while Range is active.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	m.ranging++
	defer func() { m.ranging-- }()

	for _, chain := range m.buckets {
		for _, e := range chain {
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}

// grow reallocates the bucket arena with newCap buckets and re-distributes
// every pair using newCap. Pairs from one old chain may land in different new
// chains and their relative order may change.
func (m *Map[K, V]) grow(newCap int) {
	next := make([][]entry[K, V], newCap)
	for _, chain := range m.buckets {
		for _, e := range chain {
			idx := m.index(e.key, newCap)
			next[idx] = append(next[idx], e)
		}
	}
	m.buckets = next
}

// index reduces the key's hash modulo capacity. Hashes are unsigned, so no
// absolute value is needed.
func (m *Map[K, V]) index(key K, capacity int) int {
	return int(m.hasher.Hash(key) % uint64(capacity))
}

// check rejects nil keys and keys refused by the validator.
func (m *Map[K, V]) check(key K) error {
	if isNil(key) {
		return ErrNilKey
	}
	if m.validator != nil {
		if err := m.validator.Validate(key); err != nil {
			if errors.Is(err, ErrInvalidKey) {
				return err
			}

			return fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
	}

	return nil
}

func (m *Map[K, V]) mustNotRange() {
	if m.ranging > 0 {
		panic("hashtable: map mutated during Range")
	}
}
