// Package hashtable provides a generic key→value map with separate chaining
// and automatic growth. It is the index structure underneath core.Graph and
// the visited-set of the dijkstra engine.
//
// What
//
//   - Map[K, V] stores pairs in an arena of buckets ([][]entry). A key lands
//     in bucket hash(key) % Cap().
//   - Collisions are resolved by chaining: each bucket is a slice of pairs in
//     insertion order. No open addressing, no tombstones.
//   - After every successful Put, if Len()/Cap() >= MaxLoadFactor (0.8), the
//     arena is reallocated at twice the capacity and every pair is
//     re-distributed using the new capacity.
//
// Hashing
//
//	Go has no universal hash for arbitrary comparable types, so the map
//	requires an explicit capability: a Hasher[K]. Keys must also be
//	comparable; equality is Go's ==.
//
//	  hashtable.String()          — xxhash over the string bytes; rejects ""
//	  hashtable.Integer[K]()      — xxhash over the 8-byte encoding of any integer
//	  hashtable.HashFunc[K](fn)   — adapt any func(K) uint64
//
//	A Hasher that also implements Validator[K] gets every key validated on
//	Put/Get/Remove (ErrInvalidKey).
//
// Errors
//
//	ErrNilKey        – key is a nil interface or a nil Nilable value.
//	ErrInvalidKey    – key rejected by the hasher's Validator.
//	ErrDuplicateKey  – Put on a key that is already present.
//	ErrKeyNotFound   – Get/Remove on an absent key.
//
// Complexity
//
//   - Put, Get, ContainsKey, Remove: O(1) expected, O(n) worst case.
//   - Growth: O(n), amortized O(1) per Put.
//   - Clear: O(Cap()).
//
// Concurrency
//
//	A Map is not safe for concurrent use. Growth is a stop-the-world step
//	for the calling goroutine; Range panics if its callback mutates the map.
//
// Usage
//
//	m := hashtable.New[string, int](hashtable.String())
//	if err := m.Put("Union South", 1); err != nil {
//	    // ErrDuplicateKey / ErrInvalidKey
//	}
//	v, err := m.Get("Union South")
package hashtable
