// Package hashtable declares the hashing capability, sentinel errors and
// construction options for Map.
package hashtable

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

const (
	// DefaultCapacity is the bucket count of a Map built without WithCapacity.
	DefaultCapacity = 64

	// MaxLoadFactor is the Len()/Cap() ratio that triggers growth after a Put.
	MaxLoadFactor = 0.8

	// growthFactor multiplies the capacity on every growth step.
	growthFactor = 2
)

// Sentinel errors for map operations.
var (
	// ErrNilKey indicates a nil key (nil interface or Nilable reporting nil).
	ErrNilKey = errors.New("hashtable: key is nil")

	// ErrInvalidKey indicates a key rejected by the hasher's Validator.
	ErrInvalidKey = errors.New("hashtable: invalid key")

	// ErrDuplicateKey indicates Put was called with a key that is already mapped.
	ErrDuplicateKey = errors.New("hashtable: duplicate key")

	// ErrKeyNotFound indicates Get or Remove was called with an absent key.
	ErrKeyNotFound = errors.New("hashtable: key not found")

	// ErrBadCapacity indicates a non-positive capacity passed to WithCapacity.
	ErrBadCapacity = errors.New("hashtable: capacity must be positive")
)

// Hasher is the hash capability a key type must supply.
// Hash must be deterministic and consistent with ==.
type Hasher[K any] interface {
	Hash(key K) uint64
}

// Validator is an optional extension of Hasher. When the Hasher passed to New
// implements it, Put/Get/Remove reject keys for which Validate returns an error.
type Validator[K any] interface {
	Validate(key K) error
}

// Nilable lets pointer-backed key types report nil without reflection.
type Nilable interface {
	IsNil() bool
}

// HashFunc adapts an ordinary function to the Hasher interface.
type HashFunc[K any] func(key K) uint64

// Hash calls f(key).
func (f HashFunc[K]) Hash(key K) uint64 { return f(key) }

// stringHasher hashes strings with xxhash and rejects the empty string.
type stringHasher struct{}

func (stringHasher) Hash(key string) uint64 { return xxhash.Sum64String(key) }

func (stringHasher) Validate(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty string", ErrInvalidKey)
	}

	return nil
}

// String returns the Hasher used for location names and other string keys.
// The empty string is treated as an invalid key.
func String() Hasher[string] { return stringHasher{} }

// Integer returns a Hasher for any integer key type. Keys are encoded as
// 8 little-endian bytes and hashed with xxhash; every value, including zero
// and negatives, is a valid key.
func Integer[K constraints.Integer]() Hasher[K] {
	return HashFunc[K](func(key K) uint64 {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(key))

		return xxhash.Sum64(buf[:])
	})
}

// settings collects construction-time parameters.
type settings struct {
	capacity int
}

// Option configures a Map at construction.
type Option func(*settings)

// WithCapacity sets the initial bucket count.
// Panics with ErrBadCapacity if n < 1.
func WithCapacity(n int) Option {
	if n < 1 {
		panic(ErrBadCapacity.Error())
	}

	return func(s *settings) { s.capacity = n }
}

// isNil reports whether key must be rejected as a nil key.
func isNil[K comparable](key K) bool {
	v := any(key)
	if v == nil {
		return true
	}
	if n, ok := v.(Nilable); ok {
		return n.IsNil()
	}

	return false
}
