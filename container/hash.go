package container

import (
	"fmt"
	"hash/fnv"
	"reflect"
)

// HashFunc maps an element to an unsigned hash value. It must be
// deterministic and agree with the paired EqualFunc: equal elements hash
// equally.
type HashFunc[T any] func(v T) uint64

// EqualFunc is an equivalence relation over T.
type EqualFunc[T any] func(a, b T) bool

// DefaultHash hashes the fmt representation of the value with fnv64a. Works
// for any element type at the cost of a formatting round trip.
func DefaultHash[T any](v T) uint64 {
	hasher := fnv.New64a()
	fmt.Fprintf(hasher, "%v", v)
	return hasher.Sum64()
}

// DefaultEqual compares elements with reflect.DeepEqual.
func DefaultEqual[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}

// HashString hashes s with fnv64a directly, without the fmt round trip.
func HashString(s string) uint64 {
	hasher := fnv.New64a()
	hasher.Write([]byte(s))
	return hasher.Sum64()
}

// EqualOf reports a == b for comparable element types.
func EqualOf[T comparable](a, b T) bool {
	return a == b
}
