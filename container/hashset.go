package container

import "math"

const (
	DefaultBucketCount   = 8
	DefaultMaxLoadFactor = 1.0
)

// HashSet is a chained hash set: a bucket table of owned Lists addressed by
// hash(value) mod bucket count, with collisions resolved inside each
// bucket's chain. An element occurs at most once under the configured
// equality. Not safe for concurrent use.
type HashSet[T any] struct {
	buckets       []List[T]
	numElements   int
	maxLoadFactor float64
	hash          HashFunc[T]
	equals        EqualFunc[T]
}

// NewHashSet builds an empty set with the default bucket count. Nil strategy
// arguments select DefaultHash and DefaultEqual.
func NewHashSet[T any](hash HashFunc[T], equals EqualFunc[T]) *HashSet[T] {
	return NewHashSetSize(DefaultBucketCount, hash, equals)
}

// NewHashSetSize builds an empty set with numBuckets buckets.
func NewHashSetSize[T any](numBuckets int, hash HashFunc[T], equals EqualFunc[T]) *HashSet[T] {
	if numBuckets < 0 {
		numBuckets = 0
	}
	if hash == nil {
		hash = DefaultHash[T]
	}
	if equals == nil {
		equals = DefaultEqual[T]
	}
	return &HashSet[T]{
		buckets:       make([]List[T], numBuckets),
		maxLoadFactor: DefaultMaxLoadFactor,
		hash:          hash,
		equals:        equals,
	}
}

// NewHashSetOf builds a set holding the distinct members of values.
func NewHashSetOf[T any](values []T, hash HashFunc[T], equals EqualFunc[T]) *HashSet[T] {
	h := NewHashSet(hash, equals)
	h.Reserve(len(values))
	h.InsertAll(values...)
	return h
}

// Bucket returns the index value currently maps to, 0 when the table is
// empty so the result is always a defined index-or-zero.
func (h *HashSet[T]) Bucket(value T) int {
	if len(h.buckets) == 0 {
		return 0
	}
	return int(h.hash(value) % uint64(len(h.buckets)))
}

func (h *HashSet[T]) BucketCount() int {
	return len(h.buckets)
}

func (h *HashSet[T]) BucketSize(i int) int {
	if i < 0 || i >= len(h.buckets) {
		return 0
	}
	return h.buckets[i].Len()
}

func (h *HashSet[T]) Len() int {
	return h.numElements
}

func (h *HashSet[T]) Empty() bool {
	return h.numElements == 0
}

func (h *HashSet[T]) LoadFactor() float64 {
	if len(h.buckets) == 0 {
		return 0
	}
	return float64(h.numElements) / float64(len(h.buckets))
}

func (h *HashSet[T]) MaxLoadFactor() float64 {
	return h.maxLoadFactor
}

// SetMaxLoadFactor sets the growth threshold. It does not rehash by itself;
// the next insert that crosses the new threshold does. Non-positive values
// are ignored: a zero threshold would make the required bucket count
// unbounded.
func (h *HashSet[T]) SetMaxLoadFactor(m float64) {
	if m <= 0 {
		return
	}
	h.maxLoadFactor = m
}

// minBucketsRequired returns the fewest buckets keeping num elements at or
// under the max load factor.
func (h *HashSet[T]) minBucketsRequired(num int) int {
	return int(math.Ceil(float64(num) / h.maxLoadFactor))
}

// findInBucket scans one chain for an equal element.
func (h *HashSet[T]) findInBucket(i int, value T) ListIter[T] {
	for n := h.buckets[i].head; n != nil; n = n.next {
		if h.equals(n.Value, value) {
			return ListIter[T]{node: n}
		}
	}
	return ListIter[T]{}
}

// Find returns an iterator at the element equal to value, or End.
func (h *HashSet[T]) Find(value T) SetIter[T] {
	if len(h.buckets) == 0 {
		return h.End()
	}
	i := h.Bucket(value)
	if it := h.findInBucket(i, value); it.Valid() {
		return SetIter[T]{set: h, bucket: i, chain: it}
	}
	return h.End()
}

// Insert adds value unless an equal element is already present. The second
// result reports whether the set was mutated; the iterator references the
// inserted or the pre-existing element.
func (h *HashSet[T]) Insert(value T) (SetIter[T], bool) {
	i := h.Bucket(value)
	if len(h.buckets) > 0 {
		if it := h.findInBucket(i, value); it.Valid() {
			return SetIter[T]{set: h, bucket: i, chain: it}, false
		}
	}

	// Grow first if one more element would exceed the load-factor limit,
	// then recompute the bucket: rehash moved everything.
	if h.minBucketsRequired(h.numElements+1) > len(h.buckets) {
		need := h.numElements * 2
		if need < h.numElements+1 {
			need = h.numElements + 1
		}
		h.Reserve(need)
		i = h.Bucket(value)
	}

	h.buckets[i].PushBack(value)
	h.numElements++
	return SetIter[T]{set: h, bucket: i, chain: h.buckets[i].RBegin()}, true
}

// InsertAll inserts each value in turn, skipping duplicates.
func (h *HashSet[T]) InsertAll(values ...T) {
	for _, v := range values {
		h.Insert(v)
	}
}

// Erase removes the element equal to value if present and returns the next
// logical position, exactly as erasing through an iterator and advancing
// would. Absent values return End unchanged.
func (h *HashSet[T]) Erase(value T) SetIter[T] {
	it := h.Find(value)
	if !it.Valid() {
		return it
	}
	next := it.Next()
	h.buckets[it.bucket].Erase(it.chain)
	h.numElements--
	return next
}

// Clear empties every bucket. Bucket count and max load factor are kept.
func (h *HashSet[T]) Clear() {
	for i := range h.buckets {
		h.buckets[i].Clear()
	}
	h.numElements = 0
}

// Rehash grows the bucket table to numBuckets and redistributes every node
// by splicing it into hash(value) mod numBuckets, transferring ownership
// without copying elements. The table never shrinks: smaller requests are
// no-ops. Invalidates all iterators.
func (h *HashSet[T]) Rehash(numBuckets int) {
	if numBuckets <= len(h.buckets) {
		return
	}
	newBuckets := make([]List[T], numBuckets)
	for i := range h.buckets {
		n := h.buckets[i].detachAll()
		for n != nil {
			next := n.next
			idx := int(h.hash(n.Value) % uint64(numBuckets))
			newBuckets[idx].pushNode(n)
			n = next
		}
	}
	h.buckets = newBuckets
}

// Reserve grows the table so numElements fit without crossing the max load
// factor.
func (h *HashSet[T]) Reserve(numElements int) {
	h.Rehash(int(math.Ceil(float64(numElements) / h.maxLoadFactor)))
}

// Assign replaces the receiver's contents with a deep copy of src,
// reconciling bucket-by-bucket when the table sizes already match.
func (h *HashSet[T]) Assign(src *HashSet[T]) {
	if h == src {
		return
	}
	if len(h.buckets) != len(src.buckets) {
		for i := range h.buckets {
			h.buckets[i].Clear()
		}
		h.buckets = make([]List[T], len(src.buckets))
	}
	for i := range src.buckets {
		h.buckets[i].Assign(&src.buckets[i])
	}
	h.numElements = src.numElements
	h.maxLoadFactor = src.maxLoadFactor
	h.hash, h.equals = src.hash, src.equals
}

// Clone returns an independent deep copy.
func (h *HashSet[T]) Clone() *HashSet[T] {
	c := NewHashSetSize[T](len(h.buckets), h.hash, h.equals)
	c.Assign(h)
	return c
}

// MoveFrom takes ownership of src's bucket table and resets src to a fresh
// default-sized empty state, so src stays usable (its bucket count never
// drops to zero).
func (h *HashSet[T]) MoveFrom(src *HashSet[T]) {
	if h == src {
		return
	}
	for i := range h.buckets {
		h.buckets[i].Clear()
	}
	h.buckets = src.buckets
	h.numElements = src.numElements
	h.maxLoadFactor = src.maxLoadFactor
	h.hash, h.equals = src.hash, src.equals
	src.buckets = make([]List[T], DefaultBucketCount)
	src.numElements = 0
	src.maxLoadFactor = DefaultMaxLoadFactor
}

// Swap exchanges bucket table, element count and max load factor in O(1).
// Hash and equality strategies stay with their instances.
func (h *HashSet[T]) Swap(other *HashSet[T]) {
	h.buckets, other.buckets = other.buckets, h.buckets
	h.numElements, other.numElements = other.numElements, h.numElements
	h.maxLoadFactor, other.maxLoadFactor = other.maxLoadFactor, h.maxLoadFactor
}
