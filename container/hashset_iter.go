package container

// SetIter walks a HashSet as one logical sequence. Its position is a bucket
// index plus a position within that bucket's chain; end is the bucket count
// with a zero chain. Iterators are valid only until the owning set mutates
// structurally (insert, erase, clear, rehash); the container does not detect
// stale iterators at runtime.
//
// SetIter is comparable with ==. The owner pointer is part of the identity,
// so iterators from different sets are never equal.
type SetIter[T any] struct {
	set    *HashSet[T]
	bucket int
	chain  ListIter[T]
}

// Begin returns the first element of the first non-empty bucket, or End.
func (h *HashSet[T]) Begin() SetIter[T] {
	for i := range h.buckets {
		if !h.buckets[i].Empty() {
			return SetIter[T]{set: h, bucket: i, chain: h.buckets[i].Begin()}
		}
	}
	return h.End()
}

func (h *HashSet[T]) End() SetIter[T] {
	return SetIter[T]{set: h, bucket: len(h.buckets)}
}

func (it SetIter[T]) Valid() bool {
	return it.set != nil && it.bucket < len(it.set.buckets)
}

// Next advances within the current chain, then across buckets, skipping
// empty ones. At end it is a no-op.
func (it SetIter[T]) Next() SetIter[T] {
	if !it.Valid() {
		return it
	}
	it.chain = it.chain.Next()
	if it.chain.Valid() {
		return it
	}
	for it.bucket++; it.bucket < len(it.set.buckets); it.bucket++ {
		if !it.set.buckets[it.bucket].Empty() {
			it.chain = it.set.buckets[it.bucket].Begin()
			return it
		}
	}
	it.chain = ListIter[T]{}
	return it
}

// Value returns the referenced element, or ErrInvalidDereference at end.
func (it SetIter[T]) Value() (T, error) {
	if !it.Valid() {
		var zero T
		return zero, ErrInvalidDereference
	}
	return it.chain.Value()
}

// LocalIter is the single-bucket restriction of SetIter: the same chain
// advance, but it never crosses into another bucket. Its end is the chain
// end of the bucket it was created for.
type LocalIter[T any] struct {
	chain ListIter[T]
}

// BucketBegin returns a LocalIter at the first element of bucket i.
func (h *HashSet[T]) BucketBegin(i int) LocalIter[T] {
	if i < 0 || i >= len(h.buckets) {
		return LocalIter[T]{}
	}
	return LocalIter[T]{chain: h.buckets[i].Begin()}
}

// BucketEnd returns the end of bucket i's chain.
func (h *HashSet[T]) BucketEnd(i int) LocalIter[T] {
	return LocalIter[T]{}
}

func (it LocalIter[T]) Valid() bool {
	return it.chain.Valid()
}

func (it LocalIter[T]) Next() LocalIter[T] {
	it.chain = it.chain.Next()
	return it
}

func (it LocalIter[T]) Value() (T, error) {
	return it.chain.Value()
}
