package container

import "errors"

var (
	// ErrEmptyContainer is returned by accessors that need at least one element.
	ErrEmptyContainer = errors.New("empty container")

	// ErrInvalidDereference is returned when an end iterator is dereferenced.
	ErrInvalidDereference = errors.New("invalid iterator dereference")

	// ErrAllocationFailure carries a fatal allocation panic. Allocation is
	// never retried; in-memory operations are deterministic.
	ErrAllocationFailure = errors.New("allocation failure")
)
