package container

// ListNode is a single owned cell of a List, linked to its chain neighbors.
// A node belongs to exactly one List at a time.
type ListNode[T any] struct {
	Value T
	prev  *ListNode[T]
	next  *ListNode[T]
}

// List is an owning doubly-linked sequence with O(1) insert and erase at any
// iterator position. The zero value is an empty list ready to use.
type List[T any] struct {
	head   *ListNode[T]
	tail   *ListNode[T]
	length int
}

func NewList[T any]() *List[T] {
	return &List[T]{}
}

// ListIter is a bidirectional position within a List. The zero value is the
// end sentinel. Two iterators are equal iff they reference the same node,
// regardless of stored values.
type ListIter[T any] struct {
	node *ListNode[T]
}

func (it ListIter[T]) Valid() bool {
	return it.node != nil
}

func (it ListIter[T]) Next() ListIter[T] {
	if it.node == nil {
		return it
	}
	return ListIter[T]{node: it.node.next}
}

func (it ListIter[T]) Prev() ListIter[T] {
	if it.node == nil {
		return it
	}
	return ListIter[T]{node: it.node.prev}
}

// Value returns the referenced element, or ErrInvalidDereference at end.
func (it ListIter[T]) Value() (T, error) {
	if it.node == nil {
		var zero T
		return zero, ErrInvalidDereference
	}
	return it.node.Value, nil
}

// SetValue overwrites the referenced element in place.
func (it ListIter[T]) SetValue(v T) error {
	if it.node == nil {
		return ErrInvalidDereference
	}
	trackSwap(it.node.Value, v)
	it.node.Value = v
	return nil
}

func newListNode[T any](value T) *ListNode[T] {
	trackAlloc(value)
	return &ListNode[T]{Value: value}
}

func releaseListNode[T any](n *ListNode[T]) {
	trackFree(n.Value)
	n.prev, n.next = nil, nil
}

func (l *List[T]) Len() int {
	return l.length
}

func (l *List[T]) Empty() bool {
	return l.length == 0
}

func (l *List[T]) Begin() ListIter[T] {
	return ListIter[T]{node: l.head}
}

func (l *List[T]) End() ListIter[T] {
	return ListIter[T]{}
}

// RBegin returns an iterator at the last element, for backward walks.
func (l *List[T]) RBegin() ListIter[T] {
	return ListIter[T]{node: l.tail}
}

// Front returns the first element, or ErrEmptyContainer.
func (l *List[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyContainer
	}
	return l.head.Value, nil
}

// Back returns the last element, or ErrEmptyContainer.
func (l *List[T]) Back() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmptyContainer
	}
	return l.tail.Value, nil
}

// pushNode appends an already-allocated node, relinking it to the tail.
// Rehash uses this to transfer node ownership between buckets.
func (l *List[T]) pushNode(n *ListNode[T]) {
	n.prev, n.next = l.tail, nil
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.length++
}

func (l *List[T]) PushBack(value T) {
	l.pushNode(newListNode(value))
}

func (l *List[T]) PushFront(value T) {
	n := newListNode(value)
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.length++
}

// PopFront removes the first element. No-op on an empty list.
func (l *List[T]) PopFront() {
	if l.head != nil {
		l.Erase(ListIter[T]{node: l.head})
	}
}

// PopBack removes the last element. No-op on an empty list.
func (l *List[T]) PopBack() {
	if l.tail != nil {
		l.Erase(ListIter[T]{node: l.tail})
	}
}

// Insert places value immediately before it and returns the new position.
// Inserting at the end sentinel appends.
func (l *List[T]) Insert(it ListIter[T], value T) ListIter[T] {
	n := newListNode(value)
	switch {
	case l.head == nil:
		l.head, l.tail = n, n
	case it.node == nil:
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	default:
		n.prev = it.node.prev
		n.next = it.node
		if n.prev != nil {
			n.prev.next = n
		} else {
			l.head = n
		}
		it.node.prev = n
	}
	l.length++
	return ListIter[T]{node: n}
}

// Erase unlinks the referenced node and returns the position after it.
// Erasing the end sentinel is a no-op that returns the end sentinel.
func (l *List[T]) Erase(it ListIter[T]) ListIter[T] {
	n := it.node
	if n == nil {
		return it
	}
	next := n.next
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	releaseListNode(n)
	l.length--
	return ListIter[T]{node: next}
}

// Clear releases every node and resets to the empty state.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		releaseListNode(n)
		n = next
	}
	l.head, l.tail = nil, nil
	l.length = 0
}

// Assign makes the receiver an element-wise copy of src. Existing nodes are
// reused for the common prefix; only the length difference is appended or
// trimmed, never a full teardown and rebuild.
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}
	dst, s := l.head, src.head
	for dst != nil && s != nil {
		trackSwap(dst.Value, s.Value)
		dst.Value = s.Value
		dst, s = dst.next, s.next
	}
	if s != nil {
		for ; s != nil; s = s.next {
			l.PushBack(s.Value)
		}
		return
	}
	if dst == nil {
		return
	}
	// src was shorter: drop everything from dst onward
	newTail := dst.prev
	for n := dst; n != nil; {
		next := n.next
		releaseListNode(n)
		l.length--
		n = next
	}
	if newTail != nil {
		newTail.next = nil
		l.tail = newTail
	} else {
		l.head, l.tail = nil, nil
	}
}

// MoveFrom releases the receiver's nodes, takes ownership of src's, and
// resets src to empty.
func (l *List[T]) MoveFrom(src *List[T]) {
	if l == src {
		return
	}
	l.Clear()
	l.head, l.tail, l.length = src.head, src.tail, src.length
	src.head, src.tail, src.length = nil, nil, 0
}

// Swap exchanges contents with other in O(1).
func (l *List[T]) Swap(other *List[T]) {
	l.head, other.head = other.head, l.head
	l.tail, other.tail = other.tail, l.tail
	l.length, other.length = other.length, l.length
}

// detachAll surrenders the whole chain to the caller and resets the list.
func (l *List[T]) detachAll() *ListNode[T] {
	head := l.head
	l.head, l.tail, l.length = nil, nil, 0
	return head
}
