package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkLinks walks the list forward and backward and verifies values,
// length and link symmetry.
func checkLinks(t *testing.T, l *List[int], want []int) {
	t.Helper()
	require.Equal(t, len(want), l.Len())

	var forward []int
	for n := l.head; n != nil; n = n.next {
		forward = append(forward, n.Value)
		if n.next != nil {
			require.Same(t, n, n.next.prev)
		} else {
			require.Same(t, n, l.tail)
		}
		if n.prev == nil {
			require.Same(t, n, l.head)
		}
	}
	assert.Equal(t, want, forward)

	var backward []int
	for n := l.tail; n != nil; n = n.prev {
		backward = append(backward, n.Value)
	}
	require.Equal(t, len(want), len(backward))
	for i, v := range backward {
		assert.Equal(t, want[len(want)-1-i], v)
	}
}

func TestNewList(t *testing.T) {
	l := NewList[int]()
	assert.Nil(t, l.head)
	assert.Nil(t, l.tail)
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.Empty())
}

func TestPushFront(t *testing.T) {
	l := NewList[int]()
	l.PushFront(5)
	checkLinks(t, l, []int{5})

	l.PushFront(3)
	checkLinks(t, l, []int{3, 5})
}

func TestPushBack(t *testing.T) {
	l := NewList[int]()
	l.PushBack(5)
	checkLinks(t, l, []int{5})

	l.PushBack(10)
	checkLinks(t, l, []int{5, 10})
}

func TestFrontBack(t *testing.T) {
	l := NewList[int]()

	_, err := l.Front()
	assert.ErrorIs(t, err, ErrEmptyContainer)
	_, err = l.Back()
	assert.ErrorIs(t, err, ErrEmptyContainer)

	l.PushBack(5)
	l.PushBack(10)

	front, err := l.Front()
	require.NoError(t, err)
	assert.Equal(t, 5, front)

	back, err := l.Back()
	require.NoError(t, err)
	assert.Equal(t, 10, back)
}

func TestInsertIntoEmpty(t *testing.T) {
	l := NewList[int]()
	it := l.Insert(l.End(), 7)
	v, err := it.Value()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	checkLinks(t, l, []int{7})
}

func TestInsertAtEndAppends(t *testing.T) {
	l := NewList[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.Insert(l.End(), 3)
	checkLinks(t, l, []int{1, 2, 3})
}

func TestInsertAtBegin(t *testing.T) {
	l := NewList[int]()
	l.PushBack(2)
	l.PushBack(3)
	it := l.Insert(l.Begin(), 1)
	v, _ := it.Value()
	assert.Equal(t, 1, v)
	checkLinks(t, l, []int{1, 2, 3})
}

func TestInsertMiddle(t *testing.T) {
	l := NewList[int]()
	l.PushBack(1)
	l.PushBack(3)
	it := l.Insert(l.Begin().Next(), 2)
	v, _ := it.Value()
	assert.Equal(t, 2, v)
	checkLinks(t, l, []int{1, 2, 3})
}

func TestEraseMiddle(t *testing.T) {
	l := NewList[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)

	next := l.Erase(l.Begin().Next())
	v, err := next.Value()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	checkLinks(t, l, []int{1, 3})
}

func TestEraseHead(t *testing.T) {
	l := NewList[int]()
	l.PushBack(1)
	l.PushBack(2)

	next := l.Erase(l.Begin())
	v, _ := next.Value()
	assert.Equal(t, 2, v)
	checkLinks(t, l, []int{2})
}

func TestEraseTail(t *testing.T) {
	l := NewList[int]()
	l.PushBack(1)
	l.PushBack(2)

	next := l.Erase(l.RBegin())
	assert.False(t, next.Valid())
	assert.Equal(t, l.End(), next)
	checkLinks(t, l, []int{1})
}

func TestEraseOnly(t *testing.T) {
	l := NewList[int]()
	l.PushBack(1)

	next := l.Erase(l.Begin())
	assert.False(t, next.Valid())
	checkLinks(t, l, nil)
}

func TestEraseEndSentinel(t *testing.T) {
	l := NewList[int]()
	l.PushBack(1)

	next := l.Erase(l.End())
	assert.Equal(t, l.End(), next)
	checkLinks(t, l, []int{1})
}

func TestPopFront(t *testing.T) {
	l := NewList[int]()
	l.PopFront() // no-op on empty
	assert.Equal(t, 0, l.Len())

	l.PushBack(1)
	l.PushBack(2)
	l.PopFront()
	checkLinks(t, l, []int{2})
}

func TestPopBack(t *testing.T) {
	l := NewList[int]()
	l.PopBack() // no-op on empty
	assert.Equal(t, 0, l.Len())

	l.PushBack(1)
	l.PushBack(2)
	l.PopBack()
	checkLinks(t, l, []int{1})
}

func TestClearList(t *testing.T) {
	l := NewList[int]()
	l.PushBack(5)
	l.PushBack(10)
	l.Clear()
	assert.Nil(t, l.head)
	assert.Nil(t, l.tail)
	assert.Equal(t, 0, l.Len())
}

func TestAssignShorterSource(t *testing.T) {
	dst := NewList[int]()
	for _, v := range []int{1, 2, 3, 4, 5} {
		dst.PushBack(v)
	}
	src := NewList[int]()
	src.PushBack(10)
	src.PushBack(20)

	survivor := dst.head // first node must be reused, not reallocated
	dst.Assign(src)
	checkLinks(t, dst, []int{10, 20})
	assert.Same(t, survivor, dst.head)
	checkLinks(t, src, []int{10, 20})
}

func TestAssignLongerSource(t *testing.T) {
	dst := NewList[int]()
	dst.PushBack(1)

	src := NewList[int]()
	for _, v := range []int{10, 20, 30} {
		src.PushBack(v)
	}

	survivor := dst.head
	dst.Assign(src)
	checkLinks(t, dst, []int{10, 20, 30})
	assert.Same(t, survivor, dst.head)
}

func TestAssignEmptySource(t *testing.T) {
	dst := NewList[int]()
	dst.PushBack(1)
	dst.PushBack(2)

	dst.Assign(NewList[int]())
	checkLinks(t, dst, nil)
}

func TestAssignSelf(t *testing.T) {
	l := NewList[int]()
	l.PushBack(1)
	l.Assign(l)
	checkLinks(t, l, []int{1})
}

func TestMoveFromList(t *testing.T) {
	src := NewList[int]()
	src.PushBack(1)
	src.PushBack(2)

	dst := NewList[int]()
	dst.PushBack(99)

	dst.MoveFrom(src)
	checkLinks(t, dst, []int{1, 2})
	checkLinks(t, src, nil)

	// source stays usable
	src.PushBack(3)
	checkLinks(t, src, []int{3})
}

func TestSwapLists(t *testing.T) {
	a := NewList[int]()
	a.PushBack(1)
	b := NewList[int]()
	b.PushBack(2)
	b.PushBack(3)

	a.Swap(b)
	checkLinks(t, a, []int{2, 3})
	checkLinks(t, b, []int{1})
}

func TestListIterIdentity(t *testing.T) {
	l := NewList[int]()
	l.PushBack(7)

	other := NewList[int]()
	other.PushBack(7)

	// same node compares equal, equal values in different nodes do not
	assert.Equal(t, l.Begin(), l.Begin())
	assert.NotEqual(t, l.Begin(), other.Begin())
	assert.Equal(t, l.End(), other.End())
}

func TestListIterWalk(t *testing.T) {
	l := NewList[int]()
	for _, v := range []int{1, 2, 3} {
		l.PushBack(v)
	}

	var got []int
	for it := l.Begin(); it.Valid(); it = it.Next() {
		v, err := it.Value()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)

	got = got[:0]
	for it := l.RBegin(); it.Valid(); it = it.Prev() {
		v, _ := it.Value()
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 2, 1}, got)
}

func TestListIterDereferenceEnd(t *testing.T) {
	l := NewList[int]()
	_, err := l.End().Value()
	assert.ErrorIs(t, err, ErrInvalidDereference)
	assert.ErrorIs(t, l.End().SetValue(1), ErrInvalidDereference)
}

func TestListIterSetValue(t *testing.T) {
	l := NewList[int]()
	l.PushBack(1)
	require.NoError(t, l.Begin().SetValue(42))
	v, _ := l.Front()
	assert.Equal(t, 42, v)
}
