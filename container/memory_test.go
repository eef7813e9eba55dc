package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsedMemoryTracksNodes(t *testing.T) {
	before := UsedMemory()

	l := NewList[int]()
	l.PushBack(1)
	l.PushBack(2)
	assert.Greater(t, UsedMemory(), before)

	l.Clear()
	assert.Equal(t, before, UsedMemory())
}

func TestUsedMemoryFollowsErase(t *testing.T) {
	before := UsedMemory()

	h := NewHashSet[string](HashString, EqualOf[string])
	h.InsertAll("a", "bb", "ccc")
	h.Erase("bb")
	h.Clear()

	assert.Equal(t, before, UsedMemory())
}

func TestRehashDoesNotLeak(t *testing.T) {
	before := UsedMemory()

	h := NewHashSet[int](hashInt, EqualOf[int])
	for i := 0; i < 20; i++ {
		h.Insert(i)
	}
	after := UsedMemory()

	// rehash splices existing nodes, it does not allocate new ones
	h.Rehash(64)
	assert.Equal(t, after, UsedMemory())

	h.Clear()
	assert.Equal(t, before, UsedMemory())
}

func TestUsedMemoryFollowsOverwrite(t *testing.T) {
	before := UsedMemory()

	// Assign overwrites the common prefix in place, shrinking the stored
	// string from ten bytes to one
	dst := NewList[string]()
	dst.PushBack("0123456789")
	src := NewList[string]()
	src.PushBack("x")
	dst.Assign(src)

	// and SetValue grows it again
	require.NoError(t, dst.Begin().SetValue("a longer value"))

	dst.Clear()
	src.Clear()
	assert.Equal(t, before, UsedMemory())
}

func TestMaxMemoryIsFatal(t *testing.T) {
	SetMaxMemory(UsedMemory() + 1)
	defer SetMaxMemory(0)

	l := NewList[int]()
	assert.PanicsWithValue(t, ErrAllocationFailure, func() {
		l.PushBack(1)
	})
	assert.Equal(t, 0, l.Len())
}
