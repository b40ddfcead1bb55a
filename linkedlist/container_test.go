package linkedlist_test

import (
	"testing"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/katalvlaran/lvlist/linkedlist"
	"github.com/stretchr/testify/assert"
)

// describe uses only the gods container contract.
func describe(c containers.Container) (int, bool, []interface{}) {
	return c.Size(), c.Empty(), c.Values()
}

// TestContainer_MatchesArrayList verifies the list and a gods arraylist
// holding the same values look identical through containers.Container.
func TestContainer_MatchesArrayList(t *testing.T) {
	l := newIntList(t, &linkedlist.Recorder{}, 5, 10, 15)
	al := arraylist.New(5, 10, 15)

	size, empty, values := describe(l)
	wantSize, wantEmpty, wantValues := describe(al)

	assert.Equal(t, wantSize, size)
	assert.Equal(t, wantEmpty, empty)
	assert.Equal(t, wantValues, values)
}

// TestContainer_Clear verifies Clear tears the list down like Destroy.
func TestContainer_Clear(t *testing.T) {
	released := 0
	l := linkedlist.MustNew[int](linkedlist.WithOnRelease(func(int, any) { released++ }))
	_ = l.Append(linkedlist.NewNode(1))
	_ = l.Append(linkedlist.NewNode(2))

	var c containers.Container = l
	c.Clear()

	assert.True(t, c.Empty())
	assert.Zero(t, c.Size())
	assert.Empty(t, c.Values())
	assert.Equal(t, 2, released)
	assert.Equal(t, "NULL", c.String())
}
