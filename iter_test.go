package bucketlist

import (
	"testing"

	"github.com/joeycumines/bucketlist/pointer"
	"github.com/stretchr/testify/assert"
)

func TestAll_StopsEarlyOnFalse(t *testing.T) {
	n := New[int, pointer.Local](small())
	for i := 5; i >= 1; i-- {
		n.ConsMut(i)
	}
	var seen []int
	for v := range n.All() {
		seen = append(seen, v)
		if v == 3 {
			break
		}
	}
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestConsume_LeavesReceiverEmpty(t *testing.T) {
	n := New[int, pointer.Local](small())
	for i := 6; i >= 1; i-- {
		n.ConsMut(i)
	}
	var seen []int
	n.Consume(func(v int) bool {
		seen = append(seen, v)
		return true
	})
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, seen)
	assert.True(t, n.IsEmpty())
}

func TestConsume_StopsEarly(t *testing.T) {
	n := New[int, pointer.Local](small())
	for i := 4; i >= 1; i-- {
		n.ConsMut(i)
	}
	var seen []int
	n.Consume(func(v int) bool {
		seen = append(seen, v)
		return v < 2
	})
	assert.Equal(t, []int{1, 2}, seen)
	assert.True(t, n.IsEmpty(), "Consume always leaves the receiver empty, even stopped early")
}

func TestDrain_UniquelyOwned(t *testing.T) {
	n := New[int, pointer.Local](small())
	for i := 3; i >= 1; i-- {
		n.ConsMut(i)
	}
	var seen []int
	stoppedOnShared := n.Drain(func(v int) bool {
		seen = append(seen, v)
		return true
	})
	assert.False(t, stoppedOnShared)
	assert.Equal(t, []int{1, 2, 3}, seen)
	assert.True(t, n.IsEmpty())
}

func TestDrain_StopsAtSharedBucket(t *testing.T) {
	n := New[int, pointer.Local](small())
	n.ConsMut(2)
	n.ConsMut(1)
	keep := n.clone() // bumps strong count to 2

	var seen []int
	stoppedOnShared := n.Drain(func(v int) bool {
		seen = append(seen, v)
		return true
	})
	assert.True(t, stoppedOnShared)
	assert.Empty(t, seen)
	assert.Equal(t, []int{1, 2}, collectAll(keep))
}
