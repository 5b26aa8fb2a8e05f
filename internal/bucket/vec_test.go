package bucket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewVec_PreservesIndexOrder(t *testing.T) {
	v := NewVec([]int{1, 2, 3})
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 1, v.At(0))
	assert.Equal(t, 2, v.At(1))
	assert.Equal(t, 3, v.At(2))
}

func TestPush_GrowsAtHighIndex(t *testing.T) {
	var v Vec[int]
	v.Push(1)
	v.Push(2)
	v.Push(3)
	assert.Equal(t, []int{1, 2, 3}, v.Slice())
}

func TestUnshift_GrowsAtLowIndex(t *testing.T) {
	var v Vec[int]
	v.Unshift(1)
	v.Unshift(2)
	v.Unshift(3)
	assert.Equal(t, []int{3, 2, 1}, v.Slice())
}

func TestPop_RemovesHighIndex(t *testing.T) {
	v := NewVec([]int{1, 2, 3})
	got := v.Pop()
	assert.Equal(t, 3, got)
	assert.Equal(t, []int{1, 2}, v.Slice())
}

func TestTruncate_KeepsPrefix(t *testing.T) {
	v := NewVec([]int{1, 2, 3, 4})
	v.Truncate(2)
	assert.Equal(t, []int{1, 2}, v.Slice())
	assert.Equal(t, 2, v.Len())
}

func TestTruncate_NoopWhenAlreadyShorter(t *testing.T) {
	v := NewVec([]int{1, 2})
	v.Truncate(5)
	assert.Equal(t, 2, v.Len())
}

func TestClone_IsIndependentBacking(t *testing.T) {
	v := NewVec([]int{1, 2, 3})
	c := v.Clone()
	c.Push(4)
	assert.Equal(t, []int{1, 2, 3}, v.Slice())
	assert.Equal(t, []int{1, 2, 3, 4}, c.Slice())
}

func TestRef_PointsIntoLiveStorage(t *testing.T) {
	v := NewVec([]int{1, 2, 3})
	p := v.Ref(1)
	assert.Equal(t, 2, *p)
	*p = 99
	assert.Equal(t, 99, v.At(1))
}

func TestMixedPushUnshift_GrowthAcrossWrap(t *testing.T) {
	var v Vec[int]
	for i := 0; i < 5; i++ {
		v.Push(i)
	}
	for i := 0; i < 5; i++ {
		v.Unshift(-i)
	}
	assert.Equal(t, 10, v.Len())
	assert.Equal(t, []int{-4, -3, -2, -1, 0, 0, 1, 2, 3, 4}, v.Slice())
}
