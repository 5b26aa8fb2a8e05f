package bucketlist

import (
	"testing"

	"github.com/joeycumines/bucketlist/pointer"
	"github.com/stretchr/testify/assert"
)

func TestList_PushFrontPushBack(t *testing.T) {
	l := NewList[int, pointer.Local](WithBucketSize(4))
	l.PushFront(2)
	l.PushFront(1)
	l.PushBack(3)
	assert.Equal(t, 3, l.Len())
	v, ok := l.At(0)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, "[1 2 3]", l.String())
}

func TestList_ConsAndCdrArePersistent(t *testing.T) {
	l := NewList[int, pointer.Local]()
	l2 := l.Cons(1).Cons(2).Cons(3)
	l3, ok := l2.Cdr()
	assert.True(t, ok)
	assert.True(t, l.IsEmpty())
	assert.Equal(t, "[3 2 1]", l2.String())
	assert.Equal(t, "[2 1]", l3.String())
}

func TestList_TakeTailReverseAppend(t *testing.T) {
	l := ListFromSlice[int, pointer.Local]([]int{1, 2, 3, 4, 5}, WithBucketSize(2))
	assert.Equal(t, "[1 2]", l.Take(2).String())
	tail, ok := l.Tail(2)
	assert.True(t, ok)
	assert.Equal(t, "[3 4 5]", tail.String())
	assert.Equal(t, "[5 4 3 2 1]", l.Reverse().String())

	l2 := ListFromSlice[int, pointer.Local]([]int{6, 7}, WithBucketSize(2))
	assert.Equal(t, "[1 2 3 4 5 6 7]", l.Append(l2).String())
}

func TestList_Extend(t *testing.T) {
	l := ListFromSlice[int, pointer.Local]([]int{1, 2})
	l2 := ListFromSlice[int, pointer.Local]([]int{3, 4})
	l.Extend(l2)
	assert.Equal(t, "[1 2 3 4]", l.String())
}

func TestEqual(t *testing.T) {
	a := ListFromSlice[int, pointer.Local]([]int{1, 2, 3})
	b := ListFromSlice[int, pointer.Local]([]int{1, 2, 3})
	c := ListFromSlice[int, pointer.Local]([]int{1, 2})
	d := ListFromSlice[int, pointer.Local]([]int{1, 2, 4})

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.False(t, Equal(a, d))
}

func TestLess(t *testing.T) {
	a := ListFromSlice[int, pointer.Local]([]int{1, 2})
	b := ListFromSlice[int, pointer.Local]([]int{1, 2, 3})
	c := ListFromSlice[int, pointer.Local]([]int{1, 3})

	assert.True(t, Less(a, b))
	assert.False(t, Less(b, a))
	assert.True(t, Less(a, c))
	assert.False(t, Less(a, a))
}

func TestList_SameBucketAndStrongCount(t *testing.T) {
	l := ListFromSlice[int, pointer.Local]([]int{1, 2, 3})
	l2 := l.Cons(0)
	assert.False(t, l.SameBucket(l2))

	same := l.Clone()
	assert.True(t, l.SameBucket(same))
	assert.Equal(t, int64(2), l.StrongCount())
}

func TestList_Close_InvokesOnDropForUniquelyOwnedElements(t *testing.T) {
	l := ListFromSlice[int, pointer.Local]([]int{1, 2, 3}, WithBucketSize(2))
	var dropped []int
	l.OnDrop = func(v int) { dropped = append(dropped, v) }
	l.Close()
	assert.Equal(t, []int{1, 2, 3}, dropped)
}

func TestList_Close_SkipsOnDropForSharedElements(t *testing.T) {
	l := ListFromSlice[int, pointer.Local]([]int{1, 2, 3})
	kept := l.Clone()
	_ = kept
	var dropped []int
	l.OnDrop = func(v int) { dropped = append(dropped, v) }
	l.Close()
	assert.Empty(t, dropped, "Drain must not run OnDrop while another handle still shares the chain")
}
