package pointer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type intBox struct{ v int }

func (b intBox) Clone() intBox { return intBox{v: b.v} }

func TestNewLocal(t *testing.T) {
	p := NewLocal(intBox{v: 5})
	assert.Equal(t, int64(1), p.StrongCount())
	assert.Equal(t, 5, p.Load().v)
}

func TestLocalClone_IncrementsStrongCount(t *testing.T) {
	p := NewLocal(intBox{v: 1})
	c := p.Clone()
	assert.Equal(t, int64(2), p.StrongCount())
	assert.Equal(t, int64(2), c.StrongCount())
	assert.True(t, SameBucket(p, c))
}

func TestLocalRelease_DecrementsStrongCount(t *testing.T) {
	p := NewLocal(intBox{v: 1})
	c := p.Clone()
	c.Release()
	assert.Equal(t, int64(1), p.StrongCount())
}

func TestMakeMut_InPlaceWhenUnique(t *testing.T) {
	p := NewLocal(intBox{v: 1})
	before := p.Load()
	v := MakeMut(&p)
	assert.Same(t, before, v, "expected in-place mutation when strong count is 1")
	v.v = 2
	assert.Equal(t, 2, p.Load().v)
}

func TestMakeMut_ClonesWhenShared(t *testing.T) {
	p := NewLocal(intBox{v: 1})
	c := p.Clone()

	v := MakeMut(&p)
	v.v = 99

	assert.Equal(t, 1, c.Load().v, "the other handle must not observe the mutation")
	assert.Equal(t, 99, p.Load().v)
	assert.Equal(t, int64(1), p.StrongCount())
	assert.Equal(t, int64(1), c.StrongCount())
}

func TestTryUnwrap(t *testing.T) {
	p := NewLocal(intBox{v: 7})
	v, ok := p.TryUnwrap()
	assert.True(t, ok)
	assert.Equal(t, 7, v.v)

	p = NewLocal(intBox{v: 7})
	c := p.Clone()
	defer c.Release()
	_, ok = p.TryUnwrap()
	assert.False(t, ok)
}

func TestSameBucket_NilHandles(t *testing.T) {
	var a, b Ptr[intBox]
	assert.True(t, SameBucket(a, b))
	a = NewLocal(intBox{v: 1})
	assert.False(t, SameBucket(a, b))
}

func TestNewShared_ConcurrentCloneRelease(t *testing.T) {
	p := NewShared(intBox{v: 1})

	const n = 64
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			c := p.Clone()
			assert.Equal(t, 1, c.Load().v)
			c.Release()
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), p.StrongCount())
}

func TestShared_MakeMut_ClonesWhenShared(t *testing.T) {
	p := NewShared(intBox{v: 1})
	c := p.Clone()

	v := MakeMut(&p)
	v.v = 42

	assert.Equal(t, 1, c.Load().v)
	assert.Equal(t, 42, p.Load().v)
	c.Release()
}

func TestNew_SelectsDisciplineFromTypeParam(t *testing.T) {
	local := New[Local](intBox{v: 1})
	shared := New[Shared](intBox{v: 1})

	_, isLocal := local.(localPtr[intBox])
	_, isShared := shared.(sharedPtr[intBox])
	assert.True(t, isLocal)
	assert.True(t, isShared)
}

func TestWithValue_IndependentFromSource(t *testing.T) {
	p := NewLocal(intBox{v: 1})
	q := p.WithValue(intBox{v: 2})
	assert.Equal(t, int64(1), p.StrongCount())
	assert.Equal(t, int64(1), q.StrongCount())
	assert.False(t, SameBucket(p, q))
}
