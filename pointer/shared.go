package pointer

import "sync/atomic"

// sharedBox is the shared interior for the thread-shared discipline.
// The strong count is an atomic.Int64, mirroring the typed-atomics
// style used for newer counters across this pack (in place of the
// teacher's package-level atomic.LoadInt64/StoreInt64 calls over a
// [2]int64, e.g. catrate's categoryData).
type sharedBox[T Value[T]] struct {
	value T
	count atomic.Int64
}

type sharedPtr[T Value[T]] struct {
	box *sharedBox[T]
}

// NewShared allocates a new, thread-safe handle wrapping v, with
// strong count 1. The returned handle, and every clone of it, may be
// cloned, read, and released concurrently from multiple goroutines;
// mutation through MakeMut on any one handle is safe only from the
// goroutine that owns that handle.
func NewShared[T Value[T]](v T) Ptr[T] {
	p := sharedPtr[T]{box: &sharedBox[T]{value: v}}
	p.box.count.Store(1)
	return p
}

func (p sharedPtr[T]) Load() *T { return &p.box.value }

func (p sharedPtr[T]) Clone() Ptr[T] {
	p.box.count.Add(1)
	return p
}

func (p sharedPtr[T]) Release() {
	p.box.count.Add(-1)
}

func (p sharedPtr[T]) StrongCount() int64 { return p.box.count.Load() }

func (p sharedPtr[T]) TryUnwrap() (T, bool) {
	if p.box.count.Load() != 1 {
		var zero T
		return zero, false
	}
	return p.box.value, true
}

func (p sharedPtr[T]) WithValue(v T) Ptr[T] {
	return NewShared[T](v)
}

func (p sharedPtr[T]) SameBucket(other Ptr[T]) bool {
	o, ok := other.(sharedPtr[T])
	return ok && o.box == p.box
}
