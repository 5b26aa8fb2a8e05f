package pointer

// Value is the constraint satisfied by anything that can sit behind a
// [Ptr]: it must know how to duplicate its own interior on demand. The
// duplication is shallow from the pointer package's point of view —
// whether it is a deep or shallow copy of application data is entirely
// up to the Clone implementation.
type Value[T any] interface {
	Clone() T
}

// Ptr is a reference-counted handle to a value of type T, shared by
// every clone of it, with a clone-on-write escape hatch. Two
// incarnations are provided: [NewLocal], for single-goroutine use, and
// [NewShared], safe to clone, read, and release across goroutines.
//
// A Ptr is itself an interface value; the zero value (nil) represents
// "no handle", the pointer-discipline equivalent of a null next link.
type Ptr[T Value[T]] interface {
	// Load returns a pointer to the interior value. It is always safe
	// to read through; it is only safe to write through when the
	// caller has just confirmed StrongCount() == 1 (see MakeMut).
	Load() *T

	// Clone increments the strong count and returns a new handle
	// sharing the same interior.
	Clone() Ptr[T]

	// Release decrements the strong count. It must be called exactly
	// once for every handle obtained from New*, Clone, or WithValue
	// that is discarded without being consumed by TryUnwrap. Calling
	// it on a nil Ptr panics; the package-level [Release] is nil-safe.
	Release()

	// StrongCount reports the number of outstanding handles sharing
	// this interior.
	StrongCount() int64

	// TryUnwrap consumes the handle. It succeeds, returning the
	// interior value and true, iff StrongCount() == 1 at the moment of
	// the call. On failure it returns the zero value and false; the
	// handle is NOT consumed on failure and the caller must still
	// Release it (or continue using it) as normal.
	TryUnwrap() (T, bool)

	// WithValue allocates a brand-new handle of the same discipline
	// (local or shared) wrapping v, with strong count 1. It does not
	// affect the receiver's strong count.
	WithValue(v T) Ptr[T]

	// SameBucket reports whether two handles share the same interior
	// storage (pointer identity, not value equality).
	SameBucket(other Ptr[T]) bool
}

// kind distinguishes the two disciplines at the value level, so a
// single generic constructor can select between them without the
// caller needing to know which marker type it was given.
type kind int

const (
	kindLocal kind = iota
	kindShared
)

// Discipline is the constraint satisfied by the two phantom marker
// types [Local] and [Shared]. A List is parameterised by one of these
// as its pointer-discipline type parameter; the marker carries no
// data, only which allocation strategy [New] should use.
type Discipline interface {
	disciplineKind() kind
}

// Local selects the non-thread-safe pointer discipline: cheap clones
// and mutations, no atomics, and the resulting List must not cross a
// goroutine boundary.
type Local struct{}

func (Local) disciplineKind() kind { return kindLocal }

// Shared selects the thread-safe pointer discipline: strong counts are
// atomic, so the resulting List may be sent across goroutines and
// structurally shared for concurrent reads.
type Shared struct{}

func (Shared) disciplineKind() kind { return kindShared }

// New allocates a handle wrapping v using the discipline named by P.
func New[P Discipline, T Value[T]](v T) Ptr[T] {
	var p P
	if p.disciplineKind() == kindShared {
		return NewShared(v)
	}
	return NewLocal(v)
}

// MakeMut is the clone-on-write primitive every List write path is
// phrased against: it returns an exclusive, mutable view of *p's
// interior, cloning the interior first iff another handle could
// observe the mutation (StrongCount() > 1). On a clone, *p is replaced
// with a fresh handle (strong count 1) and the old one is released.
func MakeMut[T Value[T]](p *Ptr[T]) *T {
	cur := *p
	if cur.StrongCount() == 1 {
		return cur.Load()
	}
	clone := cur.Load().Clone()
	next := cur.WithValue(clone)
	cur.Release()
	*p = next
	return next.Load()
}

// Clone returns a clone of p, or nil if p is nil.
func Clone[T Value[T]](p Ptr[T]) Ptr[T] {
	if p == nil {
		return nil
	}
	return p.Clone()
}

// Release releases p if it is non-nil; a nil-safe convenience wrapper
// so call sites don't need to guard every Release call.
func Release[T Value[T]](p Ptr[T]) {
	if p != nil {
		p.Release()
	}
}

// StrongCount returns p.StrongCount(), or 0 if p is nil.
func StrongCount[T Value[T]](p Ptr[T]) int64 {
	if p == nil {
		return 0
	}
	return p.StrongCount()
}

// SameBucket reports whether a and b share the same interior storage.
// Two nil handles are considered the same bucket.
func SameBucket[T Value[T]](a, b Ptr[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.SameBucket(b)
}
