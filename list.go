package bucketlist

import (
	"fmt"
	"hash/maphash"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/joeycumines/bucketlist/pointer"
)

// hashSeed is shared across every Hash call so that two equal lists
// (by iteration order and element formatting) always hash the same
// within one process run, matching the facade's other content-based
// operations (Equal, Less).
var hashSeed = maphash.MakeSeed()

// List is the public persistent sequence: a value type wrapping a
// [Node], parameterised by its element type T and pointer discipline
// P. A plain copy of a List value aliases the same handle without
// bumping its strong count, so in-place writes through one copy are
// visible through the other. [List.Clone] is O(1), shares structure
// with the original and bumps the count; after it, mutating methods
// apply clone-on-write so neither handle observes the other's writes.
//
// T, N and G would be compile-time template parameters in a language
// with const generics; Go has none, so N (bucket size) and G (growth
// factor) are constructor-time fields instead of type parameters (see
// DESIGN.md).
type List[T any, P pointer.Discipline] struct {
	n Node[T, P]
	// OnDrop, if non-nil, is invoked once per element reclaimed by the
	// structural destructor's fast (uniquely-owned) path. It is never
	// invoked for elements still reachable through another handle when
	// Close runs.
	OnDrop func(T)
}

// ListOption configures a [List] at construction time.
type ListOption func(*Config)

// WithBucketSize overrides the default bucket capacity N (256).
func WithBucketSize(n int) ListOption {
	return func(c *Config) { c.BucketSize = n }
}

// WithGrowthFactor overrides the default growth factor G (1).
func WithGrowthFactor(g int) ListOption {
	return func(c *Config) { c.GrowthFactor = g }
}

// NewList returns the canonical empty list, configured by opts.
func NewList[T any, P pointer.Discipline](opts ...ListOption) List[T, P] {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return List[T, P]{n: New[T, P](cfg.normalized())}
}

// NewListN is NewList with N and G given positionally.
func NewListN[T any, P pointer.Discipline](bucketSize, growthFactor int) List[T, P] {
	return NewList[T, P](WithBucketSize(bucketSize), WithGrowthFactor(growthFactor))
}

// ListFromSlice builds a list holding s's elements in order.
func ListFromSlice[T any, P pointer.Discipline](s []T, opts ...ListOption) List[T, P] {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return List[T, P]{n: FromSlice[T, P](cfg.normalized(), s)}
}

// Len returns the number of elements in the list.
func (l List[T, P]) Len() int { return l.n.Len() }

// IsEmpty reports whether the list holds zero elements.
func (l List[T, P]) IsEmpty() bool { return l.n.IsEmpty() }

// At returns the element at index i, or (zero, false) if out of
// range.
func (l List[T, P]) At(i int) (T, bool) { return l.n.Get(i) }

// MustAt is At without the ok result; it panics on an out-of-range
// index.
func (l List[T, P]) MustAt(i int) T { return l.n.MustGet(i) }

// Car returns the head element, or (zero, false) if the list is
// empty.
func (l List[T, P]) Car() (T, bool) { return l.n.Car() }

// Cons returns a new list with v prepended.
func (l List[T, P]) Cons(v T) List[T, P] { return List[T, P]{n: l.n.Cons(v), OnDrop: l.OnDrop} }

// PushFront prepends v in place.
func (l *List[T, P]) PushFront(v T) { l.n.PushFront(v) }

// PopFront removes and returns the head element, or (zero, false) if
// the list is empty.
func (l *List[T, P]) PopFront() (T, bool) { return l.n.PopFront() }

// PushBack appends v as the new logical tail, in place.
func (l *List[T, P]) PushBack(v T) { l.n.PushBack(v) }

// Cdr returns the tail of the list (everything but the head).
func (l List[T, P]) Cdr() (List[T, P], bool) {
	n, ok := l.n.Cdr()
	return List[T, P]{n: n, OnDrop: l.OnDrop}, ok
}

// Take returns the first count elements as a new list.
func (l List[T, P]) Take(count int) List[T, P] {
	return List[T, P]{n: l.n.Take(count), OnDrop: l.OnDrop}
}

// Tail drops the first length elements and returns what remains.
func (l List[T, P]) Tail(length int) (List[T, P], bool) {
	n, ok := l.n.Tail(length)
	return List[T, P]{n: n, OnDrop: l.OnDrop}, ok
}

// Reverse returns a list with the same elements in the opposite
// order.
func (l List[T, P]) Reverse() List[T, P] {
	return List[T, P]{n: l.n.Reverse(), OnDrop: l.OnDrop}
}

// Append returns a new list holding l's elements followed by
// other's.
func (l List[T, P]) Append(other List[T, P]) List[T, P] {
	return List[T, P]{n: l.n.Append(other.n), OnDrop: l.OnDrop}
}

// Extend appends other to l in place, the analogue of Go's
// append-to-slice-variable idiom for a persistent list.
func (l *List[T, P]) Extend(other List[T, P]) { l.n.AppendMut(other.n) }

// All returns a range-over-func iterator over l's elements, head to
// tail, by value.
func (l List[T, P]) All() func(func(T) bool) { return l.n.All() }

// Close releases l's handle on its bucket chain. See [Node.Close];
// additionally, if l.OnDrop is set, it is invoked for every element
// reclaimed along the uniquely-owned fast path.
func (l *List[T, P]) Close() {
	if l.OnDrop != nil {
		l.n.Drain(func(v T) bool {
			l.OnDrop(v)
			return true
		})
	}
	l.n.Close()
}

// Clone returns an independent handle sharing the receiver's chain,
// bumping its strong count. Go structs are trivially copyable with no
// enforced move semantics, so a plain `l2 := l` aliases the same
// handle without incrementing the count (unlike languages with an
// explicit move/Clone distinction, where duplicating a
// reference-counted value is only ever done through a Clone call);
// callers that need a second handle
// contributing its own count — in particular, anything that will call
// Close independently — must call Clone explicitly.
func (l List[T, P]) Clone() List[T, P] {
	return List[T, P]{n: l.n.clone(), OnDrop: l.OnDrop}
}

// StrongCount reports the strong count of the list's head bucket.
func (l List[T, P]) StrongCount() int64 { return l.n.StrongCount() }

// SameBucket reports whether two lists share the same head bucket,
// a probe for structural sharing.
func (l List[T, P]) SameBucket(other List[T, P]) bool { return l.n.SameChain(other.n) }

// String renders the list the way fmt.Sprintf("%v", slice) would.
func (l List[T, P]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for v := range l.n.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(']')
	return b.String()
}

// Hash returns an iteration-order-dependent hash of l's elements,
// each formatted the same way [List.String] renders them. Two lists
// that are [Equal] produce the same Hash whenever equal values of T
// also format identically under %v (true for integers and strings,
// not for a floating-point zero and negative zero).
func (l List[T, P]) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	for v := range l.n.All() {
		fmt.Fprintf(&h, "%v\x00", v)
	}
	return h.Sum64()
}

// Sum folds [List.Append] left to right across lists: Sum() is the
// canonical empty list, Sum(a) is equivalent to a.Clone(), and
// Sum(a, b, c) equals a.Append(b).Append(c). This is the facade's
// "+"-fold counterpart to Append's "+".
func Sum[T any, P pointer.Discipline](lists ...List[T, P]) List[T, P] {
	if len(lists) == 0 {
		return NewList[T, P]()
	}
	acc := lists[0].Clone()
	for _, l := range lists[1:] {
		acc = acc.Append(l)
	}
	return acc
}

// Equal reports whether l and other hold the same elements in the
// same order, via T's == operator.
func Equal[T comparable, P pointer.Discipline](l, other List[T, P]) bool {
	if l.Len() != other.Len() {
		return false
	}
	next, stop := iterPull(other.n)
	defer stop()
	for v := range l.n.All() {
		w, ok := next()
		if !ok || v != w {
			return false
		}
	}
	_, ok := next()
	return !ok
}

// Less reports whether l sorts before other under lexicographic
// comparison of T's natural ordering, the default List[T] ordering
// for Ordered element types.
func Less[T constraints.Ordered, P pointer.Discipline](l, other List[T, P]) bool {
	next, stop := iterPull(other.n)
	defer stop()
	for v := range l.n.All() {
		w, ok := next()
		if !ok {
			return false
		}
		if v != w {
			return v < w
		}
	}
	_, ok := next()
	return ok
}
