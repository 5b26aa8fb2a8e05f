package bucketlist

import (
	"github.com/joeycumines/bucketlist/internal/bucket"
	"github.com/joeycumines/bucketlist/pointer"
)

// Get returns the element at logical index i, or false if i is out of
// range. O(buckets walked), which is O(n/N) on average.
func (n Node[E, P]) Get(i int) (E, bool) {
	if i < 0 {
		var zero E
		return zero, false
	}
	cell := n.cell
	for {
		c := cell.Load()
		if i < c.Cursor() {
			return c.Get(i), true
		}
		i -= c.Cursor()
		next := c.Next()
		if next == nil {
			var zero E
			return zero, false
		}
		cell = next
	}
}

// MustGet is [Node.Get] without the ok result, panicking on an
// out-of-range index. It exists for call sites (the List facade's
// indexing operator, [List.MustAt]) that already know the index is in
// range and want a programmer-error panic rather than a silent zero
// value.
func (n Node[E, P]) MustGet(i int) E {
	v, ok := n.Get(i)
	if !ok {
		panic(indexOutOfRange(i, n.Len()))
	}
	return v
}

// Take returns the first count elements as a new list, sharing
// structure with the receiver. count <= 0 returns the canonical empty
// list; count >= Len() returns a clone of the whole receiver.
func (n Node[E, P]) Take(count int) Node[E, P] {
	if count <= 0 {
		return New[E, P](n.cfg)
	}
	return Node[E, P]{cell: takeChain[E, P](n.cell, count), cfg: n.cfg}
}

func takeChain[E any, P pointer.Discipline](cell pointer.Ptr[bucket.Cell[E]], count int) pointer.Ptr[bucket.Cell[E]] {
	c := cell.Load()
	if count >= c.Cursor() {
		next := c.Next()
		if next == nil {
			return pointer.Clone(cell)
		}
		rest := takeChain[E, P](next, count-c.Cursor())
		nc := bucket.FromShared[E](pointer.Clone(c.Elements()), c.Cursor(), c.Size(), rest)
		return pointer.New[P, bucket.Cell[E]](nc)
	}

	live := c.Elements().Load().Slice()[:c.Cursor()]
	kept := append([]E(nil), live[c.Cursor()-count:c.Cursor()]...)
	nc := bucket.New[P, E](kept, count, c.Size(), nil)
	return pointer.New[P, bucket.Cell[E]](nc)
}

// Tail drops the first length elements and returns what remains. The
// boolean result is false iff length exceeds Len(), in which case the
// returned Node is the canonical empty list. length <= 0 returns a
// clone of the receiver.
func (n Node[E, P]) Tail(length int) (Node[E, P], bool) {
	if length <= 0 {
		return n.clone(), true
	}
	cell, ok := tailChain[E, P](n.cell, n.cfg, length)
	if !ok {
		return New[E, P](n.cfg), false
	}
	return Node[E, P]{cell: cell, cfg: n.cfg}, true
}

func tailChain[E any, P pointer.Discipline](cell pointer.Ptr[bucket.Cell[E]], cfg Config, remaining int) (pointer.Ptr[bucket.Cell[E]], bool) {
	c := cell.Load()
	if remaining < c.Cursor() {
		nc := bucket.FromShared[E](pointer.Clone(c.Elements()), c.Cursor()-remaining, c.Size(), pointer.Clone[bucket.Cell[E]](c.Next()))
		return pointer.New[P, bucket.Cell[E]](nc), true
	}
	next := c.Next()
	if remaining == c.Cursor() {
		if next != nil {
			return pointer.Clone(next), true
		}
		return New[E, P](cfg).cell, true
	}
	if next == nil {
		return nil, false
	}
	return tailChain[E, P](next, cfg, remaining-c.Cursor())
}

// Reverse returns a list with the same elements in the opposite
// order. Each bucket's live slots are truncated and reversed in
// place (on a fresh clone), and the bucket chain itself is re-linked
// in reverse: the old head becomes the new tail. O(n).
func (n Node[E, P]) Reverse() Node[E, P] {
	var acc pointer.Ptr[bucket.Cell[E]]
	cell := n.cell
	for {
		c := cell.Load()
		live := c.Elements().Load().Slice()[:c.Cursor()]
		rev := make([]E, len(live))
		for i, v := range live {
			rev[len(live)-1-i] = v
		}
		nc := bucket.New[P, E](rev, c.Cursor(), c.Size(), acc)
		acc = pointer.New[P, bucket.Cell[E]](nc)
		next := c.Next()
		if next == nil {
			return Node[E, P]{cell: acc, cfg: n.cfg}
		}
		cell = next
	}
}
