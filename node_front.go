package bucketlist

import (
	"github.com/joeycumines/bucketlist/internal/bucket"
	"github.com/joeycumines/bucketlist/pointer"
)

// Car returns a copy of the logical head element, or false if the
// list is empty. O(1).
func (n Node[E, P]) Car() (E, bool) {
	return n.cell.Load().Car()
}

// First returns a pointer to the logical head element, or nil if the
// list is empty. The pointer is only valid until the next mutation
// through any handle sharing this bucket's elements vector. O(1).
func (n Node[E, P]) First() (*E, bool) {
	c := n.cell.Load()
	if c.Cursor() == 0 {
		return nil, false
	}
	v := c.Elements().Load()
	return v.Ref(c.Cursor() - 1), true
}

// Cdr returns the tail of the list: everything but the head. O(1),
// allocation-free beyond a single new bucket struct when the head
// bucket holds more than one live element. The boolean result is
// false iff the receiver was a singleton or already empty, in which
// case the returned Node is the canonical empty list.
func (n Node[E, P]) Cdr() (Node[E, P], bool) {
	c := n.cell.Load()
	if c.Cursor() > 1 {
		nc := bucket.FromShared[E](pointer.Clone(c.Elements()), c.Cursor()-1, c.Size(), pointer.Clone[bucket.Cell[E]](c.Next()))
		return Node[E, P]{cell: pointer.New[P, bucket.Cell[E]](nc), cfg: n.cfg}, true
	}
	if c.Cursor() == 1 {
		if nxt := c.Next(); nxt != nil {
			return Node[E, P]{cell: pointer.Clone(nxt), cfg: n.cfg}, true
		}
	}
	return New[E, P](n.cfg), false
}

// CdrMut steps the receiver to its own tail in place, cloning the head
// bucket first iff it is shared. It reports whether the list is
// non-empty afterward; false means the receiver was a singleton or
// already empty and is now the canonical empty list.
func (n *Node[E, P]) CdrMut() bool {
	c := n.cell.Load()
	if c.Cursor() > 1 {
		newCursor := c.Cursor() - 1
		n.headMut().SetCursor(newCursor)
		return true
	}
	old := n.cell
	if c.Cursor() == 1 {
		if nxt := c.Next(); nxt != nil {
			n.cell = stealNext[E](old, nxt)
			return n.cell.Load().Cursor() > 0
		}
	}
	n.cell = New[E, P](n.cfg).cell
	old.Release()
	return false
}

// ConsMut prepends v in place, cloning the head bucket (and, if
// necessary, its elements vector) first iff they are shared. O(1)
// amortised: a new bucket is allocated only when the current head is
// at capacity.
func (n *Node[E, P]) ConsMut(v E) {
	c := n.cell.Load()
	if c.Elements().Load().Len() < c.Size() {
		mc := n.headMut()
		ve := mc.MakeMutElements()
		truncateToCursor(ve, mc.Cursor())
		ve.Push(v)
		mc.SetCursor(mc.Cursor() + 1)
		return
	}

	newSize := c.Size() * n.cfg.GrowthFactor
	if newSize <= 0 {
		newSize = n.cfg.BucketSize
	}
	nc := bucket.New[P, E]([]E{v}, 1, newSize, n.cell)
	n.cell = pointer.New[P, bucket.Cell[E]](nc)
}

// PushFront is an alias for [Node.ConsMut].
func (n *Node[E, P]) PushFront(v E) { n.ConsMut(v) }

// Cons returns a new list with v prepended, leaving the receiver
// untouched. It is ConsMut applied to a clone of the receiver; the
// clone-on-write contract of ConsMut does the rest.
func (n Node[E, P]) Cons(v E) Node[E, P] {
	c := n.clone()
	c.ConsMut(v)
	return c
}

// PopFront removes and returns the logical head element, or returns
// (zero, false) if the list is empty.
func (n *Node[E, P]) PopFront() (E, bool) {
	c := n.cell.Load()
	if c.Cursor() == 0 {
		var zero E
		return zero, false
	}

	mc := n.headMut()
	ve := mc.MakeMutElements()
	truncateToCursor(ve, mc.Cursor())
	v := ve.Pop()
	mc.SetCursor(mc.Cursor() - 1)

	if mc.Cursor() == 0 {
		if nxt := mc.Next(); nxt != nil {
			old := n.cell
			n.cell = stealNext[E](old, nxt)
		}
	}

	return v, true
}
