package bucketlist

import (
	"iter"

	"github.com/joeycumines/bucketlist/internal/bucket"
	"github.com/joeycumines/bucketlist/pointer"
)

// All returns a range-over-func iterator over the receiver's
// elements, head to tail, by value (a borrowed read: it never
// mutates the receiver and never takes ownership). Go 1.23's
// range-over-func is the natural fit for expressing this kind of
// borrowed iteration without an explicit next()/hasNext() cursor
// type.
func (n Node[E, P]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		cell := n.cell
		for cell != nil {
			c := cell.Load()
			for i := 0; i < c.Cursor(); i++ {
				if !yield(c.Get(i)) {
					return
				}
			}
			cell = c.Next()
		}
	}
}

// iterPull adapts All into a pull-style (next, stop) pair via the
// standard library's iter.Pull, used where two lists need to be
// walked in lockstep (Equal, Less) rather than pushed through a
// single yield callback.
func iterPull[E any, P pointer.Discipline](n Node[E, P]) (func() (E, bool), func()) {
	return iter.Pull(n.All())
}

// Consume drains the receiver into a callback by value, head to
// tail, taking ownership of the chain (it releases each bucket as
// it finishes reading from it, iteratively, the same way Close
// does). After Consume returns, the receiver is the canonical empty
// list. It is cheaper than All followed by Close when the caller
// already intends to let go of the list's last handle.
func (n *Node[E, P]) Consume(yield func(E) bool) {
	cell := n.cell
	n.cell = New[E, P](n.cfg).cell
	for cell != nil {
		c := cell.Load()
		// cell's embedded next link is one already-counted reference;
		// whether it transfers by move or must be cloned depends on
		// whether cell itself is exclusively ours, same as stealNext.
		exclusive := cell.StrongCount() == 1
		stop := false
		for i := 0; i < c.Cursor() && !stop; i++ {
			if !yield(c.Get(i)) {
				stop = true
			}
		}
		next := c.Next()
		cell.Release()
		if next == nil {
			return
		}
		if stop {
			if exclusive {
				pointer.Release[bucket.Cell[E]](next)
			}
			return
		}
		if exclusive {
			cell = next
		} else {
			cell = pointer.Clone(next)
		}
	}
}

// Drain yields elements from the receiver's buckets only while each
// bucket it visits, and that bucket's elements vector, is uniquely
// owned (StrongCount() == 1), mutating the receiver to drop each
// bucket as it is exhausted. It stops as soon as it reaches a shared
// bucket or vector, conservatively leaving the remainder in place
// rather than risk mutating state another handle can still observe.
// The result reports whether draining stopped early because of sharing,
// so a caller can fall back to Consume or All for the rest.
func (n *Node[E, P]) Drain(yield func(E) bool) (stoppedOnShared bool) {
	for {
		if n.cell == nil {
			return false
		}
		if n.cell.StrongCount() != 1 || n.cell.Load().Elements().StrongCount() != 1 {
			return true
		}
		v, ok := n.PopFront()
		if !ok {
			return false
		}
		if !yield(v) {
			return false
		}
	}
}
