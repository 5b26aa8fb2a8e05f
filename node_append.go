package bucketlist

import (
	"github.com/joeycumines/bucketlist/internal/bucket"
	"github.com/joeycumines/bucketlist/pointer"
)

// bucketDesc is a lightweight, walk-order record of one bucket's
// state, used to gather a chain before rebuilding it (append's
// coalescing pass needs to see both input chains as a flat sequence
// before deciding which adjacent pairs to merge).
type bucketDesc[E any] struct {
	elements pointer.Ptr[bucket.Vec[E]]
	cursor   int
	size     int
}

// gatherBuckets walks cell's chain head to tail, collecting one
// bucketDesc per bucket. It assumes a well-formed chain (invariant 3:
// only a terminal bucket may have cursor 0), so callers must exclude
// empty lists themselves.
func gatherBuckets[E any](cell pointer.Ptr[bucket.Cell[E]]) []bucketDesc[E] {
	var out []bucketDesc[E]
	cur := cell
	for cur != nil {
		c := cur.Load()
		out = append(out, bucketDesc[E]{elements: c.Elements(), cursor: c.Cursor(), size: c.Size()})
		cur = c.Next()
	}
	return out
}

// rebuildChain folds descs (head to tail) into a fresh chain, walking
// tail to head so that each step can decide whether to coalesce the
// bucket it is considering into the suffix already built. A pair
// coalesces when their combined live length fits within the
// already-built suffix's head bucket's size ceiling; non-coalesced
// buckets keep their original elements handle, merely cloned, so no
// element data is copied for them.
func rebuildChain[E any, P pointer.Discipline](descs []bucketDesc[E]) pointer.Ptr[bucket.Cell[E]] {
	var (
		haveAcc     bool
		accElements pointer.Ptr[bucket.Vec[E]]
		accCursor   int
		accSize     int
		accNext     pointer.Ptr[bucket.Cell[E]]
	)

	for i := len(descs) - 1; i >= 0; i-- {
		d := descs[i]

		if haveAcc && d.cursor+accCursor <= accSize {
			leftRaw := d.elements.Load().Slice()[:d.cursor]
			rightRaw := accElements.Load().Slice()[:accCursor]
			merged := make([]E, 0, len(leftRaw)+len(rightRaw))
			merged = append(merged, rightRaw...)
			merged = append(merged, leftRaw...)
			pointer.Release(accElements)
			accElements = pointer.New[P, bucket.Vec[E]](bucket.NewVec(merged))
			accCursor += d.cursor
			continue
		}

		var next pointer.Ptr[bucket.Cell[E]]
		if haveAcc {
			nc := bucket.FromShared[E](accElements, accCursor, accSize, accNext)
			next = pointer.New[P, bucket.Cell[E]](nc)
		}
		accElements = pointer.Clone(d.elements)
		accCursor = d.cursor
		accSize = d.size
		accNext = next
		haveAcc = true
	}

	final := bucket.FromShared[E](accElements, accCursor, accSize, accNext)
	return pointer.New[P, bucket.Cell[E]](final)
}

// Append returns a new list holding the receiver's elements followed
// by other's, sharing buckets with both inputs wherever they weren't
// coalesced. If other is empty the receiver is cloned unchanged; if
// the receiver is empty, other is cloned unchanged.
func (n Node[E, P]) Append(other Node[E, P]) Node[E, P] {
	if other.IsEmpty() {
		return n.clone()
	}
	if n.IsEmpty() {
		return other.clone()
	}
	descs := append(gatherBuckets[E](n.cell), gatherBuckets[E](other.cell)...)
	return Node[E, P]{cell: rebuildChain[E, P](descs), cfg: n.cfg}
}

// AppendMut is [Node.Append] applied back onto the receiver. The
// receiver's original chain is rebuilt from fresh, cloned bucket
// descriptors rather than reused in place, so its old handle must be
// explicitly released once the new one is in place.
func (n *Node[E, P]) AppendMut(other Node[E, P]) {
	old := n.cell
	*n = n.Append(other)
	old.Release()
}
