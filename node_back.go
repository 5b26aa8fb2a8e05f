package bucketlist

import (
	"github.com/joeycumines/bucketlist/internal/bucket"
	"github.com/joeycumines/bucketlist/pointer"
)

// PushBack appends v as the new logical tail, walking to the final
// bucket of the chain under make_mut at every hop. Linear in the
// number of buckets, not the number of elements.
//
// A bucket's elements vector is reverse-ordered: its own
// logical head sits at the high end of the vector (grown by
// [bucket.Vec.Push], cons_mut's direction) while its own logical tail
// sits at the low end (grown by [bucket.Vec.Unshift]). push_back
// always targets the tail end of the tail bucket, so it is Unshift's
// one caller in this package.
func (n *Node[E, P]) PushBack(v E) {
	cur := n.headMut()
	for {
		nx := cur.MakeMutNext()
		if nx == nil {
			break
		}
		cur = nx
	}

	if cur.Elements().Load().Len() < cur.Size() {
		ve := cur.MakeMutElements()
		truncateToCursor(ve, cur.Cursor())
		ve.Unshift(v)
		cur.SetCursor(cur.Cursor() + 1)
		return
	}

	newSize := cur.Size() * n.cfg.GrowthFactor
	if newSize <= 0 {
		newSize = n.cfg.BucketSize
	}
	nc := bucket.New[P, E]([]E{v}, 1, newSize, nil)
	cur.SetNext(pointer.New[P, bucket.Cell[E]](nc))
}
