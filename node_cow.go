package bucketlist

import (
	"github.com/joeycumines/bucketlist/internal/bucket"
	"github.com/joeycumines/bucketlist/pointer"
)

// headMut returns an exclusive, mutable view of n's head bucket,
// cloning it first iff it is shared (strong count > 1). Every in-place
// Node write path (cons_mut, cdr_mut, pop_front, push_back's first
// hop) goes through this.
func (n *Node[E, P]) headMut() *bucket.Cell[E] {
	return pointer.MakeMut(&n.cell)
}

// truncateToCursor drops any physical slots beyond the live range
// [0, cursor), as required before a destructive elements-vector write
// (push, unshift, pop) so that slots hidden by a prior cursor
// advance aren't resurrected.
func truncateToCursor[E any](v *bucket.Vec[E], cursor int) {
	v.Truncate(cursor)
}

// stealNext transfers ownership of a doomed bucket's next link to the
// caller, releasing the doomed bucket itself.
//
// A Cell's embedded next handle is one already-counted reference to
// the following bucket; Go has no destructor to release it
// automatically when the Cell struct holding it is discarded, so the
// transfer must be explicit. If cell is the sole owner of itself
// (StrongCount 1), the embedded reference moves across untouched — no
// clone, no extra release, the count is simply renamed to a new
// owner. If cell is shared, some other handle still walks the same
// bucket and still needs its own next intact, so nxt must be cloned
// instead of moved. Used wherever a write path steps a Node past an
// exhausted bucket.
func stealNext[E any](cell, nxt pointer.Ptr[bucket.Cell[E]]) pointer.Ptr[bucket.Cell[E]] {
	var result pointer.Ptr[bucket.Cell[E]]
	if cell.StrongCount() == 1 {
		result = nxt
	} else {
		result = pointer.Clone(nxt)
	}
	cell.Release()
	return result
}
