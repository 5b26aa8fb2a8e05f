package bucketlist

import "github.com/joeycumines/bucketlist/pointer"

// Close releases the receiver's handle on its bucket chain,
// iteratively rather than relying on the chain's own nested Release
// calls, so that dropping a long list never recurses as deep as the
// list is long. The receiver is left as the canonical empty list.
//
// Go has no destructors: the garbage collector alone reclaims memory
// regardless of whether Close is called. Close exists purely to keep
// the reference-counting bookkeeping that arbitrates clone-on-write
// accurate as soon as possible, the same role sync.Pool.Put plays for
// the rate limiter's category buffers — returning a resource early
// rather than waiting on the collector. Skipping it is safe, just
// conservative: an un-Closed chain behaves as if one more clone of it
// were still alive, which can provoke an extra copy on the next
// mutation through a sibling handle.
func (n *Node[E, P]) Close() {
	cell := n.cell
	n.cell = New[E, P](n.cfg).cell
	for cell != nil {
		if cell.StrongCount() > 1 {
			cell.Release()
			return
		}
		next := cell.Load().Next()
		cell.Release()
		cell = next
	}
}
