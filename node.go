package bucketlist

import (
	"github.com/joeycumines/bucketlist/internal/bucket"
	"github.com/joeycumines/bucketlist/pointer"
)

// DefaultBucketSize is N, the default bucket capacity.
const DefaultBucketSize = 256

// DefaultGrowthFactor is G, the default bucket growth factor. G=1
// gives uniform buckets (a plain unrolled list); G>=2 gives
// exponentially growing buckets (a VList).
const DefaultGrowthFactor = 1

// Config carries the two numeric parameters that, in the reference
// design this package follows, are compile-time template parameters
// (N, G). Go has no const generics, so they are carried at runtime
// instead, fixed for the lifetime of a given [Node] or [List] and
// copied, unmodified, into every bucket and every derived Node.
type Config struct {
	// BucketSize is N, the capacity of the first bucket in a chain.
	BucketSize int
	// GrowthFactor is G: each successive bucket's capacity ceiling is
	// the previous one's times GrowthFactor.
	GrowthFactor int
}

// normalized fills in the documented defaults for zero-value fields.
func (c Config) normalized() Config {
	if c.BucketSize <= 0 {
		c.BucketSize = DefaultBucketSize
	}
	if c.GrowthFactor <= 0 {
		c.GrowthFactor = DefaultGrowthFactor
	}
	return c
}

// Node is the bucketed list engine: a reference-counted handle to the
// head [bucket.Cell] of a chain, plus the N/G configuration every
// write path along that chain needs.
//
// Node is a value type; copying it is cheap and shares the underlying
// chain via the pointer discipline P.
type Node[E any, P pointer.Discipline] struct {
	cell pointer.Ptr[bucket.Cell[E]]
	cfg  Config
}

// New returns the canonical empty list under the given configuration.
func New[E any, P pointer.Discipline](cfg Config) Node[E, P] {
	cfg = cfg.normalized()
	c := bucket.Empty[P, E]()
	c.SetSize(cfg.BucketSize)
	return Node[E, P]{
		cell: pointer.New[P, bucket.Cell[E]](c),
		cfg:  cfg,
	}
}

// Config returns the node's bucket-sizing configuration.
func (n Node[E, P]) Config() Config { return n.cfg }

// IsEmpty reports whether the list has zero logical elements.
func (n Node[E, P]) IsEmpty() bool {
	return n.cell.Load().IsEmpty() && n.cell.Load().Next() == nil
}

// Len walks the chain, summing each bucket's cursor: logical length
// is the sum of cursors, not of physical slot counts.
func (n Node[E, P]) Len() int {
	total := 0
	cell := n.cell
	for {
		c := cell.Load()
		total += c.Cursor()
		next := c.Next()
		if next == nil {
			return total
		}
		cell = next
	}
}

// StrongCount reports the strong count of the head bucket, mostly
// useful for tests exercising the clone-on-write contract.
func (n Node[E, P]) StrongCount() int64 {
	return n.cell.StrongCount()
}

// SameChain reports whether two Nodes share the same head bucket.
func (n Node[E, P]) SameChain(other Node[E, P]) bool {
	return pointer.SameBucket[bucket.Cell[E]](n.cell, other.cell)
}

// clone returns an independent Node sharing the same chain (bumps the
// head bucket's strong count), the Node-level analogue of Ptr.Clone.
func (n Node[E, P]) clone() Node[E, P] {
	return Node[E, P]{cell: pointer.Clone[bucket.Cell[E]](n.cell), cfg: n.cfg}
}
