package bucketlist

import (
	"github.com/joeycumines/bucketlist/internal/bucket"
	"github.com/joeycumines/bucketlist/pointer"
)

// collect materialises every element of n into a single slice, head
// to tail, via the borrowed iteration order. Used by operations
// (Sort, SortFunc) that need the whole sequence at once.
func collect[E any, P pointer.Discipline](n Node[E, P]) []E {
	out := make([]E, 0, n.Len())
	cell := n.cell
	for {
		c := cell.Load()
		for i := 0; i < c.Cursor(); i++ {
			out = append(out, c.Get(i))
		}
		next := c.Next()
		if next == nil {
			return out
		}
		cell = next
	}
}

// FromSlice builds a list holding s's elements in order, chunked into
// buckets of cfg.BucketSize (growing by cfg.GrowthFactor per bucket
// toward the head, matching [Node.ConsMut]'s own bucket-sizing
// formula).
func FromSlice[E any, P pointer.Discipline](cfg Config, s []E) Node[E, P] {
	return fromSliceCfg[E, P](s, cfg)
}

// fromSliceCfg is FromSlice's implementation, shared with Sort/SortFunc
// which already have a Config in hand and no exported entry point of
// their own for rebuilding.
//
// It builds tail-to-head: the tail bucket is filled first, up to its
// size ceiling N, from the end of s backward; each subsequent bucket
// built toward the head has a ceiling G times the one before it, the
// same way repeated ConsMut growth actually lays buckets out (the
// oldest, fullest, smallest-ceiling bucket ends up farthest from the
// head; the newest bucket, possibly only partially filled, becomes
// the head). Each bucket's elements are stored in reverse storage
// order, and linked to the bucket built before it (which becomes its
// "next").
func fromSliceCfg[E any, P pointer.Discipline](s []E, cfg Config) Node[E, P] {
	cfg = cfg.normalized()
	if len(s) == 0 {
		return New[E, P](cfg)
	}

	sizes := bucketSizes(cfg, len(s))

	var next pointer.Ptr[bucket.Cell[E]]
	end := len(s)
	for i := 0; i < len(sizes); i++ {
		n := sizes[i]
		start := end - n
		chunk := s[start:end]
		rev := make([]E, n)
		for j, v := range chunk {
			rev[n-1-j] = v
		}
		nc := bucket.New[P, E](rev, n, bucketCeiling(cfg, i), next)
		next = pointer.New[P, bucket.Cell[E]](nc)
		end = start
	}

	return Node[E, P]{cell: next, cfg: cfg}
}

// bucketSizes splits total elements into tail-to-head bucket fill
// counts, each capped at that position's size ceiling
// (N, N*G, N*G^2, ...), matching how repeated ConsMut calls would
// have grown the chain one bucket at a time: the tail bucket (depth 0)
// is capped at N, and each bucket built after it toward the head has
// a ceiling G times larger.
func bucketSizes(cfg Config, total int) []int {
	var sizes []int
	remaining := total
	depth := 0
	for remaining > 0 {
		ceil := bucketCeiling(cfg, depth)
		n := remaining
		if n > ceil {
			n = ceil
		}
		sizes = append(sizes, n)
		remaining -= n
		depth++
	}
	return sizes
}

// bucketCeiling returns the size ceiling of the bucket at the given
// chain depth counted from the tail (0 = tail): N * G^depth. The tail
// bucket, being the oldest under repeated head growth, always has the
// smallest ceiling; the head bucket has the largest and may be the
// only one not completely full.
func bucketCeiling(cfg Config, depth int) int {
	c := cfg.BucketSize
	for i := 0; i < depth; i++ {
		c *= cfg.GrowthFactor
	}
	return c
}

// Concat builds a list by concatenating a sequence of Nodes end to
// end, sharing each input's buckets rather than copying element data.
// It is equivalent to folding [Node.Append] over parts, but does so
// without the intermediate rebuild costs of repeated pairwise
// coalescing.
func Concat[E any, P pointer.Discipline](cfg Config, parts ...Node[E, P]) Node[E, P] {
	cfg = cfg.normalized()
	var descs []bucketDesc[E]
	for _, part := range parts {
		if part.IsEmpty() {
			continue
		}
		descs = append(descs, gatherBuckets[E](part.cell)...)
	}
	if len(descs) == 0 {
		return New[E, P](cfg)
	}
	return Node[E, P]{cell: rebuildChain[E, P](descs), cfg: cfg}
}
