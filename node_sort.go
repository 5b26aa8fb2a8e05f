package bucketlist

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/joeycumines/bucketlist/pointer"
)

// Sort returns a list holding the same elements in ascending order.
// It materialises the whole list, sorts with slices.Sort, and rebuilds
// buckets of BucketSize from the result, the same way catrate's
// rates.go settles on slices.Sort for its own ordering step rather
// than hand-rolling a comparison sort. O(n log n).
func Sort[E constraints.Ordered, P pointer.Discipline](n Node[E, P]) Node[E, P] {
	s := collect(n)
	slices.Sort(s)
	return fromSliceCfg[E, P](s, n.cfg)
}

// SortFunc is [Sort] generalised to an arbitrary ordering, via
// slices.SortStableFunc. Unlike Sort's natural ordering over
// constraints.Ordered (where equal elements are indistinguishable),
// cmp may treat distinct elements as equal, so the sort must be
// stable or their relative order would be unspecified.
func SortFunc[E any, P pointer.Discipline](n Node[E, P], cmp func(a, b E) int) Node[E, P] {
	s := collect(n)
	slices.SortStableFunc(s, cmp)
	return fromSliceCfg[E, P](s, n.cfg)
}
