// Package bucket implements [Cell], the single node of an unrolled
// list: a reference-counted slice of elements stored in reverse
// logical order, a cursor marking how many of those slots are live,
// and a link to the next bucket.
//
// Cell is an internal type. All list policy (cons, cdr, append,
// coalescing, iteration) lives one layer up, in the root package; this
// package only knows how to read and clone a single bucket.
package bucket
