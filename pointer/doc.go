// Package pointer implements the reference-counted, clone-on-write
// handle that every write path in the bucketed list is phrased against.
//
// It exposes one interface, [Ptr], with two incarnations: [NewLocal],
// for single-threaded use, and [NewShared], which is safe to clone and
// drop from multiple goroutines concurrently. Both give the same
// contract: [Ptr.MakeMut] returns an exclusive, mutable view of the
// interior value, cloning it first if and only if another handle could
// observe the mutation.
package pointer
