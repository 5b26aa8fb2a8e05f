// Package bucketlist implements a persistent, copy-on-write sequence
// backed by an unrolled singly-linked list: a chain of small buckets,
// each an amortised-O(1) growable-from-the-front vector, rather than
// one allocation per element.
//
// Every snapshot of a [List] observed by a caller keeps reading the
// values it saw at the moment of observation (it is persistent), while
// operations opportunistically mutate in place whenever the caller
// holds the only reference to the affected storage (it is a COW
// structure, not a purely functional one). Bucket capacity, bucket
// growth factor, and the reference-counting discipline (thread-local
// or thread-shared) are all configurable per [List].
//
// The core engine lives in [Node]; [List] is the ergonomic facade most
// callers want. See the package examples for common usage.
package bucketlist
