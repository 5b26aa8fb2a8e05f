package bucketlist

import "fmt"

// indexOutOfRange builds the panic value for an out-of-bounds logical
// index, in the same "package: what, value, context" shape as the
// rate limiter's ringBuffer.Get/Insert panics.
func indexOutOfRange(i, length int) error {
	return fmt.Errorf("bucketlist: index out of range: %d (length %d)", i, length)
}
