package bucket

import (
	"github.com/joeycumines/bucketlist/pointer"
)

// Cell is one node of the unrolled list. Its elements are stored in
// reverse logical order: the logical head of the bucket is
// elements[cursor-1], and iteration walks back-to-front.
type Cell[E any] struct {
	elements pointer.Ptr[Vec[E]]
	cursor   int
	next     pointer.Ptr[Cell[E]]
	size     int
}

// Clone satisfies pointer.Value[Cell[E]]: it duplicates the Cell
// struct itself while sharing (strong-count-bumping, not deep-copying)
// both its elements vector and its next link.
func (c Cell[E]) Clone() Cell[E] {
	return Cell[E]{
		elements: pointer.Clone(c.elements),
		cursor:   c.cursor,
		next:     pointer.Clone(c.next),
		size:     c.size,
	}
}

// Empty builds the canonical terminal empty bucket: elements.length=0,
// cursor=0, next=none, size=0.
func Empty[P pointer.Discipline, E any]() Cell[E] {
	return Cell[E]{
		elements: pointer.New[P, Vec[E]](NewVec[E](nil)),
		cursor:   0,
		size:     0,
	}
}

// New builds a bucket owning a fresh handle to elements, with the
// given cursor, size ceiling, and next link.
func New[P pointer.Discipline, E any](elements []E, cursor, size int, next pointer.Ptr[Cell[E]]) Cell[E] {
	return Cell[E]{
		elements: pointer.New[P, Vec[E]](NewVec(elements)),
		cursor:   cursor,
		size:     size,
		next:     next,
	}
}

// FromShared builds a bucket that shares an existing elements handle
// (used by cdr and take/tail, which clone the surrounding Cell without
// cloning its interior elements).
func FromShared[E any](elements pointer.Ptr[Vec[E]], cursor, size int, next pointer.Ptr[Cell[E]]) Cell[E] {
	return Cell[E]{elements: elements, cursor: cursor, size: size, next: next}
}

// MakeMutElements returns an exclusive, mutable view of this bucket's
// elements vector, cloning it first iff it is shared with another
// bucket. Same make_mut pattern as [Cell.MakeMutNext], applied to the
// elements handle rather than the Cell itself.
func (c *Cell[E]) MakeMutElements() *Vec[E] {
	return pointer.MakeMut(&c.elements)
}

// MakeMutNext returns an exclusive, mutable view of this bucket's next
// link, cloning it first iff it is shared, or nil if there is no next
// bucket. Walking a chain via repeated MakeMutNext calls is how writes
// that target a deep bucket (push_back) copy the spine without disturbing sibling chains that still share
// an ancestor.
func (c *Cell[E]) MakeMutNext() *Cell[E] {
	if c.next == nil {
		return nil
	}
	return pointer.MakeMut(&c.next)
}

func (c *Cell[E]) Elements() pointer.Ptr[Vec[E]] { return c.elements }
func (c *Cell[E]) Cursor() int                   { return c.cursor }
func (c *Cell[E]) Size() int                     { return c.size }
func (c *Cell[E]) Next() pointer.Ptr[Cell[E]]    { return c.next }

func (c *Cell[E]) SetCursor(cursor int)              { c.cursor = cursor }
func (c *Cell[E]) SetNext(next pointer.Ptr[Cell[E]]) { c.next = next }
func (c *Cell[E]) SetSize(size int)                  { c.size = size }

// IsEmpty reports whether this single bucket currently exposes no live
// elements (it may still have physical slots and/or a next link, e.g.
// mid-cdr_mut).
func (c *Cell[E]) IsEmpty() bool { return c.cursor == 0 }

// Car returns the logical head of this bucket: the value at slot
// cursor-1, or false if the bucket is empty.
func (c *Cell[E]) Car() (E, bool) {
	if c.cursor == 0 {
		var zero E
		return zero, false
	}
	v := c.elements.Load()
	return v.At(c.cursor - 1), true
}

// Get returns the i-th logical element from this bucket's head
// (0-indexed), assuming i < cursor.
func (c *Cell[E]) Get(i int) E {
	v := c.elements.Load()
	return v.At(c.cursor - i - 1)
}
