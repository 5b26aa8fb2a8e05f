package bucket

// Vec is the cloneable, reverse-ordered element storage behind a
// [pointer.Ptr], giving it its own independent strong count from the
// [Cell] that references it.
//
// Internally it is a power-of-two ring buffer with read/write cursors,
// adapted from the rate-limiter package's ringBuffer (which needed the
// same "cheap growth at a boundary, double on overflow" shape for its
// sliding-window event log). Two directions of growth are needed here
// that ringBuffer didn't need: cons_mut grows a bucket from its
// logical end (Push), while push_back grows a bucket from its logical
// start (Unshift) — see node_back.go for why the direction differs.
type Vec[E any] struct {
	s    []E
	r, w uint
}

// NewVec builds a Vec holding a copy of s, in the same index order (no
// reinterpretation): At(i) == s[i] for i in [0, len(s)).
func NewVec[E any](s []E) Vec[E] {
	v := Vec[E]{}
	v.ensureFree(len(s))
	for _, e := range s {
		v.Push(e)
	}
	return v
}

func (v *Vec[E]) mask(x uint) uint {
	return x & (uint(len(v.s)) - 1)
}

// Len reports the number of slots physically present, which is always
// >= the owning Cell's cursor.
func (v *Vec[E]) Len() int { return int(v.w - v.r) }

func (v *Vec[E]) grow() {
	newCap := len(v.s) * 2
	if newCap == 0 {
		newCap = 1
	}
	ns := make([]E, newCap)
	l := v.Len()
	for i := 0; i < l; i++ {
		ns[i] = v.At(i)
	}
	v.s = ns
	v.r = 0
	v.w = uint(l)
}

func (v *Vec[E]) ensureFree(n int) {
	for len(v.s) == 0 || v.Len()+n > len(v.s) {
		v.grow()
	}
}

// At returns the slot at index i, counting from the current low end
// of the ring (0 is the slot most recently placed by Unshift, or the
// first one pushed if nothing has been unshifted).
func (v *Vec[E]) At(i int) E {
	return v.s[v.mask(v.r+uint(i))]
}

// Ref returns a pointer directly into the backing array for slot i,
// valid until the next Push/Unshift/Pop/grow on this Vec.
func (v *Vec[E]) Ref(i int) *E {
	return &v.s[v.mask(v.r+uint(i))]
}

// Push appends val as the new highest index (the new Len()-1),
// amortised O(1). This is cons_mut's direction: the new element
// becomes the bucket's own logical head.
func (v *Vec[E]) Push(val E) {
	v.ensureFree(1)
	v.s[v.mask(v.w)] = val
	v.w++
}

// Pop removes and returns the slot at the highest index (Len()-1),
// amortised O(1). Used by Node.PopFront, which removes the bucket's
// logical head.
func (v *Vec[E]) Pop() E {
	v.w--
	return v.s[v.mask(v.w)]
}

// Unshift prepends val as the new index 0, shifting every existing
// logical index up by one, amortised O(1) via the ring buffer's spare
// front capacity. This is push_back's direction: the new element
// becomes the bucket's own logical tail.
func (v *Vec[E]) Unshift(val E) {
	v.ensureFree(1)
	v.r--
	v.s[v.mask(v.r)] = val
}

// Truncate drops every slot beyond index n-1, keeping only the first
// n logical slots. It is the mechanism behind every "truncate to
// cursor" step required before a destructive write.
func (v *Vec[E]) Truncate(n int) {
	if n < v.Len() {
		v.w = v.r + uint(n)
	}
}

// Clone returns a Vec with its own backing array holding a copy of
// v's current logical content, tightly packed (no leftover spare
// capacity from v).
func (v Vec[E]) Clone() Vec[E] {
	return NewVec(v.Slice())
}

// Slice materialises the current logical content (index order) into
// a freshly allocated, contiguous slice.
func (v *Vec[E]) Slice() []E {
	l := v.Len()
	out := make([]E, l)
	for i := 0; i < l; i++ {
		out[i] = v.At(i)
	}
	return out
}
