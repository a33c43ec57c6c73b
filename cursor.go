package dynarray

// Cursor traverses an Array with fail-fast detection of concurrent
// structural modification. It holds a non-owning reference to its source:
// the cursor records the stamp the array had at creation and every
// operation compares it against the live stamp, returning
// ErrConcurrentModification on mismatch.
//
// A cursor must not be shared across goroutines, and the source must not be
// concurrently mutated while a cursor is in use. The only structural
// mutation that keeps a cursor valid is its own Remove.
type Cursor[T comparable] struct {
	src      *Array[T]
	pos      int    // index of the element Next would return
	last     int    // index returned by the latest Next/Previous, -1 if none
	expected uint64 // stamp the source is expected to carry
}

// Cursor returns a cursor positioned before the first element.
func (a *Array[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{src: a, last: -1, expected: a.modCount}
}

// CursorAt returns a cursor positioned before index pos, so Next returns
// the element at pos and Previous the one at pos-1. pos may equal Len(),
// which positions the cursor after the last element for backward traversal.
// Returns an *IndexError when pos is outside [0, Len()].
func (a *Array[T]) CursorAt(pos int) (*Cursor[T], error) {
	if pos < 0 || pos > a.size {
		return nil, indexError("cursor", pos, a.size)
	}
	return &Cursor[T]{src: a, pos: pos, last: -1, expected: a.modCount}, nil
}

// HasNext reports whether a forward step remains.
func (c *Cursor[T]) HasNext() bool {
	return c.pos < c.src.size
}

// HasPrevious reports whether a backward step remains.
func (c *Cursor[T]) HasPrevious() bool {
	return c.pos > 0
}

// Next returns the next element and advances the cursor. Returns
// ErrConcurrentModification if the source was structurally modified behind
// the cursor's back, or ErrCursorDone when the forward traversal is
// exhausted.
func (c *Cursor[T]) Next() (T, error) {
	var zero T
	if c.expected != c.src.modCount {
		return zero, ErrConcurrentModification
	}
	if c.pos >= c.src.size {
		return zero, ErrCursorDone
	}
	v := c.src.buf[c.pos]
	c.last = c.pos
	c.pos++
	return v, nil
}

// Previous returns the previous element and moves the cursor backward.
// Error contract mirrors Next.
func (c *Cursor[T]) Previous() (T, error) {
	var zero T
	if c.expected != c.src.modCount {
		return zero, ErrConcurrentModification
	}
	if c.pos <= 0 {
		return zero, ErrCursorDone
	}
	c.pos--
	c.last = c.pos
	return c.src.buf[c.pos], nil
}

// Remove removes the element most recently returned by Next or Previous.
// This is the one structural mutation that does not invalidate the cursor:
// the removal and the stamp re-synchronization happen together. Returns
// ErrNoCurrentElement when there is nothing to remove, or
// ErrConcurrentModification under the usual fail-fast contract.
func (c *Cursor[T]) Remove() (T, error) {
	var zero T
	if c.expected != c.src.modCount {
		return zero, ErrConcurrentModification
	}
	if c.last < 0 {
		return zero, ErrNoCurrentElement
	}
	removed, err := c.src.RemoveAt(c.last)
	if err != nil {
		return zero, err
	}
	c.expected = c.src.modCount
	if c.last < c.pos {
		c.pos--
	}
	c.last = -1
	return removed, nil
}
