package dynarray

import (
	"errors"
	"fmt"
)

// ErrConcurrentModification is returned by a Cursor when the source array
// was structurally modified (append, insert, remove, clear) after the
// cursor was created. Detection is best-effort fail-fast, not a correctness
// guarantee against all races. Recover by taking a fresh cursor.
var ErrConcurrentModification = errors.New("dynarray: concurrent structural modification detected")

// ErrCursorDone is returned by Cursor.Next and Cursor.Previous when the
// traversal has no more elements in that direction.
var ErrCursorDone = errors.New("dynarray: cursor exhausted")

// ErrNoCurrentElement is returned by Cursor.Remove when Next or Previous
// has not yet returned an element, or the current element was already removed.
var ErrNoCurrentElement = errors.New("dynarray: no current element")

// ErrCapacityOverflow is returned when growth arithmetic would exceed the
// maximum representable capacity. The failed operation has no effect.
var ErrCapacityOverflow = errors.New("dynarray: capacity overflow")

// IndexError reports an index outside the valid range of an operation.
// Get, Set and RemoveAt accept [0, Len); InsertAt accepts [0, Len].
type IndexError struct {
	Op    string // operation that rejected the index
	Index int    // offending index
	Len   int    // array length at the time of the call
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("dynarray: %s: index %d out of range for length %d", e.Op, e.Index, e.Len)
}

// indexError builds an *IndexError for op.
func indexError(op string, index, length int) error {
	return &IndexError{Op: op, Index: index, Len: length}
}

// addOverflowSafe adds a and b, returning ok = false when the result would
// overflow int.
func addOverflowSafe(a, b int) (int, bool) {
	sum := a + b
	if b > 0 && sum < a {
		return 0, false
	}
	return sum, true
}
