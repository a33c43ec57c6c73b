// Package dynarray implements a growable sequential container (dynamic
// array) and concurrency-safe variants built on top of it. Typical usage:
// build an Array for single-goroutine work, or pick LockedArray,
// CopyOnWriteArray or AtomicIntArray when the container is shared.
package dynarray

import "fmt"

// DefaultCapacity is the capacity a zero-capacity array grows to on its
// first append when no initial capacity was specified.
const DefaultCapacity = 10

// Array is a growable sequential container backed by a contiguous buffer.
// Elements occupy indices [0, Len()) with no gaps. Not goroutine-safe:
// unsynchronized concurrent mutation is a data race and can silently lose
// updates. Use LockedArray, CopyOnWriteArray or AtomicIntArray for
// concurrent access.
type Array[T comparable] struct {
	buf      []T    // backing buffer; len(buf) is the capacity
	size     int    // occupied slots, buf[:size]
	modCount uint64 // bumped on every structural change, read by cursors
	growths  int    // buffer reallocations performed
	shifts   int    // elements moved by insert/remove shifting
}

// New creates an empty Array with zero capacity. The buffer is allocated
// lazily on first append.
func New[T comparable]() *Array[T] {
	return &Array[T]{}
}

// WithCapacity creates an empty Array with capacity for n elements.
// If n <= 0, the result is equivalent to New.
func WithCapacity[T comparable](n int) *Array[T] {
	if n <= 0 {
		return &Array[T]{}
	}
	return &Array[T]{buf: make([]T, n)}
}

// FromSlice creates an Array holding a copy of items. The array's capacity
// equals len(items); later mutation of items does not affect the array.
func FromSlice[T comparable](items []T) *Array[T] {
	a := &Array[T]{}
	if len(items) > 0 {
		a.buf = make([]T, len(items))
		copy(a.buf, items)
		a.size = len(items)
	}
	return a
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return a.size }

// Cap returns the current capacity of the backing buffer.
func (a *Array[T]) Cap() int { return len(a.buf) }

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool { return a.size == 0 }

// Get returns the element at index i. Returns an *IndexError when i is
// outside [0, Len()).
func (a *Array[T]) Get(i int) (T, error) {
	if i < 0 || i >= a.size {
		var zero T
		return zero, indexError("get", i, a.size)
	}
	return a.buf[i], nil
}

// Set overwrites the element at index i in place. Plain replacement is not
// a structural change, so live cursors stay valid. Returns an *IndexError
// when i is outside [0, Len()).
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= a.size {
		return indexError("set", i, a.size)
	}
	a.buf[i] = v
	return nil
}

// First returns the element at index 0, or an *IndexError when empty.
func (a *Array[T]) First() (T, error) {
	return a.Get(0)
}

// Last returns the element at index Len()-1, or an *IndexError when empty.
func (a *Array[T]) Last() (T, error) {
	return a.Get(a.size - 1)
}

// Append adds v after the last element, growing the buffer if needed.
// Amortized O(1); worst case O(Cap()) when a reallocation occurs.
// The only possible error is ErrCapacityOverflow.
func (a *Array[T]) Append(v T) error {
	if err := a.ensureRoom(1); err != nil {
		return err
	}
	a.buf[a.size] = v
	a.size++
	a.modCount++
	return nil
}

// AppendAll adds all items after the last element, growing at most once.
func (a *Array[T]) AppendAll(items ...T) error {
	if len(items) == 0 {
		return nil
	}
	if err := a.ensureRoom(len(items)); err != nil {
		return err
	}
	copy(a.buf[a.size:], items)
	a.size += len(items)
	a.modCount++
	return nil
}

// InsertAt inserts v at index i, shifting elements [i, Len()) one slot
// right. i may equal Len(), which appends. O(Len()-i). Returns an
// *IndexError when i is outside [0, Len()].
func (a *Array[T]) InsertAt(i int, v T) error {
	if i < 0 || i > a.size {
		return indexError("insert", i, a.size)
	}
	if err := a.ensureRoom(1); err != nil {
		return err
	}
	copy(a.buf[i+1:a.size+1], a.buf[i:a.size])
	a.shifts += a.size - i
	a.buf[i] = v
	a.size++
	a.modCount++
	return nil
}

// InsertAllAt inserts items starting at index i, shifting existing elements
// [i, Len()) right by len(items). Returns an *IndexError when i is outside
// [0, Len()].
func (a *Array[T]) InsertAllAt(i int, items ...T) error {
	if i < 0 || i > a.size {
		return indexError("insert", i, a.size)
	}
	if len(items) == 0 {
		return nil
	}
	if err := a.ensureRoom(len(items)); err != nil {
		return err
	}
	copy(a.buf[i+len(items):a.size+len(items)], a.buf[i:a.size])
	a.shifts += a.size - i
	copy(a.buf[i:], items)
	a.size += len(items)
	a.modCount++
	return nil
}

// RemoveAt removes and returns the element at index i, shifting elements
// [i+1, Len()) one slot left. O(Len()-i). Returns an *IndexError when i is
// outside [0, Len()).
func (a *Array[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= a.size {
		var zero T
		return zero, indexError("remove", i, a.size)
	}
	removed := a.buf[i]
	copy(a.buf[i:a.size-1], a.buf[i+1:a.size])
	a.shifts += a.size - i - 1
	a.size--
	var zero T
	a.buf[a.size] = zero // release the vacated slot
	a.modCount++
	return removed, nil
}

// RemoveValue removes the first element equal to v and reports whether a
// removal occurred. Matching is by value equality.
func (a *Array[T]) RemoveValue(v T) bool {
	i := a.IndexOf(v)
	if i < 0 {
		return false
	}
	a.RemoveAt(i)
	return true
}

// RemoveIf removes every element for which pred returns true and returns
// the number removed. A non-empty removal is a single structural change:
// live cursors are invalidated once, not per element.
func (a *Array[T]) RemoveIf(pred func(T) bool) int {
	kept := 0
	for i := 0; i < a.size; i++ {
		if !pred(a.buf[i]) {
			a.buf[kept] = a.buf[i]
			kept++
		}
	}
	removed := a.size - kept
	if removed == 0 {
		return 0
	}
	var zero T
	for i := kept; i < a.size; i++ {
		a.buf[i] = zero
	}
	a.size = kept
	a.modCount++
	return removed
}

// Clear removes all elements. Capacity is unchanged; use TrimToFit to
// release the buffer.
func (a *Array[T]) Clear() {
	var zero T
	for i := 0; i < a.size; i++ {
		a.buf[i] = zero
	}
	a.size = 0
	a.modCount++
}

// IndexOf returns the index of the first element equal to v, or -1.
func (a *Array[T]) IndexOf(v T) int {
	for i := 0; i < a.size; i++ {
		if a.buf[i] == v {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last element equal to v, or -1.
func (a *Array[T]) LastIndexOf(v T) int {
	for i := a.size - 1; i >= 0; i-- {
		if a.buf[i] == v {
			return i
		}
	}
	return -1
}

// Contains reports whether some element equals v.
func (a *Array[T]) Contains(v T) bool {
	return a.IndexOf(v) >= 0
}

// ContainsAll reports whether every item has an equal element in the array.
func (a *Array[T]) ContainsAll(items ...T) bool {
	for _, v := range items {
		if !a.Contains(v) {
			return false
		}
	}
	return true
}

// Equal reports whether a and other have the same length and pairwise-equal
// elements in order. Capacity and identity are ignored.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if other == nil || a.size != other.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.buf[i] != other.buf[i] {
			return false
		}
	}
	return true
}

// ToSlice returns a fixed-size copy of the elements. The copy is decoupled:
// later mutation of the array does not affect it, and vice versa.
func (a *Array[T]) ToSlice() []T {
	out := make([]T, a.size)
	copy(out, a.buf[:a.size])
	return out
}

// SubSlice returns a copy of the elements in the half-open range [from, to).
// Returns an *IndexError unless 0 <= from <= to <= Len().
func (a *Array[T]) SubSlice(from, to int) ([]T, error) {
	if from < 0 || from > a.size {
		return nil, indexError("subslice", from, a.size)
	}
	if to < from || to > a.size {
		return nil, indexError("subslice", to, a.size)
	}
	out := make([]T, to-from)
	copy(out, a.buf[from:to])
	return out, nil
}

// Each calls fn for each element in order until fn returns false. The array
// must not be structurally modified during the traversal; use a Cursor for
// fail-fast detection or Cursor.Remove for removal mid-traversal.
func (a *Array[T]) Each(fn func(i int, v T) bool) {
	for i := 0; i < a.size; i++ {
		if !fn(i, a.buf[i]) {
			return
		}
	}
}

// EnsureCapacity grows the buffer so it can hold at least n elements
// without further reallocation. Never shrinks.
func (a *Array[T]) EnsureCapacity(n int) error {
	if n <= len(a.buf) {
		return nil
	}
	a.reallocate(n)
	return nil
}

// TrimToFit reallocates the buffer to exactly Len(), releasing unused
// slots. Never invoked automatically.
func (a *Array[T]) TrimToFit() {
	if a.size == len(a.buf) {
		return
	}
	if a.size == 0 {
		a.buf = nil
		return
	}
	a.reallocate(a.size)
}

// String renders the elements like a slice, e.g. "[a b c]".
func (a *Array[T]) String() string {
	return fmt.Sprintf("%v", a.buf[:a.size])
}

// ensureRoom guarantees capacity for n more elements, growing by ~1.5x
// steps. Growth is always copy-based: a fresh buffer replaces the old one
// wholesale.
func (a *Array[T]) ensureRoom(n int) error {
	need, ok := addOverflowSafe(a.size, n)
	if !ok {
		return ErrCapacityOverflow
	}
	if need <= len(a.buf) {
		return nil
	}
	newCap := len(a.buf)
	if newCap == 0 {
		newCap = DefaultCapacity
		if need > newCap {
			newCap = need
		}
	}
	for newCap < need {
		grown, ok := grownCapacity(newCap)
		if !ok {
			return ErrCapacityOverflow
		}
		newCap = grown
	}
	a.reallocate(newCap)
	return nil
}

// reallocate copies the occupied elements into a fresh buffer of capacity
// newCap and discards the old buffer. Requires newCap >= size.
func (a *Array[T]) reallocate(newCap int) {
	next := make([]T, newCap)
	copy(next, a.buf[:a.size])
	a.buf = next
	a.growths++
}

// grownCapacity returns the next capacity step: max(c + c/2, c + 1).
// ok = false when the arithmetic would overflow int.
func grownCapacity(c int) (int, bool) {
	grown, ok := addOverflowSafe(c, c/2)
	if !ok {
		return 0, false
	}
	if grown <= c {
		grown, ok = addOverflowSafe(c, 1)
		if !ok {
			return 0, false
		}
	}
	return grown, true
}
