package dynarray

import "sync"

// LockedArray is a mutex-protected wrapper around Array for concurrent
// access. Every operation holds an exclusive lock for its full duration, so
// all operations across all goroutines form a single total order and no
// update is lost. Lock acquisition is unconditional: a holder that blocks
// indefinitely blocks every other caller.
//
// Per-call locking does not make multi-call sequences atomic. Use Do to run
// a compound sequence, or a full traversal, under one lock acquisition.
type LockedArray[T comparable] struct {
	mu    sync.Mutex
	inner *Array[T]
}

// NewLocked creates an empty LockedArray.
func NewLocked[T comparable]() *LockedArray[T] {
	return &LockedArray[T]{inner: New[T]()}
}

// WrapLocked wraps an existing Array. The caller must hand over ownership:
// touching arr directly afterwards bypasses the lock.
func WrapLocked[T comparable](arr *Array[T]) *LockedArray[T] {
	return &LockedArray[T]{inner: arr}
}

// Len returns the number of elements.
func (l *LockedArray[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Len()
}

// Cap returns the current capacity.
func (l *LockedArray[T]) Cap() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Cap()
}

// IsEmpty reports whether the array holds no elements.
func (l *LockedArray[T]) IsEmpty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.IsEmpty()
}

// Get returns the element at index i.
func (l *LockedArray[T]) Get(i int) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Get(i)
}

// Set overwrites the element at index i.
func (l *LockedArray[T]) Set(i int, v T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Set(i, v)
}

// Append adds v after the last element.
func (l *LockedArray[T]) Append(v T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Append(v)
}

// AppendAll adds all items after the last element.
func (l *LockedArray[T]) AppendAll(items ...T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.AppendAll(items...)
}

// InsertAt inserts v at index i.
func (l *LockedArray[T]) InsertAt(i int, v T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.InsertAt(i, v)
}

// RemoveAt removes and returns the element at index i.
func (l *LockedArray[T]) RemoveAt(i int) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.RemoveAt(i)
}

// RemoveValue removes the first element equal to v.
func (l *LockedArray[T]) RemoveValue(v T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.RemoveValue(v)
}

// RemoveIf removes every element matching pred and returns the count.
// pred runs under the lock and must not call back into the LockedArray.
func (l *LockedArray[T]) RemoveIf(pred func(T) bool) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.RemoveIf(pred)
}

// Clear removes all elements.
func (l *LockedArray[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inner.Clear()
}

// IndexOf returns the index of the first element equal to v, or -1.
func (l *LockedArray[T]) IndexOf(v T) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.IndexOf(v)
}

// LastIndexOf returns the index of the last element equal to v, or -1.
func (l *LockedArray[T]) LastIndexOf(v T) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.LastIndexOf(v)
}

// Contains reports whether some element equals v.
func (l *LockedArray[T]) Contains(v T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Contains(v)
}

// EnsureCapacity grows the buffer to hold at least n elements.
func (l *LockedArray[T]) EnsureCapacity(n int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.EnsureCapacity(n)
}

// TrimToFit reallocates the buffer to exactly Len().
func (l *LockedArray[T]) TrimToFit() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inner.TrimToFit()
}

// ToSlice returns a fixed-size copy of the elements.
func (l *LockedArray[T]) ToSlice() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.ToSlice()
}

// Equal reports whether l and other hold pairwise-equal elements in order.
// other is snapshotted first, then compared under l's lock, so the two
// arrays are never locked at once and the comparison cannot deadlock.
func (l *LockedArray[T]) Equal(other *LockedArray[T]) bool {
	if other == nil {
		return false
	}
	if l == other {
		return true
	}
	snap := other.ToSlice()
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inner.Len() != len(snap) {
		return false
	}
	for i, v := range snap {
		if l.inner.buf[i] != v {
			return false
		}
	}
	return true
}

// Each calls fn for each element in order until fn returns false, holding
// the lock for the entire traversal. fn must not call back into the
// LockedArray.
func (l *LockedArray[T]) Each(fn func(i int, v T) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inner.Each(fn)
}

// Do runs fn against the wrapped Array under one lock acquisition. Use it
// for compound sequences that must be atomic, or to drive a Cursor over the
// whole traversal while holding the lock. fn must not retain the Array or
// any Cursor past its return.
func (l *LockedArray[T]) Do(fn func(arr *Array[T])) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.inner)
}

// String renders the elements like a slice, e.g. "[a b c]".
func (l *LockedArray[T]) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.String()
}
