package dynarray

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// CopyOnWriteArray is a concurrency-safe array optimized for reads. The
// elements live in an immutable snapshot slice published through an atomic
// pointer: readers load the current snapshot and never block or observe a
// partial write. Writers serialize among themselves on a mutex, build a new
// snapshot from the current one plus the delta, and publish it.
//
// Reads cost O(1) with no coordination; every write costs O(Len()). Prefer
// LockedArray when writes dominate.
type CopyOnWriteArray[T comparable] struct {
	mu   sync.Mutex // serializes writers; readers never take it
	snap atomic.Pointer[[]T]
}

// NewCopyOnWrite creates an empty CopyOnWriteArray.
func NewCopyOnWrite[T comparable]() *CopyOnWriteArray[T] {
	c := &CopyOnWriteArray[T]{}
	empty := []T{}
	c.snap.Store(&empty)
	return c
}

// CopyOnWriteFromSlice creates a CopyOnWriteArray holding a copy of items.
func CopyOnWriteFromSlice[T comparable](items []T) *CopyOnWriteArray[T] {
	c := &CopyOnWriteArray[T]{}
	snap := make([]T, len(items))
	copy(snap, items)
	c.snap.Store(&snap)
	return c
}

// load returns the current snapshot. The returned slice is immutable by
// contract and must never be written to.
func (c *CopyOnWriteArray[T]) load() []T {
	return *c.snap.Load()
}

// Len returns the number of elements in the current snapshot.
func (c *CopyOnWriteArray[T]) Len() int { return len(c.load()) }

// IsEmpty reports whether the current snapshot holds no elements.
func (c *CopyOnWriteArray[T]) IsEmpty() bool { return len(c.load()) == 0 }

// Get returns the element at index i of the current snapshot.
func (c *CopyOnWriteArray[T]) Get(i int) (T, error) {
	snap := c.load()
	if i < 0 || i >= len(snap) {
		var zero T
		return zero, indexError("get", i, len(snap))
	}
	return snap[i], nil
}

// IndexOf returns the index of the first element equal to v in the current
// snapshot, or -1.
func (c *CopyOnWriteArray[T]) IndexOf(v T) int {
	for i, e := range c.load() {
		if e == v {
			return i
		}
	}
	return -1
}

// Contains reports whether some element of the current snapshot equals v.
func (c *CopyOnWriteArray[T]) Contains(v T) bool {
	return c.IndexOf(v) >= 0
}

// Snapshot returns a copy of the current snapshot. The copy is decoupled
// from all later writes.
func (c *CopyOnWriteArray[T]) Snapshot() []T {
	snap := c.load()
	out := make([]T, len(snap))
	copy(out, snap)
	return out
}

// Each calls fn for each element of one consistent point-in-time snapshot
// until fn returns false. Concurrent writers never disturb the traversal,
// however long it takes; no fail-fast error is possible.
func (c *CopyOnWriteArray[T]) Each(fn func(i int, v T) bool) {
	for i, v := range c.load() {
		if !fn(i, v) {
			return
		}
	}
}

// Append adds v after the last element.
func (c *CopyOnWriteArray[T]) Append(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cur := c.load()
	next := make([]T, len(cur)+1)
	copy(next, cur)
	next[len(cur)] = v
	c.snap.Store(&next)
	return nil
}

// AppendAll adds all items after the last element in one published write.
func (c *CopyOnWriteArray[T]) AppendAll(items ...T) error {
	if len(items) == 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	cur := c.load()
	next := make([]T, len(cur)+len(items))
	copy(next, cur)
	copy(next[len(cur):], items)
	c.snap.Store(&next)
	return nil
}

// Set overwrites the element at index i. The snapshot is replaced, never
// mutated in place, so readers holding the old snapshot are unaffected.
func (c *CopyOnWriteArray[T]) Set(i int, v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cur := c.load()
	if i < 0 || i >= len(cur) {
		return indexError("set", i, len(cur))
	}
	next := make([]T, len(cur))
	copy(next, cur)
	next[i] = v
	c.snap.Store(&next)
	return nil
}

// InsertAt inserts v at index i. i may equal Len(), which appends.
func (c *CopyOnWriteArray[T]) InsertAt(i int, v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cur := c.load()
	if i < 0 || i > len(cur) {
		return indexError("insert", i, len(cur))
	}
	next := make([]T, len(cur)+1)
	copy(next, cur[:i])
	next[i] = v
	copy(next[i+1:], cur[i:])
	c.snap.Store(&next)
	return nil
}

// RemoveAt removes and returns the element at index i.
func (c *CopyOnWriteArray[T]) RemoveAt(i int) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cur := c.load()
	if i < 0 || i >= len(cur) {
		var zero T
		return zero, indexError("remove", i, len(cur))
	}
	next := make([]T, len(cur)-1)
	copy(next, cur[:i])
	copy(next[i:], cur[i+1:])
	c.snap.Store(&next)
	return cur[i], nil
}

// RemoveValue removes the first element equal to v and reports whether a
// removal occurred. The scan and the removal happen under one writer lock,
// so two concurrent RemoveValue calls never remove the same slot twice.
func (c *CopyOnWriteArray[T]) RemoveValue(v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	cur := c.load()
	for i, e := range cur {
		if e == v {
			next := make([]T, len(cur)-1)
			copy(next, cur[:i])
			copy(next[i:], cur[i+1:])
			c.snap.Store(&next)
			return true
		}
	}
	return false
}

// Clear publishes an empty snapshot.
func (c *CopyOnWriteArray[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	empty := []T{}
	c.snap.Store(&empty)
}

// String renders the current snapshot like a slice, e.g. "[a b c]".
func (c *CopyOnWriteArray[T]) String() string {
	return fmt.Sprintf("%v", c.load())
}
