package dynarray

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// AtomicIntArray is a fixed-length array of independently atomic int64
// slots. Concurrent loads, stores and adds on the same slot are linearized
// by the hardware atomic primitive, so no update is ever lost and no
// coarse lock is needed. The length is fixed at construction: there is no
// grow, insert or remove.
//
// It exists for the case where only independent per-slot updates are
// required; granular atomicity is then sufficient where a shared plain
// buffer would race.
type AtomicIntArray struct {
	slots []atomic.Int64
}

// NewAtomicIntArray creates an array of n zeroed atomic slots.
// If n <= 0, the array has length 0.
func NewAtomicIntArray(n int) *AtomicIntArray {
	if n <= 0 {
		return &AtomicIntArray{}
	}
	return &AtomicIntArray{slots: make([]atomic.Int64, n)}
}

// Len returns the fixed number of slots.
func (a *AtomicIntArray) Len() int { return len(a.slots) }

// Load atomically reads slot i.
func (a *AtomicIntArray) Load(i int) (int64, error) {
	if i < 0 || i >= len(a.slots) {
		return 0, indexError("load", i, len(a.slots))
	}
	return a.slots[i].Load(), nil
}

// Store atomically writes v into slot i.
func (a *AtomicIntArray) Store(i int, v int64) error {
	if i < 0 || i >= len(a.slots) {
		return indexError("store", i, len(a.slots))
	}
	a.slots[i].Store(v)
	return nil
}

// Add atomically adds delta to slot i and returns the new value.
// Concurrent Adds on the same slot never lose an update.
func (a *AtomicIntArray) Add(i int, delta int64) (int64, error) {
	if i < 0 || i >= len(a.slots) {
		return 0, indexError("add", i, len(a.slots))
	}
	return a.slots[i].Add(delta), nil
}

// CompareAndSwap atomically replaces slot i with next if it holds old,
// reporting whether the swap happened.
func (a *AtomicIntArray) CompareAndSwap(i int, old, next int64) (bool, error) {
	if i < 0 || i >= len(a.slots) {
		return false, indexError("compare-and-swap", i, len(a.slots))
	}
	return a.slots[i].CompareAndSwap(old, next), nil
}

// Snapshot returns a copy of all slots. Each slot is read atomically, but
// the snapshot as a whole is not a consistent cut under concurrent writers.
func (a *AtomicIntArray) Snapshot() []int64 {
	out := make([]int64, len(a.slots))
	for i := range a.slots {
		out[i] = a.slots[i].Load()
	}
	return out
}

// String renders the slots like a slice, e.g. "[1 2 3]".
func (a *AtomicIntArray) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := range a.slots {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", a.slots[i].Load())
	}
	b.WriteByte(']')
	return b.String()
}
