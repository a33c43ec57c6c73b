// Package dynarray implements a growable sequential container (dynamic
// array) for Go, together with three concurrency-safety strategies layered
// on top of it.
//
// # Overview
//
// An Array stores its elements in one contiguous buffer and grows by
// replacing that buffer with a larger copy when an append overflows it.
// This is the canonical dynamic-array design:
//
//   - Indexed access in O(1)
//   - Append in amortized O(1) via ~1.5x capacity growth
//   - Insert/remove anywhere, shifting the tail in O(n)
//   - Search by value equality in O(n)
//
// # Basic Usage
//
//	arr := dynarray.New[string]()
//	arr.Append("apple")
//	arr.Append("cherry")
//	arr.InsertAt(1, "banana")
//
//	v, err := arr.Get(0)       // "apple"
//	arr.RemoveValue("cherry")  // true
//	fixed := arr.ToSlice()     // decoupled copy of the elements
//
// Out-of-range indices are reported with *IndexError; no operation clamps
// an index or partially applies a mutation.
//
// # Iteration
//
// A Cursor traverses the array in either direction and fails fast: if the
// source is structurally modified behind the cursor's back, the next cursor
// operation returns ErrConcurrentModification instead of producing
// undefined results. Cursor.Remove is the one mutation that keeps the
// cursor valid.
//
//	cur := arr.Cursor()
//	for cur.HasNext() {
//		v, err := cur.Next()
//		...
//	}
//
// # Thread Safety
//
// The basic Array type is not thread-safe, deliberately so: two goroutines
// mutating the same Array race and can silently lose updates. That
// no-guarantee default is the baseline the three wrappers exist for, each
// an explicit opt-in with a different trade-off:
//
//   - LockedArray: one exclusive mutex around every operation. Total
//     ordering, no lost updates, writers and readers all serialize.
//   - CopyOnWriteArray: immutable snapshots published atomically. Readers
//     never block and always see a consistent point-in-time view; each
//     write copies the whole buffer.
//   - AtomicIntArray: fixed-length int64 slots updated with hardware
//     atomics. No locks at all, but no resizing either.
//
// # Performance Characteristics
//
//   - Get/Set: O(1)
//   - Append: O(1) amortized, O(capacity) worst case on growth
//   - InsertAt/RemoveAt: O(n) from the index to the tail
//   - CopyOnWriteArray reads: O(1), writes: O(n)
//   - AtomicIntArray slot operations: O(1), lock-free
//
// # Capacity Management
//
// Growth allocates a fresh buffer of max(cap+cap/2, cap+1) slots (10 on
// the first growth of a default-constructed array) and copies the occupied
// elements; the old buffer is discarded whole. Capacity never shrinks
// implicitly - Clear keeps the buffer and TrimToFit is the only shrink
// path.
//
// # Metrics and Monitoring
//
// Array and LockedArray expose counters for sizing decisions:
//
//	m := arr.Metrics()
//	fmt.Printf("utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("reallocations: %d\n", m.Growths)
package dynarray
