package dynarray

// Len and Cap live in array.go; this file carries the derived statistics.

// Utilization returns the ratio of occupied slots to capacity (0.0 to 1.0).
// Returns 0.0 when the array has no capacity.
func (a *Array[T]) Utilization() float64 {
	if len(a.buf) == 0 {
		return 0
	}
	return float64(a.size) / float64(len(a.buf))
}

// Growths returns the number of buffer reallocations performed so far,
// counting both amortized growth and explicit EnsureCapacity/TrimToFit.
func (a *Array[T]) Growths() int {
	return a.growths
}

// Shifts returns the total number of elements moved by insert/remove
// shifting. A cheap proxy for how middle-heavy the mutation pattern is.
func (a *Array[T]) Shifts() int {
	return a.shifts
}

// Metrics returns a snapshot of array statistics.
func (a *Array[T]) Metrics() ArrayMetrics {
	return ArrayMetrics{
		Len:         a.size,
		Cap:         len(a.buf),
		Growths:     a.growths,
		Shifts:      a.shifts,
		Utilization: a.Utilization(),
	}
}

// ArrayMetrics contains statistical information about an array.
type ArrayMetrics struct {
	Len         int     // occupied slots
	Cap         int     // total capacity
	Growths     int     // buffer reallocations
	Shifts      int     // elements moved by insert/remove
	Utilization float64 // ratio of occupied to total capacity (0.0-1.0)
}

// Thread-safe metrics for LockedArray

// Utilization thread-safely returns the occupied-to-capacity ratio.
func (l *LockedArray[T]) Utilization() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Utilization()
}

// Growths thread-safely returns the number of buffer reallocations.
func (l *LockedArray[T]) Growths() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Growths()
}

// Shifts thread-safely returns the total elements moved by shifting.
func (l *LockedArray[T]) Shifts() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Shifts()
}

// Metrics thread-safely returns a snapshot of array statistics.
func (l *LockedArray[T]) Metrics() ArrayMetrics {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Metrics()
}
