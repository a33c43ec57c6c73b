package dynarray

// List is the capability contract shared by the sequential variants:
// indexed read/write, append and ordered traversal. It lets callers select
// a storage strategy at construction and swap it without touching call
// sites.
type List[T comparable] interface {
	Len() int
	IsEmpty() bool
	Get(i int) (T, error)
	Set(i int, v T) error
	Append(v T) error
	Contains(v T) bool
	Each(fn func(i int, v T) bool)
}

// Strategy selects a List implementation.
type Strategy int

const (
	// Unsynchronized is a plain Array: fastest, no concurrency guarantees.
	Unsynchronized Strategy = iota
	// Locked serializes every operation behind an exclusive mutex.
	Locked
	// CopyOnWrite gives non-blocking reads and copy-publish writes.
	CopyOnWrite
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Unsynchronized:
		return "unsynchronized"
	case Locked:
		return "locked"
	case CopyOnWrite:
		return "copy-on-write"
	default:
		return "unknown"
	}
}

// NewList creates an empty List backed by the given strategy.
// An unknown strategy falls back to Unsynchronized.
func NewList[T comparable](s Strategy) List[T] {
	switch s {
	case Locked:
		return NewLocked[T]()
	case CopyOnWrite:
		return NewCopyOnWrite[T]()
	default:
		return New[T]()
	}
}

// Interface conformance.
var (
	_ List[int] = (*Array[int])(nil)
	_ List[int] = (*LockedArray[int])(nil)
	_ List[int] = (*CopyOnWriteArray[int])(nil)
)
