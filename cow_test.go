package dynarray

import (
	"errors"
	"sync"
	"testing"
)

func TestNewCopyOnWrite(t *testing.T) {
	c := NewCopyOnWrite[int]()
	if c.Len() != 0 || !c.IsEmpty() {
		t.Errorf("NewCopyOnWrite length = %d, want 0", c.Len())
	}
}

func TestCopyOnWriteFromSlice(t *testing.T) {
	src := []string{"a", "b"}
	c := CopyOnWriteFromSlice(src)

	src[0] = "mutated"
	if v, _ := c.Get(0); v != "a" {
		t.Errorf("Get(0) after source mutation = %q, want a", v)
	}
}

func TestCopyOnWriteOperations(t *testing.T) {
	c := NewCopyOnWrite[string]()

	c.Append("a")
	c.AppendAll("c", "d")
	c.InsertAt(1, "b")

	if got := c.String(); got != "[a b c d]" {
		t.Errorf("String() = %q, want %q", got, "[a b c d]")
	}
	if i := c.IndexOf("c"); i != 2 {
		t.Errorf("IndexOf(c) = %d, want 2", i)
	}
	if !c.Contains("d") {
		t.Error("Contains(d) = false, want true")
	}

	if v, err := c.RemoveAt(0); err != nil || v != "a" {
		t.Errorf("RemoveAt(0) = %q, %v, want a, nil", v, err)
	}
	if !c.RemoveValue("d") {
		t.Error("RemoveValue(d) = false, want true")
	}
	if c.RemoveValue("nope") {
		t.Error("RemoveValue(nope) = true, want false")
	}

	c.Set(0, "z")
	if v, _ := c.Get(0); v != "z" {
		t.Errorf("Get(0) after Set = %q, want z", v)
	}

	c.Clear()
	if !c.IsEmpty() {
		t.Errorf("length after Clear = %d, want 0", c.Len())
	}
}

func TestCopyOnWriteBounds(t *testing.T) {
	c := CopyOnWriteFromSlice([]int{1, 2})

	var ie *IndexError
	if _, err := c.Get(2); !errors.As(err, &ie) {
		t.Errorf("Get(2) error = %v, want *IndexError", err)
	}
	if err := c.Set(-1, 0); !errors.As(err, &ie) {
		t.Errorf("Set(-1) error = %v, want *IndexError", err)
	}
	if err := c.InsertAt(3, 0); !errors.As(err, &ie) {
		t.Errorf("InsertAt(3) error = %v, want *IndexError", err)
	}
	if _, err := c.RemoveAt(2); !errors.As(err, &ie) {
		t.Errorf("RemoveAt(2) error = %v, want *IndexError", err)
	}
	if c.Len() != 2 {
		t.Errorf("length after failed ops = %d, want 2", c.Len())
	}
}

func TestCopyOnWriteSnapshotIsolation(t *testing.T) {
	c := CopyOnWriteFromSlice([]int{1, 2, 3})

	snap := c.Snapshot()
	c.Append(4)
	c.Set(0, 99)

	// The earlier snapshot is a point-in-time view, untouched by writes.
	want := []int{1, 2, 3}
	if len(snap) != len(want) {
		t.Fatalf("snapshot length = %d, want %d", len(snap), len(want))
	}
	for i, w := range want {
		if snap[i] != w {
			t.Errorf("snapshot element %d = %d, want %d", i, snap[i], w)
		}
	}
}

func TestCopyOnWriteEachIsolation(t *testing.T) {
	c := CopyOnWriteFromSlice([]int{1, 2, 3})

	// Mutate mid-traversal: the traversal keeps reading the snapshot it
	// started with. No fail-fast error exists on this type.
	var got []int
	c.Each(func(i int, v int) bool {
		if i == 0 {
			c.Append(4)
			c.Set(1, 42)
		}
		got = append(got, v)
		return true
	})

	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("traversed %d elements, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("element %d = %d, want %d", i, got[i], w)
		}
	}
	if c.Len() != 4 {
		t.Errorf("length after traversal = %d, want 4", c.Len())
	}
}

func TestCopyOnWriteConcurrentAppends(t *testing.T) {
	c := NewCopyOnWrite[int]()
	const numGoroutines = 4
	const appendsPerGoroutine = 250

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for g := 0; g < numGoroutines; g++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < appendsPerGoroutine; j++ {
				c.Append(id*appendsPerGoroutine + j)
			}
		}(g)
	}
	wg.Wait()

	if c.Len() != numGoroutines*appendsPerGoroutine {
		t.Errorf("length = %d, want %d", c.Len(), numGoroutines*appendsPerGoroutine)
	}
}

func TestCopyOnWriteConcurrentReadersWriter(t *testing.T) {
	c := CopyOnWriteFromSlice([]int{0})
	done := make(chan struct{})

	// One writer continuously publishing new snapshots.
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i <= 500; i++ {
			c.Append(i)
		}
		close(done)
	}()

	// Readers never block and always see a prefix-consistent snapshot.
	const numReaders = 4
	wg.Add(numReaders)
	for r := 0; r < numReaders; r++ {
		go func() {
			defer wg.Done()
			for {
				snap := c.Snapshot()
				for i, v := range snap {
					if v != i {
						t.Errorf("snapshot element %d = %d, want %d", i, v, i)
						return
					}
				}
				select {
				case <-done:
					return
				default:
				}
			}
		}()
	}
	wg.Wait()

	if c.Len() != 501 {
		t.Errorf("final length = %d, want 501", c.Len())
	}
}
