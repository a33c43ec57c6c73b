package dynarray

import (
	"errors"
	"testing"
)

func TestCursorForward(t *testing.T) {
	a := FromSlice([]string{"a", "b", "c"})
	cur := a.Cursor()

	var got []string
	for cur.HasNext() {
		v, err := cur.Next()
		if err != nil {
			t.Fatalf("Next() failed: %v", err)
		}
		got = append(got, v)
	}

	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("traversed %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %q, want %q", i, got[i], want[i])
		}
	}

	// Past the end the cursor reports exhaustion, not an element.
	if _, err := cur.Next(); !errors.Is(err, ErrCursorDone) {
		t.Errorf("Next() past end = %v, want ErrCursorDone", err)
	}
}

func TestCursorBackward(t *testing.T) {
	a := FromSlice([]int{10, 20, 30})
	cur, err := a.CursorAt(a.Len())
	if err != nil {
		t.Fatalf("CursorAt(Len()) failed: %v", err)
	}

	var got []int
	for cur.HasPrevious() {
		v, err := cur.Previous()
		if err != nil {
			t.Fatalf("Previous() failed: %v", err)
		}
		got = append(got, v)
	}

	want := []int{30, 20, 10}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %d, want %d", i, got[i], want[i])
		}
	}

	if _, err := cur.Previous(); !errors.Is(err, ErrCursorDone) {
		t.Errorf("Previous() before start = %v, want ErrCursorDone", err)
	}
}

func TestCursorAtBounds(t *testing.T) {
	a := FromSlice([]int{1, 2})

	if _, err := a.CursorAt(-1); err == nil {
		t.Error("CursorAt(-1) should fail")
	}
	if _, err := a.CursorAt(3); err == nil {
		t.Error("CursorAt(3) should fail")
	}

	// Mid-array start position.
	cur, err := a.CursorAt(1)
	if err != nil {
		t.Fatalf("CursorAt(1) failed: %v", err)
	}
	if v, _ := cur.Next(); v != 2 {
		t.Errorf("Next() from position 1 = %d, want 2", v)
	}
}

func TestCursorFailFast(t *testing.T) {
	a := FromSlice([]string{"A", "B", "C"})
	cur := a.Cursor()

	if err := a.InsertAt(1, "X"); err != nil {
		t.Fatalf("InsertAt failed: %v", err)
	}

	if _, err := cur.Next(); !errors.Is(err, ErrConcurrentModification) {
		t.Errorf("Next() after structural change = %v, want ErrConcurrentModification", err)
	}

	// A fresh cursor recovers.
	if v, err := a.Cursor().Next(); err != nil || v != "A" {
		t.Errorf("fresh cursor Next() = %q, %v, want A, nil", v, err)
	}
}

func TestCursorFailFastOperations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *Array[int])
	}{
		{"append", func(a *Array[int]) { a.Append(9) }},
		{"insert", func(a *Array[int]) { a.InsertAt(0, 9) }},
		{"remove", func(a *Array[int]) { a.RemoveAt(0) }},
		{"remove value", func(a *Array[int]) { a.RemoveValue(2) }},
		{"remove if", func(a *Array[int]) { a.RemoveIf(func(v int) bool { return v == 1 }) }},
		{"clear", func(a *Array[int]) { a.Clear() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := FromSlice([]int{1, 2, 3})
			cur := a.Cursor()
			tt.mutate(a)
			if _, err := cur.Next(); !errors.Is(err, ErrConcurrentModification) {
				t.Errorf("Next() after %s = %v, want ErrConcurrentModification", tt.name, err)
			}
		})
	}
}

func TestCursorSurvivesSet(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	cur := a.Cursor()

	// Plain replacement is not structural; the cursor stays valid and sees
	// the new value.
	a.Set(0, 42)
	if v, err := cur.Next(); err != nil || v != 42 {
		t.Errorf("Next() after Set = %d, %v, want 42, nil", v, err)
	}
}

func TestCursorRemove(t *testing.T) {
	a := FromSlice([]string{"apple", "banana", "cherry"})
	cur := a.Cursor()

	// Remove the element the cursor just returned, mid-traversal.
	for cur.HasNext() {
		v, err := cur.Next()
		if err != nil {
			t.Fatalf("Next() failed: %v", err)
		}
		if v == "banana" {
			removed, err := cur.Remove()
			if err != nil {
				t.Fatalf("Remove() failed: %v", err)
			}
			if removed != "banana" {
				t.Errorf("Remove() = %q, want banana", removed)
			}
		}
	}

	want := []string{"apple", "cherry"}
	got := a.ToSlice()
	if len(got) != len(want) {
		t.Fatalf("length after Remove = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCursorRemoveWithoutCurrent(t *testing.T) {
	a := FromSlice([]int{1, 2})
	cur := a.Cursor()

	if _, err := cur.Remove(); !errors.Is(err, ErrNoCurrentElement) {
		t.Errorf("Remove() before Next = %v, want ErrNoCurrentElement", err)
	}

	cur.Next()
	if _, err := cur.Remove(); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	// The current element is gone; a second Remove has nothing to act on.
	if _, err := cur.Remove(); !errors.Is(err, ErrNoCurrentElement) {
		t.Errorf("second Remove() = %v, want ErrNoCurrentElement", err)
	}
}

func TestCursorRemoveAfterPrevious(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	cur, _ := a.CursorAt(a.Len())

	cur.Previous() // 3
	cur.Previous() // 2
	if _, err := cur.Remove(); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}

	want := []int{1, 3}
	got := a.ToSlice()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %d, want %d", i, got[i], want[i])
		}
	}
	// Traversal continues from the right place: next Previous yields 1.
	if v, err := cur.Previous(); err != nil || v != 1 {
		t.Errorf("Previous() after Remove = %d, %v, want 1, nil", v, err)
	}
}

func TestCursorRemoveAll(t *testing.T) {
	a := FromSlice([]int{1, 2, 3, 4})
	cur := a.Cursor()

	for cur.HasNext() {
		if _, err := cur.Next(); err != nil {
			t.Fatalf("Next() failed: %v", err)
		}
		if _, err := cur.Remove(); err != nil {
			t.Fatalf("Remove() failed: %v", err)
		}
	}

	if !a.IsEmpty() {
		t.Errorf("length after removing all = %d, want 0", a.Len())
	}
}
