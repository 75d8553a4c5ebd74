package bindata

import "testing"

func newU8(e Endian) (Node, error) { return Int(8, false, e) }

func TestArrayFixedLength(t *testing.T) {
	a, err := NewArray(ArrayFixedLength, newU8, BigEndian, Lit(int64(3)), nil)
	if err != nil {
		t.Fatalf("NewArray: %v", err)
	}
	if a.Len() != 3 {
		t.Fatalf("got len %d want 3", a.Len())
	}
	if err := ReadFromBytes(a, []byte{1, 2, 3}); err != nil {
		t.Fatalf("Read: %v", err)
	}
	snap, err := a.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	got := snap.([]any)
	if len(got) != 3 || got[0] != uint64(1) || got[2] != uint64(3) {
		t.Fatalf("got %v", got)
	}
}

func TestArrayReadUntilPredicate(t *testing.T) {
	a, err := NewArray(ArrayReadUntil, newU8, BigEndian, Expression{}, func(s *Scope) (bool, error) {
		v, ok := s.Local("element")
		if !ok {
			return false, nil
		}
		el := v.(Node)
		snap, err := el.Snapshot()
		if err != nil {
			return false, err
		}
		return snap == uint64(0), nil
	})
	if err != nil {
		t.Fatalf("NewArray: %v", err)
	}
	if err := ReadFromBytes(a, []byte{5, 6, 0, 9}); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if a.Len() != 3 {
		t.Fatalf("got len %d want 3 (stop right after the sentinel)", a.Len())
	}
}

func TestArrayReadUntilEOFDiscardsPartialElement(t *testing.T) {
	a, err := NewArrayUntilEOF(func(e Endian) (Node, error) { return Int(16, false, e) }, BigEndian)
	if err != nil {
		t.Fatalf("NewArrayUntilEOF: %v", err)
	}
	// 5 bytes: two whole uint16 elements plus one leftover byte that can't
	// form a third element.
	if err := ReadFromBytes(a, []byte{0, 1, 0, 2, 0xFF}); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if a.Len() != 2 {
		t.Fatalf("got len %d want 2 (partial trailing element discarded)", a.Len())
	}
}

func TestArraySetAutoGrowsOnPositiveIndex(t *testing.T) {
	a, err := NewArrayUntilEOF(newU8, BigEndian)
	if err != nil {
		t.Fatalf("NewArrayUntilEOF: %v", err)
	}
	if err := a.Set(2, uint64(7)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if a.Len() != 3 {
		t.Fatalf("got len %d want 3", a.Len())
	}
	el, ok := a.At(2)
	if !ok {
		t.Fatal("element 2 missing")
	}
	snap, _ := el.Snapshot()
	if snap != uint64(7) {
		t.Fatalf("got %v want 7", snap)
	}
}

func TestArraySetNegativeIndexNeverGrows(t *testing.T) {
	a, err := NewArrayUntilEOF(newU8, BigEndian)
	if err != nil {
		t.Fatalf("NewArrayUntilEOF: %v", err)
	}
	if err := a.Set(-1, uint64(1)); err == nil {
		t.Fatal("expected error: negative index must never grow an empty array")
	}
}

func TestArrayPushInsertUnshiftConcat(t *testing.T) {
	a, err := NewArrayUntilEOF(newU8, BigEndian)
	if err != nil {
		t.Fatalf("NewArrayUntilEOF: %v", err)
	}
	if err := a.Push(uint64(2)); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := a.Unshift(uint64(1)); err != nil {
		t.Fatalf("Unshift: %v", err)
	}
	if err := a.Insert(2, uint64(99)); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := a.Concat([]any{uint64(100), uint64(101)}); err != nil {
		t.Fatalf("Concat: %v", err)
	}
	snap, _ := a.Snapshot()
	got := snap.([]any)
	want := []any{uint64(1), uint64(2), uint64(99), uint64(100), uint64(101)}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}
