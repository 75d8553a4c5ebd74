package bindata

import "testing"

func TestBufferWindowsChildToFixedLength(t *testing.T) {
	child, err := Int(8, false, BigEndian)
	if err != nil {
		t.Fatalf("Int: %v", err)
	}
	b, err := NewBuffer(Lit(int64(4)), child)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	// the window is 4 bytes but the child only consumes 1; the buffer still
	// consumes all 4, so whatever follows starts at outer offset 4.
	trailing, err := Int(8, false, BigEndian)
	if err != nil {
		t.Fatalf("Int: %v", err)
	}
	s, err := NewStruct(BigEndian, []FieldDecl{
		{Name: "windowed", New: func(e Endian) (Node, error) { return b, nil }},
		{Name: "after", New: func(e Endian) (Node, error) { return trailing, nil }},
	})
	if err != nil {
		t.Fatalf("NewStruct: %v", err)
	}
	if err := ReadFromBytes(s, []byte{0xAB, 0, 0, 0, 0xCD}); err != nil {
		t.Fatalf("Read: %v", err)
	}
	snap, err := child.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap != uint64(0xAB) {
		t.Fatalf("got %v want 0xAB", snap)
	}
	afterSnap, _ := trailing.Snapshot()
	if afterSnap != uint64(0xCD) {
		t.Fatalf("after field got %v want 0xCD, buffer window not fully consumed", afterSnap)
	}
}

func TestBufferWritePadsToLength(t *testing.T) {
	child, err := Int(8, false, BigEndian)
	if err != nil {
		t.Fatalf("Int: %v", err)
	}
	if err := child.Assign(uint64(0x7F)); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	b, err := NewBuffer(Lit(int64(4)), child)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	out, err := WriteToBytes(b)
	if err != nil {
		t.Fatalf("WriteToBytes: %v", err)
	}
	want := []byte{0x7F, 0, 0, 0}
	if len(out) != len(want) {
		t.Fatalf("got %v want %v", out, want)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("got %v want %v", out, want)
		}
	}
}

func TestBufferWriteRejectsChildOverflowingWindow(t *testing.T) {
	child, err := Int(16, false, BigEndian)
	if err != nil {
		t.Fatalf("Int: %v", err)
	}
	if err := child.Assign(uint64(1)); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	b, err := NewBuffer(Lit(int64(1)), child)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	if _, err := WriteToBytes(b); err == nil {
		t.Fatal("expected an error: 2-byte child cannot fit a 1-byte window")
	}
}

func TestBufferSnapshotAssignDelegateToChild(t *testing.T) {
	child, err := Int(8, false, BigEndian)
	if err != nil {
		t.Fatalf("Int: %v", err)
	}
	b, err := NewBuffer(Lit(int64(2)), child)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	if err := b.Assign(uint64(9)); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	snap, err := b.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap != uint64(9) {
		t.Fatalf("got %v want 9", snap)
	}
	if b.IsClear() {
		t.Fatal("Assign should have cleared the clear flag")
	}
	b.Clear()
	if !b.IsClear() {
		t.Fatal("Clear should restore IsClear")
	}
}
