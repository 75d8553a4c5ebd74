package bindata

import (
	"testing"
)

func u8(name string) FieldDecl {
	return FieldDecl{Name: name, New: func(e Endian) (Node, error) { return Int(8, false, e) }}
}

func TestStructReadWriteRoundTrip(t *testing.T) {
	s, err := NewStruct(BigEndian, []FieldDecl{u8("a"), u8("b"), u8("c")})
	if err != nil {
		t.Fatalf("NewStruct: %v", err)
	}
	if err := ReadFromBytes(s, []byte{1, 2, 3}); err != nil {
		t.Fatalf("Read: %v", err)
	}
	v, ok := s.Field("b")
	if !ok {
		t.Fatal("field b not found")
	}
	snap, err := v.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap != uint64(2) {
		t.Fatalf("got %v want 2", snap)
	}

	out, err := WriteToBytes(s)
	if err != nil {
		t.Fatalf("WriteToBytes: %v", err)
	}
	if string(out) != string([]byte{1, 2, 3}) {
		t.Fatalf("got %v want [1 2 3]", out)
	}
}

func TestStructOnlyIfSkipsFieldButByteAlignStillApplies(t *testing.T) {
	decls := []FieldDecl{
		u8("flag"),
		{
			Name:      "aligned",
			ByteAlign: Lit(int64(4)),
			OnlyIf: Closure(func(s *Scope) (any, error) {
				v, err := s.Get("flag")
				if err != nil {
					return nil, err
				}
				return v != uint64(0), nil
			}),
			New: func(e Endian) (Node, error) { return Int(8, false, e) },
		},
		u8("tail"),
	}
	s, err := NewStruct(BigEndian, decls)
	if err != nil {
		t.Fatalf("NewStruct: %v", err)
	}
	// flag=0 (1 byte), pad 3 bytes to reach offset 4, aligned field skipped
	// by onlyif (still consumes no bytes since reading was skipped), tail
	// byte read next at offset 4.
	if err := ReadFromBytes(s, []byte{0, 0, 0, 0, 9}); err != nil {
		t.Fatalf("Read: %v", err)
	}
	tail, _ := s.Field("tail")
	snap, _ := tail.Snapshot()
	if snap != uint64(9) {
		t.Fatalf("got %v want 9 (byte_align must apply even though onlyif skips the read)", snap)
	}
}

func TestStructAssignIsPartialMerge(t *testing.T) {
	s, err := NewStruct(BigEndian, []FieldDecl{u8("a"), u8("b")})
	if err != nil {
		t.Fatalf("NewStruct: %v", err)
	}
	if err := s.Assign(map[string]any{"a": uint64(5)}); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if err := s.Assign(map[string]any{"b": uint64(9)}); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	a, _ := s.Field("a")
	b, _ := s.Field("b")
	av, _ := a.Snapshot()
	bv, _ := b.Snapshot()
	if av != uint64(5) || bv != uint64(9) {
		t.Fatalf("partial assign lost a prior field: a=%v b=%v", av, bv)
	}
}

func TestStructHiddenFieldExcludedFromSnapshot(t *testing.T) {
	s, err := NewStruct(BigEndian, []FieldDecl{
		{Name: "secret", Hidden: true, New: func(e Endian) (Node, error) { return Int(8, false, e) }},
		u8("visible"),
	})
	if err != nil {
		t.Fatalf("NewStruct: %v", err)
	}
	if err := ReadFromBytes(s, []byte{1, 2}); err != nil {
		t.Fatalf("Read: %v", err)
	}
	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	of := snap.(*OrderedFields)
	if _, ok := of.Get("secret"); ok {
		t.Fatal("hidden field must not appear in Snapshot")
	}
	if _, ok := s.Field("secret"); !ok {
		t.Fatal("hidden field must still be addressable by name")
	}
}

func TestStructRejectsReservedFieldName(t *testing.T) {
	_, err := NewStruct(BigEndian, []FieldDecl{
		{Name: "parent", New: func(e Endian) (Node, error) { return Int(8, false, e) }},
	})
	if err == nil {
		t.Fatal("expected error for reserved field name")
	}
}

func TestStructRejectsDuplicateFieldName(t *testing.T) {
	_, err := NewStruct(BigEndian, []FieldDecl{u8("x"), u8("x")})
	if err == nil {
		t.Fatal("expected error for duplicate field name")
	}
}
