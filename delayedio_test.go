package bindata

import "testing"

// growableWriteSeeker is a minimal io.WriteSeeker over an in-memory
// buffer, for exercising Writer.WriteAt without a real file.
type growableWriteSeeker struct {
	buf []byte
	pos int64
}

func (g *growableWriteSeeker) Write(p []byte) (int, error) {
	end := g.pos + int64(len(p))
	if end > int64(len(g.buf)) {
		grown := make([]byte, end)
		copy(grown, g.buf)
		g.buf = grown
	}
	copy(g.buf[g.pos:end], p)
	g.pos = end
	return len(p), nil
}

func (g *growableWriteSeeker) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case 0:
		g.pos = offset
	case 1:
		g.pos += offset
	case 2:
		g.pos = int64(len(g.buf)) + offset
	}
	return g.pos, nil
}

func TestDelayedIOReadNowSeeksAndRestoresPosition(t *testing.T) {
	child, err := Int(8, false, BigEndian)
	if err != nil {
		t.Fatalf("Int: %v", err)
	}
	d, err := NewDelayedIO(Lit(int64(3)), child, false)
	if err != nil {
		t.Fatalf("NewDelayedIO: %v", err)
	}
	after, err := Int(8, false, BigEndian)
	if err != nil {
		t.Fatalf("Int: %v", err)
	}
	s, err := NewStruct(BigEndian, []FieldDecl{
		{Name: "deferred", New: func(e Endian) (Node, error) { return d, nil }},
		{Name: "after", New: func(e Endian) (Node, error) { return after, nil }},
	})
	if err != nil {
		t.Fatalf("NewStruct: %v", err)
	}
	if err := ReadFromBytes(s, []byte{0x11, 0x22, 0x33, 0xAB}); err != nil {
		t.Fatalf("Read: %v", err)
	}
	// deferred never consumed from the main walk, so "after" reads the
	// very next byte at position 0, not position 4.
	afterSnap, _ := after.Snapshot()
	if afterSnap != uint64(0x11) {
		t.Fatalf("after got %v want 0x11: delayed read must not advance the main stream", afterSnap)
	}
	if err := d.ReadNow(); err != nil {
		t.Fatalf("ReadNow: %v", err)
	}
	snap, err := child.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap != uint64(0xAB) {
		t.Fatalf("got %v want 0xAB from offset 3", snap)
	}
}

func TestDelayedIOAutoCallReadsImmediately(t *testing.T) {
	child, err := Int(8, false, BigEndian)
	if err != nil {
		t.Fatalf("Int: %v", err)
	}
	d, err := NewDelayedIO(Lit(int64(2)), child, true)
	if err != nil {
		t.Fatalf("NewDelayedIO: %v", err)
	}
	if err := ReadFromBytes(d, []byte{0, 0, 0x5A}); err != nil {
		t.Fatalf("Read: %v", err)
	}
	snap, err := child.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap != uint64(0x5A) {
		t.Fatalf("got %v want 0x5A, autoCall should read_now during Read", snap)
	}
}

func TestDelayedIOWriteNowPlacesBytesAtAbsOffsetAndRestoresWriter(t *testing.T) {
	child, err := Int(8, false, BigEndian)
	if err != nil {
		t.Fatalf("Int: %v", err)
	}
	if err := child.Assign(uint64(0x99)); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	d, err := NewDelayedIO(Lit(int64(5)), child, false)
	if err != nil {
		t.Fatalf("NewDelayedIO: %v", err)
	}
	dst := &growableWriteSeeker{buf: make([]byte, 6)}
	w := NewWriter(dst)
	if err := w.WriteBytes([]byte{0x11}); err != nil {
		t.Fatalf("WriteBytes: %v", err)
	}
	if err := d.Write(w); err != nil {
		t.Fatalf("Write (record): %v", err)
	}
	if err := d.WriteNow(); err != nil {
		t.Fatalf("WriteNow: %v", err)
	}
	if err := w.WriteBytes([]byte{0x22}); err != nil {
		t.Fatalf("WriteBytes after WriteNow: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if dst.buf[5] != 0x99 {
		t.Fatalf("byte at offset 5 got %#x want 0x99", dst.buf[5])
	}
	if dst.buf[1] != 0x22 {
		t.Fatalf("writer position not restored: byte at offset 1 got %#x want 0x22", dst.buf[1])
	}
}

func TestDelayedIOReadNowBeforeReadIsAnError(t *testing.T) {
	child, err := Int(8, false, BigEndian)
	if err != nil {
		t.Fatalf("Int: %v", err)
	}
	d, err := NewDelayedIO(Lit(int64(0)), child, false)
	if err != nil {
		t.Fatalf("NewDelayedIO: %v", err)
	}
	if err := d.ReadNow(); err == nil {
		t.Fatal("expected an error calling ReadNow before the containing tree was read")
	}
}

func TestDelayedIOAbsOffsetReportsReadAbsOffset(t *testing.T) {
	child, err := Int(8, false, BigEndian)
	if err != nil {
		t.Fatalf("Int: %v", err)
	}
	d, err := NewDelayedIO(Lit(int64(17)), child, false)
	if err != nil {
		t.Fatalf("NewDelayedIO: %v", err)
	}
	abs, err := d.AbsOffset()
	if err != nil {
		t.Fatalf("AbsOffset: %v", err)
	}
	if abs != 17 {
		t.Fatalf("got %d want 17", abs)
	}
}
