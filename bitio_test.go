package bindata

import (
	"bytes"
	"testing"
)

func TestReaderWriterByteRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		buf  []byte
	}{
		{"empty", nil},
		{"single", []byte{0x42}},
		{"multi", []byte{0x01, 0x02, 0x03, 0xff, 0x00}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := NewReaderFromBytes(c.buf)
			got, err := r.ReadBytes(len(c.buf))
			if err != nil {
				t.Fatalf("ReadBytes: %v", err)
			}
			if !bytes.Equal(got, c.buf) {
				t.Fatalf("got %v want %v", got, c.buf)
			}

			var out bytes.Buffer
			w := NewWriter(&out)
			if err := w.WriteBytes(c.buf); err != nil {
				t.Fatalf("WriteBytes: %v", err)
			}
			if err := w.Flush(); err != nil {
				t.Fatalf("Flush: %v", err)
			}
			if !bytes.Equal(out.Bytes(), c.buf) {
				t.Fatalf("wrote %v want %v", out.Bytes(), c.buf)
			}
		})
	}
}

func TestReaderReadBytesShort(t *testing.T) {
	r := NewReaderFromBytes([]byte{0x01, 0x02})
	if _, err := r.ReadBytes(5); err == nil {
		t.Fatal("expected end-of-stream error on short read")
	}
}

func TestBitAccumulatorRoundTrip(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out)
	if err := w.WriteBits(0b101, 3, BigEndian); err != nil {
		t.Fatalf("WriteBits: %v", err)
	}
	if err := w.WriteBits(0b11111, 5, BigEndian); err != nil {
		t.Fatalf("WriteBits: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if out.Len() != 1 {
		t.Fatalf("expected exactly one byte, got %d", out.Len())
	}
	if out.Bytes()[0] != 0xBF {
		t.Fatalf("got %08b want %08b", out.Bytes()[0], 0xBF)
	}

	r := NewReaderFromBytes(out.Bytes())
	a, err := r.ReadBits(3, BigEndian)
	if err != nil {
		t.Fatalf("ReadBits: %v", err)
	}
	if a != 0b101 {
		t.Fatalf("got %b want %b", a, 0b101)
	}
	b, err := r.ReadBits(5, BigEndian)
	if err != nil {
		t.Fatalf("ReadBits: %v", err)
	}
	if b != 0b11111 {
		t.Fatalf("got %b want %b", b, 0b11111)
	}
}

func TestByteReadDiscardsPendingBits(t *testing.T) {
	r := NewReaderFromBytes([]byte{0xFF, 0xAB})
	if _, err := r.ReadBits(3, BigEndian); err != nil {
		t.Fatalf("ReadBits: %v", err)
	}
	got, err := r.ReadBytes(1)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if got[0] != 0xAB {
		t.Fatalf("byte read should discard leftover bits and pull the next whole byte, got %#x", got[0])
	}
}

func TestSeekToAbsOffset(t *testing.T) {
	r := NewReaderFromBytes([]byte{0, 1, 2, 3, 4})
	if err := r.SeekToAbsOffset(3); err != nil {
		t.Fatalf("SeekToAbsOffset: %v", err)
	}
	got, err := r.ReadBytes(2)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if !bytes.Equal(got, []byte{3, 4}) {
		t.Fatalf("got %v want [3 4]", got)
	}
}

func TestWriteAtRestoresPosition(t *testing.T) {
	out := &growableWriteSeeker{}
	w := NewWriter(out)
	if err := w.WriteBytes([]byte{0, 0, 0, 0}); err != nil {
		t.Fatalf("WriteBytes: %v", err)
	}
	before := w.Offset()
	if err := w.WriteAt(1, []byte{0xAA}); err != nil {
		t.Fatalf("WriteAt: %v", err)
	}
	if w.Offset() != before {
		t.Fatalf("WriteAt must restore position: got %d want %d", w.Offset(), before)
	}
}

func FuzzBitRoundTrip(f *testing.F) {
	f.Add([]byte{0x00}, uint8(3))
	f.Add([]byte{0xFF, 0x0F}, uint8(7))
	f.Fuzz(func(t *testing.T, data []byte, bits uint8) {
		n := int(bits%8) + 1
		r := NewReaderFromBytes(data)
		first, err := r.ReadBits(n, BigEndian)
		if err != nil {
			return
		}
		var out bytes.Buffer
		w := NewWriter(&out)
		if err := w.WriteBits(first, n, BigEndian); err != nil {
			t.Fatalf("WriteBits: %v", err)
		}
		if err := w.Flush(); err != nil {
			t.Fatalf("Flush: %v", err)
		}
		r2 := NewReaderFromBytes(out.Bytes())
		second, err := r2.ReadBits(n, BigEndian)
		if err != nil {
			t.Fatalf("round-trip ReadBits: %v", err)
		}
		if first != second {
			t.Fatalf("round-trip mismatch: %b != %b", first, second)
		}
	})
}
