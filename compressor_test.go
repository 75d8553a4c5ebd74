package bindata

import "testing"

func TestFlateTransformRoundTrip(t *testing.T) {
	tr := NewFlateTransform(-1)
	encoded, err := tr.Encode([]byte("the quick brown fox"))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := tr.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(decoded) != "the quick brown fox" {
		t.Fatalf("got %q", decoded)
	}
	if tr.PreservesLength() {
		t.Fatal("flate does not preserve length")
	}
}

func TestZstdTransformRoundTrip(t *testing.T) {
	tr := NewZstdTransform(1)
	encoded, err := tr.Encode([]byte("the quick brown fox"))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := tr.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(decoded) != "the quick brown fox" {
		t.Fatalf("got %q", decoded)
	}
}
