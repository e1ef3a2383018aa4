package filters

import (
	"bytes"
	"compress/zlib"
	"testing"
)

func deflate(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("zlib write failed: %v", err)
	}
	w.Close()
	return buf.Bytes()
}

func TestFlateDecodeRoundTrip(t *testing.T) {
	plain := []byte("some page content with repeated content content content")

	got, err := FlateDecode(deflate(t, plain), nil)
	if err != nil {
		t.Fatalf("FlateDecode failed: %v", err)
	}
	if !bytes.Equal(got, plain) {
		t.Errorf("got %q, want %q", got, plain)
	}
}

func TestFlateDecodeInvalidData(t *testing.T) {
	if _, err := FlateDecode([]byte("not zlib"), nil); err == nil {
		t.Error("expected error for invalid zlib data")
	}
}

func TestFlateDecodePNGUpPredictor(t *testing.T) {
	// Two rows of four bytes, both using the Up predictor (tag 2).
	// Encoded rows hold the delta from the row above.
	predicted := []byte{
		2, 10, 20, 30, 40, // row 0: no row above, values pass through
		2, 1, 1, 1, 1, // row 1: each byte is previous row + 1
	}

	params := Params{"Predictor": 12, "Columns": 4, "Colors": 1}
	got, err := FlateDecode(deflate(t, predicted), params)
	if err != nil {
		t.Fatalf("FlateDecode failed: %v", err)
	}

	want := []byte{10, 20, 30, 40, 11, 21, 31, 41}
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFlateDecodePNGSubPredictor(t *testing.T) {
	// One row using the Sub predictor (tag 1): each byte is the delta
	// from the byte one pixel to the left.
	predicted := []byte{1, 5, 5, 5, 5}

	params := Params{"Predictor": 11, "Columns": 4, "Colors": 1}
	got, err := FlateDecode(deflate(t, predicted), params)
	if err != nil {
		t.Fatalf("FlateDecode failed: %v", err)
	}

	want := []byte{5, 10, 15, 20}
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFlateDecodeTIFFPredictor(t *testing.T) {
	predicted := []byte{3, 4, 4, 4}

	params := Params{"Predictor": 2, "Columns": 4, "Colors": 1}
	got, err := FlateDecode(deflate(t, predicted), params)
	if err != nil {
		t.Fatalf("FlateDecode failed: %v", err)
	}

	want := []byte{3, 7, 11, 15}
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
