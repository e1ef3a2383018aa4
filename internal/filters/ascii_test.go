package filters

import (
	"bytes"
	"encoding/ascii85"
	"testing"
)

func TestASCIIHexDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"simple", "48656C6C6F", "Hello", false},
		{"with whitespace", "48 65 6C\n6C 6F", "Hello", false},
		{"with EOD", "4869>garbage after", "Hi", false},
		{"odd digit padded", "480>", "H\x00", false},
		{"lowercase", "6869", "hi", false},
		{"invalid digit", "48zz", "", true},
		{"empty", ">", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ASCIIHexDecode([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ASCIIHexDecode failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestASCII85DecodeRoundTrip(t *testing.T) {
	inputs := [][]byte{
		[]byte("Man is distinguished"),
		[]byte("a"),
		[]byte("ab"),
		[]byte("abc"),
		[]byte("abcd"),
		{0, 0, 0, 0, 'x'},
	}

	for _, plain := range inputs {
		encoded := make([]byte, ascii85.MaxEncodedLen(len(plain)))
		n := ascii85.Encode(encoded, plain)
		encoded = append(encoded[:n], '~', '>')

		got, err := ASCII85Decode(encoded)
		if err != nil {
			t.Fatalf("ASCII85Decode(%q) failed: %v", plain, err)
		}
		if !bytes.Equal(got, plain) {
			t.Errorf("round trip of %q: got %q", plain, got)
		}
	}
}

func TestASCII85DecodeZShortcut(t *testing.T) {
	got, err := ASCII85Decode([]byte("z~>"))
	if err != nil {
		t.Fatalf("ASCII85Decode failed: %v", err)
	}
	if !bytes.Equal(got, []byte{0, 0, 0, 0}) {
		t.Errorf("got %v, want four zero bytes", got)
	}
}

func TestASCII85DecodeInvalid(t *testing.T) {
	if _, err := ASCII85Decode([]byte("ab\x7fcd~>")); err == nil {
		t.Error("expected error for out-of-range character")
	}
}

func TestRunLengthDecode(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"literal run", []byte{2, 'a', 'b', 'c', 128}, "abc"},
		{"repeat run", []byte{255, 'x', 128}, "xx"},
		{"long repeat", []byte{129, 'y', 128}, string(bytes.Repeat([]byte{'y'}, 128))},
		{"mixed", []byte{0, 'a', 254, 'b', 128}, "abbb"},
		{"no EOD marker", []byte{1, 'h', 'i'}, "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RunLengthDecode(tt.input)
			if err != nil {
				t.Fatalf("RunLengthDecode failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunLengthDecodeTruncated(t *testing.T) {
	if _, err := RunLengthDecode([]byte{5, 'a'}); err == nil {
		t.Error("expected error for truncated literal run")
	}
	if _, err := RunLengthDecode([]byte{200}); err == nil {
		t.Error("expected error for truncated repeat run")
	}
}
