package jagged

import (
	"encoding/binary"
	"errors"
	"testing"
)

// int32Codec is a minimal Codec used only to exercise the generic
// container; real records use pkg/dictionary's WordEntry/NameEntry codecs.
type int32Codec struct{}

func (int32Codec) Marshal(v int32) ([]byte, error) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	return b[:], nil
}

func (int32Codec) Unmarshal(b []byte) (int32, error) {
	if len(b) != 4 {
		return 0, ErrDecode
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

func TestEncodeThenDecodeIsIdentical(t *testing.T) {
	vals := []int32{1, 4, -5}
	encoded, err := BuildAndEncodeTo(vals, int32Codec{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	arr, n, err := TryDecode(encoded, int32Codec{})
	if err != nil {
		t.Fatal(err)
	}
	if arr.Len() != len(vals) {
		t.Fatalf("len = %d, want %d", arr.Len(), len(vals))
	}
	for i, want := range vals {
		got, err := arr.Get(i)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("get(%d) = %d, want %d", i, got, want)
		}
	}
	if n != len(encoded) {
		t.Errorf("consumed %d bytes, want %d", n, len(encoded))
	}
}

func TestGetOutOfRange(t *testing.T) {
	encoded, _ := BuildAndEncodeTo([]int32{1}, int32Codec{}, nil)
	arr, _, err := TryDecode(encoded, int32Codec{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := arr.Get(5); err != ErrOutOfRange {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestEmptyArray(t *testing.T) {
	encoded, err := BuildAndEncodeTo([]int32{}, int32Codec{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	arr, _, err := TryDecode(encoded, int32Codec{})
	if err != nil {
		t.Fatal(err)
	}
	if !arr.IsEmpty() {
		t.Error("expected empty array")
	}
}

func TestTryDecodeRejectsImplausibleCount(t *testing.T) {
	// A varint count near 2^64 with only a few trailing bytes: must be
	// rejected as ErrDecode rather than overflowing into a panicking
	// slice expression.
	var huge [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(huge[:], ^uint64(0))
	source := append(huge[:n], 0, 0, 0, 0)

	_, _, err := TryDecode(source, int32Codec{})
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestTryDecodeRejectsTruncatedOffsetTable(t *testing.T) {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], 3)
	source := append(buf[:n], 0, 0, 0, 0)

	_, _, err := TryDecode(source, int32Codec{})
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}
