// Package jagged implements an append-only, index-addressable container of
// variable-sized serialised records (spec.md §4.1), decodable from a byte
// slice without copying the payload. Grounded on
// original_source/crates/yomikiri-dictionary/src/jagged_array.rs, with the
// Rust `postcard` record codec replaced by an explicit Codec type
// parameter (Go has no trait object bound to a generic the way Rust's
// `Deserialize<'a>` does) and the varint count replaced by
// encoding/binary's Uvarint, the idiomatic Go LEB128 implementation.
package jagged

import (
	"encoding/binary"
	"fmt"
)

// ErrOutOfRange is returned by Get when index >= the array's length,
// corresponding to spec §7's OutOfRange error kind.
var ErrOutOfRange = fmt.Errorf("jagged: index out of range")

// Codec knows how to turn a T into bytes and back. Implementations must be
// stable: reordering fields in a later version is a breaking change to the
// on-disk format (spec §4.1).
type Codec[T any] interface {
	Marshal(v T) ([]byte, error)
	Unmarshal(b []byte) (T, error)
}

// Array is a decoded (but not materialised) view over a contiguous region
// of bytes holding cnt variable-length records preceded by an offset
// table. It borrows its backing slice; Get decodes one record at a time.
type Array[T any] struct {
	cnt   int
	data  []byte // offset table (cnt+1 little-endian u32) followed by payload
	codec Codec[T]
}

// Len returns the number of records.
func (a *Array[T]) Len() int { return a.cnt }

// IsEmpty reports whether the array holds zero records.
func (a *Array[T]) IsEmpty() bool { return a.cnt == 0 }

func (a *Array[T]) itemsStart() int { return a.cnt*4 + 4 }

// itemPosition returns the [start, end) byte range (relative to a.data)
// of record i. index is assumed to already be range-checked.
func (a *Array[T]) itemPosition(index int) (int, int) {
	at := index * 4
	start := int(binary.LittleEndian.Uint32(a.data[at : at+4]))
	end := int(binary.LittleEndian.Uint32(a.data[at+4 : at+8]))
	base := a.itemsStart()
	return base + start, base + end
}

// Get decodes and returns the record at index.
func (a *Array[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= a.cnt {
		return zero, ErrOutOfRange
	}
	start, end := a.itemPosition(index)
	if start < 0 || end > len(a.data) || start > end {
		return zero, fmt.Errorf("jagged: %w: corrupt offset table", ErrDecode)
	}
	return a.codec.Unmarshal(a.data[start:end])
}

// All returns every record in order, materialising the whole array; the
// lookup path does not call it and always uses Get.
func (a *Array[T]) All() ([]T, error) {
	out := make([]T, 0, a.cnt)
	for i := 0; i < a.cnt; i++ {
		v, err := a.Get(i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ErrDecode corresponds to spec §7's DecodeError: the binary artefact is
// truncated or a section-length prefix is inconsistent with the remaining
// bytes.
var ErrDecode = fmt.Errorf("jagged: decode error")

// BuildAndEncodeTo serialises items into writer in the jagged-array layout:
// varint count, (count+1) little-endian u32 offsets, then the concatenated
// record bytes.
func BuildAndEncodeTo[T any](items []T, codec Codec[T], writer []byte) ([]byte, error) {
	var cntBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(cntBuf[:], uint64(len(items)))
	writer = append(writer, cntBuf[:n]...)

	var offsetBuf [4]byte
	itemBytes := make([]byte, 0, 8*len(items))
	for _, item := range items {
		binary.LittleEndian.PutUint32(offsetBuf[:], uint32(len(itemBytes)))
		writer = append(writer, offsetBuf[:]...)
		b, err := codec.Marshal(item)
		if err != nil {
			return nil, err
		}
		itemBytes = append(itemBytes, b...)
	}
	binary.LittleEndian.PutUint32(offsetBuf[:], uint32(len(itemBytes)))
	writer = append(writer, offsetBuf[:]...)
	writer = append(writer, itemBytes...)
	return writer, nil
}

// TryDecode reads a jagged array from the front of source, returning the
// array (borrowing source's backing storage) and the number of bytes
// consumed, so callers can continue decoding subsequent sections.
func TryDecode[T any](source []byte, codec Codec[T]) (*Array[T], int, error) {
	cnt64, n := binary.Uvarint(source)
	if n <= 0 {
		return nil, 0, fmt.Errorf("jagged: %w: malformed count varint", ErrDecode)
	}
	rest := source[n:]

	// Bound cnt64 against len(rest) in uint64 space before converting to
	// int or using it in arithmetic: a crafted varint near 2^64 would
	// otherwise overflow int(cnt64) to negative, or overflow (cnt+1)*4,
	// letting a corrupt/adversarial count slip past the table-length
	// check below and panic on the slice expression that follows.
	if cnt64 > uint64(len(rest)) {
		return nil, 0, fmt.Errorf("jagged: %w: implausible record count", ErrDecode)
	}
	cnt := int(cnt64)

	if uint64(len(rest)) < (cnt64+1)*4 {
		return nil, 0, fmt.Errorf("jagged: %w: truncated offset table", ErrDecode)
	}
	itemsLen := int(binary.LittleEndian.Uint32(rest[cnt*4 : (cnt+1)*4]))
	endIdx := (cnt+1)*4 + itemsLen
	if endIdx > len(rest) {
		return nil, 0, fmt.Errorf("jagged: %w: truncated payload", ErrDecode)
	}

	arr := &Array[T]{
		cnt:   cnt,
		data:  rest[0:endIdx],
		codec: codec,
	}
	return arr, n + endIdx, nil
}
