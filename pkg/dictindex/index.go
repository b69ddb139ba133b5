package dictindex

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sort"

	"github.com/blevesearch/vellum"

	"github.com/yomikiri-go/engine/pkg/jagged"
)

// ErrMalformedPointerList corresponds to spec §7's DecodeError for a
// corrupt indirection-table entry.
var ErrMalformedPointerList = errors.New("dictindex: malformed pointer list")

// valuePointerBit marks an FST value as "index into the indirection
// table" rather than a directly-encoded StoredEntryIdx (spec §4.2).
const valuePointerBit = uint64(1) << 63
const valueIdxMask = valuePointerBit - 1

// Map is the read-only, borrowed term index: an FST mapping term bytes to
// either a single StoredEntryIdx or a pointer into the pointers jagged
// array holding a sorted StoredEntryIdx list.
type Map struct {
	fst      *vellum.FST
	pointers *jagged.Array[[]storedEntryIdx]
}

// Get returns every EntryIdx associated with term, or an empty slice on a
// miss. Never fails on a well-formed artefact (spec §4.2).
func (m *Map) Get(term string) ([]EntryIdx, error) {
	value, found, err := m.fst.Get([]byte(term))
	if err != nil {
		return nil, fmt.Errorf("dictindex: fst get: %w", err)
	}
	if !found {
		return nil, nil
	}
	return m.parseValue(value)
}

func (m *Map) parseValue(value uint64) ([]EntryIdx, error) {
	idx := value & valueIdxMask
	if value&valuePointerBit == 0 {
		return []EntryIdx{fromStored(storedEntryIdx(idx))}, nil
	}
	stored, err := m.pointers.Get(int(idx))
	if err != nil {
		return nil, fmt.Errorf("dictindex: pointer table: %w", err)
	}
	out := make([]EntryIdx, len(stored))
	for i, s := range stored {
		out[i] = fromStored(s)
	}
	return out, nil
}

// ContainsKey reports whether term is present in the index.
func (m *Map) ContainsKey(term string) bool {
	ok, err := m.fst.Contains([]byte(term))
	return err == nil && ok
}

// HasStartsWithExcluding reports whether some indexed term strictly starts
// with prefix and is not equal to prefix (spec §4.2). An empty prefix
// yields true iff the index holds at least one key.
func (m *Map) HasStartsWithExcluding(prefix string) (bool, error) {
	if prefix == "" {
		return m.fst.Len() > 0, nil
	}

	start := append([]byte(prefix), 0x00)
	next := []byte(prefix)
	IncrementBytes(&next)

	it, err := m.fst.Iterator(start, next)
	if errors.Is(err, vellum.ErrIteratorDone) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("dictindex: range iterator: %w", err)
	}
	for {
		key, _ := it.Current()
		if !bytes.Equal(key, []byte(prefix)) {
			return true, nil
		}
		if err := it.Next(); err != nil {
			if errors.Is(err, vellum.ErrIteratorDone) {
				return false, nil
			}
			return false, fmt.Errorf("dictindex: range iterator: %w", err)
		}
	}
}

// TryDecode reads the index from the front of source: a little-endian u32
// FST-blob length, the FST blob itself, then the pointers jagged array.
// Returns the map and the number of bytes consumed.
func TryDecode(source []byte) (*Map, int, error) {
	if len(source) < 4 {
		return nil, 0, fmt.Errorf("dictindex: %w: truncated length prefix", jagged.ErrDecode)
	}
	fstLen := int(binary.LittleEndian.Uint32(source[:4]))
	at := 4
	if at+fstLen > len(source) {
		return nil, 0, fmt.Errorf("dictindex: %w: truncated fst blob", jagged.ErrDecode)
	}
	fst, err := vellum.Load(source[at : at+fstLen])
	if err != nil {
		return nil, 0, fmt.Errorf("dictindex: %w: invalid fst: %v", jagged.ErrDecode, err)
	}
	at += fstLen

	pointers, n, err := jagged.TryDecode(source[at:], storedListCodec{})
	if err != nil {
		return nil, 0, err
	}
	at += n

	return &Map{fst: fst, pointers: pointers}, at, nil
}

// Item is one term plus the (already sorted) list of EntryIdx that contain
// it, as consumed by BuildAndEncodeTo.
type Item struct {
	Key     string
	Entries []EntryIdx
}

// BuildAndEncodeTo serialises a sorted-by-key slice of Items into writer.
// Keys with a single entry are packed directly into the FST value; keys
// with multiple entries get a pointer into the indirection table (spec
// §4.2 "Build").
func BuildAndEncodeTo(items []Item, writer []byte) ([]byte, error) {
	if !sort.SliceIsSorted(items, func(i, j int) bool { return items[i].Key < items[j].Key }) {
		return nil, fmt.Errorf("dictindex: build: items must be lexicographically sorted")
	}

	var fstBuf bytes.Buffer
	builder, err := vellum.New(&fstBuf, nil)
	if err != nil {
		return nil, fmt.Errorf("dictindex: build: %w", err)
	}

	var pointerLists [][]storedEntryIdx
	for _, item := range items {
		if len(item.Entries) == 1 {
			stored := toStored(item.Entries[0])
			if err := builder.Insert([]byte(item.Key), uint64(stored)); err != nil {
				return nil, fmt.Errorf("dictindex: build: insert %q: %w", item.Key, err)
			}
			continue
		}
		stored := make([]storedEntryIdx, len(item.Entries))
		for i, e := range item.Entries {
			stored[i] = toStored(e)
		}
		value := valuePointerBit | (uint64(len(pointerLists)) & valueIdxMask)
		if err := builder.Insert([]byte(item.Key), value); err != nil {
			return nil, fmt.Errorf("dictindex: build: insert %q: %w", item.Key, err)
		}
		pointerLists = append(pointerLists, stored)
	}
	if err := builder.Close(); err != nil {
		return nil, fmt.Errorf("dictindex: build: %w", err)
	}

	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(fstBuf.Len()))
	writer = append(writer, lenBuf[:]...)
	writer = append(writer, fstBuf.Bytes()...)

	writer, err = jagged.BuildAndEncodeTo(pointerLists, storedListCodec{}, writer)
	if err != nil {
		return nil, fmt.Errorf("dictindex: build: pointers: %w", err)
	}
	return writer, nil
}

// IncrementBytes mutates b in place to the lexicographically-next byte
// string of the same or greater length: the last non-0xFF byte is
// incremented and all trailing 0xFF bytes are zeroed; if every byte is
// 0xFF, a trailing 0x00 is appended. Ported verbatim from
// index.rs::increment_bytes, including its test table.
func IncrementBytes(b *[]byte) {
	bs := *b
	i := len(bs)
	for i > 0 {
		i--
		if bs[i] == 0xFF {
			bs[i] = 0x00
		} else {
			bs[i]++
			*b = bs
			return
		}
	}
	*b = append(bs, 0x00)
}
