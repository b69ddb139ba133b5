// Package dictindex implements the ordered term index map (spec.md §4.2):
// an FST-backed map from UTF-8 term to one or more EntryIdx values, with an
// indirection table (jagged array) for multi-valued keys. Grounded on
// original_source/crates/yomikiri-dictionary/src/index.rs.
package dictindex

import "encoding/binary"

// Kind discriminates an EntryIdx between the word-entry and name-entry
// arrays.
type Kind uint8

const (
	Word Kind = iota
	Name
)

// EntryIdx is a tagged union Word(u32) | Name(u32) (spec.md §3). Do not
// leak its bit-packed on-disk form (StoredEntryIdx) past this package
// boundary; construct and inspect it only through Kind/Idx.
type EntryIdx struct {
	Kind Kind
	Idx  uint32
}

// Less orders EntryIdx the way the builder's indirection lists are stored:
// Word before Name, then ascending index (spec §4.2 "Tie-breaking").
func (e EntryIdx) Less(o EntryIdx) bool {
	if e.Kind != o.Kind {
		return e.Kind == Word
	}
	return e.Idx < o.Idx
}

// storedEntryIdx is the 32-bit on-disk encoding: bit 31 is the Word/Name
// discriminator, the low 31 bits are the dense array index.
type storedEntryIdx uint32

const storedNameBit = uint32(1) << 31
const storedIdxMask = storedNameBit - 1

func toStored(e EntryIdx) storedEntryIdx {
	idx := e.Idx & storedIdxMask
	if e.Kind == Name {
		idx |= storedNameBit
	}
	return storedEntryIdx(idx)
}

func fromStored(s storedEntryIdx) EntryIdx {
	v := uint32(s)
	idx := v & storedIdxMask
	if v&storedNameBit != 0 {
		return EntryIdx{Kind: Name, Idx: idx}
	}
	return EntryIdx{Kind: Word, Idx: idx}
}

// storedListCodec implements jagged.Codec[[]storedEntryIdx] for the
// indirection table.
type storedListCodec struct{}

func (storedListCodec) Marshal(v []storedEntryIdx) ([]byte, error) {
	out := make([]byte, 4*len(v))
	for i, s := range v {
		binary.LittleEndian.PutUint32(out[i*4:i*4+4], uint32(s))
	}
	return out, nil
}

func (storedListCodec) Unmarshal(b []byte) ([]storedEntryIdx, error) {
	if len(b)%4 != 0 {
		return nil, ErrMalformedPointerList
	}
	out := make([]storedEntryIdx, len(b)/4)
	for i := range out {
		out[i] = storedEntryIdx(binary.LittleEndian.Uint32(b[i*4 : i*4+4]))
	}
	return out, nil
}
