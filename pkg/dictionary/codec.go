package dictionary

import (
	"encoding/binary"
	"fmt"

	"github.com/yomikiri-go/engine/pkg/jagged"
	"github.com/yomikiri-go/engine/pkg/pos"
)

// WordEntryCodec implements jagged.Codec[WordEntry]. The wire format is a
// flat, hand-rolled tagged encoding (varint-prefixed strings and counts):
// no third-party library in the reference pack offers a compact,
// schema-stable binary struct codec (the pack's serialization libraries
// are JSON/XML-oriented, unsuitable for a memory-mapped zero-copy record),
// so this single encode/decode pair stands in for Rust's postcard derive.
type WordEntryCodec struct{}

func (WordEntryCodec) Marshal(e WordEntry) ([]byte, error) {
	var b []byte
	b = appendUvarint(b, uint64(e.ID))
	b = appendUvarint(b, uint64(e.Priority))

	b = appendUvarint(b, uint64(len(e.Kanjis)))
	for _, k := range e.Kanjis {
		b = appendString(b, k.Text)
		b = append(b, byte(k.Rarity))
	}

	b = appendUvarint(b, uint64(len(e.Readings)))
	for _, r := range e.Readings {
		b = appendString(b, r.Text)
		b = append(b, byte(r.Rarity))
		b = appendBool(b, r.NoKanji)
		b = appendUvarint(b, uint64(len(r.AppliesTo)))
		for _, f := range r.AppliesTo {
			b = appendString(b, f)
		}
	}

	b = appendUvarint(b, uint64(len(e.Senses)))
	for _, s := range e.Senses {
		b = appendUvarint(b, uint64(len(s.PartsOfSpeech)))
		for _, p := range s.PartsOfSpeech {
			b = append(b, p.Encode())
		}
		b = appendUvarint(b, uint64(len(s.Meanings)))
		for _, m := range s.Meanings {
			b = appendString(b, m)
		}
	}
	return b, nil
}

func (WordEntryCodec) Unmarshal(data []byte) (WordEntry, error) {
	var e WordEntry
	r := byteReader{data: data}

	id, err := r.uvarint()
	if err != nil {
		return e, err
	}
	e.ID = uint32(id)

	priority, err := r.uvarint()
	if err != nil {
		return e, err
	}
	e.Priority = uint16(priority)

	kanjiCount, err := r.uvarint()
	if err != nil {
		return e, err
	}
	e.Kanjis = make([]Kanji, kanjiCount)
	for i := range e.Kanjis {
		text, err := r.string()
		if err != nil {
			return e, err
		}
		rarity, err := r.byte()
		if err != nil {
			return e, err
		}
		e.Kanjis[i] = Kanji{Text: text, Rarity: Rarity(rarity)}
	}

	readingCount, err := r.uvarint()
	if err != nil {
		return e, err
	}
	e.Readings = make([]Reading, readingCount)
	for i := range e.Readings {
		text, err := r.string()
		if err != nil {
			return e, err
		}
		rarity, err := r.byte()
		if err != nil {
			return e, err
		}
		noKanji, err := r.boolean()
		if err != nil {
			return e, err
		}
		appliesCount, err := r.uvarint()
		if err != nil {
			return e, err
		}
		applies := make([]string, appliesCount)
		for j := range applies {
			applies[j], err = r.string()
			if err != nil {
				return e, err
			}
		}
		e.Readings[i] = Reading{Text: text, Rarity: Rarity(rarity), NoKanji: noKanji, AppliesTo: applies}
	}

	senseCount, err := r.uvarint()
	if err != nil {
		return e, err
	}
	e.Senses = make([]GroupedSense, senseCount)
	for i := range e.Senses {
		posCount, err := r.uvarint()
		if err != nil {
			return e, err
		}
		posList := make([]pos.POS, posCount)
		for j := range posList {
			pb, err := r.byte()
			if err != nil {
				return e, err
			}
			posList[j] = pos.Decode(pb)
		}
		meaningCount, err := r.uvarint()
		if err != nil {
			return e, err
		}
		meanings := make([]string, meaningCount)
		for j := range meanings {
			meanings[j], err = r.string()
			if err != nil {
				return e, err
			}
		}
		e.Senses[i] = GroupedSense{PartsOfSpeech: posList, Meanings: meanings}
	}

	if !r.exhausted() {
		return e, fmt.Errorf("dictionary: %w: trailing bytes in word entry record", jagged.ErrDecode)
	}
	return e, nil
}

// NameEntryCodec implements jagged.Codec[NameEntry], same hand-rolled
// scheme as WordEntryCodec.
type NameEntryCodec struct{}

func (NameEntryCodec) Marshal(e NameEntry) ([]byte, error) {
	var b []byte
	b = appendString(b, e.Kanji)
	b = appendUvarint(b, uint64(len(e.Groups)))
	for _, g := range e.Groups {
		b = appendUvarint(b, uint64(len(g.Types)))
		for _, t := range g.Types {
			b = append(b, byte(t))
		}
		b = appendUvarint(b, uint64(len(g.Items)))
		for _, it := range g.Items {
			b = appendUvarint(b, uint64(it.ID))
			b = appendString(b, it.Reading)
		}
	}
	return b, nil
}

func (NameEntryCodec) Unmarshal(data []byte) (NameEntry, error) {
	var e NameEntry
	r := byteReader{data: data}

	kanji, err := r.string()
	if err != nil {
		return e, err
	}
	e.Kanji = kanji

	groupCount, err := r.uvarint()
	if err != nil {
		return e, err
	}
	e.Groups = make([]GroupedNameItem, groupCount)
	for i := range e.Groups {
		typeCount, err := r.uvarint()
		if err != nil {
			return e, err
		}
		types := make([]NameType, typeCount)
		for j := range types {
			tb, err := r.byte()
			if err != nil {
				return e, err
			}
			types[j] = NameType(tb)
		}
		itemCount, err := r.uvarint()
		if err != nil {
			return e, err
		}
		items := make([]NameItem, itemCount)
		for j := range items {
			id, err := r.uvarint()
			if err != nil {
				return e, err
			}
			reading, err := r.string()
			if err != nil {
				return e, err
			}
			items[j] = NameItem{ID: uint32(id), Reading: reading}
		}
		e.Groups[i] = GroupedNameItem{Types: types, Items: items}
	}

	if !r.exhausted() {
		return e, fmt.Errorf("dictionary: %w: trailing bytes in name entry record", jagged.ErrDecode)
	}
	return e, nil
}

func appendUvarint(b []byte, v uint64) []byte {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	return append(b, buf[:n]...)
}

func appendString(b []byte, s string) []byte {
	b = appendUvarint(b, uint64(len(s)))
	return append(b, s...)
}

func appendBool(b []byte, v bool) []byte {
	if v {
		return append(b, 1)
	}
	return append(b, 0)
}

// byteReader is a minimal cursor over a record's bytes, used by both
// codecs' Unmarshal.
type byteReader struct {
	data []byte
	at   int
}

func (r *byteReader) exhausted() bool { return r.at == len(r.data) }

func (r *byteReader) uvarint() (uint64, error) {
	v, n := binary.Uvarint(r.data[r.at:])
	if n <= 0 {
		return 0, fmt.Errorf("dictionary: %w: malformed varint", jagged.ErrDecode)
	}
	r.at += n
	return v, nil
}

func (r *byteReader) byte() (byte, error) {
	if r.at >= len(r.data) {
		return 0, fmt.Errorf("dictionary: %w: truncated record", jagged.ErrDecode)
	}
	b := r.data[r.at]
	r.at++
	return b, nil
}

func (r *byteReader) boolean() (bool, error) {
	b, err := r.byte()
	return b != 0, err
}

func (r *byteReader) string() (string, error) {
	n, err := r.uvarint()
	if err != nil {
		return "", err
	}
	if r.at+int(n) > len(r.data) {
		return "", fmt.Errorf("dictionary: %w: truncated string", jagged.ErrDecode)
	}
	s := string(r.data[r.at : r.at+int(n)])
	r.at += int(n)
	return s, nil
}
