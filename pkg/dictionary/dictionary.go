package dictionary

import (
	"fmt"

	"github.com/yomikiri-go/engine/pkg/dictindex"
	"github.com/yomikiri-go/engine/pkg/jagged"
)

// View is the fully decoded, read-only dictionary: the term index plus the
// two entry arrays it points into. Every method borrows from the byte
// slice View was decoded from; View holds no owned copies of entry data
// (spec.md §4.3, dictionary.rs::DictionaryView).
type View struct {
	termIndex    *dictindex.Map
	meaningIndex *dictindex.Map
	entries      *jagged.Array[WordEntry]
	nameEntries  *jagged.Array[NameEntry]
}

// TryDecode parses a complete dictionary artefact: term index, meaning
// index, word entries, then name entries, in that fixed order
// (dictionary.rs::try_decode; the meaning index is appended as a fourth
// section here since the reference format stores it as a sibling file).
func TryDecode(source []byte) (*View, error) {
	termIndex, n, err := dictindex.TryDecode(source)
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	rest := source[n:]

	meaningIndex, n, err := dictindex.TryDecode(rest)
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	rest = rest[n:]

	entries, n, err := jagged.TryDecode(rest, WordEntryCodec{})
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	rest = rest[n:]

	nameEntries, _, err := jagged.TryDecode(rest, NameEntryCodec{})
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}

	return &View{termIndex: termIndex, meaningIndex: meaningIndex, entries: entries, nameEntries: nameEntries}, nil
}

// BuildAndEncodeTo serialises a complete dictionary artefact in the same
// fixed section order TryDecode expects.
func BuildAndEncodeTo(termIndexItems, meaningIndexItems []dictindex.Item, words []WordEntry, names []NameEntry, writer []byte) ([]byte, error) {
	writer, err := dictindex.BuildAndEncodeTo(termIndexItems, writer)
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	writer, err = dictindex.BuildAndEncodeTo(meaningIndexItems, writer)
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	writer, err = jagged.BuildAndEncodeTo(words, WordEntryCodec{}, writer)
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	writer, err = jagged.BuildAndEncodeTo(names, NameEntryCodec{}, writer)
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	return writer, nil
}

// GetWordEntry fetches a decoded WordEntry by its dense array index.
func (v *View) GetWordEntry(idx uint32) (WordEntry, error) {
	e, err := v.entries.Get(int(idx))
	if err != nil {
		return WordEntry{}, fmt.Errorf("dictionary: word entry %d: %w", idx, err)
	}
	return e, nil
}

// GetNameEntry fetches a decoded NameEntry by its dense array index.
func (v *View) GetNameEntry(idx uint32) (NameEntry, error) {
	e, err := v.nameEntries.Get(int(idx))
	if err != nil {
		return NameEntry{}, fmt.Errorf("dictionary: name entry %d: %w", idx, err)
	}
	return e, nil
}

// EntryMeta pairs a resolved entry with the EntryIdx it came from, so
// callers (pkg/ranking) can tell Word and Name results apart without a
// type switch on every access.
type EntryMeta struct {
	Idx  dictindex.EntryIdx
	Word *WordEntry
	Name *NameEntry
}

// GetEntries resolves every EntryIdx the term index returned for a term
// into its decoded Word or Name entry.
func (v *View) GetEntries(idxs []dictindex.EntryIdx) ([]EntryMeta, error) {
	out := make([]EntryMeta, 0, len(idxs))
	for _, idx := range idxs {
		switch idx.Kind {
		case dictindex.Word:
			e, err := v.GetWordEntry(idx.Idx)
			if err != nil {
				return nil, err
			}
			out = append(out, EntryMeta{Idx: idx, Word: &e})
		case dictindex.Name:
			e, err := v.GetNameEntry(idx.Idx)
			if err != nil {
				return nil, err
			}
			out = append(out, EntryMeta{Idx: idx, Name: &e})
		}
	}
	return out, nil
}

// Search looks up term in the term index and resolves every hit.
func (v *View) Search(term string) ([]EntryMeta, error) {
	idxs, err := v.termIndex.Get(term)
	if err != nil {
		return nil, fmt.Errorf("dictionary: search %q: %w", term, err)
	}
	return v.GetEntries(idxs)
}

// Contains reports whether term is present in the term index, regardless
// of what part of speech its entries carry (pkg/aggregator's prefix,
// pre-noun, and suffix attachment rules only need existence, not POS).
func (v *View) Contains(term string) bool {
	return v.termIndex.ContainsKey(term)
}

// HasStartsWithExcluding reports whether the index holds any term that
// strictly extends prefix, used by the tokenizer/aggregator to decide
// whether extending a candidate compound is still worth trying.
func (v *View) HasStartsWithExcluding(prefix string) (bool, error) {
	return v.termIndex.HasStartsWithExcluding(prefix)
}
