package dictionary

import (
	"sort"
	"strings"
	"unicode"

	"github.com/yomikiri-go/engine/pkg/dictindex"
	"golang.org/x/text/unicode/norm"
)

// GenerateMeaningIndexKeys lowercases text, decomposes it via NFKD (so a
// precomposed letter+accent code point like é splits into its base letter
// plus a combining mark), strips combining diacritical marks
// (U+0300-U+036F), and splits on runs of non-alphanumeric characters,
// exactly mirroring meaning.rs::generate_meaning_index_keys /
// normalize_latin_basic_form.
func GenerateMeaningIndexKeys(text string) []string {
	lower := strings.ToLower(text)
	normalised := norm.NFKD.String(lower)

	var stripped strings.Builder
	stripped.Grow(len(normalised))
	for _, r := range normalised {
		if r >= 0x0300 && r <= 0x036F {
			continue
		}
		stripped.WriteRune(r)
	}

	var keys []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			keys = append(keys, cur.String())
			cur.Reset()
		}
	}
	for _, r := range stripped.String() {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cur.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return keys
}

// MeaningIdx is a tagged reference into either the word or name entry
// array, used as the meaning-search index's posting-list value.
type MeaningIdx struct {
	Kind dictindex.Kind
	Idx  uint32
}

// MeaningIndexBuilder accumulates keyword -> posting-list mappings while
// walking every word and name entry once, then sorts and hands them to
// dictindex.BuildAndEncodeTo (meaning.rs::MeaningIndexBuilder).
type MeaningIndexBuilder struct {
	postings map[string][]MeaningIdx
}

// NewMeaningIndexBuilder returns an empty builder.
func NewMeaningIndexBuilder() *MeaningIndexBuilder {
	return &MeaningIndexBuilder{postings: make(map[string][]MeaningIdx)}
}

// AddWordEntry indexes every meaning gloss of e under idx.
func (b *MeaningIndexBuilder) AddWordEntry(idx uint32, e *WordEntry) {
	for _, sense := range e.Senses {
		for _, meaning := range sense.Meanings {
			b.add(meaning, MeaningIdx{Kind: dictindex.Word, Idx: idx})
		}
	}
}

// AddNameEntry indexes every reading of e under idx (JMnedict entries have
// no glosses; their "meaning" is the reading itself, per name.rs).
func (b *MeaningIndexBuilder) AddNameEntry(idx uint32, e *NameEntry) {
	for _, g := range e.Groups {
		for _, item := range g.Items {
			b.add(item.Reading, MeaningIdx{Kind: dictindex.Name, Idx: idx})
		}
	}
}

func (b *MeaningIndexBuilder) add(text string, idx MeaningIdx) {
	for _, key := range GenerateMeaningIndexKeys(text) {
		b.postings[key] = append(b.postings[key], idx)
	}
}

// Items sorts keys lexicographically and returns them as dictindex.Items,
// ready for dictindex.BuildAndEncodeTo / dictionary.BuildAndEncodeTo.
func (b *MeaningIndexBuilder) Items() []dictindex.Item {
	keys := make([]string, 0, len(b.postings))
	for k := range b.postings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make([]dictindex.Item, len(keys))
	for i, k := range keys {
		entries := make([]dictindex.EntryIdx, len(b.postings[k]))
		for j, m := range b.postings[k] {
			entries[j] = dictindex.EntryIdx{Kind: m.Kind, Idx: m.Idx}
		}
		items[i] = dictindex.Item{Key: k, Entries: entries}
	}
	return items
}

// SearchMeaning looks up every keyword derived from query and returns the
// intersection of their posting lists: entries whose glosses (or, for
// names, readings) contain ALL of the query's keywords
// (meaning.rs::DictionaryView::search_meaning).
func (v *View) SearchMeaning(query string) ([]EntryMeta, error) {
	keys := GenerateMeaningIndexKeys(query)
	if len(keys) == 0 {
		return nil, nil
	}

	lists := make([][]dictindex.EntryIdx, len(keys))
	for i, k := range keys {
		idxs, err := v.meaningIndex.Get(k)
		if err != nil {
			return nil, err
		}
		lists[i] = idxs
	}

	sort.Slice(lists, func(i, j int) bool { return len(lists[i]) < len(lists[j]) })
	if len(lists[0]) == 0 {
		return nil, nil
	}

	seen := make(map[dictindex.EntryIdx]bool, len(lists[0]))
	for _, idx := range lists[0] {
		seen[idx] = true
	}
	for _, list := range lists[1:] {
		next := make(map[dictindex.EntryIdx]bool, len(seen))
		for _, idx := range list {
			if seen[idx] {
				next[idx] = true
			}
		}
		seen = next
		if len(seen) == 0 {
			return nil, nil
		}
	}

	matched := make([]dictindex.EntryIdx, 0, len(seen))
	for idx := range seen {
		matched = append(matched, idx)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Less(matched[j]) })
	return v.GetEntries(matched)
}
