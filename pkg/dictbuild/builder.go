package dictbuild

import (
	"fmt"
	"io"
	"sort"

	"github.com/yomikiri-go/engine/pkg/dictindex"
	"github.com/yomikiri-go/engine/pkg/dictionary"
)

// The three-state builder below mirrors
// original_source/crates/yomikiri-dictionary/src/dictionary.rs's
// DictionaryWriter<STATE> typestate: Go has no generic-over-phantom-type
// sugar for this, so each phase is its own named type and the transition
// methods return the next phase's type, making "read JMnedict before
// JMdict" (or writing before advancing through both read phases) a compile
// error just as the Rust version makes it a type error. A phase may be
// advanced without reading any document.

// NewBuilder starts the builder in its JMdict-reading phase.
func NewBuilder() *JMdictPhase { return &JMdictPhase{} }

// JMdictPhase accepts zero or more JMdict documents.
type JMdictPhase struct {
	words []dictionary.WordEntry
}

// ReadJMdict parses one JMdict XML document and appends its entries,
// skipping ids in the JMnedict-reserved range [5000000, 6000000)
// (dictionary.rs::read_jmdict).
func (p *JMdictPhase) ReadJMdict(r io.Reader) error {
	entries, err := ParseJMdict(r)
	if err != nil {
		return fmt.Errorf("dictbuild: parse jmdict: %w", err)
	}
	for _, e := range entries {
		if e.Seq >= jmnedictIDRangeStart && e.Seq < jmnedictIDRangeEnd {
			continue
		}
		p.words = append(p.words, BuildWordEntry(e))
	}
	return nil
}

// Next advances to the JMnedict-reading phase.
func (p *JMdictPhase) Next() *JMnedictPhase {
	return &JMnedictPhase{words: p.words}
}

// JMnedictPhase accepts zero or more JMnedict documents.
type JMnedictPhase struct {
	words []dictionary.WordEntry
	names []dictionary.NameEntry
}

// ReadJMnedict parses one JMnedict XML document, partitioning each entry's
// translations into NameEntry fragments and re-routed WordEntry records
// (dictionary.rs::read_jmnedict).
func (p *JMnedictPhase) ReadJMnedict(r io.Reader) error {
	entries, err := ParseJMnedict(r)
	if err != nil {
		return fmt.Errorf("dictbuild: parse jmnedict: %w", err)
	}

	fragmentsByKanji := make(map[string][]nameFragment)
	for _, e := range entries {
		frags, words := BuildEntries(e)
		p.words = append(p.words, words...)
		for kanji, fs := range frags {
			fragmentsByKanji[kanji] = append(fragmentsByKanji[kanji], fs...)
		}
	}

	kanjis := make([]string, 0, len(fragmentsByKanji))
	for k := range fragmentsByKanji {
		kanjis = append(kanjis, k)
	}
	sort.Strings(kanjis)
	for _, k := range kanjis {
		p.names = append(p.names, GroupNameFragments(k, fragmentsByKanji[k]))
	}
	return nil
}

// Next advances to the final write phase.
func (p *JMnedictPhase) Next() *FinalPhase {
	return &FinalPhase{words: p.words, names: p.names}
}

// FinalPhase holds every accumulated entry and writes the artefact.
type FinalPhase struct {
	words []dictionary.WordEntry
	names []dictionary.NameEntry
}

// Write builds the term index and meaning index from the accumulated
// entries and serialises the complete artefact (dictionary.rs::write /
// build_and_encode_to).
func (p *FinalPhase) Write(writer []byte) ([]byte, error) {
	termItems := CreateSortedTermIndexes(p.words, p.names)

	mb := dictionary.NewMeaningIndexBuilder()
	for i := range p.words {
		mb.AddWordEntry(uint32(i), &p.words[i])
	}
	for i := range p.names {
		mb.AddNameEntry(uint32(i), &p.names[i])
	}

	return dictionary.BuildAndEncodeTo(termItems, mb.Items(), p.words, p.names, writer)
}

// CreateSortedTermIndexes builds the term -> EntryIdx-list mapping used by
// the term index: word entries are keyed by every kanji form and reading,
// name entries by their kanji field only, matching
// index.rs::create_sorted_term_indexes.
func CreateSortedTermIndexes(words []dictionary.WordEntry, names []dictionary.NameEntry) []dictindex.Item {
	postings := make(map[string][]dictindex.EntryIdx)

	for i, w := range words {
		for _, term := range w.Terms() {
			postings[term] = append(postings[term], dictindex.EntryIdx{Kind: dictindex.Word, Idx: uint32(i)})
		}
	}
	for i, n := range names {
		postings[n.Kanji] = append(postings[n.Kanji], dictindex.EntryIdx{Kind: dictindex.Name, Idx: uint32(i)})
	}

	keys := make([]string, 0, len(postings))
	for k := range postings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make([]dictindex.Item, len(keys))
	for i, k := range keys {
		entries := postings[k]
		sort.Slice(entries, func(a, b int) bool { return entries[a].Less(entries[b]) })
		items[i] = dictindex.Item{Key: k, Entries: entries}
	}
	return items
}
