package ranking

import (
	"testing"

	"github.com/yomikiri-go/engine/pkg/dictindex"
	"github.com/yomikiri-go/engine/pkg/dictionary"
	"github.com/yomikiri-go/engine/pkg/pos"
	"github.com/yomikiri-go/engine/pkg/token"
)

func buildView(t *testing.T, words []dictionary.WordEntry, names []dictionary.NameEntry, termItems []dictindex.Item) *dictionary.View {
	t.Helper()
	mb := dictionary.NewMeaningIndexBuilder()
	for i := range words {
		mb.AddWordEntry(uint32(i), &words[i])
	}
	encoded, err := dictionary.BuildAndEncodeTo(termItems, mb.Items(), words, names, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	view, err := dictionary.TryDecode(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return view
}

// TestSearchForTokenFromBaseBeforeSurface: a token whose surface and base
// differ matches two distinct word entries; the base-derived candidate
// must sort first regardless of priority.
func TestSearchForTokenFromBaseBeforeSurface(t *testing.T) {
	words := []dictionary.WordEntry{
		{ID: 0, Kanjis: []dictionary.Kanji{{Text: "食べた"}},
			Senses:   []dictionary.GroupedSense{{PartsOfSpeech: []pos.POS{pos.New(pos.Verb)}, Meanings: []string{"ate (surface form, oddly indexed)"}}},
			Priority: 500},
		{ID: 1, Kanjis: []dictionary.Kanji{{Text: "食べる"}},
			Senses: []dictionary.GroupedSense{{PartsOfSpeech: []pos.POS{pos.New(pos.Verb)}, Meanings: []string{"to eat"}}},
			Priority: 0},
	}
	termItems := []dictindex.Item{
		{Key: "食べた", Entries: []dictindex.EntryIdx{{Kind: dictindex.Word, Idx: 0}}},
		{Key: "食べる", Entries: []dictindex.EntryIdx{{Kind: dictindex.Word, Idx: 1}}},
	}
	view := buildView(t, words, nil, termItems)

	tok := token.Token{Surface: "食べた", Base: "食べる", POS: pos.NewSub(pos.Verb, pos.SubUnknown)}
	results, err := SearchForToken(view, tok)
	if err != nil {
		t.Fatalf("SearchForToken: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Word == nil || results[0].Word.ID != 1 {
		t.Errorf("results[0] = %+v, want from-base entry (id 1) first", results[0])
	}
	if results[1].Word == nil || results[1].Word.ID != 0 {
		t.Errorf("results[1] = %+v, want surface-only entry (id 0) second", results[1])
	}
}

// TestSearchForTokenRarityOrdering: among same-POS, same-from_base
// entries, Normal rarity sorts before Rare even when the Rare entry has
// the higher priority.
func TestSearchForTokenRarityOrdering(t *testing.T) {
	words := []dictionary.WordEntry{
		{ID: 0, Kanjis: []dictionary.Kanji{{Text: "事", Rarity: dictionary.RarityRare}},
			Senses:   []dictionary.GroupedSense{{PartsOfSpeech: []pos.POS{pos.New(pos.Noun)}, Meanings: []string{"thing (rare form)"}}},
			Priority: 1000},
		{ID: 1, Kanjis: []dictionary.Kanji{{Text: "こと", Rarity: dictionary.RarityNormal}},
			Senses:   []dictionary.GroupedSense{{PartsOfSpeech: []pos.POS{pos.New(pos.Noun)}, Meanings: []string{"thing"}}},
			Priority: 0},
	}
	termItems := []dictindex.Item{
		{Key: "事", Entries: []dictindex.EntryIdx{{Kind: dictindex.Word, Idx: 0}}},
		{Key: "こと", Entries: []dictindex.EntryIdx{{Kind: dictindex.Word, Idx: 1}}},
	}
	buildView(t, words, nil, termItems)

	tok := token.Token{Surface: "mixed", Base: "mixed", POS: pos.New(pos.Noun)}
	candidates := []candidate{
		{meta: dictionary.EntryMeta{Word: &words[0]}, rarity: dictionary.RarityRare, fromBase: true},
		{meta: dictionary.EntryMeta{Word: &words[1]}, rarity: dictionary.RarityNormal, fromBase: true},
	}
	sortCandidates(candidates, tok.POS, false)
	if candidates[0].meta.Word.ID != 1 {
		t.Errorf("expected normal-rarity entry (id 1) first despite lower priority, got %+v", candidates[0])
	}
}

// TestSearchForTokenSearchOnlySinksLast: a Search-rarity entry always
// sorts after every non-search entry, even one found only via surface.
func TestSearchForTokenSearchOnlySinksLast(t *testing.T) {
	tok := token.Token{POS: pos.New(pos.Noun)}
	searchWord := dictionary.WordEntry{ID: 0, Kanjis: []dictionary.Kanji{{Text: "x", Rarity: dictionary.RaritySearch}}}
	normalWord := dictionary.WordEntry{ID: 1, Kanjis: []dictionary.Kanji{{Text: "y", Rarity: dictionary.RarityNormal}}}
	candidates := []candidate{
		{meta: dictionary.EntryMeta{Word: &searchWord}, rarity: dictionary.RaritySearch, fromBase: true},
		{meta: dictionary.EntryMeta{Word: &normalWord}, rarity: dictionary.RarityNormal, fromBase: false},
	}
	sortCandidates(candidates, tok.POS, false)
	if candidates[0].meta.Word.ID != 1 || candidates[1].meta.Word.ID != 0 {
		t.Errorf("search-only entry did not sink last: %+v", candidates)
	}
}

// TestSearchForTokenProperNounPrefersName verifies that for a proper-noun
// Noun token, a Name entry sorts before a Word entry even when both
// otherwise tie.
func TestSearchForTokenProperNounPrefersName(t *testing.T) {
	tok := token.Token{POS: pos.NewSub(pos.Noun, pos.NounProper)}
	word := dictionary.WordEntry{ID: 0, Kanjis: []dictionary.Kanji{{Text: "山田"}},
		Senses: []dictionary.GroupedSense{{PartsOfSpeech: []pos.POS{pos.New(pos.Noun)}}}}
	name := dictionary.NameEntry{Kanji: "山田"}
	candidates := []candidate{
		{meta: dictionary.EntryMeta{Word: &word}, rarity: dictionary.RarityNormal, fromBase: true},
		{meta: dictionary.EntryMeta{Name: &name}, rarity: dictionary.RarityNormal, fromBase: true},
	}
	sortCandidates(candidates, tok.POS, true)
	if candidates[0].meta.Name == nil {
		t.Errorf("expected Name entry first for proper-noun token, got %+v", candidates[0])
	}
}
