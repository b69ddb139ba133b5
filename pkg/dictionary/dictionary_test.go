package dictionary

import (
	"testing"

	"github.com/yomikiri-go/engine/pkg/dictindex"
	"github.com/yomikiri-go/engine/pkg/pos"
)

func TestWordEntryMainForm(t *testing.T) {
	e := WordEntry{
		Kanjis:   []Kanji{{Text: "食べる", Rarity: RarityNormal}},
		Readings: []Reading{{Text: "たべる", Rarity: RarityNormal}},
	}
	if got := e.MainForm(); got != "食べる" {
		t.Errorf("MainForm() = %q, want 食べる", got)
	}

	rare := WordEntry{
		Kanjis:   []Kanji{{Text: "希", Rarity: RarityRare}},
		Readings: []Reading{{Text: "まれ", Rarity: RarityNormal}},
	}
	if got := rare.MainForm(); got != "まれ" {
		t.Errorf("MainForm() with only rare kanji = %q, want まれ", got)
	}
}

func TestGenerateMeaningIndexKeys(t *testing.T) {
	keys := GenerateMeaningIndexKeys("café, to go!")
	want := []string{"cafe", "to", "go"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestBuildDecodeRoundTrip(t *testing.T) {
	words := []WordEntry{
		{
			ID:       1,
			Kanjis:   []Kanji{{Text: "食べる"}},
			Readings: []Reading{{Text: "たべる"}},
			Senses: []GroupedSense{
				{PartsOfSpeech: []pos.POS{pos.New(pos.Verb)}, Meanings: []string{"to eat"}},
			},
			Priority: 10,
		},
	}
	names := []NameEntry{
		{Kanji: "田中", Groups: []GroupedNameItem{
			{Types: []NameType{NameSurname}, Items: []NameItem{{ID: 0, Reading: "たなか"}}},
		}},
	}

	termItems := []dictindex.Item{
		{Key: "たべる", Entries: []dictindex.EntryIdx{{Kind: dictindex.Word, Idx: 0}}},
		{Key: "田中", Entries: []dictindex.EntryIdx{{Kind: dictindex.Name, Idx: 0}}},
		{Key: "たなか", Entries: []dictindex.EntryIdx{{Kind: dictindex.Name, Idx: 0}}},
		{Key: "食べる", Entries: []dictindex.EntryIdx{{Kind: dictindex.Word, Idx: 0}}},
	}
	// dictindex.BuildAndEncodeTo requires lexicographic key order.
	sortItems(termItems)

	mb := NewMeaningIndexBuilder()
	mb.AddWordEntry(0, &words[0])
	mb.AddNameEntry(0, &names[0])

	encoded, err := BuildAndEncodeTo(termItems, mb.Items(), words, names, nil)
	if err != nil {
		t.Fatal(err)
	}

	view, err := TryDecode(encoded)
	if err != nil {
		t.Fatal(err)
	}

	hits, err := view.Search("食べる")
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0].Word == nil || hits[0].Word.MainForm() != "食べる" {
		t.Fatalf("Search(食べる) = %+v", hits)
	}

	meaningHits, err := view.SearchMeaning("eat")
	if err != nil {
		t.Fatal(err)
	}
	if len(meaningHits) != 1 || meaningHits[0].Word == nil {
		t.Fatalf("SearchMeaning(eat) = %+v", meaningHits)
	}
}

func sortItems(items []dictindex.Item) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && items[j].Key < items[j-1].Key; j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}
