package aggregator

import (
	"testing"

	"github.com/yomikiri-go/engine/pkg/dictindex"
	"github.com/yomikiri-go/engine/pkg/dictionary"
	"github.com/yomikiri-go/engine/pkg/pos"
	"github.com/yomikiri-go/engine/pkg/token"
)

func buildTestView(t *testing.T, words []dictionary.WordEntry, termItems []dictindex.Item) *dictionary.View {
	t.Helper()
	mb := dictionary.NewMeaningIndexBuilder()
	for i := range words {
		mb.AddWordEntry(uint32(i), &words[i])
	}
	encoded, err := dictionary.BuildAndEncodeTo(termItems, mb.Items(), words, nil, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	view, err := dictionary.TryDecode(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return view
}

// TestAggregatePrefixThenSuffix exercises spec.md's scenario 6: prefix
// attachment (お+母) followed by suffix attachment (お母+さん) fusing into
// one Noun token within the same sweep index, leaving だ separate.
func TestAggregatePrefixThenSuffix(t *testing.T) {
	words := []dictionary.WordEntry{
		{ID: 0, Kanjis: []dictionary.Kanji{{Text: "お母"}},
			Senses: []dictionary.GroupedSense{{PartsOfSpeech: []pos.POS{pos.New(pos.Noun)}, Meanings: []string{"mother (honorific stem)"}}}},
		{ID: 1, Kanjis: []dictionary.Kanji{{Text: "お母さん"}},
			Senses: []dictionary.GroupedSense{{PartsOfSpeech: []pos.POS{pos.New(pos.Noun)}, Meanings: []string{"mother"}}}},
	}
	termItems := []dictindex.Item{
		{Key: "お母", Entries: []dictindex.EntryIdx{{Kind: dictindex.Word, Idx: 0}}},
		{Key: "お母さん", Entries: []dictindex.EntryIdx{{Kind: dictindex.Word, Idx: 1}}},
	}
	view := buildTestView(t, words, termItems)

	leaves := []token.Token{
		{Surface: "お", Start: 0, POS: pos.New(pos.Prefix), Base: "お", Reading: "オ"},
		{Surface: "母", Start: 1, POS: pos.NewSub(pos.Noun, pos.NounCommon), Base: "母", Reading: "ハハ"},
		{Surface: "さん", Start: 2, POS: pos.NewSub(pos.Suffix, pos.SuffixNounLike), Base: "さん", Reading: "サン"},
		{Surface: "だ", Start: 4, POS: pos.New(pos.AuxVerb), Base: "だ", Reading: "ダ"},
	}

	out, err := Aggregate(view, leaves)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2: %+v", len(out), out)
	}
	if out[0].Surface != "お母さん" || out[0].POS.Family != pos.Noun {
		t.Errorf("out[0] = %+v, want surface お母さん, family Noun", out[0])
	}
	if out[1].Surface != "だ" {
		t.Errorf("out[1].Surface = %q, want だ", out[1].Surface)
	}
	if len(out[0].Children) != 3 {
		t.Fatalf("out[0].Children = %d tokens, want 3", len(out[0].Children))
	}
	var concat string
	for _, c := range out[0].Children {
		concat += c.Surface
	}
	if concat != out[0].Surface {
		t.Errorf("children surfaces concat to %q, want %q", concat, out[0].Surface)
	}
}

// TestJoinSuffixGaruException exercises §4.6.5's unconditional がる fusion:
// even with an empty dictionary, a suffix whose base is がる always merges.
func TestJoinSuffixGaruException(t *testing.T) {
	view := buildTestView(t, nil, nil)

	tokens := []token.Token{
		{Surface: "羨まし", POS: pos.NewSub(pos.Adjective, pos.AdjectiveGeneral), Base: "羨ましい"},
		{Surface: "がっ", POS: pos.NewSub(pos.Suffix, pos.SuffixVerbLike), Base: "がる"},
	}

	out, merged, err := joinSuffix(view, tokens, 0)
	if err != nil {
		t.Fatalf("joinSuffix: %v", err)
	}
	if !merged {
		t.Fatal("expected がる exception to merge unconditionally")
	}
	if out[0].POS.Family != pos.Verb {
		t.Errorf("POS family = %v, want Verb", out[0].POS.Family)
	}
	if out[0].Surface != "羨ましがっ" {
		t.Errorf("Surface = %q, want 羨ましがっ", out[0].Surface)
	}
	if out[0].Base != "羨ましい" {
		t.Errorf("Base = %q, want 羨ましい (FirstBase strategy)", out[0].Base)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	view := buildTestView(t, nil, nil)
	out, err := Aggregate(view, nil)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("len(out) = %d, want 0", len(out))
	}
}

func TestManualPatchWatashiReading(t *testing.T) {
	view := buildTestView(t, nil, nil)
	leaves := []token.Token{
		{Surface: "私", Start: 0, POS: pos.NewSub(pos.Noun, pos.NounCommon), Base: "私", Reading: "ワタクシ"},
	}
	out, err := Aggregate(view, leaves)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if out[0].Reading != "ワタシ" {
		t.Errorf("Reading = %q, want ワタシ", out[0].Reading)
	}
}
