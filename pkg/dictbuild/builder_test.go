package dictbuild

import (
	"strings"
	"testing"

	"github.com/yomikiri-go/engine/pkg/dictionary"
)

const sampleJMdict = `<?xml version="1.0"?>
<JMdict>
<entry>
<ent_seq>1000050</ent_seq>
<k_ele><keb>明白</keb><ke_pri>news1</ke_pri></k_ele>
<r_ele><reb>めいはく</reb></r_ele>
<sense><pos>&adj-na;</pos><gloss>obvious</gloss><gloss>clear</gloss></sense>
</entry>
</JMdict>`

const sampleJMnedict = `<?xml version="1.0"?>
<JMnedict>
<entry>
<ent_seq>5000001</ent_seq>
<k_ele><keb>田中</keb></k_ele>
<r_ele><reb>たなか</reb></r_ele>
<trans><name_type>&surname;</name_type><trans_det>Tanaka</trans_det></trans>
</entry>
<entry>
<ent_seq>5000002</ent_seq>
<r_ele><reb>まこと</reb></r_ele>
<trans><name_type>&masc;</name_type><name_type>&person;</name_type><trans_det>male given name</trans_det></trans>
</entry>
</JMnedict>`

func TestBuildWordEntry(t *testing.T) {
	p := NewBuilder()
	if err := p.ReadJMdict(strings.NewReader(sampleJMdict)); err != nil {
		t.Fatal(err)
	}
	if len(p.words) != 1 {
		t.Fatalf("got %d words, want 1", len(p.words))
	}
	w := p.words[0]
	if w.MainForm() != "明白" {
		t.Errorf("MainForm() = %q, want 明白", w.MainForm())
	}
	if w.Priority == 0 {
		t.Error("expected nonzero priority from news1 tag")
	}
	if len(w.Senses) != 1 || len(w.Senses[0].Meanings) != 2 {
		t.Fatalf("senses = %+v", w.Senses)
	}
}

func TestJMnedictSkippedFromJMdictRange(t *testing.T) {
	const withReserved = `<?xml version="1.0"?>
<JMdict>
<entry><ent_seq>5000001</ent_seq><k_ele><keb>x</keb></k_ele><r_ele><reb>x</reb></r_ele>
<sense><pos>&n;</pos><gloss>should be skipped</gloss></sense></entry>
<entry><ent_seq>1000050</ent_seq><k_ele><keb>y</keb></k_ele><r_ele><reb>y</reb></r_ele>
<sense><pos>&n;</pos><gloss>kept</gloss></sense></entry>
</JMdict>`
	p := NewBuilder()
	if err := p.ReadJMdict(strings.NewReader(withReserved)); err != nil {
		t.Fatal(err)
	}
	if len(p.words) != 1 || p.words[0].ID != 1000050 {
		t.Fatalf("words = %+v, want only id 1000050 kept", p.words)
	}
}

func TestJMnedictPartitioning(t *testing.T) {
	p := NewBuilder().Next()
	if err := p.ReadJMnedict(strings.NewReader(sampleJMnedict)); err != nil {
		t.Fatal(err)
	}
	if len(p.names) != 1 {
		t.Fatalf("got %d name entries, want 1 (surname only)", len(p.names))
	}
	if p.names[0].Kanji != "田中" {
		t.Errorf("name entry kanji = %q, want 田中", p.names[0].Kanji)
	}
	if len(p.words) != 1 {
		t.Fatalf("got %d re-routed word entries, want 1 (gender+person)", len(p.words))
	}
	if p.words[0].Senses[0].Meanings[0] != "male given name" {
		t.Errorf("re-routed word meaning = %v", p.words[0].Senses[0].Meanings)
	}
}

func TestFullBuildAndDecode(t *testing.T) {
	jmdict := NewBuilder()
	if err := jmdict.ReadJMdict(strings.NewReader(sampleJMdict)); err != nil {
		t.Fatal(err)
	}
	jmnedict := jmdict.Next()
	if err := jmnedict.ReadJMnedict(strings.NewReader(sampleJMnedict)); err != nil {
		t.Fatal(err)
	}
	final := jmnedict.Next()

	encoded, err := final.Write(nil)
	if err != nil {
		t.Fatal(err)
	}

	view, err := dictionary.TryDecode(encoded)
	if err != nil {
		t.Fatal(err)
	}
	hits, err := view.Search("明白")
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0].Word == nil {
		t.Fatalf("Search(明白) = %+v", hits)
	}

	nameHits, err := view.Search("田中")
	if err != nil {
		t.Fatal(err)
	}
	if len(nameHits) != 1 || nameHits[0].Name == nil {
		t.Fatalf("Search(田中) = %+v", nameHits)
	}
}

func TestIsNameType(t *testing.T) {
	if !isNameType([]string{"surname"}) {
		t.Error("surname alone should be a name")
	}
	if isNameType([]string{"masc", "person"}) {
		t.Error("gender+person should not be a name")
	}
	if !isNameType([]string{"fem"}) {
		t.Error("bare gender should be a name")
	}
}
