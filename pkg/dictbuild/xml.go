// Package dictbuild implements the streaming JMdict/JMnedict XML parser and
// the binary dictionary builder (spec.md §4.4). Grounded on
// original_source/crates/yomikiri-dictionary/src/{jmdict (via file.rs),
// jmnedict,metadata}.rs, with the DTD entity-resolution mechanism adapted
// from _examples/wedgeV-jmdict/parser.go (encoding/xml's Entity map +
// Strict=false).
package dictbuild

import (
	"encoding/xml"
	"io"
)

// entity maps each JMdict/JMnedict DTD general entity listed below (e.g.
// "&n;", "&uk;") to its own short tag name, so decoded element text carries
// the abbreviation the rest of this package matches against rather than a
// prose description. Unlike wedgeV's map (entity -> English description,
// meant for direct display), this one is built for programmatic
// classification: the value is always the key. An entity missing from the
// list is not resolved: with Strict=false the decoder keeps it in the text
// as the literal "&name;".
var entity = func() map[string]string {
	names := []string{
		"MA", "X", "abbr", "adj-i", "adj-ix", "adj-na", "adj-no", "adj-pn",
		"adj-t", "adj-f", "adv", "adv-to", "arch", "ateji", "aux", "aux-v",
		"aux-adj", "Buddh", "chem", "chn", "col", "comp", "conj", "cop-da",
		"ctr", "derog", "eK", "ek", "exp", "fam", "fem", "food", "geom",
		"gikun", "hon", "hum", "iK", "id", "ik", "int", "io", "iv", "ling",
		"m-sl", "male", "male-sl", "math", "mil", "n", "n-adv", "n-suf",
		"n-pref", "n-t", "num", "oK", "obs", "obsc", "ok", "oik", "on-mim",
		"pn", "poet", "pol", "pref", "proverb", "prt", "physics", "rare",
		"sens", "sl", "suf", "uK", "uk", "unc", "yoji", "v1", "v1-s",
		"v2a-s", "v4h", "v4r", "v5aru", "v5b", "v5g", "v5k", "v5k-s", "v5m",
		"v5n", "v5r", "v5r-i", "v5s", "v5t", "v5u", "v5u-s", "v5uru", "vz",
		"vi", "vk", "vn", "vr", "vs", "vs-c", "vs-s", "vs-i", "vt", "vulg",
		"adj-kari", "adj-ku", "adj-shiku", "adj-nari", "n-pr", "v-unspec",
		"quote", "rK", "sK", "sk",
		"v4k", "v4g", "v4s", "v4t", "v4n", "v4b", "v4m",
		"v2k-k", "v2g-k", "v2t-k", "v2d-k", "v2h-k", "v2b-k", "v2m-k", "v2y-k", "v2r-k",
		"v2k-s", "v2g-s", "v2s-s", "v2z-s", "v2t-s", "v2d-s", "v2n-s", "v2h-s",
		"v2b-s", "v2m-s", "v2y-s", "v2r-s", "v2w-s",
		// JMnedict name_type tags.
		"char", "company", "creat", "dei", "doc", "ev", "fem", "fict",
		"given", "group", "leg", "masc", "myth", "obj", "organization",
		"other", "person", "place", "product", "religion", "serv", "ship",
		"station", "surname", "unclass", "work",
	}
	m := make(map[string]string, len(names))
	for _, n := range names {
		m[n] = n
	}
	return m
}()

// jmdictXML is the root of a JMdict XML document.
type jmdictXML struct {
	XMLName xml.Name       `xml:"JMdict"`
	Entries []jmdictEntryXML `xml:"entry"`
}

type jmdictEntryXML struct {
	Seq      int             `xml:"ent_seq"`
	KanjiEle []kanjiEleXML   `xml:"k_ele"`
	ReadEle  []readingEleXML `xml:"r_ele"`
	Senses   []senseXML      `xml:"sense"`
}

type kanjiEleXML struct {
	Keb    string   `xml:"keb"`
	KeInf  []string `xml:"ke_inf"`
	KePri  []string `xml:"ke_pri"`
}

type readingEleXML struct {
	Reb     string   `xml:"reb"`
	NoKanji *string  `xml:"re_nokanji"`
	ReRestr []string `xml:"re_restr"`
	ReInf   []string `xml:"re_inf"`
	RePri   []string `xml:"re_pri"`
}

type senseXML struct {
	Pos   []string `xml:"pos"`
	Misc  []string `xml:"misc"`
	Gloss []glossXML `xml:"gloss"`
}

type glossXML struct {
	Text string `xml:",chardata"`
	Lang string `xml:"lang,attr"`
}

// ParseJMdict streams a JMdict XML document into jmdictEntryXML values.
// The whole document is decoded via encoding/xml (the format has no
// natural streaming boundary cheaper than one Decode call once DTD
// entities are in play), matching file.rs::parse_jmdict_xml's
// whole-document parse.
func ParseJMdict(r io.Reader) ([]jmdictEntryXML, error) {
	d := xml.NewDecoder(r)
	d.Entity = entity
	d.Strict = false

	var doc jmdictXML
	if err := d.Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Entries, nil
}

// jmnedictXML is the root of a JMnedict XML document.
type jmnedictXML struct {
	XMLName xml.Name          `xml:"JMnedict"`
	Entries []jmnedictEntryXML `xml:"entry"`
}

type jmnedictEntryXML struct {
	Seq      int             `xml:"ent_seq"`
	KanjiEle []kanjiEleXML   `xml:"k_ele"`
	ReadEle  []readingEleXML `xml:"r_ele"`
	Trans    []transXML      `xml:"trans"`
}

type transXML struct {
	NameType []string `xml:"name_type"`
	Detail   []string `xml:"trans_det"`
}

// ParseJMnedict streams a JMnedict XML document into jmnedictEntryXML
// values, using the same entity-resolution mechanism as ParseJMdict.
func ParseJMnedict(r io.Reader) ([]jmnedictEntryXML, error) {
	d := xml.NewDecoder(r)
	d.Entity = entity
	d.Strict = false

	var doc jmnedictXML
	if err := d.Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Entries, nil
}
