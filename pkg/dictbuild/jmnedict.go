package dictbuild

import (
	"github.com/yomikiri-go/engine/pkg/dictionary"
	"github.com/yomikiri-go/engine/pkg/pos"
)

// nameTypeTag maps a JMnedict <name_type> tag to dictionary.NameType,
// grounded on original_source/crates/yomikiri-dictionary/src/name.rs's
// JMneNameType enum.
var nameTypeTag = map[string]dictionary.NameType{
	"char":         dictionary.NameFiction,
	"company":      dictionary.NameCompany,
	"creat":        dictionary.NameUnclass,
	"dei":          dictionary.NameGod,
	"doc":          dictionary.NameDoc,
	"ev":           dictionary.NameEvent,
	"fem":          dictionary.NameFemale,
	"fict":         dictionary.NameFiction,
	"given":        dictionary.NameGiven,
	"group":        dictionary.NameOrganization,
	"leg":          dictionary.NameFiction,
	"masc":         dictionary.NameMale,
	"myth":         dictionary.NameGod,
	"obj":          dictionary.NameObject,
	"organization": dictionary.NameOrganization,
	"other":        dictionary.NameUnclass,
	"person":       dictionary.NamePerson,
	"place":        dictionary.NamePlace,
	"product":      dictionary.NameProduct,
	"religion":     dictionary.NameUnclass,
	"serv":         dictionary.NameUnclass,
	"ship":         dictionary.NameObject,
	"station":      dictionary.NameRailStation,
	"surname":      dictionary.NameSurname,
	"unclass":      dictionary.NameUnclass,
	"work":         dictionary.NameWork,
}

func mapNameType(tag string) dictionary.NameType {
	if t, ok := nameTypeTag[tag]; ok {
		return t
	}
	return dictionary.NameUnknown
}

// isNameType decides whether a JMnedict <trans> belongs in a NameEntry or
// should be re-routed into a plain WordEntry (as a Noun), ported verbatim
// from jmnedict.rs::is_name_type: a translation tagged with BOTH a gender
// (fem/masc) and "person" describes a generic noun like "female given
// name" and is not itself a name; otherwise it is a name if it carries a
// given-name/surname tag or a bare gender tag.
func isNameType(types []string) bool {
	hasGender, hasPerson, hasForeSurname := false, false, false
	for _, t := range types {
		switch t {
		case "fem", "masc":
			hasGender = true
		case "person":
			hasPerson = true
		case "given", "surname":
			hasForeSurname = true
		}
	}
	if hasGender && hasPerson {
		return false
	}
	return hasForeSurname || hasGender
}

// nameFragment is one (kanji, reading, types, id) tuple awaiting grouping
// into a NameEntry (jmnedict.rs's NameEntryFragmentValue).
type nameFragment struct {
	id      uint32
	reading string
	types   []dictionary.NameType
}

// BuildEntries partitions one parsed JMnedict entry's translations into
// NameEntry fragments (keyed by kanji form) and plain WordEntry records,
// mirroring jmnedict.rs::parse_jmnedict_xml's per-entry split.
func BuildEntries(e jmnedictEntryXML) (nameFragmentsByKanji map[string][]nameFragment, words []dictionary.WordEntry) {
	nameFragmentsByKanji = make(map[string][]nameFragment)

	kanjiForms := make([]string, len(e.KanjiEle))
	for i, k := range e.KanjiEle {
		kanjiForms[i] = k.Keb
	}
	if len(kanjiForms) == 0 {
		// A kana-only entry indexes under its own reading as "kanji".
		for _, r := range e.ReadEle {
			kanjiForms = append(kanjiForms, r.Reb)
		}
	}

	readings := make([]string, len(e.ReadEle))
	for i, r := range e.ReadEle {
		readings[i] = r.Reb
	}
	if len(readings) == 0 {
		readings = kanjiForms
	}

	for _, tr := range e.Trans {
		if isNameType(tr.NameType) {
			types := make([]dictionary.NameType, 0, len(tr.NameType))
			for _, t := range tr.NameType {
				types = append(types, mapNameType(t))
			}
			for _, kanji := range kanjiForms {
				for _, reading := range readings {
					nameFragmentsByKanji[kanji] = append(nameFragmentsByKanji[kanji], nameFragment{
						id:      uint32(e.Seq),
						reading: reading,
						types:   types,
					})
				}
			}
			continue
		}

		// WordEntryInner::from_jmnedict: priority fixed at 0 (see
		// DESIGN.md open-question decisions).
		kanjis := make([]dictionary.Kanji, len(kanjiForms))
		for i, k := range kanjiForms {
			kanjis[i] = dictionary.Kanji{Text: k}
		}
		readingRecords := make([]dictionary.Reading, len(readings))
		for i, r := range readings {
			readingRecords[i] = dictionary.Reading{Text: r}
		}
		words = append(words, dictionary.WordEntry{
			ID:       uint32(e.Seq),
			Kanjis:   kanjis,
			Readings: readingRecords,
			Senses: []dictionary.GroupedSense{{
				PartsOfSpeech: []pos.POS{pos.NewSub(pos.Noun, pos.NounProper)},
				Meanings:      append([]string(nil), tr.Detail...),
			}},
			Priority: 0,
		})
	}
	return nameFragmentsByKanji, words
}

// GroupNameFragments turns the fragments collected for one kanji form into
// the GroupedNameItem runs a NameEntry stores: consecutive fragments (in
// encounter order) that share an identical NameType set are merged
// (name.rs::GroupedNameItem).
func GroupNameFragments(kanji string, fragments []nameFragment) dictionary.NameEntry {
	var groups []dictionary.GroupedNameItem
	var lastKey string

	for _, f := range fragments {
		key := nameTypeKey(f.types)
		item := dictionary.NameItem{ID: f.id, Reading: f.reading}
		if len(groups) > 0 && key == lastKey {
			groups[len(groups)-1].Items = append(groups[len(groups)-1].Items, item)
			continue
		}
		groups = append(groups, dictionary.GroupedNameItem{Types: f.types, Items: []dictionary.NameItem{item}})
		lastKey = key
	}
	return dictionary.NameEntry{Kanji: kanji, Groups: groups}
}

func nameTypeKey(types []dictionary.NameType) string {
	b := make([]byte, len(types))
	for i, t := range types {
		b[i] = byte(t)
	}
	return string(b)
}
