// Package dictionary implements the decoded dictionary view over the
// zero-copy binary artefact (spec.md §3-§4.3): word/name entry records,
// the meaning-search index, and lookup/search ranking. Grounded on
// original_source/crates/yomikiri-dictionary/src/{entry,name,dictionary,meaning}.rs.
package dictionary

import "github.com/yomikiri-go/engine/pkg/pos"

// Rarity marks a form, reading, or sense's commonness class (spec.md §3).
// Ascending severity order: Normal is the best classification and
// Incorrect the worst; dictbuild's rarity derivation takes the MINIMUM
// Rarity value among every inf tag that applies to a form, per spec.md
// §4.4.
type Rarity uint8

const (
	RarityNormal Rarity = iota
	RarityRare
	RarityOutdated
	RaritySearch
	RarityIncorrect
)

// Kanji is one written form of a word entry.
type Kanji struct {
	Text   string
	Rarity Rarity
}

// Reading is one reading of a word entry. AppliesTo lists the Kanji.Text
// values this reading is restricted to (JMdict re_restr); empty means it
// applies to every form.
type Reading struct {
	Text     string
	Rarity   Rarity
	NoKanji  bool
	AppliesTo []string
}

// GroupedSense is a run of JMdict senses that share an identical
// part-of-speech set, folded into one entry for display (spec.md §4.3).
type GroupedSense struct {
	PartsOfSpeech []pos.POS
	Meanings      []string
}

// WordEntry is one JMdict (or JMnedict-derived) dictionary entry.
type WordEntry struct {
	ID       uint32
	Kanjis   []Kanji
	Readings []Reading
	Senses   []GroupedSense
	Priority uint16
}

// Terms returns every form and reading text, used to key the term index.
func (e *WordEntry) Terms() []string {
	out := make([]string, 0, len(e.Kanjis)+len(e.Readings))
	for _, k := range e.Kanjis {
		out = append(out, k.Text)
	}
	for _, r := range e.Readings {
		out = append(out, r.Text)
	}
	return out
}

// MainForm returns the entry's preferred display form: the first
// non-rare kanji form, else the first non-rare reading, else the first
// kanji form, else the first reading, else "" (spec.md §4.3,
// entry.rs::main_form).
func (e *WordEntry) MainForm() string {
	for _, k := range e.Kanjis {
		if k.Rarity == RarityNormal {
			return k.Text
		}
	}
	for _, r := range e.Readings {
		if r.Rarity == RarityNormal {
			return r.Text
		}
	}
	if len(e.Kanjis) > 0 {
		return e.Kanjis[0].Text
	}
	if len(e.Readings) > 0 {
		return e.Readings[0].Text
	}
	return ""
}

// ReadingForForm returns the first reading that is not a nokanji reading
// and either is unrestricted or lists form in AppliesTo, falling back to
// the first reading overall (entry.rs::reading_for_form).
func (e *WordEntry) ReadingForForm(form string) string {
	for _, r := range e.Readings {
		if r.NoKanji {
			continue
		}
		if len(r.AppliesTo) == 0 {
			return readingOrSelf(r, form)
		}
		for _, f := range r.AppliesTo {
			if f == form {
				return r.Text
			}
		}
	}
	if len(e.Readings) > 0 {
		return e.Readings[0].Text
	}
	return ""
}

func readingOrSelf(r Reading, _ string) string { return r.Text }

// IsExpression reports whether any sense is tagged as an expression (exp).
func (e *WordEntry) IsExpression() bool { return e.hasFamily(pos.Expression) }

// IsNoun reports whether any sense is tagged as a noun.
func (e *WordEntry) IsNoun() bool { return e.hasFamily(pos.Noun) }

// IsParticle reports whether any sense is tagged as a particle.
func (e *WordEntry) IsParticle() bool { return e.hasFamily(pos.Particle) }

// IsConjunction reports whether any sense is tagged as a conjunction.
func (e *WordEntry) IsConjunction() bool { return e.hasFamily(pos.Conjunction) }

// IsVerb reports whether any sense is tagged as a verb.
func (e *WordEntry) IsVerb() bool { return e.hasFamily(pos.Verb) }

// TermRarity returns the Rarity of whichever kanji form or reading
// matches term exactly, used by pkg/ranking to annotate a candidate with
// the rarity of the specific term that matched (spec.md §4.7). Falls
// back to RarityNormal if term matches neither (should not happen for a
// term the index actually returned this entry for).
func (e *WordEntry) TermRarity(term string) Rarity {
	for _, k := range e.Kanjis {
		if k.Text == term {
			return k.Rarity
		}
	}
	for _, r := range e.Readings {
		if r.Text == term {
			return r.Rarity
		}
	}
	return RarityNormal
}

// HasFamily reports whether any sense is tagged with POS family f, used by
// pkg/ranking to test whether an entry's part-of-speech set contains the
// token's POS (dictionary.rs::Entry::has_pos compares at the coarse
// family level, not the sub-tag).
func (e *WordEntry) HasFamily(f pos.Family) bool { return e.hasFamily(f) }

func (e *WordEntry) hasFamily(f pos.Family) bool {
	for _, sense := range e.Senses {
		for _, p := range sense.PartsOfSpeech {
			if p.Family == f {
				return true
			}
		}
	}
	return false
}
