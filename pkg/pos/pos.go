// Package pos implements the frozen one-byte encoding for unidic
// part-of-speech and conjugation-form tags (spec.md §3, §6, §9
// "POS/Conjugation encoding"). The enum and its byte codec are generated
// from one declarative table each, grounded on
// original_source/crates/unidic-types/src/part_of_speech.rs and
// conjugation.rs.
package pos

import "fmt"

// Family is the top-level POS variant. Seven of the families below
// (Noun, Particle, Verb, Adjective, NaAdjective, Interjection, Suffix)
// carry a sub-tag; Symbol and SupplementarySymbol also carry a sub-tag.
// The remaining families are atomic.
type Family uint8

const (
	Noun Family = iota
	Verb
	Adjective
	NaAdjective
	Particle
	Adverb
	Interjection
	Suffix
	AuxVerb
	Pronoun
	Conjunction
	Prefix
	PrenounAdjectival
	Expression
	Whitespace
	Symbol
	SupplementarySymbol
	Unknown
)

// Sub is a family-specific sub-tag. Its meaning depends on Family; use the
// Noun*/Particle*/... constants below rather than raw values. SubUnknown
// (0) is valid for every family and means "no sub-tag info available".
type Sub uint8

const SubUnknown Sub = 0

// Noun sub-tags.
const (
	NounAuxStem Sub = iota + 1
	NounProper
	NounCommon
	NounNumeric
)

// Particle sub-tags.
const (
	ParticleKakari Sub = iota + 1 // 係助詞
	ParticleKaku                  // 格助詞
	ParticleSetsuzoku             // 接続助詞
	ParticleJuntai                // 準体助詞
	ParticleShuu                  // 終助詞
	ParticleFuku                  // 副助詞
)

// Verb sub-tags.
const (
	VerbGeneral Sub = iota + 1
	VerbDependent
)

// Adjective sub-tags.
const (
	AdjectiveGeneral Sub = iota + 1
	AdjectiveDependent
)

// NaAdjective sub-tags.
const (
	NaAdjectiveGeneral Sub = iota + 1
	NaAdjectiveAuxStem
	NaAdjectiveTari
)

// Interjection sub-tags.
const (
	InterjectionGeneral Sub = iota + 1
	InterjectionFiller
)

// Suffix sub-tags.
const (
	SuffixNounLike Sub = iota + 1
	SuffixAdjLike
	SuffixVerbLike
	SuffixNaAdjLike
)

// Symbol sub-tags.
const (
	SymbolGeneral Sub = iota + 1
	SymbolCharacter
)

// SupplementarySymbol sub-tags.
const (
	SupplementarySymbolComma Sub = iota + 1
	SupplementarySymbolGeneral
	SupplementarySymbolOpenBracket
	SupplementarySymbolCloseBracket
	SupplementarySymbolAA
	SupplementarySymbolPeriod
)

// POS is a tagged (Family, Sub) pair. Sub is SubUnknown for families with
// no sub-tag info, or for families (AuxVerb, Whitespace, Pronoun,
// Conjunction, Prefix, PrenounAdjectival, Adverb, Expression, Unknown)
// that never carry one.
type POS struct {
	Family Family
	Sub    Sub
}

func New(f Family) POS            { return POS{Family: f} }
func NewSub(f Family, s Sub) POS   { return POS{Family: f, Sub: s} }
func (p POS) HasPOS(other POS) bool { return p == other }

type byteEntry struct {
	b      byte
	family Family
	sub    Sub
}

// table is the single declarative source for both directions of the byte
// codec, ordered exactly as spec.md §6 lists them.
var table = []byteEntry{
	{'1', Noun, SubUnknown}, {'a', Noun, NounAuxStem}, {'b', Noun, NounProper}, {'c', Noun, NounCommon}, {'d', Noun, NounNumeric},
	{'2', Particle, SubUnknown}, {'e', Particle, ParticleKakari}, {'f', Particle, ParticleKaku}, {'g', Particle, ParticleSetsuzoku}, {'h', Particle, ParticleJuntai}, {'i', Particle, ParticleShuu}, {'j', Particle, ParticleFuku},
	{'3', Verb, SubUnknown}, {'k', Verb, VerbGeneral}, {'l', Verb, VerbDependent},
	{'4', Adjective, SubUnknown}, {'m', Adjective, AdjectiveGeneral}, {'n', Adjective, AdjectiveDependent},
	{'5', NaAdjective, SubUnknown}, {'o', NaAdjective, NaAdjectiveGeneral}, {'p', NaAdjective, NaAdjectiveAuxStem}, {'q', NaAdjective, NaAdjectiveTari},
	{'6', Interjection, SubUnknown}, {'r', Interjection, InterjectionGeneral}, {'s', Interjection, InterjectionFiller},
	{'7', Suffix, SubUnknown}, {'t', Suffix, SuffixNounLike}, {'u', Suffix, SuffixAdjLike}, {'v', Suffix, SuffixVerbLike}, {'w', Suffix, SuffixNaAdjLike},
	{'x', AuxVerb, SubUnknown},
	{'y', Whitespace, SubUnknown},
	{'z', Pronoun, SubUnknown},
	{'I', Conjunction, SubUnknown},
	{'J', Prefix, SubUnknown},
	{'K', PrenounAdjectival, SubUnknown},
	{'L', Adverb, SubUnknown},
	{'M', Expression, SubUnknown},
	{'O', Unknown, SubUnknown},
	{'8', Symbol, SubUnknown}, {'A', Symbol, SymbolGeneral}, {'B', Symbol, SymbolCharacter},
	{'9', SupplementarySymbol, SubUnknown},
	{'C', SupplementarySymbol, SupplementarySymbolComma},
	{'D', SupplementarySymbol, SupplementarySymbolGeneral},
	{'E', SupplementarySymbol, SupplementarySymbolOpenBracket},
	{'F', SupplementarySymbol, SupplementarySymbolCloseBracket},
	{'G', SupplementarySymbol, SupplementarySymbolAA},
	{'H', SupplementarySymbol, SupplementarySymbolPeriod},
}

var encodeTable = func() map[POS]byte {
	m := make(map[POS]byte, len(table))
	for _, e := range table {
		m[POS{e.family, e.sub}] = e.b
	}
	return m
}()

var decodeTable = func() map[byte]POS {
	m := make(map[byte]POS, len(table))
	for _, e := range table {
		m[e.b] = POS{e.family, e.sub}
	}
	return m
}()

// Encode returns the frozen single-byte representation of p.
func (p POS) Encode() byte {
	if b, ok := encodeTable[p]; ok {
		return b
	}
	return encodeTable[POS{Unknown, SubUnknown}]
}

// Decode parses a single byte into a POS. Unknown codes decode to
// POS{Unknown, SubUnknown} per spec §4.5 ("unknown codes fall back to
// POS=Unknown").
func Decode(b byte) POS {
	if p, ok := decodeTable[b]; ok {
		return p
	}
	return POS{Unknown, SubUnknown}
}

func (p POS) String() string {
	return fmt.Sprintf("%s(%d)", p.Family, p.Sub)
}

func (f Family) String() string {
	names := [...]string{
		"Noun", "Verb", "Adjective", "NaAdjective", "Particle", "Adverb",
		"Interjection", "Suffix", "AuxVerb", "Pronoun", "Conjunction",
		"Prefix", "PrenounAdjectival", "Expression", "Whitespace",
		"Symbol", "SupplementarySymbol", "Unknown",
	}
	if int(f) < len(names) {
		return names[f]
	}
	return "Unknown"
}
