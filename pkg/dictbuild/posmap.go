package dictbuild

import (
	"github.com/yomikiri-go/engine/pkg/dictionary"
	"github.com/yomikiri-go/engine/pkg/pos"
)

// jmdictPosTag maps a JMdict <pos> entity tag to its unidic family/sub,
// grounded on original_source/crates/yomikiri-dictionary/src/entry.rs's
// PartOfSpeech::to_unidic table and the JMdict DTD's pos tag set.
var jmdictPosTag = map[string]pos.POS{
	"n":        pos.NewSub(pos.Noun, pos.NounCommon),
	"n-pr":     pos.NewSub(pos.Noun, pos.NounProper),
	"n-adv":    pos.New(pos.Noun),
	"n-pref":   pos.New(pos.Prefix),
	"n-suf":    pos.NewSub(pos.Suffix, pos.SuffixNounLike),
	"n-t":      pos.New(pos.Noun),
	"num":      pos.NewSub(pos.Noun, pos.NounNumeric),
	"pn":       pos.New(pos.Pronoun),
	"pref":     pos.New(pos.Prefix),
	"suf":      pos.NewSub(pos.Suffix, pos.SuffixNounLike),
	"adj-i":    pos.NewSub(pos.Adjective, pos.AdjectiveGeneral),
	"adj-ix":   pos.NewSub(pos.Adjective, pos.AdjectiveGeneral),
	"adj-na":   pos.NewSub(pos.NaAdjective, pos.NaAdjectiveGeneral),
	"adj-no":   pos.NewSub(pos.Noun, pos.NounCommon),
	"adj-pn":   pos.New(pos.PrenounAdjectival),
	"adj-t":    pos.NewSub(pos.NaAdjective, pos.NaAdjectiveTari),
	"adj-f":    pos.New(pos.PrenounAdjectival),
	"adj-kari": pos.NewSub(pos.Adjective, pos.AdjectiveGeneral),
	"adj-ku":   pos.NewSub(pos.Adjective, pos.AdjectiveGeneral),
	"adj-shiku": pos.NewSub(pos.Adjective, pos.AdjectiveGeneral),
	"adj-nari": pos.NewSub(pos.NaAdjective, pos.NaAdjectiveGeneral),
	"adv":      pos.New(pos.Adverb),
	"adv-to":   pos.New(pos.Adverb),
	"aux":      pos.New(pos.AuxVerb),
	"aux-v":    pos.New(pos.AuxVerb),
	"aux-adj":  pos.NewSub(pos.Adjective, pos.AdjectiveDependent),
	"conj":     pos.New(pos.Conjunction),
	"cop-da":   pos.New(pos.AuxVerb),
	"ctr":      pos.NewSub(pos.Suffix, pos.SuffixNounLike),
	"exp":      pos.New(pos.Expression),
	"int":      pos.NewSub(pos.Interjection, pos.InterjectionGeneral),
	"prt":      pos.New(pos.Particle),
	"unc":      pos.New(pos.Unknown),
	"v-unspec": pos.NewSub(pos.Verb, pos.VerbGeneral),
	"vk":       pos.NewSub(pos.Verb, pos.VerbGeneral),
	"vn":       pos.NewSub(pos.Verb, pos.VerbGeneral),
	"vr":       pos.NewSub(pos.Verb, pos.VerbGeneral),
	"vs":       pos.NewSub(pos.Verb, pos.VerbGeneral),
	"vs-c":     pos.NewSub(pos.Verb, pos.VerbGeneral),
	"vs-s":     pos.NewSub(pos.Verb, pos.VerbGeneral),
	"vs-i":     pos.NewSub(pos.Verb, pos.VerbGeneral),
	"vz":       pos.NewSub(pos.Verb, pos.VerbGeneral),
	"vi":       pos.NewSub(pos.Verb, pos.VerbGeneral),
	"vt":       pos.NewSub(pos.Verb, pos.VerbGeneral),
	"v1":       pos.NewSub(pos.Verb, pos.VerbGeneral),
	"v1-s":     pos.NewSub(pos.Verb, pos.VerbGeneral),
}

// init registers every v5*/v4*/v2*-k/-s JMdict tag; they all map to
// the same unidic Verb/General sub-tag (conjugation detail lives in the
// tokenizer's own output, not in the dictionary record).
func init() {
	for _, t := range []string{
		"v2a-s", "v4h", "v4r", "v4k", "v4g", "v4s", "v4t", "v4n", "v4b", "v4m",
		"v5aru", "v5b", "v5g", "v5k", "v5k-s", "v5m", "v5n", "v5r", "v5r-i",
		"v5s", "v5t", "v5u", "v5u-s", "v5uru",
		"v2k-k", "v2g-k", "v2t-k", "v2d-k", "v2h-k", "v2b-k", "v2m-k", "v2y-k", "v2r-k",
		"v2k-s", "v2g-s", "v2s-s", "v2z-s", "v2t-s", "v2d-s", "v2n-s", "v2h-s",
		"v2b-s", "v2m-s", "v2y-s", "v2r-s", "v2w-s",
	} {
		jmdictPosTag[t] = pos.NewSub(pos.Verb, pos.VerbGeneral)
	}
}

// mapPos resolves a JMdict pos tag to a unidic POS, falling back to
// Unknown for any tag this table does not recognise (dialect/field tags
// such as "ksb", "comp" are never passed here; callers filter the <pos>
// element specifically).
func mapPos(tag string) pos.POS {
	if p, ok := jmdictPosTag[tag]; ok {
		return p
	}
	return pos.New(pos.Unknown)
}

// infTagRarity maps ke_inf/re_inf tags to the Rarity they impose, per
// spec.md §4.4: "irregular-kana/irregular-kanji/irregular-okurigana →
// Incorrect; outdated-kanji → Outdated; rare-kanji-form → Rare;
// search-only-kanji → Search".
var infTagRarity = map[string]dictionary.Rarity{
	"ik": dictionary.RarityIncorrect,
	"iK": dictionary.RarityIncorrect,
	"io": dictionary.RarityIncorrect,
	"oK": dictionary.RarityOutdated,
	"ok": dictionary.RarityOutdated,
	"oik": dictionary.RarityOutdated,
	"rare": dictionary.RarityRare,
	"rK":  dictionary.RarityRare,
	"sK":  dictionary.RaritySearch,
	"sk":  dictionary.RaritySearch,
}
