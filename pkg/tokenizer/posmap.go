package tokenizer

import "github.com/yomikiri-go/engine/pkg/pos"

// mapKagomePOS translates IPADIC's four-level POS feature strings (e.g.
// "動詞","自立" or "名詞","固有名詞","人名","姓") into the frozen unidic-style
// POS used throughout the rest of the engine. IPADIC and unidic use
// different POS inventories; this table covers the families the
// aggregator and grammar detector actually branch on (spec.md §4.6/§4.9),
// falling back to Unknown for the rest.
func mapKagomePOS(features []string) pos.POS {
	top := features[0]
	sub1 := ""
	if len(features) > 1 {
		sub1 = features[1]
	}

	switch top {
	case "名詞":
		switch sub1 {
		case "固有名詞":
			return pos.NewSub(pos.Noun, pos.NounProper)
		case "数":
			return pos.NewSub(pos.Noun, pos.NounNumeric)
		case "接尾":
			return pos.NewSub(pos.Suffix, pos.SuffixNounLike)
		case "非自立":
			return pos.NewSub(pos.Noun, pos.NounAuxStem)
		default:
			return pos.NewSub(pos.Noun, pos.NounCommon)
		}
	case "動詞":
		if sub1 == "非自立" {
			return pos.NewSub(pos.Verb, pos.VerbDependent)
		}
		return pos.NewSub(pos.Verb, pos.VerbGeneral)
	case "形容詞":
		if sub1 == "非自立" {
			return pos.NewSub(pos.Adjective, pos.AdjectiveDependent)
		}
		return pos.NewSub(pos.Adjective, pos.AdjectiveGeneral)
	case "形容動詞":
		return pos.NewSub(pos.NaAdjective, pos.NaAdjectiveGeneral)
	case "助詞":
		switch sub1 {
		case "係助詞":
			return pos.NewSub(pos.Particle, pos.ParticleKakari)
		case "格助詞":
			return pos.NewSub(pos.Particle, pos.ParticleKaku)
		case "接続助詞":
			return pos.NewSub(pos.Particle, pos.ParticleSetsuzoku)
		case "終助詞":
			return pos.NewSub(pos.Particle, pos.ParticleShuu)
		case "副助詞":
			return pos.NewSub(pos.Particle, pos.ParticleFuku)
		default:
			return pos.New(pos.Particle)
		}
	case "助動詞":
		return pos.New(pos.AuxVerb)
	case "副詞":
		return pos.New(pos.Adverb)
	case "連体詞":
		return pos.New(pos.PrenounAdjectival)
	case "接続詞":
		return pos.New(pos.Conjunction)
	case "感動詞":
		return pos.NewSub(pos.Interjection, pos.InterjectionGeneral)
	case "接頭詞":
		return pos.New(pos.Prefix)
	case "記号":
		return pos.NewSub(pos.Symbol, pos.SymbolGeneral)
	case "フィラー":
		return pos.NewSub(pos.Interjection, pos.InterjectionFiller)
	case "代名詞":
		return pos.New(pos.Pronoun)
	default:
		return pos.New(pos.Unknown)
	}
}

// kagomeConjForm maps IPADIC's Japanese conjugation-form label to the
// engine's ConjForm byte enum. Only the forms the aggregator's join rules
// and the grammar detectors inspect are given a precise mapping; the rest
// fall back to ConjNone, which is always a safe "no specific form
// detected" value for merge-rule predicates that only check a handful of
// named forms.
func mapKagomeConjForm(label string) pos.ConjForm {
	switch label {
	case "命令ｅ", "命令ｙｏ", "命令ｒｏ", "命令ｉ":
		return pos.Meireikei
	case "意志推量形":
		return pos.Volitional
	case "基本形":
		return pos.ConjShuushiFormGeneral
	case "未然形":
		return pos.ConjMizenFormGeneral
	case "連用形", "連用タ接続", "連用テ接続":
		return pos.ConjRenyouFormGeneral
	case "仮定形", "仮定縮約１":
		return pos.ConjKateiFormGeneral
	case "体言接続", "連体形":
		return pos.ConjRentaiFormGeneral
	default:
		return pos.ConjNone
	}
}
