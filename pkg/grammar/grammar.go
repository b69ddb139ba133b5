// Package grammar detects idiomatic Japanese grammar constructions within
// an aggregated token's effective sibling list (spec.md §4.9). Grounded
// on original_source/rust/src/grammar.rs's GRAMMARS table and prev_yougen
// helper, generalised from its string-compared pos/pos2/conj_form fields
// to the engine's pos.POS and pos.ConjForm.
package grammar

import (
	"github.com/yomikiri-go/engine/internal/kana"
	"github.com/yomikiri-go/engine/pkg/pos"
	"github.com/yomikiri-go/engine/pkg/token"
)

// Rule is one named grammar construction: a short description, a
// documentation link, and the predicate that recognises it.
type Rule struct {
	Name    string
	Short   string
	URL     string
	Detects func(t token.Token, siblings []token.Token, idx int) bool
}

// Match pairs a matched rule with the token it matched at, so Detect's
// caller can report which sibling triggered each rule.
type Match struct {
	Rule  Rule
	Index int
}

// Detect runs every rule's detector over t's effective sibling list
// (t.Children if t has any, else the singleton []Token{t}, per spec.md
// §4.9) and returns every match, in rule-table order within each sibling
// and sibling order overall.
func Detect(t token.Token) []Match {
	siblings := t.Siblings()
	var matches []Match
	for i, s := range siblings {
		for _, rule := range Rules {
			if rule.Detects(s, siblings, i) {
				matches = append(matches, Match{Rule: rule, Index: i})
			}
		}
	}
	return matches
}

func isAux(t token.Token) bool    { return t.POS.Family == pos.AuxVerb }
func isSuffix(t token.Token) bool { return t.POS.Family == pos.Suffix }
func isIAdj(t token.Token) bool   { return t.POS.Family == pos.Adjective }
func isNaAdj(t token.Token) bool  { return t.POS.Family == pos.NaAdjective }
func isAdj(t token.Token) bool    { return isIAdj(t) || isNaAdj(t) }
func isParticle(t token.Token) bool {
	return t.POS.Family == pos.Particle
}
func isConnParticle(t token.Token) bool {
	return t.POS.Family == pos.Particle && t.POS.Sub == pos.ParticleSetsuzoku
}
func isJuntaiParticle(t token.Token) bool {
	return t.POS.Family == pos.Particle && t.POS.Sub == pos.ParticleJuntai
}

// prevYougen returns the nearest verb or adjective token strictly before
// idx, looking backwards, or ok=false if none exists (grammar.rs's
// prev_yougen).
func prevYougen(siblings []token.Token, idx int) (token.Token, bool) {
	for i := idx - 1; i >= 0; i-- {
		if isAdj(siblings[i]) || siblings[i].POS.Family == pos.Verb {
			return siblings[i], true
		}
	}
	return token.Token{}, false
}

func at(siblings []token.Token, idx int) (token.Token, bool) {
	if idx < 0 || idx >= len(siblings) {
		return token.Token{}, false
	}
	return siblings[idx], true
}

// Rules is the fixed table of grammar detectors, in declaration order
// (spec.md §4.9; original_source/rust/src/grammar.rs's GRAMMARS).
var Rules = []Rule{
	{
		Name:  "ーさ",
		Short: "objective noun",
		URL:   "https://www.tofugu.com/japanese-grammar/adjective-suffix-sa/",
		Detects: func(t token.Token, _ []token.Token, _ int) bool {
			return t.Base == "さ" && isSuffix(t)
		},
	},
	{
		Name:  "ーそう",
		Short: "speculative adjective",
		URL:   "https://www.tofugu.com/japanese-grammar/adjective-sou/",
		Detects: func(t token.Token, siblings []token.Token, idx int) bool {
			if t.Base != "そう" || !isNaAdj(t) {
				return false
			}
			prev, ok := at(siblings, idx-1)
			return ok && isAdj(prev)
		},
	},
	{
		Name:  "ーえ／ーろ",
		Short: "command form",
		URL:   "https://www.tofugu.com/japanese-grammar/verb-command-form-ro/",
		Detects: func(t token.Token, _ []token.Token, _ int) bool {
			return t.ConjForm == pos.Meireikei
		},
	},
	{
		Name:  "ので",
		Short: "cause (so)",
		URL:   "https://www.tofugu.com/japanese-grammar/conjunctive-particle-node/",
		Detects: func(t token.Token, siblings []token.Token, idx int) bool {
			if t.Base != "だ" || t.Surface != "で" || !isAux(t) {
				return false
			}
			prev, ok := at(siblings, idx-1)
			return ok && prev.Base == "の" && isJuntaiParticle(prev)
		},
	},
	{
		Name:  "のに",
		Short: "unexpectedness (but)",
		URL:   "https://www.tofugu.com/japanese-grammar/conjunctive-particle-noni/",
		Detects: func(t token.Token, siblings []token.Token, idx int) bool {
			if t.Base != "に" || t.Surface != "に" || !isParticle(t) {
				return false
			}
			prev, ok := at(siblings, idx-1)
			return ok && prev.Base == "の" && prev.Surface == "の" && isJuntaiParticle(prev)
		},
	},
	{
		Name:  "ーが",
		Short: "contrast (but)",
		URL:   "https://www.tofugu.com/japanese-grammar/conjunctive-particle-ga-kedo/",
		Detects: func(t token.Token, _ []token.Token, _ int) bool {
			return t.Base == "が" && isConnParticle(t)
		},
	},
	{
		Name:  "ーけど／ーけれど",
		Short: "contrast (but)",
		URL:   "https://www.tofugu.com/japanese-grammar/conjunctive-particle-ga-kedo/",
		Detects: func(t token.Token, _ []token.Token, _ int) bool {
			return t.Base == "けれど" && isConnParticle(t)
		},
	},
	{
		Name:  "ーられる",
		Short: "passive suffix",
		URL:   "https://www.tofugu.com/japanese-grammar/verb-passive-form-rareru/",
		Detects: func(t token.Token, siblings []token.Token, idx int) bool {
			if t.Base == "られる" && isAux(t) {
				return true
			}
			if t.Base == "れる" && isAux(t) {
				prev, ok := at(siblings, idx-1)
				return ok && kana.EndsInGoDan(prev.Surface) == kana.ADan
			}
			return false
		},
	},
	{
		Name:  "ーた",
		Short: "past tense",
		URL:   "https://www.tofugu.com/japanese-grammar/verb-past-ta-form/",
		Detects: func(t token.Token, _ []token.Token, _ int) bool {
			return t.Base == "た" && isAux(t) && (t.Surface == "た" || t.Surface == "だ")
		},
	},
}
