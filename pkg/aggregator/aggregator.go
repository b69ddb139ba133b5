// Package aggregator merges the external tokenizer's leaf tokens into
// dictionary-sized tokens (spec.md §4.6, "the core of the core").
// Grounded on
// original_source/crates/yomikiri-backend/src/tokenize.rs's
// join_tokens_from sweep, generalised from its UnidicPos/PartOfSpeech
// checks to the engine's pos.POS and dictionary.WordEntry.
package aggregator

import (
	"strings"

	"github.com/yomikiri-go/engine/internal/kana"
	"github.com/yomikiri-go/engine/pkg/dictionary"
	"github.com/yomikiri-go/engine/pkg/pos"
	"github.com/yomikiri-go/engine/pkg/token"
)

// strategy is the rule's declared base-form construction recipe
// (spec.md §4.6's "Base strategies").
type strategy int

const (
	strategyTextAll strategy = iota
	strategyTextWithLastBase
	strategyFirstBase
	strategyBaseAll
)

// Aggregate runs the deterministic merge sweep over leaves and applies the
// post-aggregation manual patches (§4.6.9), returning a new token slice.
// The input slice is never mutated.
func Aggregate(dict *dictionary.View, leaves []token.Token) ([]token.Token, error) {
	tokens := append([]token.Token(nil), leaves...)
	if len(tokens) == 0 {
		return tokens, nil
	}

	i := 0
	for i < len(tokens) {
		var err error
		tokens, err = joinFromIndex(dict, tokens, i)
		if err != nil {
			return nil, err
		}
		i++
	}

	applyManualPatches(tokens)
	return tokens, nil
}

// joinFromIndex tries every merge rule at index from, in the exact order
// spec.md §4.6 mandates. Rules are tried unconditionally even after an
// earlier one fires: each operates on whatever token now sits at from,
// which may already be the product of an earlier rule in this same pass.
func joinFromIndex(dict *dictionary.View, tokens []token.Token, from int) ([]token.Token, error) {
	var err error
	if tokens, _, err = joinCompoundsMulti(dict, tokens, from); err != nil {
		return nil, err
	}
	if tokens, _, err = joinPrefix(dict, tokens, from); err != nil {
		return nil, err
	}
	if tokens, _, err = joinPreNoun(dict, tokens, from); err != nil {
		return nil, err
	}
	if tokens, _, err = joinConjunction(dict, tokens, from); err != nil {
		return nil, err
	}
	if tokens, _, err = joinSuffix(dict, tokens, from); err != nil {
		return nil, err
	}
	if tokens, _, err = joinDependentVerb(dict, tokens, from); err != nil {
		return nil, err
	}
	tokens, _ = joinSpecificVerb(tokens, from)
	tokens, _ = joinInflections(tokens, from)
	return tokens, nil
}

// --- §4.6.1 Multi-token compound search ---

func joinCompoundsMulti(dict *dictionary.View, tokens []token.Token, from int) ([]token.Token, bool, error) {
	first := tokens[from]
	allNoun := isNoun(first)
	allParticle := isParticle(first)
	nounParticle := isNoun(first) || isPronoun(first)

	at := from + 1
	joinedTextPrev := first.Surface
	joinedBasePrev := first.Base

	searchingTextJoin := true
	searchingBaseJoin := true

	lastFoundTo := at
	lastFoundStrategy := strategyTextAll
	lastFoundPOS := first.POS

	for at < len(tokens) {
		cur := tokens[at]
		allNoun = allNoun && isNoun(cur)
		allParticle = allParticle && isParticle(cur)
		nounParticle = nounParticle && isParticle(cur)

		if !allParticle {
			searchingBaseJoin = false
		}

		if searchingTextJoin {
			textAll := joinedTextPrev + cur.Surface

			metas, err := dict.Search(textAll)
			if err != nil {
				return nil, false, err
			}
			if p, ok := scanJoinAcceptance(metas, allNoun, allParticle, nounParticle, true); ok {
				lastFoundTo = at + 1
				lastFoundPOS = p
				lastFoundStrategy = strategyTextAll
			} else {
				textThenBase := joinedTextPrev + cur.Base
				metas, err := dict.Search(textThenBase)
				if err != nil {
					return nil, false, err
				}
				if p, ok := scanJoinAcceptance(metas, allNoun, false, nounParticle, false); ok {
					lastFoundTo = at + 1
					lastFoundPOS = p
					lastFoundStrategy = strategyTextWithLastBase
				}
			}

			hasMore, err := dict.HasStartsWithExcluding(textAll)
			if err != nil {
				return nil, false, err
			}
			searchingTextJoin = hasMore
			joinedTextPrev = textAll
		}

		if searchingBaseJoin {
			baseAll := joinedBasePrev + cur.Base
			if lastFoundTo != at+1 {
				metas, err := dict.Search(baseAll)
				if err != nil {
					return nil, false, err
				}
				if anyWordMatches(metas, (*dictionary.WordEntry).IsParticle) {
					lastFoundTo = at + 1
					lastFoundPOS = pos.New(pos.Particle)
					lastFoundStrategy = strategyBaseAll
				}
			}

			hasMore, err := dict.HasStartsWithExcluding(baseAll)
			if err != nil {
				return nil, false, err
			}
			searchingBaseJoin = hasMore
			joinedBasePrev = baseAll
		}

		if !searchingTextJoin && !searchingBaseJoin {
			break
		}
		at++
	}

	return maybeMerge(tokens, from, lastFoundTo, lastFoundPOS, lastFoundStrategy), lastFoundTo-from > 1, nil
}

// scanJoinAcceptance implements §4.6.1's per-j acceptance rule: a Noun or
// Particle match returns immediately (it is the strongest signal), while
// an Expression match (or the noun_particle shortcut) is remembered but
// the scan keeps going in case a later entry in the same result set
// upgrades it to Noun/Particle.
func scanJoinAcceptance(metas []dictionary.EntryMeta, allNoun, allParticle, nounParticle, checkParticle bool) (pos.POS, bool) {
	var found pos.POS
	ok := false
	for _, m := range metas {
		if m.Word == nil {
			continue
		}
		if allNoun && m.Word.IsNoun() {
			return pos.New(pos.Noun), true
		}
		if checkParticle && allParticle && m.Word.IsParticle() {
			return pos.New(pos.Particle), true
		}
		if nounParticle || m.Word.IsExpression() {
			found = pos.New(pos.Expression)
			ok = true
		}
	}
	return found, ok
}

func anyWordMatches(metas []dictionary.EntryMeta, pred func(*dictionary.WordEntry) bool) bool {
	for _, m := range metas {
		if m.Word != nil && pred(m.Word) {
			return true
		}
	}
	return false
}

// --- §4.6.2 Prefix attachment ---

func joinPrefix(dict *dictionary.View, tokens []token.Token, from int) ([]token.Token, bool, error) {
	if from+1 >= len(tokens) {
		return tokens, false, nil
	}
	t := tokens[from]
	if !isPrefix(t) {
		return tokens, false, nil
	}
	next := tokens[from+1]
	if !dict.Contains(t.Surface + next.Base) {
		return tokens, false, nil
	}
	return maybeMerge(tokens, from, from+2, next.POS, strategyTextWithLastBase), true, nil
}

// --- §4.6.3 Pre-noun attachment ---

func joinPreNoun(dict *dictionary.View, tokens []token.Token, from int) ([]token.Token, bool, error) {
	if from+1 >= len(tokens) {
		return tokens, false, nil
	}
	t := tokens[from]
	if !isPrenounAdjectival(t) {
		return tokens, false, nil
	}
	next := tokens[from+1]
	if !isNoun(next) && !isPronoun(next) && !isPrefix(next) {
		return tokens, false, nil
	}
	if !dict.Contains(t.Surface + next.Base) {
		return tokens, false, nil
	}
	return maybeMerge(tokens, from, from+2, next.POS, strategyTextWithLastBase), true, nil
}

// --- §4.6.4 Conjunction coalescence ---

func joinConjunction(dict *dictionary.View, tokens []token.Token, from int) ([]token.Token, bool, error) {
	if from+1 >= len(tokens) {
		return tokens, false, nil
	}
	next := tokens[from+1]
	if !isParticle(next) {
		return tokens, false, nil
	}
	t := tokens[from]
	metas, err := dict.Search(t.Surface + next.Surface)
	if err != nil {
		return nil, false, err
	}
	if !anyWordMatches(metas, (*dictionary.WordEntry).IsConjunction) {
		return tokens, false, nil
	}
	return maybeMerge(tokens, from, from+2, pos.New(pos.Conjunction), strategyTextAll), true, nil
}

// --- §4.6.5 Suffix attachment ---

func joinSuffix(dict *dictionary.View, tokens []token.Token, from int) ([]token.Token, bool, error) {
	if from+1 >= len(tokens) {
		return tokens, false, nil
	}
	t := tokens[from]
	next := tokens[from+1]
	if !isSuffix(next) {
		return tokens, false, nil
	}

	newPOS := suffixResultPOS(next.POS)
	compound := t.Surface + next.Base
	if dict.Contains(compound) {
		return maybeMerge(tokens, from, from+2, newPOS, strategyTextWithLastBase), true, nil
	}
	if next.Base == "がる" {
		return maybeMerge(tokens, from, from+2, newPOS, strategyFirstBase), true, nil
	}
	return tokens, false, nil
}

func suffixResultPOS(suffixPOS pos.POS) pos.POS {
	switch suffixPOS.Sub {
	case pos.SuffixNounLike:
		return pos.New(pos.Noun)
	case pos.SuffixAdjLike:
		return pos.New(pos.Adjective)
	case pos.SuffixVerbLike:
		return pos.New(pos.Verb)
	case pos.SuffixNaAdjLike:
		return pos.New(pos.NaAdjective)
	default:
		return pos.New(pos.Unknown)
	}
}

// --- §4.6.6 Dependent-verb attachment ---

func joinDependentVerb(dict *dictionary.View, tokens []token.Token, from int) ([]token.Token, bool, error) {
	if from+1 >= len(tokens) {
		return tokens, false, nil
	}
	t := tokens[from]
	next := tokens[from+1]
	if !isVerb(t) || !isDependentVerb(next) {
		return tokens, false, nil
	}
	metas, err := dict.Search(t.Surface + next.Base)
	if err != nil {
		return nil, false, err
	}
	if !anyWordMatches(metas, (*dictionary.WordEntry).IsVerb) {
		return tokens, false, nil
	}
	return maybeMerge(tokens, from, from+2, pos.New(pos.Verb), strategyTextWithLastBase), true, nil
}

// --- §4.6.7 Specific-verb fusions ---

func joinSpecificVerb(tokens []token.Token, from int) ([]token.Token, bool) {
	if from+1 >= len(tokens) {
		return tokens, false
	}
	t := tokens[from]
	next := tokens[from+1]

	if next.Base == "為る" && isDependentVerb(next) && isNoun(t) {
		return maybeMerge(tokens, from, from+2, pos.New(pos.Verb), strategyFirstBase), true
	}
	if next.Surface == "なさい" && next.Base == "為さる" && isDependentVerb(next) && isVerb(t) {
		return maybeMerge(tokens, from, from+2, pos.New(pos.Verb), strategyFirstBase), true
	}
	return tokens, false
}

// --- §4.6.8 Inflection coalescence ---

func joinInflections(tokens []token.Token, from int) ([]token.Token, bool) {
	t := tokens[from]
	if !isInflectable(t) {
		return tokens, false
	}

	to := from + 1
	for to < len(tokens) {
		next := tokens[to]
		if !(isAuxVerb(next) || isSetsuzokuParticle(next) || isNaAdjectiveAuxStem(next)) {
			break
		}
		if !kana.IsKanaOnly(next.Surface) {
			break
		}
		to++
	}

	return maybeMerge(tokens, from, to, t.POS, strategyFirstBase), to-from > 1
}

func isInflectable(t token.Token) bool {
	switch t.POS.Family {
	case pos.Verb, pos.Adjective, pos.NaAdjective, pos.Adverb, pos.AuxVerb, pos.Expression:
		return true
	}
	return false
}

// --- §4.6.9 Manual patches ---

func applyManualPatches(tokens []token.Token) {
	for i := range tokens {
		t := &tokens[i]

		if t.Surface == "私" && t.Reading == "ワタクシ" {
			t.Reading = "ワタシ"
			continue
		}

		if t.Base == "と" && t.Surface == "と" && t.POS == pos.NewSub(pos.Particle, pos.ParticleKaku) &&
			i > 0 && tokens[i-1].ConjForm.IsPredicative() {
			t.POS = pos.NewSub(pos.Particle, pos.ParticleSetsuzoku)
			continue
		}

		if t.Base == "たり" && t.POS == pos.NewSub(pos.Particle, pos.ParticleFuku) {
			t.POS = pos.NewSub(pos.Particle, pos.ParticleSetsuzoku)
			continue
		}

		if t.Base == "装う" && t.Surface == "よそう" && i > 0 && tokens[i-1].Base == "は" {
			t.Base = "止す"
			t.POS = pos.NewSub(pos.Verb, pos.VerbGeneral)
			t.ConjForm = pos.Volitional
		}
	}
}

// --- shared merge machinery ---

// maybeMerge replaces tokens[from:to] with one merged token built per
// strategy, unless the span is a single token (no-op, matching
// join_tokens's early return on size == 1).
func maybeMerge(tokens []token.Token, from, to int, p pos.POS, strat strategy) []token.Token {
	if to-from <= 1 {
		return tokens
	}
	merged := mergeTokens(tokens, from, to, p, strat)
	out := make([]token.Token, 0, len(tokens)-(to-from)+1)
	out = append(out, tokens[:from]...)
	out = append(out, merged)
	out = append(out, tokens[to:]...)
	return out
}

func mergeTokens(tokens []token.Token, from, to int, p pos.POS, strat strategy) token.Token {
	var surfacePrefix, reading strings.Builder
	for i := from; i < to-1; i++ {
		surfacePrefix.WriteString(tokens[i].Surface)
		reading.WriteString(tokens[i].Reading)
	}
	last := tokens[to-1]
	surface := surfacePrefix.String() + last.Surface
	reading.WriteString(last.Reading)

	var base string
	switch strat {
	case strategyFirstBase:
		base = tokens[from].Base
	case strategyTextAll:
		base = surface
	case strategyTextWithLastBase:
		base = surfacePrefix.String() + last.Base
	case strategyBaseAll:
		var b strings.Builder
		for i := from; i < to; i++ {
			b.WriteString(tokens[i].Base)
		}
		base = b.String()
	}

	children := make([]token.Token, 0, to-from)
	for i := from; i < to; i++ {
		if tokens[i].IsLeaf() {
			children = append(children, tokens[i])
		} else {
			children = append(children, tokens[i].Children...)
		}
	}

	return token.Token{
		Surface:  surface,
		Start:    tokens[from].Start,
		Children: children,
		POS:      p,
		Base:     base,
		Reading:  reading.String(),
		ConjForm: pos.ConjNone,
	}
}

// --- POS predicates over token.Token ---

func isNoun(t token.Token) bool              { return t.POS.Family == pos.Noun }
func isParticle(t token.Token) bool          { return t.POS.Family == pos.Particle }
func isPronoun(t token.Token) bool           { return t.POS.Family == pos.Pronoun }
func isPrefix(t token.Token) bool            { return t.POS.Family == pos.Prefix }
func isVerb(t token.Token) bool              { return t.POS.Family == pos.Verb }
func isSuffix(t token.Token) bool            { return t.POS.Family == pos.Suffix }
func isPrenounAdjectival(t token.Token) bool { return t.POS.Family == pos.PrenounAdjectival }
func isAuxVerb(t token.Token) bool           { return t.POS.Family == pos.AuxVerb }

func isDependentVerb(t token.Token) bool {
	return t.POS == pos.NewSub(pos.Verb, pos.VerbDependent)
}

func isSetsuzokuParticle(t token.Token) bool {
	return t.POS == pos.NewSub(pos.Particle, pos.ParticleSetsuzoku)
}

func isNaAdjectiveAuxStem(t token.Token) bool {
	return t.POS == pos.NewSub(pos.NaAdjective, pos.NaAdjectiveAuxStem)
}
