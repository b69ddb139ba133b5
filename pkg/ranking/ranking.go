// Package ranking orders the dictionary entries matching a single
// aggregated token by how well they match it (spec.md §4.7). Grounded on
// original_source/crates/yomikiri-backend/src/dictionary.rs's
// search_for_token, generalised from its InnerToken/UnidicPos checks to
// the engine's token.Token and pkg/dictionary types.
package ranking

import (
	"fmt"

	"github.com/yomikiri-go/engine/pkg/dictionary"
	"github.com/yomikiri-go/engine/pkg/pos"
	"github.com/yomikiri-go/engine/pkg/token"
)

// candidate pairs a resolved entry with the bookkeeping the sort needs:
// the rarity of the specific term that matched, and whether it matched
// via the token's base form rather than its surface.
type candidate struct {
	meta     dictionary.EntryMeta
	rarity   dictionary.Rarity
	fromBase bool
}

// SearchForToken collects every dictionary entry matching t's base form
// or surface, and returns them sorted best-match-first per spec.md
// §4.7's six-key compound order.
func SearchForToken(dict *dictionary.View, t token.Token) ([]dictionary.EntryMeta, error) {
	var candidates []candidate

	baseHits, err := dict.Search(t.Base)
	if err != nil {
		return nil, fmt.Errorf("ranking: search base %q: %w", t.Base, err)
	}
	for _, meta := range baseHits {
		candidates = append(candidates, candidate{
			meta:     meta,
			rarity:   rarityOf(meta, t.Base),
			fromBase: true,
		})
	}

	surfaceHits, err := dict.Search(t.Surface)
	if err != nil {
		return nil, fmt.Errorf("ranking: search surface %q: %w", t.Surface, err)
	}
	for _, meta := range surfaceHits {
		if containsByIdentity(candidates, meta) {
			continue
		}
		candidates = append(candidates, candidate{
			meta:     meta,
			rarity:   rarityOf(meta, t.Surface),
			fromBase: false,
		})
	}

	properNounToken := t.POS.Family == pos.Noun && t.POS.Sub == pos.NounProper

	sortCandidates(candidates, t.POS, properNounToken)

	out := make([]dictionary.EntryMeta, len(candidates))
	for i, c := range candidates {
		out[i] = c.meta
	}
	return out, nil
}

// rarityOf returns the rarity to sort by: the rarity of the term that
// actually matched (t.Base for the base pass, t.Surface for the surface
// pass — dictionary.rs::search_for_token's term_rarity(&token.base) /
// term_rarity(&token.text)) for Word entries, and RarityNormal for Name
// entries (JMnedict carries no rarity tiers, mirrored from
// search_for_token's Name arm).
func rarityOf(meta dictionary.EntryMeta, matchedTerm string) dictionary.Rarity {
	if meta.Word != nil {
		return meta.Word.TermRarity(matchedTerm)
	}
	return dictionary.RarityNormal
}

func containsByIdentity(candidates []candidate, meta dictionary.EntryMeta) bool {
	for _, c := range candidates {
		if meta.Word != nil && c.meta.Word != nil && c.meta.Word.ID == meta.Word.ID {
			return true
		}
		if meta.Name != nil && c.meta.Name != nil && c.meta.Name.Kanji == meta.Name.Kanji {
			return true
		}
	}
	return false
}

// hasFamily reports whether an entry's part-of-speech set contains f.
// Name entries are treated as implicitly nominal: JMnedict carries no
// POS tags of its own, but every name is usable as a proper noun.
func hasFamily(meta dictionary.EntryMeta, f pos.Family) bool {
	if meta.Word != nil {
		return meta.Word.HasFamily(f)
	}
	return f == pos.Noun
}

func priorityOf(meta dictionary.EntryMeta) uint16 {
	if meta.Word != nil {
		return meta.Word.Priority
	}
	return 0
}

// sortCandidates orders candidates ascending by spec.md §4.7's six keys,
// stably (ties keep their collection order: base-pass hits before
// surface-pass hits within an otherwise-equal group).
//
// The fifth key ("rarity == Normal before rarer-but-not-search")
// deliberately diverges from search_for_token's Rust source, whose sort
// closure computes both a_is_normal and b_is_normal from a.rarity (a
// copy-paste slip that degenerates this key to a no-op). spec.md states
// the bidirectional comparison unambiguously, so this port implements it
// as written rather than reproducing the apparent source bug.
func sortCandidates(candidates []candidate, tokenPOS pos.POS, properNounToken bool) {
	less := func(a, b candidate) bool {
		aSearch := a.rarity == dictionary.RaritySearch
		bSearch := b.rarity == dictionary.RaritySearch
		if aSearch != bSearch {
			return !aSearch
		}

		if a.fromBase != b.fromBase {
			return a.fromBase
		}

		if properNounToken {
			aName := a.meta.Name != nil
			bName := b.meta.Name != nil
			if aName != bName {
				return aName
			}
		}

		aHas := hasFamily(a.meta, tokenPOS.Family)
		bHas := hasFamily(b.meta, tokenPOS.Family)
		if aHas != bHas {
			return aHas
		}

		aNormal := a.rarity == dictionary.RarityNormal
		bNormal := b.rarity == dictionary.RarityNormal
		if aNormal != bNormal {
			return aNormal
		}

		return priorityOf(a.meta) > priorityOf(b.meta)
	}
	stableSort(candidates, less)
}

// stableSort is a small insertion sort: candidate lists are short (a
// handful of dictionary entries per token) so O(n^2) is fine, and
// insertion sort is trivially stable without needing sort.SliceStable's
// reflection-based interface.
func stableSort(c []candidate, less func(a, b candidate) bool) {
	for i := 1; i < len(c); i++ {
		for j := i; j > 0 && less(c[j], c[j-1]); j-- {
			c[j], c[j-1] = c[j-1], c[j]
		}
	}
}
