// Package engine is the top-level orchestration point: tokenizer →
// aggregator → selected-token ranking → grammar detection, plus the
// search_term_as_is fallback (spec.md §6 "Search API"). Grounded on
// _examples/original_source/crates/yomikiri-backend/src/{tokenize,search}.rs's
// SharedBackend::tokenize/search.
package engine

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/yomikiri-go/engine/internal/logging"
	"github.com/yomikiri-go/engine/pkg/aggregator"
	"github.com/yomikiri-go/engine/pkg/dictionary"
	"github.com/yomikiri-go/engine/pkg/grammar"
	"github.com/yomikiri-go/engine/pkg/pos"
	"github.com/yomikiri-go/engine/pkg/ranking"
	"github.com/yomikiri-go/engine/pkg/token"
	"github.com/yomikiri-go/engine/pkg/tokenizer"
)

// Result is the engine's uniform output shape for both Tokenize and
// Search (spec.md §6: "same" return shape for both calls).
type Result struct {
	Tokens     []token.Token
	TokenIndex int
	Entries    []dictionary.EntryMeta
	Grammars   []grammar.Match
}

// Engine holds the decoded dictionary and the tokenizer adapter. It is
// strictly single-threaded per call (spec.md §5); the dictionary bytes
// and tokenizer are shared, read-only state, so concurrent callers need
// only an exclusive reference per call, not fine-grained locking.
type Engine struct {
	dict *dictionary.View
	tok  *tokenizer.Tokenizer
}

// New decodes dictSource and constructs the tokenizer adapter. Construction
// either returns a fully-initialised Engine or fails; there is no partial
// state to observe (spec.md §5).
func New(dictSource []byte) (*Engine, error) {
	dict, err := dictionary.TryDecode(dictSource)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	tok, err := tokenizer.New()
	if err != nil {
		return nil, fmt.Errorf("engine: construct tokenizer: %w", err)
	}
	return &Engine{dict: dict, tok: tok}, nil
}

// Tokenize tokenizes sentence, aggregates the leaves into dictionary-sized
// tokens, selects the token containing the code-point offset charOffset,
// ranks dictionary entries for it, and detects grammar constructions over
// its effective sibling list.
func (e *Engine) Tokenize(sentence string, charOffset int) (*Result, error) {
	leaves, err := e.tok.Tokenize(sentence)
	if err != nil {
		return nil, fmt.Errorf("engine: tokenize: %w", err)
	}
	if len(leaves) == 0 {
		return &Result{TokenIndex: -1}, nil
	}

	tokens, err := aggregator.Aggregate(e.dict, leaves)
	if err != nil {
		return nil, fmt.Errorf("engine: aggregate: %w", err)
	}

	tokenIdx := selectTokenIndex(tokens, charOffset)
	selected := tokens[tokenIdx]

	entries, err := ranking.SearchForToken(e.dict, selected)
	if err != nil {
		return nil, fmt.Errorf("engine: rank: %w", err)
	}

	grammars := grammar.Detect(selected)

	return &Result{
		Tokens:     tokens,
		TokenIndex: tokenIdx,
		Entries:    entries,
		Grammars:   grammars,
	}, nil
}

// selectTokenIndex returns the index of the last token whose start is
// <= charOffset: the first index i with tokens[i].Start > charOffset
// minus one, or the last token if no such index exists.
func selectTokenIndex(tokens []token.Token, charOffset int) int {
	for i, t := range tokens {
		if t.Start > charOffset {
			return i - 1
		}
	}
	return len(tokens) - 1
}

// Search performs a Tokenize; if the result has more than one token but
// term itself is indexed as-is, a one-token fabricated result keyed on
// term is returned instead (spec.md §6, search.rs::search).
func (e *Engine) Search(term string, charOffset int) (*Result, error) {
	result, err := e.Tokenize(term, charOffset)
	if err != nil {
		return nil, err
	}
	if len(result.Tokens) <= 1 {
		return result, nil
	}

	asIs, err := e.searchTermAsIs(term)
	if err != nil {
		return nil, err
	}
	if asIs != nil {
		return asIs, nil
	}
	return result, nil
}

func (e *Engine) searchTermAsIs(term string) (*Result, error) {
	normalized := term
	if !norm.NFC.IsNormalString(term) {
		normalized = norm.NFC.String(term)
	}

	entries, err := e.dict.Search(normalized)
	if err != nil {
		return nil, fmt.Errorf("engine: search term as-is %q: %w", normalized, err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	first := entries[0]
	fabricated := fabricateToken(normalized, first)

	logging.Get().Debug().Str("term", normalized).Msg("search_term_as_is matched")

	return &Result{
		Tokens:     []token.Token{fabricated},
		TokenIndex: 0,
		Entries:    entries,
	}, nil
}

// fabricateToken builds the single-token result search_term_as_is returns
// when a multi-token tokenization is overridden by an as-is dictionary
// hit: surface is the search term itself, base is the matched entry's
// main form, reading is that form's reading, and POS comes from the
// entry's first sense (Word) or is assumed Noun (Name, since JMnedict
// entries carry no POS of their own).
func fabricateToken(surface string, meta dictionary.EntryMeta) token.Token {
	t := token.Token{Surface: surface, Start: 0}
	switch {
	case meta.Word != nil:
		form := meta.Word.MainForm()
		t.Base = form
		t.Reading = meta.Word.ReadingForForm(form)
		if len(meta.Word.Senses) > 0 && len(meta.Word.Senses[0].PartsOfSpeech) > 0 {
			t.POS = meta.Word.Senses[0].PartsOfSpeech[0]
		} else {
			t.POS = pos.New(pos.Unknown)
		}
	case meta.Name != nil:
		t.Base = meta.Name.Kanji
		t.POS = pos.NewSub(pos.Noun, pos.NounProper)
	}
	return t
}
