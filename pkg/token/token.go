// Package token defines the shared Token type produced by the tokenizer
// adapter, consumed and merged by the aggregator, and inspected by ranking
// and grammar detection (spec.md §3 "Token").
package token

import "github.com/yomikiri-go/engine/pkg/pos"

// Token is a contiguous span of the input sentence. Start is a code-point
// index into the ORIGINAL (possibly non-NFC) sentence. Children holds the
// leaves a merged token was built from (empty for a leaf); when non-empty,
// the concatenation of every child's Surface equals this Token's Surface
// (spec.md §3 invariants).
type Token struct {
	Surface  string
	Start    int
	Children []Token
	POS      pos.POS
	Base     string
	Reading  string
	ConjForm pos.ConjForm
}

// IsLeaf reports whether t was produced directly by the external
// tokenizer (no merge rule has fired on it).
func (t Token) IsLeaf() bool { return len(t.Children) == 0 }

// Siblings returns the effective sibling list grammar detectors run over:
// a token's children if it has any, else a singleton containing the token
// itself (spec.md §4.9).
func (t Token) Siblings() []Token {
	if len(t.Children) > 0 {
		return t.Children
	}
	return []Token{t}
}
