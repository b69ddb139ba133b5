// Package tokenizer wraps an external Viterbi tokenizer (kagome, IPA
// dictionary) behind the engine's shared Token shape, normalising input to
// NFC before tokenizing and remapping byte offsets back onto the caller's
// original (possibly non-NFC) text (spec.md §4.5). Grounded on
// pkg/readerer/readerer.go's Analyzer (teacher's own kagome adapter) and
// original_source/crates/yomikiri-backend/src/tokenize.rs's grapheme
// co-iteration between the raw and NFC-normalised input.
package tokenizer

import (
	"strings"
	"unicode/utf8"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"

	"github.com/yomikiri-go/engine/internal/kana"
	"github.com/yomikiri-go/engine/pkg/pos"
	"github.com/yomikiri-go/engine/pkg/token"
)

// kagome IPA feature indices (teacher's own comment in readerer.go).
const (
	featPOS      = 0
	featConjForm = 5
	featBaseForm = 6
	featReading  = 7
)

// Tokenizer holds the loaded kagome dictionary; construction is expensive
// (loads the IPA dictionary into memory) so callers should build one and
// reuse it.
type Tokenizer struct {
	t *tokenizer.Tokenizer
}

// New constructs a Tokenizer, loading the bundled IPA dictionary.
func New() (*Tokenizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Tokenizer{t: t}, nil
}

// Tokenize splits text into leaf Tokens (spec.md §4.5): text is
// NFC-normalised before being handed to kagome, each returned Token's
// Surface is the NFC-normalised morpheme, and Start is the code-point
// index of that morpheme in the ORIGINAL (pre-normalisation) text,
// recovered via a grapheme-cluster co-iteration between the two forms.
func (tk *Tokenizer) Tokenize(text string) ([]token.Token, error) {
	normalized, byteOffsetMap := normalizeWithOffsetMap(text)
	runeOffsetMap := runeIndexByByteOffset(text, byteOffsetMap)

	raw := tk.t.Tokenize(normalized)
	tokens := make([]token.Token, 0, len(raw))

	normAt := 0
	for _, rt := range raw {
		if rt.Class == tokenizer.DUMMY {
			continue
		}
		surface := rt.Surface
		if surface == "" {
			continue
		}

		start := normAt
		normAt += len(surface)

		features := rt.Features()
		base := surface
		if len(features) > featBaseForm && features[featBaseForm] != "*" {
			base = features[featBaseForm]
		}
		reading := ""
		if len(features) > featReading && features[featReading] != "*" {
			reading = features[featReading]
		}
		if reading == "" {
			reading = kana.ToKatakana(surface)
		}

		tokens = append(tokens, token.Token{
			Surface:  surface,
			Start:    runeOffsetMap[start],
			Base:     base,
			Reading:  reading,
			POS:      decodeFeaturePOS(features),
			ConjForm: decodeFeatureConjForm(features),
		})
	}
	return tokens, nil
}

// normalizeWithOffsetMap returns the NFC form of text and a map from each
// byte offset in the normalised string to the corresponding byte offset in
// the original string (byteOffsetMap has len(normalized)+1 entries so both
// a token's start and its one-past-the-end offset resolve).
//
// Normalisation is applied per grapheme cluster rather than to the whole
// string at once: this keeps cluster boundaries aligned between the two
// forms even when NFC changes a cluster's byte length, which is what lets
// a single byteOffsetMap lookup recover the original span for an arbitrary
// kagome token boundary (design note "Reading of grapheme-boundary
// mapping", spec.md §9).
func normalizeWithOffsetMap(text string) (string, []int) {
	var norm_ strings.Builder
	var byteOffsetMap []int

	origAt := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		normCluster := norm.NFC.String(cluster)
		for i := 0; i < len(normCluster); i++ {
			byteOffsetMap = append(byteOffsetMap, origAt)
		}
		norm_.WriteString(normCluster)
		origAt += len(cluster)
	}
	byteOffsetMap = append(byteOffsetMap, origAt)
	return norm_.String(), byteOffsetMap
}

// runeIndexByByteOffset precomputes, for every normalised-text byte offset
// in byteOffsetMap, the code-point index of the corresponding original-text
// byte offset (spec.md §3: Token.Start is a code-point index).
func runeIndexByByteOffset(original string, byteOffsetMap []int) []int {
	runeIndexAtByte := make([]int, len(original)+1)
	runeIdx := 0
	for byteIdx := range original {
		runeIndexAtByte[byteIdx] = runeIdx
		runeIdx++
	}
	runeIndexAtByte[len(original)] = utf8.RuneCountInString(original)

	out := make([]int, len(byteOffsetMap))
	for i, origByte := range byteOffsetMap {
		out[i] = runeIndexAtByte[origByte]
	}
	return out
}

func decodeFeaturePOS(features []string) pos.POS {
	if len(features) <= featPOS {
		return pos.New(pos.Unknown)
	}
	return mapKagomePOS(features)
}

func decodeFeatureConjForm(features []string) pos.ConjForm {
	if len(features) <= featConjForm || features[featConjForm] == "*" {
		return pos.ConjNone
	}
	return mapKagomeConjForm(features[featConjForm])
}
