package pos

// ConjForm is one of the ~40 unidic conjugation-form labels, single-byte
// encoded. The table is ported verbatim (names and byte assignment) from
// original_source/crates/unidic-types/src/conjugation.rs so that the
// manual-patch rule referencing "volitional" (意志推量形) and the
// command-form grammar detector referencing 命令形 line up with the same
// values the tokenizer adapter decodes from the Viterbi tokenizer's detail
// array.
type ConjForm uint8

const (
	ConjNone ConjForm = iota
	ConjKugohou
	ConjKateiFormGeneral
	ConjKateiFormFusion
	ConjMeireiForm
	ConjIzenFormGeneral
	ConjIzenFormAuxiliary
	ConjIshisuiryouForm
	ConjMizenFormSa
	ConjMizenFormSe
	ConjMizenFormGeneral
	ConjMizenFormHatsuonbin
	ConjMizenFormAuxiliary
	ConjShuushiFormUOnbin
	ConjShuushiFormGeneral
	ConjShuushiFormSokuonbin
	ConjShuushiFormHatsuonbin
	ConjShuushiFormFusion
	ConjShuushiFormAuxiliary
	ConjGokanSa
	ConjGokanGeneral
	ConjRentaiFormIOnbin
	ConjRentaiFormUOnbin
	ConjRentaiFormGeneral
	ConjRentaiFormGeneralOkuriganaOmit
	ConjRentaiFormHatsuonbin
	ConjRentaiFormOmit
	ConjRentaiFormAuxiliary
	ConjRenyouFormIOnbin
	ConjRenyouFormIOnbinOkuriganaOmit
	ConjRenyouFormUOnbin
	ConjRenyouFormKiSetsuzoku
	ConjRenyouFormTo
	ConjRenyouFormNi
	ConjRenyouFormGeneral
	ConjRenyouFormGeneralOkuriganaOmit
	ConjRenyouFormSokuonbin
	ConjRenyouFormHatsuonbin
	ConjRenyouFormOmit
	ConjRenyouFormFusion
	ConjRenyouFormAuxiliary
)

// IsPredicative reports whether c is in the 終止形 (terminal/predicative)
// conjugation group or one of its sound-change variants (glossary
// "Predicative form").
func (c ConjForm) IsPredicative() bool {
	switch c {
	case ConjShuushiFormUOnbin, ConjShuushiFormGeneral, ConjShuushiFormSokuonbin,
		ConjShuushiFormHatsuonbin, ConjShuushiFormFusion, ConjShuushiFormAuxiliary:
		return true
	}
	return false
}

// Meireikei (command form, §8 scenario 7's grammar rule) and Ishisuiryou
// (volitional, the は/よそう manual patch) are exposed under their unidic
// names for readability at call sites.
const (
	Meireikei  = ConjMeireiForm
	Volitional = ConjIshisuiryouForm
)

type conjByteEntry struct {
	b byte
	c ConjForm
}

var conjTable = []conjByteEntry{
	{'a', ConjNone},
	{'b', ConjKugohou},
	{'c', ConjKateiFormGeneral},
	{'d', ConjKateiFormFusion},
	{'e', ConjMeireiForm},
	{'f', ConjIzenFormGeneral},
	{'g', ConjIzenFormAuxiliary},
	{'h', ConjIshisuiryouForm},
	{'i', ConjMizenFormSa},
	{'j', ConjMizenFormSe},
	{'k', ConjMizenFormGeneral},
	{'l', ConjMizenFormHatsuonbin},
	{'m', ConjMizenFormAuxiliary},
	{'n', ConjShuushiFormUOnbin},
	{'o', ConjShuushiFormGeneral},
	{'p', ConjShuushiFormSokuonbin},
	{'q', ConjShuushiFormHatsuonbin},
	{'r', ConjShuushiFormFusion},
	{'s', ConjShuushiFormAuxiliary},
	{'t', ConjGokanSa},
	{'u', ConjGokanGeneral},
	{'v', ConjRentaiFormIOnbin},
	{'w', ConjRentaiFormUOnbin},
	{'x', ConjRentaiFormGeneral},
	{'y', ConjRentaiFormGeneralOkuriganaOmit},
	{'z', ConjRentaiFormHatsuonbin},
	{'A', ConjRentaiFormOmit},
	{'B', ConjRentaiFormAuxiliary},
	{'C', ConjRenyouFormIOnbin},
	{'D', ConjRenyouFormIOnbinOkuriganaOmit},
	{'E', ConjRenyouFormUOnbin},
	{'F', ConjRenyouFormKiSetsuzoku},
	{'G', ConjRenyouFormTo},
	{'H', ConjRenyouFormNi},
	{'I', ConjRenyouFormGeneral},
	{'J', ConjRenyouFormGeneralOkuriganaOmit},
	{'K', ConjRenyouFormSokuonbin},
	{'L', ConjRenyouFormHatsuonbin},
	{'M', ConjRenyouFormOmit},
	{'N', ConjRenyouFormFusion},
	{'O', ConjRenyouFormAuxiliary},
}

var conjEncodeTable = func() map[ConjForm]byte {
	m := make(map[ConjForm]byte, len(conjTable))
	for _, e := range conjTable {
		m[e.c] = e.b
	}
	return m
}()

var conjDecodeTable = func() map[byte]ConjForm {
	m := make(map[byte]ConjForm, len(conjTable))
	for _, e := range conjTable {
		m[e.b] = e.c
	}
	return m
}()

// Encode returns the frozen single-byte representation of c.
func (c ConjForm) Encode() byte {
	if b, ok := conjEncodeTable[c]; ok {
		return b
	}
	return conjEncodeTable[ConjNone]
}

// DecodeConjForm parses a single byte into a ConjForm. Unknown codes fall
// back to ConjNone, per spec §4.5.
func DecodeConjForm(b byte) ConjForm {
	if c, ok := conjDecodeTable[b]; ok {
		return c
	}
	return ConjNone
}
