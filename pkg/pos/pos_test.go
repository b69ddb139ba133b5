package pos

import "testing"

func TestRoundTrip(t *testing.T) {
	for _, e := range table {
		p := POS{e.family, e.sub}
		if got := Decode(p.Encode()); got != p {
			t.Errorf("round trip %v: got %v", p, got)
		}
		if p.Encode() != e.b {
			t.Errorf("encode %v: got %q want %q", p, p.Encode(), e.b)
		}
	}
}

func TestDecodeUnknownByte(t *testing.T) {
	got := Decode(0xFF)
	want := POS{Unknown, SubUnknown}
	if got != want {
		t.Errorf("decode unknown byte: got %v want %v", got, want)
	}
}

func TestConjRoundTrip(t *testing.T) {
	for _, e := range conjTable {
		if got := DecodeConjForm(e.c.Encode()); got != e.c {
			t.Errorf("conj round trip %v: got %v", e.c, got)
		}
	}
}

func TestMeireikeiIsCommandForm(t *testing.T) {
	if Meireikei != ConjMeireiForm {
		t.Error("Meireikei alias mismatch")
	}
}
