package kana

import "testing"

func TestToHiragana(t *testing.T) {
	cases := map[string]string{
		"ワタシ": "わたし",
		"カモ":  "かも",
		"猫":   "猫",
		"":    "",
	}
	for in, want := range cases {
		if got := ToHiragana(in); got != want {
			t.Errorf("ToHiragana(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToKatakana(t *testing.T) {
	if got := ToKatakana("わたし"); got != "ワタシ" {
		t.Errorf("ToKatakana = %q, want ワタシ", got)
	}
}

func TestIsKanaOnly(t *testing.T) {
	if !IsKanaOnly("かもしれない") {
		t.Error("expected kana-only")
	}
	if IsKanaOnly("食べた") {
		t.Error("expected not kana-only (contains kanji)")
	}
	if !IsKanaOnly("") {
		t.Error("empty string should be kana-only")
	}
}

func TestEndsInGoDan(t *testing.T) {
	if EndsInGoDan("食べ") != EDan {
		t.Errorf("べ (ぶ row) should be e-dan, got %v", EndsInGoDan("食べ"))
	}
	if EndsInGoDan("") != NotGoDan {
		t.Error("empty should be NotGoDan")
	}
	if EndsInGoDan("買わ") != ADan {
		t.Errorf("わ should be a-dan, got %v", EndsInGoDan("買わ"))
	}
	if EndsInGoDan("書く") != UDan {
		t.Errorf("く should be u-dan, got %v", EndsInGoDan("書く"))
	}
}

func TestIsKanji(t *testing.T) {
	if !IsKanji('猫') {
		t.Error("猫 should be kanji")
	}
	if IsKanji('あ') {
		t.Error("あ should not be kanji")
	}
}
