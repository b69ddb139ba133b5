package fetch

import (
	"bytes"
	"net/url"
	"strings"
	"testing"

	"github.com/go-shiori/go-readability"
)

func TestSanitizeRuby(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple ruby",
			input:    "<ruby>漢字<rt>かんじ</rt></ruby>",
			expected: "<ruby>漢字</ruby>",
		},
		{
			name:     "ruby with rp",
			input:    "<ruby>漢字<rp>(</rp><rt>かんじ</rt><rp>)</rp></ruby>",
			expected: "<ruby>漢字</ruby>",
		},
		{
			name:     "multiple ruby",
			input:    "<ruby>私<rt>わたし</rt></ruby>は<ruby>猫<rt>ねこ</rt></ruby>である",
			expected: "<ruby>私</ruby>は<ruby>猫</ruby>である",
		},
		{
			name:     "attributes in tags",
			input:    "<ruby class='test'>漢字<rt class='reading'>かんじ</rt></ruby>",
			expected: "<ruby class='test'>漢字</ruby>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeRuby([]byte(tt.input))
			if string(result) != tt.expected {
				t.Errorf("got %q, want %q", string(result), tt.expected)
			}
		})
	}
}

func TestSanitizeRubyPreventsReadabilityDuplication(t *testing.T) {
	html := `<html><body><article><p><ruby>漢字<rt>かんじ</rt></ruby>を勉強する。</p></article></body></html>`
	sanitized := SanitizeRuby([]byte(html))

	fakeURL, _ := url.Parse("http://localhost/furigana")
	article, err := readability.FromReader(bytes.NewReader(sanitized), fakeURL)
	if err != nil {
		t.Fatalf("readability extraction failed: %v", err)
	}

	if strings.Contains(article.TextContent, "漢字かんじ") {
		t.Errorf("extracted text still contains duplicated furigana: %q", article.TextContent)
	}
}

func TestSplitSentences(t *testing.T) {
	text := "これは文です。これも文です！本当？最後の行\n"
	sentences := SplitSentences(text)

	want := []string{"これは文です。", "これも文です！", "本当？", "最後の行\n"}
	if len(sentences) != len(want) {
		t.Fatalf("got %d sentences %v, want %d %v", len(sentences), sentences, len(want), want)
	}
	for i, s := range sentences {
		if s != want[i] {
			t.Errorf("sentence %d: got %q, want %q", i, s, want[i])
		}
	}
}

func TestSplitSentencesSkipsBlankFragments(t *testing.T) {
	text := "一文目。   \n\n二文目。"
	sentences := SplitSentences(text)

	for _, s := range sentences {
		if strings.TrimSpace(s) == "" {
			t.Fatalf("expected no blank sentence fragments, got %v", sentences)
		}
	}
	if len(sentences) != 2 {
		t.Fatalf("got %d sentences %v, want 2", len(sentences), sentences)
	}
}

func TestSplitSentencesNoTrailingDelimiter(t *testing.T) {
	sentences := SplitSentences("途中で切れた文")
	if len(sentences) != 1 || sentences[0] != "途中で切れた文" {
		t.Fatalf("got %v, want single unterminated sentence", sentences)
	}
}
