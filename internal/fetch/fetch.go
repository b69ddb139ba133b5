// Package fetch downloads an article by URL, extracts its readable text,
// splits it into sentences, and feeds each sentence through the engine —
// the out-of-core reader pipeline spec.md names only as a consumer of the
// Tokenize/Search API. Grounded on the teacher's cmd/readerer/main.go
// (HTTP fetch with browser-spoofing headers, size-limited body read,
// go-readability extraction) and pkg/readerer/readerer.go (SanitizeRuby,
// sentence splitting), adapted from "analyze with kagome directly, persist
// word/source rows" to "tokenize through pkg/engine, persist only source
// reading progress through internal/store".
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"
)

// maxBodySize caps the fetched HTML body to bound memory use against
// untrusted URLs (cmd/readerer/main.go's same limit).
const maxBodySize = 10 * 1024 * 1024

// Article is the readable content extracted from a fetched page.
type Article struct {
	URL      string
	Title    string
	SiteName string
	Byline   string
	Text     string
}

// Fetch retrieves rawURL, strips furigana ruby markup, and extracts the
// readable article body.
func Fetch(ctx context.Context, client *http.Client, rawURL string) (*Article, error) {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: build request: %w", err)
	}
	setBrowserHeaders(req)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: request %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch: %s returned status %d", rawURL, resp.StatusCode)
	}
	if resp.ContentLength > int64(maxBodySize) {
		return nil, fmt.Errorf("fetch: %s content-length %d exceeds %d byte limit", rawURL, resp.ContentLength, maxBodySize)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("fetch: read body: %w", err)
	}
	if int64(len(body)) >= int64(maxBodySize) {
		return nil, fmt.Errorf("fetch: %s body exceeded %d byte limit", rawURL, maxBodySize)
	}

	body = SanitizeRuby(body)

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: parse url %s: %w", rawURL, err)
	}

	article, err := readability.FromReader(bytes.NewReader(body), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: extract article: %w", err)
	}

	return &Article{
		URL:      rawURL,
		Title:    article.Title,
		SiteName: article.SiteName,
		Byline:   article.Byline,
		Text:     article.TextContent,
	}, nil
}

// setBrowserHeaders mimics a real browser request, matching sites that
// block bare Go http.Client requests (cmd/readerer/main.go's header set).
func setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9,ja;q=0.8")
	req.Header.Set("Referer", "https://www.google.com/")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
}

var (
	reRT = regexp.MustCompile(`(?si)<rt\b[^>]*>.*?</rt>`)
	reRP = regexp.MustCompile(`(?si)<rp\b[^>]*>.*?</rp>`)
)

// SanitizeRuby strips <rt>/<rp> furigana markup from HTML so readability
// doesn't duplicate kanji text with its reading (e.g. "漢字" becoming
// "漢字かんじ"). Operates on bytes; safe for Shift_JIS since <, >, r, t, p
// are all ASCII and never appear as a trailing byte of a multi-byte
// Shift_JIS sequence.
func SanitizeRuby(content []byte) []byte {
	cleaned := reRT.ReplaceAll(content, []byte{})
	cleaned = reRP.ReplaceAll(cleaned, []byte{})
	return cleaned
}

// SplitSentences breaks text on Japanese sentence-final punctuation and
// newlines, discarding blank fragments.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		if r == '。' || r == '！' || r == '？' || r == '\n' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, current.String())
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, current.String())
	}
	return sentences
}
