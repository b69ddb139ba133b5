package fetch

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/yomikiri-go/engine/internal/logging"
	"github.com/yomikiri-go/engine/internal/store"
	"github.com/yomikiri-go/engine/pkg/engine"
)

// tokenizeWorkers bounds how many sentences are tokenized concurrently
// per document (pkg/ingest/workerpool.go's default sizing: a handful of
// workers is enough to saturate CPU-bound tokenization without
// over-subscribing for short documents).
const tokenizeWorkers = 4

// SentenceResult is one sentence's tokenization, keyed by its index
// within the article so progress can resume mid-document.
type SentenceResult struct {
	Index    int
	Sentence string
	Tokens   *engine.Result
	Err      error
}

// ProcessArticle fetches rawURL, records (or recalls) its source row in
// db, tokenizes every sentence from the last recorded position onward
// through eng, and advances the stored progress once the whole batch
// completes. Grounded on cmd/readerer/main.go's top-level flow (fetch ->
// persist source -> analyze -> ingest), replacing the teacher's
// word/source ingestion with direct engine tokenization distributed over
// a workerPool, and a single resumable progress counter in place of
// per-word occurrence tracking.
func ProcessArticle(ctx context.Context, eng *engine.Engine, db store.DBExecutor, client *http.Client, rawURL string) ([]SentenceResult, error) {
	article, err := Fetch(ctx, client, rawURL)
	if err != nil {
		return nil, err
	}

	sourceID, err := store.CreateOrGetSource(db, rawURL, article.Title, time.Now())
	if err != nil {
		return nil, fmt.Errorf("fetch: persist source: %w", err)
	}

	progress, err := store.SourceProgress(db, sourceID)
	if err != nil {
		return nil, fmt.Errorf("fetch: read progress: %w", err)
	}

	sentences := SplitSentences(article.Text)
	pending := sentences[min(progress+1, len(sentences)):]
	logging.Get().Debug().Str("url", rawURL).Int("sentences", len(sentences)).Int("resume_from", progress+1).Msg("processing article")

	results := make([]SentenceResult, len(pending))
	var mu sync.Mutex
	pool := newWorkerPool(tokenizeWorkers, len(pending))
	pool.start(ctx)

	for i, sentence := range pending {
		i, sentence := i, sentence
		if err := pool.submit(func(ctx context.Context) error {
			result, err := eng.Tokenize(sentence, 0)
			mu.Lock()
			results[i] = SentenceResult{Index: progress + 1 + i, Sentence: sentence, Tokens: result, Err: err}
			mu.Unlock()
			return err
		}); err != nil {
			pool.close()
			return nil, fmt.Errorf("fetch: submit tokenize job: %w", err)
		}
	}
	pool.close()

	lastOK := progress
	for _, r := range results {
		if r.Err != nil {
			return results, fmt.Errorf("fetch: tokenize sentence %d: %w", r.Index, r.Err)
		}
		if r.Index > lastOK {
			lastOK = r.Index
		}
	}
	if lastOK > progress {
		if err := store.UpdateSourceProgress(db, sourceID, lastOK); err != nil {
			return results, fmt.Errorf("fetch: update progress: %w", err)
		}
	}

	return results, nil
}
