// Command yomikiri-reader fetches a URL, extracts its readable article
// text, and tokenizes/looks up every sentence through the engine,
// resuming from the last processed sentence on repeat runs. Grounded on
// the teacher's cmd/readerer/main.go (flag-based CLI, sqlite setup,
// fetch-then-analyze flow), adapted to call internal/fetch and
// pkg/engine instead of pkg/readerer and pkg/ingest.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/yomikiri-go/engine/internal/fetch"
	"github.com/yomikiri-go/engine/internal/logging"
	"github.com/yomikiri-go/engine/internal/store"
	"github.com/yomikiri-go/engine/pkg/engine"
)

func main() {
	urlFlag := flag.String("url", "", "URL to fetch and tokenize")
	dbFlag := flag.String("db", "yomikiri-reader.db", "path to the SQLite reading-progress database")
	dictFlag := flag.String("dict", "", "path to the binary dictionary artefact")
	flag.Parse()

	logging.InitConsole(zerolog.InfoLevel)

	if *urlFlag == "" {
		log.Fatal("Please provide -url")
	}
	if *dictFlag == "" {
		log.Fatal("Please provide -dict")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	conn, err := sql.Open("sqlite3", *dbFlag)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()

	if err := store.Init(conn); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	dictBytes, err := os.ReadFile(*dictFlag)
	if err != nil {
		log.Fatalf("Failed to read dictionary artefact: %v", err)
	}

	eng, err := engine.New(dictBytes)
	if err != nil {
		log.Fatalf("Failed to construct engine: %v", err)
	}

	results, err := fetch.ProcessArticle(ctx, eng, conn, nil, *urlFlag)
	if err != nil {
		log.Fatalf("Failed to process article: %v", err)
	}

	for _, r := range results {
		fmt.Printf("[%d] %s (%d tokens, %d entries)\n", r.Index, r.Sentence, len(r.Tokens.Tokens), len(r.Tokens.Entries))
	}
	fmt.Printf("Processed %d sentences.\n", len(results))
}
