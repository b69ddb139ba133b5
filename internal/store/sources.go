package store

import (
	"database/sql"
	"fmt"
	"time"
)

// Source is a fetched article or text the reader pipeline (internal/fetch)
// has processed or is processing, tracked so re-reading the same URL can
// resume from where it left off (pkg/db/store.go's
// GetSourceProgress/UpdateSourceProgress, adapted from "book/article the
// user is reading" to the same concept unchanged — the teacher's own
// domain already matched this one here).
type Source struct {
	ID                    int64
	URL                   string
	Title                 string
	LastProcessedSentence int
	AddedAt               time.Time
}

// CreateOrGetSource returns the existing source row for url, or inserts
// one and returns its id (pkg/db/store.go::CreateOrGetSource, simplified:
// url is unique, so this is a plain upsert rather than a retry loop).
func CreateOrGetSource(db DBExecutor, url, title string, addedAt time.Time) (int64, error) {
	if url == "" {
		return 0, fmt.Errorf("store: url must be non-empty")
	}
	var id int64
	err := db.QueryRow(
		`INSERT INTO sources (url, title, last_processed_sentence, added_at)
		 VALUES (?, ?, -1, ?)
		 ON CONFLICT(url) DO UPDATE SET title = excluded.title
		 RETURNING id`,
		url, title, addedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("store: create or get source: %w", err)
	}
	return id, nil
}

// SourceProgress returns the last processed sentence index for sourceID.
func SourceProgress(db DBExecutor, sourceID int64) (int, error) {
	var index int
	err := db.QueryRow(`SELECT last_processed_sentence FROM sources WHERE id = ?`, sourceID).Scan(&index)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("store: source %d: %w", sourceID, sql.ErrNoRows)
	}
	if err != nil {
		return 0, fmt.Errorf("store: source progress: %w", err)
	}
	return index, nil
}

// UpdateSourceProgress records how far sourceID has been read through.
func UpdateSourceProgress(db DBExecutor, sourceID int64, index int) error {
	_, err := db.Exec(`UPDATE sources SET last_processed_sentence = ? WHERE id = ?`, index, sourceID)
	if err != nil {
		return fmt.Errorf("store: update source progress: %w", err)
	}
	return nil
}
