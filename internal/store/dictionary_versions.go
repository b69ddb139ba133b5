package store

import (
	"database/sql"
	"fmt"
	"time"
)

// DictionaryVersion records one installed dictionary artefact (§6's
// binary format plus its metadata sidecar schema version).
type DictionaryVersion struct {
	ID            int64
	SchemaVersion int
	SourceURL     string
	InstalledAt   time.Time
	IsActive      bool
}

// RecordInstalledDictionary inserts a new dictionary version row and
// marks it active, deactivating whichever version was previously active
// (pkg/db/store.go's CreateOrGetSource retry-on-conflict idiom, adapted:
// here the write always wins since a fresh install always supersedes).
func RecordInstalledDictionary(db DBExecutor, schemaVersion int, sourceURL string, installedAt time.Time) (int64, error) {
	if sourceURL == "" {
		return 0, fmt.Errorf("store: sourceURL must be non-empty")
	}
	if _, err := db.Exec(`UPDATE dictionary_versions SET is_active = 0 WHERE is_active = 1`); err != nil {
		return 0, fmt.Errorf("store: deactivate previous dictionary version: %w", err)
	}

	var id int64
	err := db.QueryRow(
		`INSERT INTO dictionary_versions (schema_version, source_url, installed_at, is_active)
		 VALUES (?, ?, ?, 1)
		 RETURNING id`,
		schemaVersion, sourceURL, installedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("store: record installed dictionary: %w", err)
	}
	return id, nil
}

// ActiveDictionaryVersion returns the currently active dictionary
// version, or ok=false if none has been installed yet.
func ActiveDictionaryVersion(db DBExecutor) (DictionaryVersion, bool, error) {
	var v DictionaryVersion
	var active int
	err := db.QueryRow(
		`SELECT id, schema_version, source_url, installed_at, is_active
		 FROM dictionary_versions WHERE is_active = 1`,
	).Scan(&v.ID, &v.SchemaVersion, &v.SourceURL, &v.InstalledAt, &active)
	if err == sql.ErrNoRows {
		return DictionaryVersion{}, false, nil
	}
	if err != nil {
		return DictionaryVersion{}, false, fmt.Errorf("store: active dictionary version: %w", err)
	}
	v.IsActive = active != 0
	return v, true, nil
}
