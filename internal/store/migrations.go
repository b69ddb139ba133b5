package store

// migrationsSQL is the full schema, executed as one batch so SQLite (not
// naive semicolon-splitting) parses the statements — safer when a
// statement body might itself contain a semicolon. Grounded on
// pkg/db/db.go's InitDB, which names this same identifier but never
// defines it; this port supplies the schema the teacher's comment
// describes instead of leaving it dangling.
const migrationsSQL = `
CREATE TABLE IF NOT EXISTS dictionary_versions (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	schema_version  INTEGER NOT NULL,
	source_url      TEXT NOT NULL,
	installed_at    DATETIME NOT NULL,
	is_active       INTEGER NOT NULL DEFAULT 0
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_dictionary_versions_active
	ON dictionary_versions(is_active)
	WHERE is_active = 1;

CREATE TABLE IF NOT EXISTS sources (
	id                       INTEGER PRIMARY KEY AUTOINCREMENT,
	url                      TEXT NOT NULL UNIQUE,
	title                    TEXT,
	last_processed_sentence  INTEGER NOT NULL DEFAULT -1,
	added_at                 DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
	key    TEXT PRIMARY KEY,
	value  TEXT NOT NULL
);
`
