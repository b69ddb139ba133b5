package store

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	if err := Init(db); err != nil {
		t.Fatalf("init: %v", err)
	}
	return db
}

func TestRecordInstalledDictionaryActivatesNewVersion(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	id1, err := RecordInstalledDictionary(db, 1, "https://example.com/dict-v1.bin", now)
	if err != nil {
		t.Fatalf("record v1: %v", err)
	}

	active, ok, err := ActiveDictionaryVersion(db)
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if !ok || active.ID != id1 {
		t.Fatalf("expected active version %d, got %+v (ok=%v)", id1, active, ok)
	}

	later := now.Add(24 * time.Hour)
	id2, err := RecordInstalledDictionary(db, 1, "https://example.com/dict-v2.bin", later)
	if err != nil {
		t.Fatalf("record v2: %v", err)
	}

	active, ok, err = ActiveDictionaryVersion(db)
	if err != nil {
		t.Fatalf("active after v2: %v", err)
	}
	if !ok || active.ID != id2 || active.SourceURL != "https://example.com/dict-v2.bin" {
		t.Fatalf("expected active version %d, got %+v (ok=%v)", id2, active, ok)
	}
}

func TestActiveDictionaryVersionNoneInstalled(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, ok, err := ActiveDictionaryVersion(db)
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if ok {
		t.Fatalf("expected no active dictionary version")
	}
}

func TestCreateOrGetSourceIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	id1, err := CreateOrGetSource(db, "https://example.com/article", "An Article", now)
	if err != nil {
		t.Fatalf("create source: %v", err)
	}
	id2, err := CreateOrGetSource(db, "https://example.com/article", "An Article (retitled)", now)
	if err != nil {
		t.Fatalf("get source: %v", err)
	}
	if id1 != id2 {
		t.Fatalf("expected same source id, got %d and %d", id1, id2)
	}
}

func TestSourceProgressRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	id, err := CreateOrGetSource(db, "https://example.com/book", "A Book", now)
	if err != nil {
		t.Fatalf("create source: %v", err)
	}

	progress, err := SourceProgress(db, id)
	if err != nil {
		t.Fatalf("initial progress: %v", err)
	}
	if progress != -1 {
		t.Fatalf("expected initial progress -1, got %d", progress)
	}

	if err := UpdateSourceProgress(db, id, 42); err != nil {
		t.Fatalf("update progress: %v", err)
	}
	progress, err = SourceProgress(db, id)
	if err != nil {
		t.Fatalf("progress after update: %v", err)
	}
	if progress != 42 {
		t.Fatalf("expected progress 42, got %d", progress)
	}
}

func TestSettingRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, ok, err := GetSetting(db, "theme"); err != nil || ok {
		t.Fatalf("expected unset setting, got ok=%v err=%v", ok, err)
	}

	if err := SetSetting(db, "theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := GetSetting(db, "theme")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || value != "dark" {
		t.Fatalf("expected theme=dark, got %q (ok=%v)", value, ok)
	}

	if err := SetSetting(db, "theme", "light"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, _, err = GetSetting(db, "theme")
	if err != nil {
		t.Fatalf("get after overwrite: %v", err)
	}
	if value != "light" {
		t.Fatalf("expected theme=light, got %q", value)
	}
}
