package dictbuild

import (
	"encoding/json"
	"time"
)

// SchemaVersion is the frozen on-disk format version (spec.md §6,
// metadata.rs's SCHEMA_VER).
const SchemaVersion uint16 = 2

// Metadata is the small JSON sidecar written next to a built dictionary
// artefact, grounded on
// original_source/crates/yomikiri-dictionary/src/metadata.rs.
type Metadata struct {
	DownloadDate string `json:"downloadDate"`
	FilesSize    int64  `json:"filesSize"`
	UserDownload bool   `json:"userDownload"`
	SchemaVer    uint16 `json:"schemaVer"`
}

// NewMetadata stamps a Metadata for an artefact of filesSize bytes built
// at downloadedAt (passed in rather than read from the clock, so the
// caller controls determinism in tests).
func NewMetadata(downloadedAt time.Time, filesSize int64, userDownload bool) Metadata {
	return Metadata{
		DownloadDate: downloadedAt.UTC().Format(time.RFC3339),
		FilesSize:    filesSize,
		UserDownload: userDownload,
		SchemaVer:    SchemaVersion,
	}
}

// ToJSON serialises the metadata (metadata.rs::DictMetadata::to_json).
func (m Metadata) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
