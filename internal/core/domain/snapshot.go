package domain

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// SnapshotCounts holds the counter observed for each watched nation in one dump.
// A missing entry means the nation was not in the dump, not that its count is zero.
type SnapshotCounts map[CanonicalName]int64

// Snapshot is a stored scan result.
type Snapshot struct {
	Date        string         `json:"date"`
	Source      string         `json:"source"`
	Fingerprint string         `json:"fingerprint"`
	Counts      SnapshotCounts `json:"counts"`
	ScannedAt   time.Time      `json:"scanned_at,omitzero"`
}

// SnapshotKey identifies the scan of one dump for one set of names.
// source is the URL the dump is downloaded from, so a changed mirror misses.
func SnapshotKey(source, date string, names NameSet) string {
	h := xxhash.New()
	_, _ = h.WriteString(source)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(date)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(names.Fingerprint())
	return fmt.Sprintf("%016x", h.Sum64())
}
