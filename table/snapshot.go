// Package table defines the metadata model for a Glacier table: immutable
// snapshots forming a parent-linked version history, and named references
// (branches and tags) pointing into that history.
//
// The types here are read-only views. Snapshots are created by the commit
// path and removed by expiration; nothing in this package mutates them.
package table

// Snapshot is one immutable version of a table.
//
// ParentID is nil only for the root of the table's history. A snapshot's
// parent link is fixed at commit time: expiring the parent later does not
// rewrite the link, it only makes the referenced id unresolvable.
type Snapshot struct {
	ID              int64             `json:"snapshot_id"`
	ParentID        *int64            `json:"parent_snapshot_id,omitempty"`
	TimestampMillis int64             `json:"timestamp_ms"`
	ManifestList    string            `json:"manifest_list,omitempty"`
	Summary         map[string]string `json:"summary,omitempty"`
}

// HasParent reports whether the snapshot records a parent link.
func (s *Snapshot) HasParent() bool {
	return s != nil && s.ParentID != nil
}

// Parent returns the recorded parent id, or ok=false for the root snapshot.
func (s *Snapshot) Parent() (int64, bool) {
	if s == nil || s.ParentID == nil {
		return 0, false
	}
	return *s.ParentID, true
}

// SnapshotLookup resolves a snapshot id against a frozen table state.
//
// A nil result means the id is not currently retained (expired or unknown).
// Absence is an expected condition, never an error: retained snapshots may
// still carry parent links to ids that have since been expired.
type SnapshotLookup func(id int64) *Snapshot
