// Package catalog provides SQLite-backed persistence for table metadata:
// retained snapshots and named references. A Store bound to one table
// implements table.View, supplying the resolver capability the lineage
// engine consumes.
package catalog

import (
	"database/sql"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/glacierdb/glacier/table"
)

// Query constants
const (
	snapshotSelectQuery = `
		SELECT snapshot_id, parent_snapshot_id, timestamp_ms, manifest_list, summary
		FROM snapshots WHERE table_name = ? AND snapshot_id = ?`

	snapshotListQuery = `
		SELECT snapshot_id, parent_snapshot_id, timestamp_ms, manifest_list, summary
		FROM snapshots WHERE table_name = ? ORDER BY timestamp_ms DESC, snapshot_id DESC`

	refSelectQuery = `
		SELECT name, type, snapshot_id FROM refs WHERE table_name = ? AND name = ?`

	refListQuery = `
		SELECT name, type, snapshot_id FROM refs WHERE table_name = ? ORDER BY name`
)

// Store reads and writes one table's metadata. The read side implements
// table.View: lookups against a frozen state, with storage failures folded
// into absence after logging, per the resolver contract.
type Store struct {
	db     *sql.DB
	table  string
	logger *zap.SugaredLogger
}

var _ table.View = (*Store)(nil)

// NewStore creates a metadata store bound to the named table.
// If logger is nil the store operates silently.
func NewStore(db *sql.DB, tableName string, logger *zap.SugaredLogger) *Store {
	return &Store{
		db:     db,
		table:  tableName,
		logger: logger,
	}
}

// TableName returns the table this store is bound to.
func (s *Store) TableName() string {
	return s.table
}

// Snapshot resolves a snapshot by id, nil if it is not retained.
func (s *Store) Snapshot(id int64) *table.Snapshot {
	row := s.db.QueryRow(snapshotSelectQuery, s.table, id)
	snap, err := scanSnapshot(row)
	if err != nil {
		if err != sql.ErrNoRows && s.logger != nil {
			s.logger.Errorw("Snapshot lookup failed, treating as absent",
				"table", s.table,
				"snapshot_id", id,
				"error", err,
			)
		}
		return nil
	}
	return snap
}

// Ref resolves a named reference, nil if it does not exist.
func (s *Store) Ref(name string) *table.Ref {
	var ref table.Ref
	var refType string
	err := s.db.QueryRow(refSelectQuery, s.table, name).Scan(&ref.Name, &refType, &ref.SnapshotID)
	if err != nil {
		if err != sql.ErrNoRows && s.logger != nil {
			s.logger.Errorw("Ref lookup failed, treating as absent",
				"table", s.table,
				"ref", name,
				"error", err,
			)
		}
		return nil
	}
	ref.Type = table.RefType(refType)
	return &ref
}

// CurrentSnapshot returns the head of the main branch, nil if the table has
// no commits.
func (s *Store) CurrentSnapshot() *table.Snapshot {
	ref := s.Ref(table.MainBranch)
	if ref == nil {
		return nil
	}
	return s.Snapshot(ref.SnapshotID)
}

// Refs lists all references of the table, ordered by name.
func (s *Store) Refs() ([]table.Ref, error) {
	rows, err := s.db.Query(refListQuery, s.table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []table.Ref
	for rows.Next() {
		var ref table.Ref
		var refType string
		if err := rows.Scan(&ref.Name, &refType, &ref.SnapshotID); err != nil {
			return nil, err
		}
		ref.Type = table.RefType(refType)
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// Snapshots lists all retained snapshots of the table, newest first.
func (s *Store) Snapshots() ([]table.Snapshot, error) {
	rows, err := s.db.Query(snapshotListQuery, s.table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []table.Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, *snap)
	}
	return snaps, rows.Err()
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*table.Snapshot, error) {
	var snap table.Snapshot
	var parentID sql.NullInt64
	var summaryJSON string

	if err := row.Scan(&snap.ID, &parentID, &snap.TimestampMillis, &snap.ManifestList, &summaryJSON); err != nil {
		return nil, err
	}
	if parentID.Valid {
		p := parentID.Int64
		snap.ParentID = &p
	}
	if summaryJSON != "" && summaryJSON != "{}" {
		if err := json.Unmarshal([]byte(summaryJSON), &snap.Summary); err != nil {
			return nil, err
		}
	}
	return &snap, nil
}
