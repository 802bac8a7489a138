package catalog

import (
	"database/sql"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/glacierdb/glacier/errors"
	"github.com/glacierdb/glacier/table"
)

const (
	snapshotInsertQuery = `
		INSERT INTO snapshots (table_name, snapshot_id, parent_snapshot_id, timestamp_ms, manifest_list, summary)
		VALUES (?, ?, ?, ?, ?, ?)`

	snapshotExistsQuery = `
		SELECT EXISTS(SELECT 1 FROM snapshots WHERE table_name = ? AND snapshot_id = ?)`

	refUpsertQuery = `
		INSERT INTO refs (table_name, name, type, snapshot_id) VALUES (?, ?, ?, ?)
		ON CONFLICT(table_name, name) DO UPDATE SET snapshot_id = excluded.snapshot_id`

	refInsertQuery = `
		INSERT INTO refs (table_name, name, type, snapshot_id) VALUES (?, ?, ?, ?)`

	refCountForSnapshotQuery = `
		SELECT COUNT(*) FROM refs WHERE table_name = ? AND snapshot_id = ?`
)

// Commit appends a new snapshot to the named branch and advances its head.
// Committing to a branch that does not exist yet creates it; the first
// commit of a table produces the root snapshot with no parent link.
//
// The snapshot timestamp is clamped to the parent's so that timestamps stay
// monotonically non-decreasing along every parent chain, which the lineage
// engine relies on for threshold queries.
func (s *Store) Commit(branch, manifestList string, summary map[string]string) (*table.Snapshot, error) {
	if branch == "" {
		branch = table.MainBranch
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, errors.Wrap(err, "begin commit")
	}
	defer tx.Rollback()

	var parentID *int64
	timestamp := time.Now().UnixMilli()

	// Resolve the branch head inside the transaction so the parent link is
	// taken from the same state the insert lands on.
	var refName, refType string
	var headID int64
	err = tx.QueryRow(refSelectQuery, s.table, branch).Scan(&refName, &refType, &headID)
	switch {
	case err == sql.ErrNoRows:
		// New branch: this commit becomes its root.
	case err != nil:
		return nil, errors.Wrapf(err, "resolve branch %q", branch)
	default:
		if table.RefType(refType) != table.BranchRef {
			return nil, errors.Wrapf(errors.ErrRefTypeMismatch, "cannot commit to tag %q", branch)
		}
		head, err := scanSnapshot(tx.QueryRow(snapshotSelectQuery, s.table, headID))
		if err != nil {
			return nil, errors.Wrapf(errors.NewSnapshotNotFound(headID), "branch %q head", branch)
		}
		parentID = &head.ID
		if head.TimestampMillis > timestamp {
			timestamp = head.TimestampMillis
		}
	}

	id, err := s.newSnapshotID(tx)
	if err != nil {
		return nil, err
	}

	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return nil, errors.Wrap(err, "marshal summary")
	}
	if summary == nil {
		summaryJSON = []byte("{}")
	}

	var parentArg any
	if parentID != nil {
		parentArg = *parentID
	}
	if _, err := tx.Exec(snapshotInsertQuery, s.table, id, parentArg, timestamp, manifestList, string(summaryJSON)); err != nil {
		return nil, errors.Wrap(err, "insert snapshot")
	}
	if _, err := tx.Exec(refUpsertQuery, s.table, branch, string(table.BranchRef), id); err != nil {
		return nil, errors.Wrapf(err, "advance branch %q", branch)
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit tx")
	}

	snap := &table.Snapshot{
		ID:              id,
		ParentID:        parentID,
		TimestampMillis: timestamp,
		ManifestList:    manifestList,
		Summary:         summary,
	}
	if s.logger != nil {
		s.logger.Infow("Snapshot committed",
			"table", s.table,
			"branch", branch,
			"snapshot_id", id,
			"parent_snapshot_id", parentArg,
		)
	}
	return snap, nil
}

// CreateBranch creates a new branch at an existing snapshot.
func (s *Store) CreateBranch(name string, snapshotID int64) error {
	return s.createRef(name, table.BranchRef, snapshotID)
}

// CreateTag creates a new tag at an existing snapshot.
func (s *Store) CreateTag(name string, snapshotID int64) error {
	return s.createRef(name, table.TagRef, snapshotID)
}

func (s *Store) createRef(name string, refType table.RefType, snapshotID int64) error {
	if s.Snapshot(snapshotID) == nil {
		return errors.NewSnapshotNotFound(snapshotID)
	}
	if s.Ref(name) != nil {
		return errors.Wrapf(errors.ErrRefAlreadyExists, "reference %q", name)
	}
	if _, err := s.db.Exec(refInsertQuery, s.table, name, string(refType), snapshotID); err != nil {
		return errors.Wrapf(err, "create %s %q", refType, name)
	}
	if s.logger != nil {
		s.logger.Infow("Reference created",
			"table", s.table,
			"ref", name,
			"type", string(refType),
			"snapshot_id", snapshotID,
		)
	}
	return nil
}

// ExpireSnapshot removes a snapshot from the retained set. Parent links on
// retained descendants are left untouched: this is what creates the history
// boundary the lineage engine degrades at.
//
// A snapshot that is still the head of any reference cannot be expired.
func (s *Store) ExpireSnapshot(id int64) error {
	var heads int
	if err := s.db.QueryRow(refCountForSnapshotQuery, s.table, id).Scan(&heads); err != nil {
		return errors.Wrap(err, "check ref heads")
	}
	if heads > 0 {
		return errors.Newf("snapshot %d is referenced by %d ref(s)", id, heads)
	}

	res, err := s.db.Exec("DELETE FROM snapshots WHERE table_name = ? AND snapshot_id = ?", s.table, id)
	if err != nil {
		return errors.Wrapf(err, "expire snapshot %d", id)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if affected == 0 {
		return errors.NewSnapshotNotFound(id)
	}

	if s.logger != nil {
		s.logger.Infow("Snapshot expired",
			"table", s.table,
			"snapshot_id", id,
		)
	}
	return nil
}

// newSnapshotID picks a random positive id not used by a retained snapshot
// of this table. Collisions with long-expired ids are possible in principle
// but negligible in a 63-bit space.
func (s *Store) newSnapshotID(tx *sql.Tx) (int64, error) {
	for {
		id := rand.Int63()
		if id == 0 {
			continue
		}
		var exists bool
		if err := tx.QueryRow(snapshotExistsQuery, s.table, id).Scan(&exists); err != nil {
			return 0, errors.Wrap(err, "check snapshot id")
		}
		if !exists {
			return id, nil
		}
	}
}
