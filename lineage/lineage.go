// Package lineage answers ancestry questions over a table's snapshot
// history: ancestor predicates, oldest-ancestor queries, and ranged walks
// between two snapshots.
//
// Every query is a pure function of a frozen table.View (or a raw
// table.SnapshotLookup) and the ids involved. The engine tolerates expired
// history throughout: an unresolvable id degrades a walk to its resolvable
// prefix rather than failing, and predicates distinguish a snapshot's own
// identity from the parent link recorded on its descendants, which is what
// keeps them exact once expiration has punched holes in the chain.
package lineage

import "github.com/glacierdb/glacier/table"

// IsAncestorOf reports whether ancestorID is an ancestor of snapshotID,
// counting a snapshot as its own ancestor.
//
// The walk only yields snapshots it can resolve, so an expired ancestorID
// is never matched even when it is genuinely part of the lineage; see
// IsParentAncestorOf for the link-based variant that survives expiration.
func IsAncestorOf(v table.View, snapshotID, ancestorID int64) bool {
	it := Ancestors(snapshotID, v.Snapshot)
	for snap, ok := it.Next(); ok; snap, ok = it.Next() {
		if snap.ID == ancestorID {
			return true
		}
	}
	return false
}

// IsCurrentAncestor reports whether ancestorID is an ancestor of the main
// branch's current head. False when the table has no commits.
func IsCurrentAncestor(v table.View, ancestorID int64) bool {
	current := v.CurrentSnapshot()
	if current == nil {
		return false
	}
	return IsAncestorOf(v, current.ID, ancestorID)
}

// IsParentAncestorOf reports whether some resolvable snapshot on the chain
// starting at snapshotID records ancestorID as its parent link.
//
// Unlike IsAncestorOf this does not require ancestorID itself to be
// resolvable: a retained child's parent link is enough, so the predicate
// stays true for ancestors that have since been expired. It is not
// reflexive; a snapshot never records itself as a parent.
func IsParentAncestorOf(v table.View, snapshotID, ancestorID int64) bool {
	it := Ancestors(snapshotID, v.Snapshot)
	for snap, ok := it.Next(); ok; snap, ok = it.Next() {
		if parent, hasParent := snap.Parent(); hasParent && parent == ancestorID {
			return true
		}
	}
	return false
}

// OldestAncestorOf returns the most distant still-resolvable ancestor of
// snapshotID: the root of retained history reachable from it, which is not
// necessarily the table's original root once expiration has run. Nil when
// snapshotID itself is unresolvable.
func OldestAncestorOf(v table.View, snapshotID int64) *table.Snapshot {
	var oldest *table.Snapshot
	it := Ancestors(snapshotID, v.Snapshot)
	for snap, ok := it.Next(); ok; snap, ok = it.Next() {
		oldest = snap
	}
	return oldest
}

// OldestAncestor returns the oldest resolvable ancestor of the main
// branch's current head, nil when the table has no commits.
func OldestAncestor(v table.View) *table.Snapshot {
	current := v.CurrentSnapshot()
	if current == nil {
		return nil
	}
	return OldestAncestorOf(v, current.ID)
}

// OldestAncestorAfter returns the most distant ancestor of the main
// branch's head whose commit timestamp is at or after timestampMillis.
//
// Timestamps are monotonically non-decreasing along a parent chain, so the
// walk stops at the first snapshot below the threshold: everything older is
// below it too. Returns nil when no ancestor satisfies the threshold,
// including when the table has no commits.
func OldestAncestorAfter(v table.View, timestampMillis int64) *table.Snapshot {
	var candidate *table.Snapshot
	it := CurrentAncestors(v)
	for snap, ok := it.Next(); ok; snap, ok = it.Next() {
		if snap.TimestampMillis < timestampMillis {
			return candidate
		}
		candidate = snap
	}
	// Whole retained chain satisfies the threshold.
	return candidate
}

// SnapshotIDsBetween returns the ids reachable from toID down to fromID,
// newest first, inclusive of toID and exclusive of fromID.
//
// fromID is at most a stopping point, never a requirement: when it is not
// on the chain the walk runs to the root or history boundary and the full
// chain is returned.
func SnapshotIDsBetween(v table.View, fromID, toID int64) []int64 {
	ids := AncestorsBetween(v, toID, fromID).CollectIDs()
	if ids == nil {
		return []int64{}
	}
	return ids
}

// AncestorsBetween lazily walks from latestID (inclusive) down to oldestID
// (exclusive). The boundary is enforced by masking oldestID from the
// resolver, so an oldestID that is not on the chain simply never stops the
// walk and the result degrades to the unbounded chain.
func AncestorsBetween(v table.View, latestID, oldestID int64) *Iterator {
	return Ancestors(latestID, func(id int64) *table.Snapshot {
		if id == oldestID {
			return nil
		}
		return v.Snapshot(id)
	})
}

// CurrentAncestors lazily walks the full resolvable chain of the main
// branch's current head, newest first. Empty when the table has no commits.
func CurrentAncestors(v table.View) *Iterator {
	current := v.CurrentSnapshot()
	if current == nil {
		return emptyIterator()
	}
	return Ancestors(current.ID, v.Snapshot)
}

// CurrentAncestorIDs returns the ids of the main branch's full resolvable
// chain, newest first.
func CurrentAncestorIDs(v table.View) []int64 {
	return CurrentAncestors(v).CollectIDs()
}
