package lineage

import "github.com/glacierdb/glacier/table"

// Iterator walks a snapshot parent chain lazily, newest to oldest.
//
// Each Next call performs at most one resolver lookup, so arbitrarily long
// histories can be traversed without materializing them. The walk ends when
// the root is reached (no parent link) or when the next id on the chain is
// no longer resolvable (the history boundary left behind by expiration).
//
// Exhaustion latches: once Next has returned ok=false the iterator stays
// exhausted and never touches the resolver again.
type Iterator struct {
	lookup  table.SnapshotLookup
	nextID  int64
	hasNext bool
}

// Ancestors starts a lazy walk at startID (inclusive), following parent
// links toward the root. If startID itself is unresolvable the walk is
// empty. Every call returns a fresh, independent iterator.
func Ancestors(startID int64, lookup table.SnapshotLookup) *Iterator {
	return &Iterator{lookup: lookup, nextID: startID, hasNext: true}
}

func emptyIterator() *Iterator {
	return &Iterator{}
}

// Next returns the next snapshot on the chain, or ok=false once the walk
// has ended. Calling Next after exhaustion keeps returning ok=false.
func (it *Iterator) Next() (*table.Snapshot, bool) {
	if !it.hasNext {
		return nil, false
	}

	snap := it.lookup(it.nextID)
	if snap == nil {
		// History boundary or unresolvable start. Latch so further
		// calls never re-consult the resolver.
		it.hasNext = false
		it.lookup = nil
		return nil, false
	}

	if parent, ok := snap.Parent(); ok {
		it.nextID = parent
	} else {
		it.hasNext = false
		it.lookup = nil
	}
	return snap, true
}

// Collect drains the iterator into a slice, newest first.
func (it *Iterator) Collect() []*table.Snapshot {
	var snaps []*table.Snapshot
	for snap, ok := it.Next(); ok; snap, ok = it.Next() {
		snaps = append(snaps, snap)
	}
	return snaps
}

// CollectIDs drains the iterator into a slice of snapshot ids, newest first.
func (it *Iterator) CollectIDs() []int64 {
	var ids []int64
	for snap, ok := it.Next(); ok; snap, ok = it.Next() {
		ids = append(ids, snap.ID)
	}
	return ids
}
