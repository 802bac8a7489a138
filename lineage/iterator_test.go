package lineage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glacierdb/glacier/table"
)

// countingLookup wraps a lookup and counts resolver invocations.
func countingLookup(m *memTable, calls *int) table.SnapshotLookup {
	return func(id int64) *table.Snapshot {
		*calls++
		return m.Snapshot(id)
	}
}

func TestIteratorExhaustionIsStable(t *testing.T) {
	m := newTestTable(t)

	var calls int
	it := Ancestors(fork2ID, countingLookup(m, &calls))

	for _, ok := it.Next(); ok; _, ok = it.Next() {
	}
	callsAtExhaustion := calls

	// Exhaustion must latch: repeated Next calls keep reporting done
	// without going back to the resolver.
	for i := 0; i < 5; i++ {
		snap, ok := it.Next()
		assert.Nil(t, snap)
		assert.False(t, ok)
	}
	assert.Equal(t, callsAtExhaustion, calls)
}

func TestIteratorIsLazy(t *testing.T) {
	m := newTestTable(t)

	var calls int
	it := Ancestors(main2ID, countingLookup(m, &calls))
	assert.Zero(t, calls, "creating an iterator must not touch the resolver")

	snap, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, int64(main2ID), snap.ID)
	assert.Equal(t, 1, calls, "each step resolves exactly one snapshot")

	it.Next()
	assert.Equal(t, 2, calls)
}

func TestIteratorRootTermination(t *testing.T) {
	m := newTestTable(t)

	var calls int
	it := Ancestors(baseID, countingLookup(m, &calls))

	snap, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, int64(baseID), snap.ID)

	// Root has no parent link, so the walk ends without another lookup.
	_, ok = it.Next()
	assert.False(t, ok)
	assert.Equal(t, 1, calls)
}

func TestIteratorNoDuplicates(t *testing.T) {
	m := newTestTable(t)

	seen := make(map[int64]bool)
	it := CurrentAncestors(m)
	for snap, ok := it.Next(); ok; snap, ok = it.Next() {
		assert.False(t, seen[snap.ID], "snapshot %d yielded twice", snap.ID)
		seen[snap.ID] = true
	}
}
