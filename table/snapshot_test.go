package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotParent(t *testing.T) {
	parent := int64(41)
	child := &Snapshot{ID: 42, ParentID: &parent, TimestampMillis: 1000}
	root := &Snapshot{ID: 41, TimestampMillis: 900}

	assert.True(t, child.HasParent())
	got, ok := child.Parent()
	assert.True(t, ok)
	assert.Equal(t, parent, got)

	assert.False(t, root.HasParent())
	_, ok = root.Parent()
	assert.False(t, ok)

	t.Run("nil receiver", func(t *testing.T) {
		var snap *Snapshot
		assert.False(t, snap.HasParent())
		_, ok := snap.Parent()
		assert.False(t, ok)
	})
}

func TestRefIsBranch(t *testing.T) {
	branch := &Ref{Name: MainBranch, Type: BranchRef, SnapshotID: 1}
	tag := &Ref{Name: "v1", Type: TagRef, SnapshotID: 1}
	var missing *Ref

	assert.True(t, branch.IsBranch())
	assert.False(t, tag.IsBranch())
	assert.False(t, missing.IsBranch())
}
