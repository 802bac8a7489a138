package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glacierdb/glacier/errors"
	qt "github.com/glacierdb/glacier/internal/testing"
	"github.com/glacierdb/glacier/lineage"
	"github.com/glacierdb/glacier/table"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(qt.CreateMigratedTestDB(t), "events", nil)
}

func mustCommit(t *testing.T, s *Store, branch string) *table.Snapshot {
	t.Helper()
	snap, err := s.Commit(branch, "", nil)
	require.NoError(t, err)
	return snap
}

func TestCommit(t *testing.T) {
	s := newTestStore(t)

	t.Run("first commit creates root", func(t *testing.T) {
		root := mustCommit(t, s, table.MainBranch)
		assert.False(t, root.HasParent())

		current := s.CurrentSnapshot()
		require.NotNil(t, current)
		assert.Equal(t, root.ID, current.ID)
	})

	t.Run("commits chain through parent links", func(t *testing.T) {
		head := s.CurrentSnapshot()
		next := mustCommit(t, s, table.MainBranch)

		parent, ok := next.Parent()
		require.True(t, ok)
		assert.Equal(t, head.ID, parent)
		assert.GreaterOrEqual(t, next.TimestampMillis, head.TimestampMillis)
	})

	t.Run("commit to tag is rejected", func(t *testing.T) {
		head := s.CurrentSnapshot()
		require.NoError(t, s.CreateTag("v1", head.ID))

		_, err := s.Commit("v1", "", nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrRefTypeMismatch))
	})

	t.Run("summary round-trips", func(t *testing.T) {
		snap, err := s.Commit(table.MainBranch, "s3://bucket/m1.avro", map[string]string{"operation": "append"})
		require.NoError(t, err)

		loaded := s.Snapshot(snap.ID)
		require.NotNil(t, loaded)
		assert.Equal(t, "s3://bucket/m1.avro", loaded.ManifestList)
		assert.Equal(t, map[string]string{"operation": "append"}, loaded.Summary)
	})
}

func TestRefs(t *testing.T) {
	s := newTestStore(t)
	root := mustCommit(t, s, table.MainBranch)

	require.NoError(t, s.CreateBranch("audit", root.ID))
	require.NoError(t, s.CreateTag("v1", root.ID))

	t.Run("duplicate name rejected", func(t *testing.T) {
		err := s.CreateBranch("audit", root.ID)
		assert.True(t, errors.Is(err, errors.ErrRefAlreadyExists))
	})

	t.Run("ref at unknown snapshot rejected", func(t *testing.T) {
		err := s.CreateBranch("ghost", 424242)
		assert.True(t, errors.Is(err, errors.ErrSnapshotNotFound))
	})

	t.Run("lists all refs", func(t *testing.T) {
		refs, err := s.Refs()
		require.NoError(t, err)
		require.Len(t, refs, 3)
		assert.Equal(t, "audit", refs[0].Name)
		assert.Equal(t, table.MainBranch, refs[1].Name)
		assert.Equal(t, "v1", refs[2].Name)
		assert.Equal(t, table.TagRef, refs[2].Type)
	})

	t.Run("missing ref resolves to nil", func(t *testing.T) {
		assert.Nil(t, s.Ref("nope"))
	})
}

func TestExpireSnapshot(t *testing.T) {
	s := newTestStore(t)
	mustCommit(t, s, table.MainBranch)
	mid := mustCommit(t, s, table.MainBranch)
	head := mustCommit(t, s, table.MainBranch)

	t.Run("head cannot be expired", func(t *testing.T) {
		err := s.ExpireSnapshot(head.ID)
		require.Error(t, err)
	})

	t.Run("expired snapshot stops resolving, links survive", func(t *testing.T) {
		require.NoError(t, s.ExpireSnapshot(mid.ID))

		assert.Nil(t, s.Snapshot(mid.ID))

		// The head still records the expired snapshot as its parent
		loaded := s.Snapshot(head.ID)
		require.NotNil(t, loaded)
		parent, ok := loaded.Parent()
		require.True(t, ok)
		assert.Equal(t, mid.ID, parent)
	})

	t.Run("expiring twice reports not found", func(t *testing.T) {
		err := s.ExpireSnapshot(mid.ID)
		assert.True(t, errors.Is(err, errors.ErrSnapshotNotFound))
	})
}

// TestLineageOverStore runs the engine against the persistent store: same
// history shape as the in-memory lineage fixtures, resolved through SQLite.
func TestLineageOverStore(t *testing.T) {
	s := newTestStore(t)

	base := mustCommit(t, s, table.MainBranch)
	main1 := mustCommit(t, s, table.MainBranch)
	main2 := mustCommit(t, s, table.MainBranch)

	require.NoError(t, s.CreateBranch("b1", base.ID))
	branch1 := mustCommit(t, s, "b1")

	require.NoError(t, s.CreateBranch("fork", base.ID))
	fork0 := mustCommit(t, s, "fork")
	fork1 := mustCommit(t, s, "fork")
	fork2 := mustCommit(t, s, "fork")
	require.NoError(t, s.ExpireSnapshot(fork0.ID))

	assert.True(t, lineage.IsAncestorOf(s, main1.ID, base.ID))
	assert.False(t, lineage.IsAncestorOf(s, branch1.ID, main1.ID))
	assert.False(t, lineage.IsAncestorOf(s, fork2.ID, fork0.ID))
	assert.True(t, lineage.IsParentAncestorOf(s, fork2.ID, fork0.ID))

	assert.Equal(t, []int64{main2.ID, main1.ID, base.ID}, lineage.CurrentAncestorIDs(s))

	oldest := lineage.OldestAncestor(s)
	require.NotNil(t, oldest)
	assert.Equal(t, base.ID, oldest.ID)

	assert.Equal(t, []int64{main2.ID, main1.ID}, lineage.SnapshotIDsBetween(s, base.ID, main2.ID))
	assert.Equal(t, []int64{fork2.ID, fork1.ID}, lineage.Ancestors(fork2.ID, s.Snapshot).CollectIDs())
}
