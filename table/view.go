package table

// View is a frozen read view of one table's metadata, the capability the
// lineage engine consumes. Implementations must answer every call against
// the same consistent state for the lifetime of a query; they never mutate.
//
// Snapshot and Ref return nil for ids and names that are not currently
// retained. Implementations are expected to fold storage-level failures
// into absence (after logging) or to fail fatally before handing out a
// View; the engine itself does not retry.
type View interface {
	// Snapshot resolves a snapshot by id, nil if not retained.
	Snapshot(id int64) *Snapshot

	// Ref resolves a named reference, nil if it does not exist.
	Ref(name string) *Ref

	// CurrentSnapshot returns the head of the main branch, nil if the
	// table has no commits.
	CurrentSnapshot() *Snapshot
}
