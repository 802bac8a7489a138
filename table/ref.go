package table

// MainBranch is the default reference name. No-arg query forms (current
// ancestors, oldest ancestor) resolve against its head.
const MainBranch = "main"

// RefType distinguishes mutable branches from fixed tags.
type RefType string

const (
	BranchRef RefType = "branch"
	TagRef    RefType = "tag"
)

// Ref is a named pointer to a snapshot id. Branch heads advance on commit;
// tags never move.
type Ref struct {
	Name       string  `json:"name"`
	Type       RefType `json:"type"`
	SnapshotID int64   `json:"snapshot_id"`
}

// IsBranch reports whether the reference is a branch.
func (r *Ref) IsBranch() bool {
	return r != nil && r.Type == BranchRef
}
