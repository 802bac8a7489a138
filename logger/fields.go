package logger

// Standard field names for consistent structured logging across Glacier.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity
	FieldTable    = "table"
	FieldSnapshot = "snapshot_id"
	FieldParent   = "parent_snapshot_id"
	FieldRef      = "ref"
	FieldBranch   = "branch"

	// Components
	FieldComponent = "component"

	// Operations
	FieldOperation = "operation"
	FieldQuery     = "query"

	// Errors
	FieldError = "error"

	// Counts
	FieldCount = "count"
)
