// Package errors provides error handling for Glacier.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Sentinel errors for the table metadata domain
//
// Usage:
//
//	if err := store.CreateBranch(name, id); err != nil {
//	    return errors.Wrap(err, "create branch")
//	}
//
//	if errors.Is(err, errors.ErrSnapshotNotFound) {
//	    // handle missing snapshot
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the table metadata domain.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrSnapshotNotFound indicates a snapshot id is not in the retained set.
	// Read paths treat this as an expected condition, not a fault: expired
	// snapshots are referenced by id long after they stop resolving.
	ErrSnapshotNotFound = New("snapshot not found")

	// ErrRefNotFound indicates a named reference does not exist
	ErrRefNotFound = New("reference not found")

	// ErrRefAlreadyExists indicates a branch or tag name is already taken
	ErrRefAlreadyExists = New("reference already exists")

	// ErrRefTypeMismatch indicates an operation targeted the wrong kind of
	// reference, e.g. committing to a tag
	ErrRefTypeMismatch = New("reference type mismatch")

	// ErrEmptyTable indicates the table has no commits yet
	ErrEmptyTable = New("table has no snapshots")
)

// IsNotFoundError checks if an error is or wraps one of the not-found sentinels.
func IsNotFoundError(err error) bool {
	return err != nil && IsAny(err, ErrSnapshotNotFound, ErrRefNotFound)
}

// NewSnapshotNotFound creates a snapshot-not-found error carrying the id.
func NewSnapshotNotFound(id int64) error {
	return Wrapf(ErrSnapshotNotFound, "snapshot %d", id)
}

// NewRefNotFound creates a reference-not-found error carrying the name.
func NewRefNotFound(name string) error {
	return Wrapf(ErrRefNotFound, "reference %q", name)
}
