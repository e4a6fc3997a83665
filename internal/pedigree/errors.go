package pedigree

import (
	"fmt"
	"strings"
)

// AncestralLoopError reports that the ancestry graph contains a directed
// cycle reachable from PersonID. Cycle is the offending stack suffix, in
// traversal order, ending back at PersonID.
type AncestralLoopError struct {
	PersonID PersonId
	Cycle    []PersonId
}

func (e *AncestralLoopError) Error() string {
	parts := make([]string, len(e.Cycle))
	for i, id := range e.Cycle {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("ancestral loop detected at person %d: %s", e.PersonID, strings.Join(parts, " -> "))
}

// ConsanguinityComputationError reports that the fixed-point sweep in
// ComputeConsanguinity made no progress while persons remained pending.
// Pending is the unresolved id set, in ascending order.
type ConsanguinityComputationError struct {
	Pending []PersonId
}

func (e *ConsanguinityComputationError) Error() string {
	return fmt.Sprintf("consanguinity computation stalled with %d person(s) unresolved", len(e.Pending))
}

// UnknownPersonError reports that a query referenced a PersonId not
// present in the pedigree (more precisely, one without a topological
// rank).
type UnknownPersonError struct {
	PersonID PersonId
}

func (e *UnknownPersonError) Error() string {
	return fmt.Sprintf("unknown person %d", e.PersonID)
}

// MissingRootError reports that a Sosa query named a root id absent from
// the pedigree.
type MissingRootError struct {
	Root PersonId
}

func (e *MissingRootError) Error() string {
	return fmt.Sprintf("missing sosa root %d", e.Root)
}

// InconsistentSosaNumberError reports a collision during Sosa assignment:
// either the same person was reached with two different numbers, or the
// same number was claimed by two different persons. ConflictingPersonID is
// set only in the second case.
type InconsistentSosaNumberError struct {
	PersonID            PersonId
	AttemptedValue      int64
	ExistingValue       int64
	ConflictingPersonID *PersonId
}

func (e *InconsistentSosaNumberError) Error() string {
	if e.ConflictingPersonID != nil {
		return fmt.Sprintf("inconsistent sosa number: %d already assigned to person %d, person %d also claims it",
			e.AttemptedValue, *e.ConflictingPersonID, e.PersonID)
	}
	return fmt.Sprintf("inconsistent sosa number for person %d: attempted %d, already %d",
		e.PersonID, e.AttemptedValue, e.ExistingValue)
}

// DiskCacheError reports a recoverable I/O failure reading or writing the
// cousin on-disk cache. Callers may log and treat it as a cache miss.
type DiskCacheError struct {
	Path string
	Op   string
	Err  error
}

func (e *DiskCacheError) Error() string {
	return fmt.Sprintf("cousin disk cache: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *DiskCacheError) Unwrap() error { return e.Err }
