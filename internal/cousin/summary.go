// Package cousin implements C7: cousin classification, the (depth_a,
// depth_b) cousin matrix, cousin listings, and the in-memory/on-disk
// cousin caches. It consumes the RelationshipSummary derived from
// internal/pedigree's RelationshipResult; it never computes kinship or
// consanguinity itself.
package cousin

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/cacack/pedigree-engine/internal/pedigree"
)

// RelationshipLabelResolver maps a PersonId to a stable human-readable key
// for display in a RelationshipSummary. It is never consulted by any
// algorithmic decision; it only annotates the summary.
type RelationshipLabelResolver func(pedigree.PersonId) string

// AncestorSummary is one common ancestor entry in a RelationshipSummary:
// the ancestor's label plus the generation distances and branch paths
// that the relationship sweep (C5) recorded for it.
type AncestorSummary struct {
	Ancestor pedigree.PersonId
	Label    string

	// GenA and GenB are the minimum BranchRecord length recorded in
	// PathsToA and PathsToB respectively.
	GenA int
	GenB int

	PathsToA []pedigree.BranchRecord
	PathsToB []pedigree.BranchRecord
}

// RelationshipSummary is the human-facing view of a RelationshipResult
// that the cousin classifier, matrix, and listings all consume.
type RelationshipSummary struct {
	QueryID uuid.UUID

	PersonA, PersonB pedigree.PersonId
	LabelA, LabelB   string

	Coefficient     float64
	CommonAncestors []AncestorSummary
}

// SummarizeRelationship runs a branch-including relationship query between
// a and b and shapes the result into a RelationshipSummary. resolve may be
// nil, in which case labels are left empty.
func SummarizeRelationship(ri *pedigree.RelationshipInfo, a, b pedigree.PersonId, resolve RelationshipLabelResolver) (*RelationshipSummary, error) {
	result, err := ri.RelationshipAndLinks(a, b, true)
	if err != nil {
		return nil, err
	}

	label := func(id pedigree.PersonId) string {
		if resolve == nil {
			return ""
		}
		return resolve(id)
	}

	summary := &RelationshipSummary{
		QueryID:     result.QueryID,
		PersonA:     a,
		PersonB:     b,
		LabelA:      label(a),
		LabelB:      label(b),
		Coefficient: result.Coefficient,
	}

	ancestors := make([]AncestorSummary, 0, len(result.TopAncestors))
	for _, anc := range result.TopAncestors {
		pathsA := result.PathsToA[anc]
		pathsB := result.PathsToB[anc]
		ancestors = append(ancestors, AncestorSummary{
			Ancestor: anc,
			Label:    label(anc),
			GenA:     minBranchLength(pathsA),
			GenB:     minBranchLength(pathsB),
			PathsToA: pathsA,
			PathsToB: pathsB,
		})
	}
	summary.CommonAncestors = ancestors

	return summary, nil
}

// minBranchLength returns the smallest Length among recs, or 0 if recs is
// empty. When the ancestor is the target itself, recs holds the
// zero-length, zero-node BranchRecord seeded at query start, so the
// result is 0 as well.
func minBranchLength(recs []pedigree.BranchRecord) int {
	if len(recs) == 0 {
		return 0
	}
	min := recs[0].Length
	for _, r := range recs[1:] {
		if r.Length < min {
			min = r.Length
		}
	}
	return min
}

// Fingerprint is a stable digest of the summary's classification-relevant
// content: the two persons, the coefficient, and each common ancestor's id
// and generation distances (but not the full branch path lists, which
// would make the in-memory/disk cache keys needlessly large). Used by
// cousin.Engine to key its matrix caches.
func (s *RelationshipSummary) Fingerprint() string {
	h := sha1.New()
	fmt.Fprintf(h, "%d|%d|%x", s.PersonA, s.PersonB, math.Float64bits(s.Coefficient))
	ancestors := append([]AncestorSummary{}, s.CommonAncestors...)
	sort.Slice(ancestors, func(i, j int) bool { return ancestors[i].Ancestor < ancestors[j].Ancestor })
	for _, anc := range ancestors {
		fmt.Fprintf(h, "|%d:%d:%d", anc.Ancestor, anc.GenA, anc.GenB)
	}
	return hex.EncodeToString(h.Sum(nil))
}
