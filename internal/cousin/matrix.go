package cousin

import (
	"fmt"
	"sort"
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/cacack/pedigree-engine/internal/pedigree"
)

// MatrixEntry is one (ancestor, pathA, pathB) witness of a relationship:
// one concrete pair of branch paths through a common ancestor, with its
// own classification.
type MatrixEntry struct {
	Ancestor pedigree.PersonId
	PathA    pedigree.BranchRecord
	PathB    pedigree.BranchRecord
	Degree   CousinDegree
}

// DepthBucket is the inner map of a CousinMatrix: depth_b -> entries,
// insertion-ordered.
type DepthBucket = *orderedmap.OrderedMap[int, []MatrixEntry]

// CousinMatrix buckets MatrixEntry by (depth_a, depth_b). Outer and inner
// maps both iterate deterministically: outer sorted by depth_a ascending
// (and, within BuildCousinMatrix's construction, inner buckets sorted by
// depth_b ascending), with entries within a bucket in
// ancestor-insertion-then-path-index order.
type CousinMatrix = *orderedmap.OrderedMap[int, DepthBucket]

// BuildCousinMatrix enumerates every (ancestor, pathA, pathB) triple in
// summary, classifies each, deduplicates by (ancestor, pathA.Nodes,
// pathB.Nodes), and buckets the survivors by (depth_a, depth_b).
//
// Outer iteration (for cap and dedup purposes) is by ancestor insertion
// order (summary.CommonAncestors, which is itself BFS-layer order from the
// relationship sweep) and then by path index within each ancestor's
// PathsToA/PathsToB, so which entries survive a MaxResults cap does not
// depend on map iteration order.
func BuildCousinMatrix(summary *RelationshipSummary, settings CousinComputationSettings) CousinMatrix {
	var ordered []MatrixEntry
	seen := make(map[string]bool)
	count := 0

outer:
	for _, anc := range summary.CommonAncestors {
		for _, pathA := range anc.PathsToA {
			if settings.MaxDepthA != nil && pathA.Length > *settings.MaxDepthA {
				continue
			}
			for _, pathB := range anc.PathsToB {
				if settings.MaxDepthB != nil && pathB.Length > *settings.MaxDepthB {
					continue
				}

				key := entryKey(anc.Ancestor, pathA.Nodes, pathB.Nodes)
				if seen[key] {
					continue
				}

				if settings.MaxResults != nil && count >= *settings.MaxResults {
					break outer
				}

				kind, degree, removal, ok := classifyPair(pathA.Length, pathB.Length)
				if !ok {
					continue
				}

				seen[key] = true
				count++
				ordered = append(ordered, MatrixEntry{
					Ancestor: anc.Ancestor,
					PathA:    pathA,
					PathB:    pathB,
					Degree: CousinDegree{
						Kind: kind, Degree: degree, Removal: removal,
						GenerationsA: pathA.Length, GenerationsB: pathB.Length,
						Ancestor: anc.Ancestor,
					},
				})
			}
		}
	}

	return bucketEntries(ordered)
}

// entryKey is the dedup key: (ancestor, pathA.Nodes, pathB.Nodes).
func entryKey(ancestor pedigree.PersonId, nodesA, nodesB []pedigree.PersonId) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d|", ancestor)
	for _, id := range nodesA {
		fmt.Fprintf(&sb, "%d,", id)
	}
	sb.WriteByte('|')
	for _, id := range nodesB {
		fmt.Fprintf(&sb, "%d,", id)
	}
	return sb.String()
}

// bucketEntries groups entries by (GenerationsA, GenerationsB), preserving
// each bucket's first-seen order, then returns the buckets sorted by
// depth_a ascending with each bucket's inner map sorted by depth_b
// ascending.
func bucketEntries(entries []MatrixEntry) CousinMatrix {
	byA := make(map[int]map[int][]MatrixEntry)
	for _, e := range entries {
		a, b := e.Degree.GenerationsA, e.Degree.GenerationsB
		if byA[a] == nil {
			byA[a] = make(map[int][]MatrixEntry)
		}
		byA[a][b] = append(byA[a][b], e)
	}

	depthsA := make([]int, 0, len(byA))
	for a := range byA {
		depthsA = append(depthsA, a)
	}
	sort.Ints(depthsA)

	matrix := orderedmap.NewOrderedMap[int, DepthBucket]()
	for _, a := range depthsA {
		depthsB := make([]int, 0, len(byA[a]))
		for b := range byA[a] {
			depthsB = append(depthsB, b)
		}
		sort.Ints(depthsB)

		bucket := orderedmap.NewOrderedMap[int, []MatrixEntry]()
		for _, b := range depthsB {
			bucket.Set(b, byA[a][b])
		}
		matrix.Set(a, bucket)
	}
	return matrix
}
