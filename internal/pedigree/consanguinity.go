package pedigree

import (
	"sort"

	"github.com/elliotchance/orderedmap/v2"
)

// ComputeConsanguinity drives the kinship calculator over every person in
// pd, in topological order, writing F into each PersonNode.Consanguinity
// and clearing NeedsUpdate. It returns a snapshot map of the same values.
//
// If fromScratch is true, every person's Consanguinity is reset to 0 and
// NeedsUpdate to true before the sweep starts. Otherwise existing
// NeedsUpdate flags are respected and already-resolved values are reused,
// letting a caller do incremental recomputation after targeted pedigree
// edits.
func ComputeConsanguinity(pd *Pedigree, fromScratch bool) (map[PersonId]float64, error) {
	order, err := TopologicalOrder(pd)
	if err != nil {
		return nil, err
	}

	if fromScratch {
		for _, id := range order {
			p := pd.persons[id]
			p.Consanguinity = 0
			p.NeedsUpdate = true
		}
	}

	// familyConsang caches F per union: all of a union's children share
	// the same F, so resolving one resolves the whole sibling set.
	familyConsang := orderedmap.NewOrderedMap[UnionId, float64]()
	pending := make(map[PersonId]bool, len(order))
	result := make(map[PersonId]float64, len(order))

	for _, id := range order {
		p := pd.persons[id]
		if p.NeedsUpdate {
			pending[id] = true
			continue
		}
		result[id] = p.Consanguinity
		if p.ParentUnion != NoUnion {
			if _, ok := familyConsang.Get(p.ParentUnion); !ok {
				familyConsang.Set(p.ParentUnion, p.Consanguinity)
			}
		}
	}

	kc := NewKinshipCalculator(pd)

	for len(pending) > 0 {
		progressed := false

		for _, id := range order {
			if !pending[id] {
				continue
			}
			p := pd.persons[id]

			if p.ParentUnion == NoUnion {
				resolve(pd, id, 0, pending, result)
				progressed = true
				continue
			}

			if f, ok := familyConsang.Get(p.ParentUnion); ok {
				resolve(pd, id, f, pending, result)
				progressed = true
				continue
			}

			union, ok := pd.unions[p.ParentUnion]
			if !ok {
				// Dangling union reference: importers may emit these;
				// treat it as having no resolvable parents.
				familyConsang.Set(p.ParentUnion, 0)
				resolve(pd, id, 0, pending, result)
				progressed = true
				continue
			}

			father, mother := union.FatherID, union.MotherID

			// Self-marriage violates the "father_id and mother_id must
			// be distinct" invariant; the sweep must never resolve it,
			// so it eventually surfaces as ConsanguinityComputationError
			// rather than a silently computed value.
			if father != NoPerson && mother != NoPerson && father == mother {
				continue
			}

			if (father != NoPerson && pending[father]) || (mother != NoPerson && pending[mother]) {
				continue
			}

			var f float64
			if father != NoPerson && mother != NoPerson {
				f = kc.Kinship(father, mother)
			}
			familyConsang.Set(p.ParentUnion, f)
			resolve(pd, id, f, pending, result)
			progressed = true
		}

		if !progressed {
			stillPending := make([]PersonId, 0, len(pending))
			for id := range pending {
				stillPending = append(stillPending, id)
			}
			return nil, &ConsanguinityComputationError{Pending: sortedPersonIds(stillPending)}
		}
	}

	return result, nil
}

func resolve(pd *Pedigree, id PersonId, f float64, pending map[PersonId]bool, result map[PersonId]float64) {
	p := pd.persons[id]
	p.Consanguinity = f
	p.NeedsUpdate = false
	result[id] = f
	delete(pending, id)
}

func sortedPersonIds(ids []PersonId) []PersonId {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
