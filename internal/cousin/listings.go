package cousin

import (
	"time"

	"github.com/cacack/pedigree-engine/internal/pedigree"
)

// SpouseLookup returns the known spouses/partners of a person. Injected by
// the caller: the cousin package has no concept of marriage itself; that
// lives in whatever display layer owns the person records.
type SpouseLookup func(pedigree.PersonId) []pedigree.PersonId

// DatePrecision tags how exact a TemporalFact's year is. Only
// PrecisionExact participates in range aggregation; fuzzy years are
// ignored.
type DatePrecision string

const (
	PrecisionExact DatePrecision = "exact"
	PrecisionFuzzy DatePrecision = "fuzzy"
)

// TemporalFact is one person's birth/death year, as reported by a
// TemporalLookup.
type TemporalFact struct {
	BirthYear      *int
	BirthPrecision DatePrecision
	DeathYear      *int
	DeathPrecision DatePrecision
	// StillAlive indicates the person has no recorded death. Such a
	// person contributes the current year to the death-year range rather
	// than being excluded from it.
	StillAlive bool
}

// TemporalLookup returns the known TemporalFact for a person, or ok=false
// if nothing is known.
type TemporalLookup func(pedigree.PersonId) (TemporalFact, bool)

// TemporalRange is the aggregated earliest-birth/latest-death span over a
// set of persons.
type TemporalRange struct {
	EarliestBirth *int
	LatestDeath   *int
}

// CousinListing is one fully-resolved row of a cousin report: a matrix
// entry plus its descendant chains, spouse annotations, and temporal span.
type CousinListing struct {
	Ancestor pedigree.PersonId
	PersonA  pedigree.PersonId
	PersonB  pedigree.PersonId
	Degree   CousinDegree

	// DescendantChainA/B are the path from the ancestor down to A/B, minus
	// the ancestor itself. BranchRecord.Nodes already excludes the
	// ancestor and the target, so each chain is Nodes with the target
	// appended.
	DescendantChainA []pedigree.PersonId
	DescendantChainB []pedigree.PersonId

	// AncestorSpouses is populated only when a SpouseLookup is supplied to
	// BuildCousinListings.
	AncestorSpouses []pedigree.PersonId

	// Span aggregates TemporalRange over the ancestor and both descendant
	// chains, populated only when a TemporalLookup is supplied.
	Span TemporalRange
}

// BuildCousinListings flattens summary's cousin matrix — iterated
// (depth_a, depth_b)-ascending, insertion order within a bucket — into
// fully-resolved listings. spouses and temporal may both be nil, in which
// case the corresponding listing fields are left zero-valued.
func BuildCousinListings(summary *RelationshipSummary, settings CousinComputationSettings, spouses SpouseLookup, temporal TemporalLookup) []CousinListing {
	matrix := BuildCousinMatrix(summary, settings)

	var listings []CousinListing
	for a := matrix.Front(); a != nil; a = a.Next() {
		bucket := a.Value
		for b := bucket.Front(); b != nil; b = b.Next() {
			for _, entry := range b.Value {
				listings = append(listings, buildListing(summary, entry, spouses, temporal))
			}
		}
	}
	return listings
}

func buildListing(summary *RelationshipSummary, entry MatrixEntry, spouses SpouseLookup, temporal TemporalLookup) CousinListing {
	chainA := append(append([]pedigree.PersonId{}, entry.PathA.Nodes...), summary.PersonA)
	chainB := append(append([]pedigree.PersonId{}, entry.PathB.Nodes...), summary.PersonB)

	listing := CousinListing{
		Ancestor:         entry.Ancestor,
		PersonA:          summary.PersonA,
		PersonB:          summary.PersonB,
		Degree:           entry.Degree,
		DescendantChainA: chainA,
		DescendantChainB: chainB,
	}

	if spouses != nil {
		listing.AncestorSpouses = spouses(entry.Ancestor)
	}

	if temporal != nil {
		people := make([]pedigree.PersonId, 0, len(chainA)+len(chainB)+1)
		people = append(people, entry.Ancestor)
		people = append(people, chainA...)
		people = append(people, chainB...)
		listing.Span = aggregateTemporalRange(people, temporal)
	}

	return listing
}

// aggregateTemporalRange computes the earliest exact birth year and latest
// exact-or-presumed-current death year over people.
func aggregateTemporalRange(people []pedigree.PersonId, lookup TemporalLookup) TemporalRange {
	var rng TemporalRange
	seen := make(map[pedigree.PersonId]bool, len(people))
	currentYear := time.Now().Year()

	for _, id := range people {
		if seen[id] {
			continue
		}
		seen[id] = true

		fact, ok := lookup(id)
		if !ok {
			continue
		}

		if fact.BirthYear != nil && fact.BirthPrecision == PrecisionExact {
			if rng.EarliestBirth == nil || *fact.BirthYear < *rng.EarliestBirth {
				y := *fact.BirthYear
				rng.EarliestBirth = &y
			}
		}

		switch {
		case fact.DeathYear != nil && fact.DeathPrecision == PrecisionExact:
			if rng.LatestDeath == nil || *fact.DeathYear > *rng.LatestDeath {
				y := *fact.DeathYear
				rng.LatestDeath = &y
			}
		case fact.StillAlive:
			if rng.LatestDeath == nil || currentYear > *rng.LatestDeath {
				y := currentYear
				rng.LatestDeath = &y
			}
		}
	}

	return rng
}
