package cousin

import (
	"fmt"
	"sort"

	"github.com/cacack/pedigree-engine/internal/pedigree"
)

// CousinKind classifies the shape of a relationship between two
// descendants of a common ancestor.
type CousinKind string

const (
	KindSelf           CousinKind = "self"
	KindDirectAncestor CousinKind = "direct_ancestor"
	KindSibling        CousinKind = "sibling"
	KindCousin         CousinKind = "cousin"
)

// CousinDegree is the structured classification of one candidate
// common-ancestor path pair. Degree and Removal are only meaningful when
// Kind is KindCousin.
type CousinDegree struct {
	Kind         CousinKind
	Degree       int
	Removal      int
	GenerationsA int
	GenerationsB int
	Ancestor     pedigree.PersonId
}

// classifyPair converts a raw (genA, genB) generation-distance pair into a
// (kind, degree, removal) triple. ok is false when the pair would classify
// as a cousin relationship of degree <= 0 (e.g. an avuncular (1,2) pair);
// such candidates are dropped and the caller falls back to the next one.
func classifyPair(genA, genB int) (kind CousinKind, degree, removal int, ok bool) {
	switch {
	case genA == 0 && genB == 0:
		return KindSelf, 0, 0, true
	case genA == 0 || genB == 0:
		return KindDirectAncestor, 0, 0, true
	case genA == 1 && genB == 1:
		return KindSibling, 0, 0, true
	}

	lo := genA
	if genB < lo {
		lo = genB
	}
	degree = lo - 1
	removal = genA - genB
	if removal < 0 {
		removal = -removal
	}
	if degree <= 0 {
		return KindCousin, degree, removal, false
	}
	return KindCousin, degree, removal, true
}

// candidateKey orders candidates by (max(gA,gB), gA+gB, gA, gB)
// ascending; the lexicographically smallest wins.
type candidateKey [4]int

func keyFor(genA, genB int) candidateKey {
	hi := genA
	if genB > hi {
		hi = genB
	}
	return candidateKey{hi, genA + genB, genA, genB}
}

func keyLess(a, b candidateKey) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// InferAllCousinDegrees classifies every common ancestor in summary and
// returns the non-dropped candidates ordered by candidateKey ascending
// (ties broken by the order CommonAncestors already carries, a stable
// sort).
func InferAllCousinDegrees(summary *RelationshipSummary) []CousinDegree {
	if summary.PersonA == summary.PersonB {
		return []CousinDegree{{Kind: KindSelf}}
	}

	type scored struct {
		key    candidateKey
		degree CousinDegree
	}
	var candidates []scored
	for _, anc := range summary.CommonAncestors {
		kind, degree, removal, ok := classifyPair(anc.GenA, anc.GenB)
		if !ok {
			continue
		}
		candidates = append(candidates, scored{
			key: keyFor(anc.GenA, anc.GenB),
			degree: CousinDegree{
				Kind: kind, Degree: degree, Removal: removal,
				GenerationsA: anc.GenA, GenerationsB: anc.GenB,
				Ancestor: anc.Ancestor,
			},
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool { return keyLess(candidates[i].key, candidates[j].key) })

	out := make([]CousinDegree, len(candidates))
	for i, c := range candidates {
		out[i] = c.degree
	}
	return out
}

// InferCousinDegree returns the single best-ranked classification for
// summary, or ok=false if summary has no surviving candidate (the two
// people share no common ancestor that classifies to a non-dropped
// degree).
func InferCousinDegree(summary *RelationshipSummary) (CousinDegree, bool) {
	all := InferAllCousinDegrees(summary)
	if len(all) == 0 {
		return CousinDegree{}, false
	}
	return all[0], true
}

// String renders an English description of d. This is a convenience
// formatter, not a localization table; callers wanting localized terms
// should translate from the structured fields instead.
func (d CousinDegree) String() string {
	switch d.Kind {
	case KindSelf:
		return "self"
	case KindSibling:
		return "sibling"
	case KindDirectAncestor:
		// GenerationsA == 0 means A is the common ancestor, so A is B's
		// ancestor; otherwise B is A's.
		if d.GenerationsA == 0 {
			return ancestorName(d.GenerationsB)
		}
		return descendantName(d.GenerationsA)
	case KindCousin:
		return cousinName(d.Degree, d.Removal)
	default:
		return "unrelated"
	}
}

func ancestorName(gen int) string {
	switch gen {
	case 1:
		return "parent"
	case 2:
		return "grandparent"
	default:
		return greatPrefix(gen-2) + "grandparent"
	}
}

func descendantName(gen int) string {
	switch gen {
	case 1:
		return "child"
	case 2:
		return "grandchild"
	default:
		return greatPrefix(gen-2) + "grandchild"
	}
}

func greatPrefix(count int) string {
	switch {
	case count <= 0:
		return ""
	case count == 1:
		return "great-"
	case count == 2:
		return "great-great-"
	default:
		return fmt.Sprintf("%s great-", ordinal(count))
	}
}

func cousinName(degree, removed int) string {
	if degree <= 0 {
		return "related"
	}
	ordinalDegree := ordinal(degree)
	if removed == 0 {
		return ordinalDegree + " cousin"
	}

	var removedStr string
	switch {
	case removed == 1:
		removedStr = "once"
	case removed == 2:
		removedStr = "twice"
	case removed == 3:
		removedStr = "thrice"
	default:
		removedStr = fmt.Sprintf("%d times", removed)
	}
	return fmt.Sprintf("%s cousin %s removed", ordinalDegree, removedStr)
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 10 {
	case 1:
		if n%100 != 11 {
			suffix = "st"
		}
	case 2:
		if n%100 != 12 {
			suffix = "nd"
		}
	case 3:
		if n%100 != 13 {
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
