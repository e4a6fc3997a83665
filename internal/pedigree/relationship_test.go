package pedigree

import (
	"errors"
	"sort"
	"testing"
)

func sortedCopy(ids []PersonId) []PersonId {
	out := append([]PersonId{}, ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func equalIds(a, b []PersonId) bool {
	a, b = sortedCopy(a), sortedCopy(b)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Full siblings share two parents; coefficient 0.5.
func TestRelationshipAndLinksSiblings(t *testing.T) {
	pd := NewPedigreeBuilder().
		AddPerson(1, NoUnion).
		AddPerson(2, NoUnion).
		AddPerson(3, 1).
		AddPerson(4, 1).
		AddUnion(1, 1, 2, 3, 4).
		Build()

	consang, err := ComputeConsanguinity(pd, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ri, err := NewRelationshipInfo(pd, consang)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := ri.RelationshipAndLinks(3, 4, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.Coefficient, 0.5) {
		t.Fatalf("expected coefficient 0.5, got %v", res.Coefficient)
	}
	if !equalIds(res.TopAncestors, []PersonId{1, 2}) {
		t.Fatalf("expected top_ancestors={1,2}, got %v", res.TopAncestors)
	}
}

// First cousins: coefficient 0.125, one length-2 branch per ancestor per side.
func TestRelationshipAndLinksFirstCousins(t *testing.T) {
	pd := NewPedigreeBuilder().
		AddPerson(1, NoUnion).
		AddPerson(2, NoUnion).
		AddPerson(3, 1).
		AddPerson(4, 1).
		AddPerson(5, NoUnion).
		AddPerson(6, NoUnion).
		AddPerson(7, 2).
		AddPerson(8, 3).
		AddUnion(1, 1, 2, 3, 4).
		AddUnion(2, 3, 5, 7).
		AddUnion(3, 4, 6, 8).
		Build()

	consang, err := ComputeConsanguinity(pd, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ri, err := NewRelationshipInfo(pd, consang)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := ri.RelationshipAndLinks(7, 8, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.Coefficient, 0.125) {
		t.Fatalf("expected coefficient 0.125, got %v", res.Coefficient)
	}
	if !equalIds(res.TopAncestors, []PersonId{1, 2}) {
		t.Fatalf("expected top_ancestors={1,2}, got %v", res.TopAncestors)
	}
	for _, anc := range res.TopAncestors {
		pathsA := res.PathsToA[anc]
		pathsB := res.PathsToB[anc]
		if len(pathsA) != 1 || pathsA[0].Length != 2 {
			t.Fatalf("ancestor %d: expected one length-2 path to A, got %v", anc, pathsA)
		}
		if len(pathsB) != 1 || pathsB[0].Length != 2 {
			t.Fatalf("ancestor %d: expected one length-2 path to B, got %v", anc, pathsB)
		}
	}
}

func TestRelationshipAndLinksIdenticalPerson(t *testing.T) {
	pd := NewPedigreeBuilder().AddPerson(1, NoUnion).Build()
	ri, err := NewRelationshipInfo(pd, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := ri.RelationshipAndLinks(1, 1, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.Coefficient, 1.0) {
		t.Fatalf("expected coefficient 1.0, got %v", res.Coefficient)
	}
	if len(res.TopAncestors) != 0 {
		t.Fatalf("expected empty top_ancestors, got %v", res.TopAncestors)
	}
}

func TestRelationshipAndLinksUnknownPerson(t *testing.T) {
	pd := NewPedigreeBuilder().AddPerson(1, NoUnion).Build()
	ri, err := NewRelationshipInfo(pd, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = ri.RelationshipAndLinks(1, 999, false)
	var unknown *UnknownPersonError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownPersonError, got %v", err)
	}
	if unknown.PersonID != 999 {
		t.Fatalf("expected unknown id 999, got %d", unknown.PersonID)
	}
}

func TestKinshipSymmetry(t *testing.T) {
	pd := NewPedigreeBuilder().
		AddPerson(1, NoUnion).
		AddPerson(2, NoUnion).
		AddPerson(3, 1).
		AddPerson(4, 1).
		AddUnion(1, 1, 2, 3, 4).
		Build()
	kc := NewKinshipCalculator(pd)
	if kc.Kinship(3, 4) != kc.Kinship(4, 3) {
		t.Fatalf("kinship must be symmetric")
	}
}

func TestKinshipSelfReflectsConsanguinity(t *testing.T) {
	pd := NewPedigreeBuilder().AddPerson(1, NoUnion).Build()
	pd.persons[1].Consanguinity = 0.25
	kc := NewKinshipCalculator(pd)
	got := kc.Kinship(1, 1)
	want := 0.5 * (1 + 0.25)
	if !almostEqual(got, want) {
		t.Fatalf("expected f(1,1)=%v, got %v", want, got)
	}
}
