package pedigree

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestComputeConsanguinityEmptyPedigree(t *testing.T) {
	pd := NewPedigreeBuilder().Build()
	f, err := ComputeConsanguinity(pd, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f) != 0 {
		t.Fatalf("expected empty map, got %v", f)
	}
}

func TestComputeConsanguinitySingleFounder(t *testing.T) {
	pd := NewPedigreeBuilder().AddPerson(1, NoUnion).Build()
	f, err := ComputeConsanguinity(pd, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(f[1], 0) {
		t.Fatalf("expected F(1)=0, got %v", f[1])
	}
}

// Siblings with unrelated parents have F=0.
func TestComputeConsanguinitySiblings(t *testing.T) {
	pd := NewPedigreeBuilder().
		AddPerson(1, NoUnion).
		AddPerson(2, NoUnion).
		AddPerson(3, 1).
		AddPerson(4, 1).
		AddUnion(1, 1, 2, 3, 4).
		Build()

	f, err := ComputeConsanguinity(pd, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for id, v := range f {
		if !almostEqual(v, 0) {
			t.Fatalf("expected F(%d)=0, got %v", id, v)
		}
	}
}

// First cousins themselves are not inbred: F(7)=F(8)=0.
func TestComputeConsanguinityFirstCousins(t *testing.T) {
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

	f, err := ComputeConsanguinity(pd, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(f[7], 0) || !almostEqual(f[8], 0) {
		t.Fatalf("expected F(7)=F(8)=0, got F(7)=%v F(8)=%v", f[7], f[8])
	}
}

// Uncle-niece marriage: F(child) = 0.125.
func TestComputeConsanguinityUncleNieceMarriage(t *testing.T) {
	pd := NewPedigreeBuilder().
		AddPerson(1, NoUnion).
		AddPerson(2, NoUnion).
		AddPerson(3, 1).
		AddPerson(4, 1).
		AddPerson(5, NoUnion).
		AddPerson(6, 2).
		AddPerson(7, 3).
		AddUnion(1, 1, 2, 3, 4).
		AddUnion(2, 3, 5, 6).
		AddUnion(3, 4, 6, 7).
		Build()

	f, err := ComputeConsanguinity(pd, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(f[7], 0.125) {
		t.Fatalf("expected F(7)=0.125, got %v", f[7])
	}
}

func TestComputeConsanguinitySelfMarriageStalls(t *testing.T) {
	pd := NewPedigreeBuilder().
		AddPerson(1, NoUnion).
		AddPerson(2, 1).
		AddUnion(1, 1, 1, 2). // father == mother: invariant violation
		Build()

	_, err := ComputeConsanguinity(pd, true)
	var stallErr *ConsanguinityComputationError
	if !errors.As(err, &stallErr) {
		t.Fatalf("expected *ConsanguinityComputationError, got %v", err)
	}
	if len(stallErr.Pending) != 1 || stallErr.Pending[0] != 2 {
		t.Fatalf("expected pending=[2], got %v", stallErr.Pending)
	}
}

func TestComputeConsanguinityIsIdempotent(t *testing.T) {
	pd := NewPedigreeBuilder().
		AddPerson(1, NoUnion).
		AddPerson(2, NoUnion).
		AddPerson(3, 1).
		AddPerson(4, 1).
		AddPerson(5, NoUnion).
		AddPerson(6, 2).
		AddPerson(7, 3).
		AddUnion(1, 1, 2, 3, 4).
		AddUnion(2, 3, 5, 6).
		AddUnion(3, 4, 6, 7).
		Build()

	first, err := ComputeConsanguinity(pd, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ComputeConsanguinity(pd, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for id, v := range first {
		if !almostEqual(v, second[id]) {
			t.Fatalf("person %d: first=%v second=%v", id, v, second[id])
		}
	}
}
