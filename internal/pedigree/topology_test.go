package pedigree

import (
	"errors"
	"testing"
)

func TestTopologicalOrderParentsBeforeChildren(t *testing.T) {
	// One union: father 1 and mother 2 with children 3 and 4.
	pd := NewPedigreeBuilder().
		AddPerson(1, NoUnion).
		AddPerson(2, NoUnion).
		AddPerson(3, 1).
		AddPerson(4, 1).
		AddUnion(1, 1, 2, 3, 4).
		Build()

	order, err := TopologicalOrder(pd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pos := make(map[PersonId]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	if pos[1] >= pos[3] || pos[2] >= pos[3] {
		t.Fatalf("parents must precede child 3: order=%v", order)
	}
	if pos[1] >= pos[4] || pos[2] >= pos[4] {
		t.Fatalf("parents must precede child 4: order=%v", order)
	}
}

func TestTopologicalOrderDetectsCycle(t *testing.T) {
	pd := NewPedigreeBuilder().
		AddPerson(1, 10).
		AddPerson(2, 20).
		AddUnion(10, 2, NoPerson, 1).
		AddUnion(20, 1, NoPerson, 2).
		Build()

	_, err := TopologicalOrder(pd)
	var loopErr *AncestralLoopError
	if !errors.As(err, &loopErr) {
		t.Fatalf("expected *AncestralLoopError, got %v", err)
	}
	if len(loopErr.Cycle) == 0 {
		t.Fatalf("expected non-empty cycle witness")
	}
}

func TestTopologicalOrderSkipsDanglingParents(t *testing.T) {
	pd := NewPedigreeBuilder().
		AddPerson(1, 5).
		AddUnion(5, 99, 100, 1). // 99, 100 never registered as persons
		Build()

	order, err := TopologicalOrder(pd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 1 || order[0] != 1 {
		t.Fatalf("expected order=[1], got %v", order)
	}
}

func TestRankOrdersFoundersAboveLeaves(t *testing.T) {
	pd := NewPedigreeBuilder().
		AddPerson(1, NoUnion).
		AddPerson(2, NoUnion).
		AddPerson(3, 1).
		AddUnion(1, 1, 2, 3).
		Build()

	order, err := TopologicalOrder(pd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rank := Rank(order)
	if rank[1] <= rank[3] {
		t.Fatalf("founder 1 should outrank descendant 3: rank=%v", rank)
	}
	if rank[2] <= rank[3] {
		t.Fatalf("founder 2 should outrank descendant 3: rank=%v", rank)
	}
}
