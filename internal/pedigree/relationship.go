package pedigree

import (
	"container/heap"

	"github.com/google/uuid"
)

// AncestorStatus tags whether a person is currently believed to be an
// ancestor of one of the two query targets.
type AncestorStatus uint8

const (
	StatusMaybe AncestorStatus = iota
	StatusIs
)

// BranchRecord describes one or more paths of the same length from an
// ancestor down to a query target. Path excludes both the ancestor and the
// target. Multiplicity of -1 denotes saturation (overflow of additive
// counts) and downstream code should read it as "many".
type BranchRecord struct {
	Length       int
	Multiplicity int64
	Nodes        []PersonId
}

// RelationshipState is the per-person, per-query scratch state used by the
// ranked-queue ancestor sweep.
type RelationshipState struct {
	W1, W2       float64
	Relationship float64
	Lens1, Lens2 []BranchRecord
	Mark         int64
	Eliminate    bool
	AncStatus1   AncestorStatus
	AncStatus2   AncestorStatus
}

// RelationshipResult is the output of a single relationship query.
type RelationshipResult struct {
	// QueryID correlates this result with diagnostic log lines emitted by
	// the caller; the algorithm itself never inspects it.
	QueryID      uuid.UUID
	Coefficient  float64
	TopAncestors []PersonId

	// PathsToA and PathsToB are populated only when the query requested
	// branches: for each top ancestor, the branch records describing the
	// paths from that ancestor down to A (resp. B).
	PathsToA map[PersonId][]BranchRecord
	PathsToB map[PersonId][]BranchRecord
}

// rankHeap is a min-heap of occupied topological ranks, used to pop the
// ranked queue's "current layer" (every node at the lowest occupied rank).
type rankHeap []int

func (h rankHeap) Len() int            { return len(h) }
func (h rankHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h rankHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *rankHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *rankHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// RelationshipInfo owns the per-query RelationshipState for every person
// in a Pedigree, the topological rank used to prioritize the queue, and a
// monotonic insertion mark that lets successive queries reuse the state
// map without re-zeroing it every time.
type RelationshipInfo struct {
	pd      *Pedigree
	rank    map[PersonId]int
	consang map[PersonId]float64
	states  map[PersonId]*RelationshipState

	nextMark int64
}

// NewRelationshipInfo computes the topological order and rank of pd and
// returns a RelationshipInfo ready to serve relationship queries.
// consanguinity is the per-person F map produced by ComputeConsanguinity;
// a nil or incomplete map is treated as F = 0 for missing entries.
func NewRelationshipInfo(pd *Pedigree, consanguinity map[PersonId]float64) (*RelationshipInfo, error) {
	order, err := TopologicalOrder(pd)
	if err != nil {
		return nil, err
	}
	return &RelationshipInfo{
		pd:      pd,
		rank:    Rank(order),
		consang: consanguinity,
		states:  make(map[PersonId]*RelationshipState, len(order)),
	}, nil
}

func (ri *RelationshipInfo) consanguinityOf(id PersonId) float64 {
	if ri.consang == nil {
		return 0
	}
	return ri.consang[id]
}

// RelationshipAndLinks computes the relationship coefficient, top
// ancestors, and (if includeBranches) branch paths between a and b. Each
// call stamps a fresh query correlation id (unused in the algorithm
// itself; carried for log correlation by callers) and a fresh insertion
// mark so per-person state from a prior query is treated as stale without
// being explicitly reset.
func (ri *RelationshipInfo) RelationshipAndLinks(a, b PersonId, includeBranches bool) (*RelationshipResult, error) {
	if _, ok := ri.rank[a]; !ok {
		return nil, &UnknownPersonError{PersonID: a}
	}
	if _, ok := ri.rank[b]; !ok {
		return nil, &UnknownPersonError{PersonID: b}
	}

	queryID := uuid.New()

	if a == b {
		return &RelationshipResult{QueryID: queryID, Coefficient: 1.0}, nil
	}

	ri.nextMark++
	mark := ri.nextMark

	var rh rankHeap
	heap.Init(&rh)
	buckets := make(map[int][]PersonId)
	inHeap := make(map[int]bool)

	enqueue := func(id PersonId) {
		r := ri.rank[id]
		if !inHeap[r] {
			heap.Push(&rh, r)
			inHeap[r] = true
		}
		buckets[r] = append(buckets[r], id)
	}

	getState := func(id PersonId) *RelationshipState {
		st, ok := ri.states[id]
		if !ok {
			st = &RelationshipState{}
			ri.states[id] = st
		}
		if st.Mark != mark {
			*st = RelationshipState{Mark: mark}
		}
		return st
	}

	sa := getState(a)
	sa.W1 = 1
	sa.AncStatus1 = StatusIs
	sb := getState(b)
	sb.W2 = 1
	sb.AncStatus2 = StatusIs
	if includeBranches {
		sa.Lens1 = []BranchRecord{{Length: 0, Multiplicity: 1}}
		sb.Lens2 = []BranchRecord{{Length: 0, Multiplicity: 1}}
	}
	enqueue(a)
	enqueue(b)

	nbAnc1, nbAnc2 := 1, 1
	var relationship float64
	var topAncestors []PersonId
	pathsToA := make(map[PersonId][]BranchRecord)
	pathsToB := make(map[PersonId][]BranchRecord)

	treatParent := func(u PersonId, state *RelationshipState, p PersonId) {
		if p == NoPerson {
			return
		}
		if _, ok := ri.rank[p]; !ok {
			return
		}

		isNew := ri.states[p] == nil || ri.states[p].Mark != mark
		pstate := getState(p)
		if isNew {
			enqueue(p)
		}

		p1 := state.W1 / 2
		p2 := state.W2 / 2

		if state.AncStatus1 == StatusIs && pstate.AncStatus1 != StatusIs {
			pstate.AncStatus1 = StatusIs
			nbAnc1++
		}
		if state.AncStatus2 == StatusIs && pstate.AncStatus2 != StatusIs {
			pstate.AncStatus2 = StatusIs
			nbAnc2++
		}

		pstate.W1 += p1
		pstate.W2 += p2
		pstate.Relationship += p1 * p2

		if state.Eliminate {
			pstate.Eliminate = true
		}

		if includeBranches && !pstate.Eliminate {
			pstate.Lens1 = mergeBranches(pstate.Lens1, state.Lens1, u)
			pstate.Lens2 = mergeBranches(pstate.Lens2, state.Lens2, u)
		}
	}

	treatAncestor := func(u PersonId) {
		state := ri.states[u]
		fu := ri.consanguinityOf(u)
		c := state.W1*state.W2 - state.Relationship*(1+fu)

		if state.AncStatus1 == StatusIs {
			nbAnc1--
		}
		if state.AncStatus2 == StatusIs {
			nbAnc2--
		}

		relationship += c

		if c != 0 && !state.Eliminate {
			topAncestors = append(topAncestors, u)
			state.Eliminate = true
			if includeBranches {
				pathsToA[u] = append([]BranchRecord{}, state.Lens1...)
				pathsToB[u] = append([]BranchRecord{}, state.Lens2...)
			}
		}

		father, mother := ri.pd.Parents(u)
		treatParent(u, state, father)
		treatParent(u, state, mother)
	}

	for rh.Len() > 0 && nbAnc1 > 0 && nbAnc2 > 0 {
		r := heap.Pop(&rh).(int)
		inHeap[r] = false
		layer := buckets[r]
		delete(buckets, r)
		for _, u := range layer {
			treatAncestor(u)
		}
	}

	result := &RelationshipResult{
		QueryID: queryID,
		// The accumulated sum of per-ancestor contributions already equals
		// 2*f(A,B): the seed weights are 1 and each hop halves them, so
		// w1*w2 at an ancestor carries the full relationship-coefficient
		// scaling with no further division needed.
		Coefficient:  relationship,
		TopAncestors: topAncestors,
	}
	if includeBranches {
		result.PathsToA = pathsToA
		result.PathsToB = pathsToB
	}
	return result, nil
}

// mergeBranches merges src (the branches at u) into dest (the branches
// already accumulated at u's parent), prepending u to each node sequence
// and incrementing its length by one. A length-0 record only exists at a
// query target's seed, and u is then the target itself, which Nodes must
// exclude, so the prepend is skipped for it. Records with equal Length
// collapse: the first-seen Nodes sequence for a given length is kept as
// the representative path and later merges only add to its Multiplicity,
// saturating to -1 on overflow.
func mergeBranches(dest []BranchRecord, src []BranchRecord, prepend PersonId) []BranchRecord {
	for _, rec := range src {
		newLen := rec.Length + 1
		merged := false
		for i := range dest {
			if dest[i].Length == newLen {
				dest[i].Multiplicity = saturatingAdd(dest[i].Multiplicity, rec.Multiplicity)
				merged = true
				break
			}
		}
		if !merged {
			nodes := make([]PersonId, 0, len(rec.Nodes)+1)
			if rec.Length > 0 {
				nodes = append(nodes, prepend)
			}
			nodes = append(nodes, rec.Nodes...)
			dest = append(dest, BranchRecord{Length: newLen, Multiplicity: rec.Multiplicity, Nodes: nodes})
		}
	}
	return dest
}

func saturatingAdd(a, b int64) int64 {
	if a == -1 || b == -1 {
		return -1
	}
	sum := a + b
	if sum < a || sum < b {
		return -1
	}
	return sum
}
