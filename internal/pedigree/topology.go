package pedigree

// visitState is the three-color DFS state used to detect ancestral loops.
type visitState uint8

const (
	stateUnvisited visitState = iota
	stateOnStack
	stateFinished
)

// TopologicalOrder produces an order over pd's persons such that, for
// every person with both parents present in pd, those parents appear
// before the person. Dangling parent references are silently skipped.
// A directed cycle in the ancestor relation is reported as
// *AncestralLoopError; the on-stack nodes double as the cycle witness.
func TopologicalOrder(pd *Pedigree) ([]PersonId, error) {
	state := make(map[PersonId]visitState, len(pd.persons))
	order := make([]PersonId, 0, len(pd.persons))
	stack := make([]PersonId, 0, 32)

	var visit func(id PersonId) error
	visit = func(id PersonId) error {
		switch state[id] {
		case stateFinished:
			return nil
		case stateOnStack:
			start := 0
			for i, s := range stack {
				if s == id {
					start = i
					break
				}
			}
			cycle := append(append([]PersonId{}, stack[start:]...), id)
			return &AncestralLoopError{PersonID: id, Cycle: cycle}
		}

		state[id] = stateOnStack
		stack = append(stack, id)

		if _, ok := pd.persons[id]; ok {
			father, mother := pd.Parents(id)
			if father != NoPerson {
				if _, ok := pd.persons[father]; ok {
					if err := visit(father); err != nil {
						return err
					}
				}
			}
			if mother != NoPerson {
				if _, ok := pd.persons[mother]; ok {
					if err := visit(mother); err != nil {
						return err
					}
				}
			}
		}

		stack = stack[:len(stack)-1]
		state[id] = stateFinished
		order = append(order, id)
		return nil
	}

	for _, id := range pd.PersonIDs() {
		if err := visit(id); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// Rank computes the ancestor rank for every person in order: the reversed
// post-order position. Every person ranks strictly below each of its
// ancestors; only the person last in order gets rank 0. Rank is used
// by the relationship sweep (C5) as a queue priority so a node is
// processed only after every one of its descendants, within the current
// query, has been.
func Rank(order []PersonId) map[PersonId]int {
	rank := make(map[PersonId]int, len(order))
	last := len(order) - 1
	for i, id := range order {
		rank[id] = last - i
	}
	return rank
}
