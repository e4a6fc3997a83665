package pedigree

import "sort"

// SosaCacheState holds the Sosa-Stradonitz numbering of every known
// ancestor of a chosen root, plus the navigation primitives over that
// numbering. Once built by BuildSosaCache, a SosaCacheState is never
// mutated again.
type SosaCacheState struct {
	root           PersonId
	numberByPerson map[PersonId]int64
	personByNumber map[int64]PersonId
	traversalOrder []PersonId

	// numbers is traversalOrder's numbers, kept in the same order. BFS
	// assignment (root=1, father=2n, mother=2n+1) dequeues strictly in
	// increasing numeric order, so this slice is always sorted ascending
	// and Next/Previous can binary-search it directly.
	numbers []int64
}

// BuildSosaCache runs a breadth-first Sosa assignment from root over pd.
// It reports *MissingRootError if root is absent from pd, and
// *InconsistentSosaNumberError if the BFS would assign two different
// numbers to the same person, or the same number to two different
// persons (both symptoms of pedigree collapse colliding with a malformed
// or re-entrant ancestry).
func BuildSosaCache(pd *Pedigree, root PersonId) (*SosaCacheState, error) {
	if _, ok := pd.persons[root]; !ok {
		return nil, &MissingRootError{Root: root}
	}

	state := &SosaCacheState{
		root:           root,
		numberByPerson: make(map[PersonId]int64),
		personByNumber: make(map[int64]PersonId),
	}

	type queued struct {
		id     PersonId
		number int64
	}
	queue := []queued{{root, 1}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if existing, ok := state.numberByPerson[item.id]; ok {
			if existing != item.number {
				return nil, &InconsistentSosaNumberError{
					PersonID:       item.id,
					AttemptedValue: item.number,
					ExistingValue:  existing,
				}
			}
			continue
		}
		if owner, ok := state.personByNumber[item.number]; ok && owner != item.id {
			conflicting := owner
			return nil, &InconsistentSosaNumberError{
				PersonID:            item.id,
				AttemptedValue:      item.number,
				ExistingValue:       item.number,
				ConflictingPersonID: &conflicting,
			}
		}

		state.numberByPerson[item.id] = item.number
		state.personByNumber[item.number] = item.id
		state.traversalOrder = append(state.traversalOrder, item.id)
		state.numbers = append(state.numbers, item.number)

		father, mother := pd.Parents(item.id)
		if father != NoPerson {
			if _, ok := pd.persons[father]; ok {
				queue = append(queue, queued{father, 2 * item.number})
			}
		}
		if mother != NoPerson {
			if _, ok := pd.persons[mother]; ok {
				queue = append(queue, queued{mother, 2*item.number + 1})
			}
		}
	}

	return state, nil
}

// Number returns the Sosa number of p as an ancestor of the cache's root,
// or (0, false) if p is not a known ancestor.
func (s *SosaCacheState) Number(p PersonId) (int64, bool) {
	n, ok := s.numberByPerson[p]
	return n, ok
}

// Person returns the ancestor assigned Sosa number n, or (NoPerson,
// false) if n is unassigned.
func (s *SosaCacheState) Person(n int64) (PersonId, bool) {
	p, ok := s.personByNumber[n]
	return p, ok
}

// TraversalOrder returns the BFS insertion order of the cache.
func (s *SosaCacheState) TraversalOrder() []PersonId {
	return append([]PersonId{}, s.traversalOrder...)
}

// Next returns the smallest assigned Sosa number strictly greater than n,
// and its person, or ok=false if none exists.
func (s *SosaCacheState) Next(n int64) (number int64, person PersonId, ok bool) {
	idx := sort.Search(len(s.numbers), func(i int) bool { return s.numbers[i] > n })
	if idx >= len(s.numbers) {
		return 0, NoPerson, false
	}
	v := s.numbers[idx]
	return v, s.personByNumber[v], true
}

// Previous returns the largest assigned Sosa number strictly less than n,
// and its person, or ok=false if none exists.
func (s *SosaCacheState) Previous(n int64) (number int64, person PersonId, ok bool) {
	idx := sort.Search(len(s.numbers), func(i int) bool { return s.numbers[i] >= n })
	if idx == 0 {
		return 0, NoPerson, false
	}
	v := s.numbers[idx-1]
	return v, s.personByNumber[v], true
}

// Branch returns the sequence of ancestors from the person numbered n down
// to the root, inclusive of both endpoints, or ok=false if n or any
// ancestor along the way is unassigned.
func (s *SosaCacheState) Branch(n int64) (path []PersonId, ok bool) {
	var seq []PersonId
	cur := n
	for {
		p, found := s.personByNumber[cur]
		if !found {
			return nil, false
		}
		seq = append(seq, p)
		if cur == 1 {
			break
		}
		cur = cur / 2
	}
	return seq, true
}

// TotalAncestors returns the number of distinct persons registered in the
// cache (the root included).
func (s *SosaCacheState) TotalAncestors() int {
	return len(s.traversalOrder)
}

// MaxGeneration returns the highest generation reached, where the root is
// generation 0. It is floor(log2(maxNumber)).
func (s *SosaCacheState) MaxGeneration() int {
	var maxNumber int64
	for _, n := range s.numbers {
		if n > maxNumber {
			maxNumber = n
		}
	}
	gen := 0
	for maxNumber > 1 {
		maxNumber /= 2
		gen++
	}
	return gen
}

// AhnentafelEntry is one row of a Sosa/Ahnentafel report.
type AhnentafelEntry struct {
	Number     int64
	PersonID   PersonId
	Generation int
}

// Report renders the whole cache as an Ahnentafel-style report, sorted by
// Sosa number.
func (s *SosaCacheState) Report() []AhnentafelEntry {
	entries := make([]AhnentafelEntry, len(s.numbers))
	for i, n := range s.numbers {
		gen := 0
		for v := n; v > 1; v /= 2 {
			gen++
		}
		entries[i] = AhnentafelEntry{Number: n, PersonID: s.personByNumber[n], Generation: gen}
	}
	return entries
}

// SosaCacheManager holds at most one SosaCacheState per root id and
// exposes explicit invalidation. It never mutates a cache after
// construction; it only adds or removes whole cache entries.
type SosaCacheManager struct {
	caches map[PersonId]*SosaCacheState
}

// NewSosaCacheManager returns an empty manager.
func NewSosaCacheManager() *SosaCacheManager {
	return &SosaCacheManager{caches: make(map[PersonId]*SosaCacheState)}
}

// GetCache returns the cache for root, building and storing it on first
// use.
func (m *SosaCacheManager) GetCache(pd *Pedigree, root PersonId) (*SosaCacheState, error) {
	if c, ok := m.caches[root]; ok {
		return c, nil
	}
	c, err := BuildSosaCache(pd, root)
	if err != nil {
		return nil, err
	}
	m.caches[root] = c
	return c, nil
}

// DropCache removes the cache for root, if any.
func (m *SosaCacheManager) DropCache(root PersonId) {
	delete(m.caches, root)
}

// DropAll removes every cached root.
func (m *SosaCacheManager) DropAll() {
	m.caches = make(map[PersonId]*SosaCacheState)
}
