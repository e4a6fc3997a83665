package pedigree

// pairKey is the unordered-pair memoization key: (min(a,b), max(a,b)).
type pairKey struct {
	lo, hi PersonId
}

func makePairKey(a, b PersonId) pairKey {
	if a <= b {
		return pairKey{lo: a, hi: b}
	}
	return pairKey{lo: b, hi: a}
}

// KinshipCalculator computes the memoized symmetric kinship recurrence
// f(a, b) over a Pedigree. A calculator is scoped to a single
// orchestration call; ComputeConsanguinity creates a fresh one each time
// it starts from scratch so the cache never crosses pedigree mutations.
type KinshipCalculator struct {
	pd    *Pedigree
	cache map[pairKey]float64
	// pos is each person's topological position, filled on first use.
	pos map[PersonId]int
}

// NewKinshipCalculator returns a calculator backed by pd's current
// Consanguinity values.
func NewKinshipCalculator(pd *Pedigree) *KinshipCalculator {
	return &KinshipCalculator{pd: pd, cache: make(map[pairKey]float64)}
}

func (kc *KinshipCalculator) lookup(a, b PersonId) (float64, bool) {
	v, ok := kc.cache[makePairKey(a, b)]
	return v, ok
}

func (kc *KinshipCalculator) store(a, b PersonId, v float64) {
	kc.cache[makePairKey(a, b)] = v
}

func (kc *KinshipCalculator) consanguinityOf(id PersonId) float64 {
	if p, ok := kc.pd.persons[id]; ok {
		return p.Consanguinity
	}
	return 0
}

// kinshipFrame is one pending (a, b) evaluation on the explicit work
// stack used in place of naive recursion; deep pedigrees would otherwise
// overflow the goroutine stack.
type kinshipFrame struct {
	a, b PersonId
}

type kinshipDependency struct {
	x, y    PersonId
	present bool
}

// Kinship returns f(a, b): the probability that a random allele from a
// and a random allele from b, at the same locus, are identical by
// descent. Absent parents contribute 0 to the recurrence; unknown
// persons are treated as founders with F = 0.
func (kc *KinshipCalculator) Kinship(a, b PersonId) float64 {
	if v, ok := kc.lookup(a, b); ok {
		return v
	}

	if kc.pos == nil {
		kc.pos = make(map[PersonId]int)
		if order, err := TopologicalOrder(kc.pd); err == nil {
			for i, id := range order {
				kc.pos[id] = i
			}
		}
	}

	stack := []kinshipFrame{{a, b}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		ka, kb := top.a, top.b

		if _, ok := kc.lookup(ka, kb); ok {
			stack = stack[:len(stack)-1]
			continue
		}

		if ka == kb {
			f := kc.consanguinityOf(ka)
			kc.store(ka, kb, 0.5*(1+f))
			stack = stack[:len(stack)-1]
			continue
		}

		// Expand the parents of whichever of the pair comes later in
		// topological order: that one cannot be an ancestor of the other,
		// so f(x, y) = ½·(f(father(x), y) + f(mother(x), y)).
		x, y := ka, kb
		if kc.pos[y] > kc.pos[x] {
			x, y = y, x
		}
		fa, mo := kc.pd.Parents(x)

		deps := [2]kinshipDependency{
			{fa, y, fa != NoPerson},
			{mo, y, mo != NoPerson},
		}

		ready := true
		for _, d := range deps {
			if !d.present {
				continue
			}
			if _, ok := kc.lookup(d.x, d.y); !ok {
				stack = append(stack, kinshipFrame{d.x, d.y})
				ready = false
			}
		}
		if !ready {
			continue
		}

		var sum float64
		for _, d := range deps {
			if !d.present {
				continue
			}
			v, _ := kc.lookup(d.x, d.y)
			sum += v
		}
		kc.store(ka, kb, 0.5*sum)
		stack = stack[:len(stack)-1]
	}

	v, _ := kc.lookup(a, b)
	return v
}
