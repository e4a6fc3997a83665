// Package pedigree implements the core relationship-engine algorithms:
// the pedigree model, topological ordering, the symmetric kinship
// recurrence, the consanguinity sweep, the ranked-queue relationship
// traversal, and the Sosa-Stradonitz numbering engine. The package performs
// no I/O and never logs; callers own diagnostics.
package pedigree

import "sort"

// PersonId is an opaque identifier for an individual within a Pedigree.
// The zero value is reserved as the "absent" sentinel and never identifies
// a real person.
type PersonId int64

// UnionId is an opaque identifier for a family union within a Pedigree.
// The zero value is reserved as the "absent" sentinel.
type UnionId int64

// NoPerson is the normalized "no person" sentinel.
const NoPerson PersonId = 0

// NoUnion is the normalized "no union" sentinel.
const NoUnion UnionId = 0

// PersonNode is one individual in the pedigree.
type PersonNode struct {
	ID PersonId

	// ParentUnion is the union in which this person appears as a child.
	// NoUnion for founders.
	ParentUnion UnionId

	// Consanguinity is F(person), Wright's inbreeding coefficient.
	Consanguinity float64

	// NeedsUpdate marks Consanguinity as stale.
	NeedsUpdate bool
}

// UnionNode is one family union: up to two parents and their children.
type UnionNode struct {
	ID UnionId

	// FatherID and MotherID are NoPerson when absent.
	FatherID PersonId
	MotherID PersonId

	// Children is the ordered list of this union's children. Order is
	// observable but not required by any computation in this package.
	Children []PersonId
}

// Pedigree is the immutable (from the engine's perspective) store of
// persons and unions. Construct with NewPedigree or PedigreeBuilder; the
// engine never mutates Pedigree itself, only PersonNode.Consanguinity and
// PersonNode.NeedsUpdate during a consanguinity computation.
type Pedigree struct {
	persons map[PersonId]*PersonNode
	unions  map[UnionId]*UnionNode
}

// NewPedigree builds a Pedigree from raw person and union maps, normalizing
// zero-valued parent/union references to the absent sentinels.
func NewPedigree(persons map[PersonId]*PersonNode, unions map[UnionId]*UnionNode) *Pedigree {
	pd := &Pedigree{
		persons: make(map[PersonId]*PersonNode, len(persons)),
		unions:  make(map[UnionId]*UnionNode, len(unions)),
	}
	for id, p := range persons {
		if id == NoPerson || p == nil {
			continue
		}
		cp := *p
		cp.ID = id
		pd.persons[id] = &cp
	}
	for id, u := range unions {
		if id == NoUnion || u == nil {
			continue
		}
		cp := *u
		cp.ID = id
		pd.unions[id] = &cp
	}
	return pd
}

// Person returns the PersonNode for id, if present.
func (pd *Pedigree) Person(id PersonId) (*PersonNode, bool) {
	p, ok := pd.persons[id]
	return p, ok
}

// Union returns the UnionNode for id, if present.
func (pd *Pedigree) Union(id UnionId) (*UnionNode, bool) {
	u, ok := pd.unions[id]
	return u, ok
}

// Parents returns the father and mother of person's parent union, or
// (NoPerson, NoPerson) if the person is unknown, has no parent union, or
// that union is missing from the pedigree.
func (pd *Pedigree) Parents(person PersonId) (father, mother PersonId) {
	p, ok := pd.persons[person]
	if !ok || p.ParentUnion == NoUnion {
		return NoPerson, NoPerson
	}
	u, ok := pd.unions[p.ParentUnion]
	if !ok {
		return NoPerson, NoPerson
	}
	return u.FatherID, u.MotherID
}

// PersonCount returns the number of persons in the pedigree.
func (pd *Pedigree) PersonCount() int { return len(pd.persons) }

// UnionCount returns the number of unions in the pedigree.
func (pd *Pedigree) UnionCount() int { return len(pd.unions) }

// PersonIDs returns every person id in ascending order. Ascending order
// gives deterministic iteration for the algorithms in this package that
// walk "every person" (topological ordering, consanguinity sweeps).
func (pd *Pedigree) PersonIDs() []PersonId {
	ids := make([]PersonId, 0, len(pd.persons))
	for id := range pd.persons {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// PedigreeBuilder assembles a Pedigree incrementally. It is a convenience
// for callers (importers, tests, the demo CLI) that would otherwise have
// to build both maps by hand before calling NewPedigree.
type PedigreeBuilder struct {
	persons map[PersonId]*PersonNode
	unions  map[UnionId]*UnionNode
}

// NewPedigreeBuilder returns an empty builder.
func NewPedigreeBuilder() *PedigreeBuilder {
	return &PedigreeBuilder{
		persons: make(map[PersonId]*PersonNode),
		unions:  make(map[UnionId]*UnionNode),
	}
}

// AddPerson registers a person with the given parent union (NoUnion for a
// founder). Returns the builder for chaining.
func (b *PedigreeBuilder) AddPerson(id PersonId, parentUnion UnionId) *PedigreeBuilder {
	b.persons[id] = &PersonNode{ID: id, ParentUnion: parentUnion}
	return b
}

// AddUnion registers a union with the given parents (NoPerson if absent)
// and children. Returns the builder for chaining.
func (b *PedigreeBuilder) AddUnion(id UnionId, father, mother PersonId, children ...PersonId) *PedigreeBuilder {
	b.unions[id] = &UnionNode{ID: id, FatherID: father, MotherID: mother, Children: append([]PersonId{}, children...)}
	return b
}

// Build returns the finished, normalized Pedigree.
func (b *PedigreeBuilder) Build() *Pedigree {
	return NewPedigree(b.persons, b.unions)
}
