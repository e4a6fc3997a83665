package demo

import (
	"fmt"

	"github.com/cacack/pedigree-engine/internal/pedigree"
)

// Registry maps a pedigree's opaque ids to the display records that name
// them. It is the only place in this module where a PersonId/UnionId and a
// human name are associated; internal/pedigree and internal/cousin never
// hold a Registry and never need one.
type Registry struct {
	persons  map[pedigree.PersonId]*Person
	families map[pedigree.UnionId]*Family
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		persons:  make(map[pedigree.PersonId]*Person),
		families: make(map[pedigree.UnionId]*Family),
	}
}

// AddPerson registers p under its ID, overwriting any existing record.
func (r *Registry) AddPerson(p *Person) {
	r.persons[p.ID] = p
}

// AddFamily registers f under its ID, overwriting any existing record.
func (r *Registry) AddFamily(f *Family) {
	r.families[f.ID] = f
}

// Person looks up a person by id.
func (r *Registry) Person(id pedigree.PersonId) (*Person, bool) {
	p, ok := r.persons[id]
	return p, ok
}

// Family looks up a family by id.
func (r *Registry) Family(id pedigree.UnionId) (*Family, bool) {
	f, ok := r.families[id]
	return f, ok
}

// Label renders a display string for a PersonId: the full name and
// lifespan if known, or a placeholder for an unregistered id so callers
// never have to special-case a missing display record.
func (r *Registry) Label(id pedigree.PersonId) string {
	p, ok := r.persons[id]
	if !ok {
		return fmt.Sprintf("#%d", int64(id))
	}
	if lifespan := p.Lifespan(); lifespan != "" {
		return fmt.Sprintf("%s (%s)", p.FullName(), lifespan)
	}
	return p.FullName()
}

// LabelAll renders Label for each id in order.
func (r *Registry) LabelAll(ids []pedigree.PersonId) []string {
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = r.Label(id)
	}
	return labels
}
