package main

import (
	"github.com/cacack/pedigree-engine/internal/demo"
	"github.com/cacack/pedigree-engine/internal/pedigree"
)

// seedPedigree builds a small multi-generation demo pedigree: a founder
// couple (1,2) whose children (3) and (4) marry the founders (5) and (6)
// respectively and produce first cousins (7) and (8). It exercises
// consanguinity (all zero here), the relationship sweep, cousin
// classification, and Sosa numbering in one shared fixture.
func seedPedigree() (*pedigree.Pedigree, *demo.Registry) {
	pd := pedigree.NewPedigreeBuilder().
		AddPerson(1, pedigree.NoUnion).
		AddPerson(2, pedigree.NoUnion).
		AddPerson(3, 1).
		AddPerson(4, 1).
		AddPerson(5, pedigree.NoUnion).
		AddPerson(6, pedigree.NoUnion).
		AddPerson(7, 2).
		AddPerson(8, 3).
		AddUnion(1, 1, 2, 3, 4).
		AddUnion(2, 3, 5, 7).
		AddUnion(3, 4, 6, 8).
		Build()

	reg := demo.NewRegistry()
	people := []struct {
		id             pedigree.PersonId
		given, surname string
		gender         demo.Gender
		birth, death   string
	}{
		{1, "Henry", "Ashworth", demo.GenderMale, "1820", "1890"},
		{2, "Mary", "Ashworth", demo.GenderFemale, "1822", "1895"},
		{3, "James", "Ashworth", demo.GenderMale, "1845", "1910"},
		{4, "Anne", "Kellaway", demo.GenderFemale, "1847", "1915"},
		{5, "William", "Doyle", demo.GenderMale, "1843", "1901"},
		{6, "Sarah", "Doyle", demo.GenderFemale, "1846", "1920"},
		{7, "Thomas", "Ashworth", demo.GenderMale, "1870", "1940"},
		{8, "Eliza", "Kellaway", demo.GenderFemale, "1872", "1944"},
	}
	for _, p := range people {
		person := demo.NewPerson(p.id, p.given, p.surname)
		person.Gender = p.gender
		person.SetBirthDate(p.birth)
		person.SetDeathDate(p.death)
		reg.AddPerson(person)
	}

	families := []struct {
		id   pedigree.UnionId
		date string
	}{
		{1, "1843"},
		{2, "1868"},
		{3, "1869"},
	}
	for _, f := range families {
		family := demo.NewFamily(f.id)
		family.RelationshipType = demo.RelationMarriage
		family.SetMarriageDate(f.date)
		reg.AddFamily(family)
	}

	return pd, reg
}
