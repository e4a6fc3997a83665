package demo

import (
	"strings"
	"testing"

	"github.com/cacack/pedigree-engine/internal/pedigree"
)

func TestNewPersonFullName(t *testing.T) {
	p := NewPerson(pedigree.PersonId(1), "Ada", "Lovelace")
	if got := p.FullName(); got != "Ada Lovelace" {
		t.Errorf("FullName() = %q, want %q", got, "Ada Lovelace")
	}
}

func TestPersonValidateRejectsZeroID(t *testing.T) {
	p := NewPerson(pedigree.NoPerson, "Ada", "Lovelace")
	err := p.Validate()
	if err == nil || !strings.Contains(err.Error(), "id") {
		t.Fatalf("expected a validation error mentioning id, got %v", err)
	}
}

func TestPersonValidateRejectsDeathBeforeBirth(t *testing.T) {
	p := NewPerson(pedigree.PersonId(1), "Ada", "Lovelace")
	p.SetBirthDate("1900")
	p.SetDeathDate("1850")

	err := p.Validate()
	if err == nil || !strings.Contains(err.Error(), "death_date") {
		t.Fatalf("expected a death_date validation error, got %v", err)
	}
}

func TestPersonValidateAcceptsWellFormedRecord(t *testing.T) {
	p := NewPerson(pedigree.PersonId(1), "Ada", "Lovelace")
	p.Gender = GenderFemale
	p.SetBirthDate("ABT 1815")
	p.SetDeathDate("1852")

	if err := p.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestPersonLifespanFormatsKnownDates(t *testing.T) {
	p := NewPerson(pedigree.PersonId(1), "Ada", "Lovelace")
	p.SetBirthDate("1815")
	p.SetDeathDate("1852")

	got := p.Lifespan()
	if !strings.HasPrefix(got, "b. 1815") || !strings.Contains(got, "d. 1852") {
		t.Errorf("unexpected lifespan: %q", got)
	}
}
