package demo

import (
	"errors"
	"fmt"

	"github.com/cacack/pedigree-engine/internal/pedigree"
)

// Person attaches a display name and approximate dates to a pedigree.PersonId.
// It carries no parentage of its own; that graph lives entirely in
// internal/pedigree and is looked up by ID through a Registry.
type Person struct {
	ID         pedigree.PersonId
	GivenName  string
	Surname    string
	Gender     Gender
	BirthDate  *GenDate
	BirthPlace string
	DeathDate  *GenDate
	DeathPlace string
	Notes      string
}

// PersonValidationError reports a single invalid field on a Person.
type PersonValidationError struct {
	Field   string
	Message string
}

func (e PersonValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewPerson creates a Person for the given pedigree id.
func NewPerson(id pedigree.PersonId, givenName, surname string) *Person {
	return &Person{ID: id, GivenName: givenName, Surname: surname}
}

// Validate checks the person's display data, aggregating every violation
// found rather than stopping at the first.
func (p *Person) Validate() error {
	var errs []error

	if p.ID == pedigree.NoPerson {
		errs = append(errs, PersonValidationError{Field: "id", Message: "cannot be the zero PersonId"})
	}
	if p.GivenName == "" {
		errs = append(errs, PersonValidationError{Field: "given_name", Message: "cannot be empty"})
	}
	if len(p.GivenName) > 100 {
		errs = append(errs, PersonValidationError{Field: "given_name", Message: "cannot exceed 100 characters"})
	}
	if len(p.Surname) > 100 {
		errs = append(errs, PersonValidationError{Field: "surname", Message: "cannot exceed 100 characters"})
	}
	if !p.Gender.IsValid() {
		errs = append(errs, PersonValidationError{Field: "gender", Message: fmt.Sprintf("invalid value: %s", p.Gender)})
	}
	if p.BirthDate != nil {
		if err := p.BirthDate.Validate(); err != nil {
			errs = append(errs, PersonValidationError{Field: "birth_date", Message: err.Error()})
		}
	}
	if p.DeathDate != nil {
		if err := p.DeathDate.Validate(); err != nil {
			errs = append(errs, PersonValidationError{Field: "death_date", Message: err.Error()})
		}
	}
	if p.BirthDate != nil && p.DeathDate != nil && !p.BirthDate.IsEmpty() && !p.DeathDate.IsEmpty() {
		if p.DeathDate.Before(*p.BirthDate) {
			errs = append(errs, PersonValidationError{Field: "death_date", Message: "cannot be before birth_date"})
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// FullName returns "Given Surname".
func (p *Person) FullName() string {
	if p.Surname == "" {
		return p.GivenName
	}
	return p.GivenName + " " + p.Surname
}

// SetBirthDate parses and sets the birth date from a loosely formatted string.
func (p *Person) SetBirthDate(dateStr string) {
	if dateStr == "" {
		p.BirthDate = nil
		return
	}
	gd := ParseGenDate(dateStr)
	p.BirthDate = &gd
}

// SetDeathDate parses and sets the death date from a loosely formatted string.
func (p *Person) SetDeathDate(dateStr string) {
	if dateStr == "" {
		p.DeathDate = nil
		return
	}
	gd := ParseGenDate(dateStr)
	p.DeathDate = &gd
}

// Lifespan renders "b. <birth> d. <death>" for whichever dates are known,
// or "" if neither is known.
func (p *Person) Lifespan() string {
	switch {
	case p.BirthDate != nil && p.DeathDate != nil:
		return fmt.Sprintf("b. %s d. %s", p.BirthDate, p.DeathDate)
	case p.BirthDate != nil:
		return fmt.Sprintf("b. %s", p.BirthDate)
	case p.DeathDate != nil:
		return fmt.Sprintf("d. %s", p.DeathDate)
	default:
		return ""
	}
}
