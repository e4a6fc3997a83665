package demo

import (
	"errors"
	"fmt"

	"github.com/cacack/pedigree-engine/internal/pedigree"
)

// Family attaches display data to a pedigree.UnionId: a marriage/partnership
// date and place the engine's UnionNode itself has no room for.
type Family struct {
	ID               pedigree.UnionId
	RelationshipType RelationType
	MarriageDate     *GenDate
	MarriagePlace    string
}

// FamilyValidationError reports a single invalid field on a Family.
type FamilyValidationError struct {
	Field   string
	Message string
}

func (e FamilyValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewFamily creates a Family for the given pedigree union id.
func NewFamily(id pedigree.UnionId) *Family {
	return &Family{ID: id}
}

// Validate checks the family's display data.
func (f *Family) Validate() error {
	var errs []error

	if f.ID == pedigree.NoUnion {
		errs = append(errs, FamilyValidationError{Field: "id", Message: "cannot be the zero UnionId"})
	}
	if !f.RelationshipType.IsValid() {
		errs = append(errs, FamilyValidationError{Field: "relationship_type", Message: fmt.Sprintf("invalid value: %s", f.RelationshipType)})
	}
	if f.MarriageDate != nil {
		if err := f.MarriageDate.Validate(); err != nil {
			errs = append(errs, FamilyValidationError{Field: "marriage_date", Message: err.Error()})
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// SetMarriageDate parses and sets the marriage date from a loosely
// formatted string.
func (f *Family) SetMarriageDate(dateStr string) {
	if dateStr == "" {
		f.MarriageDate = nil
		return
	}
	gd := ParseGenDate(dateStr)
	f.MarriageDate = &gd
}
