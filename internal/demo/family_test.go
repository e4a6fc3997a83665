package demo

import (
	"strings"
	"testing"

	"github.com/cacack/pedigree-engine/internal/pedigree"
)

func TestFamilyValidateRejectsZeroID(t *testing.T) {
	f := NewFamily(pedigree.NoUnion)
	err := f.Validate()
	if err == nil || !strings.Contains(err.Error(), "id") {
		t.Fatalf("expected a validation error mentioning id, got %v", err)
	}
}

func TestFamilyValidateRejectsBadRelationshipType(t *testing.T) {
	f := NewFamily(pedigree.UnionId(1))
	f.RelationshipType = RelationType("eloped")

	err := f.Validate()
	if err == nil || !strings.Contains(err.Error(), "relationship_type") {
		t.Fatalf("expected a relationship_type validation error, got %v", err)
	}
}

func TestFamilyValidateAcceptsWellFormedRecord(t *testing.T) {
	f := NewFamily(pedigree.UnionId(1))
	f.RelationshipType = RelationMarriage
	f.SetMarriageDate("12 JUN 1840")

	if err := f.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
