package cousin

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cacack/pedigree-engine/internal/pedigree"
)

func firstCousinsPedigree() *pedigree.Pedigree {
	return pedigree.NewPedigreeBuilder().
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
}

func siblingsPedigree() *pedigree.Pedigree {
	return pedigree.NewPedigreeBuilder().
		AddPerson(1, pedigree.NoUnion).
		AddPerson(2, pedigree.NoUnion).
		AddPerson(3, 1).
		AddPerson(4, 1).
		AddUnion(1, 1, 2, 3, 4).
		Build()
}

func summarize(t *testing.T, pd *pedigree.Pedigree, a, b pedigree.PersonId) *RelationshipSummary {
	t.Helper()
	consang, err := pedigree.ComputeConsanguinity(pd, true)
	require.NoError(t, err)
	ri, err := pedigree.NewRelationshipInfo(pd, consang)
	require.NoError(t, err)
	summary, err := SummarizeRelationship(ri, a, b, nil)
	require.NoError(t, err)
	return summary
}

// Ancestor depth 2 to A, 3 to B -> 1st cousin once removed.
func TestClassifyPairFirstCousinOnceRemoved(t *testing.T) {
	kind, degree, removal, ok := classifyPair(2, 3)
	require.True(t, ok)
	require.Equal(t, KindCousin, kind)
	require.Equal(t, 1, degree)
	require.Equal(t, 1, removal)
}

func TestInferCousinDegreeSiblings(t *testing.T) {
	summary := summarize(t, siblingsPedigree(), 3, 4)
	degree, ok := InferCousinDegree(summary)
	require.True(t, ok)
	require.Equal(t, KindSibling, degree.Kind)
	require.Equal(t, "sibling", degree.String())
}

func TestInferCousinDegreeFirstCousins(t *testing.T) {
	summary := summarize(t, firstCousinsPedigree(), 7, 8)
	degree, ok := InferCousinDegree(summary)
	require.True(t, ok)
	require.Equal(t, KindCousin, degree.Kind)
	require.Equal(t, 1, degree.Degree)
	require.Equal(t, 0, degree.Removal)
	require.Equal(t, "1st cousin", degree.String())
}

func TestInferCousinDegreeSelf(t *testing.T) {
	summary := summarize(t, siblingsPedigree(), 3, 3)
	degree, ok := InferCousinDegree(summary)
	require.True(t, ok)
	require.Equal(t, KindSelf, degree.Kind)
	require.Equal(t, "self", degree.String())
}

func TestInferCousinDegreeDirectAncestor(t *testing.T) {
	summary := summarize(t, firstCousinsPedigree(), 1, 7)
	degree, ok := InferCousinDegree(summary)
	require.True(t, ok)
	require.Equal(t, KindDirectAncestor, degree.Kind)
	require.Equal(t, "grandparent", degree.String())
}

func TestCousinDegreeIdempotentUnderSwap(t *testing.T) {
	ab := summarize(t, firstCousinsPedigree(), 7, 8)
	ba := summarize(t, firstCousinsPedigree(), 8, 7)

	degAB, ok := InferCousinDegree(ab)
	require.True(t, ok)
	degBA, ok := InferCousinDegree(ba)
	require.True(t, ok)

	require.Equal(t, degAB.Kind, degBA.Kind)
	require.Equal(t, degAB.Degree, degBA.Degree)
	require.Equal(t, degAB.Removal, degBA.Removal)
	require.Equal(t, degAB.GenerationsA, degBA.GenerationsB)
	require.Equal(t, degAB.GenerationsB, degBA.GenerationsA)
}

func TestOrdinalAndGreatPrefix(t *testing.T) {
	require.Equal(t, "1st", ordinal(1))
	require.Equal(t, "2nd", ordinal(2))
	require.Equal(t, "3rd", ordinal(3))
	require.Equal(t, "11th", ordinal(11))
	require.Equal(t, "", greatPrefix(0))
	require.Equal(t, "great-", greatPrefix(1))
	require.Equal(t, "great-great-", greatPrefix(2))
	require.Equal(t, "3rd great-", greatPrefix(3))
}

func TestCousinNameRemoved(t *testing.T) {
	require.Equal(t, "2nd cousin once removed", cousinName(2, 1))
	require.Equal(t, "1st cousin twice removed", cousinName(1, 2))
	require.Equal(t, "1st cousin 4 times removed", cousinName(1, 4))
}
