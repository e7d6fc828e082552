package ballot_test

import (
	"testing"

	"github.com/lkpetrich/approvalvote/ballot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromApprovalLists_WikiPAV converts the literature ballots
// [(5,{A,B}), (17,{A,C}), (8,{D})] and checks the deterministic candidate
// order and the 0/1 vote rows.
func TestFromApprovalLists_WikiPAV(t *testing.T) {
	box := ballot.FromApprovalLists([]ballot.ApprovalList{
		{Weight: 5, Approved: []string{"A", "B"}},
		{Weight: 17, Approved: []string{"A", "C"}},
		{Weight: 8, Approved: []string{"D"}},
	})
	require.NotNil(t, box)
	require.True(t, box.IsApproval(), "converter must yield a pure approval box")

	assert.Equal(t, []string{"A", "B", "C", "D"}, box.Candidates, "lexicographic candidate order")
	assert.Equal(t, []float64{5, 17, 8}, box.Weights, "ballot order preserved")
	assert.Equal(t, [][]float64{
		{1, 1, 0, 0},
		{1, 0, 1, 0},
		{0, 0, 0, 1},
	}, box.Votes)
}

// TestFromApprovalLists_UnsortedNames verifies that candidate order is the
// sorted union regardless of the order names appear on ballots.
func TestFromApprovalLists_UnsortedNames(t *testing.T) {
	box := ballot.FromApprovalLists([]ballot.ApprovalList{
		{Weight: 1, Approved: []string{"Z", "M"}},
		{Weight: 2, Approved: []string{"A", "Z"}},
	})
	assert.Equal(t, []string{"A", "M", "Z"}, box.Candidates)
	assert.Equal(t, [][]float64{{0, 1, 1}, {1, 0, 1}}, box.Votes)
}

// TestFromApprovalLists_Degenerate covers empty input, a ballot approving
// nobody, and duplicate names on one ballot.
func TestFromApprovalLists_Degenerate(t *testing.T) {
	empty := ballot.FromApprovalLists(nil)
	require.NotNil(t, empty)
	assert.True(t, empty.IsValid(), "empty conversion is structurally valid")
	assert.Equal(t, 0, empty.NumBallots())

	box := ballot.FromApprovalLists([]ballot.ApprovalList{
		{Weight: 3, Approved: nil},
		{Weight: 1, Approved: []string{"A", "A"}},
	})
	require.True(t, box.IsApproval())
	assert.Equal(t, []string{"A"}, box.Candidates)
	assert.Equal(t, [][]float64{{0}, {1}}, box.Votes, "empty ballot is all zeros; duplicates collapse to one approval")
}
