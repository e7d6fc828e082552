package phragmen_test

import (
	"fmt"

	"github.com/lkpetrich/approvalvote/ballot"
	"github.com/lkpetrich/approvalvote/phragmen"
)

// ExamplePhragmen seats the Wikipedia example round by round; the first
// three seats go to A, Q, and B.
func ExamplePhragmen() {
	box := ballot.FromApprovalLists([]ballot.ApprovalList{
		{Weight: 1034, Approved: []string{"A", "B", "C"}},
		{Weight: 519, Approved: []string{"P", "Q", "R"}},
		{Weight: 90, Approved: []string{"A", "B", "Q"}},
		{Weight: 47, Approved: []string{"A", "P", "Q"}},
	})

	rounds, err := phragmen.Phragmen(box)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, round := range rounds[:3] {
		fmt.Printf("seat %d: %s (%.1f)\n", i+1, round[0].Candidate, round[0].Value)
	}
	// Output:
	// seat 1: A (1171.0)
	// seat 2: Q (587.3)
	// seat 3: B (552.0)
}
