package tally_test

import (
	"fmt"

	"github.com/lkpetrich/approvalvote/ballot"
	"github.com/lkpetrich/approvalvote/tally"
)

// ExampleApproval tallies the classic PAV example by plain approval voting.
func ExampleApproval() {
	box := ballot.FromApprovalLists([]ballot.ApprovalList{
		{Weight: 5, Approved: []string{"A", "B"}},
		{Weight: 17, Approved: []string{"A", "C"}},
		{Weight: 8, Approved: []string{"D"}},
	})

	round, err := tally.Approval(box)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, s := range round {
		fmt.Printf("%s: %g\n", s.Candidate, s.Value)
	}
	// Output:
	// A: 22
	// C: 17
	// D: 8
	// B: 5
	// (Total): 30
}

// ExampleSatisfactionApproval shows how splitting each voter's single vote
// across their approvals changes the leaders.
func ExampleSatisfactionApproval() {
	box := ballot.FromApprovalLists([]ballot.ApprovalList{
		{Weight: 4, Approved: []string{"A", "B"}},
		{Weight: 3, Approved: []string{"C"}},
		{Weight: 3, Approved: []string{"D"}},
	})

	round, err := tally.SatisfactionApproval(box)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, s := range round {
		fmt.Printf("%s: %g\n", s.Candidate, s.Value)
	}
	// Output:
	// C: 3
	// D: 3
	// A: 2
	// B: 2
	// (Total): 8
}
